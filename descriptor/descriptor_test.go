package descriptor

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateString(t *testing.T) {
	tests := []struct {
		name string
		c    Coordinate
		want string
	}{
		{"without version", Coordinate{GroupID: "com.test", ArtifactID: "foo-parent"}, "com.test:foo-parent"},
		{"with version", Coordinate{GroupID: "com.test", ArtifactID: "foo-parent", Version: "1.0"}, "com.test:foo-parent:1.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.String())
		})
	}
}

func TestCoordinateMatches(t *testing.T) {
	parent := Coordinate{GroupID: "com.test", ArtifactID: "foo-parent", Version: "1.0"}

	tests := []struct {
		name   string
		target Coordinate
		want   bool
	}{
		{"group and artifact only", Coordinate{GroupID: "com.test", ArtifactID: "foo-parent"}, true},
		{"full match", Coordinate{GroupID: "com.test", ArtifactID: "foo-parent", Version: "1.0"}, true},
		{"version mismatch", Coordinate{GroupID: "com.test", ArtifactID: "foo-parent", Version: "2.0"}, false},
		{"group mismatch", Coordinate{GroupID: "org.slf4j", ArtifactID: "foo-parent"}, false},
		{"artifact mismatch", Coordinate{GroupID: "com.test", ArtifactID: "bar-parent"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parent.Matches(tt.target))
		})
	}
}

func TestParse(t *testing.T) {
	doc := `name: foo-service
group: com.test
artifact: foo-service
version: 2.3.1
parent:
  group: com.test
  artifact: foo-parent
  version: "1.0"
properties:
  language: go
`
	d, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "foo-service", d.Name)
	assert.Equal(t, "com.test", d.GroupID)
	assert.Equal(t, "2.3.1", d.Version)
	require.NotNil(t, d.Parent)
	assert.Equal(t, "com.test:foo-parent:1.0", d.Parent.String())
	assert.Equal(t, "go", d.Properties["language"])
}

func TestParseNoParent(t *testing.T) {
	doc := `group: com.test
artifact: standalone
version: "1.0"
`
	d, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Nil(t, d.Parent)
}

func TestParseUnknownFieldsTolerated(t *testing.T) {
	doc := `group: com.test
artifact: foo
modules:
  - api
  - worker
`
	d, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "foo", d.ArtifactID)
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"tab indentation", "parent:\n\tgroup: com.test\n"},
		{"unbalanced bracket", "parent: [com.test\n"},
		{"scalar document", "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			require.Error(t, err)

			var parseErr *ParseError
			assert.True(t, errors.As(err, &parseErr), "want *ParseError, got %T", err)
		})
	}
}

func TestParseEmptyStream(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	require.Error(t, err)

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}
