package transform

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationResolveDefault(t *testing.T) {
	appRoot := t.TempDir()
	var loc Location

	resolved, err := loc.Resolve(appRoot, NewContext())
	require.NoError(t, err)
	assert.Equal(t, appRoot, resolved)
	assert.Equal(t, "the root folder", loc.Describe())
}

func TestLocationResolveRelative(t *testing.T) {
	appRoot := t.TempDir()

	tests := []struct {
		name     string
		relative string
		want     string
	}{
		{"dot is the app root", ".", appRoot},
		{"empty is the app root", "", appRoot},
		{"plain subfolder", "src", filepath.Join(appRoot, "src")},
		{"nested forward-slash path", "src/main/resources", filepath.Join(appRoot, "src", "main", "resources")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var loc Location
			loc.SetRelative(tt.relative)

			resolved, err := loc.Resolve(appRoot, NewContext())
			require.NoError(t, err)
			assert.Equal(t, tt.want, resolved)
		})
	}
}

func TestLocationResolveAbsolute(t *testing.T) {
	appRoot := t.TempDir()
	baseline := t.TempDir()

	ctx := NewContext()
	ctx.Put("baselineApp", baseline)

	t.Run("attribute only", func(t *testing.T) {
		var loc Location
		loc.SetAbsolute("baselineApp", "")

		resolved, err := loc.Resolve(appRoot, ctx)
		require.NoError(t, err)
		assert.Equal(t, baseline, resolved)
	})

	t.Run("attribute with additional relative path", func(t *testing.T) {
		var loc Location
		loc.SetAbsolute("baselineApp", "conf/app.yaml")

		resolved, err := loc.Resolve(appRoot, ctx)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(baseline, "conf", "app.yaml"), resolved)
	})

	t.Run("missing attribute", func(t *testing.T) {
		var loc Location
		loc.SetAbsolute("nowhere", "")

		_, err := loc.Resolve(appRoot, ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nowhere")
	})

	t.Run("attribute is not a path", func(t *testing.T) {
		ctx.Put("count", 7)
		var loc Location
		loc.SetAbsolute("count", "")

		_, err := loc.Resolve(appRoot, ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a path")
	})

	t.Run("nil context", func(t *testing.T) {
		var loc Location
		loc.SetAbsolute("baselineApp", "")

		_, err := loc.Resolve(appRoot, nil)
		require.Error(t, err)
	})
}

func TestLocationDescribe(t *testing.T) {
	var loc Location
	loc.SetRelative("src/main")
	assert.Equal(t, "src/main", loc.Describe())

	loc.SetAbsolute("baselineApp", "")
	assert.Equal(t, "[baselineApp]", loc.Describe())

	loc.SetAbsolute("baselineApp", "conf")
	assert.Equal(t, "[baselineApp]/conf", loc.Describe())
}

func TestRelativePath(t *testing.T) {
	base := filepath.Join("work", "app")

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"base itself", filepath.Join("work", "app"), ""},
		{"direct child", filepath.Join("work", "app", "a.txt"), "a.txt"},
		{"nested child", filepath.Join("work", "app", "sub", "c.txt"), "sub/c.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativePath(base, tt.target))
		})
	}
}
