// Package descriptor models the project descriptor inspected by chrysalis
// condition utilities. A descriptor is a YAML document at the root of the
// transformed application (conventionally project.yaml) declaring the
// project's own coordinate and, optionally, the coordinate of its parent
// project.
package descriptor

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Coordinate is the (group, artifact, optional version) identity of a
// project artifact.
type Coordinate struct {
	GroupID    string `yaml:"group"`
	ArtifactID string `yaml:"artifact"`
	Version    string `yaml:"version,omitempty"`
}

// String renders the coordinate as "group:artifact" or
// "group:artifact:version" when a version is present.
func (c Coordinate) String() string {
	if c.Version == "" {
		return fmt.Sprintf("%s:%s", c.GroupID, c.ArtifactID)
	}
	return fmt.Sprintf("%s:%s:%s", c.GroupID, c.ArtifactID, c.Version)
}

// Matches reports whether the target coordinate matches this one. Group and
// artifact are compared exactly; an empty target version means the version
// is not compared at all.
func (c Coordinate) Matches(target Coordinate) bool {
	if c.GroupID != target.GroupID || c.ArtifactID != target.ArtifactID {
		return false
	}
	return target.Version == "" || c.Version == target.Version
}

// Descriptor is the parsed project-descriptor model. Parent is nil when the
// descriptor declares no parent project. Unknown fields in the document are
// tolerated and ignored.
type Descriptor struct {
	Name       string            `yaml:"name,omitempty"`
	GroupID    string            `yaml:"group,omitempty"`
	ArtifactID string            `yaml:"artifact,omitempty"`
	Version    string            `yaml:"version,omitempty"`
	Parent     *Coordinate       `yaml:"parent,omitempty"`
	Properties map[string]string `yaml:"properties,omitempty"`
}

// ParseError reports a malformed descriptor document, wrapping the
// underlying decoder failure.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed project descriptor: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads a project descriptor from the given stream. Decode failures
// are returned as a *ParseError; the caller owns the stream and is
// responsible for closing it.
func Parse(r io.Reader) (*Descriptor, error) {
	var d Descriptor
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&d); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &d, nil
}
