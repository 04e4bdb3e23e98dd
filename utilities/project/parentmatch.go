// Package project provides condition utilities inspecting the transformed
// application's project descriptor.
package project

import (
	"errors"
	"fmt"
	"os"

	"github.com/harrison/chrysalis/descriptor"
	"github.com/harrison/chrysalis/transform"
)

const parentMatchDescription = "Check if the project descriptor has a parent matching '%s'"

// ParentMatch checks if the project descriptor declares a parent project
// and it matches the specified group and artifact. Optionally, if a version
// is provided, the parent's version must match it as well.
//
// An absent parent or any field mismatch is a normal false outcome, not a
// warning or error. Failures opening or parsing the descriptor are captured
// as an ERROR result naming the target coordinate and the descriptor's path
// relative to the application root.
type ParentMatch struct {
	loc        transform.Location
	groupID    string
	artifactID string
	version    string
}

// New creates an unconfigured ParentMatch condition.
func New() *ParentMatch {
	return &ParentMatch{}
}

// NewMatch creates a condition matching the parent's group and artifact,
// ignoring its version.
func NewMatch(groupID, artifactID string) *ParentMatch {
	return New().SetGroupID(groupID).SetArtifactID(artifactID)
}

// NewMatchVersion creates a condition matching the parent's group, artifact
// and version.
func NewMatchVersion(groupID, artifactID, version string) *ParentMatch {
	return NewMatch(groupID, artifactID).SetVersion(version)
}

// SetGroupID sets the group the parent must declare. Mandatory.
func (p *ParentMatch) SetGroupID(groupID string) *ParentMatch {
	transform.MustNonBlank("GroupId", groupID)
	p.groupID = groupID
	return p
}

// SetArtifactID sets the artifact the parent must declare. Mandatory.
func (p *ParentMatch) SetArtifactID(artifactID string) *ParentMatch {
	transform.MustNonBlank("ArtifactId", artifactID)
	p.artifactID = artifactID
	return p
}

// SetVersion sets the version the parent must declare. Optional; when unset
// the parent's version is not compared.
func (p *ParentMatch) SetVersion(version string) *ParentMatch {
	transform.MustNonEmpty("Version", version)
	p.version = version
	return p
}

// Relative sets the descriptor location as a path relative to the
// application root.
func (p *ParentMatch) Relative(path string) *ParentMatch {
	p.loc.SetRelative(path)
	return p
}

// Absolute sets the descriptor location from a context attribute holding an
// absolute path, plus an optional additional relative path under it.
func (p *ParentMatch) Absolute(attribute, extra string) *ParentMatch {
	p.loc.SetAbsolute(attribute, extra)
	return p
}

// GroupID returns the target group.
func (p *ParentMatch) GroupID() string {
	return p.groupID
}

// ArtifactID returns the target artifact.
func (p *ParentMatch) ArtifactID() string {
	return p.artifactID
}

// Version returns the target version, or "" if the version is not compared.
func (p *ParentMatch) Version() string {
	return p.version
}

// Description returns a human-readable summary of the configured condition,
// including the version segment only when a version was set.
func (p *ParentMatch) Description() string {
	return fmt.Sprintf(parentMatchDescription, p.target())
}

func (p *ParentMatch) target() descriptor.Coordinate {
	return descriptor.Coordinate{
		GroupID:    p.groupID,
		ArtifactID: p.artifactID,
		Version:    p.version,
	}
}

// Execute opens the descriptor at the resolved location, parses it, and
// produces a boolean VALUE result reporting whether the declared parent
// matches the target coordinate. The descriptor stream is released on every
// exit path; a close failure after a primary failure is attached alongside
// it without masking it.
func (p *ParentMatch) Execute(appRoot string, ctx *transform.Context) *transform.Result {
	path, err := p.loc.Resolve(appRoot, ctx)
	if err != nil {
		return transform.NewError(p, err)
	}
	relPath := transform.RelativePath(appRoot, path)

	matched := false
	var failure error

	stream, err := os.Open(path)
	if err != nil {
		failure = p.checkFailure(relPath, err)
	} else {
		parsed, err := descriptor.Parse(stream)
		switch {
		case err != nil:
			failure = p.checkFailure(relPath, err)
		case parsed.Parent != nil:
			matched = parsed.Parent.Matches(p.target())
		}
		if cerr := stream.Close(); cerr != nil {
			cerr = fmt.Errorf("closing project descriptor %s: %w", relPath, cerr)
			if failure != nil {
				failure = errors.Join(failure, cerr)
			} else {
				failure = cerr
			}
		}
	}

	if failure != nil {
		return transform.NewError(p, failure)
	}
	return transform.NewValue(p, matched)
}

func (p *ParentMatch) checkFailure(relPath string, cause error) error {
	return fmt.Errorf("checking if project parent %s exists in %s: %w", p.target(), relPath, cause)
}
