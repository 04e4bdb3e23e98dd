// Package file provides filesystem inspection utilities operating on the
// transformed application tree.
package file

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"

	"github.com/harrison/chrysalis/transform"
)

const findFilesDescription = "Find files whose name and/or path match regular expression and are under %s%s"

// FindFiles finds files based on a regular expression against the file name
// and/or the file path. The search might be recursive (including sub-folders)
// or not. If a file path regular expression is set, the search is
// automatically recursive; setting recursive to false clears any file path
// regular expression.
//
// The root directory the search starts from can be set with Relative or
// Absolute. If not set explicitly, the search happens from the root of the
// transformed application, equivalent to Relative(".").
//
// If no files are found, a WARNING result carrying an empty list is
// returned.
type FindFiles struct {
	loc       transform.Location
	nameRegex string
	pathRegex string
	recursive bool
}

// New creates an unconfigured FindFiles utility.
func New() *FindFiles {
	return &FindFiles{}
}

// NewByName creates a utility that finds files whose bare name matches
// nameRegex, searching sub-folders as well when recursive is true.
func NewByName(nameRegex string, recursive bool) *FindFiles {
	return New().SetNameRegex(nameRegex).SetRecursive(recursive)
}

// NewByPath creates a utility that finds files whose bare name matches
// nameRegex and whose directory path, relative to the search root, matches
// pathRegex. Because a path regular expression is set, the search is
// necessarily recursive.
func NewByPath(nameRegex, pathRegex string) *FindFiles {
	return New().SetNameRegex(nameRegex).SetPathRegex(pathRegex)
}

// SetNameRegex sets the regular expression matched against the bare file
// name during the search, under full-match semantics.
func (f *FindFiles) SetNameRegex(nameRegex string) *FindFiles {
	transform.MustNonEmpty("Name regex", nameRegex)
	f.nameRegex = nameRegex
	return f
}

// SetPathRegex sets the regular expression matched against the file's
// directory path during the search, under full-match semantics.
//
// The path is evaluated relative to the search root, always using forward
// slashes as separators regardless of the host convention, with "" standing
// for the search root itself. Setting a path regular expression
// automatically sets recursive to true.
func (f *FindFiles) SetPathRegex(pathRegex string) *FindFiles {
	transform.MustNonEmpty("Path regex", pathRegex)
	f.pathRegex = pathRegex
	f.recursive = true
	return f
}

// SetRecursive sets whether the search descends into sub-folders. Setting it
// to false clears any configured path regular expression, since a path
// regular expression requires a recursive search.
func (f *FindFiles) SetRecursive(recursive bool) *FindFiles {
	f.recursive = recursive
	if !recursive {
		f.pathRegex = ""
	}
	return f
}

// Relative sets the search root as a path relative to the application root.
func (f *FindFiles) Relative(path string) *FindFiles {
	f.loc.SetRelative(path)
	return f
}

// Absolute sets the search root from a context attribute holding an absolute
// path, plus an optional additional relative path under it.
func (f *FindFiles) Absolute(attribute, extra string) *FindFiles {
	f.loc.SetAbsolute(attribute, extra)
	return f
}

// NameRegex returns the file name regular expression, or "" if unset.
func (f *FindFiles) NameRegex() string {
	return f.nameRegex
}

// PathRegex returns the file path regular expression, or "" if unset.
func (f *FindFiles) PathRegex() string {
	return f.pathRegex
}

// Recursive returns whether the search descends into sub-folders.
func (f *FindFiles) Recursive() bool {
	return f.recursive
}

// Description returns a human-readable summary of the configured search.
func (f *FindFiles) Description() string {
	scope := " only (not including sub-folders)"
	if f.recursive {
		scope = " and sub-folders"
	}
	return fmt.Sprintf(findFilesDescription, f.loc.Describe(), scope)
}

// Execute walks the directory rooted at the resolved search location and
// returns the files matching the configured filters, in traversal order.
// Only files are candidates, never directories. A walk failure (unreadable
// directory, missing root) fails the whole search as an ERROR result.
func (f *FindFiles) Execute(appRoot string, ctx *transform.Context) *transform.Result {
	root, err := f.loc.Resolve(appRoot, ctx)
	if err != nil {
		return transform.NewError(f, err)
	}

	match, err := f.filter(root)
	if err != nil {
		return transform.NewError(f, err)
	}

	files := []string{}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			if !f.recursive {
				return fs.SkipDir
			}
			return nil
		}
		if match(path, d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return transform.NewError(f, fmt.Errorf("searching files under %s: %w", f.loc.Describe(), err))
	}

	if len(files) == 0 {
		return transform.NewWarning(f, "No files have been found", files)
	}
	return transform.NewValue(f, files)
}

// filter builds the candidate predicate from the configured regular
// expressions, compiled under full-match semantics.
func (f *FindFiles) filter(root string) (func(path, name string) bool, error) {
	nameRe, err := compileFullMatch(f.nameRegex)
	if err != nil {
		return nil, fmt.Errorf("invalid name regex %q: %w", f.nameRegex, err)
	}
	pathRe, err := compileFullMatch(f.pathRegex)
	if err != nil {
		return nil, fmt.Errorf("invalid path regex %q: %w", f.pathRegex, err)
	}

	return func(path, name string) bool {
		if nameRe != nil && !nameRe.MatchString(name) {
			return false
		}
		if pathRe != nil {
			relDir := transform.RelativePath(root, filepath.Dir(path))
			if !pathRe.MatchString(relDir) {
				return false
			}
		}
		return true
	}, nil
}

// compileFullMatch compiles a regular expression anchored at both ends, so
// a candidate matches only when the whole string does. An empty expression
// compiles to nil, meaning "no filtering".
func compileFullMatch(expr string) (*regexp.Regexp, error) {
	if expr == "" {
		return nil, nil
	}
	return regexp.Compile(`\A(?:` + expr + `)\z`)
}
