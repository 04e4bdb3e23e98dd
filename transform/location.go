package transform

import (
	"fmt"
	"path/filepath"
)

// Location is a utility's configured root: either a path relative to the
// transformed application root (the default, "." meaning the application
// root itself), or an absolute root taken from a context attribute with an
// optional additional relative path under it.
//
// Utilities embed a Location by value and delegate their fluent Relative and
// Absolute setters to it.
type Location struct {
	relative  string
	attribute string
	extra     string
}

// SetRelative configures the location as a path relative to the application
// root. An empty path or "." designates the application root itself.
func (l *Location) SetRelative(path string) {
	l.relative = path
	l.attribute = ""
	l.extra = ""
}

// SetAbsolute configures the location from a context attribute whose value
// is an absolute path, plus an optional additional relative path under it.
func (l *Location) SetAbsolute(attribute, extra string) {
	MustNonBlank("Location attribute", attribute)
	l.attribute = attribute
	l.extra = extra
	l.relative = ""
}

// RelativePath returns the configured relative path, or "" when the location
// is absolute or unset.
func (l Location) RelativePath() string {
	return l.relative
}

// Resolve produces the concrete filesystem path for this location. Missing
// files are a concern of the consuming utility, not of resolution; the only
// failure mode here is an absolute location whose context attribute is
// missing or not a path.
func (l Location) Resolve(appRoot string, ctx *Context) (string, error) {
	if l.attribute == "" {
		if l.relative == "" || l.relative == "." {
			return appRoot, nil
		}
		return filepath.Join(appRoot, filepath.FromSlash(l.relative)), nil
	}

	if ctx == nil {
		return "", fmt.Errorf("location attribute %q: no context available", l.attribute)
	}
	value, ok := ctx.Get(l.attribute)
	if !ok {
		return "", fmt.Errorf("location attribute %q not found in context", l.attribute)
	}
	root, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("location attribute %q is %T, not a path", l.attribute, value)
	}
	if l.extra == "" {
		return root, nil
	}
	return filepath.Join(root, filepath.FromSlash(l.extra)), nil
}

// Describe renders the location for use in utility descriptions: the
// configured relative path, or "the root folder" when the location resolves
// to the application root itself.
func (l Location) Describe() string {
	if l.attribute != "" {
		if l.extra != "" {
			return fmt.Sprintf("[%s]/%s", l.attribute, l.extra)
		}
		return fmt.Sprintf("[%s]", l.attribute)
	}
	if l.relative == "" || l.relative == "." {
		return "the root folder"
	}
	return l.relative
}

// RelativePath returns the forward-slash relative path of target under base,
// with "" designating base itself. Matching and reporting always use the
// forward-slash form so behavior is identical across host path-separator
// conventions.
func RelativePath(base, target string) string {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return filepath.ToSlash(target)
	}
	if rel == "." {
		return ""
	}
	return filepath.ToSlash(rel)
}
