// Package transform defines the execution contract shared by all chrysalis
// inspection utilities: the transformation context, the tri-state execution
// result, the configured-root location resolver and the fail-fast
// configuration validation helpers.
//
// A utility is configured once, executed once against the transformed
// application root, and produces exactly one Result. Utilities hold no shared
// mutable state, so distinct instances may execute concurrently; executing
// the same instance concurrently is not supported because configuration is
// mutable via setters.
package transform

// Context carries named attributes produced by earlier utilities in a
// transformation plan. Utilities read attributes to resolve absolute root
// locations; the surrounding engine writes them.
type Context struct {
	attributes map[string]any
}

// NewContext creates an empty transformation context.
func NewContext() *Context {
	return &Context{attributes: make(map[string]any)}
}

// Put stores an attribute under the given name, replacing any previous value.
func (c *Context) Put(name string, value any) {
	c.attributes[name] = value
}

// Get returns the attribute stored under the given name. The second return
// value reports whether the attribute exists.
func (c *Context) Get(name string) (any, bool) {
	value, ok := c.attributes[name]
	return value, ok
}
