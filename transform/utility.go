package transform

import (
	"fmt"

	"github.com/harrison/chrysalis/logger"
)

// Utility is a configured, single-shot inspection utility. Implementations
// are configured via fluent setters, executed once, and produce exactly one
// Result. Execute blocks, performs its filesystem I/O on the calling
// goroutine, and converts every failure into an ERROR result rather than
// returning an error or panicking.
type Utility interface {
	// Description returns a human-readable summary of what the utility is
	// configured to do, used for display and auditing.
	Description() string

	// Execute runs the utility against the transformed application root.
	Execute(appRoot string, ctx *Context) *Result
}

// Run executes a single utility and logs its description and outcome through
// the given logger. It is the audit seam the surrounding engine drives; it
// does no sequencing of its own. A nil logger disables logging. Panics from
// a misbehaving utility are converted into ERROR results so nothing escapes
// the execution boundary.
func Run(u Utility, appRoot string, ctx *Context, log *logger.ConsoleLogger) (result *Result) {
	if log == nil {
		log = logger.NewConsoleLogger(nil, "")
	}

	log.LogDebug(fmt.Sprintf("Executing: %s", u.Description()))

	defer func() {
		if rec := recover(); rec != nil {
			result = NewError(u, fmt.Errorf("utility panicked: %v", rec))
		}
		if result == nil {
			result = NewError(u, fmt.Errorf("utility produced no result"))
		}
		switch result.Kind() {
		case KindValue:
			log.LogInfo(fmt.Sprintf("[%s] VALUE: %s", result.ID(), u.Description()))
		case KindWarning:
			log.LogWarn(fmt.Sprintf("[%s] WARNING: %s (%s)", result.ID(), u.Description(), result.Message()))
		case KindError:
			log.LogError(fmt.Sprintf("[%s] ERROR: %s: %v", result.ID(), u.Description(), result.Err()))
		}
	}()

	return u.Execute(appRoot, ctx)
}
