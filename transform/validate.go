package transform

import (
	"fmt"
	"strings"
)

// ConfigError reports an invalid utility configuration parameter. It is
// raised at set time, before any execution takes place.
type ConfigError struct {
	Param  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Param, e.Reason)
}

// MustNonBlank validates that a required string parameter is neither empty
// nor whitespace-only. It panics with a *ConfigError otherwise, so that a
// misconfigured utility fails immediately at the setter rather than later at
// execution time (same posture as regexp.MustCompile).
func MustNonBlank(param, value string) {
	if strings.TrimSpace(value) == "" {
		panic(&ConfigError{Param: param, Reason: "must not be blank"})
	}
}

// MustNonEmpty validates that an optional-but-set string parameter is not the
// empty string. It panics with a *ConfigError otherwise.
func MustNonEmpty(param, value string) {
	if value == "" {
		panic(&ConfigError{Param: param, Reason: "must not be empty"})
	}
}
