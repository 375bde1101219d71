package normalize

import (
	"errors"
	"fmt"
)

// ErrConfig is matched by every configuration error the resolver returns.
var ErrConfig = errors.New("configuration error")

// Sentinel causes wrapped by ConfigError.
var (
	ErrUnknownParam = errors.New("unknown parameter")
	ErrInvalidValue = errors.New("invalid value")
	ErrDuplicate    = errors.New("parameter set more than once")
	ErrFlagString   = errors.New("malformed flag string")
	ErrFlagParse    = errors.New("flag parse error")
)

// ConfigError reports a parameter that could not be accepted.
type ConfigError struct {
	Key   string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Key == "":
		return fmt.Sprintf("%v: %v", ErrConfig, e.Err)
	case e.Value == "":
		return fmt.Sprintf("%v: %q: %v", ErrConfig, e.Key, e.Err)
	default:
		return fmt.Sprintf("%v: %q=%q: %v", ErrConfig, e.Key, e.Value, e.Err)
	}
}

func (e *ConfigError) Unwrap() []error {
	return []error{ErrConfig, e.Err}
}
