package drawstats

import "fmt"

// InvalidDrawError reports a draw that breaks the structural invariants.
// Index is zero when the offending numbers did not come from an indexed draw.
type InvalidDrawError struct {
	Index  int
	Reason string
}

func newInvalidDraw(index int, format string, args ...any) *InvalidDrawError {
	return &InvalidDrawError{
		Index:  index,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (e *InvalidDrawError) Error() string {
	if e.Index == 0 {
		return "invalid draw: " + e.Reason
	}
	return fmt.Sprintf("invalid draw #%d: %s", e.Index, e.Reason)
}

// ConfigurationError reports an aggregation parameter outside its domain.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %s", e.Field, e.Reason)
}
