package diag

import "fmt"

// AggregateError bundles the diagnostics of one construction into an error.
type AggregateError struct {
	Diagnostics []Diagnostic
}

func (e *AggregateError) Error() string {
	if len(e.Diagnostics) == 1 {
		return e.Diagnostics[0].Error()
	}
	msg := fmt.Sprintf("%d diagnostics:\n", len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		msg += fmt.Sprintf("  %d. %s\n", i+1, d.Error())
	}
	return msg
}

// Aggregate returns nil for an empty slice, otherwise an *AggregateError.
func Aggregate(ds []Diagnostic) error {
	if len(ds) == 0 {
		return nil
	}
	out := make([]Diagnostic, len(ds))
	copy(out, ds)
	return &AggregateError{Diagnostics: out}
}

// Diagnostics returns the diagnostics carried by err if it is an
// *AggregateError. Otherwise returns nil.
func Diagnostics(err error) []Diagnostic {
	if aggr, ok := err.(*AggregateError); ok {
		return aggr.Diagnostics
	}
	return nil
}
