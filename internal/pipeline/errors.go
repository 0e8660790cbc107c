package pipeline

import (
	"fmt"
	"strings"
)

// The three terminal error kinds. All of them abort the pipeline before any
// output is produced and require the caller to re-supply corrected input.
// Value-level defects (unparseable dates, unmatched keys) are not errors;
// they are absorbed as nulls and defaults by the cleaner and reconciler.

// InputCountError reports a wrong number of uploaded files. The pipeline
// does not start.
type InputCountError struct {
	RunLogs       int
	MissingRoster bool
}

func (e *InputCountError) Error() string {
	if e.MissingRoster {
		return "master roster file is required"
	}
	return fmt.Sprintf("expected exactly 2 run log files, got %d", e.RunLogs)
}

// SchemaError reports required columns missing from an input's header row.
type SchemaError struct {
	Input   string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("input %q is missing required columns: %s", e.Input, strings.Join(e.Missing, ", "))
}

// FormatError reports an input that could not be parsed as its declared
// tabular format at all.
type FormatError struct {
	Input string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("input %q could not be parsed: %v", e.Input, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
