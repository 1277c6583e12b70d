package rbc

import "fmt"

// DateParseError reports a date field that does not match the statement's
// calendar format.
type DateParseError struct {
	Field string
	Value string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("parsing %s date %q: %v", e.Field, e.Value, e.Err)
}

func (e *DateParseError) Unwrap() error { return e.Err }

// NumberParseError reports a numeric field that is non-empty but not a
// decimal after separator stripping.
type NumberParseError struct {
	Field string
	Value string
	Err   error
}

func (e *NumberParseError) Error() string {
	return fmt.Sprintf("parsing %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *NumberParseError) Unwrap() error { return e.Err }

// MalformedRowError reports a row whose action could not be resolved from
// either the action field or the description heuristic.
type MalformedRowError struct {
	Description string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("cannot resolve action from row, description: %q", e.Description)
}

// UnknownActionError reports a resolved action outside the recognized set.
type UnknownActionError struct {
	Action string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action: %q", e.Action)
}

// PreconditionError reports a row that matched a known action but violated
// that action's expected statement shape. This means the broker changed the
// statement format in a way we have not anticipated.
type PreconditionError struct {
	Action string
	Detail string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Action, e.Detail)
}
