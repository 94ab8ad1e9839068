package ui

// Status is how a prompt ended.
type Status int

const (
	// StatusCommitted means the user confirmed a selection.
	StatusCommitted Status = iota
	// StatusCancelled means the user aborted with a cancel key.
	StatusCancelled
	// StatusSkipped means the user picked the skip choice.
	StatusSkipped
	// StatusQuit means the user picked the quit choice.
	StatusQuit
)

func (s Status) String() string {
	switch s {
	case StatusCommitted:
		return "committed"
	case StatusCancelled:
		return "cancelled"
	case StatusSkipped:
		return "skipped"
	case StatusQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Result is the outcome of Selector.Prompt.
type Result struct {
	Status Status
	// Index is the committed row of a single-select prompt, or -1.
	Index int
	// Indices are the committed rows in ascending order.
	Indices []int
	// Choices are the committed items, parallel to Indices.
	Choices []Displayable
}

// Err maps every status other than StatusCommitted onto its sentinel.
func (r Result) Err() error {
	switch r.Status {
	case StatusCancelled:
		return ErrCancelled
	case StatusSkipped:
		return ErrSkipped
	case StatusQuit:
		return ErrQuit
	default:
		return nil
	}
}

// Value returns the first committed value, or nil.
func (r Result) Value() any {
	if len(r.Choices) == 0 {
		return nil
	}
	return r.Choices[0].Value()
}

// Values returns every committed value.
func (r Result) Values() []any {
	values := make([]any, len(r.Choices))
	for i, c := range r.Choices {
		values[i] = c.Value()
	}
	return values
}
