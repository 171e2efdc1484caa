package argv

// Outcome is the tri-state classification of a parse result.
type Outcome int

const (
	// OutcomeSuccess means every argument resolved and the aggregate
	// value was produced.
	OutcomeSuccess Outcome = iota
	// OutcomeEarlyExit means an early-exit flag matched; Message holds
	// the text to display and the caller decides the exit code.
	OutcomeEarlyExit
	// OutcomeFailure means one or more errors were collected.
	OutcomeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeEarlyExit:
		return "early-exit"
	case OutcomeFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Result is the outcome of one Parse call.
type Result[T any] struct {
	Outcome Outcome
	// Value holds the aggregate on success.
	Value T
	// Message holds the early-exit text.
	Message string
	// Errors holds every problem found in one pass, in encounter order.
	Errors []error
}

// Ok reports whether the parse succeeded.
func (r Result[T]) Ok() bool {
	return r.Outcome == OutcomeSuccess
}
