package parsing

import "fmt"

// EmptyInputError indicates the caller supplied no resume text.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "resume text is empty"
}

// StrategyError records why one cascade strategy produced nothing. The
// orchestrator recovers it and surfaces it only as a warning on the result.
type StrategyError struct {
	Strategy string
	Message  string
	Cause    error
}

func (e *StrategyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s parsing failed: %s: %v", e.Strategy, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s parsing failed: %s", e.Strategy, e.Message)
}

func (e *StrategyError) Unwrap() error {
	return e.Cause
}
