package domain

import "fmt"

// InvalidArgumentError reports an input outside its accepted vocabulary or
// numeric domain. Valid describes what would have been accepted.
type InvalidArgumentError struct {
	Argument string
	Value    interface{}
	Valid    string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %q: expected %s", e.Argument, fmt.Sprintf("%v", e.Value), e.Valid)
}

// OutOfRangeError reports a query coordinate outside a table's defined span.
// Exclusive indicates the span is an open interval, so the endpoints
// themselves are rejected.
type OutOfRangeError struct {
	Name      string
	Value     float64
	Min       float64
	Max       float64
	Exclusive bool
}

func (e *OutOfRangeError) Error() string {
	if e.Exclusive {
		return fmt.Sprintf("%s %g out of range: must be within (%g, %g) exclusive", e.Name, e.Value, e.Min, e.Max)
	}
	return fmt.Sprintf("%s %g out of range: must be within [%g, %g]", e.Name, e.Value, e.Min, e.Max)
}

// NotImplementedError reports a recognized but unsupported variant, such as
// the near-field record set.
type NotImplementedError struct {
	Feature string
	Value   string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s %q is recognized but not implemented", e.Feature, e.Value)
}

// ComputationError reports a numerical failure, such as a non-convergent
// Newton iteration. The caller may retry with different solver settings.
type ComputationError struct {
	Operation  string
	Message    string
	Iterations int
}

func (e *ComputationError) Error() string {
	if e.Iterations > 0 {
		return fmt.Sprintf("%s failed after %d iterations: %s", e.Operation, e.Iterations, e.Message)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}
