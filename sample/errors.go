package sample

import "errors"

var (
	// ErrMissingVariables indicates an assignment that omits active variables.
	ErrMissingVariables = errors.New("sample: assignment is missing active variables")
	// ErrUnexpectedVariables indicates an assignment with variables outside the active set.
	ErrUnexpectedVariables = errors.New("sample: assignment contains unexpected variables")
	// ErrNonPositiveOccurrences indicates an occurrence count below 1.
	ErrNonPositiveOccurrences = errors.New("sample: occurrence count must be at least 1")
	// ErrEmptyPool indicates a statistic requested on a pool with zero occurrences.
	ErrEmptyPool = errors.New("sample: pool is empty")
	// ErrInvalidTemperature indicates a non-positive sampling temperature.
	ErrInvalidTemperature = errors.New("sample: temperature must be positive")
	// ErrInvalidPartition indicates a non-positive partition function value.
	ErrInvalidPartition = errors.New("sample: partition function must be positive")
	// ErrDecode indicates a malformed serialized sample.
	ErrDecode = errors.New("sample: malformed serialized sample")
)
