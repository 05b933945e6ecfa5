package model

import "errors"

var (
	// ErrDiagonalTerm indicates an attempt to set a coupling J[{i,i}].
	// Diagonal terms belong in the linear bias vector, not the coupling matrix.
	ErrDiagonalTerm = errors.New("model: diagonal coupling terms are not allowed")
	// ErrInvalidSpin indicates a clamp value outside {-1, +1}.
	ErrInvalidSpin = errors.New("model: spin value must be -1 or +1")
	// ErrUnknownVariable indicates a variable that is not in the active set.
	ErrUnknownVariable = errors.New("model: variable not present in this model")
	// ErrClampConflict indicates re-clamping a variable to a different value.
	ErrClampConflict = errors.New("model: variable already clamped to a different value")
	// ErrDecode indicates a malformed serialized model.
	ErrDecode = errors.New("model: malformed serialized model")
)
