package samples

import "errors"

// Sentinel errors for sample assembly. Callers match them with errors.Is.
var (
	// ErrMissingFeature reports feature names absent from the inputs.
	ErrMissingFeature = errors.New("missing feature")

	// ErrInvalidLength reports a feature whose sample count does not match
	// the rest of the batch.
	ErrInvalidLength = errors.New("invalid feature length")

	// ErrInvalidShape reports a feature tensor that is not a single column,
	// or a matrix with no dense form.
	ErrInvalidShape = errors.New("invalid feature shape")

	// ErrUnknownFieldType reports a type name with no field converter.
	ErrUnknownFieldType = errors.New("unknown field type")
)
