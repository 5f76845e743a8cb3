package ports

import "errors"

// ErrValidatorNotFound indicates the external validator binary is not
// installed. Callers treat it as a soft failure: the generated file is kept
// and the run continues.
var ErrValidatorNotFound = errors.New("validator binary not found")

// SchemaValidator is the port for validating a generated data file against
// a JSON schema.
type SchemaValidator interface {
	// Validate checks dataPath against schemaPath. A nil return means the
	// document conforms to the schema.
	Validate(schemaPath, dataPath string) error
}
