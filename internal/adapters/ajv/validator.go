// Package ajv shells out to ajv-cli for JSON schema validation.
package ajv

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/vegorov/pubgen/internal/ports"
)

// Validator runs `ajv validate -s <schema> -d <data>` and maps the exit code
// to a validation result.
type Validator struct {
	// Command is the validator binary to invoke. Empty means "ajv".
	Command string
}

// New creates a Validator using the ajv binary from PATH.
func New() ports.SchemaValidator {
	return &Validator{}
}

var _ ports.SchemaValidator = (*Validator)(nil)

// Validate checks dataPath against schemaPath. A missing binary is reported
// as ports.ErrValidatorNotFound so callers can soft-degrade; any other
// failure carries the validator's stderr output.
func (v *Validator) Validate(schemaPath, dataPath string) error {
	bin := v.Command
	if bin == "" {
		bin = "ajv"
	}
	schemaAbs, err := filepath.Abs(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to resolve schema path %s: %w", schemaPath, err)
	}
	dataAbs, err := filepath.Abs(dataPath)
	if err != nil {
		return fmt.Errorf("failed to resolve data path %s: %w", dataPath, err)
	}

	cmd := exec.Command(bin, "validate", "-s", schemaAbs, "-d", dataAbs)
	cmd.Dir = filepath.Dir(dataAbs)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %s", ports.ErrValidatorNotFound, bin)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return fmt.Errorf("schema validation failed for %s: %s", dataPath, msg)
	}
	return nil
}
