package application

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/vegorov/pubgen/internal/model"
	"github.com/vegorov/pubgen/internal/ports"
)

// PublicationService orchestrates one generation run: resolving the size
// tier, building the document, writing it to disk and optionally running
// the external schema validator.
type PublicationService struct {
	generator ports.DocumentGenerator
	registry  ports.TierRegistry
	validator ports.SchemaValidator
	log       *logrus.Logger
}

// NewPublicationService constructs a PublicationService from its ports.
func NewPublicationService(generator ports.DocumentGenerator, registry ports.TierRegistry, validator ports.SchemaValidator, log *logrus.Logger) *PublicationService {
	return &PublicationService{generator: generator, registry: registry, validator: validator, log: log}
}

// Request holds the parameters of one generation run.
type Request struct {
	// Size is the tier label, e.g. "1mb".
	Size string
	// Output is the target file path. Empty means DefaultOutputName(Size)
	// in the current directory.
	Output string
	// Schema is the schema file passed to the external validator.
	Schema string
	// Validate runs the external validator after writing the file.
	Validate bool
}

// Result describes a completed run.
type Result struct {
	Path      string
	SizeBytes int64
	Tier      ports.Tier
	// Validated is true only when the external validator ran and passed.
	Validated bool
}

// DefaultOutputName returns the output filename used when none is given.
func DefaultOutputName(size string) string {
	return fmt.Sprintf("large-publication-%s.json", size)
}

// Run executes a generation run. Validator problems are reported and
// swallowed: by that point generation already succeeded and the output file
// is preserved whatever the validation outcome.
func (s *PublicationService) Run(req Request) (*Result, error) {
	// 1. Resolve the size tier. This must fail before any I/O happens.
	tier, err := s.registry.For(req.Size)
	if err != nil {
		return nil, err
	}

	outPath := req.Output
	if outPath == "" {
		outPath = DefaultOutputName(req.Size)
	}

	// 2. Build the document tree in memory.
	publication := s.generator.Publication("large_test_pub_"+req.Size, tier)
	doc := &model.Document{Publications: []*model.Publication{publication}}

	// 3. Serialize and write, creating parent directories as needed.
	data, err := encodeDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	if dir := filepath.Dir(outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	result := &Result{Path: outPath, SizeBytes: int64(len(data)), Tier: tier}

	// 4. Optional external validation.
	if req.Validate {
		result.Validated = s.validate(req.Schema, outPath)
	}

	return result, nil
}

// validate runs the external validator and reports the outcome. It returns
// true only on a clean pass; every failure mode is a warning, never an error.
func (s *PublicationService) validate(schemaPath, dataPath string) bool {
	if _, err := os.Stat(schemaPath); err != nil {
		s.log.Warnf("schema file not found: %s, skipping validation", schemaPath)
		return false
	}
	if err := s.validator.Validate(schemaPath, dataPath); err != nil {
		if errors.Is(err, ports.ErrValidatorNotFound) {
			s.log.Warn("ajv-cli not found. Install with: npm install -g ajv-cli")
		} else {
			s.log.Warnf("JSON validation failed for %s: %v", dataPath, err)
		}
		return false
	}
	s.log.Infof("JSON validation passed for %s", dataPath)
	return true
}

// encodeDocument serializes with 2-space indentation, leaving HTML and
// non-ASCII characters unescaped to match the historical fixture format.
func encodeDocument(doc *model.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
