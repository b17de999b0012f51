// Package yamlutil wraps YAML parsing so the rest of the module depends on a
// single entry point for configuration documents.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 256KB).
// Certificate configs are a few dozen lines.
var MaxInputSize = 256 << 10

var (
	ErrEmptyDocument  = errors.New("yamlutil: empty document")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

// DecodeStrict parses data into v, rejecting keys that v does not declare.
// A typo such as "outptDir" fails loudly instead of silently using a default.
func DecodeStrict(data []byte, v any) error {
	if len(data) == 0 {
		return ErrEmptyDocument
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Encode renders v as a block-style YAML document with indented sequences.
func Encode(v any) ([]byte, error) {
	out, err := yaml.MarshalWithOptions(v, yaml.Flow(false), yaml.IndentSequence(true))
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}
