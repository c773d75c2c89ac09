package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadError reports a document that could not be read, decoded or validated.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

type loadConfig struct {
	strict bool
}

type LoadOpt func(*loadConfig)

// WithStrict rejects fields the target type does not declare.
func WithStrict() LoadOpt {
	return func(c *loadConfig) {
		c.strict = true
	}
}

// LoadFile decodes the document at path into a new T and validates it.
// The format is chosen by extension: .json, .yaml or .yml.
func LoadFile[T ValidatingSpec](path string, opts ...LoadOpt) (T, error) {
	var zero T

	data, err := os.ReadFile(path)
	if err != nil {
		return zero, &LoadError{Path: path, Err: fmt.Errorf("reading file: %w", err)}
	}

	spec, err := Decode[T](filepath.Ext(path), data, opts...)
	if err != nil {
		return zero, &LoadError{Path: path, Err: err}
	}

	return spec, nil
}

// Decode decodes data in the format named by ext and validates the result.
func Decode[T ValidatingSpec](ext string, data []byte, opts ...LoadOpt) (T, error) {
	cfg := &loadConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var spec T
	switch strings.ToLower(ext) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		if cfg.strict {
			dec.DisallowUnknownFields()
		}
		if err := dec.Decode(&spec); err != nil {
			return spec, fmt.Errorf("unmarshalling json: %w", err)
		}
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return spec, fmt.Errorf("unmarshalling json: unexpected data after document")
		}

	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(cfg.strict)
		if err := dec.Decode(&spec); err != nil {
			if errors.Is(err, io.EOF) {
				return spec, fmt.Errorf("document is empty")
			}
			return spec, fmt.Errorf("unmarshalling yaml: %w", err)
		}
		if err := dec.Decode(&yaml.Node{}); !errors.Is(err, io.EOF) {
			return spec, fmt.Errorf("unmarshalling yaml: more than one document")
		}

	default:
		return spec, fmt.Errorf("unsupported file extension %q", ext)
	}

	if isNil(spec) {
		return spec, fmt.Errorf("document is empty")
	}

	if err := spec.Validate(); err != nil {
		return spec, fmt.Errorf("validating: %w", err)
	}

	return spec, nil
}
