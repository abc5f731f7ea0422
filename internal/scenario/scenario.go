// Package scenario reads simulation scenario files.
//
// A file names a base input and, optionally, what-if variants of it:
//
//	name: Tokyo flat
//	input:
//	  propertyPrice: 30000000
//	  ...
//	scenarios:
//	  - name: rate up
//	    overrides:
//	      loanRate: 0.035
//
// Field names match the JSON API, so a request body and a scenario file are interchangeable.
package scenario

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/SscSPs/rental_cashflow_app/internal/apperrors"
	"github.com/SscSPs/rental_cashflow_app/internal/dto"
	"gopkg.in/yaml.v3"
)

// File is a parsed scenario file.
type File struct {
	Name      string                     `json:"name"`
	Input     dto.SimulationInputRequest `json:"input"`
	Scenarios []dto.ScenarioRequest      `json:"scenarios" binding:"omitempty,dive"`
}

// Load reads and validates the scenario file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes YAML (or JSON, which is YAML) and validates it with the API's binding rules.
// Unknown fields are rejected so typos do not silently fall back to zero.
func Parse(data []byte) (*File, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: invalid YAML: %v", apperrors.ErrValidation, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: scenario file is empty", apperrors.ErrValidation)
	}

	// Decimals only decode from JSON, so the document takes a JSON round trip
	normalized, err := toJSONCompatible(raw)
	if err != nil {
		return nil, err
	}
	encoded, err := json.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode scenario file: %w", err)
	}

	var f File
	dec := json.NewDecoder(bytes.NewReader(encoded))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	v, err := dto.NewValidator()
	if err != nil {
		return nil, err
	}
	if err := v.Struct(f); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return &f, nil
}

// toJSONCompatible converts YAML maps with non-string keys into string-keyed maps.
func toJSONCompatible(v interface{}) (interface{}, error) {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, val := range t {
			conv, err := toJSONCompatible(val)
			if err != nil {
				return nil, err
			}
			t[k] = conv
		}
		return t, nil
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: non-string key %v", apperrors.ErrValidation, k)
			}
			conv, err := toJSONCompatible(val)
			if err != nil {
				return nil, err
			}
			out[key] = conv
		}
		return out, nil
	case []interface{}:
		for i, val := range t {
			conv, err := toJSONCompatible(val)
			if err != nil {
				return nil, err
			}
			t[i] = conv
		}
		return t, nil
	}
	return v, nil
}
