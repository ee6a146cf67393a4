package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mtkb13/framegen/pkg/model"
)

// ReadJSON decodes a JSON model from r and validates it.
//
// Unknown fields are rejected so that typos in hand-edited files surface
// as errors instead of silently dropped data. The decoded model must pass
// [model.Model.Validate]; connectivity is not required, so both frame
// models and plate meshes import cleanly.
func ReadJSON(r io.Reader) (*model.Model, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var m model.Model
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid model: %w", err)
	}
	return &m, nil
}

// ImportJSON reads a model from a JSON file at path.
// This is a convenience wrapper around [ReadJSON] for file-based input.
func ImportJSON(path string) (*model.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	m, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return m, nil
}
