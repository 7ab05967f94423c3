package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/gridscad/pkg/errors"
	"github.com/matzehuels/gridscad/pkg/grid"
)

// ReadJSON decodes a JSON model from r and validates it.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*grid.Model, error) {
	var m grid.Model
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidModel, err, "decode JSON")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// ReadYAML decodes a YAML model from r and validates it.
// ReadYAML does not close r.
func ReadYAML(r io.Reader) (*grid.Model, error) {
	var m grid.Model
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidModel, err, "decode YAML")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// ImportModel reads the model file at path.
func ImportModel(path string) (*grid.Model, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	read := ReadJSON
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		read = ReadYAML
	}

	m, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
