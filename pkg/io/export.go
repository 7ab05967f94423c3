package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/gridscad/pkg/errors"
	"github.com/matzehuels/gridscad/pkg/grid"
)

// WriteJSON encodes m as indented JSON and writes it to w.
// The output can be read back with [ReadJSON].
func WriteJSON(m *grid.Model, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes m to a JSON file at path, creating parent directories
// as needed.
func ExportJSON(m *grid.Model, path string) error {
	if err := mkdirParent(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(m, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// OutputPath returns dir/name.ext after checking that name is a safe file
// name. An empty dir means the current directory.
func OutputPath(dir, name, ext string) (string, error) {
	if err := errors.ValidateModelName(name); err != nil {
		return "", err
	}
	return filepath.Join(dir, name+"."+ext), nil
}

func mkdirParent(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// File is one output file for [WriteAll].
type File struct {
	Path string
	Data []byte
}

// WriteAll writes every file or none of them. Each file is staged in a
// temporary file next to its target; the targets are only replaced once all
// files are staged.
func WriteAll(files []File) error {
	staged := make([]string, 0, len(files))
	cleanup := func() {
		for _, tmp := range staged {
			os.Remove(tmp)
		}
	}

	for _, f := range files {
		tmp, err := stage(f)
		if err != nil {
			cleanup()
			return err
		}
		staged = append(staged, tmp)
	}

	for i, f := range files {
		if err := os.Rename(staged[i], f.Path); err != nil {
			cleanup()
			return fmt.Errorf("write %s: %w", f.Path, err)
		}
	}
	return nil
}

func stage(f File) (string, error) {
	if err := mkdirParent(f.Path); err != nil {
		return "", err
	}
	if info, err := os.Stat(f.Path); err == nil && info.IsDir() {
		return "", fmt.Errorf("write %s: is a directory", f.Path)
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.Path), "."+filepath.Base(f.Path)+".*")
	if err != nil {
		return "", fmt.Errorf("write %s: %w", f.Path, err)
	}
	if _, err := tmp.Write(f.Data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write %s: %w", f.Path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write %s: %w", f.Path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write %s: %w", f.Path, err)
	}
	return tmp.Name(), nil
}
