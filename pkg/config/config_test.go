package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/gridscad/pkg/errors"
)

const sampleConfig = `
[cell]
width = 12.5
height = 8

[output]
formats = ["scad", "svg"]
newline = true

[[shape]]
name = "pillar"
size = [2, 2, 8]

[[shape]]
name = "slab"
size = [6, 6, 1]
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := &Config{
		Cell:   Cell{Width: 12.5, Height: 8},
		Output: Output{Formats: []string{"scad", "svg"}, Newline: true},
		Shapes: []Shape{
			{Name: "pillar", Size: [3]float64{2, 2, 8}},
			{Name: "slab", Size: [3]float64{6, 6, 1}},
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDefaultsKept(t *testing.T) {
	cfg, err := Parse([]byte("[output]\nnewline = true\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Cell.Width != 10 || cfg.Cell.Height != 10 {
		t.Errorf("Cell = %+v, want defaults", cfg.Cell)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"syntax", "[cell\nwidth = 1"},
		{"unknown key", "[cell]\ndepth = 3\n"},
		{"zero width", "[cell]\nwidth = 0\n"},
		{"negative shape", "[[shape]]\nname = \"x\"\nsize = [1, -1, 1]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.input)); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tt.input)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	if err != nil {
		t.Fatal(err)
	}
	reg, err := cfg.Registry()
	if err != nil {
		t.Fatalf("Registry: %v", err)
	}
	if diff := cmp.Diff([]string{"pillar", "slab", "structure1"}, reg.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	s, _ := reg.Lookup("slab")
	if got := s().String(); got != "cube([6,6,1])" {
		t.Errorf("slab = %q", got)
	}
}

func TestRegistryDuplicateBuiltin(t *testing.T) {
	cfg := Default()
	cfg.Shapes = []Shape{{Name: "structure1", Size: [3]float64{1, 1, 1}}}
	if _, err := cfg.Registry(); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Registry() error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}
	if len(cfg.Shapes) != 2 {
		t.Errorf("Shapes = %d, want 2", len(cfg.Shapes))
	}
}

func TestLoadMissingExplicit(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestLoadMissingDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load(\"\") mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	path := filepath.Join(home, appName, fileName)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[cell]\nwidth = 4\nheight = 4\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Cell.Width != 4 || cfg.Path != path {
		t.Errorf("Load() = %+v", cfg)
	}
}
