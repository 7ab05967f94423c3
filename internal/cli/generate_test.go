package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/gridscad/pkg/generate"
	"github.com/matzehuels/gridscad/pkg/io"
)

func TestGenerateWritesModel(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	outDir := filepath.Join(dir, "models")

	_, status, err := execute(t, "generate", "--height", "2", "--width", "3", "--seed", "7", "-o", outDir)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(status, "Generated "+generate.DefaultName) {
		t.Errorf("status missing success line: %q", status)
	}

	path := filepath.Join(outDir, generate.DefaultName+".json")
	m, err := io.ImportModel(path)
	if err != nil {
		t.Fatalf("import generated model: %v", err)
	}
	if m.Len() != 6 {
		t.Errorf("cells = %d, want 6", m.Len())
	}
	if m.Metadata.NoiseType != generate.DefaultNoiseType {
		t.Errorf("noise type = %q, want %q", m.Metadata.NoiseType, generate.DefaultNoiseType)
	}

	// The generated model converts without error.
	out, _, err := execute(t, "convert", path, "--stdout", "--no-cache")
	if err != nil {
		t.Fatalf("convert generated model: %v", err)
	}
	if got := strings.Count(out, ";"); got != 6 {
		t.Errorf("statements = %d, want 6", got)
	}
}

func TestGenerateSeedReproducible(t *testing.T) {
	isolate(t)

	args := []string{"generate", "--height", "4", "--width", "4", "--seed", "42", "--stdout"}
	first, _, err := execute(t, args...)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, _, err := execute(t, args...)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if first != second {
		t.Error("same seed should produce the same model")
	}
	if !strings.Contains(first, `"simple-noise-model"`) {
		t.Errorf("stdout should hold the model JSON: %q", first)
	}
}

func TestGenerateUniqueName(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "generate", "--height", "1", "--width", "1", "--name", "run", "--unique", "--stdout")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, `"run-`) {
		t.Errorf("unique name should extend the base name: %q", out)
	}
}

func TestGenerateInvalid(t *testing.T) {
	isolate(t)

	tests := [][]string{
		{"generate", "--height=-1", "--stdout"},
		{"generate", "--name", "a/b", "--stdout"},
		{"generate", "extra-arg"},
	}
	for _, args := range tests {
		if _, _, err := execute(t, args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}
