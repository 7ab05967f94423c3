package errors

import (
	"strings"
	"testing"
)

func TestValidateModelName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"default generator name", "simple-noise-model", false},
		{"with dot", "model.v2", false},
		{"with spaces", "my model", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"too long", strings.Repeat("a", 201), true},
		{"slash", "out/model", true},
		{"backslash", "out\\model", true},
		{"traversal", "..", true},
		{"embedded traversal", "a..b", true},
		{"dot", ".", true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateModelName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateModelName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidName) {
				t.Errorf("ValidateModelName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidName)
			}
		})
	}
}

func TestValidateShapeName(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"structure1", false},
		{"tall-pillar", false},
		{"wall_2", false},
		{"", true},
		{"has space", true},
		{"semi;colon", true},
		{"paren(", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateShapeName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateShapeName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
