package grid

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/gridscad/pkg/errors"
)

// Model is a grid description: metadata plus an ordered sequence of cells.
type Model struct {
	Metadata Metadata `json:"metadata" yaml:"metadata"`
	Grid     []Cell   `json:"grid" yaml:"grid"`
}

// Metadata identifies a model. Name also determines output file names.
type Metadata struct {
	Name      string `json:"name" yaml:"name"`
	NoiseType string `json:"noise_type,omitempty" yaml:"noise_type,omitempty"`
}

// Cell is one grid position with an associated shape and rotation.
type Cell struct {
	Type     string   `json:"type" yaml:"type"`
	Coords   Coords   `json:"coords" yaml:"coords"`
	Rotation Rotation `json:"rotation" yaml:"rotation"`
}

// Coords is an integer (x, y) grid position, encoded as [x, y].
type Coords struct {
	X, Y int
}

// Rotation holds rotation degrees around the X and Y axes, encoded as [rx, ry].
type Rotation struct {
	X, Y float64
}

// Len returns the number of cells in the model.
func (m *Model) Len() int {
	return len(m.Grid)
}

// Types returns the distinct cell types in first-seen order.
func (m *Model) Types() []string {
	seen := make(map[string]bool)
	var types []string
	for _, c := range m.Grid {
		if !seen[c.Type] {
			seen[c.Type] = true
			types = append(types, c.Type)
		}
	}
	return types
}

// Validate checks structural constraints that decoding cannot enforce.
// Registry membership is checked by the converter, not here.
func (m *Model) Validate() error {
	for i, c := range m.Grid {
		if c.Type == "" {
			return errors.New(errors.ErrCodeInvalidModel, "cell %d: missing type", i)
		}
	}
	return nil
}

// MarshalJSON encodes c as [x, y].
func (c Coords) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.X, c.Y})
}

// UnmarshalJSON decodes exactly two integers.
func (c *Coords) UnmarshalJSON(data []byte) error {
	var v []int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("coords: %w", err)
	}
	if len(v) != 2 {
		return fmt.Errorf("coords: want 2 values, got %d", len(v))
	}
	c.X, c.Y = v[0], v[1]
	return nil
}

// MarshalYAML encodes c as a two-element sequence.
func (c Coords) MarshalYAML() (any, error) {
	return []int{c.X, c.Y}, nil
}

// UnmarshalYAML decodes exactly two integers.
func (c *Coords) UnmarshalYAML(node *yaml.Node) error {
	var v []int
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("coords: %w", err)
	}
	if len(v) != 2 {
		return fmt.Errorf("coords: want 2 values, got %d", len(v))
	}
	c.X, c.Y = v[0], v[1]
	return nil
}

// MarshalJSON encodes r as [rx, ry].
func (r Rotation) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{r.X, r.Y})
}

// UnmarshalJSON decodes exactly two numbers.
func (r *Rotation) UnmarshalJSON(data []byte) error {
	var v []float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("rotation: %w", err)
	}
	if len(v) != 2 {
		return fmt.Errorf("rotation: want 2 values, got %d", len(v))
	}
	r.X, r.Y = v[0], v[1]
	return nil
}

// MarshalYAML encodes r as a two-element sequence.
func (r Rotation) MarshalYAML() (any, error) {
	return []float64{r.X, r.Y}, nil
}

// UnmarshalYAML decodes exactly two numbers.
func (r *Rotation) UnmarshalYAML(node *yaml.Node) error {
	var v []float64
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("rotation: %w", err)
	}
	if len(v) != 2 {
		return fmt.Errorf("rotation: want 2 values, got %d", len(v))
	}
	r.X, r.Y = v[0], v[1]
	return nil
}

// FormatNumber renders n in its shortest form: integral values carry no
// fractional part, so 90 prints as "90" and 22.5 as "22.5".
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
