package scad

import (
	"github.com/matzehuels/gridscad/pkg/grid"
)

// Summary describes a model as the converter sees it.
type Summary struct {
	Name      string         `json:"name"`
	NoiseType string         `json:"noise_type,omitempty"`
	Cells     int            `json:"cells"`
	Types     map[string]int `json:"types"`
	Unknown   []string       `json:"unknown,omitempty"` // types missing from the registry
	Grid      *Bounds        `json:"grid,omitempty"`    // min/max cell coordinates
	Extent    *Bounds        `json:"extent,omitempty"`  // translated positions in output units
}

// Bounds is an axis-aligned rectangle. Max is inclusive.
type Bounds struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

func (b *Bounds) add(x, y float64) {
	b.MinX = min(b.MinX, x)
	b.MinY = min(b.MinY, y)
	b.MaxX = max(b.MaxX, x)
	b.MaxY = max(b.MaxY, y)
}

// Summarize counts cells per type and computes the grid and output extents.
// Unlike [Convert] it never fails: unknown types are listed, not rejected.
// Grid and Extent are nil for an empty model.
func Summarize(m *grid.Model, opts Options) Summary {
	opts = opts.withDefaults()
	s := Summary{
		Name:      m.Metadata.Name,
		NoiseType: m.Metadata.NoiseType,
		Cells:     len(m.Grid),
		Types:     make(map[string]int),
	}

	for i, c := range m.Grid {
		if _, seen := s.Types[c.Type]; !seen {
			if _, ok := opts.Registry.Lookup(c.Type); !ok {
				s.Unknown = append(s.Unknown, c.Type)
			}
		}
		s.Types[c.Type]++

		gx, gy := float64(c.Coords.X), float64(c.Coords.Y)
		ex, ey := gx*opts.CellWidth, gy*opts.CellHeight
		if i == 0 {
			s.Grid = &Bounds{MinX: gx, MinY: gy, MaxX: gx, MaxY: gy}
			s.Extent = &Bounds{MinX: ex, MinY: ey, MaxX: ex, MaxY: ey}
			continue
		}
		s.Grid.add(gx, gy)
		s.Extent.add(ex, ey)
	}
	return s
}
