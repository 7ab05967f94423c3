package scad

import (
	"bytes"
	"fmt"
	"io"

	"github.com/matzehuels/gridscad/pkg/errors"
	"github.com/matzehuels/gridscad/pkg/grid"
)

// Default cell dimensions in output units.
const (
	CellWidth  = 10
	CellHeight = 10
)

// Options configures conversion. Zero fields take the package defaults.
type Options struct {
	CellWidth  float64   // X spacing between cells (default 10)
	CellHeight float64   // Y spacing between cells (default 10)
	Registry   *Registry // shape lookup (default DefaultRegistry())
	Separator  string    // inserted between statements (default none)
}

func (o Options) withDefaults() Options {
	if o.CellWidth == 0 {
		o.CellWidth = CellWidth
	}
	if o.CellHeight == 0 {
		o.CellHeight = CellHeight
	}
	if o.Registry == nil {
		o.Registry = DefaultRegistry()
	}
	return o
}

// Translate emits a translation moving a cell to its scaled grid position.
func Translate(c grid.Coords, cellWidth, cellHeight float64) string {
	x := cellWidth * float64(c.X)
	y := cellHeight * float64(c.Y)
	return "translate([" + grid.FormatNumber(x) + "," + grid.FormatNumber(y) + "])"
}

// Rotate emits a rotation with the given degrees. Values are not validated.
func Rotate(r grid.Rotation) string {
	return "rotate([" + grid.FormatNumber(r.X) + "," + grid.FormatNumber(r.Y) + "])"
}

// Statement renders a single cell.
func Statement(c grid.Cell, opts Options) (string, error) {
	opts = opts.withDefaults()
	shape, ok := opts.Registry.Lookup(c.Type)
	if !ok {
		return "", errors.New(errors.ErrCodeUnknownShape, "unknown shape type %q", c.Type)
	}
	return statement(c, shape, opts), nil
}

func statement(c grid.Cell, shape Shape, opts Options) string {
	return fmt.Sprintf("%s %s %s;",
		Translate(c.Coords, opts.CellWidth, opts.CellHeight),
		Rotate(c.Rotation),
		shape())
}

// Convert renders every cell of m in grid order and returns the script.
// Any unknown cell type fails the whole conversion.
func Convert(m *grid.Model, opts Options) (string, error) {
	var buf bytes.Buffer
	if _, err := Write(&buf, m, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Write renders m to w and returns the number of statements written.
//
// All statements are rendered before the first byte is written, so an
// unknown shape leaves w untouched.
func Write(w io.Writer, m *grid.Model, opts Options) (int, error) {
	opts = opts.withDefaults()

	stmts := make([]string, len(m.Grid))
	for i, c := range m.Grid {
		shape, ok := opts.Registry.Lookup(c.Type)
		if !ok {
			return 0, errors.New(errors.ErrCodeUnknownShape, "cell %d: unknown shape type %q", i, c.Type)
		}
		stmts[i] = statement(c, shape, opts)
	}

	for i, s := range stmts {
		if i > 0 && opts.Separator != "" {
			if _, err := io.WriteString(w, opts.Separator); err != nil {
				return i, err
			}
		}
		if _, err := io.WriteString(w, s); err != nil {
			return i, err
		}
	}
	return len(stmts), nil
}
