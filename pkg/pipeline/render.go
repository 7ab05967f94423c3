package pipeline

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/matzehuels/gridscad/pkg/errors"
	"github.com/matzehuels/gridscad/pkg/grid"
	"github.com/matzehuels/gridscad/pkg/preview"
	"github.com/matzehuels/gridscad/pkg/scad"
)

// Render produces a single artifact for m in the given format.
func Render(ctx context.Context, m *grid.Model, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSCAD:
		data, _, err := renderSCAD(m, opts)
		return data, err
	case FormatJSON:
		summary := scad.Summarize(m, opts.ConvertOptions())
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode summary")
		}
		return append(data, '\n'), nil
	case FormatSVG:
		data, err := preview.Render(ctx, m, preview.Options{})
		if err != nil {
			if errors.GetCode(err) != "" {
				return nil, err
			}
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render preview")
		}
		return data, nil
	default:
		return nil, ValidateFormat(format)
	}
}

// renderSCAD renders the script and returns the number of statements written.
func renderSCAD(m *grid.Model, opts Options) ([]byte, int, error) {
	var buf bytes.Buffer
	n, err := scad.Write(&buf, m, opts.ConvertOptions())
	if err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), n, nil
}

// CountStatements returns the number of statements in a rendered script.
// Every statement ends in exactly one ';' and no other ';' occurs.
func CountStatements(script []byte) int {
	return bytes.Count(script, []byte(";"))
}

// CheckShapes reports the first cell whose type is missing from the registry.
func CheckShapes(m *grid.Model, reg *scad.Registry) error {
	for i, c := range m.Grid {
		if _, ok := reg.Lookup(c.Type); !ok {
			return errors.New(errors.ErrCodeUnknownShape, "cell %d: unknown shape type %q", i, c.Type)
		}
	}
	return nil
}
