// Package preview draws a top-down picture of a grid model with Graphviz.
//
// The grid is rendered as a single HTML-table node: one table cell per grid
// position, labelled with the cell type and its rotation. Positions without a
// cell stay blank, and positions holding several cells list all of them. The
// result is a quick visual check of a model before opening the generated
// script in OpenSCAD.
//
// Sparse models whose bounding box exceeds [MaxCells] positions are drawn
// with empty rows and columns dropped. If the occupied rows times the
// occupied columns still exceed [MaxCells], [ToDOT] fails.
package preview

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/gridscad/pkg/errors"
	"github.com/matzehuels/gridscad/pkg/grid"
)

// MaxCells caps the number of table cells in a preview.
const MaxCells = 1 << 16

// Options configures the preview.
type Options struct {
	// Title is shown above the grid. Defaults to the model name.
	Title string
}

// ToDOT converts a model to Graphviz DOT source.
func ToDOT(m *grid.Model, opts Options) (string, error) {
	tbl, err := table(m)
	if err != nil {
		return "", err
	}

	title := opts.Title
	if title == "" {
		title = m.Metadata.Name
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=plaintext, fontname=\"Helvetica\", fontsize=10];\n")
	if title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", title)
	}
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "  grid [label=<%s>];\n", tbl)
	buf.WriteString("}\n")
	return buf.String(), nil
}

func table(m *grid.Model) (string, error) {
	var b strings.Builder
	b.WriteString(`<TABLE BORDER="0" CELLBORDER="1" CELLSPACING="0" CELLPADDING="6">`)

	if len(m.Grid) == 0 {
		b.WriteString(`<TR><TD>empty</TD></TR></TABLE>`)
		return b.String(), nil
	}

	cells := make(map[grid.Coords][]grid.Cell)
	for _, c := range m.Grid {
		cells[c.Coords] = append(cells[c.Coords], c)
	}

	xs, ys := axes(m)
	if len(xs)*len(ys) > MaxCells {
		return "", errors.New(errors.ErrCodeInvalidInput,
			"grid too sparse to preview: %d occupied columns x %d occupied rows (max %d cells)",
			len(xs), len(ys), MaxCells)
	}

	for _, y := range ys {
		b.WriteString("<TR>")
		for _, x := range xs {
			at := cells[grid.Coords{X: x, Y: y}]
			if len(at) == 0 {
				b.WriteString(`<TD BGCOLOR="#f4f4f4"> </TD>`)
				continue
			}
			labels := make([]string, len(at))
			for i, c := range at {
				labels[i] = cellLabel(c)
			}
			b.WriteString(`<TD BGCOLOR="white">` + strings.Join(labels, "<BR/>") + "</TD>")
		}
		b.WriteString("</TR>")
	}
	b.WriteString("</TABLE>")
	return b.String(), nil
}

// axes returns the column and row coordinates to draw. The full bounding box
// is used when it fits in MaxCells; otherwise only occupied columns and rows.
func axes(m *grid.Model) (xs, ys []int) {
	minX, minY := m.Grid[0].Coords.X, m.Grid[0].Coords.Y
	maxX, maxY := minX, minY
	for _, c := range m.Grid {
		minX, maxX = min(minX, c.Coords.X), max(maxX, c.Coords.X)
		minY, maxY = min(minY, c.Coords.Y), max(maxY, c.Coords.Y)
	}

	// float64 keeps extreme coordinates from overflowing the area.
	area := (float64(maxX) - float64(minX) + 1) * (float64(maxY) - float64(minY) + 1)
	if area <= MaxCells {
		for i := 0; i <= maxX-minX; i++ {
			xs = append(xs, minX+i)
		}
		for i := 0; i <= maxY-minY; i++ {
			ys = append(ys, minY+i)
		}
		return xs, ys
	}

	seenX, seenY := make(map[int]bool), make(map[int]bool)
	for _, c := range m.Grid {
		if !seenX[c.Coords.X] {
			seenX[c.Coords.X] = true
			xs = append(xs, c.Coords.X)
		}
		if !seenY[c.Coords.Y] {
			seenY[c.Coords.Y] = true
			ys = append(ys, c.Coords.Y)
		}
	}
	slices.Sort(xs)
	slices.Sort(ys)
	return xs, ys
}

func cellLabel(c grid.Cell) string {
	return fmt.Sprintf(`<B>%s</B><BR/><FONT POINT-SIZE="8">%s,%s</FONT>`,
		html.EscapeString(c.Type),
		grid.FormatNumber(c.Rotation.X),
		grid.FormatNumber(c.Rotation.Y))
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// Render is ToDOT followed by RenderSVG.
func Render(ctx context.Context, m *grid.Model, opts Options) ([]byte, error) {
	dot, err := ToDOT(m, opts)
	if err != nil {
		return nil, err
	}
	return RenderSVG(ctx, dot)
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg tag so the image scales from a
// zero-origin viewBox instead of Graphviz's point-based width and height.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
