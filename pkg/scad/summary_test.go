package scad

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/gridscad/pkg/grid"
)

func TestSummarize(t *testing.T) {
	m := &grid.Model{
		Metadata: grid.Metadata{Name: "mixed", NoiseType: "noise"},
		Grid: []grid.Cell{
			cell(0, 0, 0, 0),
			cell(3, 1, 90, 0),
			{Type: "arch", Coords: grid.Coords{X: -1, Y: 2}},
			{Type: "arch", Coords: grid.Coords{X: 1, Y: 1}},
		},
	}

	got := Summarize(m, Options{})
	want := Summary{
		Name:      "mixed",
		NoiseType: "noise",
		Cells:     4,
		Types:     map[string]int{DefaultShape: 2, "arch": 2},
		Unknown:   []string{"arch"},
		Grid:      &Bounds{MinX: -1, MinY: 0, MaxX: 3, MaxY: 2},
		Extent:    &Bounds{MinX: -10, MinY: 0, MaxX: 30, MaxY: 20},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(&grid.Model{Metadata: grid.Metadata{Name: "empty"}}, Options{})
	if got.Cells != 0 || got.Grid != nil || got.Extent != nil || len(got.Unknown) != 0 {
		t.Errorf("Summarize(empty) = %+v", got)
	}
}
