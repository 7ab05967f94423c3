package scad_test

import (
	"fmt"

	"github.com/matzehuels/gridscad/pkg/grid"
	"github.com/matzehuels/gridscad/pkg/scad"
)

func ExampleConvert() {
	m := &grid.Model{
		Metadata: grid.Metadata{Name: "demo"},
		Grid: []grid.Cell{
			{Type: "structure1", Coords: grid.Coords{X: 0, Y: 0}, Rotation: grid.Rotation{X: 0, Y: 0}},
			{Type: "structure1", Coords: grid.Coords{X: 1, Y: 2}, Rotation: grid.Rotation{X: 90, Y: -90}},
		},
	}

	out, err := scad.Convert(m, scad.Options{Separator: "\n"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	// Output:
	// translate([0,0]) rotate([0,0]) cube([2,6,2]);
	// translate([10,20]) rotate([90,-90]) cube([2,6,2]);
}

func ExampleRegistry_Register() {
	reg := scad.DefaultRegistry()
	if err := reg.Register("pillar", scad.Cuboid(2, 2, 8)); err != nil {
		fmt.Println(err)
		return
	}

	s, _ := reg.Lookup("pillar")
	fmt.Println(reg.Names())
	fmt.Println(s())
	// Output:
	// [pillar structure1]
	// cube([2,2,8])
}
