// Package scad converts grid models into OpenSCAD scripts.
//
// Each [grid.Cell] becomes one statement made of a translation, a rotation
// and the primitive produced by the cell's shape:
//
//	translate([10,0]) rotate([90,0]) cube([2,6,2]);
//
// Grid coordinates are scaled by the cell dimensions (10 x 10 by default) so
// neighbouring cells do not overlap. Rotations are passed through unchanged.
// Statements are concatenated in grid order.
//
// # Shapes
//
// Shapes live in a [Registry] keyed by the cell type name. The default
// registry knows a single shape, "structure1", a 2 x 6 x 2 cuboid. Callers can
// register further cuboids, typically from the TOML config:
//
//	reg := scad.DefaultRegistry()
//	reg.MustRegister("pillar", scad.Cuboid(2, 2, 8))
//
// A cell whose type is missing from the registry fails the whole conversion
// with an UNKNOWN_SHAPE error; no partial output is produced.
package scad
