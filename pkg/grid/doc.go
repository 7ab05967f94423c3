// Package grid defines the grid model consumed by the converter and produced
// by the generator.
//
// A [Model] is a named, ordered list of [Cell] values. Each cell sits at an
// integer grid position, carries a rotation in degrees around the X and Y
// axes, and names a shape type that the converter looks up in its registry.
//
// # JSON Format
//
//	{
//	  "metadata": {"name": "simple-noise-model", "noise_type": "noise"},
//	  "grid": [
//	    {"type": "structure1", "coords": [0, 0], "rotation": [90, 0]},
//	    {"type": "structure1", "coords": [1, 0], "rotation": [0, -90]}
//	  ]
//	}
//
// Both coords and rotation are two-element arrays. Any other length is
// rejected during decoding. Cell order is significant: the converter emits
// one statement per cell in grid order.
package grid
