// Package pkg provides the core libraries for gridscad.
//
// # Overview
//
// gridscad turns grid models (a list of cells, each with a position, a
// rotation and a shape type) into OpenSCAD scripts. The pkg directory is
// organized into:
//
//  1. [grid] - The model types and their JSON/YAML encoding
//  2. [scad] - Shape registry and statement formatting
//  3. [generate] - Random model generation
//  4. [pipeline] - Orchestration (convert → render) with caching
//  5. [preview], [io], [config], [cache] - Supporting infrastructure
//
// # Architecture
//
//	JSON/YAML model
//	       ↓
//	  [io] package (decode + validate)
//	       ↓
//	  [pipeline] package (cache lookup, render per format)
//	       ↓
//	  [scad] / [preview] packages
//	       ↓
//	  .scad / .json / .svg output
//
// # Quick Start
//
//	m, err := io.ImportModel("model.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	script, err := scad.Convert(m, scad.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(m.Metadata.Name+".scad", []byte(script), 0644)
//
// [grid]: https://pkg.go.dev/github.com/matzehuels/gridscad/pkg/grid
// [scad]: https://pkg.go.dev/github.com/matzehuels/gridscad/pkg/scad
// [generate]: https://pkg.go.dev/github.com/matzehuels/gridscad/pkg/generate
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/gridscad/pkg/pipeline
// [preview]: https://pkg.go.dev/github.com/matzehuels/gridscad/pkg/preview
// [io]: https://pkg.go.dev/github.com/matzehuels/gridscad/pkg/io
// [config]: https://pkg.go.dev/github.com/matzehuels/gridscad/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/gridscad/pkg/cache
package pkg
