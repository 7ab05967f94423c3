// Package io reads and writes grid models.
//
// # Import
//
// Use [ImportModel] to read a model from a file path, or [ReadJSON] and
// [ReadYAML] to read from any io.Reader:
//
//	m, err := io.ImportModel("simple-noise-model.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// ImportModel picks the decoder from the file extension: ".yaml" and ".yml"
// are read as YAML, everything else as JSON. Decoded models are validated
// with [grid.Model.Validate]. Errors carry codes from pkg/errors:
// FILE_NOT_FOUND for a missing file, INVALID_MODEL for malformed content.
//
// # Export
//
// Use [ExportJSON] to write a model to a file, or [WriteJSON] to write to any
// io.Writer. [OutputPath] derives an output file path from a model name, so
// a model called "simple-noise-model" converts to "simple-noise-model.scad".
//
// [grid.Model.Validate]: github.com/matzehuels/gridscad/pkg/grid.Model.Validate
package io
