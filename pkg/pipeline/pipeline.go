// Package pipeline runs the load → convert → render flow shared by the CLI
// commands.
//
// A [Runner] takes a decoded model and produces one artifact per requested
// format:
//
//   - scad: the OpenSCAD script (see pkg/scad)
//   - json: a conversion summary (cell counts, bounds, unknown types)
//   - svg: a Graphviz preview of the grid (see pkg/preview)
//
// Artifacts are cached by model content and options, so converting an
// unchanged model again is a cache read.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Convert(ctx, model, pipeline.Options{
//	    Formats: []string{pipeline.FormatSCAD, pipeline.FormatSVG},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	script := result.Artifacts[pipeline.FormatSCAD]
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridscad/pkg/cache"
	"github.com/matzehuels/gridscad/pkg/errors"
	"github.com/matzehuels/gridscad/pkg/scad"
)

// Format constants for output formats.
const (
	FormatSCAD = "scad"
	FormatJSON = "json"
	FormatSVG  = "svg"
)

// DefaultFormat is produced when no format is requested.
const DefaultFormat = FormatSCAD

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSCAD: true,
	FormatJSON: true,
	FormatSVG:  true,
}

// Options configures a conversion.
type Options struct {
	Formats    []string
	CellWidth  float64
	CellHeight float64
	Newline    bool // separate statements with newlines
	Refresh    bool // skip cache reads (results are still written)

	Registry *scad.Registry `json:"-"`
	Logger   *log.Logger    `json:"-"` // per-call logger; Runner.Logger when nil
}

// Result contains the outputs of a conversion.
type Result struct {
	// ModelHash is the content hash of the model.
	ModelHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// CacheHits records which formats were served from cache.
	CacheHits map[string]bool

	Stats Stats
}

// Stats contains conversion statistics.
type Stats struct {
	Cells      int
	Statements int // statements in the scad artifact; 0 when scad was not requested
	Duration   time.Duration
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(formatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

func formatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	slices.Sort(names)
	return names
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// Duplicate formats are collapsed, keeping the first occurrence.
func (o *Options) ValidateAndSetDefaults() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.Formats = dedupe(o.Formats)

	if o.CellWidth < 0 || o.CellHeight < 0 {
		return errors.New(errors.ErrCodeInvalidInput,
			"cell dimensions must be positive (got %gx%g)", o.CellWidth, o.CellHeight)
	}
	if o.CellWidth == 0 {
		o.CellWidth = scad.CellWidth
	}
	if o.CellHeight == 0 {
		o.CellHeight = scad.CellHeight
	}
	if o.Registry == nil {
		o.Registry = scad.DefaultRegistry()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

func dedupe(formats []string) []string {
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// ConvertOptions returns the scad options equivalent to o.
func (o *Options) ConvertOptions() scad.Options {
	opts := scad.Options{
		CellWidth:  o.CellWidth,
		CellHeight: o.CellHeight,
		Registry:   o.Registry,
	}
	if o.Newline {
		opts.Separator = "\n"
	}
	return opts
}

// ArtifactKeyOpts returns cache key options for one format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	conv := o.ConvertOptions()
	shapes := make([]string, 0, o.Registry.Len())
	for _, name := range o.Registry.Names() {
		s, _ := o.Registry.Lookup(name)
		shapes = append(shapes, fmt.Sprintf("%s=%s", name, s()))
	}
	return cache.ArtifactKeyOpts{
		Format:     format,
		CellWidth:  conv.CellWidth,
		CellHeight: conv.CellHeight,
		Separator:  conv.Separator,
		Shapes:     shapes,
	}
}
