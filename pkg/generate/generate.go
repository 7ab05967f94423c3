// Package generate builds random grid models for exercising the converter.
//
// Every generated cell uses the same shape type and draws its rotation
// independently per axis from a small fixed set. Generation is seeded, so a
// given [Options] value always produces the same model.
package generate

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/matzehuels/gridscad/pkg/errors"
	"github.com/matzehuels/gridscad/pkg/grid"
	"github.com/matzehuels/gridscad/pkg/scad"
)

// Defaults for generated models.
const (
	DefaultName      = "simple-noise-model"
	DefaultNoiseType = "noise"
	DefaultType      = scad.DefaultShape
)

// MaxCells caps Height*Width.
const MaxCells = 1 << 20

var (
	// DefaultRotationsX are the candidate rotations around the X axis.
	DefaultRotationsX = []float64{0, 90}

	// DefaultRotationsY are the candidate rotations around the Y axis.
	DefaultRotationsY = []float64{0, -90}
)

// Options configures model generation. Zero fields take the defaults above.
type Options struct {
	Height     int       // number of rows
	Width      int       // number of cells per row
	Type       string    // shape type of every cell
	Name       string    // metadata name
	NoiseType  string    // metadata noise type
	Seed       uint64    // PCG seed
	Unique     bool      // append a short random suffix to Name
	RotationsX []float64 // candidate X rotations
	RotationsY []float64 // candidate Y rotations
}

func (o Options) withDefaults() Options {
	if o.Type == "" {
		o.Type = DefaultType
	}
	if o.Name == "" {
		o.Name = DefaultName
	}
	if o.NoiseType == "" {
		o.NoiseType = DefaultNoiseType
	}
	if len(o.RotationsX) == 0 {
		o.RotationsX = DefaultRotationsX
	}
	if len(o.RotationsY) == 0 {
		o.RotationsY = DefaultRotationsY
	}
	return o
}

// Generate builds a Height x Width model. Rows are emitted in order; within a
// row, cells run along X, so the cell at row r, column c has coords [c, r].
func Generate(opts Options) (*grid.Model, error) {
	if opts.Height < 0 || opts.Width < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"grid dimensions must be non-negative (got %dx%d)", opts.Height, opts.Width)
	}
	if opts.Height > 0 && opts.Width > MaxCells/opts.Height {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"grid %dx%d exceeds %d cells", opts.Height, opts.Width, MaxCells)
	}
	opts = opts.withDefaults()

	name := opts.Name
	if opts.Unique {
		name += "-" + uuid.NewString()[:8]
	}
	if err := errors.ValidateModelName(name); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0xdeadbeef))
	cells := make([]grid.Cell, 0, opts.Height*opts.Width)
	for y := range opts.Height {
		for x := range opts.Width {
			cells = append(cells, grid.Cell{
				Type:   opts.Type,
				Coords: grid.Coords{X: x, Y: y},
				Rotation: grid.Rotation{
					X: pick(rng, opts.RotationsX),
					Y: pick(rng, opts.RotationsY),
				},
			})
		}
	}

	return &grid.Model{
		Metadata: grid.Metadata{Name: name, NoiseType: opts.NoiseType},
		Grid:     cells,
	}, nil
}

func pick(rng *rand.Rand, choices []float64) float64 {
	return choices[rng.IntN(len(choices))]
}
