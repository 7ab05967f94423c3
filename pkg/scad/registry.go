package scad

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/gridscad/pkg/errors"
	"github.com/matzehuels/gridscad/pkg/grid"
)

// DefaultShape is the type name used by the generator and built into every
// default registry.
const DefaultShape = "structure1"

// Dimensions of the default structure.
const (
	StructHeight = 2
	StructWidth  = 6
	StructDepth  = 2
)

// Primitive is a rectangular prism with fixed dimensions.
type Primitive struct {
	Size [3]float64
}

// String renders the primitive as an OpenSCAD cube statement.
func (p Primitive) String() string {
	parts := make([]string, len(p.Size))
	for i, v := range p.Size {
		parts[i] = grid.FormatNumber(v)
	}
	return "cube([" + strings.Join(parts, ",") + "])"
}

// Shape produces the primitive for a cell type.
type Shape func() Primitive

// Cuboid returns a Shape that always yields a prism of the given size.
func Cuboid(height, width, depth float64) Shape {
	p := Primitive{Size: [3]float64{height, width, depth}}
	return func() Primitive { return p }
}

// Structure1 is the built-in default shape.
func Structure1() Primitive {
	return Primitive{Size: [3]float64{StructHeight, StructWidth, StructDepth}}
}

// Registry maps cell type names to shapes. The zero value is not usable; use
// [NewRegistry] or [DefaultRegistry].
type Registry struct {
	shapes map[string]Shape
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{shapes: make(map[string]Shape)}
}

// DefaultRegistry returns a registry holding the built-in shapes.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(DefaultShape, Structure1)
	return r
}

// Register adds a shape under name. Empty names, invalid names, nil shapes
// and duplicates are rejected.
func (r *Registry) Register(name string, s Shape) error {
	if err := errors.ValidateShapeName(name); err != nil {
		return err
	}
	if s == nil {
		return errors.New(errors.ErrCodeInvalidInput, "shape %q: nil shape", name)
	}
	if _, ok := r.shapes[name]; ok {
		return errors.New(errors.ErrCodeInvalidInput, "shape %q already registered", name)
	}
	r.shapes[name] = s
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, s Shape) {
	if err := r.Register(name, s); err != nil {
		panic(fmt.Sprintf("scad: %v", err))
	}
}

// Lookup returns the shape registered under name.
func (r *Registry) Lookup(name string) (Shape, bool) {
	s, ok := r.shapes[name]
	return s, ok
}

// Names returns all registered type names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.shapes))
	for name := range r.shapes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered shapes.
func (r *Registry) Len() int {
	return len(r.shapes)
}
