// Package maze defines the shared generator surface: sentinel errors,
// functional options, the Maze result type, and the method dispatcher.
package maze

import (
	"errors"

	"github.com/lvkas/mazekit/grid"
)

var (
	// ErrInvalidDimensions indicates width < 1 or height < 1; no maze can
	// be generated and no mutation has begun.
	ErrInvalidDimensions = errors.New("maze: width and height must be at least 1")

	// ErrStartOutOfBounds indicates the requested start cell lies outside
	// [0,width)×[0,height). Returned by the start-taking generators only.
	ErrStartOutOfBounds = errors.New("maze: start point outside the grid")

	// ErrUnknownMethod indicates Generate was given a method name it does
	// not recognize.
	ErrUnknownMethod = errors.New("maze: unknown generation method")
)

// Generation method names accepted by Generate.
const (
	// MethodDFS selects the depth-first search carver (explicit stack).
	MethodDFS = "dfs"
	// MethodKruskal selects union-find edge selection over a shuffled edge pool.
	MethodKruskal = "kruskal"
	// MethodPrim selects randomized frontier growth from a start cell.
	MethodPrim = "prim"
	// MethodRecursiveDivision selects recursive wall building on a fully
	// connected grid.
	MethodRecursiveDivision = "recursive-division"
	// MethodBinaryTree selects the memoryless raster-order west/north carver.
	MethodBinaryTree = "binary-tree"
	// MethodSidewinder selects row-local run carving with northward closures.
	MethodSidewinder = "sidewinder"
)

// Maze is a generated grid.Grid together with per-cell metadata collected
// during generation. The grid's connection relation encodes the passages:
// two cells are connected iff a passage exists between them.
type Maze struct {
	*grid.Grid

	// RootDistance maps each cell ID to its tree distance from the start
	// cell. Populated by the rooted growers (DFS, Prim); nil for the
	// generators that carve without a root.
	RootDistance []int
}

// Option configures optional generator behavior.
// Use with DFS(w, h, opts...) or any other generator entry point.
type Option func(*GenOptions)

// GenOptions holds configurable parameters shared by all generators.
type GenOptions struct {
	// Seed initializes the pseudo-random stream for the call. Seed 0
	// selects a fixed default stream; generation is deterministic for any
	// value. Default is 0.
	Seed int64

	// Start is the cell DFS and Prim grow from. The other generators
	// ignore it. Default is the origin (0,0).
	Start grid.Point
}

// DefaultOptions returns a GenOptions struct with:
//   - Seed 0 (fixed default pseudo-random stream)
//   - Start at the origin (0,0)
func DefaultOptions() GenOptions {
	return GenOptions{
		Seed:  0,
		Start: grid.Point{X: 0, Y: 0},
	}
}

// WithSeed returns an Option that pins the pseudo-random stream for the
// call. Identical (width, height, start, seed) inputs always produce an
// identical maze topology.
func WithSeed(seed int64) Option {
	return func(o *GenOptions) {
		o.Seed = seed
	}
}

// WithStart returns an Option that sets the start cell for the rooted
// generators (DFS, Prim). Ignored by the others.
func WithStart(x, y int) Option {
	return func(o *GenOptions) {
		o.Start = grid.Point{X: x, Y: y}
	}
}

// applyOptions folds opts over DefaultOptions.
func applyOptions(opts []Option) GenOptions {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// validDimensions reports whether a non-degenerate maze can be generated.
func validDimensions(width, height int) bool {
	return width >= 1 && height >= 1
}

// Generate selects and runs a generator by method name.
//
//   - MethodDFS:               Generate calls DFS(width, height, opts...).
//   - MethodKruskal:           Kruskal(width, height, opts...).
//   - MethodPrim:              Prim(width, height, opts...).
//   - MethodRecursiveDivision: RecursiveDivision(width, height, opts...).
//   - MethodBinaryTree:        BinaryTree(width, height, opts...).
//   - MethodSidewinder:        Sidewinder(width, height, opts...).
//   - anything else:           returns ErrUnknownMethod.
//
// Note: this is optional scaffolding — each generator can be called directly.
func Generate(method string, width, height int, opts ...Option) (*Maze, error) {
	switch method {
	case MethodDFS:
		return DFS(width, height, opts...)
	case MethodKruskal:
		return Kruskal(width, height, opts...)
	case MethodPrim:
		return Prim(width, height, opts...)
	case MethodRecursiveDivision:
		return RecursiveDivision(width, height, opts...)
	case MethodBinaryTree:
		return BinaryTree(width, height, opts...)
	case MethodSidewinder:
		return Sidewinder(width, height, opts...)
	default:
		return nil, ErrUnknownMethod
	}
}

// Methods returns the method names accepted by Generate, in a fixed order.
func Methods() []string {
	return []string{
		MethodDFS,
		MethodKruskal,
		MethodPrim,
		MethodRecursiveDivision,
		MethodBinaryTree,
		MethodSidewinder,
	}
}
