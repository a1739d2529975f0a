// Package explore provides tunable options, result types and error
// definitions for breadth-first exploration of a grid.Grid.
package explore

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

// Sentinel errors for explorer construction.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("explore: grid is nil")

	// ErrStartOutOfBounds is returned when the start position lies outside the grid.
	ErrStartOutOfBounds = errors.New("explore: start position out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("explore: invalid option supplied")
)

// Predicate decides whether pos, discovered from parent at dist steps from
// the start, is accepted into the frontier. It is evaluated at most once per
// position for the lifetime of an Explorer: a rejected position is never
// reconsidered, even when another parent could reach it.
type Predicate func(pos, parent grid.Position, dist int) bool

// Step is one produced position together with the position it was reached
// from and its breadth-first distance. The start's Parent is itself.
type Step struct {
	Pos    grid.Position
	Parent grid.Position
	Dist   int
}

// Accept is the Predicate that never rejects (flood fill).
func Accept(grid.Position, grid.Position, int) bool { return true }

// Option configures exploration via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks to customise exploration.
type Options struct {
	// MaxDepth, if > 0, stops enqueueing positions farther than MaxDepth
	// steps. Positions beyond the limit are still marked visited.
	// A value of 0 disables the limit.
	MaxDepth int

	// OnEnqueue is called whenever a position enters the frontier.
	OnEnqueue func(Step)

	// OnVisit is called whenever a position is produced by Next.
	OnVisit func(Step)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit and no-op hooks.
func DefaultOptions() Options {
	return Options{
		MaxDepth:  0,
		OnEnqueue: func(Step) {},
		OnVisit:   func(Step) {},
	}
}

// WithMaxDepth limits exploration to positions at most d steps from start.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnEnqueue registers a callback run when a position is enqueued.
func WithOnEnqueue(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback run when a position is produced.
func WithOnVisit(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
