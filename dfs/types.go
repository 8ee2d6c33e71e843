// Package dfs defines types and options for simple-path enumeration.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start place does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrEndVertexNotFound indicates that the destination place does not exist.
	ErrEndVertexNotFound = errors.New("dfs: end vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Path is one loop-free route.
type Path struct {
	// Nodes lists the places from start to end inclusive.
	Nodes []string
	// EdgeIDs lists the roads taken; len(EdgeIDs) == len(Nodes)-1.
	EdgeIDs []string
	// Weight is the summed travel time.
	Weight float64
}

// Option configures SimplePaths.
type Option func(*Options)

// Options holds parameters for SimplePaths.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxDepth, if > 0, limits routes to at most MaxDepth roads. 0 means no limit.
	MaxDepth int

	// Limit, if > 0, stops after that many routes. 0 means no limit.
	Limit int

	err error
}

// DefaultOptions returns background context and no limits.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the Context. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits routes to d roads; d < 0 is ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithLimit stops enumeration after n routes; n < 0 is ErrOptionViolation.
func WithLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Limit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Limit = n
	}
}
