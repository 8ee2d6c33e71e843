// Package dijkstra defines the result type and configuration options for
// ShortestPath.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPath.
var ErrNilGraph = errors.New("dijkstra: graph is nil")

// Result is the outcome of a single ShortestPath query.
//
// When Found is false the query completed but start and end are not
// connected; TotalWeight is +Inf and Path is nil. A Result is never partially
// filled: Path is either the full start→end route or nil.
type Result struct {
	Found       bool
	TotalWeight float64
	Path        []string
}

// NotFound returns the Result reported for disconnected endpoints.
func NotFound() Result {
	return Result{Found: false, TotalWeight: math.Inf(1)}
}

// found builds a Found result.
func found(total float64, path []string) Result {
	return Result{Found: true, TotalWeight: total, Path: path}
}

// Hops returns the number of roads on the path (0 when not found).
func (r Result) Hops() int {
	if !r.Found || len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// Segments returns the consecutive (from, to) pairs of the path.
func (r Result) Segments() [][2]string {
	if r.Hops() == 0 {
		return nil
	}
	out := make([][2]string, 0, len(r.Path)-1)
	for i := 1; i < len(r.Path); i++ {
		out = append(out, [2]string{r.Path[i-1], r.Path[i]})
	}

	return out
}

// String renders the result as "30 [A -> B]" or "not found".
func (r Result) String() string {
	if !r.Found {
		return "not found"
	}

	return fmt.Sprintf("%g [%s]", r.TotalWeight, strings.Join(r.Path, " -> "))
}

// Options configures ShortestPath.
//
// EarlyExit   – stop as soon as the destination is popped from the frontier.
// MaxDistance – places whose distance would exceed this value are not explored.
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	EarlyExit   bool
	MaxDistance float64
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// DefaultOptions returns the defaults: EarlyExit on, no distance cap.
func DefaultOptions() Options {
	return Options{
		EarlyExit:   true,
		MaxDistance: math.Inf(1),
	}
}

// WithEarlyExit toggles stopping once the destination is settled. Disabling it
// settles every reachable place; the answer is identical either way.
func WithEarlyExit(enabled bool) Option {
	return func(o *Options) {
		o.EarlyExit = enabled
	}
}

// WithMaxDistance caps exploration at max. Panics if max is negative or NaN.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic("dijkstra: MaxDistance must be non-negative")
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}
