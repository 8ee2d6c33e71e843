package network

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/internal/metrics"
)

// Report is a query answer together with how long the engine took.
type Report struct {
	dijkstra.Result
	Elapsed time.Duration
}

// ElapsedMillis returns Elapsed in fractional milliseconds.
func (r Report) ElapsedMillis() float64 {
	return float64(r.Elapsed.Nanoseconds()) / float64(time.Millisecond)
}

// ElapsedSeconds returns Elapsed in fractional seconds.
func (r Report) ElapsedSeconds() float64 {
	return r.Elapsed.Seconds()
}

// Query computes the shortest route from start to end and times the engine
// call. Unknown places yield an error wrapping core.ErrUnknownNode; a
// disconnected pair is a Report whose Found is false.
func (n *Network) Query(start, end string) (Report, error) {
	begin := time.Now()
	res, err := dijkstra.ShortestPath(n.g, start, end)
	elapsed := time.Since(begin)

	entry := n.log.WithFields(logrus.Fields{
		"from":    start,
		"to":      end,
		"elapsed": elapsed.String(),
	})
	if err != nil {
		n.obs.ObserveQuery(metrics.OutcomeError, elapsed)
		entry.WithError(err).Debug("route query rejected")
		return Report{}, err
	}

	outcome := metrics.OutcomeFound
	if !res.Found {
		outcome = metrics.OutcomeNotFound
	}
	n.obs.ObserveQuery(outcome, elapsed)
	entry.WithFields(logrus.Fields{"outcome": outcome, "hops": res.Hops()}).Debug("route query answered")

	return Report{Result: res, Elapsed: elapsed}, nil
}

// IsUnknownPlace reports whether err stems from a place missing in the network.
func IsUnknownPlace(err error) bool {
	return errors.Is(err, core.ErrUnknownNode)
}
