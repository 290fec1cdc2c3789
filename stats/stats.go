// Package stats accumulates a quantile stream of the time visitors spend
// blocked at a gate.
package stats

import (
	"time"

	"github.com/bmizerany/perks/quantile"
)

type Waits struct {
	stream  *quantile.Stream
	samples chan float64
	done    chan struct{}
}

// A Timer marks one wait: start it before blocking, mark it once admitted.
type Timer struct {
	start   time.Time
	samples chan float64
}

func (t Timer) Mark() {
	elapsed := time.Since(t.start)
	t.samples <- float64(elapsed.Nanoseconds())
}

func New() Waits {
	samples := make(chan float64, 10)
	stream := quantile.NewTargeted(0.5, 0.95, 0.99)
	done := make(chan struct{})

	go func() {
		for s := range samples {
			stream.Insert(s)
		}
		done <- struct{}{}
	}()

	return Waits{
		samples: samples,
		stream:  stream,
		done:    done,
	}
}

func (w Waits) Time() Timer {
	return Timer{
		start:   time.Now(),
		samples: w.samples,
	}
}

// Query returns the wait duration at the given quantile. Call only after
// the run's timers have all marked; the stream itself is not locked.
func (w Waits) Query(quantile float64) time.Duration {
	return time.Duration(w.stream.Query(quantile))
}

func (w Waits) Close() {
	close(w.samples)
	<-w.done
}
