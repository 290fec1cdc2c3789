package main

import (
	"context"
	"sync/atomic"

	"github.com/joshbohde/park"
	"golang.org/x/sync/semaphore"
)

// Turnstile is the surface the simulated visitors use. The park monitor
// implements it with per-gate bookkeeping; the weighted semaphore is the
// baseline it is raced against.
type Turnstile interface {
	Enter(gate string)
	Leave(gate string)
	Inside() int
}

type Monitor struct {
	p *park.Park
}

func NewMonitor(capacity int, reporter park.Reporter) *Monitor {
	return &Monitor{
		p: park.New(park.Options{
			Capacity: capacity,
			Reporter: reporter,
		}),
	}
}

func (m *Monitor) Enter(gate string) { m.p.Enter(gate) }
func (m *Monitor) Leave(gate string) { m.p.Leave(gate) }
func (m *Monitor) Inside() int       { return m.p.Occupancy() }

// Weighted admits through a weighted semaphore. It keeps no per-gate
// counts and its Leave never blocks; it exists to show what the monitor's
// extra bookkeeping costs.
type Weighted struct {
	sem *semaphore.Weighted
	cur int64
}

func NewWeighted(capacity int) *Weighted {
	return &Weighted{sem: semaphore.NewWeighted(int64(capacity))}
}

func (w *Weighted) Enter(gate string) {
	// Background context: entry blocks without timeout, like the monitor.
	_ = w.sem.Acquire(context.Background(), 1)
	atomic.AddInt64(&w.cur, 1)
}

func (w *Weighted) Leave(gate string) {
	atomic.AddInt64(&w.cur, -1)
	w.sem.Release(1)
}

func (w *Weighted) Inside() int {
	return int(atomic.LoadInt64(&w.cur))
}
