// Package park implements a capacity-bounded occupancy monitor. A Park
// admits visitors through named gates up to a fixed capacity, tracking a
// per-gate breakdown alongside the shared total. Enter blocks while the
// park is full and Leave blocks while it is empty; both resume as soon as
// a concurrent movement makes the operation possible again.
package park

import (
	"sync"
)

// DefaultCapacity is the occupancy bound used when Options.Capacity is unset.
const DefaultCapacity = 50

// Options are options to configure a Park.
type Options struct {
	Capacity int      // The maximum number of visitors inside at once. Defaults to DefaultCapacity.
	Reporter Reporter // Receives a status event after every movement. May be nil.
}

// Park serializes all occupancy bookkeeping behind a single lock. Both
// operations are total: they never fail, they block until their guard is
// satisfied. The zero value is not usable; construct with New.
type Park struct {
	mu    sync.Mutex
	moved *sync.Cond

	capacity int
	reporter Reporter

	occupancy int
	gates     map[string]int
}

func New(opts Options) *Park {
	capacity := opts.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	p := &Park{
		capacity: capacity,
		reporter: opts.Reporter,
		gates:    make(map[string]int),
	}
	p.moved = sync.NewCond(&p.mu)

	return p
}

// Enter admits one visitor through the named gate, blocking while the park
// is at capacity. The gate's counter is created on first use. There is no
// timeout: if no visitor ever leaves a full park, Enter blocks forever.
func (p *Park) Enter(gate string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.gates[gate]; !ok {
		p.gates[gate] = 0
	}

	// Re-check after every wake; a broadcast wakes waiters whose guard
	// may still be false.
	for p.occupancy >= p.capacity {
		p.moved.Wait()
	}

	p.occupancy++
	p.gates[gate]++

	p.report(gate, Entered)
	p.verify()
	p.moved.Broadcast()
}

// Leave records one visitor leaving through the named gate, blocking while
// the park is empty. Only the shared total is bounded: a gate's own counter
// goes negative when leaves through it outnumber enters through it.
func (p *Park) Leave(gate string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.gates[gate]; !ok {
		p.gates[gate] = 0
	}

	for p.occupancy <= 0 {
		p.moved.Wait()
	}

	p.occupancy--
	p.gates[gate]--

	p.report(gate, Left)
	p.verify()
	p.moved.Broadcast()
}

// Occupancy returns the number of visitors currently inside.
func (p *Park) Occupancy() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.occupancy
}

// Gates returns a copy of the per-gate net counters, one entry per gate
// ever referenced.
func (p *Park) Gates() map[string]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot()
}

// Capacity returns the occupancy bound.
func (p *Park) Capacity() int {
	return p.capacity
}

// snapshot copies the gate counters. Caller must hold p.mu.
func (p *Park) snapshot() map[string]int {
	gates := make(map[string]int, len(p.gates))
	for gate, n := range p.gates {
		gates[gate] = n
	}
	return gates
}

// report emits a status event while still holding p.mu, so the snapshot is
// exactly the state the movement produced.
func (p *Park) report(gate string, dir Direction) {
	if p.reporter == nil {
		return
	}
	p.reporter.Report(Event{
		Gate:      gate,
		Direction: dir,
		Occupancy: p.occupancy,
		Gates:     p.snapshot(),
	})
}
