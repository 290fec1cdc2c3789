package park

import (
	"log"
	"sort"
)

// Direction indicates whether a visitor entered or left.
type Direction int

const (
	Entered Direction = iota
	Left
)

func (d Direction) String() string {
	if d == Entered {
		return "enter"
	}
	return "leave"
}

// Event is a snapshot of the park taken immediately after one movement.
// Gates is a copy and may be retained.
type Event struct {
	Gate      string
	Direction Direction
	Occupancy int
	Gates     map[string]int
}

// Reporter receives an Event after every completed movement. Report runs
// while the monitor lock is held: the event is guaranteed consistent with
// the park's state at that instant, but a slow Reporter stalls every other
// Enter and Leave.
type Reporter interface {
	Report(Event)
}

type logReporter struct {
	l *log.Logger
}

// NewLogReporter returns a Reporter that writes a human readable status
// block to l: the movement, the total, and one line per known gate.
func NewLogReporter(l *log.Logger) Reporter {
	return &logReporter{l: l}
}

func (r *logReporter) Report(e Event) {
	r.l.Printf("%s via gate %s", e.Direction, e.Gate)
	r.l.Printf("--> %d inside", e.Occupancy)

	gates := make([]string, 0, len(e.Gates))
	for gate := range e.Gates {
		gates = append(gates, gate)
	}
	sort.Strings(gates)

	for _, gate := range gates {
		r.l.Printf("----> gate %s %d", gate, e.Gates[gate])
	}
}
