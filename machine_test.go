package park

import (
	"testing"

	"pgregory.net/rapid"
)

var machineGates = []string{"north", "south", "east", "west"}

type parkMachine struct {
	p        *Park          // park being tested
	capacity int            // configured bound
	gates    map[string]int // model of the per-gate counters
	inside   int            // model of the occupancy
}

// Init is an action for initializing a parkMachine instance.
func (m *parkMachine) Init(t *rapid.T) {
	m.capacity = rapid.IntRange(1, 4).Draw(t, "capacity").(int)
	m.p = New(Options{Capacity: m.capacity})
	m.gates = map[string]int{}
}

// Model of Enter. Only taken when the guard holds, so it never blocks.
func (m *parkMachine) Enter(t *rapid.T) {
	if m.inside >= m.capacity {
		t.Skip("full")
	}

	gate := rapid.SampledFrom(machineGates).Draw(t, "gate").(string)
	m.p.Enter(gate)
	m.gates[gate]++
	m.inside++
}

// Model of Leave. Leaves through a gate with no matching enter are legal.
func (m *parkMachine) Leave(t *rapid.T) {
	if m.inside <= 0 {
		t.Skip("empty")
	}

	gate := rapid.SampledFrom(machineGates).Draw(t, "gate").(string)
	m.p.Leave(gate)
	m.gates[gate]--
	m.inside--
}

// validate that invariants hold and the park matches the model
func (m *parkMachine) Check(t *rapid.T) {
	m.p.mu.Lock()
	err := m.p.checkInvariants()
	m.p.mu.Unlock()

	if err != nil {
		t.Fatal(err)
	}

	if got := m.p.Occupancy(); got != m.inside {
		t.Fatalf("occupancy = %d, model has %d", got, m.inside)
	}

	gates := m.p.Gates()
	for gate, want := range m.gates {
		if gates[gate] != want {
			t.Fatalf("gate %s = %d, model has %d", gate, gates[gate], want)
		}
	}
}

func TestParkMachine(t *testing.T) {
	t.Run("It should meet invariants", func(t *testing.T) {
		rapid.Check(t, rapid.Run(&parkMachine{}))
	})
}
