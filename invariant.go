package park

import "fmt"

// checkInvariants reports whether the bookkeeping is consistent: the gate
// counters must sum to the occupancy, and the occupancy must stay within
// [0, capacity]. By construction of the guarded operations a violation is
// unreachable; a non-nil return means a programming defect, not a runtime
// condition. Caller must hold p.mu.
func (p *Park) checkInvariants() error {
	sum := 0
	for _, n := range p.gates {
		sum += n
	}

	if sum != p.occupancy {
		return fmt.Errorf("park: gate counters sum to %d, occupancy is %d", sum, p.occupancy)
	}
	if p.occupancy < 0 {
		return fmt.Errorf("park: occupancy %d below zero", p.occupancy)
	}
	if p.occupancy > p.capacity {
		return fmt.Errorf("park: occupancy %d over capacity %d", p.occupancy, p.capacity)
	}
	return nil
}
