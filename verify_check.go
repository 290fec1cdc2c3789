//go:build parkcheck
// +build parkcheck

package park

// verify panics if the monitor invariants do not hold. Compiled in only
// under the parkcheck build tag; release builds get the no-op version.
func (p *Park) verify() {
	if err := p.checkInvariants(); err != nil {
		panic(err)
	}
}
