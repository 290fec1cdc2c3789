//go:build !parkcheck
// +build !parkcheck

package park

func (p *Park) verify() {}
