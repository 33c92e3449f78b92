package rabinkarp

// roller computes the polynomial hash
//
//	h(p) = p[0]*base^(n-1) + p[1]*base^(n-2) + ... + p[n-1]  (mod mod)
//
// for windows of n code units and supports rolling it by one position.
type roller struct {
	base uint64
	mod  uint64
	// base^(n-1) mod mod; weight of the oldest code unit in the window
	highestPow uint64
}

// newRoller creates a roller for windows of n code units.
func newRoller(base, mod uint64, n int) roller {
	r := roller{base: base, mod: mod, highestPow: 1}
	for i := 0; i < n-1; i++ {
		r.highestPow = mulMod(r.highestPow, base, mod)
	}
	return r
}

// addYoung appends the code unit c to the window hashed by h.
func (r *roller) addYoung(h, c uint64) uint64 {
	return addMod(mulMod(h, r.base, r.mod), reduce(c, r.mod), r.mod)
}

// removeOldest removes the contribution of the oldest code unit c from h.
// The result is not shifted.
func (r *roller) removeOldest(h, c uint64) uint64 {
	return subMod(h, mulMod(reduce(c, r.mod), r.highestPow, r.mod), r.mod)
}

// roll moves the window hashed by h one position forward. The code unit
// oldest leaves the window and young enters it.
func (r *roller) roll(h, oldest, young uint64) uint64 {
	return r.addYoung(r.removeOldest(h, oldest), young)
}

// hashUnits computes the hash of p using Horner's rule.
func hashUnits[T Unit](r *roller, p []T) uint64 {
	var h uint64
	for _, c := range p {
		h = r.addYoung(h, uint64(c))
	}
	return h
}
