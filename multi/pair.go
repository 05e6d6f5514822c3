package multi

// Pair carries the two values a record parser produces together, for
// formats whose records hold more than one quantity (coordinates plus a
// comment line, an energy plus a gradient).
type Pair[A, B any] struct {
	A A
	B B
}

// TransposePairs splits a collected slice of pairs into its two
// component slices.
func TransposePairs[A, B any](pairs []Pair[A, B]) ([]A, []B) {
	as := make([]A, len(pairs))
	bs := make([]B, len(pairs))
	for i, p := range pairs {
		as[i] = p.A
		bs[i] = p.B
	}
	return as, bs
}

// CollectPairs evaluates sel and applies a separate transform to each
// component of the collected pairs.
func CollectPairs[H Stream, A, B, RA, RB any](sel *Selector[H, Pair[A, B]], fa func([]A) RA, fb func([]B) RB) (RA, RB, error) {
	var za RA
	var zb RB
	pairs, err := sel.Collect()
	if err != nil {
		return za, zb, err
	}
	as, bs := TransposePairs(pairs)
	return fa(as), fb(bs), nil
}
