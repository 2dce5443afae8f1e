package curves

import "sort"

// Merge combines two curve sets by name. See MergeAll.
func Merge(a, b []Curve) []Curve {
	return MergeAll(a, b)
}

// MergeAll concatenates the samples of same-named curves across sets, in
// argument order, then keeps the first sample seen at each depth and sorts
// ascending by depth. Curves come back in first-seen name order. Inputs are
// not modified.
func MergeAll(sets ...[]Curve) []Curve {
	index := make(map[string]int)
	var merged []Curve

	for _, set := range sets {
		for _, c := range set {
			i, ok := index[c.Name]
			if !ok {
				i = len(merged)
				index[c.Name] = i
				merged = append(merged, NewCurve(c.Name))
			}
			n := c.Len()
			merged[i].Depth = append(merged[i].Depth, c.Depth[:n]...)
			merged[i].Values = append(merged[i].Values, c.Values[:n]...)
		}
	}

	for i := range merged {
		merged[i] = dedupeByDepth(merged[i])
	}
	if merged == nil {
		return []Curve{}
	}
	return merged
}

// dedupeByDepth keeps the earliest sample per depth and sorts by depth.
func dedupeByDepth(c Curve) Curve {
	seen := make(map[float64]struct{}, c.Len())
	samples := make([]Sample, 0, c.Len())
	for _, s := range c.Samples() {
		if _, dup := seen[s.Depth]; dup {
			continue
		}
		seen[s.Depth] = struct{}{}
		samples = append(samples, s)
	}
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Depth < samples[j].Depth
	})
	return FromSamples(c.Name, samples)
}
