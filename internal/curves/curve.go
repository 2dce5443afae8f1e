package curves

// DepthColumn is the header token that marks the independent variable.
const DepthColumn = "DEPTH"

// Curve is a named series of depth/value samples. Depth and Values are
// index-aligned and always the same length.
type Curve struct {
	Name   string
	Depth  []float64
	Values []float64
}

// Sample is one (depth, value) pair of a curve.
type Sample struct {
	Depth float64
	Value float64
}

// NewCurve returns an empty curve.
func NewCurve(name string) Curve {
	return Curve{Name: name, Depth: []float64{}, Values: []float64{}}
}

// FromSamples builds a curve from pairs, preserving their order.
func FromSamples(name string, samples []Sample) Curve {
	c := Curve{
		Name:   name,
		Depth:  make([]float64, len(samples)),
		Values: make([]float64, len(samples)),
	}
	for i, s := range samples {
		c.Depth[i] = s.Depth
		c.Values[i] = s.Value
	}
	return c
}

// Append adds one sample to the end of the curve.
func (c *Curve) Append(depth, value float64) {
	c.Depth = append(c.Depth, depth)
	c.Values = append(c.Values, value)
}

// Len returns the number of paired samples. If the slices were built with
// different lengths by hand, only the paired prefix counts.
func (c Curve) Len() int {
	return min(len(c.Depth), len(c.Values))
}

// Samples returns the paired view of the curve.
func (c Curve) Samples() []Sample {
	n := c.Len()
	out := make([]Sample, n)
	for i := 0; i < n; i++ {
		out[i] = Sample{Depth: c.Depth[i], Value: c.Values[i]}
	}
	return out
}

// Clone returns a deep copy.
func (c Curve) Clone() Curve {
	return Curve{
		Name:   c.Name,
		Depth:  append([]float64(nil), c.Depth...),
		Values: append([]float64(nil), c.Values...),
	}
}

// Names lists curve names in order.
func Names(cs []Curve) []string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.Name
	}
	return names
}
