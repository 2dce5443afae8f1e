package curves

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes one curve after clustering.
type Summary struct {
	Name     string
	Samples  int
	MinDepth float64
	MaxDepth float64
	MinValue float64
	MaxValue float64
	Mean     float64
	Degree   float64
	Pane     Pane
}

// Summarize computes a Summary per curve in input order. It fails on the same
// curves Cluster fails on.
func (cl Clusterer) Summarize(cs []Curve) ([]Summary, error) {
	out := make([]Summary, 0, len(cs))
	for _, c := range cs {
		pane, degree, err := cl.Assign(c)
		if err != nil {
			return nil, err
		}
		n := c.Len()
		if n == 0 {
			return nil, &CurveError{Name: c.Name, Err: ErrEmptyCurve}
		}
		values := c.Values[:n]
		depth := c.Depth[:n]
		out = append(out, Summary{
			Name:     c.Name,
			Samples:  n,
			MinValue: floats.Min(values),
			MaxValue: floats.Max(values),
			Mean:     stat.Mean(values, nil),
			MinDepth: floats.Min(depth),
			MaxDepth: floats.Max(depth),
			Degree:   degree,
			Pane:     pane,
		})
	}
	return out, nil
}
