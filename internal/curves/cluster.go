package curves

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Pane identifies which of the two charts a curve is drawn on.
type Pane int

const (
	PaneLeft Pane = iota
	PaneRight
)

func (p Pane) String() string {
	if p == PaneLeft {
		return "left"
	}
	return "right"
}

// Default degree window for the left pane: peaks between 10 and 1000.
const (
	DefaultMinDegree = 1.0
	DefaultMaxDegree = 3.0
)

// Clusterer splits curves into two panes by degree, the base-10 logarithm of
// the curve's maximum value. Curves with MinDegree <= degree <= MaxDegree go
// left, everything else goes right.
type Clusterer struct {
	MinDegree float64
	MaxDegree float64
}

// DefaultClusterer uses the [1, 3] window.
func DefaultClusterer() Clusterer {
	return Clusterer{MinDegree: DefaultMinDegree, MaxDegree: DefaultMaxDegree}
}

// Cluster partitions curves with the default window.
func Cluster(cs []Curve) (left, right []Curve, err error) {
	return DefaultClusterer().Cluster(cs)
}

// Cluster partitions cs, preserving input order within each pane. Any curve
// whose degree is undefined aborts the whole partition.
func (cl Clusterer) Cluster(cs []Curve) (left, right []Curve, err error) {
	left = make([]Curve, 0, len(cs))
	right = make([]Curve, 0, len(cs))
	for _, c := range cs {
		pane, _, err := cl.Assign(c)
		if err != nil {
			return nil, nil, err
		}
		if pane == PaneLeft {
			left = append(left, c)
		} else {
			right = append(right, c)
		}
	}
	return left, right, nil
}

// Assign returns the pane and degree for a single curve. Both window bounds
// are inclusive.
func (cl Clusterer) Assign(c Curve) (Pane, float64, error) {
	degree, err := Degree(c)
	if err != nil {
		return PaneRight, 0, err
	}
	if degree >= cl.MinDegree && degree <= cl.MaxDegree {
		return PaneLeft, degree, nil
	}
	return PaneRight, degree, nil
}

// Degree returns log10 of the curve's maximum value.
func Degree(c Curve) (float64, error) {
	peak, err := peakValue(c)
	if err != nil {
		return 0, err
	}
	return math.Log10(peak), nil
}

func peakValue(c Curve) (float64, error) {
	if len(c.Values) == 0 {
		return 0, &CurveError{Name: c.Name, Err: ErrEmptyCurve}
	}
	peak := floats.Max(c.Values)
	// NaN fails this comparison as well.
	if !(peak > 0) {
		return 0, &CurveError{Name: c.Name, Err: ErrNonPositiveMaximum}
	}
	return peak, nil
}
