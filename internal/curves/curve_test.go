package curves

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCurve_AppendAndSamples(t *testing.T) {
	c := NewCurve("GR")
	c.Append(1, 10)
	c.Append(2, 20)

	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	want := []Sample{{Depth: 1, Value: 10}, {Depth: 2, Value: 20}}
	if diff := cmp.Diff(want, c.Samples()); diff != "" {
		t.Errorf("Samples() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(c, FromSamples("GR", c.Samples())); diff != "" {
		t.Errorf("FromSamples round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCurve_LenUsesPairedPrefix(t *testing.T) {
	c := Curve{Name: "X", Depth: []float64{1, 2, 3}, Values: []float64{5}}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
	if n := len(c.Samples()); n != 1 {
		t.Errorf("len(Samples()) = %d, want 1", n)
	}
}

func TestCurve_CloneIsDeep(t *testing.T) {
	c := Curve{Name: "X", Depth: []float64{1}, Values: []float64{2}}
	cl := c.Clone()
	cl.Values[0] = 99
	if c.Values[0] != 2 {
		t.Errorf("original mutated through clone: %v", c.Values[0])
	}
}
