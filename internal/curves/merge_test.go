package curves

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMerge_FirstSeenDepthWins(t *testing.T) {
	t.Parallel()

	a := []Curve{{Name: "A", Depth: []float64{1, 2, 3}, Values: []float64{10, 20, 30}}}
	b := []Curve{{Name: "A", Depth: []float64{2, 3, 4}, Values: []float64{200, 300, 400}}}

	got := Merge(a, b)
	want := []Curve{{Name: "A", Depth: []float64{1, 2, 3, 4}, Values: []float64{10, 20, 30, 400}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}

	// Swapping the inputs swaps which value survives at shared depths.
	got = Merge(b, a)
	want = []Curve{{Name: "A", Depth: []float64{1, 2, 3, 4}, Values: []float64{10, 200, 300, 400}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("swapped merge mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge_NameOrderAndUnion(t *testing.T) {
	t.Parallel()

	a := []Curve{
		{Name: "GR", Depth: []float64{1}, Values: []float64{50}},
		{Name: "NPHI", Depth: []float64{1}, Values: []float64{0.2}},
	}
	b := []Curve{
		{Name: "RHOB", Depth: []float64{1}, Values: []float64{2.6}},
		{Name: "GR", Depth: []float64{2}, Values: []float64{55}},
	}

	ab := Merge(a, b)
	checkNames(t, "merge(a, b)", ab, "GR", "NPHI", "RHOB")
	if diff := cmp.Diff([]float64{1, 2}, ab[0].Depth); diff != "" {
		t.Errorf("GR depth mismatch (-want +got):\n%s", diff)
	}

	ba := Merge(b, a)
	checkNames(t, "merge(b, a)", ba, "RHOB", "GR", "NPHI")

	sortedAB, sortedBA := Names(ab), Names(ba)
	sort.Strings(sortedAB)
	sort.Strings(sortedBA)
	if diff := cmp.Diff(sortedAB, sortedBA); diff != "" {
		t.Errorf("name sets differ (-ab +ba):\n%s", diff)
	}
}

func TestMerge_DedupesWithinOneSetAndSorts(t *testing.T) {
	t.Parallel()

	a := []Curve{{Name: "GR", Depth: []float64{5, 1, 3, 1, 5}, Values: []float64{50, 10, 30, 11, 51}}}

	got := Merge(a, nil)
	want := []Curve{{Name: "GR", Depth: []float64{1, 3, 5}, Values: []float64{10, 30, 50}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge_StrictlyIncreasingDepth(t *testing.T) {
	t.Parallel()

	a := []Curve{
		{Name: "A", Depth: []float64{9, 7, 7, 3, 1}, Values: []float64{1, 2, 3, 4, 5}},
		{Name: "B", Depth: []float64{0.5, 0.25}, Values: []float64{1, 2}},
	}
	b := []Curve{
		{Name: "A", Depth: []float64{3, 2, 8, 9}, Values: []float64{6, 7, 8, 9}},
		{Name: "B", Depth: []float64{0.25, -1}, Values: []float64{3, 4}},
	}

	for _, c := range Merge(a, b) {
		if len(c.Values) != len(c.Depth) {
			t.Fatalf("curve %s: %d values for %d depths", c.Name, len(c.Values), len(c.Depth))
		}
		for i := 1; i < len(c.Depth); i++ {
			if !(c.Depth[i-1] < c.Depth[i]) {
				t.Errorf("curve %s: depth[%d]=%v not below depth[%d]=%v", c.Name, i-1, c.Depth[i-1], i, c.Depth[i])
			}
		}
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	a := []Curve{{Name: "A", Depth: []float64{3, 1}, Values: []float64{30, 10}}}
	b := []Curve{{Name: "A", Depth: []float64{1, 2}, Values: []float64{11, 20}}}
	aCopy := []Curve{a[0].Clone()}
	bCopy := []Curve{b[0].Clone()}

	_ = Merge(a, b)

	if diff := cmp.Diff(aCopy, a); diff != "" {
		t.Errorf("input a mutated (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(bCopy, b); diff != "" {
		t.Errorf("input b mutated (-want +got):\n%s", diff)
	}
}

func TestMerge_EmptyInputs(t *testing.T) {
	t.Parallel()

	got := Merge(nil, []Curve{})
	if got == nil || len(got) != 0 {
		t.Errorf("Merge of empty sets = %#v, want empty non-nil slice", got)
	}

	// A curve with no samples still contributes its name.
	got = Merge([]Curve{NewCurve("GR")}, nil)
	checkNames(t, "merge", got, "GR")
	if len(got) == 1 && got[0].Len() != 0 {
		t.Errorf("GR has %d samples, want 0", got[0].Len())
	}
}

func TestMergeAll_LeftToRightPrecedence(t *testing.T) {
	t.Parallel()

	s1 := []Curve{{Name: "GR", Depth: []float64{2}, Values: []float64{1}}}
	s2 := []Curve{{Name: "GR", Depth: []float64{1, 2}, Values: []float64{2, 2}}}
	s3 := []Curve{{Name: "GR", Depth: []float64{1, 3}, Values: []float64{3, 3}}}

	got := MergeAll(s1, s2, s3)
	want := []Curve{{Name: "GR", Depth: []float64{1, 2, 3}, Values: []float64{2, 1, 3}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MergeAll mismatch (-want +got):\n%s", diff)
	}
}
