// Package testutil provides shared test fixtures for curve tables.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/banshee-data/curveplot/internal/curves"
)

// Table joins a header and rows into a whitespace-delimited curve table.
// Each row is written as given, so malformed rows can be expressed too.
func Table(header string, rows ...string) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	for _, r := range rows {
		b.WriteString(r)
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteFile writes contents to dir/name and returns the full path.
func WriteFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// AssertCurve fails the test if got differs from the expected name and
// samples.
func AssertCurve(t *testing.T, got curves.Curve, name string, depth, values []float64) {
	t.Helper()
	want := curves.Curve{Name: name, Depth: depth, Values: values}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("curve %s mismatch (-want +got):\n%s", name, diff)
	}
}

// AssertNames fails the test if the curve names differ from want, in order.
func AssertNames(t *testing.T, cs []curves.Curve, want ...string) {
	t.Helper()
	got := curves.Names(cs)
	if len(want) == 0 && len(got) == 0 {
		return
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("curve names mismatch (-want +got):\n%s", diff)
	}
}
