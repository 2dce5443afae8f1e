package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "1.2.3"
	got := String()
	if !strings.HasPrefix(got, "curveplot 1.2.3 (") {
		t.Errorf("String() = %q", got)
	}
}
