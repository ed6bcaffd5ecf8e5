package version

import "testing"

func TestString(t *testing.T) {
	prevV, prevC, prevD := Version, Commit, Dirty
	t.Cleanup(func() { Version, Commit, Dirty = prevV, prevC, prevD })

	Version, Commit, Dirty = "v1.2.0", "abc1234", "false"
	if got := String(); got != "v1.2.0 (abc1234)" {
		t.Fatalf("String() = %q", got)
	}
	Dirty = "true"
	if got := String(); got != "v1.2.0 (abc1234, dirty)" {
		t.Fatalf("String() = %q", got)
	}
	if !Get().Dirty {
		t.Fatalf("expected dirty build")
	}
}
