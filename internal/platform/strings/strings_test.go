package strings

import (
	"testing"

	"qclab/internal/platform/testkit"
)

// MustString passes content through and panics on blanks
func TestMustString(t *testing.T) {
	if got := MustString("daycode", "module name"); got != "daycode" {
		t.Fatalf("MustString = %q", got)
	}
	testkit.MustPanic(t, func() { MustString("   ", "module name") })
}

// MustPrefix normalizes slashes and rejects the bare root
func TestMustPrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "daycode", want: "/daycode"},
		{in: "/daycode", want: "/daycode"},
		{in: " /daycode/ ", want: "/daycode"},
		{in: "//demandes//", want: "/demandes"},
	}
	for _, tt := range tests {
		if got := MustPrefix(tt.in); got != tt.want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	testkit.MustPanic(t, func() { MustPrefix("/") })
	testkit.MustPanic(t, func() { MustPrefix("") })
}

// Ptr and SQLNull map blanks to nil
func TestPtrAndSQLNull(t *testing.T) {
	if Ptr("") != nil {
		t.Fatal("Ptr empty should be nil")
	}
	if p := Ptr("x"); p == nil || *p != "x" {
		t.Fatalf("Ptr = %v", p)
	}
	if SQLNull("  ") != nil {
		t.Fatal("SQLNull blank should be nil")
	}
	if v := SQLNull("bob"); v != "bob" {
		t.Fatalf("SQLNull = %v", v)
	}
}
