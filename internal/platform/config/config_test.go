package config

import (
	"testing"
	"time"

	"qclab/internal/platform/testkit"
)

// May* return values or defaults without panicking
func TestMayHelpers(t *testing.T) {
	t.Setenv("CORE_API_PORT", ":4000")
	t.Setenv("CORE_API_MAX", "16")
	t.Setenv("CORE_API_SWAGGER", "false")
	t.Setenv("CORE_API_TIMEOUT", "250ms")
	t.Setenv("CORE_API_BADINT", "x")

	c := New().Prefix("CORE_API_")

	if got := c.MayString("PORT", ":9999"); got != ":4000" {
		t.Fatalf("MayString = %q", got)
	}
	if got := c.MayString("MISSING", ":9999"); got != ":9999" {
		t.Fatalf("MayString default = %q", got)
	}
	if got := c.MayInt("MAX", 1); got != 16 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayInt("BADINT", 5); got != 5 {
		t.Fatalf("MayInt invalid = %d, want default 5", got)
	}
	if got := c.MayBool("SWAGGER", true); got {
		t.Fatal("MayBool should be false")
	}
	if got := c.MayDuration("TIMEOUT", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
}

// Must* panic on missing or malformed values
func TestMustHelpers(t *testing.T) {
	t.Setenv("SERVICE_PGSQL_URL", "postgres://localhost/qclab")
	t.Setenv("SERVICE_PGSQL_BAD", "nope")

	c := New().Prefix("SERVICE_PGSQL_")

	if got := c.MustString("URL"); got != "postgres://localhost/qclab" {
		t.Fatalf("MustString = %q", got)
	}
	testkit.MustPanic(t, func() { c.MustString("MISSING") })
	testkit.MustPanic(t, func() { c.MustInt("BAD") })
	testkit.MustPanic(t, func() { c.MustDuration("BAD") })
	testkit.MustPanic(t, func() { c.Require("URL", "MISSING") })
	testkit.MustNotPanic(t, func() { c.Require("URL") })
}
