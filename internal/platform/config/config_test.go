package config

import (
	"testing"
	"time"

	"quipbot/internal/platform/testkit"
)

func TestPrefixComposes(t *testing.T) {
	t.Setenv("QB_BOT_NAME", "quippy")
	cfg := New().Prefix("QB_").Prefix("BOT_")
	if got := cfg.MustString("NAME"); got != "quippy" {
		t.Fatalf("MustString = %q", got)
	}
}

func TestMustStringPanicsWhenMissing(t *testing.T) {
	cfg := New().Prefix("QB_TEST_MISSING_")
	testkit.MustPanic(t, func() { cfg.MustString("NOPE") })
}

func TestMustIntRejectsGarbage(t *testing.T) {
	t.Setenv("QB_COUNT", "twelve")
	cfg := New().Prefix("QB_")
	testkit.MustPanic(t, func() { cfg.MustInt("COUNT") })
}

func TestMustPort(t *testing.T) {
	t.Setenv("QB_PORT", "8080")
	cfg := New().Prefix("QB_")
	if got := cfg.MustPort("PORT"); got != ":8080" {
		t.Fatalf("MustPort = %q", got)
	}

	t.Setenv("QB_PORT", "70000")
	testkit.MustPanic(t, func() { cfg.MustPort("PORT") })
}

func TestMayAccessorsFallBack(t *testing.T) {
	cfg := New().Prefix("QB_TEST_MAY_")
	if got := cfg.MayString("S", "def"); got != "def" {
		t.Fatalf("MayString = %q", got)
	}
	if got := cfg.MayInt("I", 7); got != 7 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := cfg.MayBool("B", true); got != true {
		t.Fatalf("MayBool = %v", got)
	}
	if got := cfg.MayDuration("D", 3*time.Second); got != 3*time.Second {
		t.Fatalf("MayDuration = %v", got)
	}
}

func TestMayIntRecoversFromGarbage(t *testing.T) {
	t.Setenv("QB_BAD", "NaN")
	cfg := New().Prefix("QB_")
	if got := cfg.MayInt("BAD", 9); got != 9 {
		t.Fatalf("MayInt = %d, want fallback 9", got)
	}
}
