package testkit

import "testing"

var (
	mulFn      = func(a, b int) int { return a * b }
	swapTarget = "orig"
)

func TestSwap_FunctionAndRestore(t *testing.T) {
	// run swap in a subtest so Cleanup runs before we validate restoration
	t.Run("swap-in-subtest", func(t *testing.T) {
		if got := mulFn(2, 3); got != 6 {
			t.Fatalf("precondition failed, mulFn(2,3)=%d want 6", got)
		}
		Swap(t, &mulFn, func(a, b int) int { return -1 })
		if got := mulFn(2, 3); got != -1 {
			t.Fatalf("swap did not take effect, got %d want -1", got)
		}
	})

	// after subtest completes, Cleanup restored the original
	if got := mulFn(2, 3); got != 6 {
		t.Fatalf("swap did not restore original, got %d want 6", got)
	}
}

func TestSwap_NonFunctionType(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		if swapTarget != "orig" {
			t.Fatalf("precondition failed, got %q", swapTarget)
		}
		Swap(t, &swapTarget, "swapped")
		if swapTarget != "swapped" {
			t.Fatalf("swap failed, got %q", swapTarget)
		}
	})
	if swapTarget != "orig" {
		t.Fatalf("swap did not restore original, got %q", swapTarget)
	}
}

func TestSerial_ReleasesLockOnCleanup(t *testing.T) {
	t.Run("first", func(t *testing.T) { Serial(t) })
	// if the first subtest leaked the lock this would deadlock
	t.Run("second", func(t *testing.T) { Serial(t) })
}
