package time

import (
	"testing"
	"time"
)

func TestPtr(t *testing.T) {
	t.Parallel()

	if Ptr(time.Time{}) != nil {
		t.Fatal("zero time should map to nil")
	}
	now := time.Now()
	p := Ptr(now)
	if p == nil || !p.Equal(now) {
		t.Fatalf("Ptr lost the value: %v", p)
	}
}

func TestWholeMinutes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		d    time.Duration
		want int
	}{
		{0, 0},
		{59 * time.Second, 0},
		{time.Minute, 1},
		{90 * time.Second, 1},
		{10*time.Minute + 59*time.Second, 10},
		{11 * time.Minute, 11},
		{-90 * time.Second, -1},
	}
	for _, c := range cases {
		if got := WholeMinutes(c.d); got != c.want {
			t.Errorf("WholeMinutes(%v) = %d, want %d", c.d, got, c.want)
		}
	}
}
