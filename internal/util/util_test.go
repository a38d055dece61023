package util

import (
	"testing"
	"time"
)

func TestAgo(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	cases := map[time.Duration]string{
		10 * time.Second:               "just now",
		3*time.Minute + 20*time.Second: "3m0s ago",
		2*time.Hour + 5*time.Minute:    "2h0m0s ago",
	}
	for delta, want := range cases {
		if got := Ago(now.Add(-delta), now); got != want {
			t.Errorf("Ago(-%s) = %q, want %q", delta, got, want)
		}
	}
}

func TestWrapIndex(t *testing.T) {
	cases := []struct{ cur, delta, n, want int }{
		{0, 1, 4, 1},
		{3, 1, 4, 0},
		{0, -1, 4, 3},
		{2, 0, 0, 0},
	}
	for _, tc := range cases {
		if got := WrapIndex(tc.cur, tc.delta, tc.n); got != tc.want {
			t.Errorf("WrapIndex(%d, %d, %d) = %d, want %d", tc.cur, tc.delta, tc.n, got, tc.want)
		}
	}
}

func TestTruncateAndPad(t *testing.T) {
	if got := TruncateString("Gooseneck kettle", 8); got != "Goose..." {
		t.Errorf("TruncateString = %q", got)
	}
	if got := TruncateString("mug", 2); got != "mu" {
		t.Errorf("TruncateString short = %q", got)
	}
	if got := PadString("ab", 4); got != "ab  " {
		t.Errorf("PadString = %q", got)
	}
	if got := PadLeft("$1.00", 7); got != "  $1.00" {
		t.Errorf("PadLeft = %q", got)
	}
	if got := Fallback("  ", "none"); got != "none" {
		t.Errorf("Fallback = %q", got)
	}
}
