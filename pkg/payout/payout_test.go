package payout

import (
	"testing"
	"time"
)

func TestEvaluate(t *testing.T) {
	delivered := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		now  time.Time
		want Status
	}{
		{"just delivered", delivered, StatusPending},
		{"13 days later", delivered.Add(13 * 24 * time.Hour), StatusPending},
		{"one second short", delivered.Add(HoldingWindow - time.Second), StatusPending},
		{"exactly 14 days", delivered.Add(HoldingWindow), StatusEligible},
		{"15 days later", delivered.Add(15 * 24 * time.Hour), StatusEligible},
	}
	for _, tc := range cases {
		if got := Evaluate(delivered, tc.now); got != tc.want {
			t.Fatalf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestEvaluateMixedZones(t *testing.T) {
	zone := time.FixedZone("UTC+7", 7*3600)
	delivered := time.Date(2025, 6, 10, 19, 0, 0, 0, zone) // 12:00 UTC
	now := time.Date(2025, 6, 24, 12, 0, 0, 0, time.UTC)
	if got := Evaluate(delivered, now); got != StatusEligible {
		t.Fatalf("expected eligible at the boundary across zones, got %s", got)
	}
}
