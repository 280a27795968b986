package common

import (
	"testing"
	"time"
)

func TestCooldownAllowsUpToLimit(t *testing.T) {
	cooldown := NewCooldown(3, 10*time.Minute)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		if !cooldown.allow("g1", now.Add(time.Duration(i)*time.Minute)) {
			t.Fatalf("event %d should be allowed", i+1)
		}
	}
	if cooldown.allow("g1", now.Add(3*time.Minute)) {
		t.Fatalf("event past the limit should be rejected")
	}
}

func TestCooldownKeysAreIndependent(t *testing.T) {
	cooldown := NewCooldown(1, 10*time.Minute)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	if !cooldown.allow("g1", now) {
		t.Fatalf("first event for g1 should be allowed")
	}
	if !cooldown.allow("g2", now) {
		t.Fatalf("first event for g2 should be allowed")
	}
	if cooldown.allow("g1", now) {
		t.Fatalf("second event for g1 should be rejected")
	}
}

func TestCooldownWindowExpires(t *testing.T) {
	cooldown := NewCooldown(2, 10*time.Minute)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	cooldown.allow("g1", now)
	cooldown.allow("g1", now.Add(time.Minute))
	if cooldown.allow("g1", now.Add(2*time.Minute)) {
		t.Fatalf("third event inside the window should be rejected")
	}
	// The first event has aged out of the window by now
	if !cooldown.allow("g1", now.Add(11*time.Minute)) {
		t.Fatalf("event after the window expired should be allowed")
	}
}
