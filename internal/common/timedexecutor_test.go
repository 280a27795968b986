package common

import (
	"testing"
	"time"
)

func TestTimedExecutorFiresOnceUntilTimeout(t *testing.T) {
	fired := 0
	executor := NewTimedExecutor(time.Hour, func() { fired++ })

	// A fresh executor has never run, so the first call fires
	executor.Execute()
	if fired != 1 {
		t.Fatalf("expected the first execute to fire, fired %d times", fired)
	}

	// The timeout has not been reached again
	executor.Execute()
	executor.Execute()
	if fired != 1 {
		t.Fatalf("expected no further firing before the timeout, fired %d times", fired)
	}
}

func TestTimedExecutorFiresAgainAfterTimeout(t *testing.T) {
	fired := 0
	executor := NewTimedExecutor(0, func() { fired++ })

	executor.Execute()
	executor.Execute()
	if fired != 2 {
		t.Fatalf("expected a zero timeout to fire every time, fired %d times", fired)
	}
}
