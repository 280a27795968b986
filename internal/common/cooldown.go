package common

import (
	"sync"
	"time"
)

// A cooldown means that only the specified number of events are
// allowed per key for a specific time duration
type Cooldown struct {
	Limit  int
	Window time.Duration

	mu      sync.Mutex
	history map[string][]time.Time
}

func NewCooldown(limit int, window time.Duration) *Cooldown {
	return &Cooldown{
		Limit:   limit,
		Window:  window,
		history: make(map[string][]time.Time),
	}
}

// Allow decides if a new event for this key is allowed right now.
// An allowed event is recorded in the history.
func (c *Cooldown) Allow(key string) bool {
	return c.allow(key, time.Now())
}

func (c *Cooldown) allow(key string, now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Trim the history first, leaving only the events that are
	// young enough to still count against the window.
	// Start searching at the end of the slice.
	// Times are stored in chronological order
	history := c.history[key]
	index := 0
	for i := len(history) - 1; i >= 0; i-- {
		if now.Sub(history[i]) > c.Window {
			index = i + 1
			break
		}
	}
	history = history[index:]

	if len(history) >= c.Limit {
		c.history[key] = history
		return false
	}
	c.history[key] = append(history, now)
	return true
}
