package session

import (
	"errors"
	"sync"
	"time"
)

var ErrNoSession = errors.New("no session tracked for this guild")

// expiry is how long after its date a poll keeps accepting votes
// before housekeeping drops it.
const expiry = 7 * 24 * time.Hour

// Poll is one attendance poll. The creator id grants cancellation
// rights; the channel and message ids locate the posted embed.
type Poll struct {
	ID          string
	GuildID     string
	ChannelID   string
	MessageID   string
	CreatorID   string
	CreatorName string
	Date        time.Time
	Votes       *Tally
}

// Tracker remembers the most recent poll of each guild, plus an index
// by poll id so vote buttons keep routing after a poll has been
// replaced as the guild's current one. Only cancellation and expiry
// remove a poll from the routing index.
type Tracker struct {
	mu      sync.Mutex
	current map[string]*Poll // guild id -> latest poll
	byID    map[string]*Poll // poll id -> poll
}

func NewTracker() *Tracker {
	return &Tracker{
		current: make(map[string]*Poll),
		byID:    make(map[string]*Poll),
	}
}

// Record stores poll as the guild's tracked poll, replacing any
// previous one. The previous poll stays votable through the index.
func (tr *Tracker) Record(poll *Poll) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.current[poll.GuildID] = poll
	tr.byID[poll.ID] = poll
}

// Get returns the tracked poll for the guild, or ErrNoSession.
func (tr *Tracker) Get(guildID string) (*Poll, error) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	poll, ok := tr.current[guildID]
	if !ok {
		return nil, ErrNoSession
	}
	return poll, nil
}

// Find resolves a poll by its id, for routing vote interactions.
func (tr *Tracker) Find(pollID string) (*Poll, bool) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	poll, ok := tr.byID[pollID]
	return poll, ok
}

// Clear removes the guild's tracked poll and detaches its tally, so
// its buttons stop working. Idempotent.
func (tr *Tracker) Clear(guildID string) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	if poll, ok := tr.current[guildID]; ok {
		delete(tr.byID, poll.ID)
		delete(tr.current, guildID)
	}
}

// PruneExpired drops polls whose date is long past, so the routing
// index does not grow without bound. Returns how many were removed.
func (tr *Tracker) PruneExpired(now time.Time) int {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	removed := 0
	for id, poll := range tr.byID {
		if now.Sub(poll.Date) > expiry {
			delete(tr.byID, id)
			if tr.current[poll.GuildID] == poll {
				delete(tr.current, poll.GuildID)
			}
			removed++
		}
	}
	return removed
}
