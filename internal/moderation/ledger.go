package moderation

import "sync"

// Record is the infraction standing of one user in one guild.
type Record struct {
	Warns    int
	Timeouts int
}

type key struct {
	guildID string
	userID  string
}

// Ledger counts warns and timeouts per (guild, user). Counters only
// grow; a ban deletes the record outright. Everything lives in memory
// and is lost on restart.
type Ledger struct {
	mu      sync.Mutex
	records map[key]Record
}

func NewLedger() *Ledger {
	return &Ledger{records: make(map[key]Record)}
}

// AddWarn increments the warn counter and returns the updated record.
func (l *Ledger) AddWarn(guildID, userID string) Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	k := key{guildID, userID}
	rec := l.records[k]
	rec.Warns++
	l.records[k] = rec
	return rec
}

// AddTimeout increments the timeout counter and returns the updated
// record.
func (l *Ledger) AddTimeout(guildID, userID string) Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	k := key{guildID, userID}
	rec := l.records[k]
	rec.Timeouts++
	l.records[k] = rec
	return rec
}

// Get returns the record for (guild, user), zero counters if none.
func (l *Ledger) Get(guildID, userID string) Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.records[key{guildID, userID}]
}

// Delete removes the record for (guild, user). Idempotent.
func (l *Ledger) Delete(guildID, userID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.records, key{guildID, userID})
}
