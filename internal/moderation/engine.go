package moderation

import (
	"fmt"
	"time"
)

// Escalation policy. A third warn earns an automatic one-day timeout,
// a second timeout earns an automatic ban.
const (
	WarnThreshold       = 3
	TimeoutThreshold    = 2
	AutoTimeoutDuration = 24 * time.Hour

	// ThresholdReason is the reason attached to automatic actions.
	ThresholdReason = "threshold reached"
)

// Tier is a user's moderation standing within a guild.
type Tier int

const (
	TierClean Tier = iota
	TierWarned
	TierTimedOut
	TierBanned
)

func (t Tier) String() string {
	switch t {
	case TierWarned:
		return "warned"
	case TierTimedOut:
		return "timed out"
	case TierBanned:
		return "banned"
	default:
		return "clean"
	}
}

// Actions are the platform calls the engine can trigger. The bot
// implements them with discord; tests substitute a recorder.
type Actions interface {
	Timeout(guildID, userID string, until time.Time, reason string) error
	Ban(guildID, userID string, reason string) error
}

// Event is one transition taken while handling a moderation command.
// A single warn can produce up to three: the warn itself, the
// automatic timeout, and the automatic ban.
type Event struct {
	Tier     Tier
	Auto     bool
	Reason   string
	Duration time.Duration // set for timeouts
}

// Engine walks users down the escalation ladder. Each command applies
// its own transition and then cascades synchronously while thresholds
// keep being met. A platform call is issued before the corresponding
// counter moves, so a failed call never advances the ledger.
type Engine struct {
	ledger  *Ledger
	actions Actions
	now     func() time.Time
}

func NewEngine(ledger *Ledger, actions Actions) *Engine {
	return &Engine{ledger: ledger, actions: actions, now: time.Now}
}

// Warn records a warning. Reaching the warn threshold triggers an
// automatic timeout, which may itself trigger an automatic ban. The
// events already taken are returned alongside any error, so a partial
// cascade can still be reported.
func (e *Engine) Warn(guildID, userID, reason string) ([]Event, error) {
	rec := e.ledger.AddWarn(guildID, userID)
	events := []Event{{Tier: TierWarned, Reason: reason}}
	if rec.Warns >= WarnThreshold {
		more, err := e.timeout(guildID, userID, AutoTimeoutDuration, ThresholdReason, true)
		events = append(events, more...)
		if err != nil {
			return events, err
		}
	}
	return events, nil
}

// Timeout applies a manual timeout and cascades if the timeout
// threshold is reached.
func (e *Engine) Timeout(guildID, userID string, duration time.Duration, reason string) ([]Event, error) {
	return e.timeout(guildID, userID, duration, reason, false)
}

// Ban bans immediately, regardless of current counters, and clears
// the infraction record.
func (e *Engine) Ban(guildID, userID, reason string) ([]Event, error) {
	return e.ban(guildID, userID, reason, false)
}

func (e *Engine) timeout(guildID, userID string, duration time.Duration, reason string, auto bool) ([]Event, error) {
	until := e.now().Add(duration)
	if err := e.actions.Timeout(guildID, userID, until, reason); err != nil {
		return nil, fmt.Errorf("timeout member: %w", err)
	}
	rec := e.ledger.AddTimeout(guildID, userID)
	events := []Event{{Tier: TierTimedOut, Auto: auto, Reason: reason, Duration: duration}}
	if rec.Timeouts >= TimeoutThreshold {
		more, err := e.ban(guildID, userID, ThresholdReason, true)
		events = append(events, more...)
		if err != nil {
			return events, err
		}
	}
	return events, nil
}

func (e *Engine) ban(guildID, userID, reason string, auto bool) ([]Event, error) {
	if err := e.actions.Ban(guildID, userID, reason); err != nil {
		return nil, fmt.Errorf("ban member: %w", err)
	}
	// Nothing left to count for a banned user.
	e.ledger.Delete(guildID, userID)
	return []Event{{Tier: TierBanned, Auto: auto, Reason: reason}}, nil
}
