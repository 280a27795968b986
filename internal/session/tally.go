package session

import "sync"

type Choice string

const (
	ChoiceYes   Choice = "yes"
	ChoiceNo    Choice = "no"
	ChoiceMaybe Choice = "maybe"
)

// ValidChoice reports whether s is one of the three vote choices.
func ValidChoice(s string) bool {
	switch Choice(s) {
	case ChoiceYes, ChoiceNo, ChoiceMaybe:
		return true
	}
	return false
}

type Counts struct {
	Yes   int
	No    int
	Maybe int
}

// Tally keeps the votes of one poll, one choice per voter.
// Interactions arrive on separate goroutines, so access is locked.
type Tally struct {
	mu    sync.Mutex
	votes map[string]Choice
}

func NewTally() *Tally {
	return &Tally{votes: make(map[string]Choice)}
}

// Cast records the voter's choice, overwriting any previous one.
func (t *Tally) Cast(voterID string, choice Choice) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.votes[voterID] = choice
}

// Counts recomputes the aggregate from the current votes.
func (t *Tally) Counts() Counts {
	t.mu.Lock()
	defer t.mu.Unlock()
	var counts Counts
	for _, choice := range t.votes {
		switch choice {
		case ChoiceYes:
			counts.Yes++
		case ChoiceNo:
			counts.No++
		case ChoiceMaybe:
			counts.Maybe++
		}
	}
	return counts
}
