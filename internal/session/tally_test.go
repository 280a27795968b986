package session

import "testing"

func TestTallyLastVoteWins(t *testing.T) {
	tally := NewTally()
	tally.Cast("alice", ChoiceYes)
	tally.Cast("bob", ChoiceNo)
	tally.Cast("alice", ChoiceMaybe)

	counts := tally.Counts()
	if counts.Yes != 0 {
		t.Fatalf("expected 0 yes votes, got %d", counts.Yes)
	}
	if counts.No != 1 {
		t.Fatalf("expected 1 no vote, got %d", counts.No)
	}
	if counts.Maybe != 1 {
		t.Fatalf("expected 1 maybe vote, got %d", counts.Maybe)
	}
}

func TestTallyCountsEmpty(t *testing.T) {
	counts := NewTally().Counts()
	if counts != (Counts{}) {
		t.Fatalf("expected zero counts, got %+v", counts)
	}
}

func TestValidChoice(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"yes", true},
		{"no", true},
		{"maybe", true},
		{"", false},
		{"YES", false},
		{"abstain", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ValidChoice(tt.input); got != tt.valid {
				t.Fatalf("ValidChoice(%q) = %v, want %v", tt.input, got, tt.valid)
			}
		})
	}
}
