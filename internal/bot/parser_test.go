package bot

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		input string
		date  time.Time
		err   error
	}{
		{input: "15/03/24", date: want},
		{input: "15/03/2024", date: want},
		{input: "2024-03-15", err: ErrInvalidDate},
		{input: "15-03-2024", err: ErrInvalidDate},
		{input: "tomorrow", err: ErrInvalidDate},
		{input: "", err: ErrInvalidDate},
		{input: "32/03/2024", err: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			date, err := ParseDate(tt.input)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("expected error %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse date: %v", err)
			}
			if !date.Equal(tt.date) {
				t.Fatalf("expected %v, got %v", tt.date, date)
			}
		})
	}
}

func TestParseDateShortAndLongYearAgree(t *testing.T) {
	short, err := ParseDate("15/03/24")
	if err != nil {
		t.Fatalf("parse short year: %v", err)
	}
	long, err := ParseDate("15/03/2024")
	if err != nil {
		t.Fatalf("parse long year: %v", err)
	}
	if !short.Equal(long) {
		t.Fatalf("expected both formats to agree, got %v and %v", short, long)
	}
}

func TestParseTimeoutHours(t *testing.T) {
	tests := []struct {
		name     string
		hours    int64
		duration time.Duration
		wantErr  bool
	}{
		{name: "lower bound", hours: 1, duration: time.Hour},
		{name: "upper bound", hours: 40320, duration: 40320 * time.Hour},
		{name: "below lower bound", hours: 0, wantErr: true},
		{name: "above upper bound", hours: 40321, wantErr: true},
		{name: "negative", hours: -4, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			duration, err := ParseTimeoutHours(tt.hours)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error for %d hours", tt.hours)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse timeout hours: %v", err)
			}
			if duration != tt.duration {
				t.Fatalf("expected %v, got %v", tt.duration, duration)
			}
		})
	}
}

func TestParseVoteCustomID(t *testing.T) {
	tests := []struct {
		input  string
		pollID string
		choice string
		ok     bool
	}{
		{input: "vote:p1:yes", pollID: "p1", choice: "yes", ok: true},
		{input: "vote:p1:maybe", pollID: "p1", choice: "maybe", ok: true},
		{input: "vote:p1:abstain", ok: false},
		{input: "other:p1:yes", ok: false},
		{input: "vote:p1", ok: false},
		{input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			pollID, choice, ok := parseVoteCustomID(tt.input)
			if ok != tt.ok {
				t.Fatalf("parseVoteCustomID(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if !ok {
				return
			}
			if pollID != tt.pollID || string(choice) != tt.choice {
				t.Fatalf("parseVoteCustomID(%q) = %q, %q", tt.input, pollID, choice)
			}
		})
	}
}
