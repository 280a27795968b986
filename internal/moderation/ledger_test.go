package moderation

import "testing"

func TestLedgerCountsPerGuildAndUser(t *testing.T) {
	ledger := NewLedger()

	ledger.AddWarn("g1", "u1")
	ledger.AddWarn("g1", "u1")
	ledger.AddTimeout("g1", "u1")
	ledger.AddWarn("g2", "u1")

	if rec := ledger.Get("g1", "u1"); rec.Warns != 2 || rec.Timeouts != 1 {
		t.Fatalf("unexpected record for g1/u1: %+v", rec)
	}
	// Same user in another guild has its own record
	if rec := ledger.Get("g2", "u1"); rec.Warns != 1 || rec.Timeouts != 0 {
		t.Fatalf("unexpected record for g2/u1: %+v", rec)
	}
	if rec := ledger.Get("g1", "u2"); rec != (Record{}) {
		t.Fatalf("expected zero record for unknown user, got %+v", rec)
	}
}

func TestLedgerDelete(t *testing.T) {
	ledger := NewLedger()
	ledger.AddWarn("g1", "u1")

	ledger.Delete("g1", "u1")
	if rec := ledger.Get("g1", "u1"); rec != (Record{}) {
		t.Fatalf("expected zero record after delete, got %+v", rec)
	}

	// Idempotent
	ledger.Delete("g1", "u1")
}
