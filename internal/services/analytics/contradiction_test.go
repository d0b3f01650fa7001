package analytics

import (
	"testing"

	"WhaleScope/internal/domain/models"
)

func TestContradictionCEXLikeFlowCapsMEV(t *testing.T) {
	fs := models.FeatureSummary{
		UniqueCounterparties:  900,
		InflowOutflowSymmetry: 0.9,
	}
	raw := RawScores{MEV: 0.8}
	scores, penalty := ApplyContradictions(raw, fs)
	if scores[models.EntityMEVBot] != 0.50 {
		t.Fatalf("MEV should cap at 0.50 under CEX-like flow, got %v", scores[models.EntityMEVBot])
	}
	if penalty != 0.10 {
		t.Fatalf("expected penalty 0.10, got %v", penalty)
	}
}

func TestContradictionCEXLikeFlowLeavesLowMEV(t *testing.T) {
	fs := models.FeatureSummary{
		UniqueCounterparties:  900,
		InflowOutflowSymmetry: 0.9,
	}
	scores, penalty := ApplyContradictions(RawScores{MEV: 0.3}, fs)
	if scores[models.EntityMEVBot] != 0.3 {
		t.Fatalf("MEV under the cap must pass through, got %v", scores[models.EntityMEVBot])
	}
	// Penalty applies whenever the contradiction holds, capped or not.
	if penalty != 0.10 {
		t.Fatalf("expected penalty 0.10, got %v", penalty)
	}
}

func TestContradictionFrequentLargeReducesFund(t *testing.T) {
	fs := models.FeatureSummary{
		AvgTxValueETH: 60,
		TotalTxs:      600,
	}
	scores, penalty := ApplyContradictions(RawScores{Fund: 0.7}, fs)
	if scores[models.EntityFund] != 0.5 {
		t.Fatalf("Fund should drop by 0.20, got %v", scores[models.EntityFund])
	}
	if penalty != 0.10 {
		t.Fatalf("expected penalty 0.10, got %v", penalty)
	}

	// Reduction floors at zero.
	scores, _ = ApplyContradictions(RawScores{Fund: 0.1}, fs)
	if scores[models.EntityFund] != 0 {
		t.Fatalf("Fund reduction must floor at 0, got %v", scores[models.EntityFund])
	}
}

func TestContradictionStrongCEXSuppressesOthers(t *testing.T) {
	scores, penalty := ApplyContradictions(RawScores{CEXHub: 0.7, MEV: 0.4, Fund: 0.3}, models.FeatureSummary{})
	if scores[models.EntityMEVBot] != 0.25 {
		t.Fatalf("MEV should drop by 0.15, got %v", scores[models.EntityMEVBot])
	}
	if scores[models.EntityFund] != 0.15 {
		t.Fatalf("Fund should drop by 0.15, got %v", scores[models.EntityFund])
	}
	if scores[models.EntityWhale] != 0 {
		t.Fatalf("Whale untouched by CEX suppression, got %v", scores[models.EntityWhale])
	}
	if penalty != 0.05 {
		t.Fatalf("expected penalty 0.05, got %v", penalty)
	}
}

func TestContradictionNoTriggersNoPenalty(t *testing.T) {
	raw := RawScores{CEXHub: 0.3, MEV: 0.3, Fund: 0.3, Whale: 0.3}
	scores, penalty := ApplyContradictions(raw, models.FeatureSummary{})
	if penalty != 0 {
		t.Fatalf("expected zero penalty, got %v", penalty)
	}
	for k, v := range scores {
		if v != 0.3 {
			t.Fatalf("score %s changed without a contradiction: %v", k, v)
		}
	}
}
