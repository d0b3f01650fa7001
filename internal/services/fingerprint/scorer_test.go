package fingerprint

import (
	"testing"

	"WhaleScope/internal/domain/models"
	"WhaleScope/pkg/config"
)

func emptyBook() *config.AddressBook {
	return config.NewAddressBook(nil, nil, nil, nil)
}

func TestScoreZeroFeaturesIsUnknown(t *testing.T) {
	s := NewScorer(emptyBook())
	fp := s.Score(models.NewFeatureSummary(storeAddr), nil, nil, models.NewClusterData())
	if fp.EntityType != models.EntityUnknown {
		t.Fatalf("zero evidence must stay Unknown, got %q", fp.EntityType)
	}
	if fp.ConfidenceScore != 0 {
		t.Fatalf("unknown fingerprint has zero confidence, got %v", fp.ConfidenceScore)
	}
	if len(fp.Scores) != 6 {
		t.Fatalf("all six signatures must be reported, got %v", fp.Scores)
	}
}

func TestScoreExchangeSignature(t *testing.T) {
	s := NewScorer(emptyBook())
	fs := models.FeatureSummary{
		Address:              storeAddr,
		UniqueCounterparties: 350,
	}
	fp := s.Score(fs, nil, nil, models.NewClusterData())
	if fp.EntityType != "Exchange" {
		t.Fatalf("broad counterparty set should fingerprint as Exchange, got %q (%v)", fp.EntityType, fp.Scores)
	}
	if fp.ConfidenceScore != 0.4 {
		t.Fatalf("confidence tracks the top score, got %v", fp.ConfidenceScore)
	}
	assertSupporting(t, fp.SupportingSignals, "exchange:counterparty_breadth")
}

func TestScoreAmbiguousGapIsUnknown(t *testing.T) {
	s := NewScorer(emptyBook())
	// Exchange 0.40 (breadth) vs Fund 0.40 (round transfers): the gap
	// is zero, so no label may be claimed.
	fs := models.FeatureSummary{
		Address:              storeAddr,
		UniqueCounterparties: 350,
		RoundNumberTransfers: 3,
		TotalTxs:             100,
		AvgTxPerDay:          5,
	}
	fp := s.Score(fs, nil, nil, models.NewClusterData())
	if fp.EntityType != models.EntityUnknown {
		t.Fatalf("tied signatures must stay Unknown, got %q (%v)", fp.EntityType, fp.Scores)
	}
	if len(fp.SupportingSignals) != 0 {
		t.Fatalf("no supporting signals without a label, got %v", fp.SupportingSignals)
	}
}

func TestScoreConfidenceCapped(t *testing.T) {
	s := NewScorer(emptyBook())
	// Smart money at full strength: 0.4 + 0.3 + 0.3 = 1.0, capped 0.85.
	fs := models.FeatureSummary{
		Address:             storeAddr,
		NetFlowETH:          150,
		LargeTransfersCount: 5,
		DEXInteractionRatio: 0.3,
	}
	fp := s.Score(fs, nil, nil, models.NewClusterData())
	if fp.EntityType != "Smart Money" {
		t.Fatalf("expected Smart Money, got %q (%v)", fp.EntityType, fp.Scores)
	}
	if fp.ConfidenceScore != 0.85 {
		t.Fatalf("confidence must cap at 0.85, got %v", fp.ConfidenceScore)
	}
}

func TestScoreCarriesClusterID(t *testing.T) {
	s := NewScorer(emptyBook())
	cluster := models.ClusterData{ClusterID: "deadbeef00112233"}
	fp := s.Score(models.NewFeatureSummary(storeAddr), nil, nil, cluster)
	if fp.EntityClusterID != "deadbeef00112233" {
		t.Fatalf("cluster id must be carried through, got %q", fp.EntityClusterID)
	}
}

func assertSupporting(t *testing.T, signals []string, want string) {
	t.Helper()
	for _, s := range signals {
		if s == want {
			return
		}
	}
	t.Fatalf("missing supporting signal %q in %v", want, signals)
}
