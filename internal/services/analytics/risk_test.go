package analytics

import (
	"testing"

	"WhaleScope/internal/domain/models"
)

func TestAssessRiskMarketImpactByMaxTransfer(t *testing.T) {
	fs := models.FeatureSummary{MaxTxValueETH: 600, TotalTxs: 10, WalletAgeDays: 100}
	risk := AssessRisk(fs, models.Classification{EntityType: models.EntityUnknown}, models.ConfidenceResult{ConfidenceScore: 0.5})
	if risk.MarketImpact.Score != 0.9 || risk.MarketImpact.Label != models.RiskHigh {
		t.Fatalf("max transfer 600 should be HIGH 0.9, got %+v", risk.MarketImpact)
	}
}

func TestAssessRiskMarketImpactByVolume(t *testing.T) {
	// Small individual transfers but large cumulative volume.
	fs := models.FeatureSummary{MaxTxValueETH: 5, TotalVolumeETH: 1500, TotalTxs: 10, WalletAgeDays: 100}
	risk := AssessRisk(fs, models.Classification{EntityType: models.EntityUnknown}, models.ConfidenceResult{ConfidenceScore: 0.5})
	if risk.MarketImpact.Score != 0.8 {
		t.Fatalf("volume 1500 should drive impact 0.8, got %+v", risk.MarketImpact)
	}
}

func TestAssessRiskCounterpartyYoungWalletCap(t *testing.T) {
	fs := models.FeatureSummary{Top5CounterpartyShare: 0.9, TotalTxs: 10, WalletAgeDays: 10}
	risk := AssessRisk(fs, models.Classification{EntityType: models.EntityUnknown}, models.ConfidenceResult{ConfidenceScore: 0.5})
	if risk.Counterparty.Score != 0.66 || risk.Counterparty.Label != models.RiskMedium {
		t.Fatalf("young wallet counterparty risk caps at MEDIUM 0.66, got %+v", risk.Counterparty)
	}
}

func TestAssessRiskCounterpartyBaseline(t *testing.T) {
	fs := models.FeatureSummary{Top5CounterpartyShare: 0.1, TotalTxs: 10, WalletAgeDays: 100}
	risk := AssessRisk(fs, models.Classification{EntityType: models.EntityUnknown}, models.ConfidenceResult{ConfidenceScore: 0.5})
	if risk.Counterparty.Score != 0.2 || risk.Counterparty.Label != models.RiskLow {
		t.Fatalf("active wallet with dispersed counterparties is LOW 0.2, got %+v", risk.Counterparty)
	}
}

func TestAssessRiskBehavioralScalesWithConfidence(t *testing.T) {
	fs := models.FeatureSummary{TotalTxs: 100, WalletAgeDays: 100}

	mev := AssessRisk(fs, models.Classification{EntityType: models.EntityMEVBot}, models.ConfidenceResult{ConfidenceScore: 0.9})
	if mev.Behavioral.Score != 0.72 || mev.Behavioral.Label != models.RiskHigh {
		t.Fatalf("confident MEV should be HIGH 0.72, got %+v", mev.Behavioral)
	}

	lowConf := AssessRisk(fs, models.Classification{EntityType: models.EntityMEVBot}, models.ConfidenceResult{ConfidenceScore: 0.2})
	if lowConf.Behavioral.Score != 0.16 || lowConf.Behavioral.Label != models.RiskLow {
		t.Fatalf("unconfident MEV must not read as high risk, got %+v", lowConf.Behavioral)
	}

	unknown := AssessRisk(fs, models.Classification{EntityType: models.EntityUnknown}, models.ConfidenceResult{ConfidenceScore: 0.5})
	if unknown.Behavioral.Score != 0.1 {
		t.Fatalf("unknown behavioral risk = 0.2*conf, got %+v", unknown.Behavioral)
	}
}

func TestRiskCategoryBands(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0.33, models.RiskLow},
		{0.34, models.RiskMedium},
		{0.66, models.RiskMedium},
		{0.67, models.RiskHigh},
	}
	for _, c := range cases {
		got := riskCategory(c.score)
		if got.Label != c.want {
			t.Fatalf("riskCategory(%v) = %q, want %q", c.score, got.Label, c.want)
		}
	}
}
