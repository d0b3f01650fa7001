package analytics

import (
	"WhaleScope/internal/domain/models"
	"WhaleScope/pkg/util"
)

// Risk label bands.
const (
	riskMediumFrom = 0.34
	riskHighFrom   = 0.67

	// Counterparty risk never exceeds MEDIUM for wallets under 30
	// days: early concentration may be by design rather than risk.
	youngWalletRiskDays = 30
	youngWalletRiskCap  = 0.66
)

// archetypeBaseRisk is the behavioral risk base per entity label.
var archetypeBaseRisk = map[string]float64{
	models.EntityMEVBot:       0.8,
	models.EntityWhale:        0.5,
	models.EntityCEXHotWallet: 0.4,
	models.EntityFund:         0.3,
	models.EntityUnknown:      0.2,
}

// AssessRisk maps features, classification, and confidence to three
// labeled risk categories. behavioral = archetype base x confidence:
// a low-confidence misclassification must not read as high risk.
func AssessRisk(fs models.FeatureSummary, cls models.Classification, conf models.ConfidenceResult) models.RiskAssessment {
	marketImpact := stairUp(fs.MaxTxValueETH, []step{
		{500, 0.9}, {100, 0.7}, {50, 0.5}, {10, 0.3},
	})
	if v := stairUp(fs.TotalVolumeETH, []step{
		{1000, 0.8}, {200, 0.5}, {50, 0.3},
	}); v > marketImpact {
		marketImpact = v
	}

	counterparty := stairUp(fs.Top5CounterpartyShare, []step{
		{0.8, 0.8}, {0.6, 0.6}, {0.4, 0.4},
	})
	if counterparty == 0 && fs.TotalTxs > 0 {
		counterparty = 0.2
	}
	if fs.WalletAgeDays < youngWalletRiskDays && counterparty > youngWalletRiskCap {
		counterparty = youngWalletRiskCap
	}

	base, ok := archetypeBaseRisk[cls.EntityType]
	if !ok {
		base = archetypeBaseRisk[models.EntityUnknown]
	}
	behavioral := base * conf.ConfidenceScore

	return models.RiskAssessment{
		MarketImpact: riskCategory(marketImpact),
		Counterparty: riskCategory(counterparty),
		Behavioral:   riskCategory(behavioral),
	}
}

func riskCategory(score float64) models.RiskCategory {
	score = util.Score(score)
	label := models.RiskLow
	switch {
	case score >= riskHighFrom:
		label = models.RiskHigh
	case score >= riskMediumFrom:
		label = models.RiskMedium
	}
	return models.RiskCategory{Score: score, Label: label}
}
