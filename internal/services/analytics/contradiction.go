package analytics

import (
	"WhaleScope/internal/domain/models"
)

// Contradiction thresholds and penalties. Each rule reduces one
// archetype's score because evidence for another makes it implausible,
// preventing correlated signals from producing two incompatible labels
// at once.
const (
	cexLikeCounterparties = 800
	cexLikeSymmetry       = 0.8
	mevContradictionCap   = 0.50

	fundLargeAvgETH    = 50.0
	fundHighTxCount    = 500
	fundFrequencyMalus = 0.20

	strongCEXScore       = 0.6
	strongCEXSuppression = 0.15

	flowPenalty      = 0.10
	frequencyPenalty = 0.10
	suppressPenalty  = 0.05
)

// ApplyContradictions adjusts the raw scores for cross-archetype
// consistency and returns the adjusted score map plus the accumulated
// contradiction penalty.
func ApplyContradictions(raw RawScores, fs models.FeatureSummary) (map[string]float64, float64) {
	scores := map[string]float64{
		models.EntityCEXHotWallet: raw.CEXHub,
		models.EntityMEVBot:       raw.MEV,
		models.EntityFund:         raw.Fund,
		models.EntityWhale:        raw.Whale,
	}
	penalty := 0.0

	// CEX-like flow contradicts MEV: an address trading against
	// hundreds of counterparties with near-symmetric flow is a
	// deposit/withdrawal hub, not a searcher.
	if fs.UniqueCounterparties > cexLikeCounterparties && fs.InflowOutflowSymmetry > cexLikeSymmetry {
		if scores[models.EntityMEVBot] > mevContradictionCap {
			scores[models.EntityMEVBot] = mevContradictionCap
		}
		penalty += flowPenalty
	}

	// Large-but-frequent contradicts fund-like infrequency.
	if fs.AvgTxValueETH >= fundLargeAvgETH && fs.TotalTxs > fundHighTxCount {
		scores[models.EntityFund] -= fundFrequencyMalus
		if scores[models.EntityFund] < 0 {
			scores[models.EntityFund] = 0
		}
		penalty += frequencyPenalty
	}

	// A strong CEX signal actively suppresses competing labels.
	if scores[models.EntityCEXHotWallet] >= strongCEXScore {
		for _, k := range []string{models.EntityMEVBot, models.EntityFund} {
			scores[k] -= strongCEXSuppression
			if scores[k] < 0 {
				scores[k] = 0
			}
		}
		penalty += suppressPenalty
	}

	return scores, penalty
}
