package analytics

import (
	"fmt"

	"WhaleScope/internal/domain/models"
	"WhaleScope/pkg/util"
)

// Confidence reductions and floors. confidence = data_quality x
// signal_strength x history_depth, then hard caps.
const (
	txCountModerate = 300
	txCountLow      = 100
	cpModerate      = 30
	cpLow           = 10
	ageModerateDays = 90
	ageLowDays      = 30

	dataQualityFloor  = 0.2
	historyDepthFloor = 0.3

	weakScoreCap    = 0.55
	shortHistoryCap = 0.50
	youngWalletCap  = 0.45

	strongSignalMinCount = 3
	strongSignalMinScore = 0.7
)

// ComputeConfidence derives a capped, explained confidence for a
// classification. Reasons are appended in a fixed order and
// de-duplicated so identical input yields identical output.
func ComputeConfidence(fs models.FeatureSummary, cls models.Classification) models.ConfidenceResult {
	reasons := []string{}
	add := func(r string) {
		for _, existing := range reasons {
			if existing == r {
				return
			}
		}
		reasons = append(reasons, r)
	}

	dataQuality := 1.0
	if fs.TotalTxs < txCountModerate {
		dataQuality -= 0.1
		add(fmt.Sprintf("Moderate transaction history (%d txs)", fs.TotalTxs))
	}
	if fs.TotalTxs < txCountLow {
		dataQuality -= 0.2
		add(fmt.Sprintf("Limited transaction history (%d txs)", fs.TotalTxs))
	}
	if fs.UniqueCounterparties < cpModerate {
		dataQuality -= 0.1
		add(fmt.Sprintf("Limited counterparty diversity (%d)", fs.UniqueCounterparties))
	}
	if fs.UniqueCounterparties < cpLow {
		dataQuality -= 0.2
		add(fmt.Sprintf("Very few unique counterparties (%d)", fs.UniqueCounterparties))
	}
	if dataQuality < dataQualityFloor {
		dataQuality = dataQualityFloor
	}

	historyDepth := 1.0
	if fs.WalletAgeDays < ageModerateDays {
		historyDepth -= 0.2
		add("Wallet younger than 90 days")
	}
	if fs.WalletAgeDays < ageLowDays {
		historyDepth -= 0.3
		add("Wallet younger than 30 days")
	}
	if historyDepth < historyDepthFloor {
		historyDepth = historyDepthFloor
	}

	confidence := dataQuality * cls.EntityScore * historyDepth

	// Hard caps: the minimum of everything that triggers.
	if cls.EntityScore < 0.6 && confidence > weakScoreCap {
		confidence = weakScoreCap
		add("Confidence capped: weak entity score")
	}
	if fs.TotalTxs < txCountLow && confidence > shortHistoryCap {
		confidence = shortHistoryCap
		add("Confidence capped: short transaction history")
	}
	if fs.WalletAgeDays < ageLowDays && confidence > youngWalletCap {
		confidence = youngWalletCap
		add("Confidence capped: wallet age under 30 days")
	}

	// The prose bar is stricter than the numeric caps on purpose, so
	// the narrative never overstates certainty.
	if len(cls.SignalsUsed) >= strongSignalMinCount &&
		cls.EntityScore >= strongSignalMinScore &&
		cls.EntityType != models.EntityUnknown {
		add(fmt.Sprintf("Strong %s signals detected", cls.EntityType))
	}

	return models.ConfidenceResult{
		ConfidenceScore:   util.Score(confidence),
		ConfidenceReasons: reasons,
	}
}
