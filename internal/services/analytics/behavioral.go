package analytics

import (
	"WhaleScope/internal/domain/models"
	"WhaleScope/pkg/util"
)

// Context carries the optional numeric context derived from cluster
// and funding analysis. Zero values are valid (first-pass scoring).
type Context struct {
	ClusterSize        int
	FundingSourceCount int
}

// RawScores holds the four archetype scores before contradiction
// filtering and rule gating.
type RawScores struct {
	CEXHub float64
	MEV    float64
	Fund   float64
	Whale  float64
}

// step is one staircase threshold. Boundary operators are exact and
// deliberate: up-stairs use >=, down-stairs use <=. Thresholds map to
// discrete scores rather than curves so each one stays independently
// auditable and tunable.
type step struct {
	at    float64
	score float64
}

// stairUp returns the score of the highest step v reaches (v >= at).
// Steps must be ordered from highest threshold down.
func stairUp(v float64, steps []step) float64 {
	for _, s := range steps {
		if v >= s.at {
			return s.score
		}
	}
	return 0
}

// stairDown returns the score of the lowest step v stays under
// (v <= at). Steps must be ordered from lowest threshold up.
func stairDown(v float64, steps []step) float64 {
	for _, s := range steps {
		if v <= s.at {
			return s.score
		}
	}
	return 0
}

// ScoreArchetypes computes the four raw archetype scores. Each is a
// fixed-weight sum of staircase sub-scores; weights sum to 1.0 per
// archetype so every raw score lands in [0,1].
func ScoreArchetypes(fs models.FeatureSummary, ctx Context) RawScores {
	return RawScores{
		CEXHub: util.Clamp01(cexHubScore(fs, ctx)),
		MEV:    util.Clamp01(mevScore(fs)),
		Fund:   util.Clamp01(fundScore(fs)),
		Whale:  util.Clamp01(whaleScore(fs)),
	}
}

func cexHubScore(fs models.FeatureSummary, ctx Context) float64 {
	score := 0.30 * stairUp(float64(fs.UniqueCounterparties), []step{
		{500, 1.0}, {200, 0.7}, {100, 0.4}, {50, 0.2},
	})
	score += 0.20 * stairUp(float64(fs.TotalTxs), []step{
		{1000, 1.0}, {500, 0.7}, {200, 0.4}, {100, 0.2},
	})
	score += 0.20 * stairUp(fs.InflowOutflowSymmetry, []step{
		{0.9, 1.0}, {0.8, 0.7}, {0.6, 0.4},
	})
	score += 0.15 * stairUp(float64(ctx.ClusterSize), []step{
		{20, 1.0}, {10, 0.6}, {5, 0.3},
	})
	score += 0.15 * stairUp(fs.AvgTxPerDay, []step{
		{50, 1.0}, {20, 0.7}, {5, 0.4},
	})
	return score
}

func mevScore(fs models.FeatureSummary) float64 {
	score := 0.30 * stairUp(float64(fs.SameBlock3PlusCount), []step{
		{5, 1.0}, {3, 0.7}, {1, 0.4},
	})
	score += 0.25 * stairUp(fs.DEXInteractionRatio, []step{
		{0.6, 1.0}, {0.4, 0.7}, {0.2, 0.4},
	})
	score += 0.20 * stairUp(fs.GasSpikeRatio, []step{
		{0.3, 1.0}, {0.2, 0.7}, {0.1, 0.4},
	})
	score += 0.15 * stairUp(fs.BurstActivityScore, []step{
		{0.6, 1.0}, {0.3, 0.6},
	})
	score += 0.10 * stairUp(fs.ContractCallRatio, []step{
		{0.8, 1.0}, {0.5, 0.6},
	})
	return score
}

func fundScore(fs models.FeatureSummary) float64 {
	score := 0.30 * stairUp(fs.AvgTxValueETH, []step{
		{100, 1.0}, {50, 0.7}, {25, 0.4}, {10, 0.2},
	})
	score += 0.20 * stairUp(float64(fs.RoundNumberTransfers), []step{
		{5, 1.0}, {3, 0.7}, {1, 0.3},
	})
	if fs.TotalTxs > 0 {
		score += 0.20 * stairDown(fs.AvgTxPerDay, []step{
			{1, 1.0}, {3, 0.6}, {5, 0.3},
		})
	}
	score += 0.15 * stairUp(fs.Top5CounterpartyShare, []step{
		{0.8, 1.0}, {0.6, 0.6},
	})
	score += 0.15 * stairUp(fs.WalletAgeDays, []step{
		{365, 1.0}, {180, 0.6}, {90, 0.3},
	})
	return score
}

func whaleScore(fs models.FeatureSummary) float64 {
	score := 0.30 * stairUp(fs.MaxTxValueETH, []step{
		{500, 1.0}, {100, 0.7}, {50, 0.4}, {10, 0.2},
	})
	score += 0.25 * stairUp(fs.TotalVolumeETH, []step{
		{1000, 1.0}, {200, 0.6}, {50, 0.3},
	})
	if fs.TotalTxs > 0 {
		score += 0.20 * stairDown(float64(fs.UniqueCounterparties), []step{
			{10, 1.0}, {30, 0.6}, {50, 0.3},
		})
	}
	score += 0.15 * stairUp(fs.RepeatCounterpartyRatio, []step{
		{0.5, 1.0}, {0.3, 0.6},
	})
	score += 0.10 * stairUp(fs.WalletAgeDays, []step{
		{180, 1.0}, {90, 0.5},
	})
	return score
}
