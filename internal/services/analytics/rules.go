package analytics

import (
	"WhaleScope/internal/domain/models"
)

// Rule gating minimums and ceilings. Scores of under-evidenced
// archetypes are capped, not zeroed, so a near-miss archetype still
// shows up in all_scores at a plausible magnitude.
const (
	cexMinRules  = 3
	mevMinRules  = 3
	fundMinRules = 3

	cexGateCap  = 0.50
	mevGateCap  = 0.45
	fundGateCap = 0.50
)

// rule is one checklist item. The name ends up in signals_used when
// the archetype wins, so names describe the evidence, not the code.
type rule struct {
	name string
	pred func(fs models.FeatureSummary, ctx Context) bool
}

// Canonical CEX gating table: tx_count>1000, counterparties>500,
// cluster_size>20. A divergent legacy variant (tx>1001, cp>201) exists
// in older rule sets and was rejected; see DESIGN.md.
var cexRules = []rule{
	{"cex:tx_count_over_1000", func(fs models.FeatureSummary, _ Context) bool { return fs.TotalTxs > 1000 }},
	{"cex:counterparties_over_500", func(fs models.FeatureSummary, _ Context) bool { return fs.UniqueCounterparties > 500 }},
	{"cex:flow_symmetry_over_0.8", func(fs models.FeatureSummary, _ Context) bool { return fs.InflowOutflowSymmetry > 0.8 }},
	{"cex:cluster_size_over_20", func(_ models.FeatureSummary, ctx Context) bool { return ctx.ClusterSize > 20 }},
	{"cex:tx_per_day_at_least_10", func(fs models.FeatureSummary, _ Context) bool { return fs.AvgTxPerDay >= 10 }},
	{"cex:multiple_funding_sources", func(_ models.FeatureSummary, ctx Context) bool { return ctx.FundingSourceCount >= 2 }},
}

var mevRules = []rule{
	{"mev:same_block_3plus", func(fs models.FeatureSummary, _ Context) bool { return fs.SameBlock3PlusCount >= 3 }},
	{"mev:same_block_sustained", func(fs models.FeatureSummary, _ Context) bool { return fs.SameBlock3PlusCount >= 5 }},
	{"mev:dex_ratio_at_least_0.4", func(fs models.FeatureSummary, _ Context) bool { return fs.DEXInteractionRatio >= 0.4 }},
	{"mev:gas_spikes", func(fs models.FeatureSummary, _ Context) bool { return fs.GasSpikeRatio >= 0.15 }},
	{"mev:recurring_bursts", func(fs models.FeatureSummary, _ Context) bool { return fs.BurstActivityScore >= 0.5 }},
	{"mev:counterparties_at_least_100", func(fs models.FeatureSummary, _ Context) bool { return fs.UniqueCounterparties >= 100 }},
}

var fundRules = []rule{
	{"fund:avg_value_at_least_25", func(fs models.FeatureSummary, _ Context) bool { return fs.AvgTxValueETH >= 25 }},
	{"fund:round_transfers", func(fs models.FeatureSummary, _ Context) bool { return fs.RoundNumberTransfers >= 2 }},
	{"fund:low_frequency", func(fs models.FeatureSummary, _ Context) bool { return fs.TotalTxs > 0 && fs.AvgTxPerDay <= 3 }},
	{"fund:age_at_least_90d", func(fs models.FeatureSummary, _ Context) bool { return fs.WalletAgeDays >= 90 }},
	{"fund:concentrated_counterparties", func(fs models.FeatureSummary, _ Context) bool { return fs.Top5CounterpartyShare >= 0.6 }},
}

// Whale checklist is informational only: Individual Whale is the one
// ungated fallback archetype.
var whaleRules = []rule{
	{"whale:large_max_transfer", func(fs models.FeatureSummary, _ Context) bool { return fs.MaxTxValueETH >= 50 }},
	{"whale:volume_at_least_200", func(fs models.FeatureSummary, _ Context) bool { return fs.TotalVolumeETH >= 200 }},
	{"whale:few_counterparties", func(fs models.FeatureSummary, _ Context) bool { return fs.TotalTxs > 0 && fs.UniqueCounterparties <= 30 }},
	{"whale:repeat_counterparties", func(fs models.FeatureSummary, _ Context) bool { return fs.RepeatCounterpartyRatio >= 0.3 }},
	{"whale:age_at_least_180d", func(fs models.FeatureSummary, _ Context) bool { return fs.WalletAgeDays >= 180 }},
}

// RuleResult is the per-archetype checklist outcome.
type RuleResult struct {
	Satisfied map[string][]string // archetype -> satisfied item names
	Counts    map[string]int
}

// CountRules evaluates every checklist item against the features.
func CountRules(fs models.FeatureSummary, ctx Context) RuleResult {
	res := RuleResult{
		Satisfied: map[string][]string{},
		Counts:    map[string]int{},
	}
	for archetype, rules := range map[string][]rule{
		models.EntityCEXHotWallet: cexRules,
		models.EntityMEVBot:       mevRules,
		models.EntityFund:         fundRules,
		models.EntityWhale:        whaleRules,
	} {
		names := []string{}
		for _, r := range rules {
			if r.pred(fs, ctx) {
				names = append(names, r.name)
			}
		}
		res.Satisfied[archetype] = names
		res.Counts[archetype] = len(names)
	}
	return res
}

// ApplyGates caps archetype scores whose checklist count falls short
// of the archetype minimum. Individual Whale is never gated.
func ApplyGates(scores map[string]float64, rules RuleResult) map[string]float64 {
	gated := make(map[string]float64, len(scores))
	for k, v := range scores {
		gated[k] = v
	}
	if rules.Counts[models.EntityCEXHotWallet] < cexMinRules && gated[models.EntityCEXHotWallet] > cexGateCap {
		gated[models.EntityCEXHotWallet] = cexGateCap
	}
	if rules.Counts[models.EntityMEVBot] < mevMinRules && gated[models.EntityMEVBot] > mevGateCap {
		gated[models.EntityMEVBot] = mevGateCap
	}
	if rules.Counts[models.EntityFund] < fundMinRules && gated[models.EntityFund] > fundGateCap {
		gated[models.EntityFund] = fundGateCap
	}
	return gated
}
