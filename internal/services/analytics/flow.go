package analytics

import (
	"math"

	"WhaleScope/internal/domain/models"
	"WhaleScope/pkg/util"
)

// Net-flow verdict thresholds. Net inflow or outflow must exceed 50
// ETH to be non-neutral; confidence stays in [0.5, 0.9].
const (
	flowThresholdETH  = 50.0
	flowFullExcessETH = 200.0

	flowBaseConfidence  = 0.5
	flowExtraConfidence = 0.4
	flowNeutralBoostTxs = 10
)

// ClassifyFlow labels net ETH flow as accumulation, distribution, or
// neutral. Enrichment only, never authoritative for attribution.
func ClassifyFlow(fs models.FeatureSummary) models.FlowVerdict {
	net := fs.TotalInETH - fs.TotalOutETH

	v := models.FlowVerdict{
		Behavior: models.FlowNeutral,
		Verdict:  models.VerdictNeutral,
		NetETH:   util.Round4(net),
	}
	switch {
	case net > flowThresholdETH:
		v.Behavior = models.FlowAccumulation
		v.Verdict = models.VerdictAccumulation
	case net < -flowThresholdETH:
		v.Behavior = models.FlowDistribution
		v.Verdict = models.VerdictDistribution
	}

	v.Confidence = util.Round2(flowConfidence(v.Behavior, net, fs.TotalTxs))
	return v
}

func flowConfidence(behavior string, net float64, totalTxs int) float64 {
	if behavior == models.FlowNeutral {
		if totalTxs >= flowNeutralBoostTxs {
			return flowBaseConfidence + 0.1
		}
		return flowBaseConfidence
	}
	excess := math.Abs(net) - flowThresholdETH
	if excess <= 0 {
		return flowBaseConfidence
	}
	strength := math.Min(1.0, excess/flowFullExcessETH)
	return flowBaseConfidence + flowExtraConfidence*strength
}
