package analytics

import (
	"testing"

	"WhaleScope/internal/domain/models"
)

func TestClassifyFlowAccumulation(t *testing.T) {
	fs := models.FeatureSummary{TotalInETH: 300, TotalOutETH: 49, TotalTxs: 20}
	v := ClassifyFlow(fs)
	if v.Behavior != models.FlowAccumulation || v.Verdict != models.VerdictAccumulation {
		t.Fatalf("net +251 must be accumulation, got %+v", v)
	}
	// excess 201 >= 200: full strength, 0.5 + 0.4 = 0.9
	if v.Confidence != 0.9 {
		t.Fatalf("expected confidence 0.9, got %v", v.Confidence)
	}
}

func TestClassifyFlowDistribution(t *testing.T) {
	fs := models.FeatureSummary{TotalInETH: 10, TotalOutETH: 111, TotalTxs: 20}
	v := ClassifyFlow(fs)
	if v.Behavior != models.FlowDistribution || v.Verdict != models.VerdictDistribution {
		t.Fatalf("net -101 must be distribution, got %+v", v)
	}
	// excess 51 of 200: 0.5 + 0.4*0.255 = 0.602 -> 0.6
	if v.Confidence != 0.6 {
		t.Fatalf("expected confidence 0.6, got %v", v.Confidence)
	}
	if v.NetETH != -101 {
		t.Fatalf("expected net -101, got %v", v.NetETH)
	}
}

func TestClassifyFlowThresholdIsExclusive(t *testing.T) {
	fs := models.FeatureSummary{TotalInETH: 50, TotalOutETH: 0, TotalTxs: 5}
	v := ClassifyFlow(fs)
	if v.Behavior != models.FlowNeutral {
		t.Fatalf("net exactly +50 stays neutral, got %q", v.Behavior)
	}
	if v.Confidence != 0.5 {
		t.Fatalf("quiet neutral wallet has confidence 0.5, got %v", v.Confidence)
	}
}

func TestClassifyFlowNeutralActivityBoost(t *testing.T) {
	fs := models.FeatureSummary{TotalInETH: 20, TotalOutETH: 10, TotalTxs: 10}
	v := ClassifyFlow(fs)
	if v.Behavior != models.FlowNeutral {
		t.Fatalf("expected neutral, got %q", v.Behavior)
	}
	if v.Confidence != 0.6 {
		t.Fatalf("active neutral wallet gets the 0.1 boost, got %v", v.Confidence)
	}
}
