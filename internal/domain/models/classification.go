package models

// Entity labels assigned by the attribution decider. Unknown is the
// fail-closed default whenever evidence is ambiguous or insufficient.
const (
	EntityCEXHotWallet = "CEX Hot Wallet"
	EntityMEVBot       = "MEV Bot"
	EntityFund         = "Fund/Institutional Whale"
	EntityWhale        = "Individual Whale"
	EntityUnknown      = "Unknown"
)

// Decision bands recorded in Classification.SignalsUsed.
const (
	BandStrong    = "band:strong"
	BandModerate  = "band:moderate"
	BandAmbiguous = "band:ambiguous"
	BandWeak      = "band:weak"
)

// Classification is the attribution result for a wallet. EntityScore
// is the winning adjusted score even when EntityType is Unknown, so
// confidence and risk remain total functions of this value.
type Classification struct {
	EntityType           string             `json:"entity_type"`
	EntityScore          float64            `json:"entity_score"`
	SignalsUsed          []string           `json:"signals_used"`
	AllScores            map[string]float64 `json:"all_scores"`
	ContradictionPenalty float64            `json:"contradiction_penalty"`
}

// NewClassification returns the canonical Unknown result.
func NewClassification() Classification {
	return Classification{
		EntityType:  EntityUnknown,
		SignalsUsed: []string{},
		AllScores: map[string]float64{
			EntityCEXHotWallet: 0,
			EntityMEVBot:       0,
			EntityFund:         0,
			EntityWhale:        0,
		},
	}
}

// ConfidenceResult expresses certainty about a Classification.
// Reasons are ordered and de-duplicated so identical input always
// yields identical output.
type ConfidenceResult struct {
	ConfidenceScore   float64  `json:"confidence_score"`
	ConfidenceReasons []string `json:"confidence_reasons"`
}

// ClusterData is conservative wallet-grouping evidence. ClusterID is
// empty unless at least two independent strong signals or two
// non-contract connected wallets exist.
type ClusterData struct {
	ClusterID         string   `json:"cluster_id,omitempty"`
	ClusterSize       int      `json:"cluster_size"`
	RelatedWallets    []string `json:"related_wallets"`
	ClusterConfidence float64  `json:"cluster_confidence"`
}

// NewClusterData returns the canonical no-cluster shape.
func NewClusterData() ClusterData {
	return ClusterData{RelatedWallets: []string{}}
}

// FundingAnalysis summarizes inbound funding sources for a wallet.
type FundingAnalysis struct {
	Funders            []string `json:"funders"`
	CEXOrBridgeFunders []string `json:"cex_or_bridge_funders"`
	Signals            []string `json:"signals"`
}

// NewFundingAnalysis returns the canonical empty analysis.
func NewFundingAnalysis() FundingAnalysis {
	return FundingAnalysis{Funders: []string{}, CEXOrBridgeFunders: []string{}, Signals: []string{}}
}

// CoordinationSignals is temporal and counterparty coordination
// evidence derived from the same transaction inputs.
type CoordinationSignals struct {
	ConnectedWallets          []string `json:"connected_wallets"`
	TemporalSignals           []string `json:"temporal_signals"`
	SharedCounterpartySignals []string `json:"shared_counterparty_signals"`
}

// NewCoordinationSignals returns the canonical empty signal set.
func NewCoordinationSignals() CoordinationSignals {
	return CoordinationSignals{ConnectedWallets: []string{}, TemporalSignals: []string{}, SharedCounterpartySignals: []string{}}
}

// Risk labels.
const (
	RiskLow    = "LOW"
	RiskMedium = "MEDIUM"
	RiskHigh   = "HIGH"
)

// RiskCategory is one labeled risk score.
type RiskCategory struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// RiskAssessment maps a classification to per-category risk labels.
type RiskAssessment struct {
	MarketImpact RiskCategory `json:"market_impact"`
	Counterparty RiskCategory `json:"counterparty"`
	Behavioral   RiskCategory `json:"behavioral"`
}

// Flow verdict labels carried over from the net-flow behavior layer.
const (
	FlowAccumulation = "accumulation"
	FlowDistribution = "distribution"
	FlowNeutral      = "neutral"

	VerdictAccumulation = "SMART_MONEY_ACCUMULATION"
	VerdictDistribution = "STEALTH_DISTRIBUTION"
	VerdictNeutral      = "NEUTRAL"
)

// FlowVerdict classifies net ETH flow direction. Enrichment only,
// never authoritative for attribution or risk.
type FlowVerdict struct {
	Behavior   string  `json:"behavior"`
	Verdict    string  `json:"verdict"`
	Confidence float64 `json:"confidence"`
	NetETH     float64 `json:"net_eth"`
}

// EntityFingerprint is the secondary enrichment label produced by the
// independent fingerprint overlay.
type EntityFingerprint struct {
	EntityType        string             `json:"entity_type"`
	ConfidenceScore   float64            `json:"confidence_score"`
	SupportingSignals []string           `json:"supporting_signals"`
	Scores            map[string]float64 `json:"scores"`
	EntityClusterID   string             `json:"entity_cluster_id,omitempty"`
	StoredAt          int64              `json:"stored_at,omitempty"`
}

// WalletIntelligence is the full pipeline output for one address.
type WalletIntelligence struct {
	Address        string              `json:"address"`
	Features       FeatureSummary      `json:"features"`
	Classification Classification      `json:"classification"`
	Confidence     ConfidenceResult    `json:"confidence"`
	Cluster        ClusterData         `json:"cluster"`
	Funding        FundingAnalysis     `json:"funding"`
	Coordination   CoordinationSignals `json:"coordination"`
	Risk           RiskAssessment      `json:"risk"`
	Flow           FlowVerdict         `json:"flow"`
	Fingerprint    EntityFingerprint   `json:"fingerprint"`
}
