package models

// FeatureSummary holds the normalized metric bundle for one address.
// It is recomputed fresh on every call and is never partially
// populated: absent data yields the canonical all-zero shape from
// NewFeatureSummary. Ratios are rounded to 3 decimals, monetary
// figures to 4.
type FeatureSummary struct {
	Address string `json:"address"`

	// Activity
	TotalTxs      int     `json:"total_txs"`
	WalletAgeDays float64 `json:"wallet_age_days"`
	AvgTxPerDay   float64 `json:"avg_tx_per_day"`
	FirstSeen     int64   `json:"first_seen"`
	LastSeen      int64   `json:"last_seen"`

	// Volume (ETH)
	TotalInETH            float64 `json:"total_in_eth"`
	TotalOutETH           float64 `json:"total_out_eth"`
	TotalVolumeETH        float64 `json:"total_volume_eth"`
	NetFlowETH            float64 `json:"net_flow_eth"`
	AvgTxValueETH         float64 `json:"avg_tx_value_eth"`
	MaxTxValueETH         float64 `json:"max_tx_value_eth"`
	InflowOutflowSymmetry float64 `json:"inflow_outflow_symmetry"`

	// Network
	UniqueCounterparties    int     `json:"unique_counterparties"`
	RepeatCounterpartyRatio float64 `json:"repeat_counterparty_ratio"`
	Top5CounterpartyShare   float64 `json:"top_5_counterparty_share"`
	CEXCounterpartyCount    int     `json:"cex_counterparty_count"`
	CEXVolumeShare          float64 `json:"cex_volume_share"`

	// Behavioral
	DEXInteractionRatio  float64 `json:"dex_interaction_ratio"`
	CEXInteractionRatio  float64 `json:"cex_interaction_ratio"`
	ContractCallRatio    float64 `json:"contract_call_ratio"`
	SameBlock3PlusCount  int     `json:"same_block_3_plus_count"`
	GasSpikeRatio        float64 `json:"gas_spike_ratio"`
	RoundNumberTransfers int     `json:"round_number_transfers"`
	LargeTransfersCount  int     `json:"large_transfers_count"`

	// Temporal
	BurstActivityScore float64 `json:"burst_activity_score"`
	RecentTxCount      int     `json:"recent_tx_count"`
}

// NewFeatureSummary returns the canonical zero-valued summary for an
// address. Every downstream consumer can rely on this exact shape when
// no transactions exist.
func NewFeatureSummary(address string) FeatureSummary {
	return FeatureSummary{Address: address}
}
