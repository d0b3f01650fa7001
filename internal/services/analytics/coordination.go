package analytics

import (
	"fmt"
	"sort"

	"WhaleScope/internal/domain/models"
	"WhaleScope/pkg/util"
)

// Coordination detection thresholds.
const (
	coordBurstWindowSeconds = 600
	coordBurstMinTxs        = 3

	smallCircleMinSize  = 2
	smallCircleMaxSize  = 5
	smallCircleMinSends = 3

	SignalRepeatedSmallCircle = "repeated_small_circle"
)

// CoordinationDetector finds temporal and counterparty coordination
// evidence. Pure function of the transaction inputs.
type CoordinationDetector struct{}

func NewCoordinationDetector() *CoordinationDetector {
	return &CoordinationDetector{}
}

// Detect derives connected wallets (internal-tx counterparties),
// temporal send bursts, and the weak "repeated small circle" signal
// from a small stable outbound counterparty set.
func (d *CoordinationDetector) Detect(address string, normal, internal []models.TransactionRecord) models.CoordinationSignals {
	addr := util.NormalizeAddress(address)
	out := models.NewCoordinationSignals()
	if addr == "" {
		return out
	}

	// Connected wallets: counterparties reached via internal txs.
	connected := map[string]struct{}{}
	for i := range internal {
		from := util.NormalizeAddress(internal[i].From)
		to := util.NormalizeAddress(internal[i].To)
		if from == addr && to != "" && to != addr {
			connected[to] = struct{}{}
		}
		if to == addr && from != "" && from != addr {
			connected[from] = struct{}{}
		}
	}
	for w := range connected {
		out.ConnectedWallets = append(out.ConnectedWallets, w)
	}
	sort.Strings(out.ConnectedWallets)

	// Temporal bursts and outbound counterparty counts over all sends.
	var sent []int64
	outboundCounts := map[string]int{}
	for _, txs := range [][]models.TransactionRecord{normal, internal} {
		for i := range txs {
			if util.NormalizeAddress(txs[i].From) != addr {
				continue
			}
			if ts := util.ParseUnixSeconds(txs[i].TimeStamp); ts > 0 {
				sent = append(sent, ts)
			}
			if to := util.NormalizeAddress(txs[i].To); to != "" && to != addr {
				outboundCounts[to]++
			}
		}
	}

	if windows := burstWindows(sent); windows > 0 {
		out.TemporalSignals = append(out.TemporalSignals, fmt.Sprintf("temporal_burst_windows:%d", windows))
	}

	stable := 0
	for _, n := range outboundCounts {
		if n >= smallCircleMinSends {
			stable++
		}
	}
	if stable >= smallCircleMinSize && stable <= smallCircleMaxSize {
		out.SharedCounterpartySignals = append(out.SharedCounterpartySignals, SignalRepeatedSmallCircle)
	}
	return out
}

// burstWindows counts non-overlapping 10-minute windows containing
// >=3 sends.
func burstWindows(sent []int64) int {
	if len(sent) < coordBurstMinTxs {
		return 0
	}
	ts := append([]int64(nil), sent...)
	sort.Slice(ts, func(i, j int) bool { return ts[i] < ts[j] })

	windows := 0
	for i := 0; i+coordBurstMinTxs-1 < len(ts); {
		if ts[i+coordBurstMinTxs-1]-ts[i] <= coordBurstWindowSeconds {
			windows++
			end := ts[i] + coordBurstWindowSeconds
			for i < len(ts) && ts[i] <= end {
				i++
			}
		} else {
			i++
		}
	}
	return windows
}
