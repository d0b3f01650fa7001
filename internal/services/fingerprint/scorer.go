package fingerprint

import (
	"sort"

	"WhaleScope/internal/domain/models"
	"WhaleScope/pkg/config"
	"WhaleScope/pkg/util"
)

// Fingerprint signature keys. This overlay runs on its own thresholds
// and feature bases; its output is additive report enrichment, never
// authoritative for classification or risk.
const (
	SigExchange       = "exchange"
	SigMEVSearcher    = "mev_searcher"
	SigBridge         = "bridge"
	SigProtocolRouter = "protocol_router"
	SigFund           = "fund"
	SigSmartMoney     = "smart_money"
)

// Label selection thresholds, independent of the attribution bands.
const (
	minTopScore   = 0.35
	minGap        = 0.15
	confidenceCap = 0.85
)

var signatureLabels = map[string]string{
	SigExchange:       "Exchange",
	SigMEVSearcher:    "MEV Searcher",
	SigBridge:         "Bridge",
	SigProtocolRouter: "Protocol Router",
	SigFund:           "Fund",
	SigSmartMoney:     "Smart Money",
}

var signatureOrder = []string{
	SigExchange, SigMEVSearcher, SigBridge, SigProtocolRouter, SigFund, SigSmartMoney,
}

// Scorer computes the six archetype signature scores.
type Scorer struct {
	book *config.AddressBook
}

func NewScorer(book *config.AddressBook) *Scorer {
	return &Scorer{book: book}
}

type component struct {
	name   string
	weight float64
	value  float64
}

// Score fingerprints a wallet from features plus the raw transactions.
// Several signatures inspect actual addresses touched (routers,
// bridges) rather than the ratios the attribution path uses.
func (s *Scorer) Score(fs models.FeatureSummary, normal, internal []models.TransactionRecord, cluster models.ClusterData) models.EntityFingerprint {
	tb := s.touchBases(fs.Address, normal, internal)

	parts := map[string][]component{
		SigExchange: {
			{"counterparty_breadth", 0.4, stair(float64(fs.UniqueCounterparties), 300, 1.0, 150, 0.6, 75, 0.3)},
			{"directional_balance", 0.3, stair(tb.directionBalance, 0.8, 1.0, 0.6, 0.5, -1, 0)},
			{"hour_coverage", 0.3, stair(tb.hourCoverage, 0.75, 1.0, 0.5, 0.6, 0.3, 0.3)},
		},
		SigMEVSearcher: {
			{"same_block_txs", 0.4, stair(float64(fs.SameBlock3PlusCount), 4, 1.0, 2, 0.6, -1, 0)},
			{"gas_spikes", 0.3, stair(fs.GasSpikeRatio, 0.25, 1.0, 0.12, 0.6, -1, 0)},
			{"router_calldata", 0.3, stair(tb.routerCalldataShare, 0.5, 1.0, 0.25, 0.6, -1, 0)},
		},
		SigBridge: {
			{"bridge_touches", 0.6, stair(tb.bridgeTouchShare, 0.4, 1.0, 0.2, 0.6, 0.1, 0.3)},
			{"symmetric_flow", 0.4, stair(fs.InflowOutflowSymmetry, 0.7, 1.0, 0.5, 0.5, -1, 0)},
		},
		SigProtocolRouter: {
			{"distinct_routers", 0.6, stair(float64(tb.distinctRouters), 3, 1.0, 2, 0.6, 1, 0.3)},
			{"contract_calls", 0.4, stair(fs.ContractCallRatio, 0.7, 1.0, 0.4, 0.5, -1, 0)},
		},
		SigFund: {
			{"round_large_transfers", 0.4, stair(float64(fs.RoundNumberTransfers), 3, 1.0, 1, 0.5, -1, 0)},
			{"transfer_size", 0.3, stair(fs.AvgTxValueETH, 50, 1.0, 20, 0.5, -1, 0)},
			{"low_frequency", 0.3, lowFrequency(fs)},
		},
		SigSmartMoney: {
			{"net_accumulation", 0.4, stair(fs.NetFlowETH, 100, 1.0, 50, 0.6, 10, 0.3)},
			{"large_transfers", 0.3, stair(float64(fs.LargeTransfersCount), 5, 1.0, 2, 0.5, -1, 0)},
			{"dex_activity", 0.3, stair(fs.DEXInteractionRatio, 0.3, 1.0, 0.1, 0.5, -1, 0)},
		},
	}

	fp := models.EntityFingerprint{
		EntityType:        models.EntityUnknown,
		SupportingSignals: []string{},
		Scores:            map[string]float64{},
		EntityClusterID:   cluster.ClusterID,
	}
	for _, sig := range signatureOrder {
		total := 0.0
		for _, c := range parts[sig] {
			total += c.weight * c.value
		}
		fp.Scores[sig] = util.Score(total)
	}

	ranked := append([]string(nil), signatureOrder...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return fp.Scores[ranked[i]] > fp.Scores[ranked[j]]
	})
	top := ranked[0]
	topScore := fp.Scores[top]
	gap := topScore - fp.Scores[ranked[1]]

	if topScore >= minTopScore && gap >= minGap {
		fp.EntityType = signatureLabels[top]
		fp.ConfidenceScore = util.Round2(minFloat(confidenceCap, topScore))
		for _, c := range parts[top] {
			if c.value > 0 {
				fp.SupportingSignals = append(fp.SupportingSignals, top+":"+c.name)
			}
		}
	}
	return fp
}

// touchBase metrics derived from raw transactions rather than the
// shared feature summary.
type touchBase struct {
	directionBalance    float64
	hourCoverage        float64
	routerCalldataShare float64
	bridgeTouchShare    float64
	distinctRouters     int
}

func (s *Scorer) touchBases(address string, normal, internal []models.TransactionRecord) touchBase {
	addr := util.NormalizeAddress(address)
	var tb touchBase

	inCount, outCount, total, sent := 0, 0, 0, 0
	routerCalldata, bridgeTouches := 0, 0
	hours := map[int64]struct{}{}
	routers := map[string]struct{}{}

	for _, txs := range [][]models.TransactionRecord{normal, internal} {
		for i := range txs {
			tx := &txs[i]
			from := util.NormalizeAddress(tx.From)
			to := util.NormalizeAddress(tx.To)
			total++

			if ts := util.ParseUnixSeconds(tx.TimeStamp); ts > 0 {
				hours[(ts/3600)%24] = struct{}{}
			}
			if from == addr && addr != "" {
				outCount++
				sent++
				if s.book.IsDEXRouter(to) {
					routers[to] = struct{}{}
					if len(tx.Input) >= 10 {
						routerCalldata++
					}
				}
			}
			if to == addr && addr != "" {
				inCount++
			}
			if s.book.IsBridge(from) || s.book.IsBridge(to) {
				bridgeTouches++
			}
		}
	}

	if inCount+outCount > 0 {
		lo, hi := float64(inCount), float64(outCount)
		if lo > hi {
			lo, hi = hi, lo
		}
		if hi > 0 {
			tb.directionBalance = lo / hi
		}
	}
	tb.hourCoverage = float64(len(hours)) / 24.0
	if sent > 0 {
		tb.routerCalldataShare = float64(routerCalldata) / float64(sent)
	}
	if total > 0 {
		tb.bridgeTouchShare = float64(bridgeTouches) / float64(total)
	}
	tb.distinctRouters = len(routers)
	return tb
}

// stair is a compact three-step staircase: v>=a1 -> s1, v>=a2 -> s2,
// v>=a3 -> s3 (a3 < 0 disables the third step).
func stair(v, a1, s1, a2, s2, a3, s3 float64) float64 {
	switch {
	case v >= a1:
		return s1
	case v >= a2:
		return s2
	case a3 >= 0 && v >= a3:
		return s3
	default:
		return 0
	}
}

func lowFrequency(fs models.FeatureSummary) float64 {
	if fs.TotalTxs == 0 {
		return 0
	}
	switch {
	case fs.AvgTxPerDay <= 2:
		return 1.0
	case fs.AvgTxPerDay <= 4:
		return 0.5
	default:
		return 0
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
