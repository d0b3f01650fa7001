package features

import (
	"math"
	"sort"

	"WhaleScope/internal/domain/models"
	"WhaleScope/pkg/config"
	"WhaleScope/pkg/util"
)

const (
	secondsPerDay = 86400

	// Transfers at or above this are "large"; round-number detection
	// only applies from here up so everyday small round sends are not
	// flagged.
	largeTransferETH = 10.0
	roundTolerance   = 0.001

	// A burst is >=3 sends inside a 10-minute window; bursts must
	// recur across >=2 distinct calendar weeks to score at all.
	burstWindowSeconds = 600
	burstMinTxs        = 3
	burstMinWeeks      = 2

	// Same-block counting uses >=3 sent txs per block, not 2, to
	// exclude ordinary approve+swap pairs.
	sameBlockMinTxs = 3

	gasSpikeFactor   = 1.5
	recentWindowDays = 30

	// Frequency is meaningless under a day of history; shorter spans
	// report 0 instead of an inflated rate.
	minFrequencyAgeDays = 1.0
)

// Extractor derives the normalized FeatureSummary for one address from
// already-fetched transaction lists. It is a pure function of its
// inputs: no I/O, no shared state.
type Extractor struct {
	book *config.AddressBook
}

func New(book *config.AddressBook) *Extractor {
	return &Extractor{book: book}
}

// Extract computes the metric bundle. Empty input yields the exact
// canonical zero shape; malformed numeric strings coerce to 0.
func (e *Extractor) Extract(address string, normal, internal []models.TransactionRecord) models.FeatureSummary {
	addr := util.NormalizeAddress(address)
	all := make([]models.TransactionRecord, 0, len(normal)+len(internal))
	all = append(all, normal...)
	all = append(all, internal...)
	if len(all) == 0 {
		return models.NewFeatureSummary(addr)
	}

	fs := models.NewFeatureSummary(addr)
	fs.TotalTxs = len(all)

	var (
		totalIn, totalOut   float64
		cexVolume           float64
		maxValue            float64
		sumValue            float64
		valueCount          int
		dexTouches          int
		cexTouches          int
		contractCalls       int
		largeTransfers      int
		roundTransfers      int
		timestamps          []int64
		sentTimestamps      []int64
		gasPrices           []float64
		counterpartyCounts  = map[string]int{}
		cexCounterparties   = map[string]struct{}{}
		sentPerBlock        = map[string]int{}
	)

	for i := range all {
		tx := &all[i]
		from := util.NormalizeAddress(tx.From)
		to := util.NormalizeAddress(tx.To)
		valueETH := util.WeiToETH(tx.Value)
		ts := util.ParseUnixSeconds(tx.TimeStamp)
		if ts > 0 {
			timestamps = append(timestamps, ts)
		}

		outgoing := from == addr && addr != ""
		incoming := to == addr && addr != ""

		var counterparty string
		if outgoing {
			totalOut += valueETH
			counterparty = to
			if ts > 0 {
				sentTimestamps = append(sentTimestamps, ts)
			}
			if tx.BlockNumber != "" {
				sentPerBlock[tx.BlockNumber]++
			}
			if gp := util.WeiToETH(tx.GasPrice); gp > 0 {
				gasPrices = append(gasPrices, gp)
			}
		}
		if incoming {
			totalIn += valueETH
			counterparty = from
		}
		if counterparty != "" {
			counterpartyCounts[counterparty]++
			if e.book.IsStrictCEX(counterparty) {
				cexCounterparties[counterparty] = struct{}{}
				cexVolume += valueETH
			}
		}

		sumValue += valueETH
		valueCount++
		if valueETH > maxValue {
			maxValue = valueETH
		}
		if valueETH >= largeTransferETH {
			largeTransfers++
			if math.Abs(valueETH-math.Round(valueETH)) <= roundTolerance {
				roundTransfers++
			}
		}

		touchesDEX := e.book.IsDEXRouter(from) || e.book.IsDEXRouter(to)
		touchesCEX := e.book.IsCEXOrBridge(from) || e.book.IsCEXOrBridge(to)
		if touchesDEX {
			dexTouches++
		}
		if touchesCEX {
			cexTouches++
		}
		if hasCallData(tx.Input) {
			contractCalls++
		}
	}

	// Activity
	if len(timestamps) > 0 {
		first, last := timestamps[0], timestamps[0]
		for _, ts := range timestamps[1:] {
			if ts < first {
				first = ts
			}
			if ts > last {
				last = ts
			}
		}
		fs.FirstSeen = first
		fs.LastSeen = last
		age := float64(last-first) / secondsPerDay
		fs.WalletAgeDays = util.Round2(age)
		if age >= minFrequencyAgeDays {
			fs.AvgTxPerDay = util.Round3(float64(fs.TotalTxs) / age)
		}
		cutoff := last - recentWindowDays*secondsPerDay
		for _, ts := range timestamps {
			if ts >= cutoff {
				fs.RecentTxCount++
			}
		}
	}

	// Volume
	fs.TotalInETH = util.Round4(totalIn)
	fs.TotalOutETH = util.Round4(totalOut)
	fs.TotalVolumeETH = util.Round4(totalIn + totalOut)
	fs.NetFlowETH = util.Round4(totalIn - totalOut)
	fs.MaxTxValueETH = util.Round4(maxValue)
	if valueCount > 0 {
		fs.AvgTxValueETH = util.Round4(sumValue / float64(valueCount))
	}
	if bigger := math.Max(totalIn, totalOut); bigger > 0 {
		fs.InflowOutflowSymmetry = util.Round3(math.Min(totalIn, totalOut) / bigger)
	}

	// Network: interaction counts, not volume
	fs.UniqueCounterparties = len(counterpartyCounts)
	totalInteractions := 0
	counts := make([]int, 0, len(counterpartyCounts))
	for _, n := range counterpartyCounts {
		totalInteractions += n
		counts = append(counts, n)
	}
	if totalInteractions > 0 {
		fs.RepeatCounterpartyRatio = util.Round3(1 - float64(len(counterpartyCounts))/float64(totalInteractions))
		sort.Sort(sort.Reverse(sort.IntSlice(counts)))
		top := 0
		for i := 0; i < len(counts) && i < 5; i++ {
			top += counts[i]
		}
		fs.Top5CounterpartyShare = util.Round3(float64(top) / float64(totalInteractions))
	}
	fs.CEXCounterpartyCount = len(cexCounterparties)
	if v := totalIn + totalOut; v > 0 {
		fs.CEXVolumeShare = util.Round3(cexVolume / v)
	}

	// Behavioral
	n := float64(fs.TotalTxs)
	fs.DEXInteractionRatio = util.Round3(float64(dexTouches) / n)
	fs.CEXInteractionRatio = util.Round3(float64(cexTouches) / n)
	fs.ContractCallRatio = util.Round3(float64(contractCalls) / n)
	for _, c := range sentPerBlock {
		if c >= sameBlockMinTxs {
			fs.SameBlock3PlusCount++
		}
	}
	fs.GasSpikeRatio = gasSpikeRatio(gasPrices)
	fs.RoundNumberTransfers = roundTransfers
	fs.LargeTransfersCount = largeTransfers

	// Temporal
	fs.BurstActivityScore = burstScore(sentTimestamps)

	return fs
}

// hasCallData reports whether input carries at least a 4-byte selector.
func hasCallData(input string) bool {
	return len(input) >= 10 && input != "0x"
}

// gasSpikeRatio is the fraction of sent txs paying >=1.5x the wallet's
// median gas price.
func gasSpikeRatio(prices []float64) float64 {
	if len(prices) < 2 {
		return 0
	}
	sorted := append([]float64(nil), prices...)
	sort.Float64s(sorted)
	median := sorted[len(sorted)/2]
	if median <= 0 {
		return 0
	}
	spikes := 0
	for _, p := range prices {
		if p >= median*gasSpikeFactor {
			spikes++
		}
	}
	return util.Round3(float64(spikes) / float64(len(prices)))
}

// burstScore counts >=3-tx bursts inside 10-minute windows over the
// wallet's own sends. A single busy session never registers: bursts
// must span at least two distinct calendar weeks.
func burstScore(sent []int64) float64 {
	if len(sent) < burstMinTxs {
		return 0
	}
	ts := append([]int64(nil), sent...)
	sort.Slice(ts, func(i, j int) bool { return ts[i] < ts[j] })

	bursts := 0
	weeks := map[int64]struct{}{}
	for i := 0; i+burstMinTxs-1 < len(ts); {
		if ts[i+burstMinTxs-1]-ts[i] <= burstWindowSeconds {
			bursts++
			weeks[ts[i]/(7*secondsPerDay)] = struct{}{}
			// advance past this window so overlapping triples do not
			// count twice
			end := ts[i] + burstWindowSeconds
			for i < len(ts) && ts[i] <= end {
				i++
			}
		} else {
			i++
		}
	}
	if len(weeks) < burstMinWeeks {
		return 0
	}
	return util.Round3(math.Min(1.0, float64(bursts)*0.2))
}
