package analytics

import (
	"sort"

	"WhaleScope/internal/domain/models"
	"WhaleScope/pkg/config"
	"WhaleScope/pkg/util"
)

// Funding signals emitted for downstream clustering.
const (
	SignalHasFundingSources      = "has_funding_sources"
	SignalSharedFundingCEXBridge = "shared_funding_cex_bridge"
)

// FundingAnalyzer aggregates inbound funding sources. Pure function of
// the transaction inputs.
type FundingAnalyzer struct {
	book *config.AddressBook
}

func NewFundingAnalyzer(book *config.AddressBook) *FundingAnalyzer {
	return &FundingAnalyzer{book: book}
}

// Analyze collects unique inbound senders over normal and internal
// transactions and flags those in the CEX/bridge universe.
func (a *FundingAnalyzer) Analyze(address string, normal, internal []models.TransactionRecord) models.FundingAnalysis {
	addr := util.NormalizeAddress(address)
	out := models.NewFundingAnalysis()
	if addr == "" {
		return out
	}

	seen := map[string]struct{}{}
	for _, txs := range [][]models.TransactionRecord{normal, internal} {
		for i := range txs {
			to := util.NormalizeAddress(txs[i].To)
			from := util.NormalizeAddress(txs[i].From)
			if to != addr || from == "" || from == addr {
				continue
			}
			seen[from] = struct{}{}
		}
	}

	for f := range seen {
		out.Funders = append(out.Funders, f)
		if a.book.IsCEXOrBridge(f) {
			out.CEXOrBridgeFunders = append(out.CEXOrBridgeFunders, f)
		}
	}
	sort.Strings(out.Funders)
	sort.Strings(out.CEXOrBridgeFunders)

	if len(out.Funders) > 0 {
		out.Signals = append(out.Signals, SignalHasFundingSources)
	}
	if len(out.CEXOrBridgeFunders) > 0 {
		out.Signals = append(out.Signals, SignalSharedFundingCEXBridge)
	}
	return out
}
