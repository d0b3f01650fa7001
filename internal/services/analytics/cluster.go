package analytics

import (
	"crypto/sha256"
	"encoding/hex"
	"math"
	"sort"
	"strings"

	"WhaleScope/internal/domain/models"
	"WhaleScope/pkg/config"
	"WhaleScope/pkg/util"
)

// Clustering limits. Confidence is capped below full certainty on
// purpose: the system never claims complete certainty about grouping.
const (
	maxRelatedWallets    = 3
	clusterConfidenceCap = 0.9
	minStrongSignals     = 2
	minConnectedWallets  = 2
)

// ClusterBuilder derives conservative grouping evidence from funding
// and coordination signals.
type ClusterBuilder struct {
	book *config.AddressBook
}

func NewClusterBuilder(book *config.AddressBook) *ClusterBuilder {
	return &ClusterBuilder{book: book}
}

// Build assigns a cluster only when >=2 independent strong signals or
// >=2 non-contract connected wallets exist. A lone connected wallet or
// lone funding source never produces a cluster. The cluster id is a
// content hash of the member set plus signal list, so identical inputs
// always map to the same id.
func (b *ClusterBuilder) Build(address string, normal, internal []models.TransactionRecord, funding models.FundingAnalysis, coord models.CoordinationSignals) models.ClusterData {
	addr := util.NormalizeAddress(address)
	out := models.NewClusterData()

	calldataOnly := calldataOnlyCounterparties(normal, internal)

	related := []string{}
	for _, w := range coord.ConnectedWallets {
		if w == addr || b.book.IsKnownContract(w) {
			continue
		}
		if _, ok := calldataOnly[w]; ok {
			continue
		}
		related = append(related, w)
	}
	sort.Strings(related)

	// Strong signals: CEX/bridge co-funding, temporal bursts, and the
	// repeated small circle. Bare "has funding sources" is too weak to
	// count toward clustering.
	signals := []string{}
	for _, s := range funding.Signals {
		if s == SignalSharedFundingCEXBridge {
			signals = append(signals, s)
		}
	}
	signals = append(signals, coord.TemporalSignals...)
	signals = append(signals, coord.SharedCounterpartySignals...)
	sort.Strings(signals)

	if len(signals) < minStrongSignals && len(related) < minConnectedWallets {
		return out
	}

	if len(related) > maxRelatedWallets {
		related = related[:maxRelatedWallets]
	}
	out.RelatedWallets = related
	out.ClusterSize = len(related) + 1
	out.ClusterID = clusterID(addr, related, signals)

	conf := 0.3 + 0.15*float64(len(signals)) + 0.1*float64(len(related))
	out.ClusterConfidence = util.Round2(math.Min(clusterConfidenceCap, conf))
	return out
}

// calldataOnlyCounterparties collects addresses only ever reached with
// non-trivial calldata; those are treated as contracts and excluded
// from cluster membership.
func calldataOnlyCounterparties(normal, internal []models.TransactionRecord) map[string]struct{} {
	withData := map[string]bool{}
	plain := map[string]bool{}
	for _, txs := range [][]models.TransactionRecord{normal, internal} {
		for i := range txs {
			to := util.NormalizeAddress(txs[i].To)
			if to == "" {
				continue
			}
			if hasCallDataInput(txs[i].Input) {
				withData[to] = true
			} else {
				plain[to] = true
			}
		}
	}
	out := map[string]struct{}{}
	for a := range withData {
		if !plain[a] {
			out[a] = struct{}{}
		}
	}
	return out
}

func hasCallDataInput(input string) bool {
	return len(input) >= 10 && input != "0x"
}

func clusterID(addr string, related, signals []string) string {
	members := append([]string{addr}, related...)
	sort.Strings(members)
	h := sha256.Sum256([]byte(strings.Join(members, ",") + "|" + strings.Join(signals, ",")))
	return hex.EncodeToString(h[:])[:16]
}
