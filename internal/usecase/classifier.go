package usecase

import (
	"context"
	"time"

	"WhaleScope/internal/domain/models"
	"WhaleScope/internal/domain/repository"
	"WhaleScope/internal/services/analytics"
	"WhaleScope/internal/services/features"
	"WhaleScope/internal/services/fingerprint"
	"WhaleScope/pkg/config"
	"WhaleScope/pkg/logger"
	"WhaleScope/pkg/util"
)

// WalletClassifier runs the full attribution pipeline over one
// wallet's already-fetched transactions. Every stage is a pure
// function of its inputs; the only side effects are metric counters
// and the optional fingerprint store write.
type WalletClassifier struct {
	extractor    *features.Extractor
	funding      *analytics.FundingAnalyzer
	coordination *analytics.CoordinationDetector
	clusters     *analytics.ClusterBuilder
	fingerprints *fingerprint.Scorer
	store        repository.FingerprintStore
	metrics      repository.Metrics
	log          *logger.Logger
}

func NewWalletClassifier(
	book *config.AddressBook,
	store repository.FingerprintStore,
	metrics repository.Metrics,
	log *logger.Logger,
) *WalletClassifier {
	return &WalletClassifier{
		extractor:    features.New(book),
		funding:      analytics.NewFundingAnalyzer(book),
		coordination: analytics.NewCoordinationDetector(),
		clusters:     analytics.NewClusterBuilder(book),
		fingerprints: fingerprint.NewScorer(book),
		store:        store,
		metrics:      metrics,
		log:          log,
	}
}

// Classify never fails: missing or malformed data degrades to a
// low-confidence Unknown result with explanatory reasons. It prefers
// a false negative over a wrong strong label.
func (c *WalletClassifier) Classify(ctx context.Context, address string, normal, internal []models.TransactionRecord) models.WalletIntelligence {
	started := time.Now()
	addr := util.NormalizeAddress(address)

	// Independent derivations over the same transaction set.
	funding := c.funding.Analyze(addr, normal, internal)
	coord := c.coordination.Detect(addr, normal, internal)
	cluster := c.clusters.Build(addr, normal, internal, funding, coord)
	fs := c.extractor.Extract(addr, normal, internal)

	scoreCtx := analytics.Context{
		ClusterSize:        cluster.ClusterSize,
		FundingSourceCount: len(funding.Funders),
	}

	raw := analytics.ScoreArchetypes(fs, scoreCtx)
	adjusted, penalty := analytics.ApplyContradictions(raw, fs)
	rules := analytics.CountRules(fs, scoreCtx)
	gated := analytics.ApplyGates(adjusted, rules)
	cls := analytics.Decide(gated, rules, penalty)

	conf := analytics.ComputeConfidence(fs, cls)
	risk := analytics.AssessRisk(fs, cls, conf)
	flow := analytics.ClassifyFlow(fs)

	// Overlay runs last; it reads classification context but never
	// mutates it.
	fp := c.fingerprints.Score(fs, normal, internal, cluster)
	if c.store != nil {
		if err := c.store.Append(ctx, addr, fp); err != nil {
			c.log.Warn("fingerprint store write failed",
				logger.String("address", addr), logger.Error(err))
			c.metrics.RecordError("fingerprint_store")
		} else {
			c.metrics.RecordFingerprintStored(c.store.Backend())
		}
	}

	c.metrics.RecordClassification(cls.EntityType, conf.ConfidenceScore)
	c.metrics.RecordLatency("classify", time.Since(started).Seconds())
	c.log.Debug("wallet classified",
		logger.String("address", addr),
		logger.String("entity_type", cls.EntityType),
		logger.Float64("confidence", conf.ConfidenceScore),
	)

	return models.WalletIntelligence{
		Address:        addr,
		Features:       fs,
		Classification: cls,
		Confidence:     conf,
		Cluster:        cluster,
		Funding:        funding,
		Coordination:   coord,
		Risk:           risk,
		Flow:           flow,
		Fingerprint:    fp,
	}
}
