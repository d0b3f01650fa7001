package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"WhaleScope/internal/domain/models"
	"WhaleScope/pkg/logger"
	"WhaleScope/pkg/util"
)

// WalletDump is one wallet's pre-fetched transaction history, the
// on-disk input format for batch precompute runs.
type WalletDump struct {
	Address  string                     `json:"address"`
	Normal   []models.TransactionRecord `json:"normal"`
	Internal []models.TransactionRecord `json:"internal"`
}

// BatchResult summarizes one precompute run.
type BatchResult struct {
	OK      int
	Failed  int
	Results []models.WalletIntelligence
}

// BatchRunner classifies a set of wallet dumps. Per-wallet problems
// are logged and counted, never fatal for the run.
type BatchRunner struct {
	classifier *WalletClassifier
	log        *logger.Logger
}

func NewBatchRunner(classifier *WalletClassifier, log *logger.Logger) *BatchRunner {
	return &BatchRunner{classifier: classifier, log: log}
}

// RunDir processes every .json dump in dir, in name order for
// reproducible output.
func (r *BatchRunner) RunDir(ctx context.Context, dir string) (BatchResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return BatchResult{}, fmt.Errorf("read input dir: %w", err)
	}
	paths := []string{}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return BatchResult{}, fmt.Errorf("no wallet dumps in %s", dir)
	}
	return r.RunFiles(ctx, paths), nil
}

// RunFiles processes the given dump files.
func (r *BatchRunner) RunFiles(ctx context.Context, paths []string) BatchResult {
	res := BatchResult{}
	for _, path := range paths {
		out, err := r.runOne(ctx, path)
		if err != nil {
			res.Failed++
			r.log.Warn("wallet dump skipped", logger.String("path", path), logger.Error(err))
			continue
		}
		res.OK++
		res.Results = append(res.Results, out)
		r.log.Info("wallet classified",
			logger.String("address", out.Address),
			logger.String("entity_type", out.Classification.EntityType),
			logger.Float64("confidence", out.Confidence.ConfidenceScore),
		)
	}
	return res
}

func (r *BatchRunner) runOne(ctx context.Context, path string) (models.WalletIntelligence, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return models.WalletIntelligence{}, fmt.Errorf("read dump: %w", err)
	}
	var dump WalletDump
	if err := json.Unmarshal(b, &dump); err != nil {
		return models.WalletIntelligence{}, fmt.Errorf("parse dump: %w", err)
	}
	if !util.IsHexAddress(dump.Address) {
		return models.WalletIntelligence{}, fmt.Errorf("invalid address %q", dump.Address)
	}
	return r.classifier.Classify(ctx, dump.Address, dump.Normal, dump.Internal), nil
}

// WriteResults writes run output as pretty-printed JSON. Empty path
// writes to stdout.
func WriteResults(path string, results []models.WalletIntelligence) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	data = append(data, '\n')
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
