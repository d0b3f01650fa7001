package di

import (
	"fmt"

	"WhaleScope/internal/domain/repository"
	"WhaleScope/internal/services/fingerprint"
	"WhaleScope/internal/usecase"
	"WhaleScope/pkg/config"
	"WhaleScope/pkg/logger"
	"WhaleScope/pkg/metrics"
	"WhaleScope/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideAddressBook materializes the known-address universe.
func ProvideAddressBook(cfg *config.Config) *config.AddressBook {
	return cfg.AddressBook()
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideFingerprintStore selects the configured store backend.
func ProvideFingerprintStore(cfg *config.Config) (repository.FingerprintStore, error) {
	switch cfg.Store.Backend {
	case "redis":
		store, err := fingerprint.NewRedisStore(fingerprint.RedisStoreConfig{
			Addr:            cfg.Store.Redis.Addr,
			Password:        cfg.Store.Redis.Password,
			DB:              cfg.Store.Redis.DB,
			Prefix:          cfg.Store.Redis.Prefix,
			PerAddressLimit: cfg.Store.PerAddressLimit,
			TTL:             cfg.Store.TTL,
		})
		if err != nil {
			return nil, fmt.Errorf("fingerprint store: %w", err)
		}
		return store, nil
	default:
		return fingerprint.NewMemoryStore(cfg.Store.PerAddressLimit, cfg.Store.GlobalLimit), nil
	}
}

// ProvideClassifier creates the wallet classification pipeline.
func ProvideClassifier(
	book *config.AddressBook,
	store repository.FingerprintStore,
	m repository.Metrics,
	log *logger.Logger,
) *usecase.WalletClassifier {
	return usecase.NewWalletClassifier(book, store, m, log)
}

// ProvideBatchRunner creates the batch precompute runner.
func ProvideBatchRunner(classifier *usecase.WalletClassifier, log *logger.Logger) *usecase.BatchRunner {
	return usecase.NewBatchRunner(classifier, log)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, runner *usecase.BatchRunner, store repository.FingerprintStore, log *logger.Logger) *server.App {
	return server.New(cfg, runner, store, log)
}
