//go:build wireinject
// +build wireinject

package di

import (
	"WhaleScope/pkg/config"
	"WhaleScope/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideAddressBook,
		ProvideMetrics,
		ProvideFingerprintStore,

		ProvideClassifier,
		ProvideBatchRunner,

		ProvideApp,
	)
	return &server.App{}, nil
}
