//go:build wireinject
// +build wireinject

package di

import (
	"ExoScan/pkg/config"
	"ExoScan/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation in wire_gen.go.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideThresholds,
		ProvideClassifier,
		ProvideClassifyHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
