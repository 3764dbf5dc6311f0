//go:build wireinject

package main

import (
	"context"
	"io"

	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/cory-johannsen/kennel/internal/config"
)

// InitializeApp wires an App from configuration.
func InitializeApp(ctx context.Context, cfg config.Config, logger *zap.Logger, events io.Writer) (*App, error) {
	wire.Build(ProviderSet)
	return nil, nil
}
