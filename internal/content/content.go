// Package content assembles the breed and condition catalogs from the
// built-in tables and optional YAML overlay directories.
package content

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cory-johannsen/kennel/internal/config"
	"github.com/cory-johannsen/kennel/internal/game/breed"
	"github.com/cory-johannsen/kennel/internal/game/condition"
)

// Catalog is the loaded content a kennel runs against.
type Catalog struct {
	Breeds     *breed.Registry
	Conditions *condition.Registry
}

// Load builds the built-in registries and layers the configured overlay
// directories on top; an overlay entry replaces the built-in with the same id.
// The two directories are read concurrently.
//
// Postcondition: Returns a populated Catalog, or the first overlay error.
func Load(ctx context.Context, cfg config.ContentConfig, logger *zap.Logger) (*Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cat := &Catalog{
		Breeds:     breed.DefaultRegistry(),
		Conditions: condition.DefaultRegistry(),
	}

	g, gctx := errgroup.WithContext(ctx)

	if cfg.BreedsDir != "" {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			n, err := breed.LoadDirectory(cat.Breeds, cfg.BreedsDir)
			if err != nil {
				return fmt.Errorf("loading breeds: %w", err)
			}
			logger.Info("loaded breeds", zap.String("dir", cfg.BreedsDir), zap.Int("count", n))
			return nil
		})
	}

	if cfg.ConditionsDir != "" {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			n, err := condition.LoadDirectory(cat.Conditions, cfg.ConditionsDir)
			if err != nil {
				return fmt.Errorf("loading conditions: %w", err)
			}
			logger.Info("loaded conditions", zap.String("dir", cfg.ConditionsDir), zap.Int("count", n))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Debug("content ready",
		zap.Int("breeds", cat.Breeds.Len()),
		zap.Int("conditions", cat.Conditions.Len()),
	)
	return cat, nil
}
