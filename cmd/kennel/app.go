package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/cory-johannsen/kennel/internal/config"
	"github.com/cory-johannsen/kennel/internal/content"
	"github.com/cory-johannsen/kennel/internal/frontend/render"
	"github.com/cory-johannsen/kennel/internal/game/dice"
	"github.com/cory-johannsen/kennel/internal/game/kennel"
	"github.com/cory-johannsen/kennel/internal/game/pet"
	"github.com/cory-johannsen/kennel/internal/scripting"
)

// App bundles everything the CLI drives.
type App struct {
	Catalog  *content.Catalog
	Kennel   *kennel.Kennel
	Scripts  *scripting.Manager
	Renderer render.Renderer
	Logger   *zap.Logger
}

// ProviderSet builds an App from a Config, a logger and an event writer.
var ProviderSet = wire.NewSet(
	provideContentConfig,
	provideCatalog,
	provideSource,
	provideRoller,
	provideFactory,
	provideKennel,
	provideScripts,
	provideRenderer,
	wire.Struct(new(App), "*"),
)

func provideContentConfig(cfg config.Config) config.ContentConfig {
	return cfg.Content
}

func provideCatalog(ctx context.Context, cfg config.ContentConfig, logger *zap.Logger) (*content.Catalog, error) {
	return content.Load(ctx, cfg, logger)
}

// provideSource returns a seeded source when pet.seed is set, otherwise the CSPRNG.
func provideSource(cfg config.Config) dice.Source {
	if cfg.Pet.Seed != 0 {
		return dice.NewSeededSource(cfg.Pet.Seed)
	}
	return dice.NewCryptoSource()
}

func provideRoller(src dice.Source, logger *zap.Logger) *dice.Roller {
	return dice.NewRoller(src, logger)
}

// provideFactory binds the catalog, source and logger into pet construction
// and reports condition changes on events.
func provideFactory(cat *content.Catalog, src dice.Source, logger *zap.Logger, events io.Writer) kennel.Factory {
	return func(name, breedID string, age int) (*pet.Pet, error) {
		return pet.New(name, breedID, age,
			pet.WithBreeds(cat.Breeds),
			pet.WithConditions(cat.Conditions),
			pet.WithSource(src),
			pet.WithLogger(logger),
			pet.WithConditionObserver(func(added, removed []string) {
				reportChange(events, name, added, removed)
			}),
		)
	}
}

func reportChange(w io.Writer, name string, added, removed []string) {
	var parts []string
	if len(added) > 0 {
		parts = append(parts, "now "+strings.Join(added, ", "))
	}
	if len(removed) > 0 {
		parts = append(parts, "no longer "+strings.Join(removed, ", "))
	}
	fmt.Fprintf(w, "%s is %s\n", name, strings.Join(parts, "; "))
}

func provideKennel(factory kennel.Factory, logger *zap.Logger) *kennel.Kennel {
	return kennel.New(factory, logger)
}

// provideScripts loads the care scripts; an empty scripts_dir leaves the
// manager without actions.
func provideScripts(ctx context.Context, cfg config.ContentConfig, roller *dice.Roller, logger *zap.Logger) (*scripting.Manager, error) {
	mgr := scripting.NewManager(roller, logger, cfg.InstructionLimit)
	if cfg.ScriptsDir == "" {
		return mgr, nil
	}
	if err := mgr.Load(ctx, cfg.ScriptsDir); err != nil {
		return nil, err
	}
	return mgr, nil
}

func provideRenderer(cfg config.Config) render.Renderer {
	return render.Renderer{Color: cfg.Logging.Format == "console"}
}
