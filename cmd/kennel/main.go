// Command kennel adopts a dog, runs care actions on it and prints its status.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/kennel/internal/config"
	"github.com/cory-johannsen/kennel/internal/game/pet"
	"github.com/cory-johannsen/kennel/internal/observability"
)

type options struct {
	configPath string
	name       string
	breed      string
	age        int
	actions    string
	breeds     bool
	conditions bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "configs/dev.yaml", "path to configuration file (empty for defaults)")
	flag.StringVar(&opts.name, "name", "", "pet name (default pet.default_name)")
	flag.StringVar(&opts.breed, "breed", "", "breed id (default pet.default_breed)")
	flag.IntVar(&opts.age, "age", -1, "age in years, 0-29 (default pet.default_age)")
	flag.StringVar(&opts.actions, "do", "", "comma-separated care actions to perform")
	flag.BoolVar(&opts.breeds, "breeds", false, "list breeds and exit")
	flag.BoolVar(&opts.conditions, "conditions", false, "list condition rules and exit")
	flag.Parse()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(context.Background(), cfg, opts, logger, os.Stdout); err != nil {
		logger.Error("kennel failed", zap.Error(err))
		os.Exit(1)
	}
}

// run executes one CLI invocation and writes all user-facing output to out.
func run(ctx context.Context, cfg config.Config, opts options, logger *zap.Logger, out io.Writer) error {
	app, err := InitializeApp(ctx, cfg, logger, out)
	if err != nil {
		return fmt.Errorf("initializing: %w", err)
	}
	defer app.Scripts.Close()

	switch {
	case opts.breeds:
		fmt.Fprint(out, app.Renderer.Breeds(app.Catalog.Breeds.All()))
		return nil
	case opts.conditions:
		fmt.Fprint(out, app.Renderer.Rules(app.Catalog.Conditions.All()))
		return nil
	}

	name, breedID, age := opts.name, opts.breed, opts.age
	if name == "" {
		name = cfg.Pet.DefaultName
	}
	if breedID == "" {
		breedID = cfg.Pet.DefaultBreed
	}
	if age < 0 {
		age = cfg.Pet.DefaultAge
	}

	id, err := app.Kennel.Adopt(name, breedID, age)
	if err != nil {
		return err
	}
	defer func() { _ = app.Kennel.Release(id) }()

	actions := splitActions(opts.actions)
	if err := ensureActions(actions, app.Scripts.Actions()); err != nil {
		return fmt.Errorf("%w: set content.scripts_dir", err)
	}
	for _, action := range actions {
		err := app.Kennel.Do(id, func(p *pet.Pet) error {
			return app.Scripts.Perform(ctx, p, action)
		})
		if err != nil {
			return fmt.Errorf("performing %q: %w", action, err)
		}
		fmt.Fprintf(out, "%s: %s done\n", name, action)
	}

	snap, err := app.Kennel.Get(id)
	if err != nil {
		return err
	}
	fmt.Fprint(out, app.Renderer.Status(snap))
	return nil
}

func splitActions(s string) []string {
	var out []string
	for _, a := range strings.Split(s, ",") {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

var errNoActions = errors.New("no care actions loaded")

// ensureActions reports an error when actions were requested but no scripts are loaded.
func ensureActions(requested, available []string) error {
	if len(requested) > 0 && len(available) == 0 {
		return errNoActions
	}
	return nil
}
