// Command quickfind searches a Notion workspace from the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/quickfind/internal/adapters/driven/assets"
	"github.com/custodia-labs/quickfind/internal/adapters/driven/config/file"
	"github.com/custodia-labs/quickfind/internal/adapters/driven/notion"
	"github.com/custodia-labs/quickfind/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/quickfind/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/quickfind/internal/adapters/driving/cli"
	"github.com/custodia-labs/quickfind/internal/core/domain"
	"github.com/custodia-labs/quickfind/internal/core/ports/driven"
	"github.com/custodia-labs/quickfind/internal/core/services"
	"github.com/custodia-labs/quickfind/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApp("", "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer app.Close()

	go func() {
		if err := app.config.Watch(ctx, file.DefaultWatchDelay, app.reconfigure); err != nil {
			logger.Warn("Config watch stopped: %v", err)
		}
	}()

	cli.SetVersion(version)
	cli.SetServices(app.search, app.settings)
	if err := cli.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", domain.UserMessage(err))
		return 1
	}
	return 0
}

// app holds the wired services and the resources they own.
type app struct {
	config   *file.ConfigStore
	store    *sqlite.Store
	assets   *assets.Resolver
	settings *services.SettingsService
	search   *services.SearchService
}

// newApp wires the driven adapters into the core services. Empty
// directories select the defaults under ~/.quickfind.
func newApp(configDir, dataDir string) (*app, error) {
	config, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	a := &app{
		config:   config,
		assets:   assets.NewResolver(),
		settings: services.NewSettingsService(config),
	}

	var kv driven.KVStore
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		logger.Warn("Cache unavailable, last search will not persist: %v", err)
		kv = memory.NewKVStore()
	} else {
		a.store = store
		kv = store.KVStore()
	}

	transport, resolver := a.build()
	a.search = services.NewSearchService(transport, resolver, kv)
	return a, nil
}

// build creates the client and resolver for the current settings.
func (a *app) build() (*notion.Client, *services.Resolver) {
	settings, err := a.settings.Get()
	if err != nil {
		logger.Warn("Invalid settings, using defaults: %v", err)
		defaults := domain.DefaultSettings()
		settings = &defaults
	}

	client := notion.NewClient(settings.Notion.Host, notion.TokenFunc(a.token))
	return client, services.NewResolver(*settings, a.assets)
}

// token reads the session token on every request so a login takes effect
// without restarting.
func (a *app) token() (string, error) {
	settings, err := a.settings.Get()
	if err != nil {
		return "", err
	}
	return settings.Notion.Token, nil
}

// reconfigure applies a changed configuration file.
func (a *app) reconfigure() {
	transport, resolver := a.build()
	a.search.Reconfigure(transport, resolver)
	logger.Debug("Search service reconfigured")
}

// Close releases the cache database.
func (a *app) Close() {
	if a.store == nil {
		return
	}
	if err := a.store.Close(); err != nil {
		logger.Warn("Closing cache: %v", err)
	}
}
