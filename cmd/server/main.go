package main

import (
	"fmt"

	"github.com/amirasaad/moneykit/infra/initializer"
	"github.com/amirasaad/moneykit/pkg/config"
	"github.com/amirasaad/moneykit/webapi"
	log "github.com/charmbracelet/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Initialize all dependencies
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup Fiber app with all routes and middleware
	app := webapi.NewApp(deps)

	addr := cfg.Server.Addr()
	deps.Logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
		"default_currency", cfg.Money.DefaultCurrency,
	)

	return app.Listen(addr)
}
