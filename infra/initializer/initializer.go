package initializer

import (
	"errors"
	"log/slog"

	"github.com/amirasaad/moneykit/pkg/config"
	"github.com/amirasaad/moneykit/pkg/currency"
	"github.com/amirasaad/moneykit/pkg/money"
	"github.com/amirasaad/moneykit/pkg/validator"
	"golang.org/x/text/language"
)

// Deps holds the dependencies shared by the HTTP server and the CLI.
type Deps struct {
	Logger    *slog.Logger
	Catalog   *currency.Catalog
	Policy    money.Policy
	Validator *validator.Validator
	// Locale is the display locale from the config, language.Und when unset.
	Locale language.Tag
	Config *config.App
}

// InitializeDependencies initializes all the application dependencies
func InitializeDependencies(cfg *config.App) (*Deps, error) {
	if cfg == nil || cfg.Log == nil || cfg.Money == nil {
		return nil, errors.New("incomplete configuration: log and money sections are required")
	}
	return NewDeps(cfg, SetupLogger(cfg.Log)), nil
}

// NewDeps wires the dependencies around an existing logger.
func NewDeps(cfg *config.App, logger *slog.Logger) *Deps {
	deps := &Deps{
		Logger:    logger,
		Catalog:   currency.Default(),
		Policy:    cfg.Money.Policy(logger),
		Validator: validator.New(logger),
		Locale:    currency.ParseLocale(cfg.Money.Locale),
		Config:    cfg,
	}

	if cfg.Money.Locale != "" && deps.Locale.IsRoot() {
		logger.Warn("Ignoring unparsable display locale", "locale", cfg.Money.Locale)
	}
	if cfg.Money.AllowImplicit {
		logger.Warn("Implicit currency is enabled", "default_currency", cfg.Money.DefaultCurrency)
	}
	logger.Info("Currency catalog loaded",
		"currencies", deps.Catalog.Count(),
		"locale", deps.Locale.String(),
	)
	return deps
}

// DisplayOptions returns the display options implied by the config: the
// wired catalog and the configured locale.
func (d *Deps) DisplayOptions() []money.DisplayOption {
	return []money.DisplayOption{money.WithCatalog(d.Catalog), money.WithLocaleTag(d.Locale)}
}
