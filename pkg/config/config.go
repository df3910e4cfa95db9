package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/moneykit/pkg/money"
)

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[moneykit]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

// Addr returns the listen address, host:port.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// Money configures how amounts are built and displayed by the HTTP and
// CLI surfaces.
type Money struct {
	// DefaultCurrency is used for amounts built without a currency, only
	// when AllowImplicit is set.
	DefaultCurrency string `envconfig:"DEFAULT_CURRENCY" default:"EUR"`
	AllowImplicit   bool   `envconfig:"ALLOW_IMPLICIT" default:"false"`
	// Locale selects locale-dependent display templates, e.g. "nl-NL".
	Locale string `envconfig:"LOCALE" default:""`
}

// Policy returns the money construction policy described by the config.
func (m *Money) Policy(logger *slog.Logger) money.Policy {
	return money.Policy{
		DefaultCurrency: money.Code(m.DefaultCurrency),
		AllowImplicit:   m.AllowImplicit,
		Logger:          logger,
	}
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	Money     *Money     `envconfig:"MONEY"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
}
