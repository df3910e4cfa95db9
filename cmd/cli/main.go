// Program moneyctl parses, formats, combines and validates monetary values
// in the canonical "-10.40 EUR" form.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/amirasaad/moneykit/infra/initializer"
	"github.com/amirasaad/moneykit/pkg/config"
	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

func main() {
	// Keep configuration chatter off the terminal unless something is wrong.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration", "error", err)
	}
	logCfg := *cfg.Log
	if logCfg.Level < int(log.WarnLevel) {
		logCfg.Level = int(log.WarnLevel)
	}
	deps := initializer.NewDeps(cfg, initializer.NewLogger(os.Stderr, &logCfg))

	c := newCLI(deps, os.Stdin, os.Stdout)
	c.stdinIsTerminal = term.IsTerminal(int(os.Stdin.Fd()))
	c.setColor(term.IsTerminal(int(os.Stdout.Fd())))

	switch err := c.run(os.Args[1:]); {
	case err == nil:
	case errors.Is(err, errUsage):
		if err != errUsage {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(2)
	case errors.Is(err, errInvalid):
		os.Exit(1)
	default:
		log.Fatal("moneyctl failed", "error", err)
	}
}
