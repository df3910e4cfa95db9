package initializer

import (
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/moneykit/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// SetupLogger installs a styled logger writing to stdout as the slog default.
func SetupLogger(cfg *config.Log) *slog.Logger {
	slogger := NewLogger(os.Stdout, cfg)
	slog.SetDefault(slogger)
	return slogger
}

// levelStyles maps the levels moneykit emits to their badge and color.
var levelStyles = map[log.Level]struct {
	badge string
	color string
}{
	log.DebugLevel: {"🐛", "#7E57C2"},
	log.InfoLevel:  {"ℹ️", "#04B575"},
	log.WarnLevel:  {"⚠️", "#EE6FF8"},
	log.ErrorLevel: {"❌", "#FF6B6B"},
}

// NewLogger returns a styled slog logger writing to w.
func NewLogger(w io.Writer, cfg *config.Log) *slog.Logger {
	styles := log.DefaultStyles()
	for level, ls := range levelStyles {
		styles.Levels[level] = lipgloss.NewStyle().
			SetString(ls.badge).
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color(ls.color))
	}
	// Highlight failures and the fields naming a rejected value.
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(lipgloss.Color(levelStyles[log.ErrorLevel].color))
	styles.Values["error"] = lipgloss.NewStyle().Bold(true)
	styles.Keys["field"] = lipgloss.NewStyle().Foreground(lipgloss.Color(levelStyles[log.DebugLevel].color))

	formattersMap := map[string]log.Formatter{
		"json": log.JSONFormatter,
		"text": log.TextFormatter,
	}
	formatter := log.TextFormatter
	if f, ok := formattersMap[cfg.Format]; ok {
		formatter = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})

	logger.SetStyles(styles)

	return slog.New(logger)
}
