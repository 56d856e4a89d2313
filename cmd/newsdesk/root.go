package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/abelbrown/newsdesk/internal/config"
	"github.com/abelbrown/newsdesk/internal/logging"
	"github.com/abelbrown/newsdesk/internal/news"
	"github.com/abelbrown/newsdesk/internal/otel"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig  string
	flagCountry string
	flagVerbose bool
)

// ringSize is the number of events kept for the debug overlay.
const ringSize = 256

var rootCmd = &cobra.Command{
	Use:   "newsdesk",
	Short: "Terminal news headlines with an AI assistant",
	Long: `newsdesk shows top headlines by category and lets you summarize them
or ask questions about them through OpenAI.

Without a NewsAPI key it shows a small demo dataset. Without an OpenAI key
the assistant answers with setup instructions.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "path to config file (default ~/.newsdesk/config.json)")
	pf.StringVar(&flagCountry, "country", "", "two-letter country code for headlines")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "log to stderr (subcommands only)")

	rootCmd.AddCommand(headlinesCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "newsdesk %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

// session bundles what every command needs once config is loaded.
type session struct {
	cfg    *config.Config
	events *otel.Logger
	ring   *otel.RingBuffer
	sink   io.Closer // events file, may be nil
}

// setup loads the configuration and starts logging. The TUI owns the
// terminal, so it always logs to a file.
func setup(tui bool) (*session, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagCountry != "" {
		cfg.News.Country = strings.ToLower(flagCountry)
	}

	if flagVerbose && !tui {
		logging.InitWriter(os.Stderr, log.DebugLevel)
	} else if err := logging.Init(config.DataDir()); err != nil {
		logging.InitWriter(io.Discard, log.InfoLevel)
	}

	s := &session{cfg: cfg}
	s.events, s.sink = openEvents(config.DataDir())
	if tui {
		s.ring = otel.NewRingBuffer(ringSize)
		s.events.SetRingBuffer(s.ring)
	}
	s.events.Info(otel.KindStartup, "main", version)
	logging.Info("config loaded",
		"provider", cfg.News.Provider,
		"country", cfg.News.Country,
		"model", cfg.Completion.Model)
	return s, nil
}

func (s *session) close() {
	s.events.Info(otel.KindShutdown, "main", "")
	s.events.Close()
	if s.sink != nil {
		s.sink.Close()
	}
	logging.Close()
}

// defaultCategory returns the configured start category, or the catalog
// default when the configured one is unknown.
func (s *session) defaultCategory() news.Category {
	c, err := news.ParseCategory(s.cfg.UI.DefaultCategory)
	if err != nil {
		logging.Warn("bad default category", "category", s.cfg.UI.DefaultCategory, "error", err)
		return news.DefaultCategory
	}
	return c
}

// category resolves a --category flag, empty meaning the default.
func (s *session) category(name string) (news.Category, error) {
	if name == "" {
		return s.defaultCategory(), nil
	}
	return news.ParseCategory(name)
}

// openEvents appends events to dir/events.jsonl, or discards them when the
// file cannot be opened.
func openEvents(dir string) (*otel.Logger, io.Closer) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return otel.NewNullLogger(), nil
	}
	f, err := os.OpenFile(filepath.Join(dir, "events.jsonl"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return otel.NewNullLogger(), nil
	}
	return otel.NewLogger(f), f
}
