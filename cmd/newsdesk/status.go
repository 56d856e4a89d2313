package main

import (
	"fmt"
	"io"
	"os"

	"github.com/abelbrown/newsdesk/internal/config"
	"github.com/spf13/cobra"
)

var flagStatusInit bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and credential status",
	Long: `Show where configuration is read from, which provider and model are used,
and whether the news and OpenAI keys look usable.

With --init, write a config file with the current settings. API keys are
not written; keep them in the environment or a .env file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		path := flagConfig
		if path == "" {
			path = config.ConfigPath()
		}

		if flagStatusInit {
			if err := initConfig(cfg, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n\n", path)
		}

		printStatus(cmd.OutOrStdout(), cfg, path)
		return nil
	},
}

func init() {
	statusCmd.Flags().BoolVar(&flagStatusInit, "init", false, "write a config file if none exists")
}

// initConfig saves cfg without credentials. An existing file is left alone.
func initConfig(cfg *config.Config, path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists: %s", path)
	}
	out := *cfg
	out.News.APIKey = ""
	out.Completion.APIKey = ""
	if err := out.Save(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func printStatus(w io.Writer, cfg *config.Config, path string) {
	creds := cfg.Status()

	fileState := "not found, using defaults"
	if _, err := os.Stat(path); err == nil {
		fileState = "found"
	}

	fmt.Fprintf(w, "Config:      %s (%s)\n", path, fileState)
	fmt.Fprintf(w, "Data dir:    %s\n", config.DataDir())
	fmt.Fprintf(w, "Provider:    %s (country %s, %d per page)\n", cfg.News.Provider, cfg.News.Country, cfg.News.PageSize)
	fmt.Fprintf(w, "Model:       %s\n", cfg.Completion.Model)
	fmt.Fprintf(w, "News key:    %s\n", credentialLabel(creds.News, cfg.News.Provider == config.ProviderRSS))
	fmt.Fprintf(w, "OpenAI key:  %s\n", credentialLabel(creds.Completion, false))
}

func credentialLabel(ok, rss bool) string {
	switch {
	case ok && rss:
		return "feeds configured"
	case ok:
		return "configured"
	case rss:
		return "no feeds configured (demo data)"
	}
	return "not configured"
}
