package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/abelbrown/newsdesk/internal/news"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search articles by keyword",
	Long: `Search recent articles. Requires the newsapi provider and a usable key;
otherwise no results are returned.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := setup(false)
		if err != nil {
			return err
		}
		defer s.close()

		ctx, cancel := context.WithTimeout(cmd.Context(), cliTimeout)
		defer cancel()

		fetcher := news.NewFetcher(news.NewProvider(s.cfg.News), s.events)
		query := strings.Join(args, " ")
		articles := fetcher.Search(ctx, query)

		w := cmd.OutOrStdout()
		if len(articles) == 0 {
			if !fetcher.Available() {
				fmt.Fprintf(cmd.ErrOrStderr(), "search is unavailable: %s provider is not configured\n", fetcher.ProviderName())
			}
			fmt.Fprintln(w, "No results.")
			return nil
		}
		fmt.Fprintf(w, "Results for %q\n", query)
		printArticles(w, articles)
		return nil
	},
}
