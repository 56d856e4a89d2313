package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/abelbrown/newsdesk/internal/news"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentFetches limits parallel category fetches for --all.
const maxConcurrentFetches = 3

// cliTimeout bounds a whole subcommand.
const cliTimeout = 60 * time.Second

var (
	flagHeadlinesCategory string
	flagHeadlinesAll      bool
	flagHeadlinesJSON     bool
)

var headlinesCmd = &cobra.Command{
	Use:   "headlines",
	Short: "Print top headlines",
	Long: `Print the top headlines for a category, or for every category with --all.

Falls back to the demo dataset when the provider is not configured or fails.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := setup(false)
		if err != nil {
			return err
		}
		defer s.close()

		cats, err := headlineCategories(flagHeadlinesCategory, flagHeadlinesAll, s.defaultCategory())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), cliTimeout)
		defer cancel()

		fetcher := news.NewFetcher(news.NewProvider(s.cfg.News), s.events)
		results := fetchCategories(ctx, fetcher, cats, s.cfg.News.Country)

		if flagHeadlinesJSON {
			return writeResultsJSON(cmd.OutOrStdout(), results)
		}
		for i, res := range results {
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			printResult(cmd.OutOrStdout(), res)
		}
		return nil
	},
}

func init() {
	f := headlinesCmd.Flags()
	f.StringVarP(&flagHeadlinesCategory, "category", "c", "", "category id or name (default from config)")
	f.BoolVar(&flagHeadlinesAll, "all", false, "fetch every category")
	f.BoolVar(&flagHeadlinesJSON, "json", false, "print JSON")
}

// headlineCategories resolves the --category/--all flags against the
// configured default category.
func headlineCategories(name string, all bool, fallback news.Category) ([]news.Category, error) {
	if all {
		if name != "" {
			return nil, fmt.Errorf("--category and --all are mutually exclusive")
		}
		infos := news.Categories()
		cats := make([]news.Category, len(infos))
		for i, info := range infos {
			cats[i] = info.ID
		}
		return cats, nil
	}
	if name == "" {
		return []news.Category{fallback}, nil
	}
	c, err := news.ParseCategory(name)
	if err != nil {
		return nil, err
	}
	return []news.Category{c}, nil
}

// fetchCategories fetches cats concurrently and returns results in the
// order of cats. Fetch never fails, so neither does the group.
func fetchCategories(ctx context.Context, f headlineSource, cats []news.Category, country string) []news.Result {
	results := make([]news.Result, len(cats))

	var g errgroup.Group
	g.SetLimit(maxConcurrentFetches)
	for i, c := range cats {
		i, c := i, c
		g.Go(func() error {
			results[i] = f.Fetch(ctx, c, country)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func printResult(w io.Writer, res news.Result) {
	title := res.Category.Title() + " News"
	if res.Fallback {
		title += fmt.Sprintf("  [demo data: %s]", res.Reason)
	}
	fmt.Fprintln(w, title)
	printArticles(w, res.Articles)
}

func printArticles(w io.Writer, articles []news.Article) {
	for i, a := range articles {
		fmt.Fprintf(w, "%2d. %s\n", i+1, a.Title)
		meta := a.DisplayDate()
		if a.Source.Name != "" {
			meta = a.Source.Name + " · " + meta
		}
		fmt.Fprintf(w, "    %s\n", meta)
		if a.HasLink() {
			fmt.Fprintf(w, "    %s\n", a.URL)
		}
	}
}

type jsonResult struct {
	Category  news.Category  `json:"category"`
	Fallback  bool           `json:"fallback"`
	Reason    news.Reason    `json:"reason,omitempty"`
	RequestID string         `json:"request_id"`
	Articles  []news.Article `json:"articles"`
}

func writeResultsJSON(w io.Writer, results []news.Result) error {
	out := make([]jsonResult, len(results))
	for i, res := range results {
		out[i] = jsonResult{
			Category:  res.Category,
			Fallback:  res.Fallback,
			Reason:    res.Reason,
			RequestID: res.RequestID,
			Articles:  res.Articles,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
