package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/abelbrown/newsdesk/internal/brain"
	"github.com/abelbrown/newsdesk/internal/logging"
	"github.com/abelbrown/newsdesk/internal/news"
	"github.com/spf13/cobra"
)

var (
	flagAskCategory       string
	flagSummarizeCategory string
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the assistant about the current headlines",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssistant(cmd, flagAskCategory, func(ctx context.Context, a newsAssistant, res news.Result) brain.Answer {
			return a.AskQuestion(ctx, strings.Join(args, " "), res.Articles)
		})
	},
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize the current headlines",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssistant(cmd, flagSummarizeCategory, func(ctx context.Context, a newsAssistant, res news.Result) brain.Answer {
			return a.Summarize(ctx, res.Category, res.Articles)
		})
	},
}

func init() {
	askCmd.Flags().StringVarP(&flagAskCategory, "category", "c", "", "category id or name (default from config)")
	summarizeCmd.Flags().StringVarP(&flagSummarizeCategory, "category", "c", "", "category id or name (default from config)")
}

// runAssistant fetches headlines for the chosen category and prints the
// answer op produces from them.
func runAssistant(cmd *cobra.Command, categoryName string, op func(context.Context, newsAssistant, news.Result) brain.Answer) error {
	s, err := setup(false)
	if err != nil {
		return err
	}
	defer s.close()

	category, err := s.category(categoryName)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cliTimeout)
	defer cancel()

	fetcher := news.NewFetcher(news.NewProvider(s.cfg.News), s.events)
	assistant := brain.NewAssistant(s.cfg.Completion, s.events)

	return answer(ctx, cmd.OutOrStdout(), fetcher, assistant, category, s.cfg.News.Country, op)
}

func answer(ctx context.Context, w io.Writer, f headlineSource, a newsAssistant, category news.Category, country string,
	op func(context.Context, newsAssistant, news.Result) brain.Answer) error {
	res := f.Fetch(ctx, category, country)
	if res.Fallback {
		logging.Warn("answering from demo data", "category", category, "reason", res.Reason)
	}

	ans := op(ctx, a, res)
	if ans.Err != nil {
		logging.Debug("canned answer", "error", ans.Err)
	}
	fmt.Fprintln(w, ans.Text)
	return nil
}
