package brain

import (
	"fmt"
	"strings"

	"github.com/abelbrown/newsdesk/internal/news"
)

// Article limits per prompt.
const (
	questionArticles = 5
	summaryArticles  = 10
)

const (
	askSystemPrompt = "You are a helpful news assistant. Answer questions based on the provided news articles. Be concise and informative."

	summarySystemPrompt = "You are a news summarizer. Provide a concise summary of the main themes and key points from the provided news articles."

	noDescription = "No description available"
)

// Canned answers.
const (
	askApology     = "I'm sorry, I couldn't process your question at the moment. Please try again later."
	summaryApology = "I'm sorry, I couldn't generate a summary at the moment. Please try again later."

	askNotConfigured = "AI features require an OpenAI API key. Please add OPENAI_API_KEY to your environment or .env file with a valid key, then restart newsdesk. Current key status: "

	keyFoundInvalid = "Key found but may be invalid"
	keyMissing      = "No key found"
)

// formatArticles renders at most limit articles as a numbered list:
// "N. <title>: <description>" separated by blank lines.
func formatArticles(articles []news.Article, limit int) string {
	if len(articles) > limit {
		articles = articles[:limit]
	}
	lines := make([]string, len(articles))
	for i, a := range articles {
		lines[i] = fmt.Sprintf("%d. %s: %s", i+1, a.Title, a.DescriptionOr(noDescription))
	}
	return strings.Join(lines, "\n\n")
}

func askPrompt(question string, articles []news.Article) string {
	return "Based on these news articles:\n\n" + formatArticles(articles, questionArticles) +
		"\n\nQuestion: " + question +
		"\n\nPlease provide a helpful answer based on the articles above."
}

func summaryPrompt(category news.Category, articles []news.Article) string {
	return fmt.Sprintf("Please provide a comprehensive summary of these %s news articles:\n\n%s\n\nSummary:",
		category, formatArticles(articles, summaryArticles))
}

func summaryNotConfigured(category news.Category) string {
	return fmt.Sprintf("Summary for %s category: The articles in this category cover various topics and recent developments. "+
		"This is a demo summary as the OpenAI API key is not configured. "+
		"Please add OPENAI_API_KEY to your environment or .env file and restart newsdesk.", category)
}
