// Command newsdesk is a terminal news viewer with an AI assistant.
//
// Usage:
//
//	newsdesk                      Launch the TUI
//	newsdesk headlines [--all]    Print headlines for a category
//	newsdesk search <query>       Search articles
//	newsdesk ask <question>       Ask about the current headlines
//	newsdesk summarize            Summarize the current headlines
//	newsdesk status [--init]      Show configuration and credentials
//	newsdesk version              Print version information
//
// Environment:
//
//	NEWS_API_KEY      NewsAPI key (VITE_NEWS_API_KEY also accepted)
//	OPENAI_API_KEY    OpenAI key (VITE_OPENAI_API_KEY also accepted)
//	OPENAI_MODEL      Chat completion model (default: gpt-3.5-turbo)
//	NEWSDESK_COUNTRY  Headline country (default: us)
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
