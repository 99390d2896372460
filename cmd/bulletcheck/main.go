// bulletcheck: readability analysis for bulleted lists.
//
// Scores a list against seven research-backed heuristics and reports a
// 0-100 score, a letter grade, issues by severity and the top fixes. Runs
// as an MCP server for AI coding tools or as a one-shot CLI.
//
// Usage:
//
//	bulletcheck serve              # Start MCP server (stdio transport)
//	bulletcheck analyze list.md    # Analyze a markdown or JSON file
//	cat list.json | bulletcheck analyze --json
//	bulletcheck rules              # Show the rule catalog
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}
