// Package report renders an analysis for humans: markdown for MCP
// responses and colored text for the terminal.
//
// Three verbosity levels keep tool responses small unless the caller asks
// for more:
//   - summary: score, grade, counts and top improvements
//   - standard: default, adds issues by severity and the section table
//   - full: adds the per-rule breakdown with research citations
package report

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Detail level constants.
const (
	DetailSummary  = "summary"
	DetailStandard = "standard"
	DetailFull     = "full"
)

// DetailLevelValues returns the enum values for MCP tool definitions.
func DetailLevelValues() []string {
	return []string{DetailSummary, DetailStandard, DetailFull}
}

// ParseDetailLevel normalizes a detail_level string, defaulting to
// "standard" for empty or unrecognized values.
func ParseDetailLevel(s string) string {
	switch s {
	case DetailSummary, DetailFull:
		return s
	default:
		return DetailStandard
	}
}

// SummaryFooter is appended to summary-mode responses.
const SummaryFooter = "\n---\n💡 Use detail_level: standard or full for every issue and the per-rule breakdown."

// NavigationHint returns a "Showing X of Y" line when a response lists
// fewer entries than exist. Returns "" when everything is shown.
func NavigationHint(showing, total int, hint string) string {
	if total <= 0 || showing >= total {
		return ""
	}
	msg := fmt.Sprintf("\n📊 Showing %d of %d.", showing, total)
	if hint != "" {
		msg += " " + hint
	}
	return msg
}

// EstimateTokens approximates the token count of text with the chars/4
// heuristic. Returns 0 for empty strings, at least 1 otherwise.
func EstimateTokens(text string) int {
	n := len(text)
	if n == 0 {
		return 0
	}
	return max(1, n/4)
}

// TokenFooter returns a one-line footer with the estimated token count.
func TokenFooter(estimatedTokens int) string {
	return fmt.Sprintf("\n📏 ~%s tokens", humanize.Comma(int64(estimatedTokens)))
}
