package report

import (
	"fmt"
	"strings"

	"github.com/HendryAvila/bulletcheck/internal/analysis"
)

var severityIcons = map[analysis.Severity]string{
	analysis.SeverityError:      "❌",
	analysis.SeverityWarning:    "⚠️",
	analysis.SeveritySuggestion: "💡",
}

// Markdown renders an analysis as an MCP tool response at the given detail level.
func Markdown(a *analysis.Analysis, detail string) string {
	detail = ParseDetailLevel(detail)

	var sb strings.Builder
	sb.WriteString("# Bullet List Analysis\n\n")
	fmt.Fprintf(&sb, "**Score:** %d/100 | **Grade:** %s | **Items:** %d | **Max depth:** %d | **Avg line length:** %.1f\n\n",
		a.OverallScore, a.Grade, a.ItemCount, a.MaxDepth, a.AvgLineLength)
	sb.WriteString(a.Summary)
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "**Context fit:** %s", a.ContextFit)
	if a.ContextFeedback != "" {
		fmt.Fprintf(&sb, " | %s", a.ContextFeedback)
	}
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "**Issues:** %d error(s), %d warning(s), %d suggestion(s)\n\n",
		len(a.Errors), len(a.Warnings), len(a.Suggestions))

	if len(a.TopImprovements) > 0 {
		sb.WriteString("## Top Improvements\n\n")
		for i, imp := range a.TopImprovements {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, imp)
		}
		sb.WriteString("\n")
	}

	if detail == DetailSummary {
		total := len(a.Errors) + len(a.Warnings) + len(a.Suggestions)
		sb.WriteString(NavigationHint(len(a.TopImprovements), total, "Lower-priority issues are omitted."))
		sb.WriteString(SummaryFooter)
		return sb.String()
	}

	if len(a.SectionScores) > 0 {
		sb.WriteString("## Sections\n\n")
		sb.WriteString("| Section | Score | Grade | Items | Issues | Context |\n")
		sb.WriteString("|---|---|---|---|---|---|\n")
		for _, s := range a.SectionScores {
			fmt.Fprintf(&sb, "| %s | %d | %s | %d | %d | %s |\n",
				s.Title, s.Score, s.Grade, s.ItemCount, len(s.Issues), s.Context)
		}
		sb.WriteString("\n")
	}

	writeIssues(&sb, "Errors", a.Errors, detail)
	writeIssues(&sb, "Warnings", a.Warnings, detail)
	writeIssues(&sb, "Suggestions", a.Suggestions, detail)

	if detail == DetailFull {
		sb.WriteString("## Rule Breakdown\n\n")
		sb.WriteString("| Rule | Earned | Max | Issues |\n")
		sb.WriteString("|---|---|---|---|\n")
		for _, rs := range a.Rules {
			fmt.Fprintf(&sb, "| %s | %d | %d | %d |\n", rs.Rule, rs.EarnedPoints, rs.MaxPoints, len(rs.Issues))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func writeIssues(sb *strings.Builder, heading string, issues []analysis.Issue, detail string) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintf(sb, "## %s\n\n", heading)
	for _, issue := range issues {
		fmt.Fprintf(sb, "- %s **%s**: %s\n", severityIcons[issue.Severity], issue.Rule, issue.Message)
		if issue.Suggestion != "" {
			fmt.Fprintf(sb, "  - Fix: %s\n", issue.Suggestion)
		}
		if detail == DetailFull && issue.ResearchBasis != "" {
			fmt.Fprintf(sb, "  - Research: _%s_\n", issue.ResearchBasis)
		}
	}
	sb.WriteString("\n")
}

// RulesMarkdown renders the rule catalog.
func RulesMarkdown(rules []analysis.RuleInfo, citations bool) string {
	var sb strings.Builder
	sb.WriteString("# Readability Rules\n\n")
	total := 0
	for _, r := range rules {
		total += r.MaxPoints
		fmt.Fprintf(&sb, "## %s (%s): %d pts\n\n%s\n\n", r.Name, r.ID, r.MaxPoints, r.Description)
		fmt.Fprintf(&sb, "- Default fix: %s\n", r.DefaultImprovement)
		if citations {
			fmt.Fprintf(&sb, "- Research: _%s_\n", r.ResearchBasis)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "**Total:** %d points. Grades: A ≥90, B ≥80, C ≥70, D ≥60, F <60.\n", total)
	return sb.String()
}
