package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/HendryAvila/bulletcheck/internal/analysis"
)

// Printer writes colored reports to a terminal.
type Printer struct {
	w io.Writer

	title   *color.Color
	success *color.Color
	warning *color.Color
	failure *color.Color
	info    *color.Color
	faint   *color.Color
}

// NewPrinter creates a Printer. When colorOutput is false every color is
// disabled regardless of the terminal.
func NewPrinter(w io.Writer, colorOutput bool) *Printer {
	p := &Printer{
		w:       w,
		title:   color.New(color.FgMagenta, color.Bold),
		success: color.New(color.FgGreen, color.Bold),
		warning: color.New(color.FgYellow, color.Bold),
		failure: color.New(color.FgRed, color.Bold),
		info:    color.New(color.FgCyan),
		faint:   color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.title, p.success, p.warning, p.failure, p.info, p.faint} {
		if colorOutput {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// gradeColor picks the color for a letter grade.
func (p *Printer) gradeColor(g analysis.Grade) *color.Color {
	switch g {
	case analysis.GradeA, analysis.GradeB:
		return p.success
	case analysis.GradeC, analysis.GradeD:
		return p.warning
	default:
		return p.failure
	}
}

func (p *Printer) severityColor(s analysis.Severity) *color.Color {
	switch s {
	case analysis.SeverityError:
		return p.failure
	case analysis.SeverityWarning:
		return p.warning
	default:
		return p.info
	}
}

// Analysis prints a full report.
func (p *Printer) Analysis(a *analysis.Analysis, detail string) {
	detail = ParseDetailLevel(detail)

	p.title.Fprintln(p.w, "Bullet List Analysis")
	p.separator()
	p.gradeColor(a.Grade).Fprintf(p.w, "Score %d/100  Grade %s\n", a.OverallScore, a.Grade)
	fmt.Fprintln(p.w, a.Summary)
	p.faint.Fprintf(p.w, "items %d · depth %d · avg line %.1f chars · context fit %s\n",
		a.ItemCount, a.MaxDepth, a.AvgLineLength, a.ContextFit)
	if a.ContextFeedback != "" {
		p.info.Fprintln(p.w, a.ContextFeedback)
	}

	if len(a.TopImprovements) > 0 {
		fmt.Fprintln(p.w)
		p.title.Fprintln(p.w, "Top improvements")
		for i, imp := range a.TopImprovements {
			fmt.Fprintf(p.w, "  %d. %s\n", i+1, imp)
		}
	}

	if detail == DetailSummary {
		return
	}

	if len(a.SectionScores) > 0 {
		fmt.Fprintln(p.w)
		p.title.Fprintln(p.w, "Sections")
		for _, s := range a.SectionScores {
			p.gradeColor(s.Grade).Fprintf(p.w, "  %-3s %3d", s.Grade, s.Score)
			fmt.Fprintf(p.w, "  %s (%d items, %s)\n", s.Title, s.ItemCount, s.Context)
		}
	}

	issues := append(append(append([]analysis.Issue{}, a.Errors...), a.Warnings...), a.Suggestions...)
	if len(issues) > 0 {
		fmt.Fprintln(p.w)
		p.title.Fprintln(p.w, "Issues")
		for _, issue := range issues {
			p.severityColor(issue.Severity).Fprintf(p.w, "  %-10s", issue.Severity)
			fmt.Fprintf(p.w, " %-16s %s\n", issue.Rule, issue.Message)
			if detail == DetailFull && issue.ResearchBasis != "" {
				p.faint.Fprintf(p.w, "  %s\n", strings.Repeat(" ", 27)+issue.ResearchBasis)
			}
		}
	}

	if detail == DetailFull {
		fmt.Fprintln(p.w)
		p.title.Fprintln(p.w, "Rules")
		for _, rs := range a.Rules {
			c := p.success
			if rs.EarnedPoints < rs.MaxPoints {
				c = p.warning
			}
			c.Fprintf(p.w, "  %2d/%-2d", rs.EarnedPoints, rs.MaxPoints)
			fmt.Fprintf(p.w, "  %s\n", rs.Rule)
		}
	}
}

// Rules prints the rule catalog.
func (p *Printer) Rules(rules []analysis.RuleInfo, citations bool) {
	p.title.Fprintln(p.w, "Readability rules")
	p.separator()
	for _, r := range rules {
		p.info.Fprintf(p.w, "%-16s", r.ID)
		fmt.Fprintf(p.w, " %2d pts  %s\n", r.MaxPoints, r.Description)
		if citations {
			p.faint.Fprintf(p.w, "%s%s\n", strings.Repeat(" ", 25), r.ResearchBasis)
		}
	}
}

func (p *Printer) separator() {
	fmt.Fprintln(p.w, strings.Repeat("─", 60))
}
