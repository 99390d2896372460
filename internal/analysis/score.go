package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/HendryAvila/bulletcheck/internal/config"
)

// maxImprovements caps the top_improvements list.
const maxImprovements = 3

// Aggregation is the graded result of one list's rule scores.
type Aggregation struct {
	OverallScore    int
	Grade           Grade
	Rules           []RuleScore
	Errors          []Issue
	Warnings        []Issue
	Suggestions     []Issue
	TopImprovements []string
	Summary         string
}

// CalculateScore returns Σearned / Σmax as a rounded 0-100 percentage.
func CalculateScore(scores []RuleScore) int {
	total, earned := 0, 0
	for _, s := range scores {
		total += s.MaxPoints
		earned += s.EarnedPoints
	}
	if total == 0 {
		return 0
	}
	return clampScore(int(math.Round(float64(earned) / float64(total) * 100)))
}

// GradeFor maps a score to its letter band. Lower bounds are inclusive.
func GradeFor(score int) Grade {
	switch {
	case score >= 90:
		return GradeA
	case score >= 80:
		return GradeB
	case score >= 70:
		return GradeC
	case score >= 60:
		return GradeD
	default:
		return GradeF
	}
}

// Aggregate grades rule scores and buckets their issues. The score is
// computed from earned points, so strict mode never changes it.
func Aggregate(scores []RuleScore, opts config.ValidationConfig) Aggregation {
	rules := applyPolicy(scores, opts)
	score := CalculateScore(rules)

	agg := Aggregation{
		OverallScore: score,
		Grade:        GradeFor(score),
		Rules:        rules,
	}
	agg.Errors, agg.Warnings, agg.Suggestions = partition(flatten(rules))
	agg.TopImprovements = rankImprovements(candidatesFor(rules, ""))
	agg.Summary = summarize("list", score, agg.Grade, len(agg.Errors))
	return agg
}

// applyPolicy returns copies of scores with strict-mode promotion and
// citation stripping applied to every issue.
func applyPolicy(scores []RuleScore, opts config.ValidationConfig) []RuleScore {
	out := make([]RuleScore, len(scores))
	for i, s := range scores {
		issues := make([]Issue, len(s.Issues))
		for j, issue := range s.Issues {
			if opts.StrictMode && issue.Severity == SeverityWarning {
				issue.Severity = SeverityError
			}
			if !opts.EnableResearchCitations {
				issue.ResearchBasis = ""
			}
			issues[j] = issue
		}
		s.Issues = issues
		out[i] = s
	}
	return out
}

func flatten(scores []RuleScore) []Issue {
	var all []Issue
	for _, s := range scores {
		all = append(all, s.Issues...)
	}
	return all
}

// partition splits issues by severity, preserving order. The returned
// slices are never nil so they serialize as [].
func partition(issues []Issue) (errs, warns, suggs []Issue) {
	errs, warns, suggs = []Issue{}, []Issue{}, []Issue{}
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errs = append(errs, issue)
		case SeverityWarning:
			warns = append(warns, issue)
		default:
			suggs = append(suggs, issue)
		}
	}
	return errs, warns, suggs
}

// candidate is an issue competing for a top_improvements slot. prefix
// labels the section it came from.
type candidate struct {
	issue  Issue
	prefix string
}

func candidatesFor(scores []RuleScore, prefix string) []candidate {
	var cands []candidate
	for _, issue := range flatten(scores) {
		cands = append(cands, candidate{issue: issue, prefix: prefix})
	}
	return cands
}

// rankImprovements orders candidates by severity, then by the originating
// rule's point value, and renders up to three distinct suggestions.
func rankImprovements(cands []candidate) []string {
	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i].issue, cands[j].issue
		if a.Severity.rank() != b.Severity.rank() {
			return a.Severity.rank() < b.Severity.rank()
		}
		return rulePoints(a.Rule) > rulePoints(b.Rule)
	})

	out := []string{}
	seen := make(map[string]bool)
	for _, c := range cands {
		text := c.prefix + improvementText(c.issue)
		if seen[text] {
			continue
		}
		seen[text] = true
		out = append(out, text)
		if len(out) == maxImprovements {
			break
		}
	}
	return out
}

func improvementText(issue Issue) string {
	if issue.Suggestion != "" {
		return issue.Suggestion
	}
	if info, ok := lookupRule(issue.Rule); ok {
		return info.DefaultImprovement
	}
	return issue.Message
}

func rulePoints(id RuleID) int {
	info, _ := lookupRule(id)
	return info.MaxPoints
}

var gradeSentences = map[Grade]string{
	GradeA: "Excellent %s that follows readability best practices.",
	GradeB: "Good %s with minor room for improvement.",
	GradeC: "Fair %s; several readability issues are worth addressing.",
	GradeD: "Weak %s; significant readability issues detected.",
	GradeF: "Poor %s; major restructuring is recommended.",
}

// summarize renders the one-line verdict for a list or document.
func summarize(noun string, score int, grade Grade, errorCount int) string {
	s := fmt.Sprintf("Score %d/100 (%s). "+gradeSentences[grade], score, grade, noun)
	if errorCount > 0 {
		s += fmt.Sprintf(" Resolve %d error(s) first.", errorCount)
	}
	return s
}

func clampScore(s int) int {
	return max(0, min(100, s))
}
