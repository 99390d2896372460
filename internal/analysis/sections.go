package analysis

import (
	"fmt"
	"math"

	"github.com/HendryAvila/bulletcheck/internal/config"
)

// analyzeSections scores each section as an independent list and combines
// them. The document score is the unweighted mean of section scores, so a
// short section counts as much as a long one.
func analyzeSections(sections []Section, global Context, opts config.ValidationConfig) *Analysis {
	var (
		allItems   []Item
		perSection = make([]SectionScore, 0, len(sections))
		merged     = make(map[RuleID]*RuleScore)
		cands      []candidate
		scoreSum   int
		itemCount  int
		largest    int
		depth      int
	)

	res := &Analysis{
		Errors:      []Issue{},
		Warnings:    []Issue{},
		Suggestions: []Issue{},
	}

	for _, sec := range sections {
		ctx := sec.Context
		if ctx == "" {
			ctx = global
		}

		prefix := fmt.Sprintf("[%s] ", sec.Title)
		agg := Aggregate(prefixMessages(evaluateAll(sec.Items, ctx), prefix), opts)

		res.Errors = append(res.Errors, agg.Errors...)
		res.Warnings = append(res.Warnings, agg.Warnings...)
		res.Suggestions = append(res.Suggestions, agg.Suggestions...)
		cands = append(cands, candidatesFor(agg.Rules, prefix)...)

		for _, rs := range agg.Rules {
			m, ok := merged[rs.Rule]
			if !ok {
				m = &RuleScore{Rule: rs.Rule, Issues: []Issue{}}
				merged[rs.Rule] = m
			}
			m.MaxPoints += rs.MaxPoints
			m.EarnedPoints += rs.EarnedPoints
			m.Issues = append(m.Issues, rs.Issues...)
		}

		sectionIssues := flatten(agg.Rules)
		if sectionIssues == nil {
			sectionIssues = []Issue{}
		}
		perSection = append(perSection, SectionScore{
			Title:     sec.Title,
			Score:     agg.OverallScore,
			Grade:     agg.Grade,
			ItemCount: len(sec.Items),
			Issues:    sectionIssues,
			Context:   ctx,
		})

		scoreSum += agg.OverallScore
		itemCount += len(sec.Items)
		largest = max(largest, len(sec.Items))
		depth = max(depth, maxDepth(sec.Items))
		allItems = append(allItems, sec.Items...)
	}

	for _, r := range registry {
		if m, ok := merged[r.info.ID]; ok {
			res.Rules = append(res.Rules, *m)
		}
	}

	score := 0
	if len(perSection) > 0 {
		score = clampScore(int(math.Round(float64(scoreSum) / float64(len(perSection)))))
	}

	res.OverallScore = score
	res.Grade = GradeFor(score)
	res.SectionScores = perSection
	res.TopImprovements = rankImprovements(cands)
	res.ItemCount = itemCount
	res.MaxDepth = depth
	res.AvgLineLength = avgLineLength(allItems)
	// Readers meet one section at a time, so fit is judged on the largest.
	res.ContextFit, res.ContextFeedback = EvaluateContextFit(global, largest, depth)
	res.Summary = fmt.Sprintf("Document with %d sections. ", len(sections)) +
		summarize("document", score, res.Grade, len(res.Errors))

	return res
}

// prefixMessages labels every issue message with its section.
func prefixMessages(scores []RuleScore, prefix string) []RuleScore {
	for i := range scores {
		for j := range scores[i].Issues {
			scores[i].Issues[j].Message = prefix + scores[i].Issues[j].Message
		}
	}
	return scores
}
