package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HendryAvila/bulletcheck/internal/config"
)

// --- CalculateScore ---

func TestCalculateScore_Empty(t *testing.T) {
	assert.Equal(t, 0, CalculateScore(nil))
}

func TestCalculateScore_Ratio(t *testing.T) {
	scores := []RuleScore{
		{MaxPoints: 20, EarnedPoints: 10},
		{MaxPoints: 20, EarnedPoints: 20},
	}
	assert.Equal(t, 75, CalculateScore(scores))
}

func TestCalculateScore_Rounds(t *testing.T) {
	// 2/3 = 66.67 → 67.
	scores := []RuleScore{{MaxPoints: 3, EarnedPoints: 2}}
	assert.Equal(t, 67, CalculateScore(scores))
}

// --- GradeFor ---

func TestGradeFor_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  Grade
	}{
		{100, GradeA}, {90, GradeA},
		{89, GradeB}, {80, GradeB},
		{79, GradeC}, {70, GradeC},
		{69, GradeD}, {60, GradeD},
		{59, GradeF}, {0, GradeF},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeFor(tt.score), "score=%d", tt.score)
	}
}

// --- Aggregate ---

func sampleScores() []RuleScore {
	return []RuleScore{
		listLengthInfo.score([]Issue{listLengthInfo.issue(SeverityError, nil, "", "too long")}, 20),
		lineLengthInfo.score([]Issue{lineLengthInfo.issue(SeverityWarning, intPtr(1), "Trim item 2", "long")}, 3),
		formattingInfo.score([]Issue{formattingInfo.issue(SeveritySuggestion, nil, "", "capitalization")}, 5),
		firstWordsInfo.score([]Issue{firstWordsInfo.issue(SeverityWarning, intPtr(2), "", "dup")}, 5),
	}
}

func TestAggregate_PartitionsBySeverity(t *testing.T) {
	agg := Aggregate(sampleScores(), config.Default().Validation)

	assert.Len(t, agg.Errors, 1)
	assert.Len(t, agg.Warnings, 2)
	assert.Len(t, agg.Suggestions, 1)
	// (0 + 12 + 5 + 5) / 55 = 40%.
	assert.Equal(t, 40, agg.OverallScore)
	assert.Equal(t, GradeF, agg.Grade)
}

func TestAggregate_StrictModePromotesWarnings(t *testing.T) {
	lenient := Aggregate(sampleScores(), config.ValidationConfig{EnableResearchCitations: true})
	strict := Aggregate(sampleScores(), config.ValidationConfig{StrictMode: true, EnableResearchCitations: true})

	assert.Empty(t, strict.Warnings)
	assert.Len(t, strict.Errors, len(lenient.Errors)+len(lenient.Warnings))
	assert.Equal(t, lenient.OverallScore, strict.OverallScore)

	for _, rs := range strict.Rules {
		for _, issue := range rs.Issues {
			assert.NotEqual(t, SeverityWarning, issue.Severity)
		}
	}
}

func TestAggregate_StripsCitations(t *testing.T) {
	agg := Aggregate(sampleScores(), config.ValidationConfig{EnableResearchCitations: false})
	for _, rs := range agg.Rules {
		for _, issue := range rs.Issues {
			assert.Empty(t, issue.ResearchBasis)
		}
	}
	for _, issue := range append(append(agg.Errors, agg.Warnings...), agg.Suggestions...) {
		assert.Empty(t, issue.ResearchBasis)
	}
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	scores := sampleScores()
	_ = Aggregate(scores, config.ValidationConfig{StrictMode: true})
	assert.Equal(t, SeverityWarning, scores[1].Issues[0].Severity)
	assert.NotEmpty(t, scores[1].Issues[0].ResearchBasis)
}

func TestAggregate_TopImprovementsRanked(t *testing.T) {
	agg := Aggregate(sampleScores(), config.Default().Validation)

	require.Len(t, agg.TopImprovements, 3)
	// Error first, with the rule default since the issue has no suggestion.
	assert.Equal(t, listLengthInfo.DefaultImprovement, agg.TopImprovements[0])
	// Warnings next: LINE_LENGTH (15 pts) outranks FIRST_WORDS (10 pts).
	assert.Equal(t, "Trim item 2", agg.TopImprovements[1])
	assert.Equal(t, firstWordsInfo.DefaultImprovement, agg.TopImprovements[2])
}

func TestAggregate_TopImprovementsDeduplicated(t *testing.T) {
	r := lineLengthInfo
	scores := []RuleScore{r.score([]Issue{
		r.issue(SeveritySuggestion, intPtr(0), "Same advice", "a"),
		r.issue(SeveritySuggestion, intPtr(1), "Same advice", "b"),
	}, 2)}

	agg := Aggregate(scores, config.Default().Validation)
	assert.Equal(t, []string{"Same advice"}, agg.TopImprovements)
}

func TestAggregate_NoIssuesYieldsEmptySlices(t *testing.T) {
	agg := Aggregate(evaluateAll(typedItems(createTexts(5)...), ContextDocument), config.Default().Validation)
	assert.Equal(t, 100, agg.OverallScore)
	assert.NotNil(t, agg.Errors)
	assert.NotNil(t, agg.Warnings)
	assert.NotNil(t, agg.Suggestions)
	assert.NotNil(t, agg.TopImprovements)
	assert.Empty(t, agg.TopImprovements)
}

// --- summarize ---

func TestSummarize(t *testing.T) {
	s := summarize("list", 95, GradeA, 0)
	assert.True(t, strings.HasPrefix(s, "Score 95/100 (A). Excellent list"))
	assert.NotContains(t, s, "error")

	s = summarize("list", 40, GradeF, 2)
	assert.Contains(t, s, "Poor list")
	assert.Contains(t, s, "Resolve 2 error(s) first.")
}
