// Package analysis scores bulleted lists against a fixed set of
// readability heuristics.
//
// Analyze is a pure function of (raw input, config): it validates the input,
// runs the seven rule evaluators, aggregates their scores into a grade, and
// returns a fresh Analysis. Nothing is shared between calls.
package analysis

import "fmt"

// Context is the declared usage scenario of a list.
type Context string

// Supported contexts.
const (
	ContextDocument     Context = "document"
	ContextPresentation Context = "presentation"
	ContextReference    Context = "reference"
)

// ContextValues returns the enum values for tool definitions.
func ContextValues() []string {
	return []string{string(ContextDocument), string(ContextPresentation), string(ContextReference)}
}

// Importance marks how much an item matters to the reader.
type Importance string

// Importance levels.
const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
	ImportanceLow    Importance = "low"
)

// Severity ranks issues by required attention.
type Severity string

// Severities, most urgent first.
const (
	SeverityError      Severity = "error"
	SeverityWarning    Severity = "warning"
	SeveritySuggestion Severity = "suggestion"
)

// rank orders severities for sorting; lower is more urgent.
func (s Severity) rank() int {
	switch s {
	case SeverityError:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}

// RuleID identifies one of the seven heuristics.
type RuleID string

// The closed rule set.
const (
	RuleListLength     RuleID = "LIST_LENGTH"
	RuleHierarchy      RuleID = "HIERARCHY"
	RuleLineLength     RuleID = "LINE_LENGTH"
	RuleSerialPosition RuleID = "SERIAL_POSITION"
	RuleStructure      RuleID = "STRUCTURE"
	RuleFirstWords     RuleID = "FIRST_WORDS"
	RuleFormatting     RuleID = "FORMATTING"
)

// Grade is a letter band for a 0-100 score.
type Grade string

// Grades.
const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// ContextFit is the advisory judgement of how a list suits its context.
type ContextFit string

// Context fit levels.
const (
	FitExcellent ContextFit = "excellent"
	FitGood      ContextFit = "good"
	FitFair      ContextFit = "fair"
	FitPoor      ContextFit = "poor"
)

// Item is one bullet, possibly with nested children.
type Item struct {
	Text       string     `json:"text"`
	Children   []Item     `json:"children,omitempty"`
	Importance Importance `json:"importance,omitempty"`
}

// Section is an independently scored group of items.
type Section struct {
	Title   string  `json:"title"`
	Items   []Item  `json:"items"`
	Context Context `json:"context,omitempty"`
}

// Input is the validated form of a caller's request. Exactly one of Items
// and Sections is non-empty.
type Input struct {
	Items    []Item    `json:"items,omitempty"`
	Sections []Section `json:"sections,omitempty"`
	Context  Context   `json:"context"`
}

// Sectioned reports whether the input uses sections.
func (in *Input) Sectioned() bool {
	return len(in.Sections) > 0
}

// Issue is a single finding produced by a rule.
type Issue struct {
	Rule          RuleID   `json:"rule"`
	Severity      Severity `json:"severity"`
	Message       string   `json:"message"`
	ItemIndex     *int     `json:"item_index,omitempty"`
	Suggestion    string   `json:"suggestion,omitempty"`
	ResearchBasis string   `json:"research_basis,omitempty"`
}

// RuleScore is one rule's result for one list.
type RuleScore struct {
	Rule         RuleID  `json:"rule"`
	MaxPoints    int     `json:"max_points"`
	EarnedPoints int     `json:"earned_points"`
	Issues       []Issue `json:"issues"`
}

// SectionScore is the per-section result in sectioned mode.
type SectionScore struct {
	Title     string  `json:"title"`
	Score     int     `json:"score"`
	Grade     Grade   `json:"grade"`
	ItemCount int     `json:"item_count"`
	Issues    []Issue `json:"issues"`
	Context   Context `json:"context"`
}

// Analysis is the full report for one input.
type Analysis struct {
	OverallScore    int            `json:"overall_score"`
	Grade           Grade          `json:"grade"`
	Rules           []RuleScore    `json:"rules"`
	Errors          []Issue        `json:"errors"`
	Warnings        []Issue        `json:"warnings"`
	Suggestions     []Issue        `json:"suggestions"`
	Summary         string         `json:"summary"`
	TopImprovements []string       `json:"top_improvements"`
	ItemCount       int            `json:"item_count"`
	MaxDepth        int            `json:"max_depth"`
	AvgLineLength   float64        `json:"avg_line_length"`
	ContextFit      ContextFit     `json:"context_fit"`
	ContextFeedback string         `json:"context_feedback,omitempty"`
	SectionScores   []SectionScore `json:"section_scores,omitempty"`
}

// InputError is the single terminal error for malformed input. It
// marshals as {"error": "..."}.
type InputError struct {
	Message string `json:"error"`
}

func (e *InputError) Error() string {
	return e.Message
}

func inputErrorf(format string, args ...any) *InputError {
	return &InputError{Message: fmt.Sprintf(format, args...)}
}

// intPtr returns a pointer to a copy of i.
func intPtr(i int) *int {
	return &i
}
