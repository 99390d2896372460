package analysis

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// RuleInfo describes one heuristic for catalogs and reports.
type RuleInfo struct {
	ID                 RuleID `json:"id"`
	Name               string `json:"name"`
	MaxPoints          int    `json:"max_points"`
	Description        string `json:"description"`
	ResearchBasis      string `json:"research_basis"`
	DefaultImprovement string `json:"default_improvement"`
}

// Evaluator scores one list for one rule. Evaluators are pure and
// independent of each other.
type Evaluator func(items []Item, ctx Context) RuleScore

type registeredRule struct {
	info     RuleInfo
	evaluate Evaluator
}

// Recommended bounds shared by several rules.
const (
	minListItems  = 3
	maxListItems  = 7
	hardListLimit = 10

	minLineLength   = 40
	idealLineMin    = 45
	idealLineMax    = 75
	maxLineLength   = 80
	shortLineCost   = 1
	longLineCost    = 3
	perIssuePenalty = 5
)

var (
	listLengthInfo = RuleInfo{
		ID:                 RuleListLength,
		Name:               "List length",
		MaxPoints:          20,
		Description:        "Lists of 3-7 items fit working memory; 10 or more overwhelm it.",
		ResearchBasis:      "Miller (1956); Cowan (2001): working memory holds roughly 4-7 chunks",
		DefaultImprovement: "Keep each list to 3-7 items; split longer lists into groups",
	}
	hierarchyInfo = RuleInfo{
		ID:                 RuleHierarchy,
		Name:               "Hierarchy depth",
		MaxPoints:          15,
		Description:        "Nesting beyond two levels makes relationships hard to follow.",
		ResearchBasis:      "Nielsen Norman Group: flat hierarchies are scanned faster than deep ones",
		DefaultImprovement: "Flatten the hierarchy to at most two levels",
	}
	lineLengthInfo = RuleInfo{
		ID:                 RuleLineLength,
		Name:               "Line length",
		MaxPoints:          15,
		Description:        "Items of 45-75 characters read best; over 80 slows scanning.",
		ResearchBasis:      "Dyson & Haselgrove (2001); Bringhurst: 45-75 characters per line is optimal",
		DefaultImprovement: "Aim for 45-75 characters per item",
	}
	serialPositionInfo = RuleInfo{
		ID:                 RuleSerialPosition,
		Name:               "Serial position",
		MaxPoints:          10,
		Description:        "Readers recall first and last items best; the middle is a recall valley.",
		ResearchBasis:      "Ebbinghaus (1913); Murdock (1962): serial position effect",
		DefaultImprovement: "Move high-importance items to the first or last position",
	}
	structureInfo = RuleInfo{
		ID:                 RuleStructure,
		Name:               "Parallel structure",
		MaxPoints:          20,
		Description:        "Items should share one grammatical pattern (all verbs, all gerunds, or all nouns).",
		ResearchBasis:      "Frazier et al. (1984): parallel structure speeds sentence processing",
		DefaultImprovement: "Start every item with the same grammatical form",
	}
	firstWordsInfo = RuleInfo{
		ID:                 RuleFirstWords,
		Name:               "First-words uniqueness",
		MaxPoints:          10,
		Description:        "Readers scan the first two words of each item; they should differ.",
		ResearchBasis:      "Nielsen Norman Group (2017): users read the first 2 words of list items",
		DefaultImprovement: "Make the first two words of every item distinctive",
	}
	formattingInfo = RuleInfo{
		ID:                 RuleFormatting,
		Name:               "Formatting consistency",
		MaxPoints:          10,
		Description:        "Terminal punctuation and capitalization should be all-or-none.",
		ResearchBasis:      "Chicago Manual of Style 6.130: consistent treatment of vertical lists",
		DefaultImprovement: "Use the same capitalization and end punctuation on every item",
	}
)

// registry is the closed, ordered rule set.
var registry = []registeredRule{
	{listLengthInfo, evaluateListLength},
	{hierarchyInfo, evaluateHierarchy},
	{lineLengthInfo, evaluateLineLength},
	{serialPositionInfo, evaluateSerialPosition},
	{structureInfo, evaluateStructure},
	{firstWordsInfo, evaluateFirstWords},
	{formattingInfo, evaluateFormatting},
}

// Rules returns the rule catalog in evaluation order.
func Rules() []RuleInfo {
	out := make([]RuleInfo, len(registry))
	for i, r := range registry {
		out[i] = r.info
	}
	return out
}

// lookupRule returns the catalog entry for id.
func lookupRule(id RuleID) (RuleInfo, bool) {
	for _, r := range registry {
		if r.info.ID == id {
			return r.info, true
		}
	}
	return RuleInfo{}, false
}

// MaxPoints is the sum of every rule's max points.
func MaxPoints() int {
	total := 0
	for _, r := range registry {
		total += r.info.MaxPoints
	}
	return total
}

// evaluateAll runs every registered rule against items.
func evaluateAll(items []Item, ctx Context) []RuleScore {
	scores := make([]RuleScore, 0, len(registry))
	for _, r := range registry {
		scores = append(scores, r.evaluate(items, ctx))
	}
	return scores
}

func (r RuleInfo) issue(sev Severity, idx *int, suggestion, format string, args ...any) Issue {
	return Issue{
		Rule:          r.ID,
		Severity:      sev,
		Message:       fmt.Sprintf(format, args...),
		ItemIndex:     idx,
		Suggestion:    suggestion,
		ResearchBasis: r.ResearchBasis,
	}
}

// score builds a RuleScore, clamping the deduction to [0, MaxPoints].
func (r RuleInfo) score(issues []Issue, deduction int) RuleScore {
	deduction = max(0, min(deduction, r.MaxPoints))
	if issues == nil {
		issues = []Issue{}
	}
	return RuleScore{
		Rule:         r.ID,
		MaxPoints:    r.MaxPoints,
		EarnedPoints: r.MaxPoints - deduction,
		Issues:       issues,
	}
}

func evaluateListLength(items []Item, _ Context) RuleScore {
	r := listLengthInfo
	n := len(items)

	switch {
	case n < minListItems:
		return r.score([]Issue{r.issue(SeveritySuggestion, nil,
			"Merge into a sentence or add supporting points to reach 3-7 items",
			"Only %d item(s); a list this short may read better as prose", n,
		)}, 5)
	case n <= maxListItems:
		return r.score(nil, 0)
	case n < hardListLimit:
		return r.score([]Issue{r.issue(SeverityWarning, nil,
			"Trim to 7 items or split the list into two groups",
			"%d items exceeds the recommended 3-7", n,
		)}, 10)
	default:
		return r.score([]Issue{r.issue(SeverityError, nil,
			"Split this list into groups of 3-7 items, for example with sections",
			"%d items is too many to hold in working memory (recommended 3-7)", n,
		)}, r.MaxPoints)
	}
}

func evaluateHierarchy(items []Item, _ Context) RuleScore {
	r := hierarchyInfo
	depth := maxDepth(items)

	switch {
	case depth <= 2:
		return r.score(nil, 0)
	case depth == 3:
		return r.score([]Issue{r.issue(SeverityWarning, nil,
			"Promote third-level points or fold them into their parent",
			"List is nested %d levels deep; two levels is easier to follow", depth,
		)}, 7)
	default:
		return r.score([]Issue{r.issue(SeverityError, nil,
			"Restructure into separate lists or sections with at most two levels",
			"List is nested %d levels deep; readers lose track beyond two levels", depth,
		)}, r.MaxPoints)
	}
}

func evaluateLineLength(items []Item, _ Context) RuleScore {
	r := lineLengthInfo
	var issues []Issue
	deduction := 0

	idx := 0
	walk(items, func(item Item) {
		n := textLength(item.Text)
		switch {
		case n < minLineLength:
			issues = append(issues, r.issue(SeveritySuggestion, intPtr(idx),
				"Add a concrete detail so the item carries its own meaning",
				"Item %d is short (%d characters); %d-%d reads best", idx+1, n, idealLineMin, idealLineMax,
			))
			deduction += shortLineCost
		case n > maxLineLength:
			issues = append(issues, r.issue(SeverityWarning, intPtr(idx),
				"Shorten the item or move detail into a sub-point",
				"Item %d is %d characters; lines over %d characters slow scanning", idx+1, n, maxLineLength,
			))
			deduction += longLineCost
		}
		idx++
	})

	return r.score(issues, deduction)
}

func evaluateSerialPosition(items []Item, _ Context) RuleScore {
	r := serialPositionInfo
	var issues []Issue
	n := len(items)

	for i, item := range items {
		if item.Importance != ImportanceHigh || i == 0 || i == n-1 {
			continue
		}
		issues = append(issues, r.issue(SeverityWarning, intPtr(i), r.DefaultImprovement,
			"Item %d is marked high importance but sits in the recall valley (position %d of %d)", i+1, i+1, n,
		))
	}

	return r.score(issues, len(issues)*perIssuePenalty)
}

func evaluateStructure(items []Item, _ Context) RuleScore {
	r := structureInfo
	n := len(items)
	if n < 2 {
		return r.score(nil, 0)
	}

	patterns := make([]pattern, n)
	for i, item := range items {
		patterns[i] = classify(item.Text)
	}
	dominant := dominantPattern(patterns)

	var issues []Issue
	for i, p := range patterns {
		if p == dominant {
			continue
		}
		issues = append(issues, r.issue(SeverityWarning, intPtr(i),
			fmt.Sprintf("Rewrite item %d to start with %s like the others", i+1, dominant.article()),
			"Item %d starts with %s (%q) while most items start with %s",
			i+1, p.article(), firstWord(items[i].Text), dominant.article(),
		))
	}

	deduction := int(float64(r.MaxPoints)*float64(len(issues))/float64(n) + 0.5)
	return r.score(issues, deduction)
}

func evaluateFirstWords(items []Item, _ Context) RuleScore {
	r := firstWordsInfo
	if len(items) < 2 {
		return r.score(nil, 0)
	}

	var order []string
	groups := make(map[string][]int)
	for i, item := range items {
		key := leadingWords(item.Text, 2)
		if key == "" {
			continue
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}

	var issues []Issue
	for _, key := range order {
		idxs := groups[key]
		if len(idxs) < 2 {
			continue
		}
		issues = append(issues, r.issue(SeverityWarning, intPtr(idxs[1]),
			"Vary the opening words so each item is distinguishable at a glance",
			"Items %s start with the same words %q", joinPositions(idxs), key,
		))
	}

	return r.score(issues, len(issues)*perIssuePenalty)
}

func evaluateFormatting(items []Item, _ Context) RuleScore {
	r := formattingInfo
	n := len(items)
	var issues []Issue

	punctuated := 0
	upper, lower := 0, 0
	for _, item := range items {
		if endsWithPunctuation(item.Text) {
			punctuated++
		}
		first, _ := utf8.DecodeRuneInString(item.Text)
		switch {
		case unicode.IsUpper(first):
			upper++
		case unicode.IsLower(first):
			lower++
		}
	}

	if punctuated > 0 && punctuated < n {
		issues = append(issues, r.issue(SeveritySuggestion, nil,
			"End every item with punctuation, or none of them",
			"Inconsistent terminal punctuation: %d of %d items end with '.', '!' or '?'", punctuated, n,
		))
	}
	if upper > 0 && lower > 0 {
		issues = append(issues, r.issue(SeveritySuggestion, nil,
			"Capitalize the first letter of every item, or none of them",
			"Inconsistent capitalization: %d items start uppercase and %d lowercase", upper, lower,
		))
	}

	return r.score(issues, len(issues)*perIssuePenalty)
}

// --- helpers ---

// walk visits items in pre-order.
func walk(items []Item, fn func(Item)) {
	for _, item := range items {
		fn(item)
		walk(item.Children, fn)
	}
}

// maxDepth returns the nesting depth; a flat list has depth 1.
func maxDepth(items []Item) int {
	if len(items) == 0 {
		return 0
	}
	deepest := 0
	for _, item := range items {
		deepest = max(deepest, maxDepth(item.Children))
	}
	return deepest + 1
}

// textLength counts characters, not bytes.
func textLength(s string) int {
	return utf8.RuneCountInString(s)
}

func endsWithPunctuation(s string) bool {
	last, _ := utf8.DecodeLastRuneInString(s)
	return last == '.' || last == '!' || last == '?'
}

// leadingWords returns the first n words, lowercased with surrounding
// punctuation removed.
func leadingWords(s string, n int) string {
	var words []string
	for _, f := range strings.Fields(s) {
		w := strings.ToLower(strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		}))
		if w == "" {
			continue
		}
		words = append(words, w)
		if len(words) == n {
			break
		}
	}
	return strings.Join(words, " ")
}

func firstWord(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return ""
}

// joinPositions renders zero-based indexes as "1, 3 and 4".
func joinPositions(idxs []int) string {
	parts := make([]string, len(idxs))
	for i, idx := range idxs {
		parts[i] = fmt.Sprintf("%d", idx+1)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
}
