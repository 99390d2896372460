package analysis

// EvaluateContextFit judges how well a list's shape suits its declared
// context. It is advisory and never affects the score.
func EvaluateContextFit(ctx Context, itemCount, depth int) (ContextFit, string) {
	switch ctx {
	case ContextPresentation:
		return FitPoor, "Slides of bullet points reduce audience recall; " +
			"visuals or a short narrative may be more persuasive than a bulleted list."

	case ContextReference:
		if itemCount >= hardListLimit {
			return FitGood, "Reference lists are scanned rather than read; " +
				"group this many items into labelled sections so readers can jump to what they need."
		}
		return FitGood, ""

	default:
		inRange := itemCount >= minListItems && itemCount <= maxListItems
		switch {
		case inRange && depth <= 2:
			return FitExcellent, ""
		case (itemCount > maxListItems && itemCount < hardListLimit) || (inRange && depth == 3):
			return FitGood, "Close to the recommended shape for documents; " +
				"trimming to 3-7 items with at most two levels would make it easier to absorb."
		case itemCount < minListItems:
			return FitFair, "With fewer than three points, a sentence or short paragraph often reads better in a document."
		default:
			return FitFair, "Long or deeply nested lists are hard to follow in running prose; " +
				"split them into sections or convert parts into paragraphs."
		}
	}
}
