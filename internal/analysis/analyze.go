package analysis

import (
	"math"

	"github.com/HendryAvila/bulletcheck/internal/config"
)

// Analyze validates raw decoded JSON and scores it. The only error it
// returns is *InputError.
func Analyze(raw any, cfg config.BulletConfig) (*Analysis, error) {
	in, err := ParseInput(raw)
	if err != nil {
		return nil, err
	}
	return AnalyzeInput(in, cfg), nil
}

// AnalyzeJSON decodes data and analyzes it.
func AnalyzeJSON(data []byte, cfg config.BulletConfig) (*Analysis, error) {
	in, err := ParseInputJSON(data)
	if err != nil {
		return nil, err
	}
	return AnalyzeInput(in, cfg), nil
}

// AnalyzeInput scores an already validated Input.
func AnalyzeInput(in *Input, cfg config.BulletConfig) *Analysis {
	ctx := in.Context
	if ctx == "" {
		ctx = ContextDocument
	}
	if in.Sectioned() {
		return analyzeSections(in.Sections, ctx, cfg.Validation)
	}
	return analyzeList(in.Items, ctx, cfg.Validation)
}

func analyzeList(items []Item, ctx Context, opts config.ValidationConfig) *Analysis {
	agg := Aggregate(evaluateAll(items, ctx), opts)
	depth := maxDepth(items)
	fit, feedback := EvaluateContextFit(ctx, len(items), depth)

	return &Analysis{
		OverallScore:    agg.OverallScore,
		Grade:           agg.Grade,
		Rules:           agg.Rules,
		Errors:          agg.Errors,
		Warnings:        agg.Warnings,
		Suggestions:     agg.Suggestions,
		Summary:         agg.Summary,
		TopImprovements: agg.TopImprovements,
		ItemCount:       len(items),
		MaxDepth:        depth,
		AvgLineLength:   avgLineLength(items),
		ContextFit:      fit,
		ContextFeedback: feedback,
	}
}

// avgLineLength averages character counts over every item, rounded to
// one decimal.
func avgLineLength(items []Item) float64 {
	total, n := 0, 0
	walk(items, func(item Item) {
		total += textLength(item.Text)
		n++
	})
	if n == 0 {
		return 0
	}
	return math.Round(float64(total)/float64(n)*10) / 10
}
