package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/HendryAvila/bulletcheck/internal/analysis"
	"github.com/HendryAvila/bulletcheck/internal/config"
	"github.com/HendryAvila/bulletcheck/internal/markdown"
	"github.com/HendryAvila/bulletcheck/internal/report"
	"github.com/HendryAvila/bulletcheck/internal/schemas"
)

// Output formats for bullets_analyze.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// itemSchema describes one bullet for clients that honor array item schemas.
var itemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"text":       map[string]any{"type": "string", "description": "The bullet text"},
		"children":   map[string]any{"type": "array", "description": "Nested bullets, same shape", "items": map[string]any{"type": "object"}},
		"importance": map[string]any{"type": "string", "enum": []string{"high", "medium", "low"}},
	},
	"required": []string{"text"},
}

var sectionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title":   map[string]any{"type": "string"},
		"items":   map[string]any{"type": "array", "items": itemSchema},
		"context": map[string]any{"type": "string", "enum": analysis.ContextValues()},
	},
	"required": []string{"title", "items"},
}

// AnalyzeTool handles the bullets_analyze MCP tool.
type AnalyzeTool struct {
	cfg    config.BulletConfig
	logger *zap.Logger
}

// NewAnalyzeTool creates an AnalyzeTool using cfg as the baseline
// configuration for every call.
func NewAnalyzeTool(cfg config.BulletConfig, logger *zap.Logger) *AnalyzeTool {
	return &AnalyzeTool{cfg: cfg, logger: logger.Named("bullets_analyze")}
}

// Definition returns the MCP tool definition for registration.
func (t *AnalyzeTool) Definition() mcp.Tool {
	return mcp.NewTool("bullets_analyze",
		mcp.WithDescription(
			"Score a bulleted list against seven research-backed readability rules "+
				"(list length, hierarchy depth, line length, serial position, parallel structure, "+
				"distinct first words, formatting) and return a 0-100 score, a letter grade, "+
				"issues by severity and the top improvements. Provide exactly one of 'items' for a single "+
				"list, 'sections' for a document with titled lists, or 'markdown' for raw markdown.",
		),
		mcp.WithArray("items",
			mcp.Description("The bullets of a single list. Each entry is {text, children?, importance?}; "+
				"a plain string is shorthand for {text}."),
			mcp.Items(itemSchema),
		),
		mcp.WithArray("sections",
			mcp.Description("Titled lists scored independently and averaged. Each entry is "+
				"{title, items, context?}."),
			mcp.Items(sectionSchema),
		),
		mcp.WithString("markdown",
			mcp.Description("Alternative to items/sections: a markdown bullet list. Indented bullets "+
				"become children and headings start sections."),
		),
		mcp.WithString("context",
			mcp.Description("Where the list will be read: 'document' (default), 'presentation' "+
				"(slides, where bullets are discouraged) or 'reference' (scannable lookup material)."),
			mcp.Enum(analysis.ContextValues()...),
		),
		mcp.WithBoolean("strict_mode",
			mcp.Description("Treat warnings as errors for this call. Defaults to the server configuration."),
		),
		mcp.WithString("detail_level",
			mcp.Description(
				"Level of detail: 'summary' (score, grade and top improvements only), "+
					"'standard' (default, every issue by severity), "+
					"'full' (adds the per-rule breakdown and research citations).",
			),
			mcp.Enum(report.DetailLevelValues()...),
		),
		mcp.WithString("format",
			mcp.Description("Response format: 'markdown' (default) or 'json' (the raw analysis object)."),
			mcp.Enum(FormatMarkdown, FormatJSON),
		),
	)
}

// Handle processes the bullets_analyze tool call.
func (t *AnalyzeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := rawInput(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	format := req.GetString("format", FormatMarkdown)
	if format != FormatMarkdown && format != FormatJSON {
		return mcp.NewToolResultError(fmt.Sprintf("invalid format %q: must be 'markdown' or 'json'", format)), nil
	}

	cfg := t.cfg
	cfg.Validation.StrictMode = boolArg(req, "strict_mode", cfg.Validation.StrictMode)

	start := time.Now()
	res, err := analysis.Analyze(raw, cfg)
	if err != nil {
		var inErr *analysis.InputError
		if errors.As(err, &inErr) {
			t.logger.Debug("rejected input", zap.String("reason", inErr.Message))
			return mcp.NewToolResultError(inErr.Message), nil
		}
		return nil, fmt.Errorf("analyzing list: %w", err)
	}

	t.logger.Debug("analyzed list",
		zap.Int("score", res.OverallScore),
		zap.String("grade", string(res.Grade)),
		zap.Int("items", res.ItemCount),
		zap.Int("sections", len(res.SectionScores)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if format == FormatJSON {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling analysis: %w", err)
		}
		if err := schemas.ValidateAnalysis(data); err != nil {
			t.logger.Warn("analysis does not match published schema", zap.Error(err))
		}
		return mcp.NewToolResultText(string(data)), nil
	}

	text := report.Markdown(res, req.GetString("detail_level", ""))
	text += report.TokenFooter(report.EstimateTokens(text))
	return mcp.NewToolResultText(text), nil
}

// rawInput rebuilds the analysis input object from tool arguments. Only
// keys the caller actually sent are copied, so the validator can tell a
// missing field from an empty one.
func rawInput(req mcp.CallToolRequest) (map[string]any, error) {
	args := req.GetArguments()
	if src, ok := args["markdown"].(string); ok && src != "" {
		if args["items"] != nil || args["sections"] != nil {
			return nil, errors.New("use 'markdown' on its own, without 'items' or 'sections'")
		}
		raw := markdown.Parse([]byte(src))
		if c, ok := args["context"]; ok && c != nil {
			raw["context"] = c
		}
		return raw, nil
	}

	raw := make(map[string]any, 3)
	for _, key := range []string{"items", "sections"} {
		v, ok, err := jsonArg(req, key)
		if err != nil {
			return nil, err
		}
		if ok {
			raw[key] = v
		}
	}
	if v, ok := args["context"]; ok && v != nil {
		raw["context"] = v
	}
	return raw, nil
}
