package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/bulletcheck/internal/analysis"
	"github.com/HendryAvila/bulletcheck/internal/config"
	"github.com/HendryAvila/bulletcheck/internal/report"
)

// RulesTool handles the bullets_rules MCP tool.
type RulesTool struct {
	cfg config.BulletConfig
}

// NewRulesTool creates a RulesTool.
func NewRulesTool(cfg config.BulletConfig) *RulesTool {
	return &RulesTool{cfg: cfg}
}

// Definition returns the MCP tool definition for registration.
func (t *RulesTool) Definition() mcp.Tool {
	return mcp.NewTool("bullets_rules",
		mcp.WithDescription(
			"List the readability rules bullets_analyze applies, with their point values, "+
				"what each one checks and the research behind it. Call this before drafting a list "+
				"to write it right the first time.",
		),
		mcp.WithString("format",
			mcp.Description("Response format: 'markdown' (default) or 'json'."),
			mcp.Enum(FormatMarkdown, FormatJSON),
		),
	)
}

// Handle processes the bullets_rules tool call.
func (t *RulesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rules := analysis.Rules()
	citations := t.cfg.Validation.EnableResearchCitations

	switch format := req.GetString("format", FormatMarkdown); format {
	case FormatJSON:
		if !citations {
			for i := range rules {
				rules[i].ResearchBasis = ""
			}
		}
		data, err := json.MarshalIndent(rules, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling rules: %w", err)
		}
		return mcp.NewToolResultText(string(data)), nil
	case FormatMarkdown:
		return mcp.NewToolResultText(report.RulesMarkdown(rules, citations)), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("invalid format %q: must be 'markdown' or 'json'", format)), nil
	}
}
