// Package prompts implements MCP prompt handlers for bullet list review.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/bulletcheck/internal/analysis"
)

// ReviewPrompt handles the bullets-review MCP prompt.
// It asks the AI to score a list, fix what the analysis reports and
// re-score until the list reaches the target grade.
type ReviewPrompt struct{}

// NewReviewPrompt creates a ReviewPrompt.
func NewReviewPrompt() *ReviewPrompt {
	return &ReviewPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *ReviewPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("bullets-review",
		mcp.WithPromptDescription(
			"Review a bulleted list for readability. The assistant scores it with bullets_analyze, "+
				"rewrites it to address the top improvements and re-scores until it reaches the target grade.",
		),
		mcp.WithArgument("list",
			mcp.ArgumentDescription("The list to review, one bullet per line. Indent with two spaces for nesting."),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("context",
			mcp.ArgumentDescription("Where the list will be read: document (default), presentation or reference."),
		),
		mcp.WithArgument("target_grade",
			mcp.ArgumentDescription("Stop once the list reaches this grade (A-D). Default: B"),
		),
	)
}

// Handle processes the bullets-review prompt request.
func (p *ReviewPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	args := req.Params.Arguments

	list := strings.TrimSpace(args["list"])
	if list == "" {
		return nil, fmt.Errorf("argument 'list' is required")
	}

	listCtx := string(analysis.ContextDocument)
	if c := args["context"]; c != "" {
		listCtx = c
	}

	target := "B"
	switch g := strings.ToUpper(strings.TrimSpace(args["target_grade"])); g {
	case "A", "B", "C", "D":
		target = g
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Review a %s list (target grade %s)", listCtx, target),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"Please review this bulleted list for readability:\n\n%s\n\n"+
						"1. Run `bullets_analyze` with the list as 'markdown', context='%s' and detail_level='standard'\n"+
						"2. If the grade is below %s, rewrite the list to address the top improvements, "+
						"keeping the meaning of every item\n"+
						"3. Re-run `bullets_analyze` on the rewrite and repeat until the grade is %s or better\n"+
						"4. Show me the final list, its score and a one-line note for each change you made",
					list, listCtx, target, target,
				)),
			},
		},
	}, nil
}
