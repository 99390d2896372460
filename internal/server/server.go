// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it builds the tools, prompts and resources
// from the loaded configuration and registers them. No business logic lives
// here, only wiring.
package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/HendryAvila/bulletcheck/internal/config"
	"github.com/HendryAvila/bulletcheck/internal/prompts"
	"github.com/HendryAvila/bulletcheck/internal/resources"
	"github.com/HendryAvila/bulletcheck/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Name is the MCP server name advertised to clients.
const Name = "bulletcheck"

// New creates and configures the MCP server with all tools, prompts and
// resources registered. A nil logger disables logging.
func New(cfg config.BulletConfig, logger *zap.Logger) *server.MCPServer {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := server.NewMCPServer(
		Name,
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
		server.WithHooks(loggingHooks(logger)),
	)

	// --- Register tools ---

	analyzeTool := tools.NewAnalyzeTool(cfg, logger)
	s.AddTool(analyzeTool.Definition(), analyzeTool.Handle)

	rulesTool := tools.NewRulesTool(cfg)
	s.AddTool(rulesTool.Definition(), rulesTool.Handle)

	// --- Register prompts ---

	reviewPrompt := prompts.NewReviewPrompt()
	s.AddPrompt(reviewPrompt.Definition(), reviewPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(cfg)
	s.AddResource(resourceHandler.RulesResource(), resourceHandler.HandleRules)
	s.AddResource(resourceHandler.ConfigResource(), resourceHandler.HandleConfig)
	s.AddResource(resourceHandler.SchemaResource(), resourceHandler.HandleSchema)

	logger.Info("server ready",
		zap.String("version", Version),
		zap.Bool("strict_mode", cfg.Validation.StrictMode),
		zap.Bool("research_citations", cfg.Validation.EnableResearchCitations),
	)
	return s
}

// loggingHooks logs every request at debug level and every failure at
// error level.
func loggingHooks(logger *zap.Logger) *server.Hooks {
	hooks := &server.Hooks{}
	hooks.AddBeforeAny(func(ctx context.Context, id any, method mcp.MCPMethod, message any) {
		logger.Debug("request", zap.String("method", string(method)), zap.Any("id", id))
	})
	hooks.AddOnError(func(ctx context.Context, id any, method mcp.MCPMethod, message any, err error) {
		logger.Error("request failed", zap.String("method", string(method)), zap.Any("id", id), zap.Error(err))
	})
	return hooks
}

// serverInstructions returns the system instructions that tell the AI
// how to use the server.
func serverInstructions() string {
	return `You have access to bulletcheck, a readability analyzer for bulleted lists.

## WHEN TO USE IT

Run bullets_analyze before you hand the user any list that matters:
release notes, meeting summaries, slide outlines, onboarding checklists,
README feature lists. Skip it for throwaway lists in casual chat.

## HOW TO USE IT

1. Call bullets_rules once if you need a reminder of what is scored.
2. Call bullets_analyze with either 'items' (one list) or 'sections'
   (titled lists in one document). Never both.
3. Set 'context' to where the list will be read:
   - document: prose documents and READMEs (default)
   - presentation: slides; research favors visuals over bullets here
   - reference: scannable lookup material, longer lists are fine
4. Fix errors first, then warnings. The response lists the top three
   improvements in priority order.
5. Re-run until the grade is B or better, then show the user the list.

## SCORING

Seven rules add up to 100 points: LIST_LENGTH 20, HIERARCHY 15,
LINE_LENGTH 15, SERIAL_POSITION 10, STRUCTURE 20, FIRST_WORDS 10,
FORMATTING 10. Grades: A >= 90, B >= 80, C >= 70, D >= 60, F below 60.

## WHAT MAKES A GOOD LIST

- 3 to 7 items, at most two levels deep
- 40 to 80 characters per line
- Every item starts the same way (all verbs, or all nouns)
- No two items share their first two words
- Consistent capitalization and end punctuation
- Mark critical items importance=high and put them first or last`
}
