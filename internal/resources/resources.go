// Package resources implements MCP resource handlers for bullet list
// analysis.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (bullets://...) following MCP conventions.
package resources

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/bulletcheck/internal/analysis"
	"github.com/HendryAvila/bulletcheck/internal/config"
	"github.com/HendryAvila/bulletcheck/internal/schemas"
)

// Resource URIs.
const (
	RulesURI  = "bullets://rules"
	ConfigURI = "bullets://config"
)

// Handler serves the rule catalog, the effective configuration and the
// analysis schema.
type Handler struct {
	cfg config.BulletConfig
}

// NewHandler creates a resource Handler for the server's configuration.
func NewHandler(cfg config.BulletConfig) *Handler {
	return &Handler{cfg: cfg}
}

// RulesResource returns the MCP resource definition for the rule catalog.
func (h *Handler) RulesResource() mcp.Resource {
	return mcp.NewResource(
		RulesURI,
		"Readability Rules",
		mcp.WithResourceDescription("The seven readability rules with point values and research basis"),
		mcp.WithMIMEType(mimeJSON),
	)
}

// HandleRules returns the rule catalog as JSON.
func (h *Handler) HandleRules(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	rules := analysis.Rules()
	if !h.cfg.Validation.EnableResearchCitations {
		for i := range rules {
			rules[i].ResearchBasis = ""
		}
	}
	contents, err := jsonResource(req.Params.URI, rules)
	if err != nil {
		return nil, fmt.Errorf("marshaling rules: %w", err)
	}
	return contents, nil
}

// ConfigResource returns the MCP resource definition for the effective
// configuration.
func (h *Handler) ConfigResource() mcp.Resource {
	return mcp.NewResource(
		ConfigURI,
		"Effective Configuration",
		mcp.WithResourceDescription("Configuration the server analyzes with after file and environment overrides"),
		mcp.WithMIMEType(mimeJSON),
	)
}

// HandleConfig returns the effective configuration as JSON.
func (h *Handler) HandleConfig(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	contents, err := jsonResource(req.Params.URI, h.cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return contents, nil
}

// SchemaResource returns the MCP resource definition for the analysis
// result schema.
func (h *Handler) SchemaResource() mcp.Resource {
	return mcp.NewResource(
		schemas.AnalysisURI,
		"Analysis Result Schema",
		mcp.WithResourceDescription("JSON Schema of the object bullets_analyze returns with format=json"),
		mcp.WithMIMEType("application/schema+json"),
	)
}

// HandleSchema returns the embedded analysis schema.
func (h *Handler) HandleSchema(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/schema+json",
			Text:     string(schemas.AnalysisSchema()),
		},
	}, nil
}
