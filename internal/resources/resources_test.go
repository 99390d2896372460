package resources

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HendryAvila/bulletcheck/internal/analysis"
	"github.com/HendryAvila/bulletcheck/internal/config"
	"github.com/HendryAvila/bulletcheck/internal/schemas"
)

func readText(t *testing.T, contents []mcp.ResourceContents) mcp.TextResourceContents {
	t.Helper()
	require.Len(t, contents, 1)
	tc, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok, "expected TextResourceContents, got %T", contents[0])
	return tc
}

func readReq(uri string) mcp.ReadResourceRequest {
	req := mcp.ReadResourceRequest{}
	req.Params.URI = uri
	return req
}

func TestHandleRules(t *testing.T) {
	h := NewHandler(config.Default())

	contents, err := h.HandleRules(context.Background(), readReq(RulesURI))
	require.NoError(t, err)

	tc := readText(t, contents)
	assert.Equal(t, RulesURI, tc.URI)
	assert.Equal(t, "application/json", tc.MIMEType)

	var rules []analysis.RuleInfo
	require.NoError(t, json.Unmarshal([]byte(tc.Text), &rules))
	assert.Equal(t, analysis.Rules(), rules)
}

func TestHandleRules_CitationsDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Validation.EnableResearchCitations = false

	contents, err := NewHandler(cfg).HandleRules(context.Background(), readReq(RulesURI))
	require.NoError(t, err)

	var rules []analysis.RuleInfo
	require.NoError(t, json.Unmarshal([]byte(readText(t, contents).Text), &rules))
	for _, r := range rules {
		assert.Empty(t, r.ResearchBasis, "rule %s", r.ID)
	}
}

func TestHandleConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Validation.StrictMode = true

	contents, err := NewHandler(cfg).HandleConfig(context.Background(), readReq(ConfigURI))
	require.NoError(t, err)

	var got config.BulletConfig
	require.NoError(t, json.Unmarshal([]byte(readText(t, contents).Text), &got))
	assert.Equal(t, cfg, got)
}

func TestHandleSchema(t *testing.T) {
	contents, err := NewHandler(config.Default()).HandleSchema(context.Background(), readReq(schemas.AnalysisURI))
	require.NoError(t, err)

	tc := readText(t, contents)
	assert.Equal(t, "application/schema+json", tc.MIMEType)
	assert.JSONEq(t, string(schemas.AnalysisSchema()), tc.Text)
}

func TestResourceDefinitions(t *testing.T) {
	h := NewHandler(config.Default())
	for uri, res := range map[string]mcp.Resource{
		RulesURI:            h.RulesResource(),
		ConfigURI:           h.ConfigResource(),
		schemas.AnalysisURI: h.SchemaResource(),
	} {
		assert.Equal(t, uri, res.URI)
		assert.NotEmpty(t, res.Name)
		assert.NotEmpty(t, res.Description)
	}
}
