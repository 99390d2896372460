package tools

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/HendryAvila/bulletcheck/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// --- Test helpers ---

// makeReq builds a CallToolRequest with the given arguments.
func makeReq(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// isErrorResult checks if the result is a tool error.
func isErrorResult(result *mcp.CallToolResult) bool {
	return result != nil && result.IsError
}

// getResultText extracts the text content from a CallToolResult.
func getResultText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func newAnalyzeTool(cfg config.BulletConfig) *AnalyzeTool {
	return NewAnalyzeTool(cfg, zap.NewNop())
}

// goodItems is a list that passes every rule.
func goodItems() []interface{} {
	return []interface{}{
		map[string]interface{}{"text": "Review the quarterly budget with the finance team."},
		map[string]interface{}{"text": "Schedule interviews for the two open design roles."},
		map[string]interface{}{"text": "Plan the database migration for the billing service."},
		map[string]interface{}{"text": "Publish the release notes for version four today."},
	}
}

// --- helpers ---

func TestBoolArg(t *testing.T) {
	req := makeReq(map[string]interface{}{"yes": true, "str": "true"})

	if !boolArg(req, "yes", false) {
		t.Error("boolArg should read a JSON boolean")
	}
	if boolArg(req, "str", false) {
		t.Error("boolArg should ignore non-boolean values")
	}
	if !boolArg(req, "missing", true) {
		t.Error("boolArg should fall back to the default")
	}
}

func TestJSONArg(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]interface{}
		wantOK  bool
		wantErr bool
		wantLen int
	}{
		{"missing", map[string]interface{}{}, false, false, 0},
		{"null", map[string]interface{}{"items": nil}, false, false, 0},
		{"array", map[string]interface{}{"items": []interface{}{"a", "b"}}, true, false, 2},
		{"json string", map[string]interface{}{"items": `["a", "b", "c"]`}, true, false, 3},
		{"bad json string", map[string]interface{}{"items": `[oops`}, true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok, err := jsonArg(makeReq(tt.args), "items")
			if ok != tt.wantOK {
				t.Errorf("ok = %v, want %v", ok, tt.wantOK)
			}
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantLen > 0 {
				list, isList := v.([]interface{})
				if !isList || len(list) != tt.wantLen {
					t.Errorf("value = %#v, want list of %d", v, tt.wantLen)
				}
			}
		})
	}
}
