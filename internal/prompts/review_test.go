package prompts

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func promptText(t *testing.T, res *mcp.GetPromptResult) string {
	t.Helper()
	if len(res.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(res.Messages))
	}
	tc, ok := res.Messages[0].Content.(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Messages[0].Content)
	}
	return tc.Text
}

func TestReviewPrompt_Definition(t *testing.T) {
	def := NewReviewPrompt().Definition()
	if def.Name != "bullets-review" {
		t.Errorf("name = %q, want bullets-review", def.Name)
	}
	if len(def.Arguments) != 3 {
		t.Fatalf("expected 3 arguments, got %d", len(def.Arguments))
	}
	if !def.Arguments[0].Required {
		t.Error("'list' should be required")
	}
}

func TestReviewPrompt_Handle(t *testing.T) {
	tests := []struct {
		name       string
		args       map[string]string
		wantCtx    string
		wantTarget string
	}{
		{"defaults", map[string]string{"list": "- one\n- two"}, "document", "B"},
		{"explicit", map[string]string{"list": "- one", "context": "reference", "target_grade": "a"}, "reference", "A"},
		{"bad grade falls back", map[string]string{"list": "- one", "target_grade": "F"}, "document", "B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mcp.GetPromptRequest{}
			req.Params.Arguments = tt.args

			res, err := NewReviewPrompt().Handle(context.Background(), req)
			if err != nil {
				t.Fatalf("Handle: %v", err)
			}

			text := promptText(t, res)
			if !strings.Contains(text, "bullets_analyze") {
				t.Error("prompt should reference bullets_analyze")
			}
			if !strings.Contains(text, "context='"+tt.wantCtx+"'") {
				t.Errorf("prompt should pass context %q:\n%s", tt.wantCtx, text)
			}
			if !strings.Contains(res.Description, "target grade "+tt.wantTarget) {
				t.Errorf("description = %q, want target %s", res.Description, tt.wantTarget)
			}
			if !strings.Contains(text, tt.args["list"]) {
				t.Error("prompt should embed the list")
			}
		})
	}
}

func TestReviewPrompt_Handle_MissingList(t *testing.T) {
	req := mcp.GetPromptRequest{}
	if _, err := NewReviewPrompt().Handle(context.Background(), req); err == nil {
		t.Fatal("expected error when 'list' is missing")
	}
}
