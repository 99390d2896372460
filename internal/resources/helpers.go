package resources

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

const mimeJSON = "application/json"

// jsonResource marshals v as the single text content of a resource.
func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: mimeJSON,
			Text:     string(data),
		},
	}, nil
}
