// Package tools implements the MCP tool handlers for bullet list analysis.
//
// Each tool follows the same shape:
//   - A struct holding its dependencies, injected via constructor
//   - Definition() returns the mcp.Tool schema
//   - Handle() processes the request and returns a result
//
// User mistakes come back as tool errors (IsError=true) so the assistant can
// correct its call. Go errors are reserved for internal failures.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// boolArg extracts a boolean argument from a tool request.
func boolArg(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}

// jsonArg returns the argument under key, decoding it first when the client
// sent structured data as a JSON string. Some MCP clients stringify array
// parameters.
func jsonArg(req mcp.CallToolRequest, key string) (any, bool, error) {
	v, ok := req.GetArguments()[key]
	if !ok || v == nil {
		return nil, false, nil
	}
	s, isString := v.(string)
	if !isString {
		return v, true, nil
	}

	var decoded any
	if err := json.Unmarshal([]byte(s), &decoded); err != nil {
		return nil, true, fmt.Errorf("'%s' must be an array (or a JSON-encoded array): %v", key, err)
	}
	return decoded, true, nil
}

