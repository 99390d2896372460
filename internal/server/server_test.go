package server

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/HendryAvila/bulletcheck/internal/config"
)

// roundTrip sends each JSON-RPC message through a fresh server and
// returns the marshaled responses.
func roundTrip(t *testing.T, cfg config.BulletConfig, logger *zap.Logger, msgs ...string) []string {
	t.Helper()
	s := New(cfg, logger)
	ctx := context.Background()

	out := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		resp := s.HandleMessage(ctx, json.RawMessage(msg))
		data, err := json.Marshal(resp)
		require.NoError(t, err)
		out = append(out, string(data))
	}
	return out
}

const initializeMsg = `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"1.0"}}}`

func TestNew_RegistersEverything(t *testing.T) {
	resps := roundTrip(t, config.Default(), nil,
		initializeMsg,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
		`{"jsonrpc":"2.0","id":3,"method":"prompts/list"}`,
		`{"jsonrpc":"2.0","id":4,"method":"resources/list"}`,
	)

	assert.Contains(t, resps[0], Name)
	assert.Contains(t, resps[0], "bullets_analyze", "instructions should mention the analyze tool")

	assert.Contains(t, resps[1], `"bullets_analyze"`)
	assert.Contains(t, resps[1], `"bullets_rules"`)

	assert.Contains(t, resps[2], `"bullets-review"`)

	assert.Contains(t, resps[3], `"bullets://rules"`)
	assert.Contains(t, resps[3], `"bullets://config"`)
	assert.Contains(t, resps[3], `"bullets://schema/analysis"`)
}

func TestNew_AnalyzeOverJSONRPC(t *testing.T) {
	resps := roundTrip(t, config.Default(), nil,
		initializeMsg,
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"bullets_analyze","arguments":{"items":["deploy","deploy again"],"detail_level":"summary"}}}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"bullets_analyze","arguments":{}}}`,
	)

	assert.Contains(t, resps[1], "Bullet List Analysis")
	assert.NotContains(t, resps[1], `"isError":true`)

	assert.Contains(t, resps[2], `"isError":true`)
	assert.Contains(t, resps[2], "either `items` or `sections`")
}

func TestNew_LogsRequests(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	roundTrip(t, config.Default(), zap.New(core),
		initializeMsg,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
	)

	assert.Equal(t, 1, logs.FilterMessage("server ready").Len())
	assert.GreaterOrEqual(t, logs.FilterMessage("request").Len(), 2)
}
