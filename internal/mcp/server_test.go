package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"reinfolib-api/internal/tools"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockToolRegistry is a mock implementation of the ToolRegistry interface
type MockToolRegistry struct {
	mock.Mock
}

func (m *MockToolRegistry) Definitions() []tools.Definition {
	args := m.Called()
	defs, _ := args.Get(0).([]tools.Definition)
	return defs
}

func (m *MockToolRegistry) Call(ctx context.Context, name string, raw json.RawMessage) (tools.Result, error) {
	args := m.Called(ctx, name, raw)
	return args.Get(0).(tools.Result), args.Error(1)
}

type rpcReply struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

func serve(t *testing.T, registry ToolRegistry, lines ...string) []rpcReply {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")

	require.NoError(t, NewServer(registry).Serve(context.Background(), in, &out))

	var replies []rpcReply
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if line == "" {
			continue
		}
		var r rpcReply
		require.NoError(t, json.Unmarshal([]byte(line), &r), line)
		replies = append(replies, r)
	}
	return replies
}

func TestServer_Initialize(t *testing.T) {
	replies := serve(t, new(MockToolRegistry),
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{}}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":"p","method":"ping"}`,
	)
	require.Len(t, replies, 2)

	var init struct {
		ProtocolVersion string `json:"protocolVersion"`
		ServerInfo      struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"serverInfo"`
		Capabilities map[string]json.RawMessage `json:"capabilities"`
	}
	require.NoError(t, json.Unmarshal(replies[0].Result, &init))
	assert.Equal(t, "2.0", replies[0].JSONRPC)
	assert.JSONEq(t, "1", string(replies[0].ID))
	assert.Equal(t, ServerName, init.ServerInfo.Name)
	assert.Equal(t, ProtocolVersion, init.ProtocolVersion)
	assert.Contains(t, init.Capabilities, "tools")

	assert.JSONEq(t, `"p"`, string(replies[1].ID))
	assert.JSONEq(t, `{}`, string(replies[1].Result))
}

func TestServer_ToolsList(t *testing.T) {
	registry := new(MockToolRegistry)
	registry.On("Definitions").Return([]tools.Definition{{
		Name:        tools.GetMunicipalities,
		Description: "Get list of municipalities within a prefecture.",
		InputSchema: json.RawMessage(`{"type":"object"}`),
	}})

	replies := serve(t, registry, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)
	require.Len(t, replies, 1)
	assert.JSONEq(t, `{"tools":[{"name":"get_municipalities","description":"Get list of municipalities within a prefecture.","inputSchema":{"type":"object"}}]}`,
		string(replies[0].Result))
}

func TestServer_ToolsCall(t *testing.T) {
	tests := []struct {
		name           string
		line           string
		setup          func(r *MockToolRegistry)
		expectedResult string
		expectedCode   int
	}{
		{
			name: "success",
			line: `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"get_municipalities","arguments":{"prefectureCode":"13"}}}`,
			setup: func(r *MockToolRegistry) {
				r.On("Call", mock.Anything, "get_municipalities", json.RawMessage(`{"prefectureCode":"13"}`)).
					Return(tools.Result{Content: []tools.Content{{Type: "text", Text: "[]"}}}, nil)
			},
			expectedResult: `{"content":[{"type":"text","text":"[]"}]}`,
		},
		{
			name: "tool failure stays in band",
			line: `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"search_transactions","arguments":{}}}`,
			setup: func(r *MockToolRegistry) {
				r.On("Call", mock.Anything, "search_transactions", json.RawMessage(`{}`)).
					Return(tools.Result{Content: []tools.Content{{Type: "text", Text: "Error: Invalid parameters"}}, IsError: true}, nil)
			},
			expectedResult: `{"content":[{"type":"text","text":"Error: Invalid parameters"}],"isError":true}`,
		},
		{
			name: "unknown tool",
			line: `{"jsonrpc":"2.0","id":5,"method":"tools/call","params":{"name":"nope"}}`,
			setup: func(r *MockToolRegistry) {
				r.On("Call", mock.Anything, "nope", json.RawMessage(nil)).
					Return(tools.Result{Content: []tools.Content{{Type: "text", Text: "Error: Unknown tool: nope"}}, IsError: true},
						fmt.Errorf("%w: nope", tools.ErrUnknownTool))
			},
			expectedResult: `{"content":[{"type":"text","text":"Error: Unknown tool: nope"}],"isError":true}`,
		},
		{
			name:         "missing tool name",
			line:         `{"jsonrpc":"2.0","id":6,"method":"tools/call","params":{}}`,
			expectedCode: codeInvalidParams,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := new(MockToolRegistry)
			if tt.setup != nil {
				tt.setup(registry)
			}

			replies := serve(t, registry, tt.line)
			require.Len(t, replies, 1)
			if tt.expectedCode != 0 {
				require.NotNil(t, replies[0].Error)
				assert.Equal(t, tt.expectedCode, replies[0].Error.Code)
				return
			}
			assert.Nil(t, replies[0].Error)
			assert.JSONEq(t, tt.expectedResult, string(replies[0].Result))
			registry.AssertExpectations(t)
		})
	}
}

func TestServer_ProtocolErrors(t *testing.T) {
	replies := serve(t, new(MockToolRegistry),
		`{not json`,
		``,
		`{"jsonrpc":"2.0","id":7,"method":"resources/list"}`,
		`{"jsonrpc":"2.0","method":"notifications/unknown"}`,
		`{"jsonrpc":"2.0","id":8}`,
	)
	require.Len(t, replies, 3)

	require.NotNil(t, replies[0].Error)
	assert.Equal(t, codeParseError, replies[0].Error.Code)
	assert.Contains(t, []string{"", "null"}, string(replies[0].ID))

	require.NotNil(t, replies[1].Error)
	assert.Equal(t, codeMethodNotFound, replies[1].Error.Code)
	assert.Contains(t, replies[1].Error.Message, "resources/list")

	require.NotNil(t, replies[2].Error)
	assert.Equal(t, codeInvalidRequest, replies[2].Error.Code)
}

func TestServer_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := NewServer(new(MockToolRegistry)).Serve(ctx, strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"ping"}`+"\n"), &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}
