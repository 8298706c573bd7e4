// Package mcp serves the tool registry over line-delimited JSON-RPC 2.0, the
// stdio transport used by Model Context Protocol clients.
package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"reinfolib-api/internal/tools"

	"github.com/rs/zerolog/log"
)

const (
	ServerName      = "real-estate-mcp-server"
	ServerVersion   = "1.0.0"
	ProtocolVersion = "2024-11-05"

	maxMessageSize = 4 * 1024 * 1024
)

// JSON-RPC error codes.
const (
	codeParseError     = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

// ToolRegistry is the part of tools.Registry the server needs.
type ToolRegistry interface {
	Definitions() []tools.Definition
	Call(ctx context.Context, name string, args json.RawMessage) (tools.Result, error)
}

type request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type callParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// Server answers MCP requests from a single client.
type Server struct {
	registry ToolRegistry

	mu sync.Mutex
}

func NewServer(registry ToolRegistry) *Server {
	return &Server{registry: registry}
}

// Serve reads requests from r until EOF or ctx is done and writes responses to w.
// Requests are handled in order; notifications get no reply.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxMessageSize)

	log.Info().Str("server", ServerName).Msg("mcp: serving on stdio")

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			log.Warn().Err(err).Msg("mcp: malformed message")
			if err := s.write(w, response{ID: json.RawMessage("null"), Error: &rpcError{Code: codeParseError, Message: "Parse error"}}); err != nil {
				return err
			}
			continue
		}

		resp, reply := s.dispatch(ctx, req)
		if !reply {
			continue
		}
		if err := s.write(w, resp); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("mcp: read failed: %w", err)
	}
	return nil
}

func (s *Server) dispatch(ctx context.Context, req request) (response, bool) {
	notification := len(req.ID) == 0 || string(req.ID) == "null"
	resp := response{ID: req.ID}

	if req.Method == "" {
		if notification {
			return resp, false
		}
		resp.Error = &rpcError{Code: codeInvalidRequest, Message: "Invalid request"}
		return resp, true
	}

	log.Debug().Str("method", req.Method).RawJSON("id", idOrNull(req.ID)).Msg("mcp: request")

	switch req.Method {
	case "initialize":
		resp.Result = map[string]any{
			"protocolVersion": ProtocolVersion,
			"capabilities":    map[string]any{"tools": map[string]any{}},
			"serverInfo":      map[string]any{"name": ServerName, "version": ServerVersion},
		}
	case "ping":
		resp.Result = map[string]any{}
	case "tools/list":
		resp.Result = map[string]any{"tools": s.registry.Definitions()}
	case "tools/call":
		result, rpcErr := s.callTool(ctx, req.Params)
		if rpcErr != nil {
			resp.Error = rpcErr
		} else {
			resp.Result = result
		}
	default:
		if notification {
			return resp, false
		}
		resp.Error = &rpcError{Code: codeMethodNotFound, Message: fmt.Sprintf("Method not found: %s", req.Method)}
	}

	return resp, !notification
}

func (s *Server) callTool(ctx context.Context, raw json.RawMessage) (tools.Result, *rpcError) {
	var params callParams
	if err := json.Unmarshal(raw, &params); err != nil || params.Name == "" {
		return tools.Result{}, &rpcError{Code: codeInvalidParams, Message: "Invalid params: tool name is required"}
	}

	result, err := s.registry.Call(ctx, params.Name, params.Arguments)
	if err != nil && !errors.Is(err, tools.ErrUnknownTool) {
		return tools.Result{}, &rpcError{Code: codeInvalidParams, Message: err.Error()}
	}
	if err != nil {
		log.Warn().Str("tool", params.Name).Msg("mcp: unknown tool")
	}
	return result, nil
}

func (s *Server) write(w io.Writer, resp response) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp.JSONRPC = "2.0"
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("mcp: failed to encode response: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("mcp: write failed: %w", err)
	}
	return nil
}

func idOrNull(id json.RawMessage) []byte {
	if len(id) == 0 {
		return []byte("null")
	}
	return id
}
