package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"reinfolib-api/internal/tools"

	"github.com/gin-gonic/gin"
)

const maxToolArgsSize = 1 << 20

// ToolsHandler exposes the agent tool registry over HTTP
type ToolsHandler struct {
	registry ToolRegistry
}

// ToolRegistry interface for dependency injection
type ToolRegistry interface {
	Definitions() []tools.Definition
	Call(ctx context.Context, name string, args json.RawMessage) (tools.Result, error)
}

// NewToolsHandler creates a new tools handler
func NewToolsHandler(registry ToolRegistry) *ToolsHandler {
	return &ToolsHandler{registry: registry}
}

// ListTools handles GET /tools requests
//
//	@Summary	List agent tools
//	@Tags		tools
//	@Produce	json
//	@Success	200	{object}	map[string][]tools.Definition
//	@Router		/tools [get]
func (h *ToolsHandler) ListTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": h.registry.Definitions()})
}

// CallTool handles POST /tools/:name requests. The body holds the tool
// arguments; tool failures are reported in the result with isError set.
//
//	@Summary	Call an agent tool
//	@Tags		tools
//	@Accept		json
//	@Produce	json
//	@Param		name	path		string	true	"Tool name"
//	@Success	200		{object}	tools.Result
//	@Failure	404		{object}	tools.Result
//	@Router		/tools/{name} [post]
func (h *ToolsHandler) CallTool(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxToolArgsSize))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	result, err := h.registry.Call(c.Request.Context(), c.Param("name"), json.RawMessage(body))
	if errors.Is(err, tools.ErrUnknownTool) {
		c.JSON(http.StatusNotFound, result)
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
