package http

import (
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/memfsd/memfsd/internal/service"
	"github.com/memfsd/memfsd/internal/types"
)

// Handlers contains all HTTP handlers.
type Handlers struct {
	registry *service.Registry
}

// NewHandlers creates a new handler set.
func NewHandlers(registry *service.Registry) *Handlers {
	return &Handlers{registry: registry}
}

// Root handles the health check.
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "memfsd",
		"version": "0.1.0",
	})
}

// ListServices returns all registered service definitions.
func (h *Handlers) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": h.registry.List(nil)})
}

// Stats returns registry statistics.
func (h *Handlers) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.registry.Stats())
}

// Execute dispatches a tool execution request. The structured result is
// authoritative; transport-level errors are reserved for malformed
// requests and unknown tools.
func (h *Handlers) Execute(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params)
	if err != nil && result == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	body, merr := sonic.Marshal(result)
	if merr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": merr.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
