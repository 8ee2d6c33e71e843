package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/lvroute/internal/network"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	net       *network.Network
	version   string
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(n *network.Network, version string) *HealthHandler {
	return &HealthHandler{net: n, version: version, startTime: time.Now()}
}

type healthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Nodes         int     `json:"nodes"`
	Edges         int     `json:"edges"`
	Components    int     `json:"components"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// Liveness handles GET /healthz.
func (h *HealthHandler) Liveness(c *gin.Context) {
	g := h.net.Graph()
	c.JSON(http.StatusOK, healthResponse{
		Status:        "ok",
		Version:       h.version,
		Nodes:         g.NodeCount(),
		Edges:         g.EdgeCount(),
		Components:    len(h.net.Components()),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}
