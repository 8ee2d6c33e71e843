package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/internal/network"
)

// RouteHandler serves the network catalog and route queries.
type RouteHandler struct {
	net         *network.Network
	log         *logrus.Logger
	defaultFrom string
	defaultTo   string
}

// NewRouteHandler creates a RouteHandler.
func NewRouteHandler(n *network.Network, log *logrus.Logger, defaultFrom, defaultTo string) *RouteHandler {
	return &RouteHandler{net: n, log: log, defaultFrom: defaultFrom, defaultTo: defaultTo}
}

type nodeJSON struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type nodesResponse struct {
	Nodes       []nodeJSON `json:"nodes"`
	DefaultFrom string     `json:"default_from,omitempty"`
	DefaultTo   string     `json:"default_to,omitempty"`
}

type edgeJSON struct {
	ID     string  `json:"id"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// routeResponse omits total_weight when no route exists; +Inf is not valid JSON.
type routeResponse struct {
	From             string   `json:"from"`
	To               string   `json:"to"`
	Found            bool     `json:"found"`
	TotalWeight      *float64 `json:"total_weight,omitempty"`
	Path             []string `json:"path"`
	ElapsedMS        float64  `json:"elapsed_ms"`
	HighlightedEdges []string `json:"highlighted_edges"`
}

// Nodes handles GET /api/v1/nodes.
func (h *RouteHandler) Nodes(c *gin.Context) {
	nodes := h.net.Nodes()
	out := make([]nodeJSON, len(nodes))
	for i, n := range nodes {
		out[i] = nodeJSON{ID: n.ID, Label: n.Label}
	}
	c.JSON(http.StatusOK, nodesResponse{Nodes: out, DefaultFrom: h.defaultFrom, DefaultTo: h.defaultTo})
}

// Edges handles GET /api/v1/edges.
func (h *RouteHandler) Edges(c *gin.Context) {
	edges := h.net.Edges()
	out := make([]edgeJSON, len(edges))
	for i, e := range edges {
		out[i] = edgeJSON{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight}
	}
	c.JSON(http.StatusOK, gin.H{"edges": out})
}

// Route handles GET /api/v1/route?from=&to=.
func (h *RouteHandler) Route(c *gin.Context) {
	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	if from == "" || to == "" {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "query parameters 'from' and 'to' are required")
		return
	}

	rep, err := h.net.Query(from, to)
	if err != nil {
		if network.IsUnknownPlace(err) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
			return
		}
		h.log.WithError(err).Error("route query failed")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "route query failed")
		return
	}

	c.JSON(http.StatusOK, newRouteResponse(from, to, rep, h.net.Edges()))
}

func newRouteResponse(from, to string, rep network.Report, edges []core.Edge) routeResponse {
	resp := routeResponse{
		From:             from,
		To:               to,
		Found:            rep.Found,
		Path:             []string{},
		ElapsedMS:        rep.ElapsedMillis(),
		HighlightedEdges: network.HighlightedIDs(rep.Result, edges),
	}
	if rep.Found {
		total := rep.TotalWeight
		resp.TotalWeight = &total
		resp.Path = rep.Path
	}

	return resp
}
