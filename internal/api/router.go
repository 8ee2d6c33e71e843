// Package api provides the HTTP surface consumed by the map UI.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvroute/internal/network"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log     *logrus.Logger
	Network *network.Network
	Version string
	// DefaultFrom and DefaultTo are advertised to the UI as preselected places.
	DefaultFrom string
	DefaultTo   string
}

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(PrometheusMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all route handlers.
func registerRoutes(r *gin.Engine, deps *RouterDeps) {
	health := NewHealthHandler(deps.Network, deps.Version)
	routes := NewRouteHandler(deps.Network, deps.Log, deps.DefaultFrom, deps.DefaultTo)

	r.GET("/healthz", health.Liveness)

	v1 := r.Group("/api/v1")
	v1.GET("/nodes", routes.Nodes)
	v1.GET("/edges", routes.Edges)
	v1.GET("/route", routes.Route)
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(r, deps)
	registerRoutes(r, deps)

	return r
}
