package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/meeting-analyzer/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	analysisHandler *Analysis
	metricsHandler  http.Handler
}

// NewRouter creates a new router with all handlers. metricsHandler may be nil.
func NewRouter(cfg *config.Config, analysisHandler *Analysis, metricsHandler http.Handler) *Router {
	return &Router{
		cfg:             cfg,
		analysisHandler: analysisHandler,
		metricsHandler:  metricsHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API docs
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	if rt.metricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(rt.metricsHandler))
	}

	api := e.Group("/api")
	rt.setupAnalysisRoutes(api)
}

// setupAnalysisRoutes configures transcript analysis routes
func (rt *Router) setupAnalysisRoutes(g *echo.Group) {
	g.POST("/analyze", rt.analysisHandler.Analyze)
	g.GET("/analyses", rt.analysisHandler.ListAnalyses)
	g.GET("/analysis/:id", rt.analysisHandler.GetAnalysis)
	g.DELETE("/analysis/:id", rt.analysisHandler.DeleteAnalysis)
}

// healthCheck returns health status
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, common.HealthResponse{Status: "ok"})
}
