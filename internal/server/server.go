package server

import (
	"context"
	"net/http"
	"time"

	"github.com/farellandr/hostspot/config"
	"github.com/farellandr/hostspot/internal/handlers"
	"github.com/farellandr/hostspot/internal/helpers"
	"github.com/farellandr/hostspot/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type Server struct {
	engine *gin.Engine
	http   *http.Server
	logger logrus.FieldLogger
}

func New(cfg *config.Config, h *handlers.Handler, logger logrus.FieldLogger) *Server {
	gin.SetMode(cfg.GinMode)
	helpers.RegisterJSONFieldNames()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(middleware.MetricsMiddleware())

	setupRoutes(r, h)

	return &Server{
		engine: r,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.http.Shutdown(ctx)
}

func setupRoutes(r *gin.Engine, h *handlers.Handler) {
	r.GET("/healthz", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/signup/user/", h.SignupUser)
	r.POST("/signup/host/", h.SignupHost)
	r.POST("/login/", h.Login)
	r.GET("/export/", h.Export)

	listings := r.Group("/listings")
	{
		listings.GET("/", h.ListListings)
		listings.POST("/", h.CreateListing)
		listings.GET("/:id/", h.GetListing)
		listings.PUT("/:id/", h.UpdateListing)
		listings.PATCH("/:id/", h.PatchListing)
		listings.DELETE("/:id/", h.DeleteListing)
	}

	categories := r.Group("/categories")
	{
		categories.GET("/", h.ListCategories)
		categories.GET("/:id/", h.GetCategory)
		categories.DELETE("/:id/", h.DeleteCategory)
	}

	hosts := r.Group("/hosts")
	{
		hosts.GET("/", h.ListHosts)
		hosts.GET("/:id/", h.GetHost)
		hosts.PATCH("/:id/", h.PatchHost)
		hosts.DELETE("/:id/", h.DeleteHost)
	}
}
