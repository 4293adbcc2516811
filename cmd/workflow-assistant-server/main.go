// Package main provides the HTTP validation service: the same engine
// the editor embeds, exposed behind the remote-authority wire contract.
package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/KaushalJainAI/workflow-assistant-sub000/pkg/validation"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	cfg := loadConfig()

	if cfg.GinReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	var backend *validation.BackendClient
	if cfg.BackendURL != "" {
		backend = validation.NewBackendClient(cfg.BackendURL,
			validation.WithHTTPClient(&http.Client{Timeout: cfg.BackendTimeout}))
	}
	handlers := NewHandlers(validation.NewRunner(backend))

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", handlers.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/v1/pipelines/validate", handlers.ValidatePipeline)

	slog.Info("starting workflow-assistant server", "addr", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
