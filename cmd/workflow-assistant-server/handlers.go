package main

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/KaushalJainAI/workflow-assistant-sub000/internal/app/dto"
	"github.com/KaushalJainAI/workflow-assistant-sub000/pkg/validation"
)

// Handlers contains the HTTP handlers of the validation service.
type Handlers struct {
	runner   *validation.Runner
	validate *validator.Validate
}

// NewHandlers creates handlers around the given runner.
func NewHandlers(runner *validation.Runner) *Handlers {
	return &Handlers{runner: runner, validate: validator.New()}
}

// ValidatePipeline handles POST /v1/pipelines/validate. Malformed
// bodies are answered with a report carrying a single error finding;
// the endpoint never answers a validation request with a bare 500.
func (h *Handlers) ValidatePipeline(c *gin.Context) {
	requestID := uuid.NewString()
	log := slog.With("request_id", requestID)
	c.Header("X-Request-ID", requestID)

	var req dto.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("malformed validation request", "error", err)
		c.JSON(http.StatusOK, &dto.ValidateResponse{
			IsValid: false,
			Errors: []dto.Finding{{
				Type:    string(validation.SeverityError),
				Code:    string(validation.CodeMalformedInput),
				Message: dto.ErrMalformedBody.Error() + ": " + err.Error(),
			}},
			Warnings: []dto.Finding{},
			Info:     []dto.Finding{},
			Summary:  "❌ 1 error • 0 warnings",
		})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		log.Warn("invalid validation request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": dto.ErrInvalidRequest.Error(), "detail": err.Error()})
		return
	}

	result := h.runner.Validate(c.Request.Context(), req.Nodes, req.Edges, req.Options())
	log.Info("pipeline validated",
		"nodes", len(req.Nodes),
		"edges", len(req.Edges),
		"valid", result.IsValid,
		"errors", len(result.Errors),
		"warnings", len(result.Warnings))

	c.JSON(http.StatusOK, dto.FromResult(result))
}

// Healthz handles GET /healthz.
func (h *Handlers) Healthz(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
