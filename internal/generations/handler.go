package generations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resumegen-backend/internal/guidelines"
	"resumegen-backend/internal/prompt"
	"resumegen-backend/internal/shared/server/middleware"
	"resumegen-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the generation service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches generation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generations", h.create)
	rg.POST("/generations/preview", h.preview)
	rg.GET("/generations", h.list)
	rg.GET("/generations/:id", h.get)
	rg.GET("/options", h.options)
}

func (h *Handler) create(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	in, ok := h.bindCreate(c)
	if !ok {
		return
	}

	g, err := h.Svc.Create(c.Request.Context(), identity, in)
	if err != nil {
		h.writeServiceError(c, err, "failed to create generation")
		return
	}
	respond.JSON(c, http.StatusAccepted, g)
}

func (h *Handler) preview(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	in, ok := h.bindCreate(c)
	if !ok {
		return
	}

	g, err := h.Svc.Preview(c.Request.Context(), identity, in)
	if err != nil {
		h.writeServiceError(c, err, "failed to assemble prompt")
		return
	}
	respond.JSON(c, http.StatusOK, previewResponse{
		Kind:       g.Kind,
		Prompt:     g.Prompt,
		PromptHash: g.PromptHash,
		Warnings:   g.Warnings,
		Analysis:   g.Analysis,
		Options:    g.Options,
	})
}

func (h *Handler) get(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	g, err := h.Svc.Get(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err, "failed to load generation")
		return
	}
	respond.JSON(c, http.StatusOK, g)
}

func (h *Handler) list(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	limit := parseIntQuery(c, "limit", 20)
	offset := parseIntQuery(c, "offset", 0)

	items, err := h.Svc.List(c.Request.Context(), identity, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list generations", nil)
		return
	}
	if items == nil {
		items = []Generation{}
	}
	respond.JSON(c, http.StatusOK, listResponse{Generations: items})
}

func (h *Handler) options(c *gin.Context) {
	respond.JSON(c, http.StatusOK, guidelines.AvailableOptions())
}

func (h *Handler) bindCreate(c *gin.Context) (CreateInput, bool) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return CreateInput{}, false
	}

	kind, err := prompt.ParseKind(req.Kind)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return CreateInput{}, false
	}

	analyze := true
	if req.Analyze != nil {
		analyze = *req.Analyze
	}

	return CreateInput{
		Kind:           kind,
		JobDescription: req.JobDescription,
		Analyze:        analyze,
		Options:        req.Options,
	}, true
}

func (h *Handler) writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrProfileIncomplete):
		respond.Error(c, http.StatusConflict, "profile_incomplete", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "generation not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
