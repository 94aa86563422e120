package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	echohome "github.com/dilshankm/echo-home"
	"github.com/dilshankm/echo-home/pkg/server/dto"
	"github.com/dilshankm/echo-home/pkg/types"
)

// RetrieveHandler exposes the raw retrieval and analysis surfaces for
// diagnostics and downstream integrations.
type RetrieveHandler struct {
	coach echohome.Coach
}

// NewRetrieveHandler creates a new retrieve handler
func NewRetrieveHandler(coach echohome.Coach) *RetrieveHandler {
	return &RetrieveHandler{coach: coach}
}

// Retrieve handles POST /retrieve
func (h *RetrieveHandler) Retrieve(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	ctx := c.Request.Context()

	var entities types.QueryContext
	if qctx := req.QueryContext(); qctx != nil {
		entities = qctx.WithDefaults()
	} else {
		entities = h.coach.Analyze(ctx, req.Query)
	}

	result, err := h.coach.Retrieve(ctx, req.Query, &entities)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "retrieval_failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.RetrieveResponse{
		Result:       result,
		QueryContext: entities,
	})
}

// Analyze handles POST /analyze
func (h *RetrieveHandler) Analyze(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.AnalyzeResponse{
		QueryContext: h.coach.Analyze(c.Request.Context(), req.Query),
	})
}

// Stats handles GET /stats
func (h *RetrieveHandler) Stats(c *gin.Context) {
	stats, err := h.coach.Stats(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "stats_failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}

// respondError writes a structured error response
func respondError(c *gin.Context, code int, errType, message string) {
	c.JSON(code, dto.ErrorResponse{
		Error:   errType,
		Message: message,
		Code:    code,
	})
}
