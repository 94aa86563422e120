package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	echohome "github.com/dilshankm/echo-home"
	"github.com/dilshankm/echo-home/pkg/generator"
	"github.com/dilshankm/echo-home/pkg/server/dto"
	"github.com/dilshankm/echo-home/pkg/types"
)

// ChatHandler answers advice questions: retrieval plus response
// generation.
type ChatHandler struct {
	coach     echohome.Coach
	generator *generator.Generator
}

// NewChatHandler creates a new chat handler
func NewChatHandler(coach echohome.Coach, gen *generator.Generator) *ChatHandler {
	return &ChatHandler{coach: coach, generator: gen}
}

// Chat handles POST /chat
func (h *ChatHandler) Chat(c *gin.Context) {
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

	response := h.generator.Generate(ctx, req.Query, entities, result)

	c.JSON(http.StatusOK, dto.ChatResponse{
		Response:        response,
		Recommendations: result.PersonalizedTips,
		Explanation:     result.ExplanationText,
		QueryContext:    entities,
	})
}
