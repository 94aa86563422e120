package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	jsonrepair "github.com/kaptinlin/jsonrepair"
	"github.com/sashabaranov/go-openai"

	"github.com/dilshankm/echo-home/pkg/types"
)

const refinePrompt = `Extract entities from this household energy question.
Respond with JSON only, using exactly these keys (empty string when absent):
{"house_type": "flat|terraced|semi_detached|detached", "category": "heating|lighting|appliances|water|cooking", "problem": "high_bills|inefficient|old_equipment"}

Question: %s`

// LLMRefiner fills entities the keyword patterns missed by asking a
// chat model for a structured extraction. It only ever adds fields;
// pattern-matched values are kept as-is.
type LLMRefiner struct {
	client *openai.Client
	model  string
}

// NewLLMRefiner builds a refiner over an OpenAI-compatible chat model.
func NewLLMRefiner(client *openai.Client, model string) *LLMRefiner {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &LLMRefiner{client: client, model: model}
}

// Refine asks the model for entities and merges any that the pattern
// pass left empty. Model output is repaired before decoding because
// chat models routinely wrap JSON in prose or markdown fences.
func (r *LLMRefiner) Refine(ctx context.Context, query string, qctx types.QueryContext) (types.QueryContext, error) {
	if qctx.HouseType != "" && qctx.Category != "" && qctx.Problem != "" {
		return qctx, nil
	}

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       r.model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(refinePrompt, query)},
		},
	})
	if err != nil {
		return qctx, fmt.Errorf("entity refinement: %w", err)
	}
	if len(resp.Choices) == 0 {
		return qctx, fmt.Errorf("entity refinement: empty response")
	}

	repaired, err := jsonrepair.JSONRepair(strings.TrimSpace(resp.Choices[0].Message.Content))
	if err != nil {
		return qctx, fmt.Errorf("entity refinement: repair response: %w", err)
	}

	var extracted struct {
		HouseType string `json:"house_type"`
		Category  string `json:"category"`
		Problem   string `json:"problem"`
	}
	if err := json.Unmarshal([]byte(repaired), &extracted); err != nil {
		return qctx, fmt.Errorf("entity refinement: decode response: %w", err)
	}

	if qctx.HouseType == "" {
		qctx.HouseType = extracted.HouseType
	}
	if qctx.Category == "" {
		qctx.Category = extracted.Category
	}
	if qctx.Problem == "" {
		qctx.Problem = extracted.Problem
	}
	return qctx, nil
}
