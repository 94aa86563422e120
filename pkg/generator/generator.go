package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/dilshankm/echo-home/pkg/types"
)

const systemPrompt = `You are an expert energy efficiency coach for UK homes.
You provide personalized, actionable advice based on official UK ECUK 2025 government data.
Your responses should be:
- Specific with actual £/year and kg CO2 savings
- Personalized to the user's house type
- Prioritized by impact (high/medium/low)
- Include difficulty ratings
- Cite data sources (ECUK 2025)
- Friendly and encouraging`

// Config holds chat-model settings for response generation.
type Config struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

// Generator produces the final user-facing answer from a retrieval.
type Generator struct {
	client *openai.Client
	config Config
	logger *slog.Logger
}

// New builds a Generator. A nil client is allowed and always falls
// back to the template response.
func New(client *openai.Client, config Config, logger *slog.Logger) *Generator {
	if config.Model == "" {
		config.Model = openai.GPT4oMini
	}
	if config.MaxTokens <= 0 {
		config.MaxTokens = 500
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{client: client, config: config, logger: logger}
}

// Generate asks the chat model for a personalized answer grounded in
// the retrieval. Model failures degrade to the template fallback
// instead of failing the request; the retrieval already carries the
// substance.
func (g *Generator) Generate(ctx context.Context, query string, qctx types.QueryContext, result *types.RetrievalResult) string {
	if g.client == nil {
		return g.fallback(result)
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.config.Model,
		Temperature: g.config.Temperature,
		MaxTokens:   g.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(query, qctx, result)},
		},
	})
	if err != nil || len(resp.Choices) == 0 {
		g.logger.Error("response generation failed, using fallback", "error", err)
		return g.fallback(result)
	}
	return resp.Choices[0].Message.Content
}

func buildPrompt(query string, qctx types.QueryContext, result *types.RetrievalResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "User Query: %s\n\n", query)

	if qctx.HouseType != "" || qctx.Bedrooms > 0 || qctx.Category != "" {
		b.WriteString("User Context:\n")
		if qctx.HouseType != "" {
			fmt.Fprintf(&b, "- House type: %s\n", qctx.HouseType)
		}
		if qctx.Bedrooms > 0 {
			fmt.Fprintf(&b, "- Bedrooms: %d\n", qctx.Bedrooms)
		}
		if qctx.Category != "" {
			fmt.Fprintf(&b, "- Energy category of interest: %s\n", qctx.Category)
		}
		b.WriteString("\n")
	}

	b.WriteString("Graph Analysis Results:\n")
	b.WriteString(result.ContextText)
	b.WriteString("\n\n")

	if len(result.PersonalizedTips) > 0 {
		b.WriteString("Personalized Recommendations (from graph):\n")
		for i, tip := range result.PersonalizedTips {
			if i >= 5 {
				break
			}
			fmt.Fprintf(&b, "%d. %s - Saves £%.0f/year, %.0f kg CO2/year, Difficulty: %s, Category: %s\n",
				i+1, tip.Action, tip.PersonalizedSavingsGBP, tip.PersonalizedSavingsCO2, tip.Difficulty, tip.Category)
		}
		b.WriteString("\n")
	}

	b.WriteString("Generate a personalized, friendly response with specific recommendations. " +
		"Include percentages vs UK average, specific savings, and prioritize by impact.")
	return b.String()
}

// fallback renders recommendations directly from the retrieval when
// the chat model is unavailable.
func (g *Generator) fallback(result *types.RetrievalResult) string {
	if result == nil || len(result.PersonalizedTips) == 0 {
		return "I couldn't find recommendations for that question. Please try rephrasing it."
	}

	var b strings.Builder
	b.WriteString("Based on UK ECUK 2025 data, here are personalized recommendations:\n")
	for i, tip := range result.PersonalizedTips {
		if i >= 5 {
			break
		}
		impact := "LOW"
		switch {
		case tip.PersonalizedSavingsGBP > 50:
			impact = "HIGH"
		case tip.PersonalizedSavingsGBP > 20:
			impact = "MEDIUM"
		}
		fmt.Fprintf(&b, "%d. %s\n   Saves: £%.0f/year, %.0f kg CO2/year\n   Difficulty: %s, Impact: %s\n",
			i+1, tip.Action, tip.PersonalizedSavingsGBP, tip.PersonalizedSavingsCO2, tip.Difficulty, impact)
	}
	return b.String()
}
