package dto

import (
	"errors"
	"strings"

	"github.com/dilshankm/echo-home/pkg/types"
)

// MaxQueryLength bounds accepted query text.
const MaxQueryLength = 2000

// ErrQueryTooLong is returned when a query exceeds MaxQueryLength.
var ErrQueryTooLong = errors.New("query exceeds maximum length")

// ChatRequest asks for personalized advice. The context fields are
// optional; when absent, entities are extracted from the query text.
type ChatRequest struct {
	Query     string `json:"query" binding:"required"`
	HouseType string `json:"house_type,omitempty"`
	Bedrooms  int    `json:"bedrooms,omitempty"`
	Category  string `json:"category,omitempty"`
}

// Validate performs validation on ChatRequest
func (r *ChatRequest) Validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return errors.New("query cannot be empty")
	}
	if len(r.Query) > MaxQueryLength {
		return ErrQueryTooLong
	}
	return nil
}

// QueryContext reports whether the request carries explicit entities,
// and builds the context when it does.
func (r *ChatRequest) QueryContext() *types.QueryContext {
	if r.HouseType == "" && r.Bedrooms == 0 && r.Category == "" {
		return nil
	}
	return &types.QueryContext{
		HouseType: r.HouseType,
		Bedrooms:  r.Bedrooms,
		Category:  r.Category,
	}
}

// ChatResponse is the answer to a ChatRequest.
type ChatResponse struct {
	Response        string                  `json:"response"`
	Recommendations []types.PersonalizedTip `json:"recommendations"`
	Explanation     string                  `json:"explanation"`
	QueryContext    types.QueryContext      `json:"query_context"`
}

// RetrieveResponse is the raw retrieval result for diagnostics.
type RetrieveResponse struct {
	Result       *types.RetrievalResult `json:"result"`
	QueryContext types.QueryContext     `json:"query_context"`
}

// AnalyzeResponse is the extracted entity set for a query.
type AnalyzeResponse struct {
	QueryContext types.QueryContext `json:"query_context"`
}
