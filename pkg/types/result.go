package types

// ScoredNode pairs a matched node with its hybrid relevance score.
type ScoredNode struct {
	Node  *Node   `json:"node"`
	Score float64 `json:"score"`
}

// PersonalizedTip is a Tip re-weighted for one query. Never persisted.
type PersonalizedTip struct {
	ID          string  `json:"id"`
	Action      string  `json:"action"`
	Description string  `json:"description"`
	SavingsGBP  float64 `json:"savings_gbp"`
	SavingsCO2  float64 `json:"savings_co2"`
	Difficulty  string  `json:"difficulty"`
	Category    string  `json:"category"`

	PersonalizedSavingsGBP float64 `json:"personalized_savings_gbp"`
	PersonalizedSavingsCO2 float64 `json:"personalized_savings_co2"`
	ROI                    float64 `json:"roi"`
}

// RetrievalResult is the complete output of one retrieval call, built
// for a downstream generative-text collaborator.
type RetrievalResult struct {
	MatchedNodes     []ScoredNode      `json:"matched_nodes"`
	Subgraph         *Subgraph         `json:"subgraph"`
	Paths            [][]string        `json:"paths"`
	PersonalizedTips []PersonalizedTip `json:"personalized_tips"`
	ContextText      string            `json:"context_text"`
	ExplanationText  string            `json:"explanation_text"`
}

// Empty reports whether no node cleared the ranking threshold.
func (r *RetrievalResult) Empty() bool {
	return len(r.MatchedNodes) == 0
}

// GraphStats summarizes the loaded graph for the diagnostics surface.
type GraphStats struct {
	TotalNodes        int            `json:"total_nodes"`
	TotalEdges        int            `json:"total_edges"`
	NodeLabels        map[string]int `json:"node_labels"`
	RelationshipTypes map[string]int `json:"relationship_types"`
}
