package types

// Intent and urgency defaults applied when a query context carries none.
const (
	DefaultIntent  = "general_advice"
	DefaultUrgency = "medium"
)

// QueryContext carries the structured entities extracted (or supplied)
// alongside a free-text query. All entity fields are optional.
type QueryContext struct {
	HouseType string `json:"house_type,omitempty"`
	Bedrooms  int    `json:"bedrooms,omitempty"`
	Category  string `json:"category,omitempty"`
	Problem   string `json:"problem,omitempty"`
	Intent    string `json:"intent"`
	Urgency   string `json:"urgency"`
}

// WithDefaults returns a copy with intent and urgency defaulted.
func (q QueryContext) WithDefaults() QueryContext {
	if q.Intent == "" {
		q.Intent = DefaultIntent
	}
	if q.Urgency == "" {
		q.Urgency = DefaultUrgency
	}
	return q
}
