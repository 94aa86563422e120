package types

// Relationship types used by the energy knowledge graph.
const (
	// RelUsesFuel connects a Category to the FuelType it consumes.
	RelUsesFuel = "USES_FUEL"
	// RelImproves connects a Tip to the Category it reduces.
	RelImproves = "IMPROVES"
	// RelSuitableFor connects a Tip to a HouseType it applies to.
	RelSuitableFor = "SUITABLE_FOR"
)

// Edge is a directed, typed edge between two nodes. Multiple edges may
// exist between the same pair (the graph is a multigraph).
type Edge struct {
	Source       string         `json:"source" yaml:"source"`
	Target       string         `json:"target" yaml:"target"`
	Relationship string         `json:"relationship" yaml:"relationship"`
	Properties   map[string]any `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Validate checks the edge references both endpoints and a relationship.
func (e *Edge) Validate() error {
	if e.Source == "" || e.Target == "" {
		return ErrEmptyEndpoint
	}
	if e.Relationship == "" {
		return ErrEmptyRelationship
	}
	return nil
}

// Subgraph is an induced fragment of the knowledge graph: a node set
// plus every edge incident to it that the extraction visited.
type Subgraph struct {
	Nodes []*Node `json:"nodes"`
	Edges []*Edge `json:"edges"`
}
