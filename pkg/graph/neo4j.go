package graph

import (
	"context"
	"fmt"
	"sort"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"

	"github.com/dilshankm/echo-home/pkg/types"
)

// Neo4jStore is a read-only Store backed by a Neo4j database holding
// the energy graph. Nodes are expected to carry an `id` property and a
// single label matching the data model; properties use the same keys as
// the file loader.
//
// Centrality over Cypher would need the GDS plugin, so this
// implementation falls back to a degree-based score normalized into
// [0, 1]. For the small energy graph the in-process MemoryStore remains
// the primary implementation.
type Neo4jStore struct {
	client   neo4j.DriverWithContext
	database string
}

var _ Store = (*Neo4jStore)(nil)

// NewNeo4jStore connects to a Neo4j instance.
func NewNeo4jStore(uri, username, password, database string) (*Neo4jStore, error) {
	client, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}
	if database == "" {
		database = "neo4j"
	}
	return &Neo4jStore{client: client, database: database}, nil
}

// Close releases the underlying driver connections.
func (s *Neo4jStore) Close(ctx context.Context) error {
	return s.client.Close(ctx)
}

func (s *Neo4jStore) read(ctx context.Context, work func(tx neo4j.ManagedTransaction) (any, error)) (any, error) {
	session := s.client.NewSession(ctx, neo4j.SessionConfig{DatabaseName: s.database, AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)
	return session.ExecuteRead(ctx, work)
}

// GetNode returns the node with the given id, or nil if absent.
func (s *Neo4jStore) GetNode(ctx context.Context, id string) (*types.Node, error) {
	result, err := s.read(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `MATCH (n {id: $id}) RETURN n LIMIT 1`, map[string]any{"id": id})
		if err != nil {
			return nil, err
		}
		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, nil
		}
		return records[0], nil
	})
	if err != nil {
		return nil, fmt.Errorf("neo4j get node: %w", err)
	}
	if result == nil {
		return nil, nil
	}
	return nodeFromRecord(result, "n")
}

// GetNodesByLabel returns all nodes with the given label, ordered by id
// for determinism (Neo4j has no insertion order to preserve).
func (s *Neo4jStore) GetNodesByLabel(ctx context.Context, label types.Label) ([]*types.Node, error) {
	result, err := s.read(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		query := fmt.Sprintf(`MATCH (n:%s) RETURN n ORDER BY n.id`, string(label))
		res, err := tx.Run(ctx, query, nil)
		if err != nil {
			return nil, err
		}
		return res.Collect(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("neo4j nodes by label: %w", err)
	}
	var nodes []*types.Node
	for _, record := range result.([]*neo4j.Record) {
		node, err := nodeFromRecord(record, "n")
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// GetNeighbors returns nodes reachable over outgoing edges.
func (s *Neo4jStore) GetNeighbors(ctx context.Context, id, relationship string) ([]Neighbor, error) {
	query := `MATCH (n {id: $id})-[r]->(m) RETURN m, type(r) AS rel ORDER BY m.id, rel`
	if relationship != "" {
		query = fmt.Sprintf(`MATCH (n {id: $id})-[r:%s]->(m) RETURN m, type(r) AS rel ORDER BY m.id, rel`, relationship)
	}
	result, err := s.read(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, map[string]any{"id": id})
		if err != nil {
			return nil, err
		}
		return res.Collect(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("neo4j neighbors: %w", err)
	}
	var neighbors []Neighbor
	for _, record := range result.([]*neo4j.Record) {
		node, err := nodeFromRecord(record, "m")
		if err != nil {
			return nil, err
		}
		rel, _ := record.Get("rel")
		relName, _ := rel.(string)
		neighbors = append(neighbors, Neighbor{Node: node, Relationship: relName})
	}
	return neighbors, nil
}

// KHopSubgraph expands k hops in both directions from the seed set.
func (s *Neo4jStore) KHopSubgraph(ctx context.Context, seedIDs []string, k int) (*types.Subgraph, error) {
	sub := &types.Subgraph{}
	if len(seedIDs) == 0 {
		return sub, nil
	}

	query := fmt.Sprintf(`
		UNWIND $ids AS seed
		MATCH (n {id: seed})
		OPTIONAL MATCH p = (n)-[*0..%d]-(m)
		UNWIND nodes(p) AS pn
		UNWIND relationships(p) AS pr
		RETURN collect(DISTINCT pn) AS ns, collect(DISTINCT pr) AS rs
	`, k)
	if k == 0 {
		query = `UNWIND $ids AS seed MATCH (n {id: seed}) RETURN collect(DISTINCT n) AS ns, [] AS rs`
	}

	result, err := s.read(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, map[string]any{"ids": seedIDs})
		if err != nil {
			return nil, err
		}
		return res.Collect(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("neo4j k-hop subgraph: %w", err)
	}

	// Relationships carry element ids, not the graph's `id` property, so
	// endpoints resolve through the nodes matched on the same paths.
	idByElement := make(map[string]string)
	records := result.([]*neo4j.Record)
	for _, record := range records {
		if raw, ok := record.Get("ns"); ok {
			for _, item := range raw.([]any) {
				if dbNode, ok := item.(dbtype.Node); ok {
					node, err := nodeFromDBNode(dbNode)
					if err != nil {
						return nil, err
					}
					sub.Nodes = append(sub.Nodes, node)
					idByElement[dbNode.ElementId] = node.ID
				}
			}
		}
	}
	for _, record := range records {
		if raw, ok := record.Get("rs"); ok {
			for _, item := range raw.([]any) {
				if dbRel, ok := item.(dbtype.Relationship); ok {
					sub.Edges = append(sub.Edges, edgeFromDBRelationship(dbRel, idByElement))
				}
			}
		}
	}
	return sub, nil
}

// FindPaths enumerates undirected simple paths between two nodes.
func (s *Neo4jStore) FindPaths(ctx context.Context, sourceID, targetID string, maxLength int) ([][]string, error) {
	if maxLength < 1 {
		return nil, nil
	}
	query := fmt.Sprintf(`
		MATCH p = (a {id: $source})-[*1..%d]-(b {id: $target})
		WHERE ALL(n IN nodes(p) WHERE single(x IN nodes(p) WHERE x = n))
		RETURN [n IN nodes(p) | n.id] AS ids
		LIMIT %d
	`, maxLength, MaxPaths)

	result, err := s.read(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, map[string]any{"source": sourceID, "target": targetID})
		if err != nil {
			return nil, err
		}
		return res.Collect(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("neo4j find paths: %w", err)
	}

	var paths [][]string
	for _, record := range result.([]*neo4j.Record) {
		raw, ok := record.Get("ids")
		if !ok {
			continue
		}
		var ids []string
		for _, item := range raw.([]any) {
			if id, ok := item.(string); ok {
				ids = append(ids, id)
			}
		}
		paths = append(paths, ids)
	}
	sort.Slice(paths, func(i, j int) bool { return lessPath(paths[i], paths[j]) })
	return paths, nil
}

// Centrality approximates structural importance by normalized degree.
func (s *Neo4jStore) Centrality(ctx context.Context, id string) (float64, error) {
	result, err := s.read(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
			MATCH (n {id: $id})
			OPTIONAL MATCH (n)-[r]-()
			WITH count(r) AS degree
			MATCH ()-[all]->()
			RETURN degree, count(all) AS total
		`, map[string]any{"id": id})
		if err != nil {
			return nil, err
		}
		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, nil
		}
		return records[0], nil
	})
	if err != nil || result == nil {
		return DefaultCentrality, nil
	}

	record := result.(*neo4j.Record)
	degree, _ := record.Get("degree")
	total, _ := record.Get("total")
	d, _ := degree.(int64)
	t, _ := total.(int64)
	if t == 0 {
		return DefaultCentrality, nil
	}
	return float64(d) / float64(2*t), nil
}

// Stats summarizes node, edge, label and relationship counts.
func (s *Neo4jStore) Stats(ctx context.Context) (*types.GraphStats, error) {
	stats := &types.GraphStats{
		NodeLabels:        make(map[string]int),
		RelationshipTypes: make(map[string]int),
	}

	result, err := s.read(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
			MATCH (n)
			UNWIND labels(n) AS label
			RETURN label, count(*) AS count
		`, nil)
		if err != nil {
			return nil, err
		}
		return res.Collect(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("neo4j stats: %w", err)
	}
	for _, record := range result.([]*neo4j.Record) {
		label, _ := record.Get("label")
		count, _ := record.Get("count")
		name, _ := label.(string)
		n, _ := count.(int64)
		stats.NodeLabels[name] = int(n)
		stats.TotalNodes += int(n)
	}

	result, err = s.read(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `MATCH ()-[r]->() RETURN type(r) AS rel, count(*) AS count`, nil)
		if err != nil {
			return nil, err
		}
		return res.Collect(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("neo4j stats: %w", err)
	}
	for _, record := range result.([]*neo4j.Record) {
		rel, _ := record.Get("rel")
		count, _ := record.Get("count")
		name, _ := rel.(string)
		n, _ := count.(int64)
		stats.RelationshipTypes[name] = int(n)
		stats.TotalEdges += int(n)
	}
	return stats, nil
}

func lessPath(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func nodeFromRecord(result any, key string) (*types.Node, error) {
	record, ok := result.(*neo4j.Record)
	if !ok {
		return nil, fmt.Errorf("unexpected record type %T", result)
	}
	value, found := record.Get(key)
	if !found {
		return nil, nil
	}
	dbNode, ok := value.(dbtype.Node)
	if !ok {
		return nil, fmt.Errorf("unexpected node type %T", value)
	}
	return nodeFromDBNode(dbNode)
}

func nodeFromDBNode(dbNode dbtype.Node) (*types.Node, error) {
	props := dbNode.Props
	id, _ := props["id"].(string)

	var label types.Label
	for _, l := range dbNode.Labels {
		switch types.Label(l) {
		case types.CategoryLabel, types.FuelTypeLabel, types.TipLabel, types.HouseTypeLabel:
			label = types.Label(l)
		}
	}

	node := &types.Node{ID: id, Label: label}
	switch label {
	case types.CategoryLabel:
		node.Category = &types.Category{
			Name:       str(props, "name"),
			KWHPerHome: num(props, "kwh_per_home"),
			TotalGWH:   num(props, "total_gwh"),
			Percentage: num(props, "percentage"),
			FuelType:   str(props, "fuel_type"),
		}
	case types.FuelTypeLabel:
		node.FuelType = &types.FuelType{
			Name:          str(props, "name"),
			RateGBPPerKWH: num(props, "rate_gbp_kwh"),
			CO2KgPerKWH:   num(props, "co2_kg_kwh"),
		}
	case types.TipLabel:
		node.Tip = &types.Tip{
			Action:      str(props, "action"),
			Description: str(props, "description"),
			SavingsGBP:  num(props, "savings_gbp"),
			SavingsCO2:  num(props, "savings_co2"),
			Difficulty:  str(props, "difficulty"),
			Category:    str(props, "category"),
		}
	case types.HouseTypeLabel:
		node.HouseType = &types.HouseType{
			Type:             str(props, "type"),
			AvgSizeSqm:       num(props, "avg_size_sqm"),
			TypicalOccupants: int(num(props, "typical_occupants")),
			HeatingFactor:    num(props, "heating_kwh_factor"),
		}
	default:
		return nil, fmt.Errorf("node %s: no recognized label in %v", id, dbNode.Labels)
	}
	return node, nil
}

func edgeFromDBRelationship(rel dbtype.Relationship, idByElement map[string]string) *types.Edge {
	return &types.Edge{
		Source:       idByElement[rel.StartElementId],
		Target:       idByElement[rel.EndElementId],
		Relationship: rel.Type,
		Properties:   rel.Props,
	}
}

func str(props map[string]any, key string) string {
	v, _ := props[key].(string)
	return v
}

func num(props map[string]any, key string) float64 {
	switch v := props[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	}
	return 0
}
