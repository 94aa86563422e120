package graph

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dilshankm/echo-home/pkg/types"
)

// fileNode is the on-disk node record: shared (id, label) fields plus a
// label-keyed property map, decoded into the typed union after the
// label is known.
type fileNode struct {
	ID         string    `yaml:"id"`
	Label      string    `yaml:"label"`
	Properties yaml.Node `yaml:"properties"`
}

type fileEdge struct {
	Source       string         `yaml:"source"`
	Target       string         `yaml:"target"`
	Relationship string         `yaml:"relationship"`
	Properties   map[string]any `yaml:"properties"`
}

type graphFile struct {
	Nodes []fileNode `yaml:"nodes"`
	Edges []fileEdge `yaml:"edges"`
}

// LoadFile reads a graph dataset from a YAML or JSON file and builds a
// MemoryStore from it. JSON parses as a YAML subset, so one decoder
// covers both formats. Malformed records and dangling edge references
// fail with the same errors as Load.
func LoadFile(path string) (*MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph file: %w", err)
	}

	var file graphFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode graph file %s: %w", path, err)
	}

	nodes := make([]*types.Node, 0, len(file.Nodes))
	for _, fn := range file.Nodes {
		node, err := decodeNode(fn)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}

	edges := make([]*types.Edge, 0, len(file.Edges))
	for _, fe := range file.Edges {
		edges = append(edges, &types.Edge{
			Source:       fe.Source,
			Target:       fe.Target,
			Relationship: fe.Relationship,
			Properties:   fe.Properties,
		})
	}

	return Load(nodes, edges)
}

func decodeNode(fn fileNode) (*types.Node, error) {
	node := &types.Node{ID: fn.ID, Label: types.Label(fn.Label)}

	var err error
	switch node.Label {
	case types.CategoryLabel:
		var cat types.Category
		err = fn.Properties.Decode(&cat)
		node.Category = &cat
	case types.FuelTypeLabel:
		var fuel types.FuelType
		err = fn.Properties.Decode(&fuel)
		node.FuelType = &fuel
	case types.TipLabel:
		var tip types.Tip
		err = fn.Properties.Decode(&tip)
		node.Tip = &tip
	case types.HouseTypeLabel:
		var house types.HouseType
		err = fn.Properties.Decode(&house)
		node.HouseType = &house
	default:
		return nil, fmt.Errorf("node %s: unknown label %q", fn.ID, fn.Label)
	}
	if err != nil {
		return nil, fmt.Errorf("node %s: decode properties: %w", fn.ID, err)
	}
	return node, nil
}
