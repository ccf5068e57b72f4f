package graph

import (
	"sort"
)

// Node is a project card on the map, positioned by its centre.
type Node struct {
	ID   string
	X    float64
	Y    float64
	Tags []string
}

// Edge is a connection line between two points in world coordinates.
type Edge struct {
	FromID string
	ToID   string
	X1, Y1 float64
	X2, Y2 float64
	Shared []string // tags both ends have in common
}

// HubID names the centre of the map in spoke edges.
const HubID = "hub"

// Spokes connects the map centre to every node, in node order.
func Spokes(cx, cy float64, nodes []Node) []Edge {
	edges := make([]Edge, 0, len(nodes))
	for _, n := range nodes {
		edges = append(edges, Edge{FromID: HubID, ToID: n.ID, X1: cx, Y1: cy, X2: n.X, Y2: n.Y})
	}
	return edges
}

// SharedLinks connects every pair of nodes that have at least one tag in
// common. Edges are ordered by the position of their endpoints in nodes.
func SharedLinks(nodes []Node) []Edge {
	tagSets := make([]map[string]bool, len(nodes))
	for i, n := range nodes {
		tagSets[i] = make(map[string]bool, len(n.Tags))
		for _, t := range n.Tags {
			tagSets[i][t] = true
		}
	}

	edges := []Edge{}
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			shared := []string{}
			for t := range tagSets[j] {
				if tagSets[i][t] {
					shared = append(shared, t)
				}
			}
			if len(shared) == 0 {
				continue
			}
			sort.Strings(shared)
			a, b := nodes[i], nodes[j]
			edges = append(edges, Edge{
				FromID: a.ID, ToID: b.ID,
				X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y,
				Shared: shared,
			})
		}
	}
	return edges
}
