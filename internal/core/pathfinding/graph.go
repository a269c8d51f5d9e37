// Package pathfinding finds shortest paths over weighted directed graphs.
package pathfinding

import (
	"errors"
	"fmt"
)

var (
	ErrNotSquare     = errors.New("pathfinding: adjacency matrix is not square")
	ErrNegativeCost  = errors.New("pathfinding: connection cost is negative")
	ErrBadConnection = errors.New("pathfinding: connection does not match its node")
)

// Connection is a directed, weighted edge.
type Connection struct {
	Cost float64
	From int
	To   int
}

// Graph exposes the outgoing connections of nodes numbered 0..NodeCount()-1.
type Graph interface {
	NodeCount() int
	Connections(node int) []Connection
}

// ListGraph stores outgoing connections per node.
type ListGraph struct {
	adjacency [][]Connection
}

var _ Graph = (*ListGraph)(nil)

// NewMatrixGraph builds a graph from an adjacency matrix: m[i][j] > 0 is a
// connection from i to j with that cost, zero means no connection.
func NewMatrixGraph(m [][]float64) (*ListGraph, error) {
	adjacency := make([][]Connection, len(m))
	for i, row := range m {
		if len(row) != len(m) {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNotSquare, i, len(row), len(m))
		}
		for j, cost := range row {
			if cost < 0 {
				return nil, fmt.Errorf("%w: %d->%d", ErrNegativeCost, i, j)
			}
			if cost > 0 {
				adjacency[i] = append(adjacency[i], Connection{Cost: cost, From: i, To: j})
			}
		}
	}
	return &ListGraph{adjacency: adjacency}, nil
}

// NewListGraph builds a graph from adjacency lists, list i holding the
// connections leaving node i.
func NewListGraph(lists [][]Connection) (*ListGraph, error) {
	adjacency := make([][]Connection, len(lists))
	for i, conns := range lists {
		for _, c := range conns {
			if c.From != i || c.To < 0 || c.To >= len(lists) {
				return nil, fmt.Errorf("%w: node %d has %d->%d", ErrBadConnection, i, c.From, c.To)
			}
			if c.Cost < 0 {
				return nil, fmt.Errorf("%w: %d->%d", ErrNegativeCost, c.From, c.To)
			}
		}
		adjacency[i] = append([]Connection(nil), conns...)
	}
	return &ListGraph{adjacency: adjacency}, nil
}

func (g *ListGraph) NodeCount() int { return len(g.adjacency) }

func (g *ListGraph) Connections(node int) []Connection {
	if node < 0 || node >= len(g.adjacency) {
		return nil
	}
	return g.adjacency[node]
}
