package pathfinding

import (
	"slices"

	"github.com/zeusync/gameai/pkg/sequence"
)

type record struct {
	node  int
	cost  float64
	via   Connection
	item  *sequence.PriorityItem[int]
	state uint8
}

const (
	unvisited uint8 = iota
	open
	closed
)

// FindPath returns the cheapest sequence of connections leading from one node
// to another, and false when to cannot be reached. A path from a node to
// itself is empty.
func FindPath(g Graph, from, to int) ([]Connection, bool) {
	n := g.NodeCount()
	if from < 0 || from >= n || to < 0 || to >= n {
		return nil, false
	}
	if from == to {
		return []Connection{}, true
	}

	records := make([]record, n)
	queue := sequence.NewPriorityQueue[int]()
	records[from] = record{node: from, state: open, item: queue.Enqueue(from, 0)}

	for !queue.IsEmpty() {
		current, _ := queue.Dequeue()
		if current == to {
			break
		}
		rc := &records[current]
		rc.state = closed

		for _, c := range g.Connections(current) {
			cost := rc.cost + c.Cost
			next := &records[c.To]
			switch next.state {
			case closed:
				continue
			case open:
				if cost >= next.cost {
					continue
				}
				next.cost = cost
				next.via = c
				queue.Update(next.item, cost)
			default:
				*next = record{node: c.To, cost: cost, via: c, state: open}
				next.item = queue.Enqueue(c.To, cost)
			}
		}
	}

	if records[to].state == unvisited {
		return nil, false
	}

	var path []Connection
	for node := to; node != from; node = records[node].via.From {
		path = append(path, records[node].via)
	}
	slices.Reverse(path)
	return path, true
}
