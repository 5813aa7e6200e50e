package searcher

import (
	"math"

	"golang.org/x/exp/rand"
)

// Hyperparameter defaults for the tree policy
const (
	DefaultExploration = 1.414
	DefaultEpsilon     = 1e-6
)

// uct scores a child from its parent's perspective:
// UCT = q/n + C*sqrt(ln(N+1)/(n+eps))
// Unvisited children score +Inf so every child is sampled once before
// exploitation begins.
func uct(child *Node, parentVisits int, c, epsilon float64) float64 {
	if child.visits == 0 {
		return math.Inf(1)
	}
	exploit := child.MeanValue()
	explore := c * math.Sqrt(math.Log(float64(parentVisits)+1)/(float64(child.visits)+epsilon))
	return exploit + explore
}

// pickChild returns the max-UCT child. Strict greater-than keeps ties on the
// first-encountered child, so selection is reproducible.
func pickChild(parent *Node, c, epsilon float64) *Node {
	var best *Node
	bestScore := math.Inf(-1)
	for _, child := range parent.children {
		score := uct(child, parent.visits, c, epsilon)
		if score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}

// selectNode walks from root toward a leaf following the tree policy. The walk
// stops at the first leaf or terminal node. With a non-zero re-expansion
// probability it may also stop early at an interior node, which the engine
// then expands again.
func selectNode(root *Node, c, epsilon, reexpand float64, rng *rand.Rand) *Node {
	node := root
	for !node.IsLeaf() && !node.terminal {
		if reexpand > 0 && rng != nil && rng.Float64() < reexpand {
			return node
		}
		node = pickChild(node, c, epsilon)
	}
	return node
}
