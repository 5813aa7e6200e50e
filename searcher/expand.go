package searcher

import (
	"context"

	"github.com/rs/zerolog/log"

	"answertree/utils"
)

// DefaultMaxChildren bounds how many candidates one expansion step generates.
const DefaultMaxChildren = 3

// expander wraps the oracle to grow the tree: refinement children for
// expanded nodes, a fresh draft plus refinements for the root's first
// expansion, and caller seeds ahead of anything oracle-generated.
type expander struct {
	evaluator   *evaluator
	maxChildren int
	metrics     MetricsCollector
}

// expand adds up to maxChildren new children to node and returns them.
// Terminal nodes are never expanded. A node that yields no usable children
// (every candidate empty, failed, or a duplicate of the node or a sibling) is
// marked terminal: in this domain exhausted refinement is the leaf condition.
func (x *expander) expand(ctx context.Context, node *Node, query string, seeds []string) []*Node {
	if node.terminal {
		return nil
	}
	x.metrics.AddExpansion()

	var added []*Node
	seen := seenAnswers(node)

	// Caller-provided seeds go in first, before any oracle-generated child.
	for _, seed := range seeds {
		if child, ok := addUnique(node, seed, &seen); ok {
			added = append(added, child)
		}
	}

	for len(node.children) < x.maxChildren {
		candidate, err := x.generate(ctx, node, query)
		if err != nil {
			log.Warn().Err(err).Str("node", node.id).Msg("expansion call failed")
			break
		}
		child, ok := addUnique(node, candidate, &seen)
		if !ok { // Oracle has started repeating itself
			break
		}
		added = append(added, child)
	}

	if len(added) == 0 && node.IsLeaf() {
		node.markTerminal()
		log.Debug().Str("node", node.id).Msg("no usable expansion, node marked terminal")
	}
	return added
}

// generate produces one candidate answer. The root is drafted directly from
// the query; every other node is an improvement pass over its own answer.
func (x *expander) generate(ctx context.Context, node *Node, query string) (string, error) {
	if node.parent == nil && node.IsLeaf() {
		x.metrics.AddOracleCall()
		return x.evaluator.oracle.Generate(ctx, buildDraftPrompt(query))
	}
	return x.evaluator.improve(ctx, node, query)
}

func seenAnswers(node *Node) []string {
	seen := []string{utils.NormalizeAnswer(node.answer)}
	for _, child := range node.children {
		seen = append(seen, utils.NormalizeAnswer(child.answer))
	}
	return seen
}

func addUnique(node *Node, answer string, seen *[]string) (*Node, bool) {
	key := utils.NormalizeAnswer(answer)
	if key == "" || utils.FindIndex(*seen, key) >= 0 {
		return nil, false
	}
	*seen = append(*seen, key)
	return node.AddChild(answer), true
}
