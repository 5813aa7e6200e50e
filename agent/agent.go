// Package agent provides the user-facing entry points around the searcher
// engine: a persistent MCTSAgent bound to one oracle, and a one-shot Search
// convenience function.
package agent

import (
	"context"

	"github.com/rs/zerolog/log"

	"answertree/oracle"
	"answertree/searcher"
)

// MCTSAgent holds an oracle plus search options and runs refinement searches
// against it. The zero value is unusable; construct with NewMCTSAgent.
type MCTSAgent struct {
	oracle  oracle.Oracle
	options []searcher.Option
}

func NewMCTSAgent(o oracle.Oracle, options ...searcher.Option) *MCTSAgent {
	return &MCTSAgent{oracle: o, options: options}
}

// Search refines an answer to query over the given iteration budget.
// iterations must be >= 1; seeds, when given, are installed as the root's
// first children. Returns searcher.ErrConfig-wrapped errors for invalid
// configuration; oracle failures degrade inside the search and never
// propagate here.
func (a *MCTSAgent) Search(ctx context.Context, query string, iterations int, seeds ...string) (string, error) {
	result, err := a.SearchTree(ctx, query, iterations, seeds...)
	if err != nil {
		return "", err
	}
	return result.Answer, nil
}

// SearchTree is Search with the full result: final answer, the tree root for
// inspection, and collected metrics.
func (a *MCTSAgent) SearchTree(ctx context.Context, query string, iterations int, seeds ...string) (searcher.Result, error) {
	options := make([]searcher.Option, 0, len(a.options)+1)
	options = append(options, a.options...)
	options = append(options, searcher.WithIterations(iterations)) // Per-call budget wins
	m := searcher.NewMCTS(a.oracle, options...)
	result, err := m.Search(ctx, query, seeds...)
	if err != nil {
		return searcher.Result{}, err
	}
	log.Debug().Str("query", query).Int("tree_size", result.Root.Size()).Msg("agent search complete")
	return result, nil
}

// Search is the convenience form: one call, no persistent agent.
func Search(ctx context.Context, query string, o oracle.Oracle, iterations int, seeds ...string) (string, error) {
	return NewMCTSAgent(o).Search(ctx, query, iterations, seeds...)
}
