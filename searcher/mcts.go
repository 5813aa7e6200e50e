// Package searcher implements Monte Carlo Tree Search over a tree of
// candidate answers. Moves are language-model rewrites of a parent answer and
// node values come from language-model ratings, so expansion is bounded by
// the oracle running out of distinct rewrites rather than by game rules.
package searcher

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"answertree/oracle"
)

// DefaultIterations matches the original engine's default search budget.
const DefaultIterations = 2

// ErrConfig marks pre-search validation failures. These surface to the
// caller before any iteration runs; oracle failures never do.
var ErrConfig = errors.New("invalid search configuration")

type Option func(mcts *MCTS)

type MCTS struct {
	oracle       oracle.Oracle
	iterations   int
	duration     time.Duration
	exploration  float64
	epsilon      float64
	maxChildren  int
	scale        float64
	reexpand     float64
	parallelEval int
	rng          *rand.Rand
	metrics      MetricsCollector
}

// Result carries the refined answer plus the tree it was extracted from.
type Result struct {
	Answer  string
	Root    *Node
	Metrics SearchMetrics
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		m.iterations = iterations
	}
}

// WithDuration adds a wall-clock budget checked at the top of each iteration.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c > 0 {
			m.exploration = c
		}
	}
}

func WithMaxChildren(k int) Option {
	return func(m *MCTS) {
		if k > 0 {
			m.maxChildren = k
		}
	}
}

// WithRatingScale sets the upper bound of the rating prompt's numeric scale.
func WithRatingScale(scale float64) Option {
	return func(m *MCTS) {
		if scale > 0 {
			m.scale = scale
		}
	}
}

// WithReexpandProbability lets the selection walk stop early at an interior
// node with probability p and expand it again. The default of 0 means each
// node expands exactly once.
func WithReexpandProbability(p float64) Option {
	return func(m *MCTS) {
		if p >= 0 && p <= 1 {
			m.reexpand = p
		}
	}
}

// WithRandSeed seeds the re-expansion draw so runs are reproducible.
func WithRandSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithParallelEvaluations rates the children of one expansion concurrently.
// Backpropagation stays serialized on the search goroutine either way.
func WithParallelEvaluations(n int) Option {
	return func(m *MCTS) {
		if n > 0 {
			m.parallelEval = n
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewMetricsCollector()
	}
}

func NewMCTS(o oracle.Oracle, options ...Option) *MCTS {
	m := &MCTS{ // Default values
		oracle:       o,
		iterations:   DefaultIterations,
		exploration:  DefaultExploration,
		epsilon:      DefaultEpsilon,
		maxChildren:  DefaultMaxChildren,
		scale:        DefaultRatingScale,
		parallelEval: 1,
		rng:          rand.New(rand.NewSource(1)),
		metrics:      NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Search refines an answer to query over the configured iteration budget.
// Optional seeds become the root's first children before any oracle-generated
// candidate. Cancelling ctx stops cleanly after the current iteration; the
// partial tree still yields a well-formed result.
func (m *MCTS) Search(ctx context.Context, query string, seeds ...string) (Result, error) {
	if err := m.validate(seeds); err != nil {
		return Result{}, err
	}

	root := newNode(query, nil)
	eval := &evaluator{oracle: m.oracle, scale: m.scale, metrics: m.metrics}
	expand := &expander{evaluator: eval, maxChildren: m.maxChildren, metrics: m.metrics}

	m.metrics.Start()
	start := time.Now()
	log.Debug().Int("iterations", m.iterations).Int("seeds", len(seeds)).Msg("search started")

	for i := 0; i < m.iterations; i++ {
		if ctx.Err() != nil {
			log.Info().Int("completed", i).Msg("search cancelled, returning partial tree")
			break
		}
		if m.duration > 0 && time.Since(start) >= m.duration {
			log.Info().Int("completed", i).Msg("search duration budget exhausted")
			break
		}
		m.step(ctx, root, query, seeds, eval, expand)
		m.metrics.AddIteration()
	}

	result := Result{
		Answer:  finalAnswer(root),
		Root:    root,
		Metrics: m.metrics.Complete(root.Size()),
	}
	log.Debug().Int("tree_size", result.Root.Size()).Msg("search finished")
	return result, nil
}

func (m *MCTS) validate(seeds []string) error {
	if m.oracle == nil {
		return fmt.Errorf("%w: language model must be provided", ErrConfig)
	}
	if m.iterations < 1 {
		return fmt.Errorf("%w: iterations must be >= 1, got %d", ErrConfig, m.iterations)
	}
	for i, seed := range seeds {
		if strings.TrimSpace(seed) == "" {
			return fmt.Errorf("%w: seed answer %d is empty", ErrConfig, i)
		}
	}
	return nil
}

// step runs one select -> expand -> evaluate -> backpropagate iteration.
func (m *MCTS) step(ctx context.Context, root *Node, query string, seeds []string, eval *evaluator, expand *expander) {
	node := selectNode(root, m.exploration, m.epsilon, m.reexpand, m.rng)

	var children []*Node
	if !node.terminal {
		var install []string
		if node == root && root.IsLeaf() { // First expansion of the root
			install = seeds
		}
		children = expand.expand(ctx, node, query, install)
	}

	if len(children) == 0 {
		// Terminal or exhausted node: rate the node itself so visit
		// accounting still advances under the budget.
		m.metrics.AddEvaluation()
		backup(node, eval.evaluate(ctx, node, query))
		return
	}

	scores := m.evaluateChildren(ctx, children, query, eval)
	for i, child := range children {
		backup(child, scores[i])
	}
}

// evaluateChildren rates freshly expanded children, concurrently when
// configured. Each rating is independent; the caller serializes backup.
func (m *MCTS) evaluateChildren(ctx context.Context, children []*Node, query string, eval *evaluator) []float64 {
	scores := make([]float64, len(children))
	if m.parallelEval <= 1 || len(children) == 1 {
		for i, child := range children {
			m.metrics.AddEvaluation()
			scores[i] = eval.evaluate(ctx, child, query)
		}
		return scores
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.parallelEval)
	for i, child := range children {
		i, child := i, child
		g.Go(func() error {
			m.metrics.AddEvaluation()
			scores[i] = eval.evaluate(gctx, child, query)
			return nil
		})
	}
	g.Wait() // Evaluations degrade instead of failing, so no error to check
	return scores
}

// finalAnswer applies the terminate rule: the root child with the most
// visits, ties broken by higher mean value. A root that never expanded
// returns its own text unchanged.
func finalAnswer(root *Node) string {
	if root.IsLeaf() {
		return root.answer
	}
	best := root.children[0]
	for _, child := range root.children[1:] {
		if child.visits > best.visits ||
			(child.visits == best.visits && child.MeanValue() > best.MeanValue()) {
			best = child
		}
	}
	return best.answer
}
