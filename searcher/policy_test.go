package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestUCT(t *testing.T) {
	t.Run("unvisited child scores infinity", func(t *testing.T) {
		child := newNode("a", nil)

		require.True(t, math.IsInf(uct(child, 10, DefaultExploration, DefaultEpsilon), 1),
			"Unvisited children should always be preferred")
	})

	t.Run("visited child follows the formula", func(t *testing.T) {
		child := newNode("a", nil)
		child.update(0.5)
		child.update(0.5)

		got := uct(child, 8, 1.0, 0)
		want := 0.5 + math.Sqrt(math.Log(9)/2)
		require.InDelta(t, want, got, 1e-9, "UCT should be mean + C*sqrt(ln(N+1)/(n+eps))")
	})

	t.Run("repeated scoring is stable", func(t *testing.T) {
		child := newNode("a", nil)
		child.update(0.7)

		first := uct(child, 5, DefaultExploration, DefaultEpsilon)
		second := uct(child, 5, DefaultExploration, DefaultEpsilon)
		require.Equal(t, first, second, "Scoring the same statistics should be deterministic")
	})
}

func TestPickChild(t *testing.T) {
	t.Run("prefers unvisited child over better visited one", func(t *testing.T) {
		parent := newNode("q", nil)
		visited := parent.AddChild("visited")
		visited.update(1.0)
		unvisited := parent.AddChild("unvisited")
		parent.update(1.0)

		require.Equal(t, unvisited, pickChild(parent, DefaultExploration, DefaultEpsilon),
			"Every child should be sampled at least once before exploitation")
	})

	t.Run("ties break on first-encountered child", func(t *testing.T) {
		parent := newNode("q", nil)
		first := parent.AddChild("a")
		first.update(0.5)
		second := parent.AddChild("b")
		second.update(0.5)
		parent.update(0.5)
		parent.update(0.5)

		require.Equal(t, first, pickChild(parent, DefaultExploration, DefaultEpsilon),
			"Equal scores should resolve to the first child for reproducibility")
	})

	t.Run("picks the max-UCT child", func(t *testing.T) {
		parent := newNode("q", nil)
		low := parent.AddChild("low")
		low.update(0.2)
		high := parent.AddChild("high")
		high.update(0.9)
		parent.update(0.2)
		parent.update(0.9)

		require.Equal(t, high, pickChild(parent, 0.1, DefaultEpsilon),
			"With exploitation dominating, the higher-mean child should win")
	})
}

func TestSelectNode(t *testing.T) {
	t.Run("walks to a leaf", func(t *testing.T) {
		root := newNode("q", nil)
		child := root.AddChild("a")
		child.update(0.9)
		grandchild := child.AddChild("a1")
		root.update(0.9)

		got := selectNode(root, DefaultExploration, DefaultEpsilon, 0, nil)
		require.Equal(t, grandchild, got, "Walk should stop at the first leaf")
	})

	t.Run("stops at a terminal node", func(t *testing.T) {
		root := newNode("q", nil)
		child := root.AddChild("a")
		child.update(0.9)
		child.markTerminal()
		child.AddChild("a1") // Children below a terminal node are never descended into
		root.update(0.9)

		got := selectNode(root, DefaultExploration, DefaultEpsilon, 0, nil)
		require.Equal(t, child, got, "Walk should stop at the first terminal node")
	})

	t.Run("re-expansion can stop at an interior node", func(t *testing.T) {
		root := newNode("q", nil)
		child := root.AddChild("a")
		child.update(0.9)
		root.update(0.9)

		rng := rand.New(rand.NewSource(1))
		got := selectNode(root, DefaultExploration, DefaultEpsilon, 1.0, rng)
		require.Equal(t, root, got, "Probability 1 should stop the walk at the root")
	})
}
