package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeAddChild(t *testing.T) {
	root := newNode("question", nil)

	first := root.AddChild("answer one")
	second := root.AddChild("answer two")

	require.Equal(t, []*Node{first, second}, root.Children(), "Children should keep insertion order")
	require.Equal(t, root, first.Parent(), "Child should back-reference its parent")
	require.Nil(t, root.Parent(), "Root should have no parent")
	require.NotEqual(t, first.ID(), second.ID(), "Every node should get a unique id")
	require.False(t, root.IsLeaf(), "Node with children should not be a leaf")
	require.True(t, first.IsLeaf(), "Fresh child should be a leaf")
}

func TestNodeMeanValue(t *testing.T) {
	t.Run("unvisited node", func(t *testing.T) {
		node := newNode("answer", nil)

		require.Equal(t, 0.0, node.MeanValue(), "Unvisited node should default to 0 instead of dividing by zero")
	})

	t.Run("visited node", func(t *testing.T) {
		node := newNode("answer", nil)
		node.update(0.8)
		node.update(0.4)

		require.Equal(t, 2, node.Visits(), "Each update should add a visit")
		require.InDelta(t, 0.6, node.MeanValue(), 1e-9, "Mean should be valueSum/visits")
	})
}

func TestNodeSize(t *testing.T) {
	root := newNode("q", nil)
	a := root.AddChild("a")
	root.AddChild("b")
	a.AddChild("a1")

	require.Equal(t, 4, root.Size(), "Size should count the whole subtree")
	require.Equal(t, 2, a.Size(), "Size should count from the given node down")
}
