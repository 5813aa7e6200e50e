package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBackup(t *testing.T) {
	t.Run("updates every node from leaf to root", func(t *testing.T) {
		root := newNode("q", nil)
		mid := root.AddChild("a")
		leaf := mid.AddChild("a1")

		backup(leaf, 0.8)

		for _, node := range []*Node{leaf, mid, root} {
			require.Equal(t, 1, node.Visits(), "Every node on the path should gain one visit")
			require.InDelta(t, 0.8, node.MeanValue(), 1e-9, "Every node on the path should absorb the score")
		}
	})

	t.Run("visits count backpropagation paths through each node", func(t *testing.T) {
		root := newNode("q", nil)
		left := root.AddChild("a")
		right := root.AddChild("b")

		backup(left, 0.9)
		backup(left, 0.7)
		backup(right, 0.3)

		require.Equal(t, 2, left.Visits(), "Node should count the paths it appeared in")
		require.Equal(t, 1, right.Visits(), "Node should count the paths it appeared in")
		require.Equal(t, 3, root.Visits(), "Root appears in every path")
		require.InDelta(t, 0.8, left.MeanValue(), 1e-9, "Mean should average the backed-up scores")
		require.InDelta(t, (0.9+0.7+0.3)/3, root.MeanValue(), 1e-9, "Root mean should average all scores")
	})
}
