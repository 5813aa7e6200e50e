package searcher

// backup folds an evaluation score into every node from n up to the root.
// Pure bookkeeping: each node on the path gains one visit and the score.
func backup(n *Node, score float64) {
	for node := n; node != nil; node = node.parent {
		node.update(score)
	}
}
