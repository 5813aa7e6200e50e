package searcher

import (
	"github.com/google/uuid"
)

// Node is one candidate answer in the search tree. Identity and answer text
// are fixed at creation; refinement always produces a new child, never an
// in-place edit. Statistics are only touched by selection and backup.
type Node struct {
	id       string
	answer   string
	parent   *Node
	children []*Node
	visits   int
	valueSum float64
	terminal bool
}

func newNode(answer string, parent *Node) *Node {
	return &Node{
		id:     uuid.NewString(),
		answer: answer,
		parent: parent,
	}
}

func (n *Node) ID() string { return n.id }

func (n *Node) Answer() string { return n.answer }

func (n *Node) Parent() *Node { return n.parent }

// Children returns the append-only child list in insertion order.
func (n *Node) Children() []*Node { return n.children }

func (n *Node) Visits() int { return n.visits }

func (n *Node) Terminal() bool { return n.terminal }

func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// AddChild creates an owned child for the given answer text and appends it.
func (n *Node) AddChild(answer string) *Node {
	child := newNode(answer, n)
	n.children = append(n.children, child)
	return child
}

// MeanValue is the node's average backed-up score, 0 before any visit.
func (n *Node) MeanValue() float64 {
	if n.visits == 0 {
		return 0
	}
	return n.valueSum / float64(n.visits)
}

func (n *Node) update(score float64) {
	n.visits++
	n.valueSum += score
}

func (n *Node) markTerminal() {
	n.terminal = true
}

// Size counts the nodes in the subtree rooted at n.
func (n *Node) Size() int {
	size := 1
	for _, child := range n.children {
		size += child.Size()
	}
	return size
}
