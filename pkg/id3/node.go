package id3

import (
	"fmt"
	"strings"
)

// RootLabel is the label of the root node of every tree
const RootLabel = "root"

/*
Node is a node of a decision tree
*/
type Node struct {
	// Depth of the node in the tree: 0 for the root, incremented by 1 on
	// every split.
	Depth int
	// The condition on the parent split attribute that rows satisfy to
	// reach this node. Nil for the root.
	Predicate *Predicate
	// Entropy of the target over the training rows reaching this node.
	Entropy float64
	// Count of each target value over the training rows reaching this node.
	ClassCounts *ClassCounts
	// The attribute the predicates of the children test. Empty for leaves.
	SplitAttribute string
	// The nodes directly under this one, in order of first appearance of
	// their value in the training rows of this node.
	Children []*Node
}

/*
Label returns RootLabel for the root of a tree and the text of the node
predicate otherwise.
*/
func (n *Node) Label() string {
	if n.Predicate == nil {
		return RootLabel
	}
	return n.Predicate.String()
}

// IsLeaf returns whether the node has no children
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

/*
Child takes a predicate and returns the child reached through it or nil if
there is none.
*/
func (n *Node) Child(p Predicate) *Node {
	for _, c := range n.Children {
		if *c.Predicate == p {
			return c
		}
	}
	return nil
}

// Prediction returns the majority label among the training rows of the node
func (n *Node) Prediction() string {
	label, _ := n.ClassCounts.Majority()
	return label
}

/*
Walk takes an error-returning function and calls it with the node and every
node under it, parents before their children. If the function returns an
error, walking is aborted and the error returned.
*/
func (n *Node) Walk(f func(*Node) error) error {
	err := f(n)
	if err != nil {
		return err
	}
	for _, c := range n.Children {
		err = c.Walk(f)
		if err != nil {
			return err
		}
	}
	return nil
}

/*
Leaves returns the nodes with no children under this node (or the node
itself if it is a leaf), in walking order.
*/
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	n.Walk(func(c *Node) error {
		if c.IsLeaf() {
			leaves = append(leaves, c)
		}
		return nil
	})
	return leaves
}

func (n *Node) String() string {
	result := fmt.Sprintf("{ %s }\n", n.Label())
	result = fmt.Sprintf("%s{ %v }\n", result, n.ClassCounts)
	result = fmt.Sprintf("%s{ entropy=%f }\n", result, n.Entropy)
	if n.IsLeaf() {
		return fmt.Sprintf("%s \n", result)
	}
	result = fmt.Sprintf("%s{ split=%s }\n|\n", result, n.SplitAttribute)
	for i, c := range n.Children {
		for j, line := range strings.Split(c.String(), "\n") {
			if len(line) == 0 {
				continue
			}
			switch {
			case j == 0:
				result = fmt.Sprintf("%s|__%s\n", result, line)
			case i == len(n.Children)-1:
				result = fmt.Sprintf("%s   %s\n", result, line)
			default:
				result = fmt.Sprintf("%s|  %s\n", result, line)
			}
		}
	}
	return result
}
