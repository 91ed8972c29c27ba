package id3

import "fmt"

/*
grow takes the depth, the predicate leading to it (nil for the root), the
entropy and training table of a node to build, along the target column name,
and returns the node with all the subtree under it developed.

A node is left as a leaf when its table is pure or the target is its only
column. Otherwise its table is split by the attribute with the highest
information gain, and a child is grown for every value of it, from the rows
with that value and without the attribute column.
*/
func grow(depth int, p *Predicate, entropy float64, t Table, target string) (*Node, error) {
	cc, err := CountClasses(t, target)
	if err != nil {
		return nil, err
	}
	n := &Node{
		Depth:       depth,
		Predicate:   p,
		Entropy:     entropy,
		ClassCounts: cc,
	}
	if entropy <= 0 || len(t.Columns()) <= 1 {
		return n, nil
	}
	attribute, entropies, err := SelectBestSplit(entropy, t, target)
	if err != nil {
		return nil, fmt.Errorf("splitting node %q at depth %d: %w", n.Label(), depth, err)
	}
	n.SplitAttribute = attribute
	n.Children = make([]*Node, 0, len(entropies))
	for _, ve := range entropies {
		cp := Equals(attribute, ve.Value)
		ct, err := t.Where(cp)
		if err != nil {
			return nil, err
		}
		child, err := grow(depth+1, &cp, ve.Entropy, ct.Drop(attribute), target)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}
