/*
Package id3 grows decision trees over categorical tables with the ID3
algorithm and uses them to classify rows.
*/
package id3

import (
	"fmt"
)

// UnmatchedPolicy decides what a classifier predicts for a row that
// satisfies none of the children predicates of an internal node, which
// happens when the row has a value not seen in training at that node.
type UnmatchedPolicy int

const (
	// FallbackToMajority predicts the majority label of the node where
	// the row got stuck.
	FallbackToMajority UnmatchedPolicy = iota
	// FailOnUnmatched makes the prediction fail with ErrUnmatchedPredicate.
	FailOnUnmatched
)

/*
Classifier is an ID3 decision tree classifier. It is grown once with Fit
and is read-only afterwards, so it is safe to predict with it concurrently.
*/
type Classifier struct {
	root   *Node
	target string
	policy UnmatchedPolicy
}

// Option configures a Classifier
type Option func(*Classifier)

// WithUnmatchedPolicy sets the policy for rows that satisfy no predicate
// of an internal node. The default is FallbackToMajority.
func WithUnmatchedPolicy(p UnmatchedPolicy) Option {
	return func(c *Classifier) {
		c.policy = p
	}
}

type fitConfig struct {
	target     string
	labels     *Column
	attributes []string
}

// FitOption configures a call to Fit
type FitOption func(*fitConfig)

// WithTarget sets the name of the column of the fitted table
// holding the labels to predict.
func WithTarget(name string) FitOption {
	return func(fc *fitConfig) {
		fc.target = name
	}
}

// WithLabels provides the labels to predict for each row of the fitted
// table. The column name becomes the target name.
func WithLabels(labels Column) FitOption {
	return func(fc *fitConfig) {
		fc.labels = &labels
	}
}

// WithAttributes restricts the attributes considered for splitting to
// the given ones. Other non-target columns are ignored.
func WithAttributes(names ...string) FitOption {
	return func(fc *fitConfig) {
		fc.attributes = names
	}
}

// New returns an unfitted Classifier configured with the given options
func New(opts ...Option) *Classifier {
	c := &Classifier{policy: FallbackToMajority}
	for _, o := range opts {
		o(c)
	}
	return c
}

/*
Fit takes a table and options defining the target and grows the decision
tree of the classifier, replacing any previous one.

The target is either a column of the table, given with WithTarget, or a
separate column of labels given with WithLabels. Giving both results in
ErrRedundantDefinition, giving neither, or a target the table does not
have, in ErrTargetNotFound.
*/
func (c *Classifier) Fit(x Table, opts ...FitOption) error {
	fc := &fitConfig{}
	for _, o := range opts {
		o(fc)
	}
	t, target, err := fc.labeledTable(x)
	if err != nil {
		return err
	}
	entropy, err := Entropy(t, target)
	if err != nil {
		return fmt.Errorf("computing root entropy: %w", err)
	}
	root, err := grow(0, nil, entropy, t, target)
	if err != nil {
		return fmt.Errorf("growing tree: %w", err)
	}
	c.root = root
	c.target = target
	return nil
}

func (fc *fitConfig) labeledTable(x Table) (Table, string, error) {
	var (
		t      Table
		target string
		err    error
	)
	switch {
	case fc.labels != nil && fc.target != "":
		return nil, "", ErrRedundantDefinition
	case fc.labels != nil:
		if fc.labels.Name == "" {
			return nil, "", fmt.Errorf("%w: labels have no name", ErrTargetNotFound)
		}
		target = fc.labels.Name
		t, err = Join(x, *fc.labels)
		if err != nil {
			return nil, "", err
		}
	case fc.target != "":
		if !x.HasColumn(fc.target) {
			return nil, "", fmt.Errorf("%w: no column %q", ErrTargetNotFound, fc.target)
		}
		t, target = x, fc.target
	default:
		return nil, "", ErrTargetNotFound
	}
	if fc.attributes == nil {
		return t, target, nil
	}
	keep := map[string]bool{target: true}
	for _, a := range fc.attributes {
		if !t.HasColumn(a) {
			return nil, "", fmt.Errorf("unknown attribute %q", a)
		}
		keep[a] = true
	}
	for _, col := range t.Columns() {
		if !keep[col] {
			t = t.Drop(col)
		}
	}
	return t, target, nil
}

// Root returns the root node of the tree or nil if the classifier has not
// been fitted
func (c *Classifier) Root() *Node {
	return c.root
}

// Target returns the name of the column the classifier predicts
func (c *Classifier) Target() string {
	return c.target
}

/*
Predict takes a table and returns the predicted label for each of its rows,
in row order, or an error if any prediction fails.
*/
func (c *Classifier) Predict(x Table) ([]string, error) {
	if c.root == nil {
		return nil, ErrNotFitted
	}
	result := make([]string, 0, x.Len())
	for i := 0; i < x.Len(); i++ {
		label, err := c.PredictRow(x.Row(i))
		if err != nil {
			return nil, fmt.Errorf("predicting row %d: %w", i, err)
		}
		result = append(result, label)
	}
	return result, nil
}

/*
PredictRow takes a row and walks the tree from the root, descending into
the first child whose predicate the row satisfies, until reaching a leaf.
It returns the majority label of the leaf.
When the row satisfies no child predicate the classifier policy applies:
the label is the majority of the current node, or an ErrUnmatchedPredicate
error.
*/
func (c *Classifier) PredictRow(r Row) (string, error) {
	if c.root == nil {
		return "", ErrNotFitted
	}
	n := c.root
	for !n.IsLeaf() {
		var selected *Node
		for _, child := range n.Children {
			ok, err := child.Predicate.SatisfiedBy(r)
			if err != nil {
				return "", err
			}
			if ok {
				selected = child
				break
			}
		}
		if selected == nil {
			if c.policy == FailOnUnmatched {
				v, _ := r.ValueFor(n.SplitAttribute)
				return "", fmt.Errorf("%w on attribute %s with value %q", ErrUnmatchedPredicate, n.SplitAttribute, v)
			}
			break
		}
		n = selected
	}
	return n.Prediction(), nil
}

/*
Test takes a table with the target column and returns the rate of rows
for which the predicted label matches the one on the table.
*/
func (c *Classifier) Test(t Table) (float64, error) {
	if c.root == nil {
		return 0.0, ErrNotFitted
	}
	labels, err := t.Column(c.target)
	if err != nil {
		return 0.0, fmt.Errorf("%w: %v", ErrTargetNotFound, err)
	}
	if len(labels) == 0 {
		return 0.0, ErrEmptyPartition
	}
	predictions, err := c.Predict(t)
	if err != nil {
		return 0.0, err
	}
	var result float64
	for i, p := range predictions {
		if p == labels[i] {
			result += 1.0
		}
	}
	return result / float64(len(labels)), nil
}

// Render returns a human-readable text representation of the tree
func (c *Classifier) Render() string {
	if c.root == nil {
		return "<not fitted>\n"
	}
	return c.root.String()
}

func (c *Classifier) String() string {
	return c.Render()
}
