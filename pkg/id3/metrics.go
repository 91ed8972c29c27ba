package id3

import (
	"fmt"
	"math"
)

/*
ValueEntropy pairs a value of an attribute with the entropy of the target
over the rows holding that value.
*/
type ValueEntropy struct {
	Value   string
	Entropy float64
}

/*
ValueEntropies is the list of entropies for each value of an attribute,
in order of first appearance of the value.
*/
type ValueEntropies []ValueEntropy

/*
Entropy takes a table and the name of the target column and returns the
base 2 Shannon entropy of the target values over the table rows:
 -Σ p(v) x log2(p(v))
for each observed target value v. It returns ErrEmptyPartition if the
table has no rows and ErrTargetNotFound if it has no target column.
*/
func Entropy(t Table, target string) (float64, error) {
	cc, err := CountClasses(t, target)
	if err != nil {
		return 0.0, err
	}
	return cc.Entropy()
}

/*
InformationGain takes the entropy of a table, the table, an attribute and
the target column name, and returns the information gain obtained by
partitioning the table rows by the attribute values:
 parentEntropy - Σ (|Tv| / |T|) x Entropy(Tv)
with Tv being the subtable of rows with value v for the attribute. It also
returns the entropy of each Tv, so children of a split do not recompute it.
It returns ErrAttributeIsTarget if the attribute is the target column.
*/
func InformationGain(parentEntropy float64, t Table, attribute, target string) (float64, ValueEntropies, error) {
	if attribute == target {
		return 0.0, nil, fmt.Errorf("%w: %q", ErrAttributeIsTarget, attribute)
	}
	values, err := t.Column(attribute)
	if err != nil {
		return 0.0, nil, err
	}
	labels, err := t.Column(target)
	if err != nil {
		return 0.0, nil, fmt.Errorf("%w: %v", ErrTargetNotFound, err)
	}
	if len(values) == 0 {
		return 0.0, nil, ErrEmptyPartition
	}
	partitions := make(map[string]*ClassCounts)
	var order []string
	for i, v := range values {
		cc, ok := partitions[v]
		if !ok {
			cc = &ClassCounts{counts: make(map[string]int)}
			partitions[v] = cc
			order = append(order, v)
		}
		if _, ok = cc.counts[labels[i]]; !ok {
			cc.labels = append(cc.labels, labels[i])
		}
		cc.counts[labels[i]]++
		cc.total++
	}
	informationGain := parentEntropy
	totalCount := float64(len(values))
	entropies := make(ValueEntropies, 0, len(order))
	for _, v := range order {
		cc := partitions[v]
		vEntropy, err := cc.Entropy()
		if err != nil {
			return 0.0, nil, err
		}
		entropies = append(entropies, ValueEntropy{v, vEntropy})
		informationGain -= vEntropy * float64(cc.total) / totalCount
	}
	return informationGain, entropies, nil
}

/*
SelectBestSplit takes the entropy of a table, the table and the target
column name and returns the attribute with the highest information gain
along the per value entropies of splitting on it.
Attributes are evaluated in column order, and an attribute only replaces
the current best one if its gain is strictly greater, so ties go to the
attribute that comes first.
It returns ErrNoSplittableAttribute if the target is the only column.
*/
func SelectBestSplit(parentEntropy float64, t Table, target string) (string, ValueEntropies, error) {
	var (
		best          string
		bestEntropies ValueEntropies
		found         bool
	)
	maxGain := math.Inf(-1)
	for _, attribute := range t.Columns() {
		if attribute == target {
			continue
		}
		gain, entropies, err := InformationGain(parentEntropy, t, attribute, target)
		if err != nil {
			return "", nil, fmt.Errorf("computing information gain for %q: %w", attribute, err)
		}
		if !found || gain > maxGain {
			best, bestEntropies, maxGain, found = attribute, entropies, gain, true
		}
	}
	if !found {
		return "", nil, ErrNoSplittableAttribute
	}
	return best, bestEntropies, nil
}
