package id3

import (
	"fmt"
	"math"
	"strings"
)

/*
ClassCounts holds the number of rows carrying each value of the target
column, in order of first appearance.
*/
type ClassCounts struct {
	labels []string
	counts map[string]int
	total  int
}

/*
CountClasses takes a table and a target column name and returns the
ClassCounts of the target values over the table rows, or an error if the
table has no such column.
*/
func CountClasses(t Table, target string) (*ClassCounts, error) {
	values, err := t.Column(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTargetNotFound, err)
	}
	cc := &ClassCounts{counts: make(map[string]int)}
	for _, v := range values {
		if _, ok := cc.counts[v]; !ok {
			cc.labels = append(cc.labels, v)
		}
		cc.counts[v]++
	}
	cc.total = len(values)
	return cc, nil
}

// Labels returns the observed labels in order of first appearance
func (cc *ClassCounts) Labels() []string {
	return cc.labels
}

// Count returns the number of rows with the given label
func (cc *ClassCounts) Count(label string) int {
	return cc.counts[label]
}

// Total returns the number of rows counted
func (cc *ClassCounts) Total() int {
	return cc.total
}

/*
Majority returns the label with the highest count and the count. Ties go to
the label that appeared first. It returns an empty label and 0 when
nothing was counted.
*/
func (cc *ClassCounts) Majority() (label string, count int) {
	for _, l := range cc.labels {
		if c := cc.counts[l]; c > count {
			label = l
			count = c
		}
	}
	return
}

/*
Entropy returns the base 2 Shannon entropy of the counted distribution or
ErrEmptyPartition if nothing was counted.
*/
func (cc *ClassCounts) Entropy() (float64, error) {
	if cc.total == 0 {
		return 0.0, ErrEmptyPartition
	}
	var result float64
	total := float64(cc.total)
	for _, l := range cc.labels {
		probValue := float64(cc.counts[l]) / total
		result -= probValue * math.Log2(probValue)
	}
	return result, nil
}

func (cc *ClassCounts) String() string {
	parts := make([]string, 0, len(cc.labels))
	for _, l := range cc.labels {
		parts = append(parts, fmt.Sprintf("%s:%d", l, cc.counts[l]))
	}
	return strings.Join(parts, " ")
}
