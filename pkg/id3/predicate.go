package id3

import "fmt"

// Operator is the tag identifying how a predicate compares
// a row's value with its own.
type Operator string

// OperatorEquals is satisfied by rows whose value for the
// attribute equals the predicate value.
const OperatorEquals Operator = "="

/*
Predicate represents a condition on the value of an attribute. It labels
the edge from a node to one of its children.
*/
type Predicate struct {
	Attribute string
	Operator  Operator
	Value     string
}

/*
Equals takes an attribute name and a value and returns a Predicate
satisfied by rows with that value for the attribute.
*/
func Equals(attribute, value string) Predicate {
	return Predicate{attribute, OperatorEquals, value}
}

/*
SatisfiedBy receives a row and returns a boolean indicating if the row
satisfies the predicate. It returns an error if the row has no value for
the predicate attribute or the predicate operator is unknown.
*/
func (p Predicate) SatisfiedBy(r Row) (bool, error) {
	v, ok := r.ValueFor(p.Attribute)
	if !ok {
		return false, fmt.Errorf("%w %q", ErrMissingAttribute, p.Attribute)
	}
	switch p.Operator {
	case OperatorEquals:
		return v == p.Value, nil
	}
	return false, fmt.Errorf("%w %q", ErrUnknownOperator, string(p.Operator))
}

func (p Predicate) String() string {
	return fmt.Sprintf("%s %s %s", p.Attribute, p.Operator, p.Value)
}
