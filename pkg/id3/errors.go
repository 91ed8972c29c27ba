package id3

// Error represents an error raised while growing a tree or predicting with it
type Error string

const (
	// ErrTargetNotFound is returned by Fit when no target column can be
	// determined from its arguments, or when the named target is not a
	// column of the table.
	ErrTargetNotFound = Error("target not found")

	// ErrRedundantDefinition is returned by Fit when both a target name and
	// a label column are given.
	ErrRedundantDefinition = Error("redundant target definition: both target and labels given")

	// ErrEmptyPartition is returned when the entropy of a table without rows
	// is requested.
	ErrEmptyPartition = Error("cannot compute entropy of an empty partition")

	// ErrNoSplittableAttribute is returned when a split is requested on a
	// table whose only column is the target.
	ErrNoSplittableAttribute = Error("no attribute to split on")

	// ErrUnmatchedPredicate is returned when predicting with the
	// FailOnUnmatched policy and a row satisfies no child predicate.
	ErrUnmatchedPredicate = Error("row does not satisfy any child predicate")

	// ErrAttributeIsTarget is returned when the information gain of
	// splitting on the target column itself is requested.
	ErrAttributeIsTarget = Error("attribute is the target column")

	// ErrMissingAttribute is returned when a row has no value for an
	// attribute a predicate tests.
	ErrMissingAttribute = Error("row has no value for attribute")

	// ErrUnknownOperator is returned when evaluating a predicate with an
	// operator tag that has no evaluation defined.
	ErrUnknownOperator = Error("unknown predicate operator")

	// ErrNotFitted is returned when predicting with a classifier that has
	// not been fitted.
	ErrNotFitted = Error("classifier has not been fitted")

	// ErrLabelCountMismatch is returned by Fit when the label column and the
	// table have a different number of rows.
	ErrLabelCountMismatch = Error("label count does not match row count")
)

func (e Error) Error() string {
	return string(e)
}
