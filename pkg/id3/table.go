package id3

import (
	"fmt"
)

/*
Table represents an ordered collection of rows sharing a fixed set of
named columns, whose values are categories compared by equality.

Its Columns method returns the names of the columns in order.

Its Len method returns the number of rows.

Its Row method returns the row at the given position.

Its Column method returns the values of a column in row order.

Its Where method returns a table with only the rows satisfying the given
predicate, and its Drop method returns a table without the given column.
Neither modifies the table they are called on.
*/
type Table interface {
	Columns() []string
	HasColumn(name string) bool
	Len() int
	Row(i int) Row
	Column(name string) ([]string, error)
	Where(p Predicate) (Table, error)
	Drop(column string) Table
}

/*
Row maps column names to values.
*/
type Row map[string]string

/*
Column is a named sequence of values, used to provide labels
for a table that does not carry them.
*/
type Column struct {
	Name   string
	Values []string
}

type memoryTable struct {
	columns []string
	index   map[string]int
	records [][]string
}

/*
NewTable takes a slice of column names and a slice of records, each with
one value per column, and returns a Table holding them. It returns an error
if a column name is repeated or a record does not have as many values as
columns.
The records are not copied, the caller must not modify them afterwards.
*/
func NewTable(columns []string, records [][]string) (Table, error) {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, ok := index[c]; ok {
			return nil, fmt.Errorf("duplicated column %q", c)
		}
		index[c] = i
	}
	for i, r := range records {
		if len(r) != len(columns) {
			return nil, fmt.Errorf("record %d has %d values, expected %d", i, len(r), len(columns))
		}
	}
	return &memoryTable{columns, index, records}, nil
}

/*
NewTableFromRows takes a slice of column names and a slice of rows and
returns a Table with those columns and a record for each row. It returns an
error if a row lacks a value for any of the columns.
*/
func NewTableFromRows(columns []string, rows []Row) (Table, error) {
	records := make([][]string, 0, len(rows))
	for i, r := range rows {
		record := make([]string, len(columns))
		for j, c := range columns {
			v, ok := r[c]
			if !ok {
				return nil, fmt.Errorf("row %d: %w %q", i, ErrMissingAttribute, c)
			}
			record[j] = v
		}
		records = append(records, record)
	}
	return NewTable(columns, records)
}

/*
Join takes a table and a column and returns a new table with the column
appended as the last one. It returns an error if the table already has a
column with the same name or the number of values does not match the
number of rows.
*/
func Join(t Table, c Column) (Table, error) {
	if t.HasColumn(c.Name) {
		return nil, fmt.Errorf("joining column %q: duplicated column", c.Name)
	}
	if len(c.Values) != t.Len() {
		return nil, fmt.Errorf("joining column %q: %w: %d labels for %d rows", c.Name, ErrLabelCountMismatch, len(c.Values), t.Len())
	}
	columns := append(append([]string{}, t.Columns()...), c.Name)
	records := make([][]string, t.Len())
	for i := range records {
		r := t.Row(i)
		record := make([]string, 0, len(columns))
		for _, name := range columns[:len(columns)-1] {
			record = append(record, r[name])
		}
		records[i] = append(record, c.Values[i])
	}
	return NewTable(columns, records)
}

func (mt *memoryTable) Columns() []string {
	return mt.columns
}

func (mt *memoryTable) HasColumn(name string) bool {
	_, ok := mt.index[name]
	return ok
}

func (mt *memoryTable) Len() int {
	return len(mt.records)
}

func (mt *memoryTable) Row(i int) Row {
	r := make(Row, len(mt.columns))
	for j, c := range mt.columns {
		r[c] = mt.records[i][j]
	}
	return r
}

func (mt *memoryTable) Column(name string) ([]string, error) {
	j, ok := mt.index[name]
	if !ok {
		return nil, fmt.Errorf("unknown column %q", name)
	}
	values := make([]string, len(mt.records))
	for i, r := range mt.records {
		values[i] = r[j]
	}
	return values, nil
}

func (mt *memoryTable) Where(p Predicate) (Table, error) {
	var records [][]string
	for i := range mt.records {
		ok, err := p.SatisfiedBy(mt.Row(i))
		if err != nil {
			return nil, err
		}
		if ok {
			records = append(records, mt.records[i])
		}
	}
	return &memoryTable{mt.columns, mt.index, records}, nil
}

func (mt *memoryTable) Drop(column string) Table {
	j, ok := mt.index[column]
	if !ok {
		return mt
	}
	columns := make([]string, 0, len(mt.columns)-1)
	columns = append(columns, mt.columns[:j]...)
	columns = append(columns, mt.columns[j+1:]...)
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c] = i
	}
	records := make([][]string, len(mt.records))
	for i, r := range mt.records {
		record := make([]string, 0, len(columns))
		record = append(record, r[:j]...)
		records[i] = append(record, r[j+1:]...)
	}
	return &memoryTable{columns, index, records}
}

func (mt *memoryTable) String() string {
	return fmt.Sprintf("[ %d x %d ]", len(mt.records), len(mt.columns))
}

/*
ValueFor takes an attribute name and returns the row's value for it and
whether the row has one.
*/
func (r Row) ValueFor(attribute string) (string, bool) {
	v, ok := r[attribute]
	return v, ok
}
