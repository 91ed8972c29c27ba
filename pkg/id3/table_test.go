package id3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	_, err := NewTable([]string{"a", "a"}, nil)
	assert.Error(t, err)

	_, err = NewTable([]string{"a", "b"}, [][]string{{"1", "2"}, {"1"}})
	assert.Error(t, err)

	table, err := NewTable([]string{"a", "b"}, [][]string{{"1", "2"}, {"3", "4"}})
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, Row{"a": "3", "b": "4"}, table.Row(1))
	assert.True(t, table.HasColumn("b"))
	assert.False(t, table.HasColumn("c"))

	_, err = table.Column("c")
	assert.Error(t, err)
}

func TestNewTableFromRows(t *testing.T) {
	table, err := NewTableFromRows([]string{"b", "a"}, []Row{{"a": "1", "b": "2"}})
	require.NoError(t, err)
	values, err := table.Column("b")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, values)

	_, err = NewTableFromRows([]string{"a", "c"}, []Row{{"a": "1", "b": "2"}})
	assert.ErrorIs(t, err, ErrMissingAttribute)
}

func TestTableWhereAndDropDoNotModify(t *testing.T) {
	table := weatherTable(t)

	sunny, err := table.Where(Equals("Outlook", "Sunny"))
	require.NoError(t, err)
	assert.Equal(t, 5, sunny.Len())
	assert.Equal(t, table.Columns(), sunny.Columns())

	dropped := sunny.Drop("Outlook")
	assert.Equal(t, []string{"Temp", "Humidity", "Windy", weatherTarget}, dropped.Columns())
	assert.False(t, dropped.HasColumn("Outlook"))
	_, ok := dropped.Row(0).ValueFor("Outlook")
	assert.False(t, ok)

	assert.Equal(t, 14, table.Len())
	assert.Equal(t, weatherColumns, table.Columns())
	assert.Equal(t, "Sunny", sunny.Row(0)["Outlook"])

	assert.Equal(t, dropped, dropped.Drop("Pressure"))

	_, err = table.Where(Equals("Pressure", "Low"))
	assert.ErrorIs(t, err, ErrMissingAttribute)
}

func TestJoin(t *testing.T) {
	x := weatherTable(t).Drop(weatherTarget)
	joined, err := Join(x, Column{Name: "play", Values: weatherLabels(t)})
	require.NoError(t, err)
	assert.Equal(t, "play", joined.Columns()[len(joined.Columns())-1])
	assert.Equal(t, "No", joined.Row(0)["play"])

	_, err = Join(x, Column{Name: "Outlook", Values: weatherLabels(t)})
	assert.Error(t, err)
}

func TestPredicate(t *testing.T) {
	p := Equals("Outlook", "Sunny")
	ok, err := p.SatisfiedBy(Row{"Outlook": "Sunny"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.SatisfiedBy(Row{"Outlook": "Rainy"})
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, "Outlook = Sunny", p.String())

	_, err = Predicate{"Outlook", Operator("<"), "Sunny"}.SatisfiedBy(Row{"Outlook": "Sunny"})
	assert.ErrorIs(t, err, ErrUnknownOperator)
}
