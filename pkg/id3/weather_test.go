package id3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const weatherTarget = "Play Golf"

var weatherColumns = []string{"Outlook", "Temp", "Humidity", "Windy", weatherTarget}

var weatherRecords = [][]string{
	{"Rainy", "Hot", "High", "False", "No"},
	{"Rainy", "Hot", "High", "True", "No"},
	{"Overcast", "Hot", "High", "False", "Yes"},
	{"Sunny", "Mild", "High", "False", "Yes"},
	{"Sunny", "Cool", "Normal", "False", "Yes"},
	{"Sunny", "Cool", "Normal", "True", "No"},
	{"Overcast", "Cool", "Normal", "True", "Yes"},
	{"Rainy", "Mild", "High", "False", "No"},
	{"Rainy", "Cold", "Normal", "False", "Yes"},
	{"Sunny", "Mild", "Normal", "False", "Yes"},
	{"Rainy", "Mild", "Normal", "True", "Yes"},
	{"Overcast", "Mild", "High", "True", "Yes"},
	{"Overcast", "Hot", "Normal", "False", "Yes"},
	{"Sunny", "Mild", "High", "True", "No"},
}

func weatherTable(t *testing.T) Table {
	t.Helper()
	table, err := NewTable(weatherColumns, weatherRecords)
	require.NoError(t, err)
	return table
}

func weatherLabels(t *testing.T) []string {
	t.Helper()
	labels, err := weatherTable(t).Column(weatherTarget)
	require.NoError(t, err)
	return labels
}

func fittedWeatherClassifier(t *testing.T, opts ...Option) *Classifier {
	t.Helper()
	c := New(opts...)
	require.NoError(t, c.Fit(weatherTable(t), WithTarget(weatherTarget)))
	return c
}
