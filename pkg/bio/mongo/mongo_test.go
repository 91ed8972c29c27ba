package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/mgo.v2/bson"

	"github.com/adriaciurana/easy-id3/pkg/id3"
)

func TestDocumentsToTable(t *testing.T) {
	docs := []bson.D{
		{{Name: "_id", Value: bson.NewObjectId()}, {Name: "outlook", Value: "Sunny"}, {Name: "windy", Value: false}, {Name: "play", Value: "Yes"}},
		{{Name: "play", Value: "No"}, {Name: "_id", Value: bson.NewObjectId()}, {Name: "outlook", Value: "Rainy"}, {Name: "windy", Value: true}},
	}

	table, err := documentsToTable(docs, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"outlook", "windy", "play"}, table.Columns())
	assert.Equal(t, id3.Row{"outlook": "Rainy", "play": "No", "windy": "true"}, table.Row(1))

	table, err = documentsToTable(docs, []string{"windy", "play"})
	require.NoError(t, err)
	assert.Equal(t, []string{"windy", "play"}, table.Columns())
	assert.Equal(t, 2, table.Len())

	_, err = documentsToTable(docs, []string{"humidity"})
	assert.ErrorIs(t, err, id3.ErrMissingAttribute)
}

func TestDocumentsToTableEmpty(t *testing.T) {
	table, err := documentsToTable(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	assert.Empty(t, table.Columns())
}
