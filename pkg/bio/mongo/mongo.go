/*
Package mongo provides functions to read id3 tables
from the documents of a MongoDB collection.
*/
package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/adriaciurana/easy-id3/pkg/id3"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const idField = "_id"

/*
Dial takes a MongoDB connection URL and a timeout and returns a session
on the server or an error if it cannot be established in that time.
*/
func Dial(url string, timeout time.Duration) (*mgo.Session, error) {
	session, err := mgo.DialWithTimeout(url, timeout)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %v", err)
	}
	return session, nil
}

/*
ReadTable takes a context, a MongoDB session, the name of a collection on
the default database of the session and the names of the fields to read,
and returns an id3.Table with a row for every document of the collection.
When no field names are given, the fields of the first document (except
_id) are used, in the order they are stored in.
Every document must have a value for every field, values that are not
strings are formatted as text.
*/
func ReadTable(ctx context.Context, session *mgo.Session, collection string, fields []string) (id3.Table, error) {
	q := session.DB("").C(collection).Find(nil)
	if len(fields) > 0 {
		selector := bson.M{idField: 0}
		for _, f := range fields {
			selector[f] = 1
		}
		q = q.Select(selector)
	}
	iter := q.Iter()
	defer iter.Close()
	var docs []bson.D
	var doc bson.D
	for iter.Next(&doc) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
		doc = nil
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("reading collection %s: %v", collection, err)
	}
	return documentsToTable(docs, fields)
}

func documentsToTable(docs []bson.D, fields []string) (id3.Table, error) {
	if len(fields) == 0 && len(docs) > 0 {
		for _, e := range docs[0] {
			if e.Name != idField {
				fields = append(fields, e.Name)
			}
		}
	}
	records := make([][]string, 0, len(docs))
	for i, d := range docs {
		m := d.Map()
		record := make([]string, len(fields))
		for j, f := range fields {
			v, ok := m[f]
			if !ok || v == nil {
				return nil, fmt.Errorf("document %d: %w %q", i, id3.ErrMissingAttribute, f)
			}
			s, ok := v.(string)
			if !ok {
				s = fmt.Sprintf("%v", v)
			}
			record[j] = s
		}
		records = append(records, record)
	}
	return id3.NewTable(fields, records)
}
