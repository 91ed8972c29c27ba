/*
Package bio provides functions to read id3 tables and the metadata
describing them from files.
*/
package bio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/adriaciurana/easy-id3/pkg/id3"
)

/*
ReadCSVTable takes an io.Reader for a CSV stream and returns an id3.Table
with its contents or an error.

The header or first row of the CSV content is expected to consist of the
names of the columns. The rest of the rows should consist of a value for
each column.
*/
func ReadCSVTable(reader io.Reader) (id3.Table, error) {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	records := [][]string{}
	for l := 2; ; l++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading line %d: %v", l, err)
		}
		records = append(records, record)
	}
	t, err := id3.NewTable(header, records)
	if err != nil {
		return nil, fmt.Errorf("building table: %v", err)
	}
	return t, nil
}

/*
ReadCSVTableFromFilePath takes a filepath string, opens the file to which
it points and uses ReadCSVTable to return an id3.Table read from it. An
empty filepath reads from STDIN. It will return an error if the given
filepath cannot be opened for reading.
*/
func ReadCSVTableFromFilePath(filepath string) (id3.Table, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("opening CSV file: %v", err)
		}
		defer f.Close()
	}
	t, err := ReadCSVTable(f)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return t, err
}

/*
WriteCSVPredictions takes an io.Writer, a table, the name of a target and
the predictions for each row of the table, and writes the table as CSV with
an extra column named after the target holding the prediction of each row.
*/
func WriteCSVPredictions(w io.Writer, t id3.Table, target string, predictions []string) error {
	if len(predictions) != t.Len() {
		return fmt.Errorf("writing predictions: %d predictions for %d rows", len(predictions), t.Len())
	}
	cw := csv.NewWriter(w)
	columns := t.Columns()
	err := cw.Write(append(append([]string{}, columns...), target))
	if err != nil {
		return fmt.Errorf("writing header: %v", err)
	}
	for i, p := range predictions {
		r := t.Row(i)
		record := make([]string, 0, len(columns)+1)
		for _, c := range columns {
			record = append(record, r[c])
		}
		err = cw.Write(append(record, p))
		if err != nil {
			return fmt.Errorf("writing row %d: %v", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
