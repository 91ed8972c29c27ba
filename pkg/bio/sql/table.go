package sql

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/adriaciurana/easy-id3/pkg/id3"
)

/*
MaxRowInsertionsPerStatement is the maximum number of rows that are
added with a single insert command by WriteTable. Writing more will
result in running more insertion commands.
*/
const MaxRowInsertionsPerStatement = 10

/*
ReadTable takes a context, an Adapter, the name of a database table and
the names of the columns to read, and returns an id3.Table with the values
of those columns for every row of the database table. When no column
names are given, all the columns of the database table are read in order.
Values are read as strings, a NULL value results in an error.
*/
func ReadTable(ctx context.Context, a Adapter, table string, columns []string) (id3.Table, error) {
	tableID, err := a.Identifier(table)
	if err != nil {
		return nil, err
	}
	selection := "*"
	if len(columns) > 0 {
		ids := make([]string, 0, len(columns))
		for _, c := range columns {
			id, err := a.Identifier(c)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
		selection = strings.Join(ids, ", ")
	}
	rows, err := a.QueryContext(ctx, fmt.Sprintf("SELECT %s FROM %s", selection, tableID))
	if err != nil {
		return nil, fmt.Errorf("querying table %s: %v", table, err)
	}
	defer rows.Close()
	if len(columns) == 0 {
		columns, err = rows.Columns()
		if err != nil {
			return nil, fmt.Errorf("listing columns of table %s: %v", table, err)
		}
	}
	var records [][]string
	for n := 0; rows.Next(); n++ {
		values := make([]sql.NullString, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		err = rows.Scan(dest...)
		if err != nil {
			return nil, fmt.Errorf("scanning row %d of table %s: %v", n, table, err)
		}
		record := make([]string, len(columns))
		for i, v := range values {
			if !v.Valid {
				return nil, fmt.Errorf("row %d of table %s: NULL value for column %s", n, table, columns[i])
			}
			record[i] = v.String
		}
		records = append(records, record)
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("reading table %s: %v", table, err)
	}
	return id3.NewTable(columns, records)
}

/*
WriteTable takes a context, an Adapter, the name of a database table and an
id3.Table, ensures the database table exists with a TEXT column for each
column of the id3.Table and inserts all the rows on it. It returns the
number of inserted rows and an error if not all of them could be inserted.
*/
func WriteTable(ctx context.Context, a Adapter, table string, t id3.Table) (int, error) {
	tableID, err := a.Identifier(table)
	if err != nil {
		return 0, err
	}
	columns := t.Columns()
	if len(columns) == 0 {
		return 0, fmt.Errorf("no columns to store")
	}
	ids := make([]string, 0, len(columns))
	var createStmtBuf bytes.Buffer
	createStmtBuf.WriteString(fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (", tableID))
	for i, c := range columns {
		id, err := a.Identifier(c)
		if err != nil {
			return 0, err
		}
		ids = append(ids, id)
		if i > 0 {
			createStmtBuf.WriteString(", ")
		}
		createStmtBuf.WriteString(fmt.Sprintf("%s TEXT NOT NULL", id))
	}
	createStmtBuf.WriteString(")")
	_, err = a.ExecContext(ctx, createStmtBuf.String())
	if err != nil {
		return 0, fmt.Errorf("ensuring table %s exists: %v", table, err)
	}
	insertStmtStart := fmt.Sprintf("INSERT INTO %s (%s) VALUES ", tableID, strings.Join(ids, ", "))
	var inserted int
	for chunkStart := 0; chunkStart < t.Len(); chunkStart += MaxRowInsertionsPerStatement {
		chunkEnd := chunkStart + MaxRowInsertionsPerStatement
		if chunkEnd > t.Len() {
			chunkEnd = t.Len()
		}
		var insertStmtBuf bytes.Buffer
		insertStmtBuf.WriteString(insertStmtStart)
		args := make([]interface{}, 0, (chunkEnd-chunkStart)*len(columns))
		for i := chunkStart; i < chunkEnd; i++ {
			if i > chunkStart {
				insertStmtBuf.WriteString(", ")
			}
			insertStmtBuf.WriteString("(")
			r := t.Row(i)
			for j, c := range columns {
				if j > 0 {
					insertStmtBuf.WriteString(", ")
				}
				args = append(args, r[c])
				insertStmtBuf.WriteString(a.Placeholder(len(args)))
			}
			insertStmtBuf.WriteString(")")
		}
		_, err = a.ExecContext(ctx, insertStmtBuf.String(), args...)
		if err != nil {
			return inserted, fmt.Errorf("inserting rows %d to %d: %v", chunkStart, chunkEnd-1, err)
		}
		inserted = chunkEnd
	}
	return inserted, nil
}
