package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/adriaciurana/easy-id3/pkg/bio"
	"github.com/adriaciurana/easy-id3/pkg/bio/mongo"
	biosql "github.com/adriaciurana/easy-id3/pkg/bio/sql"
	"github.com/adriaciurana/easy-id3/pkg/bio/sql/pgadapter"
	"github.com/adriaciurana/easy-id3/pkg/bio/sql/sqlite3adapter"
	"github.com/adriaciurana/easy-id3/pkg/id3"
)

type sourceKind int

const (
	csvSource sourceKind = iota
	sqlite3Source
	postgreSQLSource
	mongoDBSource
)

func (sk sourceKind) String() string {
	switch sk {
	case sqlite3Source:
		return "SQLite3"
	case postgreSQLSource:
		return "PostgreSQL"
	case mongoDBSource:
		return "MongoDB"
	}
	return "CSV"
}

// dbConfig holds the settings shared by every database a command reads from
type dbConfig struct {
	maxDBConns  int
	dialTimeout time.Duration
}

func (dc *dbConfig) addFlags(fs *pflag.FlagSet) {
	fs.IntVar(&(dc.maxDBConns), "max-db-conns", 0, "limit to SQLite3 DB connections opened at a time (defaults to 0: no limit)")
	fs.DurationVar(&(dc.dialTimeout), "mongo-timeout", 10*time.Second, "timeout to establish a connection to a MongoDB server")
}

// load binds the database flags to viper and takes their values from it
func (dc *dbConfig) load(fs *pflag.FlagSet) error {
	err := bindFlags(fs, "max-db-conns", "mongo-timeout")
	if err != nil {
		return err
	}
	dc.maxDBConns = viper.GetInt("max-db-conns")
	dc.dialTimeout = viper.GetDuration("mongo-timeout")
	return nil
}

/*
dataSource describes where a command reads a table from: a CSV file
(or STDIN), a table on an SQLite3 file or PostgreSQL database, or a
collection on a MongoDB database.
*/
type dataSource struct {
	*dbConfig
	name            string
	location        string
	sqlTable        string
	mongoCollection string
}

/*
addFlags registers on the given flagset the flags to set the location of
the source, the SQL table and the MongoDB collection, prefixing their names
with the given prefix.
*/
func (ds *dataSource) addFlags(fs *pflag.FlagSet, prefix, shorthand, usage string) {
	fs.StringVarP(&(ds.location), prefix+"input", shorthand, "", fmt.Sprintf("path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with %s (defaults to STDIN, interpreted as CSV)", usage))
	fs.StringVar(&(ds.sqlTable), prefix+"sql-table", "", fmt.Sprintf("name of the SQL table with %s (required for SQLite3 and PostgreSQL inputs)", usage))
	fs.StringVar(&(ds.mongoCollection), prefix+"mongo-collection", "", fmt.Sprintf("name of the MongoDB collection with %s (required for MongoDB inputs)", usage))
}

func (ds *dataSource) kind() sourceKind {
	switch {
	case strings.HasPrefix(ds.location, "postgresql://"), strings.HasPrefix(ds.location, "postgres://"):
		return postgreSQLSource
	case strings.HasPrefix(ds.location, "mongodb://"):
		return mongoDBSource
	case strings.HasSuffix(ds.location, ".db"):
		return sqlite3Source
	}
	return csvSource
}

func (ds *dataSource) Validate() error {
	switch ds.kind() {
	case sqlite3Source, postgreSQLSource:
		if ds.sqlTable == "" {
			return fmt.Errorf("a SQL table is required to read the %s from %s", ds.name, ds.kind())
		}
	case mongoDBSource:
		if ds.mongoCollection == "" {
			return fmt.Errorf("a collection is required to read the %s from %s", ds.name, ds.kind())
		}
	}
	return nil
}

/*
readTable reads every column of the table from the source, keeping the
order the source gives them in.
*/
func (ds *dataSource) readTable(ctx context.Context) (id3.Table, error) {
	logger := log.With().Str("source", ds.kind().String()).Str("set", ds.name).Logger()
	var t id3.Table
	var err error
	switch ds.kind() {
	case sqlite3Source:
		logger.Debug().Str("file", ds.location).Str("table", ds.sqlTable).Msg("creating SQLite3 adapter")
		var a biosql.Adapter
		a, err = sqlite3adapter.New(ds.location, ds.maxDBConns)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %v", ds.name, err)
		}
		defer a.Close()
		t, err = biosql.ReadTable(ctx, a, ds.sqlTable, nil)
	case postgreSQLSource:
		logger.Debug().Str("table", ds.sqlTable).Msg("creating PostgreSQL adapter")
		var a biosql.Adapter
		a, err = pgadapter.New(ds.location)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %v", ds.name, err)
		}
		defer a.Close()
		t, err = biosql.ReadTable(ctx, a, ds.sqlTable, nil)
	case mongoDBSource:
		logger.Debug().Str("collection", ds.mongoCollection).Msg("connecting to MongoDB")
		session, dialErr := mongo.Dial(ds.location, ds.dialTimeout)
		if dialErr != nil {
			return nil, fmt.Errorf("opening %s: %v", ds.name, dialErr)
		}
		defer session.Close()
		t, err = mongo.ReadTable(ctx, session, ds.mongoCollection, nil)
	default:
		if ds.location == "" {
			logger.Debug().Msg("reading from STDIN")
		} else {
			logger.Debug().Str("file", ds.location).Msg("reading file")
		}
		t, err = bio.ReadCSVTableFromFilePath(ds.location)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ds.name, err)
	}
	logger.Info().Int("rows", t.Len()).Int("columns", len(t.Columns())).Msg("read")
	return t, nil
}
