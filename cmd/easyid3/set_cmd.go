package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	biosql "github.com/adriaciurana/easy-id3/pkg/bio/sql"
	"github.com/adriaciurana/easy-id3/pkg/bio/sql/pgadapter"
	"github.com/adriaciurana/easy-id3/pkg/bio/sql/sqlite3adapter"
	"github.com/adriaciurana/easy-id3/pkg/id3"
)

type setCmdConfig struct {
	dbConfig
	input          dataSource
	output         string
	outputSQLTable string
}

func setCmd() *cobra.Command {
	config := &setCmdConfig{}
	config.input = dataSource{dbConfig: &config.dbConfig, name: "input set"}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Copy a set of data into an SQL database",
		Long:  `Read a set of data from any supported input and store it on a table of an SQLite3 or PostgreSQL database`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return config.dbConfig.load(cmd.Flags())
		},
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				log.Error().Err(err).Msg("invalid flags")
				os.Exit(1)
			}
			t, err := config.input.readTable(cmd.Context())
			if err != nil {
				log.Error().Err(err).Msg("cannot read input set")
				os.Exit(2)
			}
			count, err := config.writeTable(cmd.Context(), t)
			if err != nil {
				log.Error().Err(err).Int("inserted", count).Msg("cannot write output set")
				os.Exit(3)
			}
			log.Info().Int("inserted", count).Str("table", config.outputSQLTable).Msg("set stored")
		},
	}
	config.input.addFlags(cmd.Flags(), "", "i", "the data to store")
	config.dbConfig.addFlags(cmd.Flags())
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to an SQLite3 (.db) file or a PostgreSQL DB connection URL to store the set on (required)")
	cmd.Flags().StringVar(&(config.outputSQLTable), "output-sql-table", "", "name of the SQL table to store the set on (required)")
	return cmd
}

func (scc *setCmdConfig) Validate() error {
	if scc.output == "" {
		return fmt.Errorf("required output flag was not set")
	}
	if scc.outputSQLTable == "" {
		return fmt.Errorf("required output-sql-table flag was not set")
	}
	out := dataSource{location: scc.output}
	if k := out.kind(); k != sqlite3Source && k != postgreSQLSource {
		return fmt.Errorf("cannot store a set on %s output %s", k, scc.output)
	}
	return scc.input.Validate()
}

func (scc *setCmdConfig) outputAdapter() (biosql.Adapter, error) {
	out := dataSource{location: scc.output}
	if out.kind() == postgreSQLSource {
		log.Debug().Msg("creating PostgreSQL adapter for output set")
		return pgadapter.New(scc.output)
	}
	log.Debug().Str("file", scc.output).Msg("creating SQLite3 adapter for output set")
	return sqlite3adapter.New(scc.output, scc.maxDBConns)
}

func (scc *setCmdConfig) writeTable(ctx context.Context, t id3.Table) (int, error) {
	a, err := scc.outputAdapter()
	if err != nil {
		return 0, err
	}
	defer a.Close()
	return biosql.WriteTable(ctx, a, scc.outputSQLTable, t)
}
