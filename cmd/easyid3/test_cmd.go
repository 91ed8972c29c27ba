package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var errBothFromStdin = errors.New("cannot read both the training set and the other set from STDIN")

type testCmdConfig struct {
	*trainingConfig
	testingSet dataSource
}

func testCmd() *cobra.Command {
	config := &testCmdConfig{trainingConfig: newTrainingConfig()}
	config.testingSet = dataSource{dbConfig: &config.dbConfig, name: "testing set"}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Grow a tree from a set of data and test its performance against a testing set`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return config.load(cmd.Flags())
		},
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				log.Error().Err(err).Msg("invalid flags")
				os.Exit(1)
			}
			c, err := config.grow(cmd.Context())
			if err != nil {
				log.Error().Err(err).Msg("cannot grow tree")
				os.Exit(2)
			}
			t, err := config.testingSet.readTable(cmd.Context())
			if err != nil {
				log.Error().Err(err).Msg("cannot read testing set")
				os.Exit(3)
			}
			err = config.validateSet(t, true)
			if err != nil {
				log.Error().Err(err).Msg("invalid testing set")
				os.Exit(4)
			}
			log.Info().Int("rows", t.Len()).Msg("testing tree")
			successRate, err := c.Test(t)
			if err != nil {
				log.Error().Err(err).Msg("cannot test tree")
				os.Exit(5)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%f success rate\n", successRate)
		},
	}
	config.addFlags(cmd.Flags())
	config.testingSet.addFlags(cmd.Flags(), "test-", "e", "data to test the tree against")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.trainingSet.location == "" && tcc.testingSet.location == "" {
		return errBothFromStdin
	}
	err := tcc.trainingConfig.Validate()
	if err != nil {
		return err
	}
	return tcc.testingSet.Validate()
}
