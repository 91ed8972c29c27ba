package main

import (
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/adriaciurana/easy-id3/pkg/bio"
	"github.com/adriaciurana/easy-id3/pkg/id3"
)

type predictCmdConfig struct {
	*trainingConfig
	predictionSet dataSource
	outputCSV     bool
}

func predictCmd() *cobra.Command {
	config := &predictCmdConfig{trainingConfig: newTrainingConfig()}
	config.predictionSet = dataSource{dbConfig: &config.dbConfig, name: "prediction set"}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the target of a set of rows",
		Long:  `Grow a tree from a set of data and use it to predict the target for every row of another set of data.`,
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
			x, err := config.predictionSet.readTable(cmd.Context())
			if err != nil {
				log.Error().Err(err).Msg("cannot read prediction set")
				os.Exit(3)
			}
			err = config.validateSet(x, false)
			if err != nil {
				log.Error().Err(err).Msg("invalid prediction set")
				os.Exit(4)
			}
			log.Info().Int("rows", x.Len()).Msg("predicting")
			predictions, err := c.Predict(x)
			if err != nil {
				log.Error().Err(err).Msg("cannot predict")
				os.Exit(5)
			}
			err = config.outputPredictions(cmd.OutOrStdout(), x, c.Target(), predictions)
			if err != nil {
				log.Error().Err(err).Msg("cannot write predictions")
				os.Exit(6)
			}
		},
	}
	config.addFlags(cmd.Flags())
	config.predictionSet.addFlags(cmd.Flags(), "predict-", "p", "the rows to predict")
	cmd.Flags().BoolVar(&(config.outputCSV), "csv", false, "write the predictions as CSV instead of a table")
	return cmd
}

func (pcc *predictCmdConfig) Validate() error {
	if pcc.trainingSet.location == "" && pcc.predictionSet.location == "" {
		return errBothFromStdin
	}
	err := pcc.trainingConfig.Validate()
	if err != nil {
		return err
	}
	return pcc.predictionSet.Validate()
}

func (pcc *predictCmdConfig) outputPredictions(w io.Writer, x id3.Table, target string, predictions []string) error {
	if pcc.outputCSV {
		return bio.WriteCSVPredictions(w, x, target, predictions)
	}
	columns := x.Columns()
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeader(append(append([]string{}, columns...), target))
	for i, p := range predictions {
		r := x.Row(i)
		record := make([]string, 0, len(columns)+1)
		for _, col := range columns {
			record = append(record, r[col])
		}
		table.Append(append(record, p))
	}
	table.Render()
	return nil
}
