package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/adriaciurana/easy-id3/pkg/id3"
)

type growCmdConfig struct {
	*trainingConfig
	output string
	leaves bool
}

func growCmd() *cobra.Command {
	config := &growCmdConfig{trainingConfig: newTrainingConfig()}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow an ID3 decision tree from a set of data to predict a certain column and print it.`,
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
			err = config.outputTree(cmd.OutOrStdout(), c)
			if err != nil {
				log.Error().Err(err).Msg("cannot write tree")
				os.Exit(3)
			}
		},
	}
	config.addFlags(cmd.Flags())
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the grown tree will be written (defaults to STDOUT)")
	cmd.Flags().BoolVar(&(config.leaves), "leaves", false, "print a table with the path, class counts and prediction of every leaf instead of the tree")
	return cmd
}

func (gcc *growCmdConfig) outputTree(stdout io.Writer, c *id3.Classifier) error {
	w := stdout
	if gcc.output != "" {
		f, err := os.Create(gcc.output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if gcc.leaves {
		return writeLeavesTable(w, c.Root())
	}
	_, err := io.WriteString(w, c.Render())
	return err
}

// writeLeavesTable prints a row for each leaf of the tree in pre-order
func writeLeavesTable(w io.Writer, root *id3.Node) error {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"path", "class counts", "entropy", "prediction"})
	var visit func(n *id3.Node, path []string)
	visit = func(n *id3.Node, path []string) {
		if n.Predicate != nil {
			path = append(path, n.Predicate.String())
		}
		if n.IsLeaf() {
			p := id3.RootLabel
			if len(path) > 0 {
				p = strings.Join(path, ", ")
			}
			table.Append([]string{p, n.ClassCounts.String(), fmt.Sprintf("%f", n.Entropy), n.Prediction()})
			return
		}
		for _, child := range n.Children {
			visit(child, path[:len(path):len(path)])
		}
	}
	visit(root, nil)
	table.Render()
	return nil
}
