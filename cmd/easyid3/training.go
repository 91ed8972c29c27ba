package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/adriaciurana/easy-id3/pkg/bio"
	"github.com/adriaciurana/easy-id3/pkg/id3"
)

/*
trainingConfig holds the settings every command needs to grow a
classifier: the training set source, the optional metadata describing it,
the target to predict and the attributes to split on.
*/
type trainingConfig struct {
	dbConfig
	trainingSet   dataSource
	metadataInput string
	target        string
	attributes    []string
	failUnmatched bool
	metadata      *bio.Metadata
}

func newTrainingConfig() *trainingConfig {
	tc := &trainingConfig{}
	tc.trainingSet = dataSource{dbConfig: &tc.dbConfig, name: "training set"}
	return tc
}

func (tc *trainingConfig) addFlags(fs *pflag.FlagSet) {
	tc.trainingSet.addFlags(fs, "", "i", "data to use to grow the tree")
	tc.dbConfig.addFlags(fs)
	fs.StringVarP(&(tc.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the target and the features available on the input")
	fs.StringVarP(&(tc.target), "target", "t", "", "name of the column the grown tree should predict (required unless set in the metadata)")
	fs.StringSliceVarP(&(tc.attributes), "attributes", "a", nil, "comma-separated names of the columns the tree may split on (defaults to the metadata features or every other column)")
	fs.BoolVar(&(tc.failUnmatched), "fail-unmatched", false, "fail predictions for rows with a value never seen during training instead of falling back to the majority label")
}

/*
load binds the training flags to viper and takes their values from it, so
they can also be set on the config file or through EASYID3_ prefixed
environment variables (with dashes replaced by underscores).
*/
func (tc *trainingConfig) load(fs *pflag.FlagSet) error {
	err := bindFlags(fs, "metadata", "target", "attributes", "fail-unmatched")
	if err != nil {
		return err
	}
	tc.metadataInput = viper.GetString("metadata")
	tc.target = viper.GetString("target")
	tc.attributes = splitList(viper.GetStringSlice("attributes"))
	tc.failUnmatched = viper.GetBool("fail-unmatched")
	return tc.dbConfig.load(fs)
}

func (tc *trainingConfig) Validate() error {
	if tc.metadataInput == "" && tc.target == "" {
		return fmt.Errorf("required target flag was not set")
	}
	return tc.trainingSet.Validate()
}

/*
loadMetadata reads the metadata file if one was given and completes the
target and attributes with it. A target flag contradicting the metadata
is an error.
*/
func (tc *trainingConfig) loadMetadata() error {
	if tc.metadataInput == "" {
		return nil
	}
	log.Debug().Str("file", tc.metadataInput).Msg("reading metadata")
	md, err := bio.ReadYMLMetadataFromFile(tc.metadataInput)
	if err != nil {
		return err
	}
	switch {
	case tc.target == "":
		tc.target = md.Target
	case md.Target != "" && md.Target != tc.target:
		return fmt.Errorf("target %s does not match the target %s in metadata", tc.target, md.Target)
	}
	if tc.target == "" {
		return fmt.Errorf("no target was set by flag or metadata")
	}
	if len(tc.attributes) == 0 {
		tc.attributes = md.Attributes()
	}
	tc.metadata = md
	return nil
}

func (tc *trainingConfig) classifier() *id3.Classifier {
	if tc.failUnmatched {
		return id3.New(id3.WithUnmatchedPolicy(id3.FailOnUnmatched))
	}
	return id3.New()
}

/*
grow reads the metadata and the training set and returns a classifier
fitted on it.
*/
func (tc *trainingConfig) grow(ctx context.Context) (*id3.Classifier, error) {
	err := tc.loadMetadata()
	if err != nil {
		return nil, err
	}
	t, err := tc.trainingSet.readTable(ctx)
	if err != nil {
		return nil, err
	}
	err = tc.validateSet(t, true)
	if err != nil {
		return nil, fmt.Errorf("training set: %w", err)
	}
	opts := []id3.FitOption{id3.WithTarget(tc.target)}
	if len(tc.attributes) > 0 {
		opts = append(opts, id3.WithAttributes(tc.attributes...))
	}
	log.Info().Int("rows", t.Len()).Str("target", tc.target).Msg("growing tree")
	c := tc.classifier()
	err = c.Fit(t, opts...)
	if err != nil {
		return nil, fmt.Errorf("growing the tree: %w", err)
	}
	log.Info().Int("leaves", len(c.Root().Leaves())).Msg("tree grown")
	return c, nil
}

/*
validateSet checks a table against the metadata, if any, looking only at
the attributes in use. The target column is required when labeled is true.
*/
func (tc *trainingConfig) validateSet(t id3.Table, labeled bool) error {
	if tc.metadata == nil {
		return nil
	}
	if labeled {
		return tc.metadata.Validate(t, tc.attributes...)
	}
	return tc.metadata.ValidateFeatures(t, tc.attributes...)
}
