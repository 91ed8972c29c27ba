package bio

import (
	"fmt"
	"os"
	"sort"

	"github.com/adriaciurana/easy-id3/pkg/id3"
	yaml "gopkg.in/yaml.v2"
)

/*
Metadata describes a dataset: the column holding the labels to predict
and the attributes to consider, each with the list of values it can take.
*/
type Metadata struct {
	Target   string
	Features map[string][]string
}

/*
ReadYMLMetadata takes a slice of bytes with a dataset description in YML and
returns the Metadata parsed from it or an error.
The YML is expected to be an object with an optional target property naming
the label column and a features property. The value for the latter should
be an object with a property for each feature with its name and a list of
valid values for it.
*/
func ReadYMLMetadata(md []byte) (*Metadata, error) {
	raw := struct {
		Target   string                 `yaml:"target"`
		Features map[string]interface{} `yaml:"features"`
	}{}
	err := yaml.Unmarshal(md, &raw)
	if err != nil {
		return nil, fmt.Errorf("parsing yml metadata: %v", err)
	}
	if raw.Features == nil {
		return nil, fmt.Errorf("metadata file has no feature information")
	}
	metadata := &Metadata{Target: raw.Target, Features: make(map[string][]string)}
	for fn, vs := range raw.Features {
		values, ok := vs.([]interface{})
		if !ok {
			return nil, fmt.Errorf("invalid declaration of type %T for feature %s, expected a list of values", vs, fn)
		}
		stringVs := make([]string, 0, len(values))
		for _, v := range values {
			stringVs = append(stringVs, fmt.Sprintf("%v", v))
		}
		metadata.Features[fn] = stringVs
	}
	return metadata, nil
}

/*
ReadYMLMetadataFromFile takes a filepath string, reads its contents and uses
ReadYMLMetadata to parse it and return the parsed Metadata or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadYMLMetadataFromFile(filepath string) (*Metadata, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading metadata yml file %s: %v", filepath, err)
	}
	metadata, err := ReadYMLMetadata(md)
	if err != nil {
		err = fmt.Errorf("parsing metadata yml file %s: %v", filepath, err)
	}
	return metadata, err
}

// Attributes returns the names of the described features sorted
// alphabetically, leaving out the target
func (m *Metadata) Attributes() []string {
	result := make([]string, 0, len(m.Features))
	for fn := range m.Features {
		if fn != m.Target {
			result = append(result, fn)
		}
	}
	sort.Strings(result)
	return result
}

/*
Validate takes a table and the names of the attributes in use and returns
an error if the table lacks a column for the target or any of those
attributes, or if any of the values for a described feature column is not
among the valid values for the feature. With no attribute names every
described feature is checked.
*/
func (m *Metadata) Validate(t id3.Table, attributes ...string) error {
	if m.Target != "" && !t.HasColumn(m.Target) {
		return fmt.Errorf("validating table: %w: no column %q", id3.ErrTargetNotFound, m.Target)
	}
	return m.ValidateFeatures(t, attributes...)
}

/*
ValidateFeatures works like Validate but does not require the table to have
a target column, as is the case for sets of rows to predict.
*/
func (m *Metadata) ValidateFeatures(t id3.Table, attributes ...string) error {
	if len(attributes) == 0 {
		attributes = m.Attributes()
	}
	for _, fn := range attributes {
		if fn == m.Target {
			continue
		}
		values, err := t.Column(fn)
		if err != nil {
			return fmt.Errorf("validating table: %v", err)
		}
		domain, described := m.Features[fn]
		if !described {
			continue
		}
		valid := make(map[string]bool, len(domain))
		for _, v := range domain {
			valid[v] = true
		}
		for i, v := range values {
			if !valid[v] {
				return fmt.Errorf("validating table: row %d: feature %s got unknown value %q", i, fn, v)
			}
		}
	}
	return nil
}
