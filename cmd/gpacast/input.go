package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/YuminosukeSato/gpacast/pkg/errors"
	"github.com/YuminosukeSato/gpacast/student"
)

// readRecord loads a student record from path. ".json" files and "-"
// (stdin) are read as JSON, ".yaml" and ".yml" as YAML. Either form may also
// hold a bare list of 25 feature values in vector order. A record must set
// every feature and nothing else.
func readRecord(path string, stdin io.Reader) (student.Record, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return student.Record{}, errors.Wrapf(err, "failed to read %s", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case path == "-" || ext == ".json":
		return decodeJSONRecord(data)
	case ext == ".yaml" || ext == ".yml":
		return decodeYAMLRecord(data)
	default:
		return student.Record{}, errors.Wrapf(errors.ErrUnsupportedFormat, "input %s: use .json, .yaml, .yml or -", path)
	}
}

func decodeJSONRecord(data []byte) (student.Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var values []float64
		if err := json.Unmarshal(trimmed, &values); err != nil {
			return student.Record{}, errors.Wrap(err, "failed to parse feature list")
		}
		return recordFromValues(values)
	}

	var r student.Record
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&r); err != nil {
		return student.Record{}, errors.Wrap(err, "failed to parse JSON record")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return student.Record{}, errors.Wrap(err, "failed to parse JSON record")
	}
	present := make(map[string]bool, len(fields))
	for k := range fields {
		present[k] = true
	}
	if err := checkComplete(present); err != nil {
		return student.Record{}, err
	}
	return r, nil
}

func decodeYAMLRecord(data []byte) (student.Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return student.Record{}, errors.Wrap(err, "failed to parse YAML record")
	}
	if len(doc.Content) == 1 && doc.Content[0].Kind == yaml.SequenceNode {
		var values []float64
		if err := doc.Content[0].Decode(&values); err != nil {
			return student.Record{}, errors.Wrap(err, "failed to parse feature list")
		}
		return recordFromValues(values)
	}

	var r student.Record
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil {
		return student.Record{}, errors.Wrap(err, "failed to parse YAML record")
	}

	// マッピングのキーは偶数番目の要素
	present := make(map[string]bool, student.NumFeatures)
	if len(doc.Content) == 1 && doc.Content[0].Kind == yaml.MappingNode {
		content := doc.Content[0].Content
		for i := 0; i+1 < len(content); i += 2 {
			present[content[i].Value] = true
		}
	}
	if err := checkComplete(present); err != nil {
		return student.Record{}, err
	}
	return r, nil
}

// checkComplete fails when a feature key is absent from the input.
func checkComplete(present map[string]bool) error {
	var missing []string
	for _, f := range student.Features() {
		if !present[f.Key()] {
			missing = append(missing, f.Key())
		}
	}
	if len(missing) > 0 {
		return errors.NewValidationError("input", "record is missing fields", strings.Join(missing, ", "))
	}
	return nil
}

func recordFromValues(values []float64) (student.Record, error) {
	v, err := student.VectorFromSlice(values)
	if err != nil {
		return student.Record{}, err
	}
	return student.FromVector(v), nil
}
