package cli

import (
	"bytes"
	"errors"
	"io"
	"os"

	"umamiconnector/internal/core/report"
	perr "umamiconnector/internal/platform/errors"

	"gopkg.in/yaml.v3"
)

// QueryFile is the YAML form of one query
//
//	kind: metrics
//	website_id: 02d89813-7a72-41e1-87f0-8d668f85008b
//	params:
//	  type: browser
//	date_range:
//	  start_date: 2024-01-01
//	  end_date: 2024-01-31
//	fields: [metric_type]
type QueryFile struct {
	Kind      string            `yaml:"kind"`
	WebsiteID string            `yaml:"website_id"`
	Params    map[string]string `yaml:"params"`
	DateRange *report.DateRange `yaml:"date_range"`
	Fields    []string          `yaml:"fields"`
}

// LoadQueryFile reads and strictly decodes path; unknown keys are rejected
func LoadQueryFile(path string) (QueryFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return QueryFile{}, perr.WithField(perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "read query file %s", path), "file")
	}
	return DecodeQueryFile(bytes.NewReader(b))
}

// DecodeQueryFile decodes one YAML document; an empty document is an empty query
func DecodeQueryFile(r io.Reader) (QueryFile, error) {
	var qf QueryFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&qf); err != nil && !errors.Is(err, io.EOF) {
		return QueryFile{}, perr.WithField(perr.Wrap(err, perr.ErrorCodeInvalidArgument, "invalid query file"), "file")
	}
	return qf, nil
}
