package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formaudit/pkg/audit"
)

// JSONRenderer encodes the report as indented JSON.
type JSONRenderer struct{}

func (JSONRenderer) Name() string { return "json" }

func (JSONRenderer) ContentType() string { return "application/json" }

func (JSONRenderer) Render(_ context.Context, report audit.Report) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return nil, fmt.Errorf("report: encode json: %w", err)
	}
	return buf.Bytes(), nil
}

// YAMLRenderer encodes the report as YAML.
type YAMLRenderer struct{}

func (YAMLRenderer) Name() string { return "yaml" }

func (YAMLRenderer) ContentType() string { return "application/yaml" }

func (YAMLRenderer) Render(_ context.Context, report audit.Report) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return nil, fmt.Errorf("report: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("report: close yaml encoder: %w", err)
	}
	return buf.Bytes(), nil
}
