// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sheet writes extracted rows to an output grid. Every writer has
// overwrite semantics: previous content is discarded, the header comes
// first, and rows keep the order they were given in.
package sheet

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/people-api/pkg/types"
)

// Writer replaces the content of an output grid with header and rows.
type Writer interface {
	Write(ctx context.Context, header []string, rows [][]string) error
}

// DelimitedWriter writes tab- or comma-separated text.
type DelimitedWriter struct {
	w        io.Writer
	comma    rune
	noHeader bool
}

// NewTSV returns a tab-separated writer.
func NewTSV(w io.Writer, noHeader bool) *DelimitedWriter {
	return &DelimitedWriter{w: w, comma: '\t', noHeader: noHeader}
}

// NewCSV returns a comma-separated writer.
func NewCSV(w io.Writer, noHeader bool) *DelimitedWriter {
	return &DelimitedWriter{w: w, comma: ',', noHeader: noHeader}
}

func (d *DelimitedWriter) Write(_ context.Context, header []string, rows [][]string) error {
	cw := csv.NewWriter(d.w)
	cw.Comma = d.comma
	if !d.noHeader {
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("writing rows: %w", err)
	}
	return nil
}

// JSONWriter writes an array of objects keyed by header column.
type JSONWriter struct {
	w io.Writer
}

// NewJSON returns a JSON writer.
func NewJSON(w io.Writer) *JSONWriter { return &JSONWriter{w: w} }

func (j *JSONWriter) Write(_ context.Context, header []string, rows [][]string) error {
	objs, err := keyed(header, rows)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(j.w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(objs)
}

// YAMLWriter writes a sequence of mappings keyed by header column.
type YAMLWriter struct {
	w io.Writer
}

// NewYAML returns a YAML writer.
func NewYAML(w io.Writer) *YAMLWriter { return &YAMLWriter{w: w} }

func (y *YAMLWriter) Write(_ context.Context, header []string, rows [][]string) error {
	var doc yaml.Node
	doc.Kind = yaml.SequenceNode
	for i, row := range rows {
		if len(row) != len(header) {
			return fmt.Errorf("row %d has %d columns, header has %d", i, len(row), len(header))
		}
		m := &yaml.Node{Kind: yaml.MappingNode}
		for c, col := range header {
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: col},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: row[c]},
			)
		}
		doc.Content = append(doc.Content, m)
	}
	enc := yaml.NewEncoder(y.w)
	defer enc.Close()
	return enc.Encode(&doc)
}

// keyed maps rows onto header names. Go maps would lose column order in
// JSON, so each row becomes an ordered slice of pairs.
func keyed(header []string, rows [][]string) ([]orderedRow, error) {
	out := make([]orderedRow, 0, len(rows))
	for i, row := range rows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("row %d has %d columns, header has %d", i, len(row), len(header))
		}
		out = append(out, orderedRow{header: header, values: row})
	}
	return out, nil
}

type orderedRow struct {
	header []string
	values []string
}

func (r orderedRow) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, col := range r.header {
		if i > 0 {
			buf = append(buf, ',')
		}
		k, err := marshalString(col)
		if err != nil {
			return nil, err
		}
		v, err := marshalString(r.values[i])
		if err != nil {
			return nil, err
		}
		buf = append(buf, k...)
		buf = append(buf, ':')
		buf = append(buf, v...)
	}
	return append(buf, '}'), nil
}

// marshalString encodes s without HTML escaping; program names are full
// of ampersands.
func marshalString(s string) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(b.Bytes(), []byte{'\n'}), nil
}

// WriteRecords writes person records under the standard header.
func WriteRecords(ctx context.Context, w Writer, records []types.PersonRecord) error {
	return w.Write(ctx, types.Header, types.Rows(records))
}
