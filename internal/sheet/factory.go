// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sheet

import (
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/people-api/pkg/types"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns the writer selected by cfg. Text formats go to cfg.Path,
// truncating it, or to stdout when the path is empty. The returned closer
// must be called once writing is done.
func Open(cfg types.OutputConfig, stdout io.Writer) (Writer, io.Closer, error) {
	format := cfg.Format
	if format == "" {
		format = types.FormatTSV
	}

	if format == types.FormatSQLite {
		w, err := NewSQLiteWriter(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return w, w, nil
	}

	out := stdout
	var closer io.Closer = nopCloser{}
	if cfg.Path != "" && cfg.Path != "-" {
		f, err := os.Create(cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("creating output file: %w", err)
		}
		out, closer = f, f
	}

	switch format {
	case types.FormatTSV:
		return NewTSV(out, cfg.NoHeader), closer, nil
	case types.FormatCSV:
		return NewCSV(out, cfg.NoHeader), closer, nil
	case types.FormatJSON:
		return NewJSON(out), closer, nil
	case types.FormatYAML:
		return NewYAML(out), closer, nil
	default:
		closer.Close()
		return nil, nil, fmt.Errorf("unsupported format %q: use tsv, csv, json, yaml, or sqlite", format)
	}
}
