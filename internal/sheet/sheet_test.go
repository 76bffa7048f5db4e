// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sheet

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/people-api/pkg/types"
)

func sampleRecords() []types.PersonRecord {
	return []types.PersonRecord{
		{Name: "Ada Studio", Email: "astudio@cca.edu", Role: "Studio Manager", Program: "Ceramics"},
		{Name: "Pat Manager", Email: "pmanager@cca.edu", Role: "Project Manager", Program: "Humanities & Sciences"},
		{Name: "Cory Cochair", Email: "ccochair@cca.edu", Role: "Co-Chair", Program: "Graduate Comics; Writing & Literature"},
	}
}

// --- delimited ---

func TestTSVWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecords(context.Background(), NewTSV(&buf, false), sampleRecords()))

	want := "Name\tEmail\tRole\tProgram(s) or Department\n" +
		"Ada Studio\tastudio@cca.edu\tStudio Manager\tCeramics\n" +
		"Pat Manager\tpmanager@cca.edu\tProject Manager\tHumanities & Sciences\n" +
		"Cory Cochair\tccochair@cca.edu\tCo-Chair\tGraduate Comics; Writing & Literature\n"
	assert.Equal(t, want, buf.String())
}

func TestTSVWriterNoHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecords(context.Background(), NewTSV(&buf, true), sampleRecords()[:1]))
	assert.Equal(t, "Ada Studio\tastudio@cca.edu\tStudio Manager\tCeramics\n", buf.String())
}

func TestCSVWriterQuotes(t *testing.T) {
	var buf bytes.Buffer
	rows := [][]string{{"Pat", "p@cca.edu", "Program Manager", "Humanities & Sciences, Writing & Literature"}}
	require.NoError(t, NewCSV(&buf, false).Write(context.Background(), types.Header, rows))
	assert.Equal(t,
		"Name,Email,Role,Program(s) or Department\n"+
			"Pat,p@cca.edu,Program Manager,\"Humanities & Sciences, Writing & Literature\"\n",
		buf.String())
}

func TestDelimitedEmptyRowsWritesHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecords(context.Background(), NewTSV(&buf, false), nil))
	assert.Equal(t, "Name\tEmail\tRole\tProgram(s) or Department\n", buf.String())
}

// --- JSON / YAML ---

func TestJSONWriterKeepsColumnOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecords(context.Background(), NewJSON(&buf), sampleRecords()[:1]))
	want := `[
  {
    "Name": "Ada Studio",
    "Email": "astudio@cca.edu",
    "Role": "Studio Manager",
    "Program(s) or Department": "Ceramics"
  }
]
`
	assert.Equal(t, want, buf.String())
}

func TestJSONWriterEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecords(context.Background(), NewJSON(&buf), nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestJSONWriterRejectsRaggedRows(t *testing.T) {
	var buf bytes.Buffer
	err := NewJSON(&buf).Write(context.Background(), types.Header, [][]string{{"only", "two"}})
	assert.Error(t, err)
}

func TestYAMLWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecords(context.Background(), NewYAML(&buf), sampleRecords()))

	var got []map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "Ada Studio", got[0]["Name"])
	assert.Equal(t, "Graduate Comics; Writing & Literature", got[2]["Program(s) or Department"])
}

// --- SQLite ---

func TestSQLiteWriterOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "people.db")
	w, err := NewSQLiteWriter(path)
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })

	ctx := context.Background()
	require.NoError(t, WriteRecords(ctx, w, sampleRecords()))

	rows, err := w.Rows(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.Rows(sampleRecords()), rows)

	// A second write discards the first.
	require.NoError(t, WriteRecords(ctx, w, sampleRecords()[2:]))
	rows, err = w.Rows(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.Rows(sampleRecords()[2:]), rows)

	runs, err := w.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, 1, runs[0].Rows)
	assert.Equal(t, 3, runs[1].Rows)
	assert.Equal(t, types.Header, runs[0].Header)
	assert.NotEqual(t, runs[0].ID, runs[1].ID)
}

func TestSQLiteWriterRecordsTime(t *testing.T) {
	w, err := NewSQLiteWriter(filepath.Join(t.TempDir(), "people.db"))
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })

	fixed := time.Date(2026, 10, 1, 8, 30, 0, 0, time.UTC)
	w.now = func() time.Time { return fixed }

	ctx := context.Background()
	require.NoError(t, WriteRecords(ctx, w, nil))
	runs, err := w.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.True(t, fixed.Equal(runs[0].WrittenAt))
	assert.Equal(t, 0, runs[0].Rows)
}

func TestSQLiteWriterRejectsBadRows(t *testing.T) {
	w, err := NewSQLiteWriter(filepath.Join(t.TempDir(), "people.db"))
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })

	ctx := context.Background()
	require.NoError(t, WriteRecords(ctx, w, sampleRecords()))
	err = w.Write(ctx, types.Header, [][]string{{"too", "short"}})
	require.Error(t, err)

	// The failed write leaves the previous rows in place.
	rows, err := w.Rows(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

// --- Open ---

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		format  types.OutputFormat
		want    any
		wantErr bool
	}{
		{"default tsv", "", &DelimitedWriter{}, false},
		{"csv", types.FormatCSV, &DelimitedWriter{}, false},
		{"json", types.FormatJSON, &JSONWriter{}, false},
		{"yaml", types.FormatYAML, &YAMLWriter{}, false},
		{"unknown", "xlsx", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w, closer, err := Open(types.OutputConfig{Format: tt.format}, &buf)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer closer.Close()
			assert.IsType(t, tt.want, w)
		})
	}
}

func TestOpenFileTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.tsv")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than the new output\n"), 0o644))

	w, closer, err := Open(types.OutputConfig{Format: types.FormatTSV, Path: path, NoHeader: true}, nil)
	require.NoError(t, err)
	require.NoError(t, WriteRecords(context.Background(), w, sampleRecords()[:1]))
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada Studio\tastudio@cca.edu\tStudio Manager\tCeramics\n", string(data))
}

func TestOpenSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.db")
	w, closer, err := Open(types.OutputConfig{Format: types.FormatSQLite, Path: path}, nil)
	require.NoError(t, err)
	defer closer.Close()
	assert.IsType(t, &SQLiteWriter{}, w)
}
