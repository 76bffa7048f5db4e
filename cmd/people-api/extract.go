// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/people-api/internal/directory"
	"github.com/pdiddy/people-api/internal/extract"
	"github.com/pdiddy/people-api/internal/sheet"
	"github.com/pdiddy/people-api/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Search the directory and write one row per manager or chair",
	Long: `Extract queries staff profiles for "manager" and faculty profiles for
"chair", parses each matching person's positions into a role and program, and
writes the rows staff first, then faculty.

With no selection flags both staff and faculty are searched. People whose
positions cannot be parsed are logged and left out; the run continues.`,
	Example: `  people-api extract -s -f > data/out.tsv   # all PMs, studio managers & chairs
  people-api extract --pm --format csv        # only program managers, as CSV
  people-api extract --format sqlite -o people.db
  people-api extract --save-snapshot snap.yaml
  people-api extract --from-snapshot snap.yaml --faculty`,
	RunE: runExtract,
}

func init() {
	addExtractFlags(extractCmd)

	_ = viper.BindPFlag("output.format", extractCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("output.path", extractCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(extractCmd)
}

func addExtractFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("staff", "s", false, "search staff profiles (studio and program managers)")
	cmd.Flags().BoolP("faculty", "f", false, "search faculty profiles (chairs)")
	cmd.Flags().Bool("sm", false, "search staff but only for studio managers")
	cmd.Flags().Bool("pm", false, "search staff but only for program managers")
	cmd.Flags().BoolP("no-header", "n", false, "omit the header row")
	cmd.Flags().String("format", "", "output format: tsv, csv, json, yaml, or sqlite (default tsv)")
	cmd.Flags().StringP("output", "o", "", "output file (default stdout, or people.db for sqlite)")
	cmd.Flags().String("from-snapshot", "", "extract from a saved snapshot instead of querying the directory")
	cmd.Flags().String("save-snapshot", "", "save fetched directory results to a YAML snapshot")
	cmd.MarkFlagsMutuallyExclusive("sm", "pm")
	cmd.MarkFlagsMutuallyExclusive("from-snapshot", "save-snapshot")
}

// runOptions selects which result sets and categories a run covers.
type runOptions struct {
	Staff           bool
	Faculty         bool
	StaffCategories []types.Category
	FromSnapshot    string
	SaveSnapshot    string
}

func optionsFromFlags(cmd *cobra.Command) runOptions {
	staff, _ := cmd.Flags().GetBool("staff")
	faculty, _ := cmd.Flags().GetBool("faculty")
	sm, _ := cmd.Flags().GetBool("sm")
	pm, _ := cmd.Flags().GetBool("pm")

	opts := runOptions{Faculty: faculty}
	opts.FromSnapshot, _ = cmd.Flags().GetString("from-snapshot")
	opts.SaveSnapshot, _ = cmd.Flags().GetString("save-snapshot")

	switch {
	case sm:
		opts.Staff = true
		opts.StaffCategories = []types.Category{types.StudioManager}
	case pm:
		opts.Staff = true
		opts.StaffCategories = []types.Category{types.ProgramManager}
	case staff:
		opts.Staff = true
	}

	if !opts.Staff && !opts.Faculty {
		opts.Staff, opts.Faculty = true, true
	}
	return opts
}

func runExtract(cmd *cobra.Command, args []string) error {
	opts := optionsFromFlags(cmd)
	noHeader, _ := cmd.Flags().GetBool("no-header")

	outCfg := types.OutputConfig{
		Format:   types.OutputFormat(viper.GetString("output.format")),
		Path:     viper.GetString("output.path"),
		NoHeader: noHeader,
	}

	cfg := directoryConfig()
	client := directory.NewClient(cfg)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	rs, err := loadResultSets(ctx, opts, client, cfg)
	if err != nil {
		return reportFetchError(err, os.Stderr)
	}

	res, err := writeSheet(ctx, outCfg, os.Stdout, opts, rs, logger)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%d records written (dropped: %d, no matching position: %d, unparseable: %d)\n",
		len(res.Records), res.Dropped, res.Skipped, res.Failed)
	return nil
}

// loadResultSets reads a snapshot or queries the directory for the result
// sets opts asks for, saving a snapshot when requested.
func loadResultSets(ctx context.Context, opts runOptions, f directory.Fetcher, cfg types.DirectoryConfig) (directory.ResultSets, error) {
	if opts.FromSnapshot != "" {
		snap, err := directory.ReadSnapshot(opts.FromSnapshot)
		if err != nil {
			return directory.ResultSets{}, err
		}
		rs := snap.ResultSets()
		if !opts.Staff {
			rs.Staff = nil
		}
		if !opts.Faculty {
			rs.Faculty = nil
		}
		return rs, nil
	}

	var staffQ, facultyQ *directory.Query
	if opts.Staff {
		q := directory.StaffQuery(cfg.Size)
		staffQ = &q
	}
	if opts.Faculty {
		q := directory.FacultyQuery(cfg.Size)
		facultyQ = &q
	}

	rs, err := directory.FetchAll(ctx, f, staffQ, facultyQ)
	if err != nil {
		return directory.ResultSets{}, err
	}

	if opts.SaveSnapshot != "" {
		url := cfg.URL
		if url == "" {
			url = directory.DefaultURL
		}
		if err := directory.WriteSnapshot(opts.SaveSnapshot, directory.NewSnapshot(url, rs, time.Now())); err != nil {
			return directory.ResultSets{}, err
		}
	}
	return rs, nil
}

// openSheet is replaced in tests.
var openSheet = sheet.Open

// writeSheet opens the configured output, writes the extracted records and
// closes it. A failed close is reported, since for files it can mean the
// rows never reached disk.
func writeSheet(ctx context.Context, cfg types.OutputConfig, stdout io.Writer, opts runOptions, rs directory.ResultSets, log *zap.Logger) (res extract.Result, err error) {
	w, closer, err := openSheet(cfg, stdout)
	if err != nil {
		return extract.Result{}, err
	}
	defer func() {
		if cerr := closer.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output: %w", cerr)
		}
	}()

	return getPeopleData(ctx, opts, rs, w, log)
}

// getPeopleData extracts staff then faculty records and replaces the sheet
// contents with them.
func getPeopleData(ctx context.Context, opts runOptions, rs directory.ResultSets, w sheet.Writer, log *zap.Logger) (extract.Result, error) {
	p := extract.New(log)

	var parts []extract.Result
	if opts.Staff {
		parts = append(parts, p.Run(rs.Staff, extract.StaffRouter(opts.StaffCategories...)))
	}
	if opts.Faculty {
		parts = append(parts, p.Run(rs.Faculty, extract.FacultyRouter()))
	}
	res := extract.Combine(parts...)

	if err := sheet.WriteRecords(ctx, w, res.Records); err != nil {
		return res, fmt.Errorf("writing sheet: %w", err)
	}
	return res, nil
}

// reportFetchError prints the status and body of a failed directory
// request. Nothing is written to the sheet in that case.
func reportFetchError(err error, stderr io.Writer) error {
	var se *directory.StatusError
	if errors.As(err, &se) {
		if logger != nil {
			logger.Error("directory request failed",
				zap.Int("status", se.StatusCode),
				zap.String("body", se.Body))
		}
		fmt.Fprintf(stderr, "ERROR: HTTP %d\n%s\n", se.StatusCode, se.Body)
	}
	return err
}
