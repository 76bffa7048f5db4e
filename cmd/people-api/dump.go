// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/people-api/internal/directory"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Write the complete directory search JSON for staff or faculty",
	Long: `Dump runs the staff or faculty query and writes the index's full JSON
response, indented, to stdout. It is meant for inspecting position strings
when a person is missing from the sheet. Only one of --staff or --faculty may
be given.`,
	Example: `  people-api dump --staff > data/stf.json`,
	RunE:    runDump,
}

func init() {
	dumpCmd.Flags().BoolP("staff", "s", false, "dump the staff query")
	dumpCmd.Flags().BoolP("faculty", "f", false, "dump the faculty query")
	dumpCmd.MarkFlagsMutuallyExclusive("staff", "faculty")
	dumpCmd.MarkFlagsOneRequired("staff", "faculty")

	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	staff, _ := cmd.Flags().GetBool("staff")

	cfg := directoryConfig()
	q := directory.FacultyQuery(cfg.Size)
	if staff {
		q = directory.StaffQuery(cfg.Size)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	data, err := directory.NewClient(cfg).FetchRaw(ctx, q)
	if err != nil {
		return reportFetchError(err, os.Stderr)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return fmt.Errorf("formatting response: %w", err)
	}
	out.WriteByte('\n')
	_, err = out.WriteTo(os.Stdout)
	return err
}
