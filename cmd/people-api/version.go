package main

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of people-api",
	Run: func(cmd *cobra.Command, args []string) {
		info, _ := debug.ReadBuildInfo()
		writeVersion(cmd.OutOrStdout(), version, info)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// writeVersion prints the release version followed by the Go toolchain and
// VCS revision recorded in the binary, when present.
func writeVersion(w io.Writer, v string, info *debug.BuildInfo) {
	fmt.Fprintf(w, "people-api %s\n", v)
	if info == nil {
		return
	}
	fmt.Fprintf(w, "  go:       %s\n", info.GoVersion)
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			fmt.Fprintf(w, "  revision: %s\n", s.Value)
		case "vcs.time":
			fmt.Fprintf(w, "  built:    %s\n", s.Value)
		case "vcs.modified":
			if s.Value == "true" {
				fmt.Fprintln(w, "  modified: true")
			}
		}
	}
}
