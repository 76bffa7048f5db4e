//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Sheet builds the CLI and writes the full people sheet to data/out.tsv,
// saving the raw directory results alongside it.
func Sheet() error {
	mg.Deps(Init, Build)

	bin := filepath.Join(binDir, binName)
	snap := filepath.Join("data", "snapshots", time.Now().Format("2006-01-02")+".yaml")
	out := filepath.Join("data", "out.tsv")

	if err := sh.RunV(bin, "extract", "--staff", "--faculty", "--save-snapshot", snap, "--output", out); err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	fmt.Printf("Wrote %s (snapshot %s)\n", out, snap)
	return nil
}

// Dump writes the raw staff and faculty responses to data/stf.json and
// data/fac.json.
func Dump() error {
	mg.Deps(Init, Build)

	bin := filepath.Join(binDir, binName)
	for flag, name := range map[string]string{"--staff": "stf.json", "--faculty": "fac.json"} {
		out, err := sh.Output(bin, "dump", flag)
		if err != nil {
			return fmt.Errorf("dump %s: %w", flag, err)
		}
		path := filepath.Join("data", name)
		if err := os.WriteFile(path, []byte(out+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Println("  ", path)
	}
	return nil
}
