package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"time"

	"github.com/chazu/soupview/pkg/engine"
	"github.com/chazu/soupview/pkg/kernel/sdfx"
)

type flags struct {
	script  string
	out     string
	cells   int
	timeout time.Duration
}

func newFlags() (*flags, error) {
	out := flag.String("o", "", "Output triangle file (default stdout)")
	cells := flag.Int("cells", sdfx.DefaultMeshCells, "Marching cubes cells along the longest side")
	timeout := flag.Duration("timeout", engine.EvalTimeout, "Script evaluation limit")

	flag.Parse()

	if flag.NArg() != 1 {
		return nil, fmt.Errorf("error: Expected exactly one scene script")
	}
	script := flag.Arg(0)

	if scriptExists, err := exists(script); !scriptExists {
		return nil, fmt.Errorf("error: Scene script not found:\n\t%s", err.Error())
	}

	if *cells < 4 {
		return nil, fmt.Errorf("error: Cells must be at least 4")
	}

	if *timeout <= 0 {
		return nil, fmt.Errorf("error: Timeout must be positive")
	}

	return &flags{
		script:  script,
		out:     *out,
		cells:   *cells,
		timeout: *timeout,
	}, nil
}

func header(script string, cells int) string {
	return fmt.Sprintf("generated from %s\nmarching cubes cells: %d", filepath.Base(script), cells)
}
