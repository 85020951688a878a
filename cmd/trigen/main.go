// Command trigen evaluates a scene script, tessellates every part and
// writes the resulting triangle soup in triangle file format.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chazu/soupview/internal/cli"
	"github.com/chazu/soupview/pkg/engine"
	"github.com/chazu/soupview/pkg/geom"
	"github.com/chazu/soupview/pkg/kernel/sdfx"
	"github.com/chazu/soupview/pkg/tessellate"
	"github.com/chazu/soupview/pkg/trifile"
)

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	return err == nil, err
}

// generate runs source through the engine and the sdfx kernel.
func generate(source string, eng *engine.Engine, cells int) ([]geom.Triangle, error) {
	sc, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		return nil, err
	}
	if len(evalErrs) > 0 {
		return nil, evalErrs[0]
	}
	return tessellate.Tessellate(sc, sdfx.NewWithCells(cells))
}

func main() {
	flags, err := newFlags()
	if err != nil {
		fmt.Printf("%s\n", err.Error())
		flag.Usage()
		os.Exit(1)
	}

	source, err := os.ReadFile(flags.script)
	if err != nil {
		log.Fatalln("failed to read script:", err)
	}

	tris, err := generate(string(source), engine.NewEngineWithTimeout(flags.timeout), flags.cells)
	if err != nil {
		log.Fatalf("%s: %v", flags.script, err)
	}

	err = cli.WriteOutput(flags.out, func(w io.Writer) error {
		return trifile.Encode(w, header(flags.script, flags.cells), tris)
	})
	if err != nil {
		log.Fatalln("failed to write triangles:", err)
	}
	log.Printf("wrote %d triangles", len(tris))
}
