// Command flatshaded shows a triangle file as a flat-shaded solid drawn in
// painter's order. Arrow keys rotate, + and - scale, A S D pick the spin
// axis, Esc quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/chazu/soupview/internal/cli"
	"github.com/chazu/soupview/internal/glview"
	"github.com/chazu/soupview/pkg/pipeline"
	"github.com/chazu/soupview/pkg/render"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	program := filepath.Base(os.Args[0])
	flag.Usage = func() {
		cli.Usage(flag.CommandLine.Output(), program)
		flag.PrintDefaults()
	}

	flags, err := newFlags()
	if err != nil {
		fmt.Printf("%s\n", err.Error())
		flag.Usage()
		os.Exit(1)
	}

	tris, err := cli.LoadTriangles(program, flag.Args(), os.Stdout)
	if errors.Is(err, cli.ErrUsage) {
		os.Exit(1)
	}
	if err != nil {
		log.Fatalln("failed to load triangles:", err)
	}

	cfg := glview.Config{
		Title:   "flatshaded: " + flag.Arg(0),
		Options: render.Options{Mode: render.ModeFlat, Light: flags.light},
		Spin:    pipeline.Spin{Axis: flags.axis, Rate: flags.spin},
	}
	if err := glview.Run(cfg, tris); err != nil {
		log.Fatalln(err)
	}
}
