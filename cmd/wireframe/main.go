// Command wireframe shows the front faces of a triangle file as outlines.
// Arrow keys rotate, + and - scale, Esc quits.
package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/chazu/soupview/internal/cli"
	"github.com/chazu/soupview/internal/glview"
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
	width := flag.Int("width", glview.Width, "Window width in pixels")
	height := flag.Int("height", glview.Height, "Window height in pixels")
	flag.Parse()

	tris, err := cli.LoadTriangles(program, flag.Args(), os.Stdout)
	if errors.Is(err, cli.ErrUsage) {
		os.Exit(1)
	}
	if err != nil {
		log.Fatalln("failed to load triangles:", err)
	}

	cfg := glview.Config{
		Title:     "wireframe: " + flag.Arg(0),
		Width:     *width,
		Height:    *height,
		Options:   render.Options{Mode: render.ModeWireframe},
		Wireframe: true,
	}
	if err := glview.Run(cfg, tris); err != nil {
		log.Fatalln(err)
	}
}
