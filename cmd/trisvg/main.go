// Command trisvg renders one frame of a triangle file to SVG. Faces are
// emitted in drawing order, so in flat mode later polygons paint over the
// ones behind them.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo"
	"github.com/chazu/soupview/internal/cli"
	"github.com/chazu/soupview/pkg/pipeline"
	"github.com/chazu/soupview/pkg/render"
)

// writeSVG draws faces onto a width x height canvas and reports the first
// write error.
func writeSVG(w io.Writer, faces []render.Face, vp render.Viewport, mode render.Mode) error {
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Start(vp.Width, vp.Height)
	canvas.Rect(0, 0, vp.Width, vp.Height, "fill:black")
	for _, f := range faces {
		var xs, ys [3]int
		for i, v := range f.Vertices {
			x, y := vp.ScreenPoint(v.Pos)
			xs[i], ys[i] = int(math.Round(x)), int(math.Round(y))
		}
		hex := f.Fill().Hex()
		style := fmt.Sprintf("fill:%s;stroke:%s;stroke-width:0.5", hex, hex)
		if mode == render.ModeWireframe {
			style = fmt.Sprintf("fill:none;stroke:%s;stroke-width:1", hex)
		}
		canvas.Polygon(xs[:], ys[:], style)
	}
	canvas.End()
	return bw.Flush()
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

	tris, err := cli.LoadTriangles(program, flag.Args(), os.Stderr)
	if errors.Is(err, cli.ErrUsage) {
		os.Exit(1)
	}
	if err != nil {
		log.Fatalln("failed to load triangles:", err)
	}
	if len(flags.view) > 0 {
		tris = pipeline.Apply(tris, pipeline.FromSteps(flags.view))
	}

	vp := render.Viewport{Width: flags.width, Height: flags.height}
	faces := render.Prepare(tris, render.Options{Mode: flags.mode})
	err = cli.WriteOutput(flags.out, func(w io.Writer) error {
		return writeSVG(w, faces, vp, flags.mode)
	})
	if err != nil {
		log.Fatalln("failed to write svg:", err)
	}
}
