// Command triangles2d draws the counter-clockwise triangles of a triangle
// file as flat 2D shapes in their stored colors. Z is ignored.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/chazu/soupview/internal/cli"
	"github.com/chazu/soupview/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	windowWidth  = 1024
	windowHeight = 768
)

// maxBatch is the largest face count one DrawTriangles call can index.
const maxBatch = (1<<16 - 1) / 3

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

type game struct {
	faces []render.Face
	vp    render.Viewport
}

func (g *game) Update() error {
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	for start := 0; start < len(g.faces); start += maxBatch {
		end := min(start+maxBatch, len(g.faces))
		vs, is := vertices(g.faces[start:end], g.vp)
		screen.DrawTriangles(vs, is, whiteSubImage, nil)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.vp.Width, g.vp.Height
}

// vertices converts faces into ebiten vertices in screen space.
func vertices(faces []render.Face, vp render.Viewport) ([]ebiten.Vertex, []uint16) {
	vs := make([]ebiten.Vertex, 0, 3*len(faces))
	is := make([]uint16, 0, 3*len(faces))
	for _, f := range faces {
		for _, v := range f.Vertices {
			x, y := vp.ScreenPoint(v.Pos)
			is = append(is, uint16(len(vs)))
			vs = append(vs, ebiten.Vertex{
				DstX:   float32(x),
				DstY:   float32(y),
				SrcX:   1,
				SrcY:   1,
				ColorR: float32(v.Color.R),
				ColorG: float32(v.Color.G),
				ColorB: float32(v.Color.B),
				ColorA: 1,
			})
		}
	}
	return vs, is
}

func main() {
	flag.Usage = func() {
		cli.Usage(flag.CommandLine.Output(), filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	tris, err := cli.LoadTriangles(filepath.Base(os.Args[0]), flag.Args(), os.Stdout)
	if errors.Is(err, cli.ErrUsage) {
		os.Exit(1)
	}
	if err != nil {
		log.Fatalln("failed to load triangles:", err)
	}

	g := &game{
		faces: render.Prepare(tris, render.Options{Mode: render.ModePlain}),
		vp:    render.Viewport{Width: windowWidth, Height: windowHeight},
	}
	ebiten.SetWindowTitle(fmt.Sprintf("triangles2d: %s", flag.Arg(0)))
	ebiten.SetWindowSize(windowWidth, windowHeight)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalln(err)
	}
}
