package main

import (
	"flag"
	"fmt"

	"github.com/chazu/soupview/pkg/pipeline"
	"github.com/chazu/soupview/pkg/render"
)

type flags struct {
	mode   render.Mode
	out    string
	width  int
	height int
	view   []pipeline.Step
}

func newFlags() (*flags, error) {
	mode := flag.String("mode", "flat", "Frame preparation: plain, wireframe or flat")
	out := flag.String("o", "", "Output file (default stdout)")
	width := flag.Int("width", 1024, "Image width in pixels")
	height := flag.Int("height", 768, "Image height in pixels")
	ry := flag.Float64("ry", 0, "Rotate around Y by this many degrees before drawing")
	rx := flag.Float64("rx", 0, "Rotate around X by this many degrees, after -ry")
	scale := flag.Float64("scale", 1, "Scale factor, applied last")

	flag.Parse()

	m, err := render.ParseMode(*mode)
	if err != nil {
		return nil, fmt.Errorf("error: %s", err.Error())
	}

	if *width <= 0 || *height <= 0 {
		return nil, fmt.Errorf("error: Image size must be greater than 0")
	}

	if *scale == 0 {
		return nil, fmt.Errorf("error: Scale must not be zero")
	}

	return &flags{
		mode:   m,
		out:    *out,
		width:  *width,
		height: *height,
		view:   viewSteps(*ry, *rx, *scale),
	}, nil
}

// viewSteps lists the non-trivial view transforms in application order.
func viewSteps(ry, rx, scale float64) []pipeline.Step {
	var steps []pipeline.Step
	if ry != 0 {
		steps = append(steps, pipeline.Step{Op: pipeline.OpRotateY, Amount: ry})
	}
	if rx != 0 {
		steps = append(steps, pipeline.Step{Op: pipeline.OpRotateX, Amount: rx})
	}
	if scale != 1 {
		steps = append(steps, pipeline.Step{Op: pipeline.OpScale, Amount: scale})
	}
	return steps
}
