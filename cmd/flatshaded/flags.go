package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/chazu/soupview/pkg/geom"
	"github.com/chazu/soupview/pkg/pipeline"
)

type flags struct {
	spin  float64
	axis  pipeline.Op
	light geom.Vector3
}

func newFlags() (*flags, error) {
	spin := flag.Float64("spin", 0, "Spin the soup at this many degrees per second (0 disables)")
	axis := flag.String("axis", "y", "Spin axis: x, y or z")
	light := flag.String("light", "0,0,-1", "Light direction in x,y,z format")

	flag.Parse()

	op, err := parseAxis(*axis)
	if err != nil {
		return nil, fmt.Errorf("error: Spin axis could not be parsed:\n\t%s", err.Error())
	}

	dir, err := parseVector(*light)
	if err != nil {
		return nil, fmt.Errorf("error: Light direction could not be parsed:\n\t%s", err.Error())
	}
	if dir == (geom.Vector3{}) {
		return nil, fmt.Errorf("error: Light direction must not be zero")
	}

	return &flags{
		spin:  *spin,
		axis:  op,
		light: dir,
	}, nil
}

func parseAxis(s string) (pipeline.Op, error) {
	switch strings.ToLower(s) {
	case "x":
		return pipeline.OpRotateX, nil
	case "y":
		return pipeline.OpRotateY, nil
	case "z":
		return pipeline.OpRotateZ, nil
	}
	return 0, fmt.Errorf("invalid axis %q, expected x, y or z", s)
}

func parseVector(s string) (geom.Vector3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return geom.Vector3{}, fmt.Errorf("invalid format, expected \"x,y,z\"")
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geom.Vector3{}, fmt.Errorf("invalid component %q", p)
		}
		v[i] = f
	}
	return geom.Vec3(v[0], v[1], v[2]), nil
}
