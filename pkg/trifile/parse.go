// Package trifile reads and writes the line-oriented triangle format:
// one triangle per line, 18 whitespace-separated numbers
//
//	x0 y0 z0 x1 y1 z1 x2 y2 z2 r0 g0 b0 r1 g1 b1 r2 g2 b2
//
// Blank lines and lines starting with '#' are ignored.
package trifile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/chazu/soupview/pkg/geom"
)

// FieldCount is the number of values on a triangle line.
const FieldCount = 18

// LineError describes one rejected input line. Parsing continues after it.
type LineError struct {
	Line   int    // 1-based
	Raw    string // line text as read
	Reason string
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// ParseLines turns lines into triangles. Malformed lines never stop the
// batch; each one is reported in the returned error slice, in input order.
func ParseLines(lines []string) ([]geom.Triangle, []LineError) {
	var tris []geom.Triangle
	var errs []LineError
	for i, line := range lines {
		data := strings.TrimSpace(line)
		if data == "" || data[0] == '#' {
			continue
		}
		tri, err := parseLine(data)
		if err != nil {
			errs = append(errs, LineError{Line: i + 1, Raw: line, Reason: err.Error()})
			continue
		}
		tris = append(tris, tri)
	}
	return tris, errs
}

// Parse reads every line from r and parses them with ParseLines. The error
// return is reserved for read failures.
func Parse(r io.Reader) ([]geom.Triangle, []LineError, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("trifile: read: %w", err)
		}
	}
	tris, lineErrs := ParseLines(lines)
	return tris, lineErrs, nil
}

// LoadFile opens and parses the triangle file at path.
func LoadFile(path string) ([]geom.Triangle, []LineError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("trifile: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func parseLine(data string) (geom.Triangle, error) {
	fields := strings.Fields(data)
	if len(fields) != FieldCount {
		return geom.Triangle{}, fmt.Errorf("expected %d values, got %d", FieldCount, len(fields))
	}

	var vals [FieldCount]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geom.Triangle{}, fmt.Errorf("value %d: %q is not a number", i+1, f)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return geom.Triangle{}, fmt.Errorf("value %d: %q is not finite", i+1, f)
		}
		vals[i] = v
	}

	var verts [3]geom.Vector3
	for i := range verts {
		verts[i] = geom.Vec3(vals[3*i], vals[3*i+1], vals[3*i+2])
	}
	var cols [3]geom.Color
	for i := range cols {
		o := 9 + 3*i
		c, err := geom.NewColor(vals[o], vals[o+1], vals[o+2])
		if err != nil {
			return geom.Triangle{}, err
		}
		cols[i] = c
	}
	return geom.NewTriangle(verts[0], verts[1], verts[2], cols[0], cols[1], cols[2]), nil
}
