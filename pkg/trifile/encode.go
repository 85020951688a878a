package trifile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chazu/soupview/pkg/geom"
)

// Encode writes tris in the format read by Parse, one per line, preceded by
// an optional comment header. Values use the shortest representation that
// parses back to the same float64.
func Encode(w io.Writer, header string, tris []geom.Triangle) error {
	bw := bufio.NewWriter(w)
	if header != "" {
		for _, line := range strings.Split(header, "\n") {
			if _, err := fmt.Fprintf(bw, "# %s\n", line); err != nil {
				return fmt.Errorf("trifile: write: %w", err)
			}
		}
	}
	fields := make([]string, 0, FieldCount)
	for _, t := range tris {
		fields = fields[:0]
		for _, v := range [...]geom.Vector3{t.V0, t.V1, t.V2} {
			fields = append(fields, ftoa(v.X), ftoa(v.Y), ftoa(v.Z))
		}
		for _, c := range [...]geom.Color{t.C0, t.C1, t.C2} {
			fields = append(fields, ftoa(c.R), ftoa(c.G), ftoa(c.B))
		}
		if _, err := fmt.Fprintln(bw, strings.Join(fields, " ")); err != nil {
			return fmt.Errorf("trifile: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("trifile: write: %w", err)
	}
	return nil
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
