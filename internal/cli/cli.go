// Package cli holds the command-line glue shared by the viewer programs:
// reading the triangle file named on the command line and reporting its
// malformed lines.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chazu/soupview/pkg/geom"
	"github.com/chazu/soupview/pkg/trifile"
)

// ErrUsage marks errors caused by a bad command line.
var ErrUsage = errors.New("usage error")

// LoadTriangles expects args to hold exactly one path to a triangle file.
// It loads the file, writes a report of malformed lines to w and returns
// the triangles that parsed. Command-line problems are reported to w
// together with the usage line and returned wrapped in ErrUsage.
func LoadTriangles(program string, args []string, w io.Writer) ([]geom.Triangle, error) {
	if len(args) != 1 {
		return nil, usage(w, program, "Invalid number of arguments")
	}
	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return nil, usage(w, program, fmt.Sprintf("File %s does not exist", path))
	}

	tris, lineErrs, err := trifile.LoadFile(path)
	if err != nil {
		return nil, err
	}
	ReportLineErrors(w, lineErrs)
	return tris, nil
}

// ReportLineErrors writes the error block for a parsed file. Nothing is
// written when errs is empty.
func ReportLineErrors(w io.Writer, errs []trifile.LineError) {
	if len(errs) == 0 {
		return
	}
	fmt.Fprintln(w, "=== Errors ===")
	for _, e := range errs {
		fmt.Fprintf(w, "Invalid line num %d: %s.\n\tError: %s\n", e.Line, strings.TrimSpace(e.Raw), e.Reason)
	}
}

// Usage writes the usage line for program.
func Usage(w io.Writer, program string) {
	fmt.Fprintf(w, "usage: %s <tri-file>\n", program)
}

func usage(w io.Writer, program, msg string) error {
	fmt.Fprintln(w, msg)
	Usage(w, program)
	return fmt.Errorf("%w: %s", ErrUsage, msg)
}

// WriteOutput runs write against the file at path, or stdout when path is
// empty. Errors from write and from closing the file are both returned.
func WriteOutput(path string, write func(io.Writer) error) (err error) {
	if path == "" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
