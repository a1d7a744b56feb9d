package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tony-format/yamline/debug"
	"github.com/tony-format/yamline/ir"
	"github.com/tony-format/yamline/line"
	"github.com/tony-format/yamline/parse"

	"github.com/scott-cotton/cli"
)

// readFile reads path, or the command input for "-".
func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func parseDoc(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	lines := line.Split(d)
	if debug.Lines() {
		theLog.Debug("split", "lines", lines.Len(), "base", lines.BaseIndent())
		for _, ln := range lines.All() {
			debug.Logf("%4d %3d|%s\n", ln.Number()+1, ln.Indent(), ln.Text())
		}
	}
	return parse.ParseLines(lines, opts...)
}

func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	return parseDoc(d, opts...)
}

// inputs returns the file arguments, "-" for the command input when there
// are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
