package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/tony-format/yamline/encode"
	"github.com/tony-format/yamline/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	failed := 0
	for _, file := range inputs(args) {
		ok, err := checkFile(cfg, cc, file)
		if err != nil {
			theLog.Error("check failed", "file", file, "error", err)
			failed++
			continue
		}
		if !ok {
			failed++
		}
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkFile(cfg *CheckConfig, cc *cli.Context, file string) (bool, error) {
	d, err := readFile(cc, file)
	if err != nil {
		return false, err
	}
	y, err := parseDoc(d, cfg.parseOpts()...)
	if err != nil {
		return false, err
	}
	out, err := reprint(y, bytes.HasPrefix(d, []byte("---")))
	if err != nil {
		return false, err
	}
	if err := validate(out); err != nil {
		return false, fmt.Errorf("printed document is not YAML: %w", err)
	}
	if out == string(d) {
		theLog.Info("ok", "file", file)
		return true, nil
	}
	theLog.Warn("printed document differs", "file", file)
	if !cfg.Quiet {
		if _, err := fmt.Fprint(cc.Out, textDiff(string(d), out)); err != nil {
			return false, err
		}
	}
	return false, nil
}

// reprint prints y as YAML, with document markers if doc is set.
func reprint(y *ir.Node, doc bool) (string, error) {
	buf := &bytes.Buffer{}
	if doc {
		if err := encode.NewPrinter(nopCloser{buf}, encode.EncodeEOL("\n")).Print(y); err != nil {
			return "", err
		}
		// files end with a newline, the printer stops at "..."
		return buf.String() + "\n", nil
	}
	if err := encode.Encode(y, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func validate(out string) error {
	var v any
	return yaml.Unmarshal([]byte(out), &v)
}

// textDiff returns the lines of from and to prefixed by "-" when only in
// from, "+" when only in to and " " otherwise.
func textDiff(from, to string) string {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(a, b, false), lines)
	res := &strings.Builder{}
	for _, diff := range diffs {
		prefix := " "
		switch diff.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffDelete:
			prefix = "-"
		}
		for _, ln := range strings.SplitAfter(diff.Text, "\n") {
			if ln == "" {
				continue
			}
			res.WriteString(prefix + ln)
			if !strings.HasSuffix(ln, "\n") {
				res.WriteByte('\n')
			}
		}
	}
	return res.String()
}
