package main

import (
	"fmt"
	"io"

	"github.com/tony-format/yamline/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	files := inputs(args)
	for i, file := range files {
		if err := viewFile(cfg, cc, cc.Out, file); err != nil {
			return err
		}
		if i < len(files)-1 && !cfg.Doc {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, w io.Writer, file string) error {
	y, err := getObjFile(cc, file, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	opts := cfg.encOpts(w)
	if cfg.Doc {
		// the printer closes its target, which is not ours to close.
		if err := encode.NewPrinter(nopCloser{w}, opts...).Print(y); err != nil {
			return fmt.Errorf("error printing %s: %w", file, err)
		}
		_, err := io.WriteString(w, encode.EOL)
		return err
	}
	if err := encode.Encode(y, w, opts...); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	return nil
}
