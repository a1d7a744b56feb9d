package main

import (
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		y, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		d, err := json.MarshalIndent(y, "", "  ")
		if err != nil {
			return fmt.Errorf("internal error: %w", err)
		}
		if _, err := fmt.Fprintf(cc.Out, "%s\n", d); err != nil {
			return err
		}
	}
	return nil
}
