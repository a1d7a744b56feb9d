package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tony-format/yamline/format"

	"github.com/scott-cotton/cli"
)

func lyMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.OutFormat != nil && !cfg.OutFormat.IsJSON() {
		return fmt.Errorf("%w: -j conflicts with -O %s", cli.ErrUsage, cfg.OutFormat)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	if fmat, ok := format.FromPath(a); ok && cfg.OutFormat == nil && !cfg.J {
		cfg.OutFormat = &fmat
	}
	return nil, nil
}
