package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/tony-format/yamline/encode"
	"github.com/tony-format/yamline/ir"

	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return fmt.Errorf("%w: get requires one argument, an expression", cli.ErrUsage)
	}
	code := args[0]
	files := inputs(args[1:])
	for i, file := range files {
		y, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res, err := evalDoc(code, y, cfg.Env)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, code, err)
		}
		if i > 0 {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}

// evalDoc evaluates code with the top level keys of y, y itself as "doc"
// and vars as its environment.
func evalDoc(code string, y *ir.Node, vars map[string]any) (*ir.Node, error) {
	doc := ir.ToAny(y)
	env := map[string]any{}
	if m, ok := doc.(map[string]any); ok {
		for k, v := range m {
			env[k] = v
		}
	}
	env["doc"] = doc
	for k, v := range vars {
		env[k] = v
	}
	val, err := expr.Eval(code, env)
	if err != nil {
		return nil, err
	}
	return ir.FromAny(val)
}

func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	err := yaml.Unmarshal([]byte(val), &v)
	if err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
