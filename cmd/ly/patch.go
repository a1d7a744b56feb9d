package main

import (
	"bytes"
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/tony-format/yamline/encode"
	"github.com/tony-format/yamline/format"
	"github.com/tony-format/yamline/ir"
	"github.com/tony-format/yamline/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch and optionally files to which to apply it", cli.ErrUsage)
	}
	ops, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	for i, file := range inputs(args[1:]) {
		target, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res, err := applyPatch(ops, target)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
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

func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) (jsonpatch.Patch, error) {
	d := []byte(arg)
	if !cfg.String {
		var err error
		d, err = readFile(cc, arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	if fmat, ok := format.FromPath(arg); ok && fmat.IsJSON() && !cfg.String {
		ops, err := jsonpatch.DecodePatch(d)
		if err != nil {
			return nil, fmt.Errorf("%w: bad patch: %w", cli.ErrUsage, err)
		}
		return ops, nil
	}
	ops, err := decodePatch(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: bad patch: %w", cli.ErrUsage, err)
	}
	return ops, nil
}

// decodePatch reads a patch in JSON, or in YAML which is converted to JSON
// first.
func decodePatch(d []byte, opts ...parse.ParseOption) (jsonpatch.Patch, error) {
	t := bytes.TrimSpace(d)
	if len(t) == 0 || t[0] != '[' {
		y, err := parse.Parse(d, opts...)
		if err != nil {
			return nil, err
		}
		d, err = toJSON(y)
		if err != nil {
			return nil, err
		}
	}
	return jsonpatch.DecodePatch(d)
}

func toJSON(y *ir.Node) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := encode.Encode(y, buf, encode.EncodeFormat(format.JSONFormat)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func applyPatch(ops jsonpatch.Patch, doc *ir.Node) (*ir.Node, error) {
	d, err := toJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	res, err := ir.FromJSON(out)
	if err != nil {
		return nil, err
	}
	return keepOrder(res, doc), nil
}

// keepOrder puts the keys of mappings in res which are also in src in
// their order in src, followed by the other keys.  Scalars equal to those
// in src, or null in both, are replaced by those in src.
func keepOrder(res, src *ir.Node) *ir.Node {
	if res == nil || src == nil {
		return res
	}
	if res.Type.IsScalar() && src.Type.IsScalar() {
		if res.String == src.String || ir.ToAny(res) == nil && ir.ToAny(src) == nil {
			return src.Clone()
		}
		return res
	}
	if res.Type != src.Type {
		return res
	}
	switch res.Type {
	case ir.MappingType:
		pos := map[string]int{}
		for i, f := range src.Fields {
			if _, ok := pos[f.String]; !ok {
				pos[f.String] = i
			}
		}
		rank := func(kv ir.KeyVal) int {
			if i, ok := pos[kv.Key.String]; ok {
				return i
			}
			return len(src.Fields)
		}
		kvs, _ := res.KeyVals()
		slices.SortStableFunc(kvs, func(a, b ir.KeyVal) int {
			return cmp.Compare(rank(a), rank(b))
		})
		for i := range kvs {
			sv := ir.Get(src, kvs[i].Key.String)
			if sv != nil {
				kvs[i].Key = ir.FromStyled(kvs[i].Key.String, keyStyle(sv))
			}
			kvs[i].Val = keepOrder(kvs[i].Val, sv)
		}
		return ir.FromKeyVals(kvs)
	case ir.SequenceType:
		vals := make([]*ir.Node, len(res.Values))
		for i, v := range res.Values {
			if i < len(src.Values) {
				v = keepOrder(v, src.Values[i])
			}
			vals[i] = v
		}
		return ir.FromSlice(vals)
	}
	return res
}

// keyStyle returns the style of the key of the value v in its mapping.
func keyStyle(v *ir.Node) ir.ScalarStyle {
	return v.Parent.Fields[v.ParentIndex].Style
}
