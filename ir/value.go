package ir

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ToAny converts y to plain Go values: mappings become map[string]any,
// sequences []any.  Plain scalars which read as null, booleans or numbers
// are converted to nil, bool, int or float64; all other scalars are
// strings.  Later duplicate keys overwrite earlier ones.
func ToAny(y *Node) any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case ScalarType:
		if y.Style == PlainStyle {
			return plainValue(y.String)
		}
		return y.String
	case LiteralBlockScalarType, FoldedBlockScalarType:
		return y.String
	case SequenceType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case MappingType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f.String] = ToAny(y.Values[i])
		}
		return res
	default:
		panic("type")
	}
}

func plainValue(v string) any {
	switch v {
	case "", "~", "null":
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	switch v[0] {
	case '-', '+', '.', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
	default:
		return v
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}

// FromAny converts a Go value to a node by way of its JSON encoding.  Map
// keys come out sorted, as encoding/json sorts them.
func FromAny(v any) (*Node, error) {
	d, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupported, err)
	}
	return FromJSON(d)
}

// FromJSON decodes a JSON document into a node, keeping object keys in
// document order.  Strings become AutoStyle scalars; numbers, booleans and
// null become plain scalars holding their JSON text.
func FromJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	res, err := fromJSON(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", ErrJSON)
	}
	return res, nil
}

func fromJSON(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJSON, err)
	}
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			kvs := []KeyVal{}
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("%w: %w", ErrJSON, err)
				}
				key, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("%w: unexpected key %v", ErrJSON, kt)
				}
				val, err := fromJSON(dec)
				if err != nil {
					return nil, err
				}
				kvs = append(kvs, KeyVal{Key: FromString(key), Val: val})
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrJSON, err)
			}
			return FromKeyVals(kvs), nil
		case '[':
			vals := []*Node{}
			for dec.More() {
				val, err := fromJSON(dec)
				if err != nil {
					return nil, err
				}
				vals = append(vals, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrJSON, err)
			}
			return FromSlice(vals), nil
		default:
			return nil, fmt.Errorf("%w: unexpected %s", ErrJSON, x)
		}
	case string:
		return FromString(x), nil
	case json.Number:
		return FromStyled(x.String(), PlainStyle), nil
	case bool:
		return FromStyled(strconv.FormatBool(x), PlainStyle), nil
	case nil:
		return FromStyled("null", PlainStyle), nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %v", ErrJSON, tok)
	}
}
