package ir

import (
	"encoding/json"
)

type irBase struct {
	Type   Type        `json:"type"`
	Fields []*Node     `json:"fields,omitempty"`
	Values []*Node     `json:"values,omitempty"`
	Style  ScalarStyle `json:"style,omitempty"`
	Lines  []string    `json:"lines,omitempty"`
}

// MarshalJSON encodes the IR itself, not the document it represents.
func (y *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Type:   y.Type,
		Fields: y.Fields,
		Values: y.Values,
		Style:  y.Style,
		Lines:  y.Lines,
	}
	if y.Type.IsScalar() {
		type C struct {
			irBase
			String string `json:"string"`
		}
		return json.Marshal(C{irBase: *base, String: y.String})
	}
	return json.Marshal(base)
}

func (y *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		irBase
		String string `json:"string"`
	}
	tmp := &C{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	y.Type = tmp.Type
	y.Fields = tmp.Fields
	y.Values = tmp.Values
	y.Style = tmp.Style
	y.Lines = tmp.Lines
	y.String = tmp.String
	for i, v := range y.Values {
		v.Parent = y
		v.ParentIndex = i
		if y.Type == MappingType && i < len(y.Fields) {
			f := y.Fields[i]
			f.Parent = y
			f.ParentIndex = i
			f.ParentField = f.String
			v.ParentField = f.String
		}
	}
	return nil
}
