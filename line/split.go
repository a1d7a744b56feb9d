package line

import (
	"bytes"
)

// Split breaks d into lines numbered from 0. "\r\n" terminators are
// accepted; a final terminator does not produce an empty last line.
func Split(d []byte) Lines {
	if len(d) == 0 {
		return Lines{}
	}
	d = bytes.TrimSuffix(d, []byte{'\n'})
	parts := bytes.Split(d, []byte{'\n'})
	res := make([]*Line, len(parts))
	for i, p := range parts {
		res[i] = New(string(bytes.TrimSuffix(p, []byte{'\r'})), i)
	}
	return Lines{lines: res}
}
