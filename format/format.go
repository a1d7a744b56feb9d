package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	YAMLFormat Format = iota
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

type info struct {
	name     string
	aliases  []string
	suffixes []string
}

var formats = map[Format]info{
	YAMLFormat: {name: "yaml", aliases: []string{"y", "yml"}, suffixes: []string{".yaml", ".yml"}},
	JSONFormat: {name: "json", aliases: []string{"j"}, suffixes: []string{".json"}},
}

// AllFormats returns the formats in preference order.
func AllFormats() []Format {
	return []Format{YAMLFormat, JSONFormat}
}

// ParseFormat accepts a format name or one of its aliases.
func ParseFormat(v string) (Format, error) {
	for _, f := range AllFormats() {
		fi := formats[f]
		if v == fi.name {
			return f, nil
		}
		for _, a := range fi.aliases {
			if v == a {
				return f, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FromPath returns the format named by the suffix of path.
func FromPath(path string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range AllFormats() {
		for _, s := range formats[f].suffixes {
			if ext == s {
				return f, true
			}
		}
	}
	return 0, false
}

func (f Format) String() string {
	fi, ok := formats[f]
	if !ok {
		return fmt.Sprintf("<err: %d is not a format>", int(f))
	}
	return fi.name
}

func (f Format) MarshalText() ([]byte, error) {
	fi, ok := formats[f]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(fi.name), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix is the preferred file extension, with its dot.
func (f Format) Suffix() string {
	fi, ok := formats[f]
	if !ok {
		return ""
	}
	return fi.suffixes[0]
}
