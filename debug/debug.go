package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Lines    bool
	Classify bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lines = boolEnv("LY_DEBUG_LINES")
	d.Classify = boolEnv("LY_DEBUG_CLASSIFY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Lines reports whether split source lines are dumped before parsing.
func Lines() bool {
	return d.Lines
}

// Classify reports whether the classifier traces its decisions.
func Classify() bool {
	return d.Classify
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
