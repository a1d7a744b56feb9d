package parse

type parseOpts struct {
	guess bool
}

type ParseOption func(*parseOpts)

// GuessIndentation makes the readers accept entries which are less indented
// than the first entry of their collection as siblings, instead of failing.
func GuessIndentation(v bool) ParseOption {
	return func(o *parseOpts) { o.guess = v }
}
