// Package entity resolves HTML named character references.
package entity

//go:generate go run gen.go

// MaxNameLength is the length of the longest reference name, including its
// trailing ';' but not the leading '&'.
const MaxNameLength = 32

// Lookup returns the expansion of an exact reference name such as "amp;" or
// the legacy "amp".
func Lookup(name string) (string, bool) {
	v, ok := table[name]
	return v, ok
}

// Match finds the longest reference name that b starts with. b is the input
// directly after the '&'. Names without a trailing ';' only match for the
// legacy references that allow it, so "&notit;" matches "not".
func Match(b []byte) (name string, value string, ok bool) {
	n := len(b)
	if n > MaxNameLength {
		n = MaxNameLength
	}
	for ; n > 0; n-- {
		if v, ok := table[string(b[:n])]; ok {
			return string(b[:n]), v, true
		}
	}
	return "", "", false
}
