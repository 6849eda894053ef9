// Package strings holds small string helpers shared by modules and adapters
package strings

import std "strings"

// MustString returns s if it has non whitespace content, otherwise panics naming what was missing
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes a route prefix to a single leading slash and no trailing slash
// panics on an empty or root prefix
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// FirstNonEmpty returns the first candidate with non whitespace content, or ""
func FirstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if std.TrimSpace(c) != "" {
			return c
		}
	}
	return ""
}
