// Package strings provides small string helpers shared by the core and the CLI
package strings

import std "strings"

// trimSet is space, tab, LF, CR, NUL and vertical tab
const trimSet = " \t\n\r\x00\x0B"

// Trim strips trimSet characters from both ends of s
func Trim(s string) string { return std.Trim(s, trimSet) }

// TrimLeft strips trimSet characters from the start of s
func TrimLeft(s string) string { return std.TrimLeft(s, trimSet) }

// TrimRight strips trimSet characters from the end of s
func TrimRight(s string) string { return std.TrimRight(s, trimSet) }

// IsBlank reports whether s has no content besides trimSet characters
func IsBlank(s string) bool { return Trim(s) == "" }

// Ptr returns a pointer to s, or nil if s is empty
func Ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns "" if ps is nil, else *ps.
func Deref(ps *string) string {
	if ps == nil {
		return ""
	}
	return *ps
}
