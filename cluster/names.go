// SPDX-License-Identifier: MIT
//
// File: names.go
// Role: simple and merged cluster names.
//
// A simple name is one uppercase letter followed by a three digit,
// zero-padded number in 001..999 ("A001"). Because the width is fixed,
// plain string comparison orders simple names by (letter, number).

package cluster

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultSeparator joins the parts of a merged name.
const DefaultSeparator = "|"

const (
	firstLetter = 'A'
	lastLetter  = 'Z'
	maxNumber   = 999
)

// FirstName is the name allocated when no prior names exist.
const FirstName = "A001"

// IsSimpleName reports whether s is a well-formed simple name.
func IsSimpleName(s string) bool {
	_, _, err := ParseName(s)

	return err == nil
}

// ParseName splits a simple name into its letter and number.
func ParseName(s string) (letter byte, number int, err error) {
	if len(s) != 4 || s[0] < firstLetter || s[0] > lastLetter {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadName, s)
	}
	for i := 1; i < 4; i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, 0, fmt.Errorf("%w: %q", ErrBadName, s)
		}
		number = number*10 + int(s[i]-'0')
	}
	if number == 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadName, s)
	}

	return s[0], number, nil
}

// FormatName renders a simple name.
func FormatName(letter byte, number int) string {
	return fmt.Sprintf("%c%03d", letter, number)
}

// SplitName returns the parts of a possibly merged name, dropping empty parts.
func SplitName(label, sep string) []string {
	if label == "" {
		return nil
	}
	if sep == "" {
		return []string{label}
	}
	parts := strings.Split(label, sep)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}

	return out
}

// MergeNames flattens labels (splitting already merged ones), removes
// duplicates, sorts the parts and joins them with sep. The result does not
// depend on the order of labels.
//
//	MergeNames([]string{"A002", "A001"}, "|")      == "A001|A002"
//	MergeNames([]string{"A001|A003", "A002"}, "|") == "A001|A002|A003"
func MergeNames(labels []string, sep string) string {
	seen := make(map[string]struct{}, len(labels))
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		for _, p := range SplitName(l, sep) {
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			parts = append(parts, p)
		}
	}
	sort.Strings(parts)

	return strings.Join(parts, sep)
}
