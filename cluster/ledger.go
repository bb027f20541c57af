// SPDX-License-Identifier: MIT
//
// File: ledger.go
// Role: deterministic, monotonically increasing name allocation.

package cluster

// Ledger is the running record of names used so far in a run. It is a
// plain value: Observe and Next return the updated Ledger instead of
// mutating shared state, so the allocation order stays visible at the call
// site.
//
// Only the greatest well-formed simple name matters for allocation; names
// that do not match the simple-name pattern can never collide with a
// generated one and are ignored.
type Ledger struct {
	sep      string
	greatest string
}

// NewLedger returns an empty ledger splitting merged names on sep.
func NewLedger(sep string) Ledger {
	return Ledger{sep: sep}
}

// Greatest returns the greatest simple name observed, or "".
func (l Ledger) Greatest() string { return l.greatest }

// Observe records every part of label (merged names are split).
func (l Ledger) Observe(labels ...string) Ledger {
	for _, label := range labels {
		for _, p := range SplitName(label, l.sep) {
			if IsSimpleName(p) && p > l.greatest {
				l.greatest = p
			}
		}
	}

	return l
}

// Next allocates the name following the greatest observed one and returns
// it together with the ledger that has observed it.
//
//	none observed → A001
//	X123 → X124
//	X999 → Y001
//	Z999 → ErrNamesExhausted
func (l Ledger) Next() (string, Ledger, error) {
	if l.greatest == "" {
		return FirstName, l.Observe(FirstName), nil
	}
	letter, number, err := ParseName(l.greatest)
	if err != nil {
		return "", l, err
	}
	if number < maxNumber {
		number++
	} else {
		if letter == lastLetter {
			return "", l, ErrNamesExhausted
		}
		letter++
		number = 1
	}
	name := FormatName(letter, number)

	return name, l.Observe(name), nil
}
