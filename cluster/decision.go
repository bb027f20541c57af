// SPDX-License-Identifier: MIT
//
// File: decision.go
// Role: label precedence for one connected component.

package cluster

import "sort"

// Kind tags the outcome of the precedence rule. Kinds are listed from the
// strongest signal to the weakest.
type Kind int

const (
	// KindCuratedMerge: several curated labels met in one component.
	KindCuratedMerge Kind = iota
	// KindCuratedReuse: exactly one curated label; reused verbatim.
	KindCuratedReuse
	// KindFinalMerge: no curated label, several previous final labels.
	KindFinalMerge
	// KindFinalReuse: no curated label, exactly one previous final label.
	KindFinalReuse
	// KindNew: no prior label at all; a fresh name must be allocated.
	KindNew
)

var kindNames = [...]string{
	KindCuratedMerge: "curated_merge",
	KindCuratedReuse: "curated_reuse",
	KindFinalMerge:   "final_merge",
	KindFinalReuse:   "final_reuse",
	KindNew:          "new",
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// IsMerge reports whether the kind joins previously distinct clusters.
func (k Kind) IsMerge() bool { return k == KindCuratedMerge || k == KindFinalMerge }

// Decision is the resolved label of one component.
type Decision struct {
	Kind Kind

	// Label is the component's label; empty for KindNew until a name is
	// allocated.
	Label string

	// Sources are the distinct prior labels that drove the decision, sorted.
	Sources []string
}

// Decide applies the precedence rule to the prior labels found in a
// component. Empty strings are ignored and duplicates collapse, so callers
// may pass one entry per member.
//
//	|curated| > 1  → KindCuratedMerge
//	|curated| == 1 → KindCuratedReuse
//	|final| > 1    → KindFinalMerge
//	|final| == 1   → KindFinalReuse
//	otherwise      → KindNew
func Decide(curated, final []string, sep string) Decision {
	sc := distinct(curated)
	sf := distinct(final)

	switch {
	case len(sc) > 1:
		return Decision{Kind: KindCuratedMerge, Label: MergeNames(sc, sep), Sources: sc}
	case len(sc) == 1:
		return Decision{Kind: KindCuratedReuse, Label: sc[0], Sources: sc}
	case len(sf) > 1:
		return Decision{Kind: KindFinalMerge, Label: MergeNames(sf, sep), Sources: sf}
	case len(sf) == 1:
		return Decision{Kind: KindFinalReuse, Label: sf[0], Sources: sf}
	default:
		return Decision{Kind: KindNew}
	}
}

// distinct returns the sorted set of non-empty values.
func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}
