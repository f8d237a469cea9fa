// SPDX-License-Identifier: MIT
//
// File: interner.go
// Role: Bijective label ↔ index mapping with first-seen index assignment.
//
// Invariants:
//   - index[labels[i]] == i for every i in [0, len(labels)).
//   - len(index) == len(labels); no gaps, no reuse.

package core

// Interner assigns dense VertexIndex values to string labels.
//
// The forward direction is a map; the reverse direction is a slice indexed
// by VertexIndex, so both lookups are O(1). The zero value is not usable;
// construct with NewInterner.
type Interner struct {
	index  map[string]VertexIndex // label → index
	labels []string               // index → label
}

// NewInterner returns an empty Interner.
func NewInterner() *Interner {
	return newInterner(0)
}

func newInterner(capacity int) *Interner {
	return &Interner{
		index:  make(map[string]VertexIndex, capacity),
		labels: make([]string, 0, capacity),
	}
}

// Intern returns the index previously assigned to label, or assigns and
// records the next sequential index if label has not been seen.
//
// Errors:
//   - ErrEmptyLabel: if label == "".
//
// Complexity:
//   - Time O(1) expected (amortized on insert), Space O(1) amortized.
func (in *Interner) Intern(label string) (VertexIndex, error) {
	if label == "" {
		return 0, ErrEmptyLabel
	}
	if i, ok := in.index[label]; ok {
		return i, nil
	}

	// Next index equals the number of labels recorded so far.
	i := VertexIndex(len(in.labels))
	in.index[label] = i
	in.labels = append(in.labels, label)

	return i, nil
}

// Lookup reports the index of label without assigning one.
func (in *Interner) Lookup(label string) (VertexIndex, bool) {
	i, ok := in.index[label]

	return i, ok
}

// Label returns the label that was assigned index i.
func (in *Interner) Label(i VertexIndex) (string, bool) {
	if i < 0 || int(i) >= len(in.labels) {
		return "", false
	}

	return in.labels[i], true
}

// Len returns the number of distinct labels interned so far.
func (in *Interner) Len() int { return len(in.labels) }

// Labels returns a copy of all labels ordered by index.
// Complexity: O(N).
func (in *Interner) Labels() []string {
	out := make([]string, len(in.labels))
	copy(out, in.labels)

	return out
}
