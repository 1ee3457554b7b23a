package primitives

import (
	"iter"
	"slices"
)

// WordSet is a set of words that remembers insertion order.
//
// Iteration always follows the order words were first added, so callers that
// order or tie-break on "domain order" behave deterministically across runs.
type WordSet struct {
	words   []string
	present map[string]struct{}
}

// NewWordSet returns a set containing the given words, keeping their order
// and dropping duplicates.
func NewWordSet(words ...string) *WordSet {
	s := &WordSet{
		words:   make([]string, 0, len(words)),
		present: make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add adds a word to the set. Adding a word that is already present is a
// no-op and does not move it.
func (s *WordSet) Add(w string) {
	if _, ok := s.present[w]; ok {
		return
	}
	s.present[w] = struct{}{}
	s.words = append(s.words, w)
}

// Contains checks if a word is in the set.
func (s *WordSet) Contains(w string) bool {
	_, ok := s.present[w]
	return ok
}

// Len returns the number of words in the set.
func (s *WordSet) Len() int {
	return len(s.words)
}

// Empty checks if the set has no words.
func (s *WordSet) Empty() bool {
	return len(s.words) == 0
}

// Words returns a copy of the set's words in insertion order. The copy is a
// stable snapshot: mutating the set afterwards does not affect it.
func (s *WordSet) Words() []string {
	return slices.Clone(s.words)
}

// All iterates the set's words in insertion order. The set must not be
// mutated during iteration; use Words for a mutation-safe snapshot.
func (s *WordSet) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, w := range s.words {
			if !yield(w) {
				return
			}
		}
	}
}

// Filter removes every word for which keep returns false, preserving the
// order of the remaining words. It returns the number of words removed.
func (s *WordSet) Filter(keep func(word string) bool) int {
	prior := s.FilterUndo(keep)
	if prior == nil {
		return 0
	}
	return prior.Len() - s.Len()
}

// FilterUndo is Filter, but returns the set's prior contents when anything
// was removed, for the caller to restore later, and nil when the filter
// removed nothing. The set is only copied once the first removal is found,
// so a filter that keeps everything does not allocate.
func (s *WordSet) FilterUndo(keep func(word string) bool) *WordSet {
	first := -1
	for i, w := range s.words {
		if !keep(w) {
			first = i
			break
		}
	}
	if first == -1 {
		return nil
	}

	prior := NewWordSet(s.words...)

	kept := make([]string, first, len(s.words)-1)
	copy(kept, s.words[:first])
	delete(s.present, s.words[first])
	for _, w := range s.words[first+1:] {
		if keep(w) {
			kept = append(kept, w)
			continue
		}
		delete(s.present, w)
	}
	s.words = kept
	return prior
}

// Clone returns an independent copy of the set.
func (s *WordSet) Clone() *WordSet {
	c := &WordSet{
		words:   slices.Clone(s.words),
		present: make(map[string]struct{}, len(s.words)),
	}
	for _, w := range s.words {
		c.present[w] = struct{}{}
	}
	return c
}

// Equal checks if two sets contain the same words in the same order.
func (s *WordSet) Equal(other *WordSet) bool {
	return slices.Equal(s.words, other.words)
}
