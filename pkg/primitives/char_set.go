package primitives

import "fmt"

// CharSet efficiently represents a set of lowercase letters.
type CharSet struct {
	available ['z' - 'a' + 1]bool
	count     int
}

// NewCharSet returns an empty set over the letters a to z.
func NewCharSet() *CharSet {
	return &CharSet{}
}

// Add adds a letter to the set.
func (c *CharSet) Add(r rune) error {
	if r < 'a' || r > 'z' {
		return fmt.Errorf("character %c is out of range", r)
	}

	if c.available[r-'a'] {
		return nil
	}

	c.count++
	c.available[r-'a'] = true
	return nil
}

// AddAll adds all letters from another set to this set.
func (c *CharSet) AddAll(other *CharSet) {
	if c.IsFull() {
		return
	}

	for oi, oa := range other.available {
		if !oa || c.available[oi] {
			continue
		}
		c.available[oi] = true
		c.count++
	}
}

// Contains checks if a letter is in the set. Characters outside a-z are never
// in the set.
func (c *CharSet) Contains(r rune) bool {
	if r < 'a' || r > 'z' {
		return false
	}
	return c.available[r-'a']
}

// IsFull checks if the set is full.
func (c *CharSet) IsFull() bool {
	return c.count == len(c.available)
}

// Capacity returns the number of letters the set can hold.
func (c *CharSet) Capacity() int {
	return len(c.available)
}

// Count returns the number of letters in the set.
func (c *CharSet) Count() int {
	return c.count
}
