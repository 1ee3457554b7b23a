package primitives

import (
	"testing"
)

func TestCharSet_Add(t *testing.T) {
	cs := NewCharSet()

	tests := []struct {
		name      string
		char      rune
		wantErr   bool
		wantCount int
	}{
		{"add 'a'", 'a', false, 1},
		{"add 'b'", 'b', false, 2},
		{"add 'z'", 'z', false, 3},
		{"add 'a' again", 'a', false, 3}, // should not increase count
		{"add out of range low", 'A', true, 3},
		{"add out of range high", '~', true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cs.Add(tt.char)
			if (err != nil) != tt.wantErr {
				t.Errorf("Add() error = %v, wantErr %v", err, tt.wantErr)
			}
			if cs.Count() != tt.wantCount {
				t.Errorf("count = %d, want %d", cs.Count(), tt.wantCount)
			}
		})
	}
}

func TestCharSet_Contains(t *testing.T) {
	cs := NewCharSet()
	cs.Add('c')
	cs.Add('t')

	tests := []struct {
		char rune
		want bool
	}{
		{'c', true},
		{'t', true},
		{'a', false},
		{'C', false}, // out of range is never contained
		{'█', false},
	}

	for _, tt := range tests {
		if got := cs.Contains(tt.char); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.char, got, tt.want)
		}
	}
}

func TestCharSet_AddAll(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() (*CharSet, *CharSet)
		expected int
	}{
		{
			name: "add to empty set",
			setup: func() (*CharSet, *CharSet) {
				cs1 := NewCharSet()
				cs2 := NewCharSet()
				cs2.Add('a')
				cs2.Add('b')
				return cs1, cs2
			},
			expected: 2,
		},
		{
			name: "add overlapping sets",
			setup: func() (*CharSet, *CharSet) {
				cs1 := NewCharSet()
				cs1.Add('a')
				cs2 := NewCharSet()
				cs2.Add('a')
				cs2.Add('b')
				return cs1, cs2
			},
			expected: 2,
		},
		{
			name: "add empty set",
			setup: func() (*CharSet, *CharSet) {
				cs1 := NewCharSet()
				cs1.Add('x')
				return cs1, NewCharSet()
			},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs1, cs2 := tt.setup()
			cs1.AddAll(cs2)
			if cs1.Count() != tt.expected {
				t.Errorf("count = %d, want %d", cs1.Count(), tt.expected)
			}
		})
	}
}

func TestCharSet_IsFull(t *testing.T) {
	cs := NewCharSet()
	for r := 'a'; r <= 'z'; r++ {
		if cs.IsFull() {
			t.Fatalf("set full before adding %q", r)
		}
		if err := cs.Add(r); err != nil {
			t.Fatalf("Add(%q) error = %v", r, err)
		}
	}
	if !cs.IsFull() {
		t.Error("set not full after adding a-z")
	}
	if cs.Count() != cs.Capacity() {
		t.Errorf("count = %d, capacity = %d", cs.Count(), cs.Capacity())
	}
}
