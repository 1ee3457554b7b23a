package xwfill

import "fmt"

// Direction is an enum representing the direction of a word slot in a grid,
// either 'Across' or 'Down'.
type Direction int

const (
	DirectionAcross Direction = iota
	DirectionDown
)

func (d Direction) String() string {
	if d == DirectionDown {
		return "down"
	}
	return "across"
}

// Variable identifies one word slot: its starting cell, its length, and
// whether it runs across or down. Variables are comparable and usable as map
// keys; two variables are equal iff all four attributes match.
type Variable struct {
	Row       int
	Col       int
	Length    int
	Direction Direction
}

// Cell returns the grid position of the k-th letter of the slot.
func (v Variable) Cell(k int) (row, col int) {
	if v.Direction == DirectionDown {
		return v.Row + k, v.Col
	}
	return v.Row, v.Col + k
}

func (v Variable) String() string {
	return fmt.Sprintf("(%d, %d) %s : %d", v.Row, v.Col, v.Direction, v.Length)
}

// Overlap is the pair of letter indices at which two crossing variables
// share a cell: index I along the first variable, index J along the second.
type Overlap struct {
	I int
	J int
}

type variablePair struct {
	a, b Variable
}

// Crossword is the immutable structure of a puzzle: the grid occupancy, the
// word slots derived from it, and the overlap table for every pair of
// crossing slots. It is computed once at construction and read-only
// afterwards.
type Crossword struct {
	Height int
	Width  int

	structure [][]bool
	variables []Variable
	overlaps  map[variablePair]Overlap
	neighbors map[Variable][]Variable
}

// NewCrossword builds a Crossword from an occupancy matrix, where true marks
// a fillable cell. Word slots are the maximal runs of at least two fillable
// cells in each row and column.
func NewCrossword(structure [][]bool) *Crossword {
	c := &Crossword{
		Height:    len(structure),
		structure: structure,
	}
	for _, row := range structure {
		if len(row) > c.Width {
			c.Width = len(row)
		}
	}

	c.findVariables()
	c.findOverlaps()
	return c
}

// Fillable checks whether the cell at (row, col) can hold a letter.
func (c *Crossword) Fillable(row, col int) bool {
	if row < 0 || row >= c.Height || col < 0 || col >= len(c.structure[row]) {
		return false
	}
	return c.structure[row][col]
}

// Variables returns all word slots of the puzzle, in derivation order
// (across slots row by row, then down slots column by column). The returned
// slice must not be modified.
func (c *Crossword) Variables() []Variable {
	return c.variables
}

// Neighbors returns the variables sharing at least one cell with v,
// excluding v itself. The returned slice must not be modified.
func (c *Crossword) Neighbors(v Variable) []Variable {
	return c.neighbors[v]
}

// Overlap returns the letter-index pair at which v1 and v2 cross, if they
// do.
func (c *Crossword) Overlap(v1, v2 Variable) (Overlap, bool) {
	ov, ok := c.overlaps[variablePair{v1, v2}]
	return ov, ok
}

func (c *Crossword) findVariables() {
	for row := 0; row < c.Height; row++ {
		run := 0
		for col := 0; col <= c.Width; col++ {
			if c.Fillable(row, col) {
				run++
				continue
			}
			if run > 1 {
				c.variables = append(c.variables, Variable{
					Row:       row,
					Col:       col - run,
					Length:    run,
					Direction: DirectionAcross,
				})
			}
			run = 0
		}
	}

	for col := 0; col < c.Width; col++ {
		run := 0
		for row := 0; row <= c.Height; row++ {
			if c.Fillable(row, col) {
				run++
				continue
			}
			if run > 1 {
				c.variables = append(c.variables, Variable{
					Row:       row - run,
					Col:       col,
					Length:    run,
					Direction: DirectionDown,
				})
			}
			run = 0
		}
	}
}

func (c *Crossword) findOverlaps() {
	type slotCell struct {
		v      Variable
		offset int
	}

	cells := make(map[[2]int][]slotCell)
	for _, v := range c.variables {
		for k := range v.Length {
			row, col := v.Cell(k)
			cells[[2]int{row, col}] = append(cells[[2]int{row, col}], slotCell{v: v, offset: k})
		}
	}

	c.overlaps = make(map[variablePair]Overlap)
	for _, sharing := range cells {
		for _, first := range sharing {
			for _, second := range sharing {
				if first.v == second.v {
					continue
				}
				c.overlaps[variablePair{first.v, second.v}] = Overlap{I: first.offset, J: second.offset}
			}
		}
	}

	// Neighbor lists are built by walking the variable slice on both sides so
	// their order is deterministic.
	c.neighbors = make(map[Variable][]Variable, len(c.variables))
	for _, v1 := range c.variables {
		for _, v2 := range c.variables {
			if v1 == v2 {
				continue
			}
			if _, ok := c.overlaps[variablePair{v1, v2}]; ok {
				c.neighbors[v1] = append(c.neighbors[v1], v2)
			}
		}
	}
}
