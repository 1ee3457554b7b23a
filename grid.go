package xwfill

import (
	"fmt"
	"strings"
)

// Grid is the letter grid produced by laying an assignment onto a crossword
// structure.
type Grid struct {
	crossword *Crossword
	letters   [][]rune
}

// LetterGrid places each assigned word's letters into a grid. Fillable cells
// not covered by the assignment stay zero.
func (c *Crossword) LetterGrid(assignment Assignment) Grid {
	letters := make([][]rune, c.Height)
	for row := range letters {
		letters[row] = make([]rune, c.Width)
	}
	for v, word := range assignment {
		for k, r := range word {
			row, col := v.Cell(k)
			letters[row][col] = r
		}
	}
	return Grid{
		crossword: c,
		letters:   letters,
	}
}

func (g Grid) Width() int {
	return g.crossword.Width
}

func (g Grid) Height() int {
	return g.crossword.Height
}

// Get returns the letter at (row, col), or zero if the cell is blocked or
// unassigned.
func (g Grid) Get(row, col int) rune {
	return g.letters[row][col]
}

// Repr renders the grid one text line per row: blocked cells as '█',
// unassigned fillable cells as spaces.
func (g Grid) Repr() string {
	lines := make([]string, g.Height())
	for row := range g.letters {
		var b strings.Builder
		for col, r := range g.letters[row] {
			switch {
			case !g.crossword.Fillable(row, col):
				b.WriteRune('█')
			case r == 0:
				b.WriteRune(' ')
			default:
				b.WriteRune(r)
			}
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}

func (g Grid) DebugString() string {
	return fmt.Sprintf("Grid{width: %d, height: %d, grid: %v}", g.Width(), g.Height(), g.letters)
}
