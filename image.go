package xwfill

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	cellSize   = 100
	cellBorder = 2
	letterSize = 80
)

var letterFace = sync.OnceValues(func() (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    letterSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
})

// RenderPNG writes the grid as a PNG image: black canvas, white fillable
// cells with a 2px border, letters centered in their cells.
func (g Grid) RenderPNG(w io.Writer) error {
	face, err := letterFace()
	if err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, g.Width()*cellSize, g.Height()*cellSize))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: face,
	}

	for row := range g.letters {
		for col := range g.letters[row] {
			if !g.crossword.Fillable(row, col) {
				continue
			}

			cell := image.Rect(
				col*cellSize+cellBorder,
				row*cellSize+cellBorder,
				(col+1)*cellSize-cellBorder,
				(row+1)*cellSize-cellBorder,
			)
			draw.Draw(img, cell, image.White, image.Point{}, draw.Src)

			r := g.letters[row][col]
			if r == 0 {
				continue
			}

			letter := string(r)
			bounds, advance := drawer.BoundString(letter)
			drawer.Dot = fixed.Point26_6{
				X: fixed.I(col*cellSize) + (fixed.I(cellSize)-advance)/2,
				Y: fixed.I(row*cellSize) + (fixed.I(cellSize)-(bounds.Max.Y-bounds.Min.Y))/2 - bounds.Min.Y,
			}
			drawer.DrawString(letter)
		}
	}

	return png.Encode(w, img)
}

// SavePNG renders the grid to a PNG file at path.
func (g Grid) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := g.RenderPNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
