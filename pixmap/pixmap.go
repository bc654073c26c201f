// SPDX-License-Identifier: EPL-2.0

package pixmap

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Grid is an 8-bit grayscale image stored row-major with the origin at the
// top-left corner.
type Grid struct {
	Width  int
	Height int
	Pix    []uint8
}

// New wraps pix as a width×height grid. The slice is not copied.
func New(width, height int, pix []uint8) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSizeMismatch, width, height)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrSizeMismatch, len(pix), width, height)
	}

	return &Grid{Width: width, Height: height, Pix: pix}, nil
}

// At returns the intensity at column x, row y.
func (g *Grid) At(x, y int) uint8 {
	return g.Pix[y*g.Width+x]
}

// Column copies column x, top row first, into dst and returns it. dst is
// grown when it is shorter than the grid height.
func (g *Grid) Column(x int, dst []uint8) []uint8 {
	if cap(dst) < g.Height {
		dst = make([]uint8, g.Height)
	}
	dst = dst[:g.Height]

	for y := range g.Height {
		dst[y] = g.Pix[y*g.Width+x]
	}

	return dst
}

// Read consumes exactly width×height bytes from r. Any trailing data is left
// unread. A short read fails with ErrTruncatedImage.
func Read(r io.Reader, width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSizeMismatch, width, height)
	}

	want := width * height
	pix := make([]uint8, want)

	n, err := io.ReadFull(r, pix)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("%w: read %d of %d bytes", ErrTruncatedImage, n, want)
	}
	if err != nil {
		return nil, fmt.Errorf("reading pixels: %w", err)
	}

	return &Grid{Width: width, Height: height, Pix: pix}, nil
}

// Fetch reads a raw grayscale image of the given size from path.
func Fetch(path string, width, height int) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Read(f, width, height)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
