package gpu

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenPageWriter backs a PageMirror with a single wide *ebiten.Image.
// ebiten has no 3-D or texture-array surface, so pages are stacked as
// vertical bands: page p's rows occupy [p*pageHeight, (p+1)*pageHeight).
// ebiten.Image is RGBA8 (4 bytes/texel), not the Rg32Uint the original
// shader reads; each 8-byte Node maps to 2 adjacent texels, so the image
// is PageSize*2 texels wide. Node bytes are already little-endian
// (flags, data), so they can be handed to WritePixels unconverted — see
// DESIGN.md's GPU page mirror entry.
type EbitenPageWriter struct {
	image      *ebiten.Image
	pageHeight uint32
	pageCount  uint32
}

// NewEbitenPageWriter returns a writer backed by a single one-row page.
func NewEbitenPageWriter() *EbitenPageWriter {
	return &EbitenPageWriter{
		image:      ebiten.NewImage(int(PageSize)*2, 1),
		pageHeight: 1,
		pageCount:  1,
	}
}

// Image returns the backing texture, for binding into a shader or for a
// software preview blit.
func (w *EbitenPageWriter) Image() *ebiten.Image { return w.image }

// Resize grows the backing image, copying forward any previously written
// content, matching the original's create-texture-then-copy growth.
func (w *EbitenPageWriter) Resize(pageHeight, pageCount uint32) error {
	width := int(PageSize) * 2
	height := int(pageHeight * pageCount)

	next := ebiten.NewImage(width, height)
	if w.image != nil {
		op := &ebiten.DrawImageOptions{}
		next.DrawImage(w.image, op)
	}

	w.image = next
	w.pageHeight = pageHeight
	w.pageCount = pageCount
	return nil
}

// WriteRow writes a run of nodes into one row of page, starting offset
// nodes in.
func (w *EbitenPageWriter) WriteRow(offset, row, page uint32, bytes []byte) error {
	return w.writeRect(offset, row+page*w.pageHeight, 1, bytes)
}

// WriteRows writes bytes as `rows` complete, full-width rows of page,
// starting at row.
func (w *EbitenPageWriter) WriteRows(row, rows, page uint32, bytes []byte) error {
	return w.writeRect(0, row+page*w.pageHeight, rows, bytes)
}

// WritePages writes bytes as `pages` complete pages, starting at page.
func (w *EbitenPageWriter) WritePages(page, pages uint32, bytes []byte) error {
	return w.writeRect(0, page*w.pageHeight, pages*w.pageHeight, bytes)
}

func (w *EbitenPageWriter) writeRect(nodeOffset, y, rows uint32, bytes []byte) error {
	if w.image == nil {
		return fmt.Errorf("%w: image not initialized", ErrSurfaceFatal)
	}
	if len(bytes) == 0 || rows == 0 {
		return nil
	}

	x := int(nodeOffset) * 2
	texelsTotal := len(bytes) / 4
	width := texelsTotal / int(rows)

	rect := image.Rect(x, int(y), x+width, int(y)+int(rows))

	sub, ok := w.image.SubImage(rect).(*ebiten.Image)
	if !ok {
		return fmt.Errorf("%w: rect %v outside backing image", ErrSurfaceFatal, rect)
	}

	sub.WritePixels(bytes)
	return nil
}
