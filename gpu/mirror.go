package gpu

import (
	"fmt"

	"github.com/ashgrove/voxant"
)

// PageSize is the fixed row width, in nodes, of every page in the mirrored
// texture.
const PageSize uint32 = 1 << 12

const nodeSize = 8

// PageWriter is the boundary a real GPU texture backend implements.
// Acquiring the device and the compute/fragment shader that samples the
// resulting texture are out of scope; PageMirror only ever calls
// these three methods, each scoped to one page.
type PageWriter interface {
	// Resize grows the backing surface to hold pageHeight x PageSize x
	// pageCount nodes, preserving previously written content.
	Resize(pageHeight, pageCount uint32) error
	// WriteRow writes bytes into one row of page, starting offset nodes in.
	WriteRow(offset, row, page uint32, bytes []byte) error
	// WriteRows writes bytes as `rows` complete rows starting at row of page.
	WriteRows(row, rows, page uint32, bytes []byte) error
	// WritePages writes bytes as `pages` complete pages starting at page.
	WritePages(page, pages uint32, bytes []byte) error
}

// PageMirror tracks a paged texture mirroring an Octree's node pool, and
// decomposes each dirty Segment into row/rows/page writes bounded by
// PageSize.
type PageMirror struct {
	writer     PageWriter
	pageHeight uint32
	pageCount  uint32
}

// NewPageMirror returns a mirror with a single one-row page, driving writer.
func NewPageMirror(writer PageWriter) *PageMirror {
	return &PageMirror{writer: writer, pageHeight: 1, pageCount: 1}
}

// Size returns the number of nodes the mirror can currently hold.
func (m *PageMirror) Size() uint64 {
	return uint64(PageSize) * uint64(m.pageHeight) * uint64(m.pageCount)
}

func (m *PageMirror) bytesPerRow() int  { return int(PageSize) * nodeSize }
func (m *PageMirror) pageRows() int     { return int(m.pageHeight) }
func (m *PageMirror) bytesPerPage() int { return m.bytesPerRow() * m.pageRows() }

// Resize grows the mirror, if needed, to hold at least size nodes: it
// doubles the page height until that saturates PageSize, then adds whole
// pages, matching the growth strategy of the original's DrawOctree::resize.
func (m *PageMirror) Resize(size uint64) error {
	if m.Size() >= size {
		return nil
	}

	for m.Size() < size {
		if m.pageHeight < PageSize {
			m.pageHeight *= 2
		} else {
			m.pageCount++
		}
	}

	return m.writer.Resize(m.pageHeight, m.pageCount)
}

// Sync resizes the mirror to fit tree, writes every pending dirty Segment,
// and clears them.
func (m *PageMirror) Sync(tree *voxant.DynamicOctree) error {
	if err := m.Resize(uint64(tree.Len())); err != nil {
		return err
	}

	bytes := tree.Bytes()
	for _, segment := range tree.Segments() {
		if segment.ByteEnd() > len(bytes) {
			return fmt.Errorf("%w: segment end %d exceeds pool size %d", ErrSurfaceFatal, segment.ByteEnd(), len(bytes))
		}
		if err := m.writeSegment(segment, bytes); err != nil {
			return err
		}
	}

	tree.ClearSegments()
	return nil
}

// writeSegment decomposes one dirty byte range into the five write shapes
// the texture's row/page structure supports: a partial first row, the
// remaining full rows of the first page, any number of full pages, the
// full rows of the last page, and a partial last row.
func (m *PageMirror) writeSegment(segment voxant.Segment, bytes []byte) error {
	offset := segment.ByteStart()
	size := segment.ByteLen()

	bytesPerRow := m.bytesPerRow()
	row := offset / bytesPerRow
	page := row / m.pageRows()

	if err := m.writeFirstRow(&offset, &size, &row, page, bytes); err != nil {
		return err
	}
	if err := m.writeFirstRows(&offset, &size, &row, page, bytes); err != nil {
		return err
	}
	page = row / m.pageRows()
	if err := m.writeFullPages(&offset, &size, &page, bytes); err != nil {
		return err
	}
	row = offset / bytesPerRow
	if err := m.writeLastRows(&offset, &size, &row, page, bytes); err != nil {
		return err
	}
	return m.writeLastRow(offset, size, row, page, bytes)
}

func (m *PageMirror) writeFirstRow(offset, size *int, row *int, page int, bytes []byte) error {
	bytesPerRow := m.bytesPerRow()
	rowOffset := *offset % bytesPerRow
	if rowOffset == 0 {
		return nil
	}

	rowSize := bytesPerRow - rowOffset
	if *size < rowSize {
		rowSize = *size
	}

	if err := m.writer.WriteRow(uint32(rowOffset/nodeSize), uint32(*row%m.pageRows()), uint32(page), bytes[*offset:*offset+rowSize]); err != nil {
		return err
	}

	*row++
	*offset += rowSize
	*size -= rowSize
	return nil
}

func (m *PageMirror) writeFirstRows(offset, size *int, row *int, page int, bytes []byte) error {
	pageOffset := *row % m.pageRows()
	rows := m.pageRows() - pageOffset
	if avail := *size / m.bytesPerRow(); avail < rows {
		rows = avail
	}
	if rows <= 0 {
		return nil
	}

	if err := m.writer.WriteRows(uint32(pageOffset), uint32(rows), uint32(*row/m.pageRows()), bytes[*offset:*offset+rows*m.bytesPerRow()]); err != nil {
		return err
	}

	written := rows * m.bytesPerRow()
	*row += rows
	*offset += written
	*size -= written
	return nil
}

func (m *PageMirror) writeFullPages(offset, size *int, page *int, bytes []byte) error {
	bpp := m.bytesPerPage()
	pages := *size / bpp
	if pages <= 0 {
		return nil
	}

	if err := m.writer.WritePages(uint32(*page), uint32(pages), bytes[*offset:*offset+pages*bpp]); err != nil {
		return err
	}

	written := pages * bpp
	*page += pages
	*offset += written
	*size -= written
	return nil
}

func (m *PageMirror) writeLastRows(offset, size *int, row *int, page int, bytes []byte) error {
	rows := *size / m.bytesPerRow()
	if rows <= 0 {
		return nil
	}

	if err := m.writer.WriteRows(0, uint32(rows), uint32(page), bytes[*offset:*offset+rows*m.bytesPerRow()]); err != nil {
		return err
	}

	written := rows * m.bytesPerRow()
	*row += rows
	*offset += written
	*size -= written
	return nil
}

func (m *PageMirror) writeLastRow(offset, size, row, page int, bytes []byte) error {
	if size <= 0 {
		return nil
	}
	return m.writer.WriteRow(0, uint32(row%m.pageRows()), uint32(page), bytes[offset:offset+size])
}
