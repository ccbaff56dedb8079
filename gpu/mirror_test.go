package gpu

import (
	"sort"
	"testing"

	"github.com/ashgrove/voxant"
)

// fakeWriter records every call PageMirror makes, without touching a real
// texture, so PageMirror's write decomposition can be tested in isolation.
type fakeWriter struct {
	pageHeight, pageCount uint32
	rowCalls              int
	rowsCalls             int
	pageCalls             int
	bytesWritten          int
}

func (w *fakeWriter) Resize(pageHeight, pageCount uint32) error {
	w.pageHeight, w.pageCount = pageHeight, pageCount
	return nil
}

func (w *fakeWriter) WriteRow(offset, row, page uint32, bytes []byte) error {
	w.rowCalls++
	w.bytesWritten += len(bytes)
	return nil
}

func (w *fakeWriter) WriteRows(row, rows, page uint32, bytes []byte) error {
	w.rowsCalls++
	w.bytesWritten += len(bytes)
	return nil
}

func (w *fakeWriter) WritePages(page, pages uint32, bytes []byte) error {
	w.pageCalls++
	w.bytesWritten += len(bytes)
	return nil
}

func TestPageMirrorSyncWritesDirtySegments(t *testing.T) {
	o := voxant.NewOctree()
	o.Set(voxant.Branch{Path: voxant.IVec3{X: 0, Y: 0, Z: 0}, Depth: 1}, voxant.SolidNode(1, 2, 3))
	tree := voxant.NewDynamicOctree(*o)

	w := &fakeWriter{}
	m := NewPageMirror(w)

	if err := m.Sync(tree); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	if w.bytesWritten == 0 {
		t.Error("expected Sync to write some bytes to the writer")
	}
	if len(tree.Segments()) != 0 {
		t.Error("expected Sync to clear the tree's dirty segments")
	}
}

func TestPageMirrorSyncIsIdempotentWithNoNewWrites(t *testing.T) {
	o := voxant.NewOctree()
	tree := voxant.NewDynamicOctree(*o)

	w := &fakeWriter{}
	m := NewPageMirror(w)

	if err := m.Sync(tree); err != nil {
		t.Fatalf("first Sync: %v", err)
	}
	before := w.bytesWritten

	if err := m.Sync(tree); err != nil {
		t.Fatalf("second Sync: %v", err)
	}
	if w.bytesWritten != before {
		t.Errorf("second Sync wrote %d more bytes, want 0 (no pending segments)", w.bytesWritten-before)
	}
}

func TestPageMirrorResizeGrowsToFitSize(t *testing.T) {
	w := &fakeWriter{}
	m := NewPageMirror(w)

	if err := m.Resize(uint64(PageSize) * 3); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if m.Size() < uint64(PageSize)*3 {
		t.Errorf("Size() = %d, want >= %d", m.Size(), uint64(PageSize)*3)
	}
}

// byteRange is a half-open [start, end) range of bytes written by one call.
type byteRange struct{ start, end int }

// rangeRecorder records the byte range of every write, in page-relative
// terms translated back to a flat offset via page/row arithmetic matching
// PageMirror's own bytesPerRow/bytesPerPage, so the test can assert the
// five decomposed writes cover the dirty segment exactly once with no
// gaps or overlaps.
type rangeRecorder struct {
	bytesPerRow, bytesPerPage int

	rowCalls, rowsCalls, pageCalls int
	ranges                         []byteRange
}

func (w *rangeRecorder) Resize(pageHeight, pageCount uint32) error { return nil }

// WriteRow's range is sized from len(bytes); WriteRows/WritePages size
// theirs from (rows|pages)*stride, the extent each call names, so the
// recorder checks the row/page arithmetic rather than the slice length.
func (w *rangeRecorder) WriteRow(offset, row, page uint32, bytes []byte) error {
	w.rowCalls++
	start := int(page)*w.bytesPerPage + int(row)*w.bytesPerRow + int(offset)*nodeSize
	w.ranges = append(w.ranges, byteRange{start, start + len(bytes)})
	return nil
}

func (w *rangeRecorder) WriteRows(row, rows, page uint32, bytes []byte) error {
	w.rowsCalls++
	start := int(page)*w.bytesPerPage + int(row)*w.bytesPerRow
	length := int(rows) * w.bytesPerRow
	w.ranges = append(w.ranges, byteRange{start, start + length})
	return nil
}

func (w *rangeRecorder) WritePages(page, pages uint32, bytes []byte) error {
	w.pageCalls++
	start := int(page) * w.bytesPerPage
	length := int(pages) * w.bytesPerPage
	w.ranges = append(w.ranges, byteRange{start, start + length})
	return nil
}

// Scenario: a single dirty segment straddling a partial first row, the rest
// of its first page's rows, one or more full pages, the full rows of the
// last page, and a partial last row — every phase of writeSegment's
// decomposition fires exactly once, and the written ranges tile the
// segment's byte range exactly, with no gap and no overlap.
func TestPageMirrorSyncDecomposesOneSegmentIntoFiveNonOverlappingPhases(t *testing.T) {
	const pageHeight, pageCount = 4, 3

	w := &rangeRecorder{bytesPerRow: int(PageSize) * nodeSize, bytesPerPage: int(PageSize) * nodeSize * pageHeight}
	m := &PageMirror{writer: w, pageHeight: pageHeight, pageCount: pageCount}

	const nodeCount = 41024 // covers the segment below with room to spare
	o := &voxant.Octree{Nodes: make([]voxant.Node, nodeCount)}
	tree := voxant.NewDynamicOctree(*o)
	tree.TakeSegments()

	segment := voxant.Segment{Start: 12, Len: 41010}
	tree.PushSegment(segment)

	if err := m.Sync(tree); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	if w.rowCalls != 2 {
		t.Errorf("rowCalls = %d, want 2 (partial first row + partial last row)", w.rowCalls)
	}
	if w.rowsCalls != 2 {
		t.Errorf("rowsCalls = %d, want 2 (first page's remaining rows + last page's full rows)", w.rowsCalls)
	}
	if w.pageCalls != 1 {
		t.Errorf("pageCalls = %d, want 1 (one full page in between)", w.pageCalls)
	}

	sort.Slice(w.ranges, func(i, j int) bool { return w.ranges[i].start < w.ranges[j].start })

	want := byteRange{segment.ByteStart(), segment.ByteEnd()}
	cursor := want.start
	for _, r := range w.ranges {
		if r.start != cursor {
			t.Fatalf("gap or overlap before range %+v: expected next write to start at %d", r, cursor)
		}
		cursor = r.end
	}
	if cursor != want.end {
		t.Errorf("writes cover up to byte %d, want %d (segment end)", cursor, want.end)
	}
}

func TestPageMirrorSyncRejectsSegmentPastPoolEnd(t *testing.T) {
	o := voxant.NewOctree()
	tree := voxant.NewDynamicOctree(*o)
	tree.TakeSegments()
	tree.PushSegment(voxant.Segment{Start: 1000, Len: 1})

	w := &fakeWriter{}
	m := NewPageMirror(w)

	if err := m.Sync(tree); err == nil {
		t.Fatal("expected an error for a segment beyond the node pool")
	}
}
