// Package source defines the immutable text buffer that lexer and parser
// addresses are anchored to, and the byte-range type diagnostics and AST
// nodes use to point back into it.
package source

import "sort"

// Range is an inclusive-start, exclusive-end byte offset span into a
// Buffer. The zero value is the empty range.
type Range struct {
	Start int
	End   int
}

// Empty reports whether the range spans zero bytes.
func (r Range) Empty() bool { return r.Start == r.End }

// Join returns the smallest range enclosing both r and other.
func (r Range) Join(other Range) Range {
	if other.Empty() && r.Empty() {
		return r
	}
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	start := r.Start
	if other.Start < start {
		start = other.Start
	}
	end := r.End
	if other.End > end {
		end = other.End
	}
	return Range{Start: start, End: end}
}

// Add shifts both ends of the range by offset.
func (r Range) Add(offset int) Range {
	return Range{Start: r.Start + offset, End: r.End + offset}
}

// Position is a 1-based line/column pair.
type Position struct {
	Line   int
	Column int
}

// Buffer is an immutable, read-only-shareable view over a source file's
// bytes. It owns no mutable state after construction, so a *Buffer may be
// handed to any number of concurrently parsing goroutines (spec.md §5).
type Buffer struct {
	path    string
	data    []byte
	hadBOM  bool
	// lineStarts[i] is the byte offset at which line i+1 (1-based) begins.
	lineStarts []int
}

const bom0, bom1, bom2 = 0xEF, 0xBB, 0xBF

// New constructs a Buffer from raw file bytes, silently skipping a UTF-8
// BOM at byte 0 per spec.md §6.
func New(path string, data []byte) *Buffer {
	hadBOM := false
	if len(data) >= 3 && data[0] == bom0 && data[1] == bom1 && data[2] == bom2 {
		data = data[3:]
		hadBOM = true
	}
	return &Buffer{
		path:       path,
		data:       data,
		hadBOM:     hadBOM,
		lineStarts: scanLineStarts(data),
	}
}

func scanLineStarts(data []byte) []int {
	starts := []int{0}
	i := 0
	for i < len(data) {
		switch data[i] {
		case '\n':
			i++
			starts = append(starts, i)
		case '\r':
			i++
			if i < len(data) && data[i] == '\n' {
				i++
			}
			starts = append(starts, i)
		default:
			i++
		}
	}
	return starts
}

// Path returns the originating file path, or "" for an anonymous buffer.
func (b *Buffer) Path() string { return b.path }

// Len returns the number of addressable bytes (excluding a skipped BOM).
func (b *Buffer) Len() int { return len(b.data) }

// Text returns the full decoded source text.
func (b *Buffer) Text() string { return string(b.data) }

// HadBOM reports whether a BOM was stripped from the front of the input.
func (b *Buffer) HadBOM() bool { return b.hadBOM }

// Byte returns the byte at offset, or 0 past the end (used by lexers as
// a sentinel for EOF without a bounds check at every call site).
func (b *Buffer) Byte(offset int) byte {
	if offset < 0 || offset >= len(b.data) {
		return 0
	}
	return b.data[offset]
}

// Slice returns the source text covered by r. An out-of-range r is
// clamped rather than panicking, so a diagnostic built from a
// best-effort range never crashes the renderer.
func (b *Buffer) Slice(r Range) string {
	start, end := r.Start, r.End
	if start < 0 {
		start = 0
	}
	if end > len(b.data) {
		end = len(b.data)
	}
	if start > end {
		return ""
	}
	return string(b.data[start:end])
}

// Position maps a byte offset to a 1-based line/column pair.
func (b *Buffer) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(b.data) {
		offset = len(b.data)
	}
	// sort.Search finds the first lineStart > offset; the line containing
	// offset is the one just before it.
	idx := sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] > offset
	})
	line := idx // lineStarts[idx-1] is this line's start, 1-based line == idx
	lineStart := b.lineStarts[line-1]
	return Position{Line: line, Column: offset - lineStart + 1}
}
