package source_test

import (
	"testing"

	"github.com/beanstalk-lang/beanstalk/internal/source"
)

func TestRangeEmpty(t *testing.T) {
	if !(source.Range{Start: 5, End: 5}).Empty() {
		t.Errorf("Range{5,5}.Empty() = false; want true")
	}
	if (source.Range{Start: 5, End: 6}).Empty() {
		t.Errorf("Range{5,6}.Empty() = true; want false")
	}
}

func TestRangeJoinCoversBoth(t *testing.T) {
	a := source.Range{Start: 2, End: 5}
	b := source.Range{Start: 4, End: 9}
	got := a.Join(b)
	if got != (source.Range{Start: 2, End: 9}) {
		t.Errorf("Join = %v; want {2 9}", got)
	}
}

func TestRangeJoinWithEmptyReturnsOther(t *testing.T) {
	empty := source.Range{Start: 3, End: 3}
	other := source.Range{Start: 10, End: 20}
	if got := empty.Join(other); got != other {
		t.Errorf("empty.Join(other) = %v; want %v", got, other)
	}
	if got := other.Join(empty); got != other {
		t.Errorf("other.Join(empty) = %v; want %v", got, other)
	}
}

func TestRangeAddShiftsBothEnds(t *testing.T) {
	r := source.Range{Start: 1, End: 4}
	got := r.Add(10)
	if got != (source.Range{Start: 11, End: 14}) {
		t.Errorf("Add(10) = %v; want {11 14}", got)
	}
}

func TestBufferStripsBOM(t *testing.T) {
	buf := source.New("test.bs", []byte{0xEF, 0xBB, 0xBF, 'a', 'b'})
	if !buf.HadBOM() {
		t.Errorf("HadBOM() = false; want true")
	}
	if buf.Text() != "ab" {
		t.Errorf("Text() = %q; want %q", buf.Text(), "ab")
	}
}

func TestBufferPositionLineColumn(t *testing.T) {
	buf := source.New("test.bs", []byte("ab\ncd\nef"))
	tests := []struct {
		offset int
		want   source.Position
	}{
		{0, source.Position{Line: 1, Column: 1}},
		{2, source.Position{Line: 1, Column: 3}},
		{3, source.Position{Line: 2, Column: 1}},
		{7, source.Position{Line: 3, Column: 2}},
	}
	for _, tt := range tests {
		got := buf.Position(tt.offset)
		if got != tt.want {
			t.Errorf("Position(%d) = %v; want %v", tt.offset, got, tt.want)
		}
	}
}

func TestBufferSliceClampsOutOfRange(t *testing.T) {
	buf := source.New("test.bs", []byte("hello"))
	if got := buf.Slice(source.Range{Start: -5, End: 3}); got != "hel" {
		t.Errorf("Slice with negative start = %q; want %q", got, "hel")
	}
	if got := buf.Slice(source.Range{Start: 2, End: 100}); got != "llo" {
		t.Errorf("Slice with overlong end = %q; want %q", got, "llo")
	}
	if got := buf.Slice(source.Range{Start: 4, End: 2}); got != "" {
		t.Errorf("Slice with start>end = %q; want empty", got)
	}
}
