package diagnostics_test

import (
	"testing"

	"github.com/beanstalk-lang/beanstalk/internal/diagnostics"
	"github.com/beanstalk-lang/beanstalk/internal/source"
)

func TestBagSortedIsStableByLineColumn(t *testing.T) {
	buf := source.New("test.bs", []byte("ab\ncd\nef"))
	var bag diagnostics.Bag
	bag.Add(diagnostics.Diagnostic{Kind: diagnostics.UnexpectedToken, Source: buf, Range: source.Range{Start: 6, End: 7}, Message: "third"})
	bag.Add(diagnostics.Diagnostic{Kind: diagnostics.UnexpectedToken, Source: buf, Range: source.Range{Start: 0, End: 1}, Message: "first"})
	bag.Add(diagnostics.Diagnostic{Kind: diagnostics.UnexpectedToken, Source: buf, Range: source.Range{Start: 0, End: 1}, Message: "first-again"})
	bag.Add(diagnostics.Diagnostic{Kind: diagnostics.UnexpectedToken, Source: buf, Range: source.Range{Start: 3, End: 4}, Message: "second"})

	sorted := bag.Sorted()
	if len(sorted) != 4 {
		t.Fatalf("len(Sorted()) = %d; want 4", len(sorted))
	}
	wantOrder := []string{"first", "first-again", "second", "third"}
	for i, want := range wantOrder {
		if sorted[i].Message != want {
			t.Errorf("sorted[%d].Message = %q; want %q", i, sorted[i].Message, want)
		}
	}
}

func TestBagLenAndTruncateRestoresCheckpoint(t *testing.T) {
	var bag diagnostics.Bag
	bag.Add(diagnostics.Diagnostic{Message: "a"})
	mark := bag.Len()
	bag.Add(diagnostics.Diagnostic{Message: "b"})
	bag.Add(diagnostics.Diagnostic{Message: "c"})
	if bag.Len() != 3 {
		t.Fatalf("Len() = %d; want 3", bag.Len())
	}
	bag.Truncate(mark)
	if bag.Len() != 1 {
		t.Fatalf("Len() after Truncate(%d) = %d; want 1", mark, bag.Len())
	}
	if bag.Sorted()[0].Message != "a" {
		t.Errorf("surviving diagnostic = %q; want %q", bag.Sorted()[0].Message, "a")
	}
}

func TestBagHasErrors(t *testing.T) {
	var bag diagnostics.Bag
	bag.Add(diagnostics.Diagnostic{Severity: diagnostics.Warning, Message: "w"})
	if bag.HasErrors() {
		t.Errorf("HasErrors() = true with only a warning; want false")
	}
	bag.Add(diagnostics.Diagnostic{Severity: diagnostics.Error, Message: "e"})
	if !bag.HasErrors() {
		t.Errorf("HasErrors() = false after adding an error; want true")
	}
}

func TestDiagnosticRenderFormat(t *testing.T) {
	buf := source.New("test.bs", []byte("let x = 1\nbad"))
	d := diagnostics.Diagnostic{
		Kind:    diagnostics.UnexpectedToken,
		Source:  buf,
		Range:   source.Range{Start: 10, End: 13},
		Message: "unexpected token",
	}
	got := d.Render()
	want := `[line 2, column 1 at 'bad'] unexpected token`
	if got != want {
		t.Errorf("Render() = %q; want %q", got, want)
	}
}

func TestDiagnosticRenderWithNilSource(t *testing.T) {
	d := diagnostics.Diagnostic{Message: "no source"}
	got := d.Render()
	want := `[line 0, column 0 at ''] no source`
	if got != want {
		t.Errorf("Render() = %q; want %q", got, want)
	}
}

func TestThrowAndRecoverRoundTrip(t *testing.T) {
	want := diagnostics.Diagnostic{Kind: diagnostics.MissingConstruct, Message: "missing thing"}
	got, ok := func() (d diagnostics.Diagnostic, ok bool) {
		defer func() {
			d, ok = diagnostics.Recover(recover())
		}()
		diagnostics.Throw(want)
		return
	}()
	if !ok {
		t.Fatalf("Recover() ok = false; want true")
	}
	if got.Message != want.Message || got.Kind != want.Kind {
		t.Errorf("recovered = %#v; want %#v", got, want)
	}
}

func TestRecoverIgnoresNilPanic(t *testing.T) {
	_, ok := diagnostics.Recover(nil)
	if ok {
		t.Errorf("Recover(nil) ok = true; want false")
	}
}

func TestRecoverRepanicsOnForeignValue(t *testing.T) {
	defer func() {
		r := recover()
		if r != "not a parse exception" {
			t.Errorf("recovered = %v; want the original foreign panic value", r)
		}
	}()
	func() {
		defer func() {
			diagnostics.Recover(recover())
		}()
		panic("not a parse exception")
	}()
}
