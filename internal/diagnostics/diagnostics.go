// Package diagnostics models parser/lexer diagnostics as stable-sorted,
// severity-tagged data records rather than log lines (spec.md §6/§7).
// Rendering to text happens only at the CLI edge.
package diagnostics

import (
	"fmt"
	"sort"

	"github.com/beanstalk-lang/beanstalk/internal/source"
)

// Severity classifies a Diagnostic (spec.md §6).
type Severity int

const (
	Error Severity = iota
	Warning
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Kind is the closed set of error kinds the front-end surfaces
// (spec.md §7).
type Kind string

const (
	LexicalError              Kind = "LexicalError"
	UnexpectedToken            Kind = "UnexpectedToken"
	MissingConstruct           Kind = "MissingConstruct"
	InvalidModifier            Kind = "InvalidModifier"
	InvalidImport              Kind = "InvalidImport"
	InvalidInstantiationType   Kind = "InvalidInstantiationType"
	InvalidMapType             Kind = "InvalidMapType"
	InvalidOperatorOverload    Kind = "InvalidOperatorOverload"
	RequiredInitializer        Kind = "RequiredInitializer"
	MissingModuleBody          Kind = "MissingModuleBody"
	AttributeAlreadyDefined    Kind = "AttributeAlreadyDefined"
	MalformedInterpolatedString Kind = "MalformedInterpolatedString"
	RelationalChaining         Kind = "RelationalChaining"
)

// Diagnostic is one stable-sorted, severity-tagged record
// (spec.md §6 "Diagnostic record format").
type Diagnostic struct {
	Severity Severity
	Kind     Kind
	Source   *source.Buffer
	Range    source.Range
	Message  string
}

// Render formats the diagnostic as
// "[line L, column C at '<text slice>'] message", L/C 1-based.
func (d Diagnostic) Render() string {
	pos := source.Position{}
	text := ""
	if d.Source != nil {
		pos = d.Source.Position(d.Range.Start)
		text = d.Source.Slice(d.Range)
	}
	return fmt.Sprintf("[line %d, column %d at '%s'] %s", pos.Line, pos.Column, text, d.Message)
}

// Bag is the growing diagnostic list a single parser/lexer run owns.
// Mirrors the teacher's ctx.Errors accumulation, but as data rather
// than error values.
type Bag struct {
	items []Diagnostic
}

// Add appends a diagnostic in discovery order.
func (b *Bag) Add(d Diagnostic) { b.items = append(b.items, d) }

// Len reports how many diagnostics have been recorded so far. Used by
// the parser's try-parse checkpoint to snapshot/restore (spec.md §5
// "scoped acquisition").
func (b *Bag) Len() int { return len(b.items) }

// Truncate drops every diagnostic recorded after index n, restoring the
// bag to the state captured by an earlier Len() call.
func (b *Bag) Truncate(n int) {
	if n < len(b.items) {
		b.items = b.items[:n]
	}
}

// HasErrors reports whether any recorded diagnostic has Error severity.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Sorted returns the diagnostics sorted by (line, column) ascending,
// stable for equal keys (spec.md §8 property 6). It does not mutate the
// bag's discovery-order slice.
func (b *Bag) Sorted() []Diagnostic {
	out := make([]Diagnostic, len(b.items))
	copy(out, b.items)
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := positionOf(out[i]), positionOf(out[j])
		if pi.Line != pj.Line {
			return pi.Line < pj.Line
		}
		return pi.Column < pj.Column
	})
	return out
}

func positionOf(d Diagnostic) source.Position {
	if d.Source == nil {
		return source.Position{}
	}
	return d.Source.Position(d.Range.Start)
}

// ParseException is the internal control-flow signal thrown by a
// consume mismatch or a missing required construct (spec.md §4.9:
// "Only UnexpectedToken and MissingConstruct throw"). Go has no checked
// exceptions, so this is panicked and recovered explicitly by the
// parser's error-recovery loops and try-parse scopes — the direct
// translation of the teacher's absent-but-implied throw/catch split
// (the teacher never needed this because its grammar never backtracks
// this deeply; Beanstalk's try-parse scopes do).
type ParseException struct {
	Diagnostic Diagnostic
}

func (e *ParseException) Error() string { return e.Diagnostic.Message }

// Throw panics with a ParseException carrying d. Callers recover it at
// a try-parse boundary or a statement-level synchronization loop.
func Throw(d Diagnostic) {
	panic(&ParseException{Diagnostic: d})
}

// Recover, called in a deferred context, reports whether the recovered
// value was a *ParseException (returned via ok) and, if so, the
// diagnostic it carried. Any other recovered value is re-panicked so
// genuine programming errors are not silently swallowed.
func Recover(r interface{}) (d Diagnostic, ok bool) {
	if r == nil {
		return Diagnostic{}, false
	}
	pe, ok := r.(*ParseException)
	if !ok {
		panic(r)
	}
	return pe.Diagnostic, true
}
