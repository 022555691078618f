// Package lexer implements Beanstalk's hand-written, non-failing lexer:
// a lazy stream of token.Token values over a source.Buffer.
package lexer

import (
	"math"
	"strconv"
	"strings"

	"github.com/beanstalk-lang/beanstalk/internal/source"
	"github.com/beanstalk-lang/beanstalk/internal/token"
)

// Lexer is a hand-rolled byte-by-byte scanner, generalized from the
// teacher's string-position scanner to operate on a *source.Buffer so
// token ranges are byte offsets into shared, shareable source text.
type Lexer struct {
	buf          *source.Buffer
	position     int
	readPosition int
	ch           byte
	line         int
	column       int
}

// New constructs a Lexer over buf. The lexer never fails to construct;
// an empty buffer simply yields an immediate EOF token.
func New(buf *source.Buffer) *Lexer {
	l := &Lexer{buf: buf, line: 1, column: 0}
	l.readChar()
	return l
}

// NewAt constructs a Lexer that starts scanning buf at byte offset
// rather than the start of the buffer. Used to re-lex an interpolated
// string's embedded `{...}` expression directly against the outer
// buffer, so the resulting tokens carry correct absolute source ranges
// without any later remapping (spec.md §4.4).
func NewAt(buf *source.Buffer, offset int) *Lexer {
	pos := buf.Position(offset)
	l := &Lexer{buf: buf, line: pos.Line, column: 0, readPosition: offset}
	l.readChar()
	return l
}

// Position reports the lexer's current byte offset into its buffer.
func (l *Lexer) Position() int { return l.position }

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	l.ch = l.buf.Byte(l.readPosition)
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() byte { return l.buf.Byte(l.readPosition) }

func (l *Lexer) atEOF() bool { return l.position >= l.buf.Len() }

func (l *Lexer) make(typ token.Type, start int, text string) token.Token {
	return token.Token{
		Type:   typ,
		Range:  source.Range{Start: start, End: l.position},
		Source: l.buf,
		Text:   text,
		Line:   l.line,
		Column: l.column - len([]rune(text)) + 1,
	}
}

// NextToken returns the next token in the stream, always advancing
// position. It never fails: unrecognized bytes become token.Invalid and
// the scan continues (spec.md §4.1 "the lexer does not fail").
func (l *Lexer) NextToken() token.Token {
	l.skipTrivia()

	start := l.position
	if l.atEOF() {
		return token.Token{Type: token.EOF, Range: source.Range{Start: start, End: start}, Source: l.buf, Line: l.line, Column: l.column}
	}

	ch := l.ch
	switch {
	case isLetter(ch):
		return l.readIdentifierOrKeyword(start)
	case isDigit(ch):
		return l.readNumber(start)
	}

	switch ch {
	case '"':
		return l.readString(start)
	case '\'':
		return l.readChar_(start)
	case '$':
		if l.peekChar() == '"' {
			l.readChar()
			return l.readInterpolatedString(start)
		}
	}

	return l.readOperator(start)
}

func (l *Lexer) skipTrivia() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			for l.ch != '\n' && !l.atEOF() {
				l.readChar()
			}
		default:
			return
		}
	}
}

func isLetter(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func (l *Lexer) readIdentifierOrKeyword(start int) token.Token {
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	text := l.buf.Slice(source.Range{Start: start, End: l.position})
	typ := token.LookupIdent(text)
	tok := l.make(typ, start, text)
	if typ == token.KwTrue || typ == token.KwFalse {
		tok.Value = typ == token.KwTrue
	}
	return tok
}

// readNumber handles decimal, hex (0x), binary (0b), and octal (0o)
// literals with an optional width/signedness suffix, decoding to the
// narrowest requested integer type or f32/f64 for floats
// (spec.md §4.1).
func (l *Lexer) readNumber(start int) token.Token {
	isFloat := false
	base := 10
	digitsStart := start

	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
		base = 16
		l.readChar()
		l.readChar()
		digitsStart = l.position
		for isHexDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
	} else if l.ch == '0' && (l.peekChar() == 'b' || l.peekChar() == 'B') {
		base = 2
		l.readChar()
		l.readChar()
		digitsStart = l.position
		for l.ch == '0' || l.ch == '1' || l.ch == '_' {
			l.readChar()
		}
	} else if l.ch == '0' && (l.peekChar() == 'o' || l.peekChar() == 'O') {
		base = 8
		l.readChar()
		l.readChar()
		digitsStart = l.position
		for (l.ch >= '0' && l.ch <= '7') || l.ch == '_' {
			l.readChar()
		}
	} else {
		for isDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
		if l.ch == '.' && isDigit(l.peekChar()) {
			isFloat = true
			l.readChar()
			for isDigit(l.ch) || l.ch == '_' {
				l.readChar()
			}
		}
		if l.ch == 'e' || l.ch == 'E' {
			isFloat = true
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}

	digits := strings.ReplaceAll(l.buf.Slice(source.Range{Start: digitsStart, End: l.position}), "_", "")

	suffix := ""
	suffixStart := l.position
	if isLetter(l.ch) {
		for isLetter(l.ch) || isDigit(l.ch) {
			l.readChar()
		}
		suffix = l.buf.Slice(source.Range{Start: suffixStart, End: l.position})
	}

	text := l.buf.Slice(source.Range{Start: start, End: l.position})

	if isFloat || suffix == "f32" || suffix == "f64" {
		tok := l.make(token.Float, start, text)
		bits := 64
		if suffix == "f32" {
			bits = 32
		}
		f, _ := strconv.ParseFloat(digits, bits)
		if bits == 32 {
			tok.Value = float32(f)
		} else {
			tok.Value = f
		}
		return tok
	}

	tok := l.make(token.Int, start, text)
	tok.Value = decodeInt(digits, base, suffix)
	return tok
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// decodeInt decodes digits (already '_'-stripped) in base into the
// narrowest applicable signed/unsigned integer width, per the requested
// suffix, or the widest applicable width when unsuffixed
// (spec.md §4.1).
func decodeInt(digits string, base int, suffix string) any {
	unsigned := strings.HasPrefix(suffix, "u")
	var bits int
	switch suffix {
	case "i8", "u8":
		bits = 8
	case "i16", "u16":
		bits = 16
	case "i32", "u32":
		bits = 32
	case "i64", "u64":
		bits = 64
	default:
		bits = 64 // unsuffixed: widest applicable
	}

	if unsigned {
		v, _ := strconv.ParseUint(digits, base, bits)
		switch bits {
		case 8:
			return uint8(v)
		case 16:
			return uint16(v)
		case 32:
			return uint32(v)
		default:
			return v
		}
	}
	v, _ := strconv.ParseInt(digits, base, bits)
	switch bits {
	case 8:
		return int8(v)
	case 16:
		return int16(v)
	case 32:
		return int32(v)
	default:
		return v
	}
}

// FoldNegate negates a signed integer literal value in place, saturating
// to the width's MIN on overflow rather than promoting width
// (spec.md §4.2 "Prefix literal folding").
func FoldNegate(v any) any {
	switch n := v.(type) {
	case int8:
		if n == math.MinInt8 {
			return n
		}
		return -n
	case int16:
		if n == math.MinInt16 {
			return n
		}
		return -n
	case int32:
		if n == math.MinInt32 {
			return n
		}
		return -n
	case int64:
		if n == math.MinInt64 {
			return n
		}
		return -n
	case float32:
		return -n
	case float64:
		return -n
	default:
		return v
	}
}

// FoldBitwiseNegate bitwise-inverts an integer literal of any supported
// width.
func FoldBitwiseNegate(v any) any {
	switch n := v.(type) {
	case int8:
		return ^n
	case int16:
		return ^n
	case int32:
		return ^n
	case int64:
		return ^n
	case uint8:
		return ^n
	case uint16:
		return ^n
	case uint32:
		return ^n
	case uint64:
		return ^n
	default:
		return v
	}
}

func (l *Lexer) readString(start int) token.Token {
	l.readChar() // consume opening quote
	var decoded strings.Builder
	for l.ch != '"' && !l.atEOF() {
		if l.ch == '\\' {
			l.readChar()
			decoded.WriteByte(l.decodeEscape())
			continue
		}
		decoded.WriteByte(l.ch)
		l.readChar()
	}
	if l.ch == '"' {
		l.readChar() // consume closing quote
	}
	text := l.buf.Slice(source.Range{Start: start, End: l.position})
	tok := l.make(token.String, start, text)
	tok.Value = decoded.String()
	return tok
}

// decodeEscape decodes one C-style escape sequence starting at the
// character following the backslash, advancing past it, and returns the
// decoded byte. \x.. and \u{..} are handled per spec.md §4.1; \u{..}
// code points above one byte are truncated to their low byte since
// Beanstalk char/string decoding here works at the byte level (the
// resolver, not this front-end, owns full Unicode semantics).
func (l *Lexer) decodeEscape() byte {
	switch l.ch {
	case 'n':
		l.readChar()
		return '\n'
	case 't':
		l.readChar()
		return '\t'
	case 'r':
		l.readChar()
		return '\r'
	case '0':
		l.readChar()
		return 0
	case '\\':
		l.readChar()
		return '\\'
	case '"':
		l.readChar()
		return '"'
	case '\'':
		l.readChar()
		return '\''
	case 'x':
		l.readChar()
		hi := hexVal(l.ch)
		l.readChar()
		lo := hexVal(l.ch)
		l.readChar()
		return byte(hi<<4 | lo)
	case 'u':
		l.readChar() // 'u'
		if l.ch == '{' {
			l.readChar()
			v := 0
			for l.ch != '}' && !l.atEOF() {
				v = v<<4 | hexVal(l.ch)
				l.readChar()
			}
			if l.ch == '}' {
				l.readChar()
			}
			return byte(v)
		}
		return 'u'
	default:
		ch := l.ch
		l.readChar()
		return ch
	}
}

func hexVal(ch byte) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10
	default:
		return 0
	}
}

// readChar_ reads a char literal: exactly four UTF-8 bytes representing
// a single scalar value, null-padded (spec.md §4.1).
func (l *Lexer) readChar_(start int) token.Token {
	l.readChar() // consume opening quote
	var raw []byte
	if l.ch == '\\' {
		l.readChar()
		raw = append(raw, l.decodeEscape())
	} else if !l.atEOF() {
		raw = append(raw, l.ch)
		l.readChar()
	}
	if l.ch == '\'' {
		l.readChar()
	}
	var buf [4]byte
	copy(buf[:], raw)
	text := l.buf.Slice(source.Range{Start: start, End: l.position})
	tok := l.make(token.Char, start, text)
	tok.Value = buf
	return tok
}

// readInterpolatedString reads the raw, un-decoded body of an
// interpolated string literal (recognized by the `$` prefix already
// consumed by the caller). The parser re-lexes the body in a second
// pass (spec.md §4.4); this lexer only finds the matching closing
// quote, honoring backslash escapes and brace nesting so an embedded
// `"` inside `{...}` does not terminate the literal early.
func (l *Lexer) readInterpolatedString(start int) token.Token {
	l.readChar() // consume opening quote
	bodyStart := l.position
	depth := 0
loop:
	for !l.atEOF() {
		switch l.ch {
		case '\\':
			l.readChar()
			l.readChar()
			continue
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case '"':
			if depth == 0 {
				break loop
			}
		}
		l.readChar()
	}
	body := l.buf.Slice(source.Range{Start: bodyStart, End: l.position})
	if l.ch == '"' {
		l.readChar()
	}
	text := l.buf.Slice(source.Range{Start: start, End: l.position})
	tok := l.make(token.InterpString, start, text)
	tok.Value = body
	return tok
}

// operatorsByLength is consulted by readOperator for maximal-munch
// matching, longest candidates first (mirrors the teacher's nested peek
// switch, but table-driven).
var operatorsByLength = map[int][]struct {
	text string
	typ  token.Type
}{
	3: {
		{"...", token.Ellipsis},
		{"..=", token.DotDotEq},
		{"<<<", token.RotLeft},
		{">>>", token.RotRight},
	},
	2: {
		{"::", token.ColonColon},
		{"?.", token.QuestionDot},
		{"?[", token.QuestionBracket},
		{"==", token.Eq},
		{"!=", token.NotEq},
		{"<=", token.LtEq},
		{">=", token.GtEq},
		{"**", token.StarStar},
		{"%%", token.PercentPercent},
		{"<<", token.ShiftLeft},
		{">>", token.ShiftRight},
		{"&&", token.AmpAmp},
		{"||", token.PipePipe},
		{"^^", token.CaretCaret},
		{"??", token.QuestionQuestion},
		{"->", token.Arrow},
		{"=>", token.FatArrow},
		{"..", token.DotDot},
		{"#[", token.HashBracket},
		{"++", token.PlusPlus},
		{"--", token.MinusMinus},
	},
	1: {
		{".", token.Dot},
		{"[", token.LBracket},
		{"]", token.RBracket},
		{"(", token.LParen},
		{")", token.RParen},
		{"{", token.LBrace},
		{"}", token.RBrace},
		{",", token.Comma},
		{";", token.Semicolon},
		{"=", token.Assign},
		{"<", token.Lt},
		{">", token.Gt},
		{"+", token.Plus},
		{"-", token.Minus},
		{"*", token.Star},
		{"/", token.Slash},
		{"%", token.Percent},
		{"&", token.Amp},
		{"|", token.Pipe},
		{"^", token.Caret},
		{"~", token.Tilde},
		{"!", token.Bang},
		{"?", token.Question},
		{"#", token.Hash},
		{":", token.Colon},
	},
}

// readOperator performs maximal-munch matching of punctuation/operator
// tokens against the closed set in spec.md §4.1.
func (l *Lexer) readOperator(start int) token.Token {
	for length := 3; length >= 1; length-- {
		if l.position+length > l.buf.Len() {
			continue
		}
		candidate := l.buf.Slice(source.Range{Start: l.position, End: l.position + length})
		for _, op := range operatorsByLength[length] {
			if op.text == candidate {
				for i := 0; i < length; i++ {
					l.readChar()
				}
				return l.make(op.typ, start, candidate)
			}
		}
	}
	text := l.buf.Slice(source.Range{Start: start, End: start + 1})
	l.readChar()
	return l.make(token.Invalid, start, text)
}
