package parser

import (
	"strings"

	"github.com/beanstalk-lang/beanstalk/internal/ast"
	"github.com/beanstalk-lang/beanstalk/internal/diagnostics"
	"github.com/beanstalk-lang/beanstalk/internal/lexer"
	"github.com/beanstalk-lang/beanstalk/internal/source"
	"github.com/beanstalk-lang/beanstalk/internal/token"
)

// parseInterpolatedString re-lexes the raw body the lexer captured for
// an InterpString token into alternating literal and `{...}`
// expression parts (spec.md §4.4). Each embedded expression is
// re-tokenized directly against the outer buffer at its true byte
// offset, so its tokens — and therefore its whole sub-AST — carry
// correct absolute source ranges with no separate remapping pass.
func (p *Parser) parseInterpolatedString(tok token.Token) ast.Expression {
	body, _ := tok.Value.(string)
	bodyOffset := tok.Range.Start + 2 // past the `$"` prefix

	var parts []ast.Expression
	litStart := 0
	i := 0
	for i < len(body) {
		if body[i] == '\\' && i+1 < len(body) {
			i += 2
			continue
		}
		if body[i] == '{' {
			if i > litStart {
				parts = append(parts, p.interpLiteralPart(body[litStart:i], bodyOffset+litStart))
			}
			depth := 1
			j := i + 1
			for j < len(body) && depth > 0 {
				switch body[j] {
				case '{':
					depth++
				case '}':
					depth--
				}
				if depth == 0 {
					break
				}
				j++
			}
			absStart := bodyOffset + i + 1
			absEnd := bodyOffset + j
			if expr, ok := p.parseEmbeddedExpression(absStart, absEnd); ok {
				parts = append(parts, expr)
			} else {
				p.reportf(diagnostics.MalformedInterpolatedString, source.Range{Start: absStart, End: absEnd},
					"malformed expression inside interpolated string")
			}
			i = j + 1
			litStart = i
			continue
		}
		i++
	}
	if litStart < len(body) {
		parts = append(parts, p.interpLiteralPart(body[litStart:], bodyOffset+litStart))
	}
	return &ast.InterpolatedStringExpression{Parts: parts, R: tok.Range}
}

// parseEmbeddedExpression tokenizes the outer buffer's [absStart, absEnd)
// byte range and parses a single expression from it, sharing this
// parser's diagnostic bag so a failure inside the embedded expression
// reports through the same sorted diagnostic list as the rest of the
// file (spec.md §9 "Try-parse scope").
func (p *Parser) parseEmbeddedExpression(absStart, absEnd int) (ast.Expression, bool) {
	toks := tokenizeRange(p.source, absStart, absEnd)
	sub := &Parser{tokens: toks, source: p.source, diags: p.diags}
	return tryParse(sub, func() ast.Expression { return sub.parseExpression() })
}

func tokenizeRange(buf *source.Buffer, absStart, absEnd int) []token.Token {
	l := lexer.NewAt(buf, absStart)
	var toks []token.Token
	for {
		tok := l.NextToken()
		if tok.Range.Start >= absEnd || tok.Type == token.EOF {
			break
		}
		toks = append(toks, tok)
	}
	toks = append(toks, token.Token{Type: token.EOF, Range: source.Range{Start: absEnd, End: absEnd}, Source: buf})
	return toks
}

// interpLiteralPart decodes one literal run of an interpolated string's
// body, mirroring the escape handling of the non-interpolated string
// lexer (spec.md §4.1/§4.4).
func (p *Parser) interpLiteralPart(raw string, absOffset int) ast.Expression {
	var decoded strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			decoded.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			decoded.WriteByte('\n')
		case 't':
			decoded.WriteByte('\t')
		case 'r':
			decoded.WriteByte('\r')
		case '0':
			decoded.WriteByte(0)
		case '\\':
			decoded.WriteByte('\\')
		case '"':
			decoded.WriteByte('"')
		case '\'':
			decoded.WriteByte('\'')
		case '$':
			decoded.WriteByte('$')
		case 'x':
			if i+2 < len(raw) {
				decoded.WriteByte(byte(hexDigit(raw[i+1])<<4 | hexDigit(raw[i+2])))
				i += 2
			}
		default:
			decoded.WriteByte(raw[i])
		}
	}
	tok := token.Token{
		Type:   token.String,
		Range:  source.Range{Start: absOffset, End: absOffset + len(raw)},
		Source: p.source,
		Value:  decoded.String(),
		Text:   raw,
	}
	return &ast.TokenExpression{Tok: tok, R: tok.Range}
}

func hexDigit(ch byte) int {
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
