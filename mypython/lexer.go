package mypython

import (
	"errors"
	"io"
	"strings"
)

// Scan failures. Scanning stops at the failure point and the partial stream
// is discarded; no EOF token is emitted.
var (
	ErrLiteralEOL  = errors.New("EOL encountered before closing literal quotes")
	ErrLiteralEOF  = errors.New("EOF encountered before closing literal quotes")
	ErrConstantEOF = errors.New("EOF encountered before closing constant quotes")
)

// Lexer is a single-pass scanner over one character source. It holds the
// only piece of cross-token state: the leading-space count of the most
// recently measured line.
type Lexer struct {
	src    *Source
	indent int
}

// NewLexer returns a scanner reading from src with indentation level 0.
func NewLexer(src *Source) *Lexer {
	return &Lexer{src: src}
}

// Scan lexes r to completion and returns the ordered token stream,
// terminated by exactly one EOF token.
func Scan(r io.Reader) (Stream, error) {
	return NewLexer(NewSource(r)).Scan()
}

// Scan runs the dispatch loop until the source is exhausted. Each
// sub-scanner consumes the characters of its token plus one more, which
// becomes the next lookahead, so no position is ever read twice.
func (l *Lexer) Scan() (Stream, error) {
	var stream Stream

	ch := l.src.Next()
	for ch != eof {
		pos := l.src.Pos()

		var tok Token
		var err error
		switch {
		case ch == '#':
			tok, ch = l.scanComment()
		case isSymbolStart(ch):
			tok, ch = l.scanSymbol(ch)
		case ch == '\n':
			tok, ch = l.scanIndentation()
		case isLineSpace(ch):
			tok, ch = l.scanWhitespace()
		case ch == '"':
			tok, ch, err = l.scanLiteral()
		case ch == '\'':
			tok, ch, err = l.scanConstant()
		case isDigit(ch):
			tok, ch = l.scanInteger(ch)
		case isPunct(ch):
			tok, ch = l.scanPunctuation(ch)
		default:
			tok = Token{Kind: KindInvalid, Text: string(ch)}
			ch = l.src.Next()
		}
		if err != nil {
			return nil, err
		}

		tok.Pos = pos
		stream = append(stream, tok)
	}

	stream = append(stream, Token{Kind: KindEOF, Pos: l.src.Pos()})
	return stream, nil
}

// scanComment discards everything through the next line terminator. The
// whole comment collapses to a bare EOL token; its text is not retained and
// the swallowed terminator triggers no indentation measurement.
func (l *Lexer) scanComment() (Token, rune) {
	for {
		g := l.src.Next()
		if g == '\n' || g == eof {
			break
		}
	}
	return Token{Kind: KindEOL}, l.src.Next()
}

// scanSymbol consumes the identifier run started by lead.
func (l *Lexer) scanSymbol(lead rune) (Token, rune) {
	var sb strings.Builder
	sb.WriteRune(lead)
	for {
		ch := l.src.Next()
		if isAlnum(ch) || ch == '_' {
			sb.WriteRune(ch)
			continue
		}
		return Token{Kind: KindSymbol, Text: sb.String()}, ch
	}
}

// scanInteger consumes a decimal digit run, or a 0x/0X prefix followed by a
// hexadecimal digit run. Anything trailing is left for normal re-dispatch.
func (l *Lexer) scanInteger(lead rune) (Token, rune) {
	var sb strings.Builder
	sb.WriteRune(lead)

	if lead == '0' {
		if p := l.src.Peek(); p == 'x' || p == 'X' {
			sb.WriteRune(p)
			l.src.Next()
			for {
				ch := l.src.Next()
				if isHexDigit(ch) {
					sb.WriteRune(ch)
					continue
				}
				return Token{Kind: KindInteger, Text: sb.String()}, ch
			}
		}
	}

	for {
		ch := l.src.Next()
		if isDigit(ch) {
			sb.WriteRune(ch)
			continue
		}
		return Token{Kind: KindInteger, Text: sb.String()}, ch
	}
}

// scanLiteral consumes a double-quoted literal. Backslash before a quote or
// a backslash keeps both characters in the value; a backslash before
// anything else drops the backslash and keeps the character, so \n and \t
// are never interpreted. A raw line terminator or end of input inside the
// literal aborts the scan.
func (l *Lexer) scanLiteral() (Token, rune, error) {
	var sb strings.Builder
	for {
		ch := l.src.Next()
		switch {
		case ch == '\\':
			p := l.src.Peek()
			switch {
			case p == '"' || p == '\\':
				sb.WriteRune('\\')
				sb.WriteRune(p)
				l.src.Next()
			case p == '\n':
				return Token{}, eof, ErrLiteralEOL
			case p == eof:
				return Token{}, eof, ErrLiteralEOF
			default:
				sb.WriteRune(p)
				l.src.Next()
			}
		case ch == '"':
			return Token{Kind: KindLiteral, Text: sb.String()}, l.src.Next(), nil
		case ch == '\n':
			return Token{}, eof, ErrLiteralEOL
		case ch == eof:
			return Token{}, eof, ErrLiteralEOF
		default:
			sb.WriteRune(ch)
		}
	}
}

// scanConstant consumes a single-quoted constant literal with the same
// escape rule as scanLiteral. Line terminators are allowed in the value;
// only end of input before the closing quote is an error.
func (l *Lexer) scanConstant() (Token, rune, error) {
	var sb strings.Builder
	for {
		ch := l.src.Next()
		switch {
		case ch == '\\':
			p := l.src.Peek()
			switch {
			case p == '\'' || p == '\\':
				sb.WriteRune('\\')
				sb.WriteRune(p)
				l.src.Next()
			case p == eof:
				return Token{}, eof, ErrConstantEOF
			default:
				sb.WriteRune(p)
				l.src.Next()
			}
		case ch == '\'':
			return Token{Kind: KindConstant, Text: sb.String()}, l.src.Next(), nil
		case ch == eof:
			return Token{}, eof, ErrConstantEOF
		default:
			sb.WriteRune(ch)
		}
	}
}

// scanPunctuation resolves a 1-3 character operator by maximal munch,
// looking ahead at most two characters past the lead. The longest legal
// match always wins and is never re-evaluated.
func (l *Lexer) scanPunctuation(lead rune) (Token, rune) {
	var sb strings.Builder
	sb.WriteRune(lead)

	switch lead {
	case '!': // ! or !=
		if l.src.Peek() == '=' {
			sb.WriteRune(l.src.Next())
		}
	case '#': // # or ##; unreachable from the dispatch loop, where # opens a comment
		if l.src.Peek() == '#' {
			sb.WriteRune(l.src.Next())
		}
	case '%': // % or %=
		if l.src.Peek() == '=' {
			sb.WriteRune(l.src.Next())
		}
	case '&': // &, && or &=
		if p := l.src.Peek(); p == '&' || p == '=' {
			sb.WriteRune(l.src.Next())
		}
	case '*': // * or *=
		if l.src.Peek() == '=' {
			sb.WriteRune(l.src.Next())
		}
	case '+': // +, ++ or +=
		if p := l.src.Peek(); p == '+' || p == '=' {
			sb.WriteRune(l.src.Next())
		}
	case '-': // -, --, -=, -> or ->*
		p := l.src.Peek()
		if p == '-' || p == '=' {
			sb.WriteRune(l.src.Next())
		} else if p == '>' {
			sb.WriteRune(l.src.Next())
			if l.src.Peek() == '*' {
				sb.WriteRune(l.src.Next())
			}
		}
	case '.': // ., .. or ...; .. is lexed but rejected by any later grammar
		if l.src.Peek() == '.' {
			sb.WriteRune(l.src.Next())
			if l.src.Peek() == '.' {
				sb.WriteRune(l.src.Next())
			}
		}
	case '/': // / or /=
		if l.src.Peek() == '=' {
			sb.WriteRune(l.src.Next())
		}
	case ':': // : or ::
		if l.src.Peek() == ':' {
			sb.WriteRune(l.src.Next())
		}
	case '<': // <, <=, << or <<=
		if p := l.src.Peek(); p == '=' {
			sb.WriteRune(l.src.Next())
		} else if p == '<' {
			sb.WriteRune(l.src.Next())
			if l.src.Peek() == '=' {
				sb.WriteRune(l.src.Next())
			}
		}
	case '=': // = or ==
		if l.src.Peek() == '=' {
			sb.WriteRune(l.src.Next())
		}
	case '>': // >, >=, >> or >>=
		if p := l.src.Peek(); p == '=' {
			sb.WriteRune(l.src.Next())
		} else if p == '>' {
			sb.WriteRune(l.src.Next())
			if l.src.Peek() == '=' {
				sb.WriteRune(l.src.Next())
			}
		}
	case '|': // |, || or |=
		if p := l.src.Peek(); p == '|' || p == '=' {
			sb.WriteRune(l.src.Next())
		}
	}

	return Token{Kind: KindPunctuation, Text: sb.String()}, l.src.Next()
}

// scanWhitespace consumes a run of intra-line whitespace. The run collapses
// to a single token; its characters are not retained.
func (l *Lexer) scanWhitespace() (Token, rune) {
	for {
		ch := l.src.Next()
		if isLineSpace(ch) {
			continue
		}
		return Token{Kind: KindWhitespace, Text: " "}, ch
	}
}

// scanIndentation measures the leading whitespace of the line following a
// terminator and compares it to the previous measurement. A consumed line
// terminator ends the measurement without being counted, so a
// whitespace-only line is swallowed whole and yields no separate tokens.
// Exactly one token comes out of each measurement: INDENT or DEDENT carrying
// the new level, or a plain EOL when the level is unchanged.
func (l *Lexer) scanIndentation() (Token, rune) {
	count := 0
	if isIndentSpace(l.src.Peek()) {
		g := l.src.Next()
		if g != '\n' {
			count++
		}
		for g != '\n' && g != eof {
			if !isIndentSpace(l.src.Peek()) {
				break
			}
			g = l.src.Next()
			if g != '\n' {
				count++
			}
		}
	}

	tok := Token{Kind: KindEOL}
	switch {
	case count > l.indent:
		l.indent = count
		tok = Token{Kind: KindIndent, Level: count}
	case count < l.indent:
		l.indent = count
		tok = Token{Kind: KindDedent, Level: count}
	}
	return tok, l.src.Next()
}

func isSymbolStart(ch rune) bool {
	return isAlpha(ch) || ch == '_'
}

func isAlpha(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isAlnum(ch rune) bool {
	return isAlpha(ch) || isDigit(ch)
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// isLineSpace reports intra-line whitespace: space, tab, vertical tab and
// carriage return. Line terminators are significant and classified apart.
func isLineSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\v' || ch == '\r'
}

// isIndentSpace reports characters consumed while measuring indentation,
// which includes the terminator that ends a whitespace-only line.
func isIndentSpace(ch rune) bool {
	return isLineSpace(ch) || ch == '\n'
}

// isPunct reports printable ASCII that is not alphanumeric, whitespace or
// an underscore. Quotes and '#' match too but are classified first by the
// dispatch loop.
func isPunct(ch rune) bool {
	return ch > ' ' && ch < 0x7F && !isAlnum(ch) && ch != '_'
}
