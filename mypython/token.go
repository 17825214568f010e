package mypython

import "fmt"

// Kind identifies the lexical category of a token. The set is closed: every
// token the scanner can produce is one of these.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindSymbol
	KindInteger
	KindLiteral  // double-quoted string literal
	KindConstant // single-quoted constant literal
	KindPunctuation
	KindWhitespace
	KindEOL
	KindIndent
	KindDedent
	KindEOF
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindSymbol:
		return "symbol"
	case KindInteger:
		return "integer"
	case KindLiteral:
		return "literal"
	case KindConstant:
		return "constant literal"
	case KindPunctuation:
		return "punctuation"
	case KindWhitespace:
		return "whitespace"
	case KindEOL:
		return "EOL"
	case KindIndent:
		return "INDENT"
	case KindDedent:
		return "DEDENT"
	case KindEOF:
		return "EOF"
	}
	return "unknown"
}

// Position identifies where a token's lead character sits in the source.
type Position struct {
	Line   int
	Column int
}

// Token is one lexical unit. Text holds the lexeme for symbols, integers and
// punctuation, the resolved value for literals, and the offending character
// for invalid tokens. Level is meaningful only for indents and dedents.
type Token struct {
	Kind  Kind
	Text  string
	Level int
	Pos   Position
}

// String renders the token in the diagnostic line format printed by the CLI.
func (t Token) String() string {
	// Lexemes and values are written raw between the quotes; Go-style
	// escaping would corrupt literal values that contain backslashes.
	switch t.Kind {
	case KindSymbol:
		return fmt.Sprintf(`TOKEN["symbol", "%s"]`, t.Text)
	case KindInteger:
		return fmt.Sprintf(`TOKEN["integer", %s]`, t.Text)
	case KindLiteral:
		return fmt.Sprintf(`TOKEN["literal", "%s"]`, t.Text)
	case KindConstant:
		return fmt.Sprintf(`TOKEN["constant literal", "%s"]`, t.Text)
	case KindPunctuation:
		return fmt.Sprintf(`TOKEN["punctuation", "%s"]`, t.Text)
	case KindWhitespace:
		return `TOKEN["whitespace", " "]`
	case KindEOL:
		return `TOKEN["EOL"]`
	case KindIndent:
		return fmt.Sprintf(`TOKEN["INDENT": %d]`, t.Level)
	case KindDedent:
		return fmt.Sprintf(`TOKEN["DEDENT": %d]`, t.Level)
	case KindEOF:
		return `TOKEN["EOF"]`
	case KindInvalid:
		return fmt.Sprintf(`TOKEN["INVALID"%s`, t.Text)
	}
	return ""
}

// Stream is the ordered token output of one scan. A completed stream holds
// exactly one EOF token, always last.
type Stream []Token
