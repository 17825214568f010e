package mypython

import "testing"

func TestTokenRendering(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: KindSymbol, Text: "count"}, `TOKEN["symbol", "count"]`},
		{Token{Kind: KindInteger, Text: "0x1F"}, `TOKEN["integer", 0x1F]`},
		{Token{Kind: KindLiteral, Text: "hello"}, `TOKEN["literal", "hello"]`},
		{Token{Kind: KindConstant, Text: "A"}, `TOKEN["constant literal", "A"]`},
		{Token{Kind: KindPunctuation, Text: "<<="}, `TOKEN["punctuation", "<<="]`},
		{Token{Kind: KindWhitespace, Text: " "}, `TOKEN["whitespace", " "]`},
		{Token{Kind: KindEOL}, `TOKEN["EOL"]`},
		{Token{Kind: KindIndent, Level: 4}, `TOKEN["INDENT": 4]`},
		{Token{Kind: KindDedent, Level: 0}, `TOKEN["DEDENT": 0]`},
		{Token{Kind: KindEOF}, `TOKEN["EOF"]`},
		{Token{Kind: KindInvalid, Text: "@"}, `TOKEN["INVALID"@`},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Fatalf("got %q, want %q", got, tt.want)
		}
	}
}

func TestLiteralValueRendersRaw(t *testing.T) {
	// Backslashes resolved into the value must come back out verbatim,
	// not re-escaped.
	tok := Token{Kind: KindLiteral, Text: `ab\"c`}
	if got := tok.String(); got != `TOKEN["literal", "ab\"c"]` {
		t.Fatalf("got %q", got)
	}
}

func TestKindNames(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindSymbol, "symbol"},
		{KindConstant, "constant literal"},
		{KindIndent, "INDENT"},
		{KindEOF, "EOF"},
		{KindInvalid, "invalid"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Fatalf("kind %d: got %q, want %q", tt.kind, got, tt.want)
		}
	}
}
