// Package mypython implements a reference lexical scanner for a small
// Python-flavoured source language. One pass over the input produces an
// ordered token stream for diagnostic inspection:
//   - Symbols (identifier-shaped runs), decimal and 0x/0X hex integers.
//   - Double-quoted string literals and single-quoted constant literals,
//     recognizing only \" (resp. \') and \\ as escapes.
//   - 1-3 character punctuation resolved by maximal munch (e.g. <<= is one
//     token, never three).
//   - Whitespace runs collapsed to a single token, and significant line
//     breaks: INDENT and DEDENT events when a line's leading-space count
//     changes, plain EOL when it does not.
//
// Comments beginning with `#` collapse to a bare EOL token. Scanning is
// strictly single pass with one character of lookahead; an unterminated
// string or constant literal aborts the scan with an error and no stream.
package mypython
