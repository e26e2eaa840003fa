package lz78

import (
	"fmt"
	"strconv"
	"strings"
)

// endMarker occupies the payload position of the terminal token.
const endMarker = "<EOF>"

// Token is one output unit of the encoder: the dictionary index of the
// longest already-seen prefix and the symbol following it. If End is
// set the token is the terminal token and carries the end marker
// instead of a symbol.
type Token struct {
	Index int
	Sym   byte
	End   bool
}

// String returns the wire form of the token, for example "(3,A)" or
// "(2,<EOF>)".
func (t Token) String() string {
	if t.End {
		return fmt.Sprintf("(%d,%s)", t.Index, endMarker)
	}
	return fmt.Sprintf("(%d,%c)", t.Index, t.Sym)
}

// scanToken parses a single token at the start of s and returns it
// together with the number of bytes consumed. Tokens are concatenated
// on the wire without separators.
func scanToken(s string) (t Token, n int, err error) {
	if len(s) == 0 || s[0] != '(' {
		return Token{}, 0, formatErrorf(
			"token must start with '('")
	}
	i := 1
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}
	if i == 1 {
		return Token{}, 0, formatErrorf("token index missing")
	}
	index, err := strconv.Atoi(s[1:i])
	if err != nil {
		return Token{}, 0, formatErrorf(
			"token index %s out of range", s[1:i])
	}
	if i >= len(s) || s[i] != ',' {
		return Token{}, 0, formatErrorf(
			"token index must be followed by ','")
	}
	i++
	rest := s[i:]
	if strings.HasPrefix(rest, endMarker+")") {
		n = i + len(endMarker) + 1
		return Token{Index: index, End: true}, n, nil
	}
	if len(rest) < 2 || rest[1] != ')' {
		return Token{}, 0, formatErrorf(
			"token payload must be a single symbol or %s",
			endMarker)
	}
	return Token{Index: index, Sym: rest[0]}, i + 2, nil
}
