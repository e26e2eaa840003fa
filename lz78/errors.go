package lz78

import "fmt"

// FormatError marks a malformed token stream or a token that
// references a dictionary index that cannot exist at that point of the
// stream.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string { return "lz78: " + e.Msg }

func formatErrorf(format string, v ...interface{}) error {
	return &FormatError{Msg: fmt.Sprintf(format, v...)}
}

// AlphabetError marks an input symbol that the token grammar cannot
// carry.
type AlphabetError struct {
	Sym byte
}

func (e *AlphabetError) Error() string {
	return fmt.Sprintf("lz78: symbol %q cannot be represented"+
		" in the token grammar", e.Sym)
}
