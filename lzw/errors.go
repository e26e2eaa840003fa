package lzw

import "fmt"

// FormatError marks a malformed code stream or a code that references
// a dictionary entry that cannot exist at that point of the stream.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string { return "lzw: " + e.Msg }

func formatErrorf(format string, v ...interface{}) error {
	return &FormatError{Msg: fmt.Sprintf(format, v...)}
}

// AlphabetError marks an input symbol outside the fixed seed alphabet.
type AlphabetError struct {
	Sym byte
}

func (e *AlphabetError) Error() string {
	return fmt.Sprintf("lzw: symbol %q is not in the seed alphabet",
		e.Sym)
}
