// Package alphabet maps between the application alphabet and the
// wire-safe internal alphabet the codec grammars operate on. The token
// grammars cannot carry every application symbol, most prominently the
// space character, so an injective substitution replaces such symbols
// before encoding and restores them after decoding.
package alphabet

import (
	"errors"
	"fmt"
	"strings"
)

// Substitution replaces the application symbol App with the wire
// symbol Wire before encoding. The substitution must be invertible:
// Apply rejects input that already contains the Wire symbol.
type Substitution struct {
	App  byte
	Wire byte
}

// Space is the canonical substitution used by the codecs: spaces are
// carried as underscores on the wire.
var Space = Substitution{App: ' ', Wire: '_'}

// AmbiguityError reports input that contains the wire symbol of a
// substitution. Applying the substitution anyway would make the
// mapping non-invertible.
type AmbiguityError struct {
	Sub Substitution
	Pos int
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf(
		"alphabet: input contains wire symbol %q at offset %d",
		e.Sub.Wire, e.Pos)
}

func (s Substitution) valid() error {
	if s.App == s.Wire {
		return errors.New(
			"alphabet: substitution maps a symbol to itself")
	}
	return nil
}

// Apply replaces every occurrence of the App symbol with the Wire
// symbol. It fails with an *AmbiguityError if the text already
// contains the Wire symbol.
func (s Substitution) Apply(text string) (string, error) {
	if err := s.valid(); err != nil {
		return "", err
	}
	if i := strings.IndexByte(text, s.Wire); i >= 0 {
		return "", &AmbiguityError{Sub: s, Pos: i}
	}
	return strings.ReplaceAll(text,
		string(s.App), string(s.Wire)), nil
}

// Revert replaces every occurrence of the Wire symbol with the App
// symbol. Revert is total; text produced by Apply always reverts to
// the original.
func (s Substitution) Revert(text string) string {
	return strings.ReplaceAll(text,
		string(s.Wire), string(s.App))
}
