package alphabet

import (
	"errors"
	"testing"
)

func TestSpaceRoundTrip(t *testing.T) {
	tests := []struct{ text, wire string }{
		{"", ""},
		{"SIR", "SIR"},
		{"HELLO WORLD", "HELLO_WORLD"},
		{" A B ", "_A_B_"},
	}
	for _, tc := range tests {
		w, err := Space.Apply(tc.text)
		if err != nil {
			t.Fatalf("Apply(%q) error %s", tc.text, err)
		}
		if w != tc.wire {
			t.Fatalf("Apply(%q) returned %q; want %q",
				tc.text, w, tc.wire)
		}
		if s := Space.Revert(w); s != tc.text {
			t.Fatalf("Revert(%q) returned %q; want %q",
				w, s, tc.text)
		}
	}
}

func TestApplyAmbiguity(t *testing.T) {
	_, err := Space.Apply("A_B")
	if err == nil {
		t.Fatalf("no error for input containing the wire symbol")
	}
	var aerr *AmbiguityError
	if !errors.As(err, &aerr) {
		t.Fatalf("error %s; want *AmbiguityError", err)
	}
	if aerr.Pos != 1 {
		t.Fatalf("error position %d; want %d", aerr.Pos, 1)
	}
}

func TestSelfSubstitution(t *testing.T) {
	s := Substitution{App: 'x', Wire: 'x'}
	if _, err := s.Apply("abc"); err == nil {
		t.Fatalf("no error for self-mapping substitution")
	}
}
