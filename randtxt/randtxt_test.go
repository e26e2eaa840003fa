package randtxt

import (
	"math/rand"
	"testing"
)

func TestReaderAlphabet(t *testing.T) {
	s := String(rand.NewSource(21), 4096)
	if len(s) != 4096 {
		t.Fatalf("String returned %d bytes; want %d",
			len(s), 4096)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('A' <= c && c <= 'Z') && c != '_' {
			t.Fatalf("byte %q at offset %d outside alphabet",
				c, i)
		}
	}
}

func TestReaderDeterminism(t *testing.T) {
	a := String(rand.NewSource(5), 256)
	b := String(rand.NewSource(5), 256)
	if a != b {
		t.Fatalf("same seed produced different text")
	}
}

func TestReaderNoDoubleSeparator(t *testing.T) {
	s := String(rand.NewSource(7), 4096)
	for i := 1; i < len(s); i++ {
		if s[i] == '_' && s[i-1] == '_' {
			t.Fatalf("double separator at offset %d", i)
		}
	}
}
