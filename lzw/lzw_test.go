package lzw

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/kr/pretty"

	"github.com/ulikunitz/dictcode/randtxt"
)

func TestCompressRepeated(t *testing.T) {
	codes, steps, err := CompressTrace("AAAA")
	if err != nil {
		t.Fatalf("CompressTrace error %s", err)
	}
	want := []int{1, 28, 1}
	if d := pretty.Diff(codes, want); len(d) > 0 {
		t.Fatalf("CompressTrace returned %v; want %v", codes, want)
	}
	adds := map[string]int{}
	for _, st := range steps {
		if st.Added != "" {
			adds[st.Added] = st.AddedAt
		}
	}
	wantAdds := map[string]int{"AA": 28, "AAA": 29}
	if d := pretty.Diff(adds, wantAdds); len(d) > 0 {
		t.Fatalf("dictionary additions mismatch: %v", d)
	}
}

func TestDecompressRepeated(t *testing.T) {
	text, err := Decompress([]int{1, 28, 1})
	if err != nil {
		t.Fatalf("Decompress error %s", err)
	}
	if text != "AAAA" {
		t.Fatalf("Decompress returned %q; want %q", text, "AAAA")
	}
}

func TestDecompressDeferredCode(t *testing.T) {
	text, steps, err := DecompressTrace([]int{1, 28})
	if err != nil {
		t.Fatalf("DecompressTrace error %s", err)
	}
	if text != "AAA" {
		t.Fatalf("DecompressTrace returned %q; want %q",
			text, "AAA")
	}
	st := steps[1]
	if !st.Deferred {
		t.Fatalf("code 28 not resolved through the deferred rule")
	}
	if st.Added != "AA" || st.AddedAt != 28 {
		t.Fatalf("deferred step added %q at %d; want %q at %d",
			st.Added, st.AddedAt, "AA", 28)
	}
}

func TestDecompressErrors(t *testing.T) {
	tests := []struct {
		name  string
		codes []int
	}{
		{"unknown code", []int{1, 99}},
		{"zero code", []int{1, 0}},
		{"first code dynamic", []int{28}},
		{"first code zero", []int{0}},
	}
	for _, tc := range tests {
		_, err := Decompress(tc.codes)
		if err == nil {
			t.Fatalf("%s: no error for %v", tc.name, tc.codes)
		}
		var ferr *FormatError
		if !errors.As(err, &ferr) {
			t.Fatalf("%s: error %s; want *FormatError",
				tc.name, err)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	codes, err := Compress("")
	if err != nil {
		t.Fatalf("Compress error %s", err)
	}
	if len(codes) != 0 {
		t.Fatalf("Compress returned %v; want no codes", codes)
	}
	text, err := Decompress(nil)
	if err != nil {
		t.Fatalf("Decompress error %s", err)
	}
	if text != "" {
		t.Fatalf("Decompress returned %q; want empty string",
			text)
	}
}

func TestCompressAlphabetError(t *testing.T) {
	for _, text := range []string{"a", "A B", "HÉLLO", "A1"} {
		_, err := Compress(text)
		if err == nil {
			t.Fatalf("no error for %q", text)
		}
		var aerr *AlphabetError
		if !errors.As(err, &aerr) {
			t.Fatalf("error %s; want *AlphabetError", err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"A",
		"AAAA",
		"ABABABAB",
		"SHE_SELLS_SEA_SHELLS",
		"TOBEORNOTTOBEORTOBEORNOT",
		"Z_",
		"__A__",
	}
	for _, text := range tests {
		codes, err := Compress(text)
		if err != nil {
			t.Fatalf("Compress(%q) error %s", text, err)
		}
		got, err := Decompress(codes)
		if err != nil {
			t.Fatalf("Decompress(%v) error %s", codes, err)
		}
		if got != text {
			t.Fatalf("round trip returned %q; want %q",
				got, text)
		}
	}
}

func TestRoundTripRandomText(t *testing.T) {
	r := randtxt.NewReader(rand.NewSource(17))
	for _, n := range []int{1, 10, 100, 2000} {
		p := make([]byte, n)
		if _, err := r.Read(p); err != nil {
			t.Fatalf("randtxt read error %s", err)
		}
		text := string(p)
		codes, err := Compress(text)
		if err != nil {
			t.Fatalf("Compress error %s", err)
		}
		got, err := Decompress(codes)
		if err != nil {
			t.Fatalf("Decompress error %s", err)
		}
		if got != text {
			t.Fatalf("round trip of %d random bytes failed", n)
		}
	}
}

func TestCodesEnvelope(t *testing.T) {
	tests := []struct {
		s    string
		want []int
	}{
		{"", nil},
		{"1,28,1", []int{1, 28, 1}},
		{"1, 28 3", []int{1, 28, 3}},
		{"1,,2,", []int{1, 2}},
		{"  7\t8\n9 ", []int{7, 8, 9}},
	}
	for _, tc := range tests {
		codes, err := ParseCodes(tc.s)
		if err != nil {
			t.Fatalf("ParseCodes(%q) error %s", tc.s, err)
		}
		if len(codes) != len(tc.want) {
			t.Fatalf("ParseCodes(%q) returned %v; want %v",
				tc.s, codes, tc.want)
		}
		for i := range codes {
			if codes[i] != tc.want[i] {
				t.Fatalf("ParseCodes(%q) returned %v;"+
					" want %v", tc.s, codes, tc.want)
			}
		}
	}
	for _, s := range []string{"x", "1,x", "-1", "1.5"} {
		_, err := ParseCodes(s)
		if err == nil {
			t.Fatalf("no error for %q", s)
		}
		var ferr *FormatError
		if !errors.As(err, &ferr) {
			t.Fatalf("error %s; want *FormatError", err)
		}
	}
	if s := FormatCodes([]int{1, 28, 1}); s != "1,28,1" {
		t.Fatalf("FormatCodes returned %q; want %q", s, "1,28,1")
	}
	if s := FormatCodes(nil); s != "" {
		t.Fatalf("FormatCodes returned %q; want empty string", s)
	}
}

// encoder and decoder must build the same dictionary in the same
// order, checked after every code.
func TestDictionaryParity(t *testing.T) {
	text := "SHE_SELLS_SEA_SHELLS_BY_THE_SEA_SHORE"
	codes, encSteps, err := CompressTrace(text)
	if err != nil {
		t.Fatalf("CompressTrace error %s", err)
	}
	_, decSteps, err := DecompressTrace(codes)
	if err != nil {
		t.Fatalf("DecompressTrace error %s", err)
	}
	var encAdds, decAdds []string
	for _, st := range encSteps {
		if st.Added != "" {
			if st.AddedAt != AlphabetSize+len(encAdds)+1 {
				t.Fatalf("encoder added %q at %d; want %d",
					st.Added, st.AddedAt,
					AlphabetSize+len(encAdds)+1)
			}
			encAdds = append(encAdds, st.Added)
		}
	}
	for _, st := range decSteps {
		if st.Added != "" {
			if st.AddedAt != AlphabetSize+len(decAdds)+1 {
				t.Fatalf("decoder added %q at %d; want %d",
					st.Added, st.AddedAt,
					AlphabetSize+len(decAdds)+1)
			}
			decAdds = append(decAdds, st.Added)
		}
	}
	// The decoder lags one entry: the encoder's final flush step
	// adds nothing, so both sides end with the same additions.
	if d := pretty.Diff(encAdds, decAdds); len(d) > 0 {
		t.Fatalf("dictionary parity violated: %v", d)
	}
}
