package lz78

import "strings"

// Decompress decodes a token stream produced by Compress. Decoding
// stops at the first terminal token; bytes following it are ignored.
// A stream without a terminal token, a malformed token, or a token
// referencing an index that has not been assigned yet fails with a
// *FormatError.
func Decompress(stream string) (string, error) {
	return decompress(stream, nil)
}

// DecompressTrace decodes like Decompress and additionally returns one
// Step record per consumed token.
func DecompressTrace(stream string) (string, []Step, error) {
	var steps []Step
	s, err := decompress(stream, &steps)
	if err != nil {
		return "", nil, err
	}
	return s, steps, nil
}

func decompress(stream string, steps *[]Step) (string, error) {
	dict := []string{""}
	var sb strings.Builder
	pos := 0
	for n := 1; ; n++ {
		if pos >= len(stream) {
			return "", formatErrorf(
				"token stream ends without terminal token")
		}
		t, k, err := scanToken(stream[pos:])
		if err != nil {
			return "", err
		}
		pos += k
		if t.Index >= len(dict) {
			return "", formatErrorf(
				"token %s references index %d;"+
					" highest assigned index is %d",
				t, t.Index, len(dict)-1)
		}
		base := dict[t.Index]
		if t.End {
			sb.WriteString(base)
			if steps != nil {
				*steps = append(*steps, Step{
					N:      n,
					Sym:    t.String(),
					Prev:   base,
					Index:  t.Index,
					Output: base,
				})
			}
			return sb.String(), nil
		}
		resolved := base + string(t.Sym)
		dict = append(dict, resolved)
		sb.WriteString(resolved)
		if steps != nil {
			*steps = append(*steps, Step{
				N:       n,
				Sym:     t.String(),
				Prev:    base,
				Index:   t.Index,
				Added:   resolved,
				AddedAt: len(dict) - 1,
				Output:  resolved,
			})
		}
	}
}
