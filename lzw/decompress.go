package lzw

import (
	"strconv"
	"strings"
)

// Decompress decodes a list of codes produced by Compress. An empty
// list decodes to the empty string. The first code must be a seed
// code; any later code must either be assigned already or be exactly
// the next code to assign, which resolves through the one-step-lag
// rule. Everything else fails with a *FormatError.
func Decompress(codes []int) (string, error) {
	return decompress(codes, nil)
}

// DecompressTrace decodes like Decompress and additionally returns one
// Step record per consumed code.
func DecompressTrace(codes []int) (string, []Step, error) {
	var steps []Step
	s, err := decompress(codes, &steps)
	if err != nil {
		return "", nil, err
	}
	return s, steps, nil
}

func decompress(codes []int, steps *[]Step) (string, error) {
	if len(codes) == 0 {
		return "", nil
	}
	dict := make([]string, 1, 2*AlphabetSize)
	for i := 0; i < len(alphabet); i++ {
		dict = append(dict, alphabet[i:i+1])
	}
	first := codes[0]
	if !(1 <= first && first <= AlphabetSize) {
		return "", formatErrorf(
			"first code %d is not a seed alphabet code", first)
	}
	old := dict[first]
	var sb strings.Builder
	sb.WriteString(old)
	if steps != nil {
		*steps = append(*steps, Step{
			N:        1,
			Sym:      strconv.Itoa(first),
			Code:     first,
			Resolved: old,
		})
	}
	for n, c := range codes[1:] {
		var resolved string
		deferred := false
		switch {
		case 1 <= c && c < len(dict):
			resolved = dict[c]
		case c == len(dict):
			// The encoder used the entry it created in this
			// very step; the decoder has not built it yet.
			resolved = old + old[:1]
			deferred = true
		default:
			return "", formatErrorf(
				"code %d references no dictionary entry;"+
					" next code to assign is %d",
				c, len(dict))
		}
		entry := old + resolved[:1]
		dict = append(dict, entry)
		sb.WriteString(resolved)
		if steps != nil {
			*steps = append(*steps, Step{
				N:        n + 2,
				Sym:      strconv.Itoa(c),
				Prev:     old,
				Code:     c,
				Resolved: resolved,
				Deferred: deferred,
				Added:    entry,
				AddedAt:  len(dict) - 1,
			})
		}
		old = resolved
	}
	return sb.String(), nil
}
