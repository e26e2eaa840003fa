// Package lz78 implements the LZ78 pair-token codec. The encoder
// grows a dictionary of previously seen strings and emits
// (index,symbol) tokens; the decoder rebuilds the identical dictionary
// from the tokens alone. Both dictionaries start with the single entry
// mapping the empty string to index 0 and grow by exactly one entry
// per token.
package lz78

import "strings"

// Compress encodes text into the token stream. The stream is
// self-terminating: the last token carries the end marker and flushes
// the pending match. Symbols that would break the token grammar,
// '(', ',' and ')', are rejected with an *AlphabetError.
func Compress(text string) (string, error) {
	return compress(text, nil)
}

// CompressTrace encodes text like Compress and additionally returns
// one Step record per input symbol plus one for the terminal flush.
func CompressTrace(text string) (string, []Step, error) {
	var steps []Step
	s, err := compress(text, &steps)
	if err != nil {
		return "", nil, err
	}
	return s, steps, nil
}

func compress(text string, steps *[]Step) (string, error) {
	dict := map[string]int{"": 0}
	var sb strings.Builder
	prefix := ""
	for i := 0; i < len(text); i++ {
		sym := text[i]
		if sym == '(' || sym == ',' || sym == ')' {
			return "", &AlphabetError{Sym: sym}
		}
		candidate := prefix + string(sym)
		index := dict[prefix]
		_, inDict := dict[candidate]
		st := Step{
			N:         i + 1,
			Sym:       string(sym),
			Prev:      prefix,
			Candidate: candidate,
			InDict:    inDict,
			Index:     index,
		}
		if inDict {
			prefix = candidate
		} else {
			t := Token{Index: index, Sym: sym}
			sb.WriteString(t.String())
			dict[candidate] = len(dict)
			st.Added = candidate
			st.AddedAt = dict[candidate]
			st.Output = t.String()
			prefix = ""
		}
		if steps != nil {
			*steps = append(*steps, st)
		}
	}
	t := Token{Index: dict[prefix], End: true}
	sb.WriteString(t.String())
	if steps != nil {
		*steps = append(*steps, Step{
			N:      len(text) + 1,
			Sym:    endMarker,
			Prev:   prefix,
			Index:  t.Index,
			Output: t.String(),
		})
	}
	return sb.String(), nil
}
