package lzw

// Compress encodes text into a list of codes. Any symbol outside the
// seed alphabet fails with an *AlphabetError. The pending word is
// flushed as the final code; empty input produces an empty list.
func Compress(text string) ([]int, error) {
	return compress(text, nil)
}

// CompressTrace encodes text like Compress and additionally returns
// one Step record per input symbol plus one for the flush.
func CompressTrace(text string) ([]int, []Step, error) {
	var steps []Step
	codes, err := compress(text, &steps)
	if err != nil {
		return nil, nil, err
	}
	return codes, steps, nil
}

func compress(text string, steps *[]Step) ([]int, error) {
	dict := make(map[string]int, AlphabetSize)
	for i := 0; i < len(alphabet); i++ {
		dict[alphabet[i:i+1]] = i + 1
	}
	codes := []int{}
	word := ""
	for i := 0; i < len(text); i++ {
		sym := text[i]
		if _, ok := symCode(sym); !ok {
			return nil, &AlphabetError{Sym: sym}
		}
		candidate := word + string(sym)
		_, inDict := dict[candidate]
		st := Step{
			N:         i + 1,
			Sym:       string(sym),
			Prev:      word,
			Candidate: candidate,
			InDict:    inDict,
		}
		if inDict {
			word = candidate
		} else {
			st.Code = dict[word]
			codes = append(codes, st.Code)
			dict[candidate] = len(dict) + 1
			st.Added = candidate
			st.AddedAt = dict[candidate]
			word = string(sym)
		}
		if steps != nil {
			*steps = append(*steps, st)
		}
	}
	if word != "" {
		code := dict[word]
		codes = append(codes, code)
		if steps != nil {
			*steps = append(*steps, Step{
				N:    len(text) + 1,
				Sym:  "<EOF>",
				Prev: word,
				Code: code,
			})
		}
	}
	return codes, nil
}
