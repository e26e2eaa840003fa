// Package lzw implements the LZW single-code codec over a fixed seed
// alphabet. The encoder emits one integer code per step and grows its
// dictionary by one entry per emitted code; the decoder rebuilds the
// identical dictionary one step behind, which forces the deferred
// resolution rule for a code that names the entry of the current step.
package lzw

// The seed alphabet. The code of a symbol is its position in the
// string plus one, so 'A' has code 1 and '_' has code 27. Dynamic
// codes start at AlphabetSize+1.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ_"

// AlphabetSize is the number of statically assigned codes.
const AlphabetSize = len(alphabet)

// symCode returns the seed code of sym, or false if sym is not part of
// the seed alphabet.
func symCode(sym byte) (code int, ok bool) {
	switch {
	case 'A' <= sym && sym <= 'Z':
		return int(sym-'A') + 1, true
	case sym == '_':
		return AlphabetSize, true
	}
	return 0, false
}

// Step records a single codec step for presentation layers. The trace
// is not part of the code stream. On the encode side one Step is
// produced per input symbol plus one for the flush; on the decode side
// one Step per consumed code.
type Step struct {
	N         int    // step number, starting at 1
	Sym       string // input symbol; decimal code on decode; end marker on flush
	Prev      string // word (encode) or previous string (decode) before the step
	Candidate string // prev + sym; empty on decode and flush steps
	InDict    bool   // candidate was already a dictionary key
	Code      int    // code emitted (encode) or consumed (decode); 0 if none
	Resolved  string // string the code resolved to (decode only)
	Deferred  bool   // resolved via the one-step-lag rule (decode only)
	Added     string // dictionary entry added by the step, "" if none
	AddedAt   int    // code of the added entry, 0 if none
}
