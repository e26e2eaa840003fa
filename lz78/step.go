package lz78

// Step records a single codec step for presentation layers. The trace
// is not part of the wire format. On the encode side one Step is
// produced per input symbol plus one for the terminal flush; on the
// decode side one Step per consumed token.
type Step struct {
	N         int    // step number, starting at 1
	Sym       string // input symbol; the token on decode; end marker on flush
	Prev      string // match state before the step
	Candidate string // prev + sym; empty on decode and flush steps
	InDict    bool   // candidate was already a dictionary key
	Index     int    // dictionary index referenced by the step
	Added     string // dictionary entry added by the step, "" if none
	AddedAt   int    // index of the added entry, 0 if none
	Output    string // token emitted (encode) or text appended (decode)
}
