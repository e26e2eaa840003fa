package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ulikunitz/dictcode/lz78"
	"github.com/ulikunitz/dictcode/lzw"
)

const lz78CompressIntro = `LZ78 starts with a dictionary holding a single entry: the empty
string at index 0. It extends the current match while the concatenation
is already a dictionary key and otherwise emits the pair
(index of the match, next symbol), adds the concatenation at the next
free index and starts over. The final pair carries the end marker and
flushes the pending match.`

const lz78DecompressIntro = `LZ78 decoding rebuilds the dictionary from the pairs alone: each pair
(index, symbol) resolves to the dictionary entry at index followed by
the symbol, which is appended to the output and stored at the next free
index. The pair carrying the end marker resolves to its entry and ends
the stream.`

const lzwCompressIntro = `LZW starts with a dictionary holding a code for every symbol of the
fixed alphabet. It extends the current word while the concatenation is
already a dictionary key and otherwise emits the code of the word, adds
the concatenation at the next free code and restarts the word from the
current symbol. The final code flushes the pending word.`

const lzwDecompressIntro = `LZW decoding rebuilds the dictionary one step behind the encoder: a
known code resolves through the dictionary; the single unknown code
allowed is the next code to assign, which resolves to the previous
string plus its own first symbol. After every step the previous string
plus the first symbol of the current one is stored at the next free
code.`

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func orDash(s string) string {
	if s == "" {
		return "--"
	}
	return s
}

func writeLZ78CompressTable(w io.Writer, steps []lz78.Step) {
	tw := newTable(w)
	fmt.Fprintln(tw,
		"Step\tSymbol\tPrev\tConcat\tIn dict\tIndex\tAddition\tOutput")
	for _, st := range steps {
		addition := "--"
		if st.Added != "" {
			addition = fmt.Sprintf("%s => %d",
				st.Added, st.AddedAt)
		}
		fmt.Fprintf(tw, "%d\t%s\t%q\t%q\t%t\t%d\t%s\t%s\n",
			st.N, st.Sym, st.Prev, st.Candidate, st.InDict,
			st.Index, addition, orDash(st.Output))
	}
	tw.Flush()
}

func writeLZ78DecompressTable(w io.Writer, steps []lz78.Step) {
	tw := newTable(w)
	fmt.Fprintln(tw, "Step\tToken\tPrefix\tAddition\tOutput")
	for _, st := range steps {
		addition := "--"
		if st.Added != "" {
			addition = fmt.Sprintf("%d => %q",
				st.AddedAt, st.Added)
		}
		fmt.Fprintf(tw, "%d\t%s\t%q\t%s\t%q\n",
			st.N, st.Sym, st.Prev, addition, st.Output)
	}
	tw.Flush()
}

func writeLZWCompressTable(w io.Writer, steps []lzw.Step) {
	tw := newTable(w)
	fmt.Fprintln(tw,
		"Step\tSymbol\tWord\tConcat\tIn dict\tOutput\tAddition")
	for _, st := range steps {
		output, addition := "--", "--"
		if st.Code != 0 {
			output = fmt.Sprintf("%d", st.Code)
		}
		if st.Added != "" {
			addition = fmt.Sprintf("%s => %d",
				st.Added, st.AddedAt)
		}
		fmt.Fprintf(tw, "%d\t%s\t%q\t%q\t%t\t%s\t%s\n",
			st.N, st.Sym, st.Prev, st.Candidate, st.InDict,
			output, addition)
	}
	tw.Flush()
}

func writeLZWDecompressTable(w io.Writer, steps []lzw.Step) {
	tw := newTable(w)
	fmt.Fprintln(tw, "Step\tCode\tEntry\tDeferred\tAddition")
	for _, st := range steps {
		addition := "--"
		if st.Added != "" {
			addition = fmt.Sprintf("%d => %q",
				st.AddedAt, st.Added)
		}
		fmt.Fprintf(tw, "%d\t%d\t%q\t%t\t%s\n",
			st.N, st.Code, st.Resolved, st.Deferred, addition)
	}
	tw.Flush()
}
