// Command dcz compresses and decompresses text with the teaching
// codecs of the dictcode module. It can render the per-step
// explanation table of a codec run next to the result.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ogier/pflag"

	"github.com/ulikunitz/dictcode/alphabet"
	"github.com/ulikunitz/dictcode/lz78"
	"github.com/ulikunitz/dictcode/lzw"
	"github.com/ulikunitz/dictcode/xlog"
)

const usageStr = `Usage: dcz [OPTION]... [INPUT]
Compress or decompress INPUT with an adaptive dictionary codec.

  -z, --compress         compress the input
  -d, --decompress       decompress the input
  -a, --algorithm ALG    codec to use: lz78 or lzw (default lz78)
  -f, --file FILE        read the input from FILE
  -e, --explain          print the per-step explanation table
  -v, --verbose          debug output
  -h, --help             give this help
  -V, --version          display version string

Without --file the input is the single positional argument. LZ78
streams are token text such as (0,A)(1,A)(1,<EOF>); LZW streams are
comma- or whitespace-separated code lists.
`

const version = "0.2.0"

func usage(w io.Writer) { fmt.Fprint(w, usageStr) }

func main() {
	cmdName := filepath.Base(os.Args[0])
	log.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	log.SetFlags(0)

	pflag.CommandLine = pflag.NewFlagSet(cmdName, pflag.ExitOnError)
	pflag.SetInterspersed(true)
	pflag.Usage = func() { usage(os.Stderr); os.Exit(1) }
	var (
		help       = pflag.BoolP("help", "h", false, "")
		ver        = pflag.BoolP("version", "V", false, "")
		compress   = pflag.BoolP("compress", "z", false, "")
		decompress = pflag.BoolP("decompress", "d", false, "")
		algorithm  = pflag.StringP("algorithm", "a", "lz78", "")
		file       = pflag.StringP("file", "f", "", "")
		explain    = pflag.BoolP("explain", "e", false, "")
		verbose    = pflag.BoolP("verbose", "v", false, "")
	)
	pflag.Parse()

	if *help {
		usage(os.Stdout)
		os.Exit(0)
	}
	if *ver {
		log.Printf("version %s", version)
		os.Exit(0)
	}
	if *compress == *decompress {
		log.Fatal("exactly one of --compress and --decompress" +
			" must be given")
	}

	var debug xlog.Logger
	if *verbose {
		debug = log.New(os.Stderr, cmdName+": ", 0)
	}

	text, err := input(*file, pflag.Args())
	if err != nil {
		log.Fatal(err)
	}
	xlog.Printf(debug, "input %d bytes", len(text))

	var out string
	if *compress {
		out, err = compressInput(*algorithm, text, *explain,
			debug, os.Stdout)
	} else {
		out, err = decompressInput(*algorithm, text, *explain,
			debug, os.Stdout)
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out)
}

// input resolves the program input: the content of file with a
// trailing newline stripped, or the single positional argument.
func input(file string, args []string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(data), "\n"), nil
	}
	if len(args) != 1 {
		return "", errors.New(
			"provide the input as the single argument" +
				" or use --file")
	}
	return args[0], nil
}

func compressInput(alg, text string, explain bool, debug xlog.Logger,
	w io.Writer) (string, error) {
	wire, err := alphabet.Space.Apply(text)
	if err != nil {
		return "", err
	}
	switch alg {
	case "lz78":
		stream, steps, err := lz78.CompressTrace(wire)
		if err != nil {
			return "", err
		}
		xlog.Printf(debug, "%d tokens, %d trace steps",
			strings.Count(stream, "("), len(steps))
		if explain {
			fmt.Fprintln(w, lz78CompressIntro)
			writeLZ78CompressTable(w, steps)
		}
		return stream, nil
	case "lzw":
		codes, steps, err := lzw.CompressTrace(wire)
		if err != nil {
			return "", err
		}
		xlog.Printf(debug, "%d codes, %d trace steps",
			len(codes), len(steps))
		if explain {
			fmt.Fprintln(w, lzwCompressIntro)
			writeLZWCompressTable(w, steps)
		}
		return lzw.FormatCodes(codes), nil
	}
	return "", fmt.Errorf("unknown algorithm %q", alg)
}

func decompressInput(alg, text string, explain bool, debug xlog.Logger,
	w io.Writer) (string, error) {
	switch alg {
	case "lz78":
		wire, steps, err := lz78.DecompressTrace(text)
		if err != nil {
			return "", err
		}
		xlog.Printf(debug, "%d trace steps", len(steps))
		if explain {
			fmt.Fprintln(w, lz78DecompressIntro)
			writeLZ78DecompressTable(w, steps)
		}
		return alphabet.Space.Revert(wire), nil
	case "lzw":
		codes, err := lzw.ParseCodes(text)
		if err != nil {
			return "", err
		}
		wire, steps, err := lzw.DecompressTrace(codes)
		if err != nil {
			return "", err
		}
		xlog.Printf(debug, "%d codes, %d trace steps",
			len(codes), len(steps))
		if explain {
			fmt.Fprintln(w, lzwDecompressIntro)
			writeLZWDecompressTable(w, steps)
		}
		return alphabet.Space.Revert(wire), nil
	}
	return "", fmt.Errorf("unknown algorithm %q", alg)
}
