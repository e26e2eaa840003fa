// Package randtxt generates random English-like text over the
// uppercase letters, with '_' separating words. The output alphabet is
// exactly the seed alphabet of the lzw package, which makes the
// generator useful for round-trip tests and benchmarks of the codecs.
package randtxt

import (
	"math/rand"
	"sort"
)

// Relative frequencies of the letters A to Z in English text.
var letterFreq = [26]float64{
	8.17, 1.49, 2.78, 4.25, 12.70, 2.23, 2.02, 6.09, 6.97, 0.15,
	0.77, 4.03, 2.41, 6.75, 7.51, 1.93, 0.10, 5.99, 6.33, 9.06,
	2.76, 0.98, 2.36, 0.15, 1.97, 0.07,
}

// letterCDF holds the cumulative distribution over letterFreq,
// normalized to [0,1].
var letterCDF = func() [26]float64 {
	var cdf [26]float64
	sum := 0.0
	for _, p := range letterFreq {
		sum += p
	}
	x := 0.0
	for i, p := range letterFreq {
		x += p / sum
		cdf[i] = x
	}
	cdf[25] = 1.0
	return cdf
}()

// Reader generates an endless stream of random text. Read never
// returns an error.
type Reader struct {
	rnd  *rand.Rand
	word int
}

// NewReader creates a Reader using the given random source. The same
// source seed reproduces the same text.
func NewReader(src rand.Source) *Reader {
	rnd := rand.New(src)
	return &Reader{rnd: rnd, word: 1 + rnd.Intn(9)}
}

func (r *Reader) Read(p []byte) (n int, err error) {
	for i := range p {
		if r.word == 0 {
			p[i] = '_'
			r.word = 1 + r.rnd.Intn(9)
			continue
		}
		j := sort.SearchFloat64s(letterCDF[:], r.rnd.Float64())
		if j == len(letterCDF) {
			j--
		}
		p[i] = byte('A' + j)
		r.word--
	}
	return len(p), nil
}

// String returns n bytes of random text from the given source.
func String(src rand.Source, n int) string {
	p := make([]byte, n)
	r := NewReader(src)
	r.Read(p)
	return string(p)
}
