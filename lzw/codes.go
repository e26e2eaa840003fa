package lzw

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseCodes parses the textual envelope of a code stream: decimal
// codes separated by commas and/or whitespace. Empty fields, as left
// by trailing or doubled separators, are ignored. Fields that are not
// non-negative decimal numbers fail with a *FormatError.
func ParseCodes(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	codes := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, formatErrorf(
				"code %q is not a decimal number", f)
		}
		if n < 0 {
			return nil, formatErrorf("code %d is negative", n)
		}
		codes = append(codes, n)
	}
	return codes, nil
}

// FormatCodes renders a code list as comma-separated text, the
// envelope ParseCodes accepts.
func FormatCodes(codes []int) string {
	fields := make([]string, len(codes))
	for i, c := range codes {
		fields[i] = strconv.Itoa(c)
	}
	return strings.Join(fields, ",")
}
