package validator

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// NumberParser reads a numeric value out of raw user input.
// It returns ErrUnparseableNumber when no value can be read.
type NumberParser func(s string) (float64, error)

var (
	strictIntRegex   = regexp.MustCompile(`^[+-]?[0-9]+$`)
	strictFloatRegex = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
)

// ParseIntPrefix parses the leading integer of s and ignores whatever follows it.
// Leading whitespace and a single sign are accepted, and a 0x or 0X prefix
// switches to base 16. "25abc" yields 25 and "12.9" yields 12.
func ParseIntPrefix(s string) (float64, error) {
	s = strings.TrimLeftFunc(s, isTextSpace)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	var v float64
	n := 0
	for n < len(s) {
		d := digitValue(s[n])
		if d >= base {
			break
		}
		v = v*float64(base) + float64(d)
		n++
	}
	if n == 0 {
		return 0, ErrUnparseableNumber
	}

	if neg {
		v = -v
	}
	return v, nil
}

// ParseFloatPrefix parses the longest leading decimal literal of s and ignores
// whatever follows it. Fractions, exponents and "Infinity" are understood;
// "72.5kg" yields 72.5 and "1e3x" yields 1000.
func ParseFloatPrefix(s string) (float64, error) {
	s = strings.TrimLeftFunc(s, isTextSpace)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	}

	intDigits := countDigits(s[i:])
	i += intDigits

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracDigits = countDigits(s[i+1:])
		if intDigits > 0 || fracDigits > 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0, ErrUnparseableNumber
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if k := countDigits(s[j:]); k > 0 {
			i = j + k
		}
	}

	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, ErrUnparseableNumber
	}
	return v, nil
}

// ParseIntStrict parses s as a base-10 integer. The whole string must be the
// number: no surrounding whitespace, no trailing characters.
func ParseIntStrict(s string) (float64, error) {
	if !strictIntRegex.MatchString(s) {
		return 0, ErrUnparseableNumber
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrUnparseableNumber
	}
	return v, nil
}

// ParseFloatStrict parses s as a finite decimal number. The whole string
// must be the number.
func ParseFloatStrict(s string) (float64, error) {
	if !strictFloatRegex.MatchString(s) {
		return 0, ErrUnparseableNumber
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, ErrUnparseableNumber
	}
	return v, nil
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return 99
	}
}

// isTextSpace reports whitespace and line terminators as client-side
// number parsing and pattern matching understand them. Unlike
// unicode.IsSpace it includes U+FEFF and excludes U+0085.
func isTextSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}
