package pageurl

import (
	"errors"
	"math"
	"math/big"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rohanthewiz/pageurl/consts"
)

var errMalformedUTF8 = errors.New("percent-decoded value is not valid UTF-8")

// decodeComponent reverses percent-encoding the way browsers decode a single
// URL component: '+' is left alone, and malformed escapes are an error.
func decodeComponent(s string) (string, error) {
	if strings.IndexByte(s, '%') < 0 {
		return s, nil
	}
	out, err := url.PathUnescape(s)
	if err != nil {
		return "", err
	}
	if !utf8.ValidString(out) {
		return "", errMalformedUTF8
	}
	return out, nil
}

// QueryEscape leaves only alphanumerics and "-_.~" alone; browsers additionally
// keep "!'()*" and encode spaces as %20.
var componentFixups = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeComponent percent-encodes s for use as a query key or value.
func encodeComponent(s string) string {
	return componentFixups.Replace(url.QueryEscape(s))
}

// segments splits a path on '/'. A leading slash yields an empty first segment.
func segments(pathname string) []string {
	return strings.Split(pathname, consts.StrSlash)
}

// segmentAt returns parts[i], reporting whether it exists.
func segmentAt(parts []string, i int) (string, bool) {
	if i < 0 || i >= len(parts) {
		return "", false
	}
	return parts[i], true
}

// utf16Len counts UTF-16 code units, the unit browser string lengths use.
func utf16Len(s string) (n int) {
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

var (
	reDecimalNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	reInfinity      = regexp.MustCompile(`^[+-]?Infinity$`)
	rePrefixedInt   = regexp.MustCompile(`^0([xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
)

// isNumberSpace reports whether r is whitespace that Number() ignores around
// its input: the Zs category, tab, vertical tab, form feed, BOM and the line
// terminators. U+0085 is not included.
func isNumberSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u00a0', '\ufeff', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// prefixBase maps a 0x, 0o or 0b prefix letter to its base.
var prefixBase = map[byte]int{'x': 16, 'X': 16, 'o': 8, 'O': 8, 'b': 2, 'B': 2}

// coerceNumber converts s to a number using browser Number() rules:
// surrounding whitespace is ignored, an empty string is zero, and anything
// unparseable is NaN rather than an error.
func coerceNumber(s string) float64 {
	s = strings.TrimFunc(s, isNumberSpace)
	switch {
	case s == "":
		return 0
	case reInfinity.MatchString(s):
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	case rePrefixedInt.MatchString(s):
		n, ok := new(big.Int).SetString(s[2:], prefixBase[s[1]])
		if !ok {
			return math.NaN()
		}
		// nearest float64, +Inf past the float64 range
		f, _ := new(big.Float).SetInt(n).Float64()
		return f
	case reDecimalNumber.MatchString(s):
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			// out of range values still parse to ±Inf, which is what we want
			var numErr *strconv.NumError
			if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
				return f
			}
			return math.NaN()
		}
		return f
	}
	return math.NaN()
}
