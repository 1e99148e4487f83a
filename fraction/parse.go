package fraction

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrSyntax = errors.New("fraction: invalid syntax")

// String renders the fraction as written, e.g. "3/-4".
func (f Fraction) String() string {
	return strconv.FormatInt(f.num, 10) + "/" + strconv.FormatInt(f.den, 10)
}

// Parse reads "num/den". Whitespace around the slash and around the whole
// string is ignored and either side may carry a leading '-', so " -5 / 7 "
// is -5/7. A bare integer n reads as n/1.
func Parse(s string) (Fraction, error) {
	numText, denText, found := strings.Cut(s, "/")
	num, err := parseComponent(numText)
	if err != nil {
		return Undefined, fmt.Errorf("%w: numerator of %q", ErrSyntax, s)
	}
	if !found {
		return FromInt(num), nil
	}
	den, err := parseComponent(denText)
	if err != nil {
		return Undefined, fmt.Errorf("%w: denominator of %q", ErrSyntax, s)
	}
	return New(num, den), nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Fraction {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

func parseComponent(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "+") {
		return 0, ErrSyntax
	}
	return strconv.ParseInt(s, 10, 64)
}

func (f Fraction) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Fraction) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
