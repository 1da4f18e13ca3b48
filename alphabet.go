package baseconv

import (
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Alphabet is an ordered set of distinct characters used as digit symbols.
// The position of a character is its digit value and the number of characters
// is the radix.
// The zero value is an empty alphabet, which no conversion accepts.
// Alphabets are immutable and safe for concurrent use by multiple goroutines.
type Alphabet struct {
	utr []rune       // digit value to rune
	rtu map[rune]int // rune to digit value
}

// NewAlphabet builds an alphabet from the characters of s, in order.
// It is an error for s to contain invalid UTF-8 or the same character twice.
// Alphabets with fewer than two characters can be built, but conversions
// reject them with [ErrInvalidArgument].
func NewAlphabet(s string) (Alphabet, error) {
	if !utf8.ValidString(s) {
		return Alphabet{}, errors.Wrap(ErrInvalidArgument, "alphabet is not valid UTF-8")
	}
	a := Alphabet{
		utr: make([]rune, 0, utf8.RuneCountInString(s)),
		rtu: make(map[rune]int, len(s)),
	}
	for i, r := range []rune(s) {
		if j, ok := a.rtu[r]; ok {
			return Alphabet{}, errors.Wrapf(ErrInvalidArgument, "alphabet repeats %q at positions %d and %d", r, j, i)
		}
		a.rtu[r] = i
		a.utr = append(a.utr, r)
	}
	return a, nil
}

// MustNewAlphabet is like [NewAlphabet] but panics if the alphabet is invalid.
// It simplifies safe initialization of global variables holding alphabets.
func MustNewAlphabet(s string) Alphabet {
	a, err := NewAlphabet(s)
	if err != nil {
		panic(errors.Wrapf(err, "MustNewAlphabet(%q) failed", s))
	}
	return a
}

// Radix returns the number of characters in the alphabet.
func (a Alphabet) Radix() int {
	return len(a.utr)
}

// String returns the characters of the alphabet in digit order.
func (a Alphabet) String() string {
	return string(a.utr)
}

// SafeFormat implements [redact.SafeFormatter].
// Alphabets are public tables, so the whole value is safe for reporting.
func (a Alphabet) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(redact.SafeString(a.String()))
}

// Rune returns the character for digit value v.
// Rune panics if v is not in [0, Radix).
func (a Alphabet) Rune(v int) rune {
	return a.utr[v]
}

// Digit returns the digit value of r, matching r exactly.
func (a Alphabet) Digit(r rune) (int, bool) {
	v, ok := a.rtu[r]
	return v, ok
}

// Contains reports whether r is a character of the alphabet.
func (a Alphabet) Contains(r rune) bool {
	_, ok := a.rtu[r]
	return ok
}

// lookup returns the digit value of r.
// If r is not in the alphabet, lookup retries once with the opposite case of r.
func (a Alphabet) lookup(r rune) (int, bool) {
	if v, ok := a.rtu[r]; ok {
		return v, true
	}
	var alt rune
	switch {
	case unicode.IsLower(r):
		alt = unicode.ToUpper(r)
	case unicode.IsUpper(r):
		alt = unicode.ToLower(r)
	default:
		return 0, false
	}
	if alt == r {
		return 0, false
	}
	v, ok := a.rtu[alt]
	return v, ok
}

// validRadix returns an error if the alphabet cannot be used for conversions.
func (a Alphabet) validRadix() error {
	if a.Radix() < 2 {
		return errors.Wrapf(ErrInvalidArgument, "radix %d is less than 2", redact.Safe(a.Radix()))
	}
	return nil
}
