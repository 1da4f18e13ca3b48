package baseconv

import (
	"math"
	"math/bits"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// fint (Fast INTeger) is a wrapper around uint64.
type fint uint64

// maxFintRunes is the length of math.MaxUint64 in base 2.
const maxFintRunes = 64

// add calculates x + y and checks overflow.
func (x fint) add(y uint64) (z fint, ok bool) {
	s, carry := bits.Add64(uint64(x), y, 0)
	if carry != 0 {
		return 0, false
	}
	return fint(s), true
}

// mul calculates x * y and checks overflow.
func (x fint) mul(y uint64) (z fint, ok bool) {
	hi, lo := bits.Mul64(uint64(x), y)
	if hi != 0 {
		return 0, false
	}
	return fint(lo), true
}

// fma (Fused Multiplication and Addition) calculates x * y + b and checks overflow.
func (x fint) fma(y, b uint64) (z fint, ok bool) {
	z, ok = x.mul(y)
	if !ok {
		return 0, false
	}
	return z.add(b)
}

// quoRem calculates q = ⌊x / y⌋, r = x - y * q.
func (x fint) quoRem(y uint64) (q fint, r uint64) {
	return x / fint(y), uint64(x) % y
}

// FormatUint returns the representation of v in the given alphabet.
// Zero is represented by the first character of the alphabet.
//
// FormatUint returns an error if the alphabet has fewer than two characters.
func FormatUint(v uint64, a Alphabet) (string, error) {
	var buf [maxFintRunes]rune
	pos, err := formatFint(&buf, fint(v), a)
	if err != nil {
		return "", err
	}
	return string(buf[pos:]), nil
}

// PutUint writes the representation of v in the given alphabet into buf
// and returns the number of bytes written.
// The buffer is never grown: if the UTF-8 encoding does not fit,
// PutUint returns [ErrBufferTooSmall] and leaves buf unspecified.
func PutUint(buf []byte, v uint64, a Alphabet) (int, error) {
	var runes [maxFintRunes]rune
	pos, err := formatFint(&runes, fint(v), a)
	if err != nil {
		return 0, err
	}
	return putRunes(buf, runes[pos:])
}

// formatFint fills buf from the end and returns the index of the first rune.
func formatFint(buf *[maxFintRunes]rune, x fint, a Alphabet) (int, error) {
	if err := a.validRadix(); err != nil {
		return 0, err
	}
	radix := uint64(a.Radix())
	pos := len(buf)
	for {
		var r uint64
		x, r = x.quoRem(radix)
		pos--
		buf[pos] = a.Rune(int(r))
		if x == 0 {
			break
		}
	}
	return pos, nil
}

// ParseUint converts a string in the given alphabet to uint64.
// Characters are matched exactly first, then by their opposite case.
//
// ParseUint returns an error:
//   - if the alphabet has fewer than two characters.
//   - if s is empty.
//   - if s contains a character that is not in the alphabet.
//   - if the value is greater than [math.MaxUint64].
func ParseUint(s string, a Alphabet) (uint64, error) {
	z, err := parseFint(s, a)
	if err != nil {
		return 0, err
	}
	return uint64(z), nil
}

func parseFint(s string, a Alphabet) (fint, error) {
	if err := a.validRadix(); err != nil {
		return 0, err
	}
	if s == "" {
		return 0, errors.Wrap(ErrInvalidFormat, "empty string")
	}
	var (
		z        fint
		ok       bool
		overflow bool
		pos      int
	)
	radix := uint64(a.Radix())
	for _, r := range s {
		v, found := a.lookup(r)
		if !found {
			return 0, invalidCharacter(r, pos)
		}
		if !overflow {
			z, ok = z.fma(radix, uint64(v))
			overflow = !ok
		}
		pos++
	}
	if overflow {
		return 0, errors.Wrapf(ErrCapacityExceeded, "value overflows %d", uint64(math.MaxUint64))
	}
	return z, nil
}

// putRunes encodes runes into buf as UTF-8 without growing it.
func putRunes(buf []byte, runes []rune) (int, error) {
	need := 0
	for _, r := range runes {
		need += utf8.RuneLen(r)
	}
	if need > len(buf) {
		return 0, errors.Wrapf(ErrBufferTooSmall, "need %d bytes, have %d", need, len(buf))
	}
	n := 0
	for _, r := range runes {
		n += utf8.EncodeRune(buf[n:], r)
	}
	return n, nil
}
