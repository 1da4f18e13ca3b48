package baseconv

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// ToBaseString returns the representation of |d| in the given alphabet.
// The sign of d is not represented.
// Zero is represented by the first character of the alphabet.
//
// ToBaseString returns an error if the alphabet has fewer than two characters.
func ToBaseString(d BigDecimal, a Alphabet) (string, error) {
	if err := a.validRadix(); err != nil {
		return "", err
	}
	if v, ok := d.magnitude().uint64(); ok {
		return FormatUint(v, a)
	}
	return string(toBaseSlow(d.magnitude(), a)), nil
}

// PutBaseString writes the representation of |d| in the given alphabet into
// buf and returns the number of bytes written.
// The buffer is never grown: if the UTF-8 encoding does not fit,
// PutBaseString returns [ErrBufferTooSmall] and leaves buf unspecified.
// Use [MaxEncodedLen] to size buf for the worst case.
func PutBaseString(buf []byte, d BigDecimal, a Alphabet) (int, error) {
	if err := a.validRadix(); err != nil {
		return 0, err
	}
	if v, ok := d.magnitude().uint64(); ok {
		return PutUint(buf, v, a)
	}
	return putRunes(buf, toBaseSlow(d.magnitude(), a))
}

// toBaseSlow converts x by repeated division by the radix.
// It collects digits from least to most significant and reverses them.
func toBaseSlow(x limbs, a Alphabet) []rune {
	radix := uint64(a.Radix())
	if x.isZero() {
		return []rune{a.Rune(0)}
	}
	out := make([]rune, 0, MaxEncodedLen(len(x), a.Radix()))
	for !x.isZero() {
		var r uint64
		x, r = x.quoRemSmall(radix)
		out = append(out, a.Rune(int(r)))
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// MaxEncodedLen returns an upper bound on the number of characters needed to
// represent a number of the given decimal digit count in the given radix.
// MaxEncodedLen returns 0 if radix is less than 2.
func MaxEncodedLen(digits, radix int) int {
	if radix < 2 {
		return 0
	}
	if digits < 1 {
		return 1
	}
	return int(math.Ceil(float64(digits)*math.Log(10)/math.Log(float64(radix)))) + 1
}

// FromBaseString converts a string in the given alphabet to a non-negative
// BigDecimal.
// Each character is matched exactly first, then by its opposite case.
//
// FromBaseString returns an error:
//   - if the alphabet has fewer than two characters.
//   - if s is empty.
//   - if s contains a character that is not in the alphabet,
//     in which case the error is an [*InvalidCharacterError].
//   - if the value has more than [MaxDigits] decimal digits.
func FromBaseString(s string, a Alphabet) (BigDecimal, error) {
	d, err := fromBaseFast(s, a)
	if err != nil {
		d, err = fromBaseSlow(s, a)
		if err != nil {
			return BigDecimal{}, err
		}
	}
	return d, nil
}

func fromBaseFast(s string, a Alphabet) (BigDecimal, error) {
	z, err := parseFint(s, a)
	if err != nil {
		return BigDecimal{}, err
	}
	return New(uint64(z), NonNegative)
}

func fromBaseSlow(s string, a Alphabet) (BigDecimal, error) {
	if err := a.validRadix(); err != nil {
		return BigDecimal{}, err
	}
	if s == "" {
		return BigDecimal{}, errors.Wrap(ErrInvalidFormat, "empty string")
	}
	var (
		z   limbs
		err error
		pos int
	)
	z = limbs{0}
	radix := uint64(a.Radix())
	for _, r := range s {
		v, ok := a.lookup(r)
		if !ok {
			return BigDecimal{}, invalidCharacter(r, pos)
		}
		z, err = z.mulSmall(radix)
		if err != nil {
			return BigDecimal{}, err
		}
		z, err = z.add(limbsFromUint64(uint64(v)))
		if err != nil {
			return BigDecimal{}, err
		}
		pos++
	}
	return newBigDecimal(NonNegative, z)
}

// Converter re-encodes numbers from an input alphabet to an output alphabet.
// The zero value is not usable; create converters with [NewConverter].
type Converter struct {
	in, out Alphabet
}

// NewConverter returns a Converter between the given alphabets.
// It returns an error if either alphabet has fewer than two characters.
func NewConverter(in, out Alphabet) (Converter, error) {
	if err := in.validRadix(); err != nil {
		return Converter{}, errors.Wrap(err, "input alphabet")
	}
	if err := out.validRadix(); err != nil {
		return Converter{}, errors.Wrap(err, "output alphabet")
	}
	return Converter{in: in, out: out}, nil
}

// Convert decodes s with the input alphabet and encodes the value with the
// output alphabet.
func (c Converter) Convert(s string) (string, error) {
	d, err := FromBaseString(s, c.in)
	if err != nil {
		return "", err
	}
	return ToBaseString(d, c.out)
}

// SafeFormat implements [redact.SafeFormatter].
func (c Converter) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("base %d -> base %d", redact.Safe(c.in.Radix()), redact.Safe(c.out.Radix()))
}
