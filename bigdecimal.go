package baseconv

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Sign tells whether a [BigDecimal] is negative.
type Sign int8

const (
	NonNegative Sign = iota
	Negative
)

func (s Sign) String() string {
	switch s {
	case NonNegative:
		return "non-negative"
	case Negative:
		return "negative"
	}
	return "invalid sign"
}

// SafeFormat implements [redact.SafeFormatter].
func (s Sign) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(redact.SafeString(s.String()))
}

// BigDecimal is an integer of arbitrary magnitude stored as decimal digits.
// The zero value is the numeric value of 0.
// It is immutable and designed to be safe for concurrent use by multiple
// goroutines: operations return new values and never modify their operands.
//
// A BigDecimal is a pair of:
//
//   - Sign: [NonNegative] or [Negative]. Zero is never negative.
//   - Magnitude: at most [MaxDigits] decimal digits with no leading zeros.
//
// Arithmetic is limited to what base conversion needs: addition of
// magnitudes and multiplication or division by a small integer.
type BigDecimal struct {
	sign Sign  // indicates whether the number is negative
	mag  limbs // the magnitude, least significant digit first
}

const (
	MaxDigits = 1024               // maximum length of the magnitude in decimal digits
	MaxSmall  = math.MaxInt64 / 10 // maximum multiplier or divisor of a small operation
)

func newBigDecimal(sign Sign, mag limbs) (BigDecimal, error) {
	switch {
	case sign != NonNegative && sign != Negative:
		return BigDecimal{}, errors.Wrapf(ErrInvalidArgument, "sign %d", redact.Safe(int8(sign)))
	case len(mag) > MaxDigits:
		return BigDecimal{}, errCapacity(len(mag))
	}
	if mag.isZero() {
		sign = NonNegative
	}
	return BigDecimal{sign: sign, mag: mag}, nil
}

func errCapacity(digits int) error {
	return errors.Wrapf(ErrCapacityExceeded, "%d digits, maximum is %d", redact.Safe(digits), redact.Safe(MaxDigits))
}

// New returns a BigDecimal with the given magnitude and sign.
// A zero value is always non-negative, whatever the sign argument.
// New returns an error if sign is neither [NonNegative] nor [Negative].
func New(value uint64, sign Sign) (BigDecimal, error) {
	return newBigDecimal(sign, limbsFromUint64(value))
}

// NewFromInt64 converts an integer to a BigDecimal.
func NewFromInt64(v int64) (BigDecimal, error) {
	if v < 0 {
		// -(v+1)+1 avoids overflow for math.MinInt64
		return New(uint64(-(v+1))+1, Negative)
	}
	return New(uint64(v), NonNegative)
}

// Parse converts a decimal string to a BigDecimal.
// The input string must be in the following format:
//
//	sign           ::= '+' | '-'
//	digits         ::= digit { digit }
//	digit          ::= '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9'
//	numeric-string ::= [sign] digits
//
// Parse removes leading zeros, keeping at least one digit.
// "-0" is parsed as non-negative zero.
//
// Parse returns error:
//   - if the string is empty or consists of a sign only.
//   - if the string contains a character other than a leading sign and digits.
//   - if the number has more than [MaxDigits] significant digits.
func Parse(s string) (BigDecimal, error) {
	var (
		pos   int
		width int
		sign  Sign
	)

	width = len(s)

	// Sign
	switch {
	case pos == width:
		return BigDecimal{}, errors.Wrap(ErrInvalidFormat, "empty string")
	case s[pos] == '-':
		sign = Negative
		pos++
	case s[pos] == '+':
		pos++
	}
	if pos == width {
		return BigDecimal{}, errors.Wrapf(ErrInvalidFormat, "sign %q without digits", s)
	}

	// Leading zeros
	for pos < width-1 && s[pos] == '0' {
		pos++
	}

	// Digits
	for i := pos; i < width; i++ {
		if s[i] < '0' || s[i] > '9' {
			return BigDecimal{}, errors.Wrapf(ErrInvalidFormat, "invalid character %q at position %d", s[i], redact.Safe(i))
		}
	}
	if width-pos > MaxDigits {
		return BigDecimal{}, errCapacity(width - pos)
	}
	mag := make(limbs, width-pos)
	for i := range mag {
		mag[i] = s[width-1-i] - '0'
	}

	return newBigDecimal(sign, mag)
}

// magnitude returns the digits of d, treating the zero value as zero.
func (d BigDecimal) magnitude() limbs {
	if len(d.mag) == 0 {
		return limbs{0}
	}
	return d.mag
}

// String implements the [fmt.Stringer] interface and returns the decimal
// representation of d, with a '-' prefix if d is negative.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d BigDecimal) String() string {
	buf := make([]byte, d.decimalLen())
	n, _ := d.PutDecimal(buf)
	return string(buf[:n])
}

func (d BigDecimal) decimalLen() int {
	n := len(d.magnitude())
	if d.IsNeg() {
		n++
	}
	return n
}

// PutDecimal writes the decimal representation of d into buf and returns
// the number of bytes written.
// The output is never truncated: if it does not fit, PutDecimal returns
// [ErrBufferTooSmall] and leaves buf unspecified.
func (d BigDecimal) PutDecimal(buf []byte) (int, error) {
	need := d.decimalLen()
	if need > len(buf) {
		return 0, errors.Wrapf(ErrBufferTooSmall, "need %d bytes, have %d", redact.Safe(need), redact.Safe(len(buf)))
	}
	pos := 0
	if d.IsNeg() {
		buf[pos] = '-'
		pos++
	}
	mag := d.magnitude()
	for i := len(mag) - 1; i >= 0; i-- {
		buf[pos] = mag[i] + '0'
		pos++
	}
	return pos, nil
}

// SafeFormat implements [redact.SafeFormatter].
// The sign is safe for reporting, the digits are user data.
func (d BigDecimal) SafeFormat(w redact.SafePrinter, _ rune) {
	if d.IsNeg() {
		w.SafeRune('-')
	}
	w.Print(d.Abs().String())
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *BigDecimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [BigDecimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d BigDecimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Len returns the number of decimal digits of d.
// Zero has one digit.
func (d BigDecimal) Len() int {
	return len(d.magnitude())
}

// Uint64 returns the value of d as uint64.
// The second result is false if d is negative or greater than [math.MaxUint64].
func (d BigDecimal) Uint64() (uint64, bool) {
	if d.IsNeg() {
		return 0, false
	}
	return d.magnitude().uint64()
}

// Sign returns the sign of d.
func (d BigDecimal) Sign() Sign {
	return d.sign
}

// IsNeg returns true if d < 0.
func (d BigDecimal) IsNeg() bool {
	return d.sign == Negative
}

// IsPos returns true if d > 0.
func (d BigDecimal) IsPos() bool {
	return d.sign == NonNegative && !d.IsZero()
}

// IsZero returns true if d == 0.
func (d BigDecimal) IsZero() bool {
	return d.magnitude().isZero()
}

// Neg returns a BigDecimal with the opposite sign.
func (d BigDecimal) Neg() BigDecimal {
	if d.IsZero() {
		return d
	}
	if d.IsNeg() {
		return BigDecimal{sign: NonNegative, mag: d.mag}
	}
	return BigDecimal{sign: Negative, mag: d.mag}
}

// Abs returns the absolute value of d.
func (d BigDecimal) Abs() BigDecimal {
	return BigDecimal{sign: NonNegative, mag: d.mag}
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
//
// Zero is neither positive nor negative.
func (d BigDecimal) Cmp(e BigDecimal) int {
	// Special case: different signs
	switch {
	case d.IsNeg() && !e.IsNeg():
		return -1
	case !d.IsNeg() && e.IsNeg():
		return 1
	}
	// General case
	r := d.magnitude().cmp(e.magnitude())
	if d.IsNeg() {
		return -r
	}
	return r
}

// AddMagnitude returns the exact sum |d| + |e|.
// The signs of the operands are ignored and the result is never negative.
//
// AddMagnitude returns an error if the sum has more than [MaxDigits] digits.
func (d BigDecimal) AddMagnitude(e BigDecimal) (BigDecimal, error) {
	z, err := d.magnitude().add(e.magnitude())
	if err != nil {
		return BigDecimal{}, err
	}
	return newBigDecimal(NonNegative, z)
}

// MulSmall returns d * k, where k is a small non-negative integer.
// The result has the sign of d, unless it is zero.
//
// MulSmall returns an error:
//   - if k is negative or greater than [MaxSmall].
//   - if the product has more than [MaxDigits] digits.
func (d BigDecimal) MulSmall(k int64) (BigDecimal, error) {
	switch {
	case k < 0:
		return BigDecimal{}, errors.Wrapf(ErrInvalidArgument, "negative multiplier %d", redact.Safe(k))
	case k > MaxSmall:
		return BigDecimal{}, errors.Wrapf(ErrInvalidArgument, "multiplier %d exceeds %d", redact.Safe(k), redact.Safe(int64(MaxSmall)))
	}
	z, err := d.magnitude().mulSmall(uint64(k))
	if err != nil {
		return BigDecimal{}, err
	}
	return newBigDecimal(d.sign, z)
}

// QuoRemSmall returns the truncated quotient and the remainder of d / divisor,
// where divisor is a small positive integer, such that
// |d| = |q| * divisor + r.
// The quotient has the sign of d, unless it is zero.
// The remainder is the remainder of the magnitude and is never negative.
//
// QuoRemSmall returns an error:
//   - if divisor is 0.
//   - if divisor is negative or greater than [MaxSmall].
func (d BigDecimal) QuoRemSmall(divisor int64) (q BigDecimal, r int64, err error) {
	switch {
	case divisor == 0:
		return BigDecimal{}, 0, ErrDivisionByZero
	case divisor < 0:
		return BigDecimal{}, 0, errors.Wrapf(ErrInvalidArgument, "negative divisor %d", redact.Safe(divisor))
	case divisor > MaxSmall:
		return BigDecimal{}, 0, errors.Wrapf(ErrInvalidArgument, "divisor %d exceeds %d", redact.Safe(divisor), redact.Safe(int64(MaxSmall)))
	}
	z, rem := d.magnitude().quoRemSmall(uint64(divisor))
	q, err = newBigDecimal(d.sign, z)
	if err != nil {
		return BigDecimal{}, 0, err
	}
	return q, int64(rem), nil
}
