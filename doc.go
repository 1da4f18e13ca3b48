/*
Package baseconv converts arbitrary-precision non-negative integers between
numeral bases using caller-supplied digit alphabets.
It is built on a small decimal-digit arithmetic engine, so values are not
limited to 64 bits.

# Representation

[BigDecimal] is a struct with two fields:

  - Sign: [NonNegative] or [Negative].
    Zero is never negative.
  - Magnitude: a sequence of decimal digits, least significant first,
    with no leading zeros.
    The magnitude has at least one and at most [MaxDigits] digits.

The numerical value of a BigDecimal is:

  - -Magnitude, if Sign is [Negative].
  - Magnitude, if Sign is [NonNegative].

[Alphabet] is an ordered set of distinct characters.
The number of characters is the radix, and the position of a character
is its digit value.
For example, the alphabet "0123456789abcdef" has radix 16 and
the character 'c' has digit value 12.

# Constraints

The magnitude of a BigDecimal is limited to [MaxDigits] decimal digits.
Operations that would produce a longer magnitude return [ErrCapacityExceeded]
instead of growing the number.

Small operands of [BigDecimal.MulSmall] and [BigDecimal.QuoRemSmall] are
limited to [MaxSmall], which keeps every intermediate product within uint64.

# Conversions

The package provides methods for converting numbers:

  - from/to decimal string:
    [Parse], [BigDecimal.String], [BigDecimal.PutDecimal].
  - from/to string in an alphabet:
    [FromBaseString], [ToBaseString], [PutBaseString].
  - from/to uint64 in an alphabet:
    [ParseUint], [FormatUint], [PutUint].
  - from/to uint64 and int64:
    [New], [NewFromInt64], [BigDecimal.Uint64].

When reading a string, each character is looked up in the alphabet exactly,
then by its opposite case, so "FF" and "ff" are both accepted by the
alphabet "0123456789abcdef".
A character that matches neither way is reported with an
[*InvalidCharacterError]; it is never read as zero.

The Put variants write into a caller-supplied buffer and never grow it.
If the result does not fit, they return [ErrBufferTooSmall].

# Operations

Each conversion is carried out in two steps:

 1. The conversion is initially performed using uint64 arithmetic.
    If the value fits, the result is immediately returned.
 2. Otherwise, the conversion is repeated using [BigDecimal] arithmetic:
    repeated division by the radix when formatting, repeated multiplication
    by the radix and addition when parsing.

Both steps produce identical results for values that fit in uint64.

Arithmetic on BigDecimal is limited to what base conversion needs:

  - [BigDecimal.AddMagnitude] adds magnitudes, ignoring signs.
  - [BigDecimal.MulSmall] multiplies by a small non-negative integer.
  - [BigDecimal.QuoRemSmall] divides by a small positive integer.
  - [BigDecimal.Cmp] compares numbers, including their signs.

# Errors

All errors can be identified with [errors.Is]:

  - [ErrInvalidFormat]: malformed decimal string, or empty input.
  - [ErrInvalidCharacter]: a character missing from the alphabet.
  - [ErrInvalidArgument]: radix less than 2, invalid sign, or a negative or
    oversized small operand.
  - [ErrDivisionByZero]: division by zero.
  - [ErrCapacityExceeded]: a result longer than [MaxDigits] digits, or a
    uint64 overflow on the native path.
  - [ErrBufferTooSmall]: a destination buffer too short for the result.

[errors.Is]: https://pkg.go.dev/errors#Is
*/
package baseconv
