package baseconv

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

var (
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidCharacter = errors.New("invalid character")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrBufferTooSmall   = errors.New("buffer too small")
)

// InvalidCharacterError reports a character that does not belong to an
// alphabet, even after the opposite-case retry.
// Errors of this type match [ErrInvalidCharacter] with [errors.Is].
type InvalidCharacterError struct {
	Char rune // offending character
	Pos  int  // rune index within the input
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Pos)
}

// SafeFormatError implements [errors.SafeFormatter].
// The position is safe for reporting, the character is user data.
func (e *InvalidCharacterError) SafeFormatError(p errors.Printer) error {
	p.Printf("invalid character %q at position %d", e.Char, redact.Safe(e.Pos))
	return nil
}

func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

func invalidCharacter(c rune, pos int) error {
	return errors.Mark(&InvalidCharacterError{Char: c, Pos: pos}, ErrInvalidCharacter)
}
