// Package registry maps base numbers to the alphabets used to read and write
// numbers in that base.
//
// Each base has an input alphabet, the characters accepted from users, and an
// output alphabet, the characters used for conversion and printing.
// The input alphabet may be a superset of the output alphabet: base 16
// accepts "0-9a-fA-F" and prints "0-9a-f".
package registry

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/govalues/baseconv"
)

const (
	MinBase = 2
	MaxBase = 64
)

// Fold is the case normalization applied to validated input before conversion.
type Fold int8

const (
	FoldNone Fold = iota
	FoldLower
	FoldUpper
)

func (f Fold) String() string {
	switch f {
	case FoldNone:
		return "none"
	case FoldLower:
		return "lower"
	case FoldUpper:
		return "upper"
	}
	return "invalid"
}

func parseFold(s string) (Fold, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return FoldNone, nil
	case "lower":
		return FoldLower, nil
	case "upper":
		return FoldUpper, nil
	}
	return FoldNone, errors.Wrapf(ErrInvalidConfig, "unknown fold %q", s)
}

// Entry describes how numbers in one base are read and written.
type Entry struct {
	Base   int
	Name   string
	Input  baseconv.Alphabet // characters accepted by Validate
	Output baseconv.Alphabet // digits used for conversion
	Fold   Fold
}

// NewEntry builds an entry from alphabet strings.
// An empty input string means the input alphabet equals the output alphabet.
func NewEntry(base int, name, input, output string, fold Fold) (Entry, error) {
	out, err := baseconv.NewAlphabet(output)
	if err != nil {
		return Entry{}, errors.Wrapf(err, "base %d output alphabet", redact.Safe(base))
	}
	in := out
	if input != "" {
		in, err = baseconv.NewAlphabet(input)
		if err != nil {
			return Entry{}, errors.Wrapf(err, "base %d input alphabet", redact.Safe(base))
		}
	}
	e := Entry{Base: base, Name: name, Input: in, Output: out, Fold: fold}
	if err := e.check(); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func mustNewEntry(base int, name, input, output string, fold Fold) Entry {
	e, err := NewEntry(base, name, input, output, fold)
	if err != nil {
		panic(err)
	}
	return e
}

func (e Entry) check() error {
	switch {
	case e.Base < MinBase || e.Base > MaxBase:
		return errors.Wrapf(baseconv.ErrInvalidArgument, "base %d not in [%d, %d]", redact.Safe(e.Base), redact.Safe(MinBase), redact.Safe(MaxBase))
	case e.Output.Radix() != e.Base:
		return errors.Wrapf(ErrInvalidConfig, "base %d output alphabet has %d characters", redact.Safe(e.Base), redact.Safe(e.Output.Radix()))
	case e.Fold < FoldNone || e.Fold > FoldUpper:
		return errors.Wrapf(ErrInvalidConfig, "base %d fold %d", redact.Safe(e.Base), redact.Safe(int8(e.Fold)))
	}
	for _, r := range e.Output.String() {
		if !e.Input.Contains(r) {
			return errors.Wrapf(ErrInvalidConfig, "base %d input alphabet lacks output character %q", redact.Safe(e.Base), r)
		}
	}
	return nil
}

// Validate checks that s is non-empty and every character of s is in the
// input alphabet.
// The check is exact; case folding happens later, in Normalize.
func (e Entry) Validate(s string) error {
	if s == "" {
		return errors.Wrap(baseconv.ErrInvalidFormat, "empty string")
	}
	pos := 0
	for _, r := range s {
		if !e.Input.Contains(r) {
			return errors.WithHintf(
				&baseconv.InvalidCharacterError{Char: r, Pos: pos},
				"%s accepts: %s", e.Name, e.Input,
			)
		}
		pos++
	}
	return nil
}

// Normalize applies the entry's case folding to s.
func (e Entry) Normalize(s string) string {
	switch e.Fold {
	case FoldLower:
		return strings.ToLower(s)
	case FoldUpper:
		return strings.ToUpper(s)
	}
	return s
}

// Decode validates, normalizes and converts s.
func (e Entry) Decode(s string) (baseconv.BigDecimal, error) {
	if err := e.Validate(s); err != nil {
		return baseconv.BigDecimal{}, err
	}
	return baseconv.FromBaseString(e.Normalize(s), e.Output)
}

// Encode returns the representation of |d| in the output alphabet.
func (e Entry) Encode(d baseconv.BigDecimal) (string, error) {
	return baseconv.ToBaseString(d, e.Output)
}

// Registry is a read-only set of entries keyed by base number.
// It is safe for concurrent use by multiple goroutines.
type Registry struct {
	entries map[int]Entry
}

// New returns a registry holding the given entries.
// Later entries replace earlier ones with the same base.
func New(entries ...Entry) (*Registry, error) {
	r := &Registry{entries: make(map[int]Entry, len(entries))}
	for _, e := range entries {
		if err := e.check(); err != nil {
			return nil, err
		}
		r.entries[e.Base] = e
	}
	return r, nil
}

// With returns a new registry with entries added to those of r.
func (r *Registry) With(entries ...Entry) (*Registry, error) {
	all := make([]Entry, 0, len(r.entries)+len(entries))
	for _, b := range r.Bases() {
		all = append(all, r.entries[b])
	}
	return New(append(all, entries...)...)
}

// Lookup returns the entry for a base number.
func (r *Registry) Lookup(base int) (Entry, error) {
	if base < MinBase || base > MaxBase {
		return Entry{}, errors.Wrapf(baseconv.ErrInvalidArgument, "base %d not in [%d, %d]", redact.Safe(base), redact.Safe(MinBase), redact.Safe(MaxBase))
	}
	e, ok := r.entries[base]
	if !ok {
		return Entry{}, errors.Wrapf(ErrUnknownBase, "base %d", redact.Safe(base))
	}
	return e, nil
}

// Bases returns the registered base numbers in ascending order.
func (r *Registry) Bases() []int {
	bases := make([]int, 0, len(r.entries))
	for b := range r.entries {
		bases = append(bases, b)
	}
	sort.Ints(bases)
	return bases
}
