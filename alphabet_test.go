package baseconv

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cockroachdb/redact"
)

var testAlphabets = []struct {
	chars string
	radix int
	input string
	want  []int
}{
	{
		"01",
		2,
		"1001",
		[]int{1, 0, 0, 1},
	},
	{
		"0123456789abcdef",
		16,
		"c0ffee",
		[]int{12, 0, 15, 15, 14, 14},
	},
	{
		"123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ",
		58,
		"1zZ",
		[]int{0, 33, 57},
	},
	{
		"αβγδ⌘",
		5,
		"⌘αδ",
		[]int{4, 0, 3},
	},
}

func TestAlphabet(t *testing.T) {
	for idx, tt := range testAlphabets {
		t.Run(fmt.Sprintf("Sample%d", idx+1), func(t *testing.T) {
			a, err := NewAlphabet(tt.chars)
			if err != nil {
				t.Fatalf("NewAlphabet(%q) failed: %v", tt.chars, err)
			}
			if a.Radix() != tt.radix {
				t.Fatalf("NewAlphabet(%q).Radix() = %v, want %v", tt.chars, a.Radix(), tt.radix)
			}
			if a.String() != tt.chars {
				t.Errorf("NewAlphabet(%q).String() = %q", tt.chars, a.String())
			}
			i := 0
			for _, r := range tt.input {
				v, ok := a.Digit(r)
				if !ok || v != tt.want[i] {
					t.Errorf("Digit(%q) = [%v %v], want [%v true]", r, v, ok, tt.want[i])
				}
				if got := a.Rune(v); got != r {
					t.Errorf("Rune(%v) = %q, want %q", v, got, r)
				}
				i++
			}
		})
	}
}

func TestNewAlphabet(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		for _, s := range []string{"", "0", "01", "ab", "⌘⌙"} {
			a, err := NewAlphabet(s)
			if err != nil {
				t.Errorf("NewAlphabet(%q) failed: %v", s, err)
				continue
			}
			if a.String() != s {
				t.Errorf("NewAlphabet(%q).String() = %q", s, a.String())
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"repeat 1":    "00",
			"repeat 2":    "0120",
			"invalid utf": "01\xff",
		}
		for name, s := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewAlphabet(s)
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("NewAlphabet(%q) did not fail with ErrInvalidArgument: %v", s, err)
				}
			})
		}
	})
}

func TestMustNewAlphabet(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustNewAlphabet(\"aa\") did not panic")
		}
	}()
	MustNewAlphabet("aa")
}

func TestAlphabet_lookup(t *testing.T) {
	tests := []struct {
		chars  string
		r      rune
		want   int
		wantOk bool
	}{
		{"0123456789abcdef", 'a', 10, true},
		{"0123456789abcdef", 'A', 10, true},
		{"0123456789ABCDEF", 'f', 15, true},
		{"0123456789abcdef", 'g', 0, false},
		{"0123456789abcdef", 'G', 0, false},
		{"0123456789abcdef", '-', 0, false},
		// exact match wins over the opposite case
		{"aA", 'a', 0, true},
		{"aA", 'A', 1, true},
		{"αβ", 'Β', 1, true},
		{"01", '⌘', 0, false},
	}
	for _, tt := range tests {
		a := MustNewAlphabet(tt.chars)
		got, ok := a.lookup(tt.r)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("%q.lookup(%q) = [%v %v], want [%v %v]", a, tt.r, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestAlphabet_validRadix(t *testing.T) {
	for _, s := range []string{"", "0"} {
		a := MustNewAlphabet(s)
		if err := a.validRadix(); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%q.validRadix() = %v, want %v", s, err, ErrInvalidArgument)
		}
	}
	if err := (Alphabet{}).validRadix(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Alphabet{}.validRadix() = %v, want %v", err, ErrInvalidArgument)
	}
	if err := MustNewAlphabet("01").validRadix(); err != nil {
		t.Errorf("\"01\".validRadix() = %v, want nil", err)
	}
}

func TestAlphabet_SafeFormat(t *testing.T) {
	a := MustNewAlphabet("01")
	if got := redact.Sprint(a).Redact(); got != "01" {
		t.Errorf("redact.Sprint(%q).Redact() = %q, want %q", a, got, "01")
	}
	c, err := NewConverter(a, MustNewAlphabet("0123456789abcdef"))
	if err != nil {
		t.Fatalf("NewConverter failed: %v", err)
	}
	if got := redact.Sprint(c).Redact(); got != "base 2 -> base 16" {
		t.Errorf("redact.Sprint(converter).Redact() = %q, want %q", got, "base 2 -> base 16")
	}
}
