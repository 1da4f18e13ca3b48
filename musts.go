package baseconv

import "fmt"

// MustNew is like [New] but panics if the sign is invalid.
func MustNew(value uint64, sign Sign) BigDecimal {
	d, err := New(value, sign)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", value, sign, err))
	}
	return d
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding numbers.
func MustParse(s string) BigDecimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// MustFromBaseString is like [FromBaseString] but panics if the string cannot
// be converted.
func MustFromBaseString(s string, a Alphabet) BigDecimal {
	d, err := FromBaseString(s, a)
	if err != nil {
		panic(fmt.Sprintf("MustFromBaseString(%q, %q) failed: %v", s, a, err))
	}
	return d
}
