package registry

const (
	digits2       = "01"
	digits8       = "01234567"
	digits10      = "0123456789"
	digits16      = "0123456789abcdef"
	digits16Input = "0123456789abcdefABCDEF"
	digits26      = "abcdefghijklmnopqrstuvwxyz"
	digits32      = "0123456789ABCDEFGHJKMNPQRSTVWXYZ" // Crockford
	digits36      = "0123456789abcdefghijklmnopqrstuvwxyz"
	digits36Input = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits52      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits58      = "123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ" // Bitcoin
	digits62      = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits64      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	digits64URL   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

// builtin holds the default entries. It is built once and never modified.
var builtin = []Entry{
	mustNewEntry(2, "Base 2", "", digits2, FoldNone),
	mustNewEntry(8, "Base 8", "", digits8, FoldNone),
	mustNewEntry(10, "Base 10", "", digits10, FoldNone),
	mustNewEntry(16, "Base 16", digits16Input, digits16, FoldLower),
	mustNewEntry(26, "Base 26 (a-z)", "", digits26, FoldNone),
	mustNewEntry(32, "Base 32 (Crockford)", "", digits32, FoldNone),
	mustNewEntry(36, "Base 36", digits36Input, digits36, FoldLower),
	mustNewEntry(52, "Base 52 (a-zA-Z)", "", digits52, FoldNone),
	mustNewEntry(58, "Base 58 (Bitcoin)", "", digits58, FoldNone),
	mustNewEntry(62, "Base 62 (0-9a-zA-Z)", "", digits62, FoldNone),
	mustNewEntry(64, "Base 64 (Standard)", "", digits64, FoldNone),
}

// Default returns a registry of the built-in alphabets for
// bases 2, 8, 10, 16, 26, 32, 36, 52, 58, 62 and 64.
func Default() *Registry {
	r, err := New(builtin...)
	if err != nil {
		panic(err)
	}
	return r
}

// URLSafe64 returns the base 64 entry with the URL-safe alphabet,
// for use with [Registry.With].
func URLSafe64() Entry {
	return mustNewEntry(64, "Base 64 (URL)", "", digits64URL, FoldNone)
}
