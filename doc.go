// Package stylename validates short identifier strings ("style names")
// against a fixed lexical grammar, producing either an immutable value
// object or a structured error.
//
// A style name is a PascalCase token with an optional numeric suffix,
// such as "Chess960". The grammar is strict:
//
//	Name := Upper Letter* Digit*
//
// Exactly one ASCII uppercase letter, then zero or more ASCII letters
// of either case, then zero or more ASCII digits. Nothing else is
// accepted anywhere in the input, and once a digit has been consumed no
// letter may follow.
//
// # Usage
//
//	import "github.com/dmitrymomot/stylename"
//
//	name, err := stylename.Parse("Chess960")
//	if err != nil {
//		// Handle invalid input
//	}
//	fmt.Println(name) // "Chess960"
//
//	// Boolean convenience wrapper
//	stylename.IsValid("Chess960") // true
//	stylename.IsValid("chess")    // false
//
//	// Panicking variant for known-good constants
//	standard := stylename.MustParse("Chess")
//
// Name implements encoding.TextMarshaler and encoding.TextUnmarshaler,
// so it round-trips through JSON and other text encodings with
// validation applied on decode:
//
//	type Config struct {
//		Style stylename.Name `json:"style"`
//	}
//
// # Error Handling
//
// Parse returns one of three sentinel errors, checked in a fixed order:
// ErrEmptyInput for empty input, ErrInputTooLong for input over
// MaxLength bytes, and ErrInvalidFormat for any grammar violation.
// Match them with errors.Is. Parse never panics on malformed input;
// only MustParse escalates a failure into a panic.
//
// # Untrusted Input
//
// The package is designed to sit on an untrusted-input path. Length is
// capped at MaxLength bytes before any byte-level work occurs, and
// validation operates on raw byte values without ever decoding
// multi-byte sequences. Null bytes, control characters, zero-width
// characters, and Unicode lookalikes are all rejected by the same
// single rule: every byte must fall in one of the three accepted ASCII
// ranges. There is no normalization, transliteration, or locale
// awareness.
//
// # Thread Safety
//
// All functions are pure and reentrant. The only shared state is the
// MaxLength constant, so concurrent use requires no coordination.
//
// # Performance
//
// Worst-case cost is a single linear scan bounded by MaxLength bytes,
// giving every call a hard constant upper bound. Parse performs no
// allocations on the success path; the returned Name shares the input
// string's backing bytes.
package stylename
