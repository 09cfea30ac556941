package stylename

// Parse validates s against the style name grammar and returns it as a
// Name. A valid name is one ASCII uppercase letter, followed by zero or
// more ASCII letters of either case, followed by zero or more ASCII
// digits. Nothing else is permitted anywhere: no whitespace, no
// punctuation, no control bytes, no bytes outside ASCII, and once a
// digit appears no letter may follow.
//
// Checks run cheapest first. Length bounds are verified before any byte
// is inspected, so oversized untrusted input is rejected in O(1), and
// the scan itself fails fast on the first offending byte. On success
// the returned Name is byte-identical to s; Parse never trims, case
// folds, or otherwise transforms its input.
//
// Validation operates on raw byte values and never decodes multi-byte
// sequences. Every byte of an encoded non-ASCII character falls outside
// the three accepted ranges, so homoglyph and invisible-character
// inputs are rejected structurally rather than filtered.
func Parse(s string) (Name, error) {
	if len(s) == 0 {
		return "", ErrEmptyInput
	}
	if len(s) > MaxLength {
		return "", ErrInputTooLong
	}
	if !isUpper(s[0]) {
		return "", ErrInvalidFormat
	}

	inDigits := false
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case isDigit(c):
			inDigits = true
		case !inDigits && (isUpper(c) || isLower(c)):
			// still in the letter run
		default:
			return "", ErrInvalidFormat
		}
	}

	return Name(s), nil
}

// MustParse is like Parse but panics on invalid input. Intended for
// package-level values and test fixtures known to be valid.
func MustParse(s string) Name {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// IsValid reports whether s parses as a style name.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// ParseValue parses a dynamically typed value. It accepts string,
// []byte, and Name; any other type, including nil, fails with
// ErrInvalidFormat before any content is examined.
func ParseValue(v any) (Name, error) {
	switch s := v.(type) {
	case string:
		return Parse(s)
	case []byte:
		return Parse(string(s))
	case Name:
		return Parse(string(s))
	default:
		return "", ErrInvalidFormat
	}
}

// IsValidValue reports whether ParseValue would succeed. It is total:
// it returns false rather than panicking for any dynamic type.
func IsValidValue(v any) bool {
	_, err := ParseValue(v)
	return err == nil
}
