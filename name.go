package stylename

// Name is a validated style name. Its byte content is guaranteed to
// satisfy the grammar enforced by Parse, and parsing is idempotent:
// re-parsing a Name's text yields the same Name.
//
// The zero value is empty and not valid; obtain a Name through Parse,
// MustParse, or text unmarshaling.
type Name string

// String returns the validated text.
func (n Name) String() string {
	return string(n)
}

// GoString returns a Go-syntax representation, so %#v prints
// stylename.Name("Chess960") rather than a bare quoted string.
func (n Name) GoString() string {
	return `stylename.Name("` + string(n) + `")`
}

// IsZero reports whether n is the zero value.
func (n Name) IsZero() bool {
	return n == ""
}

// MarshalText implements encoding.TextMarshaler.
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Incoming text
// passes through Parse, so a Name decoded from JSON, XML, or any other
// text-based encoding carries the same guarantees as one returned by
// Parse.
func (n *Name) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
