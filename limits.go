package stylename

// MaxLength is the maximum accepted input length in bytes.
//
// The limit is measured in bytes rather than characters so that
// multi-byte encoded text with a deceptively short character count is
// still capped before any byte-level work happens. It is a
// compile-time constant: 32 bytes is generous for realistic style
// names and small enough that length-based resource exhaustion is a
// non-issue.
const MaxLength = 32

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
