package protocol

// FieldSep separates the topic and fields of a command line.
const FieldSep = '|'

// MaxFields is a sizing hint for dispatch scratch space; SplitFields itself
// does not truncate.
const MaxFields = 8

// SplitFields appends the pipe-delimited fields of line to dst and returns
// the extended slice. Empty fields are preserved so positions stay stable;
// a line with no separator yields a single field.
func SplitFields(dst [][]byte, line []byte) [][]byte {
	start := 0
	for i := 0; i < len(line); i++ {
		if line[i] == FieldSep {
			dst = append(dst, line[start:i])
			start = i + 1
		}
	}
	return append(dst, line[start:])
}

// EqualFold reports whether b matches s ignoring ASCII case.
func EqualFold(b []byte, s string) bool {
	if len(b) != len(s) {
		return false
	}
	for i := 0; i < len(b); i++ {
		if toUpper(b[i]) != toUpper(s[i]) {
			return false
		}
	}
	return true
}

// ParseUint parses b as an unsigned decimal integer. It rejects empty input,
// non-digit bytes and values that do not fit in ten digits.
func ParseUint(b []byte) (uint32, bool) {
	if len(b) == 0 || len(b) > 10 {
		return 0, false
	}
	var v uint64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + uint64(c-'0')
	}
	if v > 0xFFFFFFFF {
		return 0, false
	}
	return uint32(v), true
}

// toUpper converts a byte to ASCII uppercase.
func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
