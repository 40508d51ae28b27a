package protocol

// LineMax is the longest accepted command line, terminator excluded.
const LineMax = 64

// Line terminator bytes accepted on the wire. Either one ends a line, so
// CRLF pairs and blank lines cost nothing.
const (
	TermCR = '\r'
	TermLF = '\n'
)

// LineReader accumulates inbound serial bytes into complete command lines.
// A line that outgrows the buffer is lost in full: the reader drops bytes
// until the next terminator and resynchronizes silently. Partial lines are
// never handed out.
type LineReader struct {
	buf        [LineMax]byte
	n          int
	discarding bool
}

// Feed consumes one inbound byte. It returns a complete line and true when
// the byte terminates a non-empty line. The returned slice aliases the
// reader's buffer and is only valid until the next call.
func (r *LineReader) Feed(b byte) ([]byte, bool) {
	if b == TermCR || b == TermLF {
		r.discarding = false
		if r.n == 0 {
			return nil, false
		}
		line := r.buf[:r.n]
		r.n = 0
		return line, true
	}
	if r.discarding {
		return nil, false
	}
	if r.n == len(r.buf) {
		// Overflow: the whole line is discarded, this byte included.
		r.n = 0
		r.discarding = true
		return nil, false
	}
	r.buf[r.n] = b
	r.n++
	return nil, false
}

// Pending returns the number of buffered bytes of the current partial line.
func (r *LineReader) Pending() int { return r.n }

// Reset drops any partial line and leaves discard mode.
func (r *LineReader) Reset() {
	r.n = 0
	r.discarding = false
}
