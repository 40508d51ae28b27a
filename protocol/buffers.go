package protocol

// OutputMax bounds the outbound scratch buffer. It comfortably holds a full
// poll's worth of event lines plus a reply.
const OutputMax = 256

// OutputBuffer is where the control core serializes outbound lines.
type OutputBuffer interface {
	// Output appends data to the buffer.
	Output(data []byte)
}

// ScratchOutput implements OutputBuffer on a fixed-size scratch buffer.
// A write that does not fit is dropped in full, so the buffer never holds
// a truncated line. The transport drains and resets the buffer every loop
// iteration, so drops only happen on a stalled link.
type ScratchOutput struct {
	buf [OutputMax]byte
	pos int
}

// NewScratchOutput creates an empty ScratchOutput.
func NewScratchOutput() *ScratchOutput {
	return &ScratchOutput{pos: 0}
}

func (s *ScratchOutput) Output(data []byte) {
	if len(data) > len(s.buf)-s.pos {
		return
	}
	s.pos += copy(s.buf[s.pos:], data)
}

// Result returns the accumulated output data.
func (s *ScratchOutput) Result() []byte {
	return s.buf[:s.pos]
}

// Len returns the number of buffered bytes.
func (s *ScratchOutput) Len() int { return s.pos }

// Reset clears the buffer.
func (s *ScratchOutput) Reset() {
	s.pos = 0
}

// FifoBuffer is a circular byte buffer between the serial receive path and
// the poll loop.
type FifoBuffer struct {
	buf   []byte
	read  int
	write int
	size  int
}

// NewFifoBuffer creates a new FifoBuffer with the specified capacity.
// One slot stays reserved, so it stores capacity-1 bytes.
func NewFifoBuffer(capacity int) *FifoBuffer {
	return &FifoBuffer{
		buf:  make([]byte, capacity),
		size: capacity,
	}
}

// Write appends data and returns how many bytes fit.
func (f *FifoBuffer) Write(data []byte) int {
	written := 0
	for _, b := range data {
		nextWrite := (f.write + 1) % f.size
		if nextWrite == f.read {
			// Buffer full
			break
		}
		f.buf[f.write] = b
		f.write = nextWrite
		written++
	}
	return written
}

// Read reads up to len(data) bytes.
func (f *FifoBuffer) Read(data []byte) int {
	read := 0
	for i := range data {
		if f.read == f.write {
			// Buffer empty
			break
		}
		data[i] = f.buf[f.read]
		f.read = (f.read + 1) % f.size
		read++
	}
	return read
}

// ReadByte pops one byte; ok is false when the buffer is empty.
func (f *FifoBuffer) ReadByte() (byte, bool) {
	if f.read == f.write {
		return 0, false
	}
	b := f.buf[f.read]
	f.read = (f.read + 1) % f.size
	return b, true
}

// Available returns the number of bytes available for reading.
func (f *FifoBuffer) Available() int {
	if f.write >= f.read {
		return f.write - f.read
	}
	return f.size - f.read + f.write
}

// Free returns the number of bytes available for writing.
func (f *FifoBuffer) Free() int {
	return f.size - f.Available() - 1
}

// IsEmpty returns true if the buffer is empty.
func (f *FifoBuffer) IsEmpty() bool {
	return f.read == f.write
}

// Reset clears the buffer.
func (f *FifoBuffer) Reset() {
	f.read = 0
	f.write = 0
}
