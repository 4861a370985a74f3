package dispmem

import (
	"errors"
	"fmt"

	"periph.io/x/devices/v3/max7456/registers"
)

// Sentinel is the data byte that ends an auto-increment run on the device.
const Sentinel = 0xFF

// Minimum output buffer sizes.
const (
	// MinBufferSize holds the mode and page pairs followed by the address
	// and data pairs of one character.
	MinBufferSize = 8
	// MinIncrementalBufferSize holds the mode and address header, one data
	// pair and the sentinel pair.
	MinIncrementalBufferSize = 10
)

var (
	// ErrShortBuffer is returned when the output buffer cannot hold the
	// smallest possible chunk.
	ErrShortBuffer = errors.New("dispmem: output buffer too small")
	// ErrSentinel is returned by an incremental encoder when the last data
	// byte of the chunk would be 0xFF, which the device cannot tell apart
	// from the end of the run. Nothing was encoded; retry with a different
	// buffer size.
	ErrSentinel = errors.New("dispmem: chunk ends with the 0xFF sentinel")
)

type kind uint8

const (
	incremental kind = iota
	lines
	sparse
)

func (k kind) String() string {
	switch k {
	case incremental:
		return "incremental"
	case lines:
		return "lines"
	default:
		return "sparse"
	}
}

// Encoder produces display memory transactions for one write request. It
// does not hold any progress itself; see Cursor.
type Encoder struct {
	kind kind
	mode Mode

	// incremental
	data  []byte
	start Address

	// lines and sparse
	lines [][]byte
	width int     // columns considered in each line
	limit Address // one past the last address to visit
}

// NewIncremental returns an encoder writing data from row and column
// onwards using auto-increment. Zero bytes are written like any other.
func NewIncremental(data []byte, row, column int, attrs Attributes) *Encoder {
	start := AddressOf(row, column)
	if n := Size - int(start); n < len(data) {
		if n < 0 {
			n = 0
		}
		data = data[:n]
	}
	return &Encoder{
		kind:  incremental,
		mode:  Mode{Operation: registers.Mode16Bit, Attributes: attrs, AutoIncrement: true},
		data:  data,
		start: start,
	}
}

// NewLines returns an encoder writing every non-zero byte of lines, line i
// going to display row i. The width of the first line sets how many columns
// are written; it may be narrower than the display.
func NewLines(l [][]byte, attrs Attributes) *Encoder {
	return newGrid(lines, l, attrs)
}

// NewSparse returns an encoder writing every non-zero character of s.
func NewSparse(s *Screen, attrs Attributes) *Encoder {
	return newGrid(sparse, s.lines(), attrs)
}

func newGrid(k kind, l [][]byte, attrs Attributes) *Encoder {
	if len(l) > Rows {
		l = l[:Rows]
	}
	e := &Encoder{
		kind:  k,
		mode:  Mode{Operation: registers.Mode16Bit, Attributes: attrs},
		lines: l,
	}
	if len(l) > 0 {
		e.width = min(len(l[0]), Columns)
		e.limit = Address((len(l)-1)*Columns + e.width)
	}
	return e
}

// Start returns the cursor to begin encoding with.
func (e *Encoder) Start() Cursor {
	if e.kind == incremental {
		return Cursor{Address: e.start, Done: len(e.data) == 0}
	}
	return Cursor{Done: e.limit == 0}
}

// Remaining returns how many bytes of an incremental write are left after
// c. For line and screen writes it returns the number of addresses left to
// visit.
func (e *Encoder) Remaining(c Cursor) int {
	if e.kind == incremental {
		return len(e.data) - int(c.Address-e.start)
	}
	if c.Address >= e.limit {
		return 0
	}
	return int(e.limit - c.Address)
}

func (e *Encoder) String() string {
	return fmt.Sprintf("dispmem.Encoder{%s}", e.kind)
}

// Encode writes the next chunk into buf and advances c. It returns the part
// of buf used, or nil once there is nothing left to write, in which case
// c.Done is set.
//
// For Lines and Sparse encoders, a 0x00 byte is stored right after the
// chunk when buf has room for it; Revert uses it to find the end of the
// chunk.
func (e *Encoder) Encode(c *Cursor, buf []byte) ([]byte, error) {
	if e.kind == incremental {
		return e.encodeRun(c, buf)
	}
	return e.encodeGrid(c, buf)
}

func (e *Encoder) encodeRun(c *Cursor, buf []byte) ([]byte, error) {
	if len(buf) < MinIncrementalBufferSize {
		return nil, fmt.Errorf("%w: %d bytes, need %d", ErrShortBuffer, len(buf), MinIncrementalBufferSize)
	}
	index := int(c.Address - e.start)
	if c.Done || index >= len(e.data) {
		c.Done = true
		return nil, nil
	}

	buf[0], buf[1] = byte(registers.DisplayMemoryMode), e.mode.Byte()
	buf[2], buf[3] = byte(registers.DisplayMemoryAddressHigh), c.Address.Page()
	buf[4], buf[5] = byte(registers.DisplayMemoryAddressLow), c.Address.Offset()

	n, written := 6, 0
	var last byte
	for _, b := range e.data[index:] {
		buf[n], buf[n+1] = byte(registers.DisplayMemoryDataIn), b
		last = b
		written++
		n += 2
		// Keep room for the sentinel pair.
		if n+4 > len(buf) {
			break
		}
	}
	if last == Sentinel {
		return nil, ErrSentinel
	}
	buf[n], buf[n+1] = byte(registers.DisplayMemoryDataIn), Sentinel
	n += 2

	c.Address += Address(written)
	c.Done = index+written == len(e.data)
	return buf[:n], nil
}

func (e *Encoder) encodeGrid(c *Cursor, buf []byte) ([]byte, error) {
	if len(buf) < MinBufferSize {
		return nil, fmt.Errorf("%w: %d bytes, need %d", ErrShortBuffer, len(buf), MinBufferSize)
	}
	if c.Done {
		return nil, nil
	}

	buf[0], buf[1] = byte(registers.DisplayMemoryMode), e.mode.Byte()
	n := 2
	full := false
	if c.Address < PageSize {
		buf[2], buf[3] = byte(registers.DisplayMemoryAddressHigh), 0
		if m := e.dump(c, PageSize, buf[4:]); m > 0 {
			n = 4 + m
			// A page switch needs room for its pair and one more cell.
			full = n+6 > len(buf)
		}
	}
	if !full {
		// Overwrites the unused page 0 pair when page 0 had nothing to send.
		buf[n], buf[n+1] = byte(registers.DisplayMemoryAddressHigh), 1
		if m := e.dump(c, Size, buf[n+2:]); m > 0 {
			n += 2 + m
		}
	}

	if c.Address >= e.limit {
		c.Done = true
	}
	if n == 2 {
		c.Done = true
		return nil, nil
	}
	if n < len(buf) {
		buf[n] = 0
	}
	return buf[:n], nil
}

// dump writes DMAL/DMDI pairs for the non-zero cells from c up to limit,
// stopping once dst cannot hold another character and a trailing byte.
// It returns the number of bytes written.
func (e *Encoder) dump(c *Cursor, limit Address, dst []byte) int {
	limit = min(limit, e.limit)
	off := 0
	for c.Address < limit {
		a := c.Address
		c.Address++
		b := e.cell(a)
		if b == 0 {
			continue
		}
		dst[off], dst[off+1] = byte(registers.DisplayMemoryAddressLow), a.Offset()
		dst[off+2], dst[off+3] = byte(registers.DisplayMemoryDataIn), b
		off += 4
		if off+4 >= len(dst) {
			break
		}
	}
	return off
}

// cell returns the byte to draw at a, 0 for padding columns and missing
// cells of short lines.
func (e *Encoder) cell(a Address) byte {
	column := a.Column()
	if column >= e.width {
		return 0
	}
	line := e.lines[a.Row()]
	if column >= len(line) {
		return 0
	}
	return line[column]
}
