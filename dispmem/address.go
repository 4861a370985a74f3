package dispmem

// Display memory geometry.
const (
	Rows    = 16
	Columns = 30
	Size    = Rows * Columns

	// PageSize is the number of characters addressed by the low address
	// byte. The high address byte selects the page.
	PageSize = 0x100
)

// Address is a linear display memory address, row-major.
type Address uint16

// AddressOf returns the address of the character at row and column.
func AddressOf(row, column int) Address {
	return Address(row*Columns + column)
}

// Row returns the display row of the address.
func (a Address) Row() int {
	return int(a) / Columns
}

// Column returns the display column of the address.
func (a Address) Column() int {
	return int(a) % Columns
}

// Page returns the value of the high address byte.
func (a Address) Page() byte {
	return byte(a >> 8)
}

// Offset returns the value of the low address byte.
func (a Address) Offset() byte {
	return byte(a)
}

// Cursor is the progress of one logical write. It is created by
// Encoder.Start and advanced by each Encoder.Encode call that produces a
// chunk; it never moves backwards and never exceeds Size.
type Cursor struct {
	Address Address
	// Done is set once every character of the request has been encoded.
	Done bool
}

// Screen is a full display of characters. Zero cells are transparent.
type Screen [Rows][Columns]byte

// Set writes b at row and column. Out of range positions are ignored.
func (s *Screen) Set(row, column int, b byte) {
	if row < 0 || row >= Rows || column < 0 || column >= Columns {
		return
	}
	s[row][column] = b
}

// At returns the character at row and column, or 0 when out of range.
func (s *Screen) At(row, column int) byte {
	if row < 0 || row >= Rows || column < 0 || column >= Columns {
		return 0
	}
	return s[row][column]
}

// lines returns the rows of the screen as slices sharing its memory.
func (s *Screen) lines() [][]byte {
	l := make([][]byte, Rows)
	for i := range s {
		l[i] = s[i][:]
	}
	return l
}
