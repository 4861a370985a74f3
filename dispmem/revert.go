package dispmem

import (
	"errors"

	"periph.io/x/devices/v3/max7456/registers"
)

// ErrMalformed is returned by Revert for input that is not a chunk produced
// by a Lines or Sparse encoder.
var ErrMalformed = errors.New("dispmem: malformed transaction")

// Revert turns a chunk produced by a Lines or Sparse encoder into the chunk
// that erases the same characters: every DMDI value is replaced by 0 and
// everything else is kept.
//
// buf may extend past the chunk as long as the chunk is followed by the 0x00
// byte the encoder stores after it; the result stops there. Revert works in
// place and returns the reverted part of buf. On error buf is left untouched.
func Revert(buf []byte) ([]byte, error) {
	n, err := chunkLen(buf)
	if err != nil {
		return nil, err
	}
	for i := 2; i < n; i += 2 {
		if registers.Register(buf[i]) == registers.DisplayMemoryDataIn {
			buf[i+1] = 0
		}
	}
	return buf[:n], nil
}

// chunkLen validates buf and returns the length of the chunk it starts with.
func chunkLen(buf []byte) (int, error) {
	if len(buf) < 2 || registers.Register(buf[0]) != registers.DisplayMemoryMode {
		return 0, ErrMalformed
	}
	if ParseMode(buf[1]).AutoIncrement {
		// Incremental runs have no per character addresses to keep.
		return 0, ErrMalformed
	}
	for i := 2; i < len(buf); i += 2 {
		switch registers.Register(buf[i]) {
		case 0:
			return i, nil
		case registers.DisplayMemoryAddressHigh, registers.DisplayMemoryAddressLow, registers.DisplayMemoryDataIn:
			if i+1 == len(buf) {
				return 0, ErrMalformed
			}
		default:
			return 0, ErrMalformed
		}
	}
	return len(buf), nil
}
