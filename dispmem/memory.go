package dispmem

import (
	"fmt"

	"periph.io/x/devices/v3/max7456/registers"
)

// Memory models the display memory of the device. Apply executes
// transactions the same way the MAX7456 does, which makes it possible to
// check or preview what a series of chunks draws without hardware.
//
// Only the character byte of 16-bit mode writes is kept.
type Memory struct {
	Cells Screen

	mode    Mode
	address Address
}

// Apply executes the (register, value) pairs of chunk in order. It stops at
// the first pair it does not understand.
func (m *Memory) Apply(chunk []byte) error {
	if len(chunk)%2 != 0 {
		return fmt.Errorf("dispmem: odd transaction length %d", len(chunk))
	}
	for i := 0; i < len(chunk); i += 2 {
		reg, v := registers.Register(chunk[i]), chunk[i+1]
		switch reg {
		case registers.DisplayMemoryMode:
			m.mode = ParseMode(v)
			if m.mode.Clear {
				m.Cells = Screen{}
				m.mode.Clear = false
				m.mode.AutoIncrement = false
			}
		case registers.DisplayMemoryAddressHigh:
			m.address = Address(registers.DMAHAddress8.Get(v))<<8 | m.address&0xFF
		case registers.DisplayMemoryAddressLow:
			m.address = m.address&0x100 | Address(v)
		case registers.DisplayMemoryDataIn:
			if m.mode.AutoIncrement && v == Sentinel {
				m.mode.AutoIncrement = false
				continue
			}
			if m.address < Size {
				m.Cells[m.address.Row()][m.address.Column()] = v
			}
			if m.mode.AutoIncrement {
				m.address++
			}
		default:
			return fmt.Errorf("dispmem: unexpected register %v at byte %d", reg, i)
		}
	}
	return nil
}
