// Package registers describes the MAX7456 register map.
//
// Every register is addressed by a single byte on the SPI bus. Writes send
// the address followed by the value; reads send the read address (the write
// address with bit 7 set) and clock the value back in the next byte.
//
// Mode registers are split into bit fields. A Field knows its position and
// width and is used to pack or extract a value from a raw register byte:
//
//	v := registers.VM0Standard.Set(0, byte(registers.PAL))
//	v = registers.VM0EnableDisplay.Set(v, 1)
package registers

// Register is the bus address of a MAX7456 register.
type Register byte

const (
	VideoMode0                 Register = 0x00
	VideoMode1                 Register = 0x01
	HorizontalOffset           Register = 0x02
	VerticalOffset             Register = 0x03
	DisplayMemoryMode          Register = 0x04
	DisplayMemoryAddressHigh   Register = 0x05
	DisplayMemoryAddressLow    Register = 0x06
	DisplayMemoryDataIn        Register = 0x07
	CharacterMemoryMode        Register = 0x08
	CharacterMemoryAddressHigh Register = 0x09
	CharacterMemoryAddressLow  Register = 0x0A // bits 0-5
	CharacterMemoryDataIn      Register = 0x0B
	OSDInsertionMux            Register = 0x0C
	Row0Brightness             Register = 0x10
	Status                     Register = 0xA0 // read only
	DisplayMemoryDataOut       Register = 0xB0 // read only
	CharacterMemoryDataOut     Register = 0xC0 // read only
)

// ReadAddress returns the address to send on the bus to read the register.
func (r Register) ReadAddress() byte {
	return byte(r) | 0x80
}

func (r Register) String() string {
	if s, ok := names[r]; ok {
		return s
	}
	return "Register(0x" + hex(byte(r)) + ")"
}

var names = map[Register]string{
	VideoMode0:                 "VM0",
	VideoMode1:                 "VM1",
	HorizontalOffset:           "HOS",
	VerticalOffset:             "VOS",
	DisplayMemoryMode:          "DMM",
	DisplayMemoryAddressHigh:   "DMAH",
	DisplayMemoryAddressLow:    "DMAL",
	DisplayMemoryDataIn:        "DMDI",
	CharacterMemoryMode:        "CMM",
	CharacterMemoryAddressHigh: "CMAH",
	CharacterMemoryAddressLow:  "CMAL",
	CharacterMemoryDataIn:      "CMDI",
	OSDInsertionMux:            "OSDM",
	Row0Brightness:             "RB0",
	Status:                     "STAT",
	DisplayMemoryDataOut:       "DMDO",
	CharacterMemoryDataOut:     "CMDO",
}

func hex(b byte) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{digits[b>>4], digits[b&0x0F]})
}

// RowBrightness returns the brightness register of the given display row.
// There are 16 of them, starting at Row0Brightness.
func RowBrightness(row int) Register {
	return Row0Brightness + Register(row&0x0F)
}
