package dispmem

import "periph.io/x/devices/v3/max7456/registers"

// Attributes are applied to every character written by an encoder.
type Attributes struct {
	LocalBackgroundControl bool // Show the VM1 background level behind the character
	Blink                  bool
	Invert                 bool
}

// Mode is the content of the Display Memory Mode register.
type Mode struct {
	Operation     registers.OperationMode
	Attributes    Attributes
	Clear         bool
	AutoIncrement bool
}

// Byte packs the mode into the DMM register value.
func (m Mode) Byte() byte {
	v := registers.DMMOperationMode.Set(0, byte(m.Operation))
	v = registers.DMMLocalBackgroundControl.Flag(v, m.Attributes.LocalBackgroundControl)
	v = registers.DMMBlink.Flag(v, m.Attributes.Blink)
	v = registers.DMMInvert.Flag(v, m.Attributes.Invert)
	v = registers.DMMClear.Flag(v, m.Clear)
	return registers.DMMAutoIncrement.Flag(v, m.AutoIncrement)
}

// ParseMode unpacks a DMM register value.
func ParseMode(v byte) Mode {
	return Mode{
		Operation: registers.OperationMode(registers.DMMOperationMode.Get(v)),
		Attributes: Attributes{
			LocalBackgroundControl: registers.DMMLocalBackgroundControl.Get(v) == 1,
			Blink:                  registers.DMMBlink.Get(v) == 1,
			Invert:                 registers.DMMInvert.Get(v) == 1,
		},
		Clear:         registers.DMMClear.Get(v) == 1,
		AutoIncrement: registers.DMMAutoIncrement.Get(v) == 1,
	}
}
