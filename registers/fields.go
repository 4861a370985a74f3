package registers

// Field is a bit range inside an 8-bit register.
type Field struct {
	Shift uint8
	Width uint8
}

// Mask returns the bits covered by the field, in register position.
func (f Field) Mask() byte {
	return byte((1<<f.Width)-1) << f.Shift
}

// Get extracts the field value from a raw register byte.
func (f Field) Get(reg byte) byte {
	return (reg & f.Mask()) >> f.Shift
}

// Set returns reg with the field replaced by v. Bits of v that do not fit
// in the field are dropped.
func (f Field) Set(reg, v byte) byte {
	return (reg &^ f.Mask()) | ((v << f.Shift) & f.Mask())
}

// Flag returns reg with a one bit field set or cleared.
func (f Field) Flag(reg byte, on bool) byte {
	if on {
		return f.Set(reg, 1)
	}
	return f.Set(reg, 0)
}

// Video Mode 0 (VM0).
var (
	VM0Standard          = Field{Shift: 6, Width: 1}
	VM0SyncMode          = Field{Shift: 4, Width: 2}
	VM0EnableDisplay     = Field{Shift: 3, Width: 1}
	VM0VerticalSync      = Field{Shift: 2, Width: 1}
	VM0SoftwareReset     = Field{Shift: 1, Width: 1}
	VM0VideoBufferEnable = Field{Shift: 0, Width: 1}
)

// Video Mode 1 (VM1).
var (
	VM1BackgroundMode = Field{Shift: 7, Width: 1}
	VM1Brightness     = Field{Shift: 4, Width: 3}
	VM1BlinkTime      = Field{Shift: 2, Width: 2}
	VM1BlinkDutyCycle = Field{Shift: 0, Width: 2}
)

// Horizontal and vertical offset registers.
var (
	HOSOffset = Field{Shift: 0, Width: 6}
	VOSOffset = Field{Shift: 0, Width: 5}
)

// Display Memory Mode (DMM).
var (
	DMMOperationMode          = Field{Shift: 6, Width: 1}
	DMMLocalBackgroundControl = Field{Shift: 5, Width: 1}
	DMMBlink                  = Field{Shift: 4, Width: 1}
	DMMInvert                 = Field{Shift: 3, Width: 1}
	DMMClear                  = Field{Shift: 2, Width: 1}
	DMMVerticalSyncClear      = Field{Shift: 1, Width: 1}
	DMMAutoIncrement          = Field{Shift: 0, Width: 1} // reset when Clear is set
)

// Display Memory Address High (DMAH).
var (
	DMAHByteSelection = Field{Shift: 1, Width: 1}
	DMAHAddress8      = Field{Shift: 0, Width: 1}
)

// OSD Insertion Mux (OSDM).
var (
	OSDMRiseAndFallTime           = Field{Shift: 3, Width: 3}
	OSDMInsertionMuxSwitchingTime = Field{Shift: 0, Width: 3}
)

// Status (STAT).
var (
	StatusResetMode             = Field{Shift: 6, Width: 1}
	StatusCharacterMemoryStatus = Field{Shift: 5, Width: 1}
	StatusVSyncOutputLevel      = Field{Shift: 4, Width: 1}
	StatusHSyncOutputLevel      = Field{Shift: 3, Width: 1}
	StatusLossOfSync            = Field{Shift: 2, Width: 1}
	StatusNTSCSignal            = Field{Shift: 1, Width: 1}
	StatusPALSignal             = Field{Shift: 0, Width: 1}
)
