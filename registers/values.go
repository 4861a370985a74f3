package registers

// Standard selects the video standard (VM0 bit 6).
type Standard byte

const (
	NTSC Standard = 0
	PAL  Standard = 1
)

func (s Standard) String() string {
	if s == PAL {
		return "PAL"
	}
	return "NTSC"
}

// SyncMode selects the sync source (VM0 bits 4-5).
type SyncMode byte

const (
	AutoSync     SyncMode = 0b00
	ExternalSync SyncMode = 0b10
	InternalSync SyncMode = 0b11
)

// VerticalSync selects when VM0 changes take effect.
type VerticalSync byte

const (
	Immediately VerticalSync = 0
	NextVSync   VerticalSync = 1
)

// OperationMode selects how display memory writes are interpreted (DMM bit 6).
type OperationMode byte

const (
	// Mode16Bit sends the character and attribute bits in one write.
	Mode16Bit OperationMode = 0
	// Mode8Bit writes the character and attribute bytes separately.
	Mode8Bit OperationMode = 1
)

// CharacterMemoryCommand is written to CMM to move a glyph between the
// shadow RAM and the NVM.
type CharacterMemoryCommand byte

const (
	WriteToNVM  CharacterMemoryCommand = 0xA0
	ReadFromNVM CharacterMemoryCommand = 0x50
)

// CharacterMemoryStatus values of the STAT register bit 5.
const (
	CharacterMemoryAvailable   = 0
	CharacterMemoryUnavailable = 1
)

// Brightness is the background level used in local background mode
// (VM1 bits 4-6), as a percentage of OSD white.
type Brightness byte

const (
	Brightness0  Brightness = iota // 0%
	Brightness7                    // 7%
	Brightness14                   // 14%
	Brightness21                   // 21%
	Brightness28                   // 28%
	Brightness35                   // 35%
	Brightness42                   // 42%
	Brightness49                   // 49%
)

// BlinkTime is the blink period, in fields (VM1 bits 2-3).
type BlinkTime byte

const (
	Blink2Fields  BlinkTime = iota // 33ms NTSC, 40ms PAL
	Blink4Fields                   // 67ms NTSC, 80ms PAL
	Blink6Fields                   // 100ms NTSC, 120ms PAL
	Blink8Fields                   // 133ms NTSC, 160ms PAL
)

// BlinkDutyCycle is the on:off ratio of blinking characters (VM1 bits 0-1).
type BlinkDutyCycle byte

const (
	DutyBT   BlinkDutyCycle = iota // BT:BT
	DutyBT2                        // BT:2BT
	DutyBT3                        // BT:3BT
	Duty3BT                        // 3BT:BT
)

// RiseAndFallTime of the OSD insertion mux (OSDM bits 3-5).
type RiseAndFallTime byte

const (
	RiseFall20ns RiseAndFallTime = iota
	RiseFall30ns
	RiseFall35ns
	RiseFall60ns
	RiseFall80ns
	RiseFall110ns
)

// SwitchingTime of the OSD insertion mux (OSDM bits 0-2).
type SwitchingTime byte

const (
	Switch30ns SwitchingTime = iota
	Switch35ns
	Switch50ns
	Switch75ns
	Switch100ns
	Switch120ns
)
