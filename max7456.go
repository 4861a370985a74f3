package max7456

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/max7456/dispmem"
	"periph.io/x/devices/v3/max7456/registers"
)

// Opts is the configuration for the MAX7456.
type Opts struct {
	// Video signal
	Standard registers.Standard // NTSC (default) or PAL
	SyncMode registers.SyncMode // Sync source (default: auto detect)

	// Display position adjustment
	HorizontalOffset int // Pixels, -32 to +31
	VerticalOffset   int // Lines, -16 to +15

	// Size of the buffer used to build display memory transactions
	// (default: 64, minimum 10). Each chunk is sent in one SPI transfer.
	ChunkSize int

	// Optional hardware reset pin
	RST gpio.PinOut // Reset pin (optional, nil if not used)
}

// DefaultOpts is the configuration used when nil is passed to NewSPI.
var DefaultOpts = Opts{
	Standard:  registers.NTSC,
	SyncMode:  registers.AutoSync,
	ChunkSize: 64,
}

var (
	// ErrHalted is returned by operations on a halted device.
	ErrHalted = errors.New("max7456: halted")
	// ErrTimeout is returned when the device stays busy for too long.
	ErrTimeout = errors.New("max7456: timed out waiting for device")
)

// pollLimit bounds every busy-wait loop.
const pollLimit = 200

// Dev is the device handle for the MAX7456.
type Dev struct {
	// Communication
	c   conn.Conn   // SPI connection
	rst gpio.PinOut // Reset pin (optional)

	opts Opts

	// Transaction buffer
	buf []byte

	// State
	halted bool
}

// NewSPI creates a new MAX7456 device connected via SPI.
//
// The SPI port is configured for 4MHz, Mode3 (CPOL=1, CPHA=1), 8-bit transfers.
// The device is reset and the display is enabled.
//
// opts can be nil to use defaults (NTSC, auto sync).
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	// MAX7456 samples on the rising edge with SCLK idling high; 10MHz max.
	c, err := p.Connect(4*physic.MegaHertz, spi.Mode3, 8)
	if err != nil {
		return nil, fmt.Errorf("max7456: %w", err)
	}
	return newDev(c, opts)
}

func (o *Opts) validate() error {
	if o.ChunkSize == 0 {
		o.ChunkSize = DefaultOpts.ChunkSize
	}
	if o.ChunkSize < dispmem.MinIncrementalBufferSize {
		return fmt.Errorf("max7456: chunk size must be at least %d", dispmem.MinIncrementalBufferSize)
	}
	if o.HorizontalOffset < -32 || o.HorizontalOffset > 31 {
		return errors.New("max7456: horizontal offset must be between -32 and 31")
	}
	if o.VerticalOffset < -16 || o.VerticalOffset > 15 {
		return errors.New("max7456: vertical offset must be between -16 and 15")
	}
	if o.Standard != registers.NTSC && o.Standard != registers.PAL {
		return errors.New("max7456: unknown video standard")
	}
	switch o.SyncMode {
	case registers.AutoSync, registers.ExternalSync, registers.InternalSync:
	default:
		return errors.New("max7456: unknown sync mode")
	}
	return nil
}

func newDev(c conn.Conn, opts *Opts) (*Dev, error) {
	d := &Dev{
		c:    c,
		rst:  opts.RST,
		opts: *opts,
		buf:  make([]byte, opts.ChunkSize),
	}
	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

// init resets the device and applies the options.
func (d *Dev) init() error {
	// Hardware reset sequence (if RST pin is provided)
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("max7456: failed to pull RST low: %w", err)
		}
		time.Sleep(time.Millisecond)

		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("max7456: failed to pull RST high: %w", err)
		}
		time.Sleep(50 * time.Millisecond)
	}

	if err := d.Reset(); err != nil {
		return err
	}

	vm0 := registers.VM0Standard.Set(0, byte(d.opts.Standard))
	vm0 = registers.VM0SyncMode.Set(vm0, byte(d.opts.SyncMode))
	vm0 = registers.VM0EnableDisplay.Set(vm0, 1)

	return d.c.Tx([]byte{
		byte(registers.HorizontalOffset), byte(d.opts.HorizontalOffset + 32),
		byte(registers.VerticalOffset), byte(d.opts.VerticalOffset + 16),
		byte(registers.VideoMode0), vm0, // Display on
	}, nil)
}

// writeReg writes a single register.
func (d *Dev) writeReg(reg registers.Register, v byte) error {
	return d.c.Tx([]byte{byte(reg), v}, nil)
}

// readReg reads a single register. The value is clocked in on the byte
// following the read address.
func (d *Dev) readReg(reg registers.Register) (byte, error) {
	var r [2]byte
	if err := d.c.Tx([]byte{reg.ReadAddress(), 0}, r[:]); err != nil {
		return 0, err
	}
	return r[1], nil
}

// updateReg reads a register, applies f and writes the result back.
func (d *Dev) updateReg(reg registers.Register, f func(v byte) byte) error {
	if d.halted {
		return ErrHalted
	}
	v, err := d.readReg(reg)
	if err != nil {
		return err
	}
	return d.writeReg(reg, f(v))
}

// poll reads reg every period until done returns true.
func (d *Dev) poll(reg registers.Register, period time.Duration, done func(v byte) bool) error {
	for i := 0; i < pollLimit; i++ {
		v, err := d.readReg(reg)
		if err != nil {
			return err
		}
		if done(v) {
			return nil
		}
		time.Sleep(period)
	}
	return fmt.Errorf("%w (register %v)", ErrTimeout, reg)
}

// Reset performs a software reset. All registers return to their default
// values and the display is disabled.
func (d *Dev) Reset() error {
	if d.halted {
		return ErrHalted
	}
	if err := d.writeReg(registers.VideoMode0, registers.VM0SoftwareReset.Set(0, 1)); err != nil {
		return err
	}
	time.Sleep(50 * time.Millisecond)
	return d.poll(registers.VideoMode0, time.Millisecond, func(v byte) bool {
		return registers.VM0SoftwareReset.Get(v) == 0
	})
}

// EnableDisplay turns the OSD overlay on or off.
func (d *Dev) EnableDisplay(enable bool) error {
	return d.updateReg(registers.VideoMode0, func(v byte) byte {
		return registers.VM0EnableDisplay.Flag(v, enable)
	})
}

// SetStandard selects NTSC or PAL timing.
func (d *Dev) SetStandard(s registers.Standard) error {
	return d.updateReg(registers.VideoMode0, func(v byte) byte {
		return registers.VM0Standard.Set(v, byte(s))
	})
}

// SetSyncMode selects the sync source.
func (d *Dev) SetSyncMode(m registers.SyncMode) error {
	return d.updateReg(registers.VideoMode0, func(v byte) byte {
		return registers.VM0SyncMode.Set(v, byte(m))
	})
}

// SetHorizontalOffset moves the display horizontally, -32 to +31 pixels.
func (d *Dev) SetHorizontalOffset(offset int) error {
	if d.halted {
		return ErrHalted
	}
	if offset < -32 || offset > 31 {
		return errors.New("max7456: horizontal offset out of range")
	}
	return d.writeReg(registers.HorizontalOffset, byte(offset+32))
}

// SetVerticalOffset moves the display vertically, -16 to +15 lines.
func (d *Dev) SetVerticalOffset(offset int) error {
	if d.halted {
		return ErrHalted
	}
	if offset < -16 || offset > 15 {
		return errors.New("max7456: vertical offset out of range")
	}
	return d.writeReg(registers.VerticalOffset, byte(offset+16))
}

// SetBackground sets the background level used by characters drawn with
// local background control.
func (d *Dev) SetBackground(b registers.Brightness) error {
	return d.updateReg(registers.VideoMode1, func(v byte) byte {
		return registers.VM1Brightness.Set(v, byte(b))
	})
}

// SetBlink sets the blink period and duty cycle of blinking characters.
func (d *Dev) SetBlink(t registers.BlinkTime, duty registers.BlinkDutyCycle) error {
	return d.updateReg(registers.VideoMode1, func(v byte) byte {
		v = registers.VM1BlinkTime.Set(v, byte(t))
		return registers.VM1BlinkDutyCycle.Set(v, byte(duty))
	})
}

// Status returns the raw STAT register.
func (d *Dev) Status() (byte, error) {
	if d.halted {
		return 0, ErrHalted
	}
	return d.readReg(registers.Status)
}

// DetectStandard returns the standard of the incoming video signal. ok is
// false when no signal is detected.
func (d *Dev) DetectStandard() (s registers.Standard, ok bool, err error) {
	stat, err := d.Status()
	if err != nil {
		return 0, false, err
	}
	switch {
	case registers.StatusPALSignal.Get(stat) == 1:
		return registers.PAL, true, nil
	case registers.StatusNTSCSignal.Get(stat) == 1:
		return registers.NTSC, true, nil
	}
	return 0, false, nil
}

// ClearDisplay erases the display memory and waits for the device to finish.
func (d *Dev) ClearDisplay() error {
	if d.halted {
		return ErrHalted
	}
	mode := dispmem.Mode{Clear: true}
	if err := d.writeReg(registers.DisplayMemoryMode, mode.Byte()); err != nil {
		return err
	}
	time.Sleep(20 * time.Microsecond)
	return d.poll(registers.DisplayMemoryMode, 10*time.Microsecond, func(v byte) bool {
		return registers.DMMClear.Get(v) == 0
	})
}

// IsDisplayCleared reports whether a clear started by ClearDisplay is done.
func (d *Dev) IsDisplayCleared() (bool, error) {
	if d.halted {
		return false, ErrHalted
	}
	v, err := d.readReg(registers.DisplayMemoryMode)
	if err != nil {
		return false, err
	}
	return registers.DMMClear.Get(v) == 0, nil
}

// WriteDisplay sends an encoded display memory transaction as is.
func (d *Dev) WriteDisplay(chunk []byte) error {
	if d.halted {
		return ErrHalted
	}
	return d.c.Tx(chunk, nil)
}

// Halt turns the OSD off.
// After calling Halt, the device will not accept further operations.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	err := d.EnableDisplay(false)
	d.halted = true
	return err
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("max7456.Dev{%s, %s}", d.c, d.opts.Standard)
}
