package max7456

import (
	"errors"
	"strings"
	"testing"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/spi/spitest"
	"periph.io/x/devices/v3/max7456/dispmem"
	"periph.io/x/devices/v3/max7456/registers"
)

func writeOp(w ...byte) conntest.IO {
	return conntest.IO{W: w}
}

func readOp(reg registers.Register, v byte) conntest.IO {
	return conntest.IO{W: []byte{reg.ReadAddress(), 0}, R: []byte{0, v}}
}

// initOps is the traffic of a default initialization.
func initOps() []conntest.IO {
	return []conntest.IO{
		writeOp(0x00, 0x02),             // Software reset
		readOp(registers.VideoMode0, 0), // Reset done
		writeOp(0x02, 32, 0x03, 16, 0x00, 0x08),
	}
}

// newTestDev returns a device initialized with default options that
// expects ops after initialization.
func newTestDev(t *testing.T, opts *Opts, ops ...conntest.IO) (*Dev, *conntest.Playback) {
	t.Helper()
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}
	if err := opts.validate(); err != nil {
		t.Fatal(err)
	}
	p := &conntest.Playback{Ops: append(initOps(), ops...), D: conn.Full, DontPanic: true}
	d, err := newDev(p, opts)
	if err != nil {
		t.Fatal(err)
	}
	return d, p
}

func closePlayback(t *testing.T, p *conntest.Playback) {
	t.Helper()
	if err := p.Close(); err != nil {
		t.Error(err)
	}
}

func TestOptsValidation(t *testing.T) {
	tests := []struct {
		name    string
		opts    Opts
		wantErr bool
	}{
		{"defaults", DefaultOpts, false},
		{"zero value", Opts{}, false},
		{"PAL internal sync", Opts{Standard: registers.PAL, SyncMode: registers.InternalSync}, false},
		{"offset limits", Opts{HorizontalOffset: -32, VerticalOffset: 15}, false},
		{"minimum chunk", Opts{ChunkSize: 10}, false},
		{"chunk too small", Opts{ChunkSize: 9}, true},
		{"horizontal offset too large", Opts{HorizontalOffset: 32}, true},
		{"vertical offset too small", Opts{VerticalOffset: -17}, true},
		{"unknown standard", Opts{Standard: 2}, true},
		{"unknown sync mode", Opts{SyncMode: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := tt.opts
			err := o.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && o.ChunkSize < dispmem.MinIncrementalBufferSize {
				t.Errorf("ChunkSize = %d after validation", o.ChunkSize)
			}
		})
	}
}

func TestNewSPI(t *testing.T) {
	rst := &gpiotest.Pin{N: "RST"}
	port := spitest.Playback{
		Playback: conntest.Playback{Ops: initOps(), D: conn.Full, DontPanic: true},
	}
	d, err := NewSPI(&port, &Opts{RST: rst})
	if err != nil {
		t.Fatal(err)
	}
	if rst.L != gpio.High {
		t.Error("RST should be released after initialization")
	}
	if s := d.String(); !strings.HasPrefix(s, "max7456.Dev{") || !strings.Contains(s, "NTSC") {
		t.Errorf("String() = %q", s)
	}
	if err := port.Close(); err != nil {
		t.Error(err)
	}
}

func TestNewSPIInvalidOpts(t *testing.T) {
	port := spitest.Playback{Playback: conntest.Playback{DontPanic: true}}
	if _, err := NewSPI(&port, &Opts{VerticalOffset: 20}); err == nil {
		t.Error("NewSPI should reject invalid options")
	}
}

func TestInitOptions(t *testing.T) {
	opts := &Opts{
		Standard:         registers.PAL,
		SyncMode:         registers.InternalSync,
		HorizontalOffset: -5,
		VerticalOffset:   3,
	}
	if err := opts.validate(); err != nil {
		t.Fatal(err)
	}
	p := &conntest.Playback{
		Ops: []conntest.IO{
			writeOp(0x00, 0x02),
			readOp(registers.VideoMode0, 0x02), // Still resetting
			readOp(registers.VideoMode0, 0x00),
			writeOp(0x02, 27, 0x03, 19, 0x00, 0x78),
		},
		D:         conn.Full,
		DontPanic: true,
	}
	if _, err := newDev(p, opts); err != nil {
		t.Fatal(err)
	}
	closePlayback(t, p)
}

func TestResetTimeout(t *testing.T) {
	ops := []conntest.IO{writeOp(0x00, 0x02)}
	for i := 0; i < pollLimit; i++ {
		ops = append(ops, readOp(registers.VideoMode0, 0x02))
	}
	p := &conntest.Playback{Ops: ops, D: conn.Full, DontPanic: true}
	o := DefaultOpts
	_, err := newDev(p, &o)
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("err = %v, want ErrTimeout", err)
	}
}

func TestVideoModeUpdates(t *testing.T) {
	tests := []struct {
		name string
		do   func(d *Dev) error
		ops  []conntest.IO
	}{
		{
			"disable display",
			func(d *Dev) error { return d.EnableDisplay(false) },
			[]conntest.IO{readOp(registers.VideoMode0, 0x08), writeOp(0x00, 0x00)},
		},
		{
			"PAL",
			func(d *Dev) error { return d.SetStandard(registers.PAL) },
			[]conntest.IO{readOp(registers.VideoMode0, 0x08), writeOp(0x00, 0x48)},
		},
		{
			"external sync",
			func(d *Dev) error { return d.SetSyncMode(registers.ExternalSync) },
			[]conntest.IO{readOp(registers.VideoMode0, 0x38), writeOp(0x00, 0x28)},
		},
		{
			"background",
			func(d *Dev) error { return d.SetBackground(registers.Brightness28) },
			[]conntest.IO{readOp(registers.VideoMode1, 0x01), writeOp(0x01, 0x41)},
		},
		{
			"blink",
			func(d *Dev) error { return d.SetBlink(registers.Blink8Fields, registers.Duty3BT) },
			[]conntest.IO{readOp(registers.VideoMode1, 0x40), writeOp(0x01, 0x4F)},
		},
		{
			"horizontal offset",
			func(d *Dev) error { return d.SetHorizontalOffset(31) },
			[]conntest.IO{writeOp(0x02, 63)},
		},
		{
			"vertical offset",
			func(d *Dev) error { return d.SetVerticalOffset(-16) },
			[]conntest.IO{writeOp(0x03, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, p := newTestDev(t, nil, tt.ops...)
			if err := tt.do(d); err != nil {
				t.Fatal(err)
			}
			closePlayback(t, p)
		})
	}
}

func TestOffsetRange(t *testing.T) {
	d, p := newTestDev(t, nil)
	if err := d.SetHorizontalOffset(32); err == nil {
		t.Error("SetHorizontalOffset(32) should fail")
	}
	if err := d.SetVerticalOffset(16); err == nil {
		t.Error("SetVerticalOffset(16) should fail")
	}
	closePlayback(t, p)
}

func TestDetectStandard(t *testing.T) {
	tests := []struct {
		name   string
		status byte
		want   registers.Standard
		ok     bool
	}{
		{"PAL", 0x01, registers.PAL, true},
		{"NTSC", 0x02, registers.NTSC, true},
		{"no signal", 0x04, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, p := newTestDev(t, nil, readOp(registers.Status, tt.status))
			s, ok, err := d.DetectStandard()
			if err != nil {
				t.Fatal(err)
			}
			if s != tt.want || ok != tt.ok {
				t.Errorf("DetectStandard() = %v, %v; want %v, %v", s, ok, tt.want, tt.ok)
			}
			closePlayback(t, p)
		})
	}
}

func TestClearDisplay(t *testing.T) {
	d, p := newTestDev(t, nil,
		writeOp(0x04, 0x04),
		readOp(registers.DisplayMemoryMode, 0x04),
		readOp(registers.DisplayMemoryMode, 0x00),
		readOp(registers.DisplayMemoryMode, 0x00),
	)
	if err := d.ClearDisplay(); err != nil {
		t.Fatal(err)
	}
	cleared, err := d.IsDisplayCleared()
	if err != nil || !cleared {
		t.Errorf("IsDisplayCleared() = %v, %v", cleared, err)
	}
	closePlayback(t, p)
}

func TestDevHalt(t *testing.T) {
	d, p := newTestDev(t, nil, readOp(registers.VideoMode0, 0x08), writeOp(0x00, 0x00))
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	if err := d.Halt(); err != nil {
		t.Errorf("second Halt() = %v", err)
	}
	closePlayback(t, p)

	checks := map[string]error{
		"Reset":         d.Reset(),
		"EnableDisplay": d.EnableDisplay(true),
		"ClearDisplay":  d.ClearDisplay(),
		"WriteDisplay":  d.WriteDisplay([]byte{0x04, 0x00}),
		"WriteString":   d.WriteString(0, 0, "x", dispmem.Attributes{}),
		"Undo":          d.Undo(nil),
		"StoreGlyph":    d.StoreGlyph(0, nil),
	}
	_, err := d.DrawScreen(&dispmem.Screen{}, dispmem.Attributes{})
	checks["DrawScreen"] = err
	_, err = d.LoadGlyph(0)
	checks["LoadGlyph"] = err
	_, err = d.Status()
	checks["Status"] = err

	for name, err := range checks {
		if !errors.Is(err, ErrHalted) {
			t.Errorf("%s after Halt = %v, want ErrHalted", name, err)
		}
	}
}

func TestBusErrorPropagates(t *testing.T) {
	d, _ := newTestDev(t, nil)
	// The playback has no more operations: every transfer fails.
	if err := d.WriteString(0, 0, "x", dispmem.Attributes{}); err == nil {
		t.Error("WriteString should return the bus error")
	}
	if _, err := d.DrawLines([][]byte{[]byte("x")}, dispmem.Attributes{}); err == nil {
		t.Error("DrawLines should return the bus error")
	}
}
