package max7456

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/devices/v3/max7456/glyph"
	"periph.io/x/devices/v3/max7456/registers"
)

// StoreGlyphSize is the length of a transaction built by BuildStoreGlyph.
const StoreGlyphSize = 2 + glyph.StoredSize*4 + 2

// nvmSettle is the minimum time an NVM write takes.
const nvmSettle = 12 * time.Millisecond

// BuildStoreGlyph writes into out the transaction that stores g as
// character index: the character address, the 64 bytes of shadow RAM and
// the NVM write command. out must be at least StoreGlyphSize bytes long.
func BuildStoreGlyph(g *glyph.Glyph, index byte, out []byte) ([]byte, error) {
	if len(out) < StoreGlyphSize {
		return nil, fmt.Errorf("max7456: store buffer must be at least %d bytes", StoreGlyphSize)
	}
	out[0], out[1] = byte(registers.CharacterMemoryAddressHigh), index
	n := 2
	for i, b := range g.Data {
		out[n], out[n+1] = byte(registers.CharacterMemoryAddressLow), byte(i)
		out[n+2], out[n+3] = byte(registers.CharacterMemoryDataIn), b
		n += 4
	}
	out[n], out[n+1] = byte(registers.CharacterMemoryMode), byte(registers.WriteToNVM)
	return out[:n+2], nil
}

// StoreGlyph writes g to the character memory at index and waits for the
// NVM write to complete. The OSD must be disabled while the NVM is written.
func (d *Dev) StoreGlyph(index byte, g *glyph.Glyph) error {
	if d.halted {
		return ErrHalted
	}
	var buf [StoreGlyphSize]byte
	w, err := BuildStoreGlyph(g, index, buf[:])
	if err != nil {
		return err
	}
	if err := d.c.Tx(w, nil); err != nil {
		return err
	}
	time.Sleep(nvmSettle)
	return d.poll(registers.Status, time.Millisecond, func(v byte) bool {
		return registers.StatusCharacterMemoryStatus.Get(v) == registers.CharacterMemoryAvailable
	})
}

// LoadGlyph reads character index from the character memory.
func (d *Dev) LoadGlyph(index byte) (*glyph.Glyph, error) {
	if d.halted {
		return nil, ErrHalted
	}
	if err := d.c.Tx([]byte{
		byte(registers.CharacterMemoryAddressHigh), index,
		byte(registers.CharacterMemoryMode), byte(registers.ReadFromNVM),
	}, nil); err != nil {
		return nil, err
	}
	g := &glyph.Glyph{}
	for i := range g.Data {
		if err := d.writeReg(registers.CharacterMemoryAddressLow, byte(i)); err != nil {
			return nil, err
		}
		v, err := d.readReg(registers.CharacterMemoryDataOut)
		if err != nil {
			return nil, err
		}
		g.Data[i] = v
	}
	return g, nil
}

// StoreFont writes every character of f that differs from the character
// memory, skipping identical ones to spare NVM write cycles. The display is
// disabled during the update and enabled again afterwards. progress, if not
// nil, is called after each character with its index and whether it was
// written.
func (d *Dev) StoreFont(f *glyph.Font, progress func(index int, written bool)) error {
	if d.halted {
		return ErrHalted
	}
	if err := d.EnableDisplay(false); err != nil {
		return err
	}
	var errs []error
	for i := range f {
		cur, err := d.LoadGlyph(byte(i))
		if err != nil {
			errs = append(errs, fmt.Errorf("max7456: load glyph %d: %w", i, err))
			break
		}
		write := cur.Data != f[i].Data
		if write {
			if err := d.StoreGlyph(byte(i), &f[i]); err != nil {
				errs = append(errs, fmt.Errorf("max7456: store glyph %d: %w", i, err))
				break
			}
		}
		if progress != nil {
			progress(i, write)
		}
	}
	if err := d.EnableDisplay(true); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
