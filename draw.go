package max7456

import (
	"errors"

	"periph.io/x/devices/v3/max7456/dispmem"
)

// Undo holds the transactions that erase what a draw call wrote.
type Undo [][]byte

// WriteText writes text from row and column onwards, wrapping to the next
// rows. Every byte is a character index; 0 is written too.
//
// A chunk ending with the 0xFF character cannot be sent, so such chunks are
// rebuilt with a smaller buffer. If text itself ends with 0xFF there is no
// way to send it and dispmem.ErrSentinel is returned.
func (d *Dev) WriteText(row, column int, text []byte, attrs dispmem.Attributes) error {
	if d.halted {
		return ErrHalted
	}
	enc := dispmem.NewIncremental(text, row, column, attrs)
	for cur := enc.Start(); !cur.Done; {
		chunk, err := d.encodeRun(enc, &cur)
		if err != nil {
			return err
		}
		if chunk == nil {
			break
		}
		if err := d.c.Tx(chunk, nil); err != nil {
			return err
		}
	}
	return nil
}

// WriteString is WriteText for a string.
func (d *Dev) WriteString(row, column int, s string, attrs dispmem.Attributes) error {
	return d.WriteText(row, column, []byte(s), attrs)
}

// encodeRun encodes the next chunk of an incremental write, shrinking the
// buffer until the chunk does not end with the sentinel.
func (d *Dev) encodeRun(enc *dispmem.Encoder, cur *dispmem.Cursor) ([]byte, error) {
	for size := len(d.buf); size >= dispmem.MinIncrementalBufferSize; size -= 2 {
		chunk, err := enc.Encode(cur, d.buf[:size])
		if !errors.Is(err, dispmem.ErrSentinel) {
			return chunk, err
		}
	}
	return nil, dispmem.ErrSentinel
}

// DrawLines draws every non-zero byte of lines, line i on row i. Lines may
// be narrower than the display; the width of the first line is used.
//
// The returned Undo erases exactly the characters that were drawn.
func (d *Dev) DrawLines(lines [][]byte, attrs dispmem.Attributes) (Undo, error) {
	if d.halted {
		return nil, ErrHalted
	}
	return d.draw(dispmem.NewLines(lines, attrs))
}

// DrawScreen draws every non-zero character of s.
//
// The returned Undo erases exactly the characters that were drawn.
func (d *Dev) DrawScreen(s *dispmem.Screen, attrs dispmem.Attributes) (Undo, error) {
	if d.halted {
		return nil, ErrHalted
	}
	return d.draw(dispmem.NewSparse(s, attrs))
}

func (d *Dev) draw(enc *dispmem.Encoder) (Undo, error) {
	var undo Undo
	for cur := enc.Start(); !cur.Done; {
		chunk, err := enc.Encode(&cur, d.buf)
		if err != nil {
			return undo, err
		}
		if chunk == nil {
			break
		}
		if err := d.c.Tx(chunk, nil); err != nil {
			return undo, err
		}
		r, err := dispmem.Revert(append([]byte(nil), chunk...))
		if err != nil {
			return undo, err
		}
		undo = append(undo, r)
	}
	return undo, nil
}

// Undo sends the transactions of u in order, erasing what the draw call
// that returned it wrote.
func (d *Dev) Undo(u Undo) error {
	if d.halted {
		return ErrHalted
	}
	for _, chunk := range u {
		if err := d.c.Tx(chunk, nil); err != nil {
			return err
		}
	}
	return nil
}
