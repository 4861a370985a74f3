// Package dispmem encodes MAX7456 display memory writes.
//
// The MAX7456 display memory holds 480 characters (16 rows of 30 columns)
// and is written through four registers: the display memory mode (DMM),
// the high address byte (DMAH, selecting one of two 256 character pages),
// the low address byte (DMAL) and the data input (DMDI). A transaction is a
// sequence of (register, value) byte pairs sent back to back on the bus.
//
// An Encoder turns a logical write request into chunks: each chunk is an
// independent transaction that fits in a caller supplied buffer and starts
// with a DMM write. The position reached is kept in a Cursor owned by the
// caller, so a request larger than one buffer is sent as a series of chunks:
//
//	enc := dispmem.NewLines(lines, dispmem.Attributes{})
//	cur := enc.Start()
//	buf := make([]byte, 64)
//	for !cur.Done {
//		chunk, err := enc.Encode(&cur, buf)
//		if err != nil {
//			return err
//		}
//		if err := bus.Tx(chunk, nil); err != nil {
//			return err
//		}
//	}
//
// Chunks must be sent in the order they were produced.
//
// There are three kinds of encoder:
//
//   - Incremental writes a run of bytes from a starting row and column using
//     the device auto-increment mode. Every byte, zero included, is sent.
//   - Lines writes a grid of lines, skipping zero cells. Lines may be narrower
//     than the screen.
//   - Sparse writes a full Screen, skipping zero cells.
//
// Chunks produced by Lines and Sparse encoders can be turned into their
// erasing counterpart with Revert.
package dispmem
