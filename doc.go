// Package max7456 controls a MAX7456 on-screen display generator via SPI.
//
// The MAX7456 overlays monochrome characters on a composite video signal.
// Its display memory holds a 30×16 grid of character indices (only 13 rows
// are visible in NTSC), and each index selects one of 256 glyphs of 12×18
// pixels kept in a non-volatile character memory.
//
// # Device Characteristics
//
// - NTSC and PAL, with automatic, external or internal sync
// - 480 display memory cells, addressed 0-479 row by row
// - Per character attributes: local background, blink and invert
// - 256 user definable characters, stored in NVM
// - Horizontal (-32 to +31 pixels) and vertical (-16 to +15 lines) offset
//
// # Hardware Connection
//
// Connect the MAX7456 to your system via SPI:
//
//	Device Pin → System Pin
//	GND        → GND
//	DVDD/AVDD  → 5V
//	SCLK       → SPI Clock (SCLK)
//	SDIN       → SPI Data (MOSI)
//	SDOUT      → SPI Data (MISO)
//	CS         → SPI Chip Select
//	RESET      → Optional: GPIO for hardware reset
//
// # Basic Usage
//
//	package main
//
//	import (
//		"log"
//
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/max7456"
//		"periph.io/x/devices/v3/max7456/dispmem"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		if _, err := host.Init(); err != nil {
//			log.Fatal(err)
//		}
//		p, err := spireg.Open("")
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer p.Close()
//
//		dev, err := max7456.NewSPI(p, nil)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Halt()
//
//		dev.ClearDisplay()
//		dev.WriteString(1, 2, "HELLO", dispmem.Attributes{})
//	}
//
// # Display Memory Transactions
//
// Writing the display memory is a sequence of register writes: the memory
// mode (DMM), the address (DMAH, DMAL) and the data (DMDI). The dispmem
// package encodes these sequences into fixed size buffers, one SPI transfer
// each, and resumes where the previous buffer stopped. Three encoders exist:
//
//   - incremental: a run of characters from a start address, using the
//     device's auto-increment mode (WriteText)
//   - lines: the non-zero bytes of a set of lines (DrawLines)
//   - sparse: the non-zero cells of a full screen (DrawScreen)
//
// DrawLines and DrawScreen return an Undo that erases exactly the cells they
// wrote, leaving everything else on screen untouched:
//
//	undo, _ := dev.DrawScreen(&screen, dispmem.Attributes{Blink: true})
//	time.Sleep(time.Second)
//	dev.Undo(undo)
//
// In auto-increment mode the character 0xFF ends the write, so it cannot be
// the last character of a transfer. WriteText shrinks the transfer to avoid
// it, and returns dispmem.ErrSentinel when text itself ends with 0xFF.
//
// # Character Memory
//
// Glyphs are read with LoadGlyph and written with StoreGlyph. StoreFont
// uploads a complete font, typically parsed from an .mcm file by the glyph
// package, writing only the characters that changed:
//
//	f, _ := glyph.LoadMCM("font.mcm")
//	dev.StoreFont(f, nil)
//
// The NVM endures a limited number of write cycles.
//
// # Datasheet
//
// https://www.analog.com/media/en/technical-documentation/data-sheets/MAX7456.pdf
package max7456
