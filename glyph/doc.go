// Package glyph provides the 2-bit character image format of the MAX7456
// character memory, and reading and writing of .mcm font files.
//
// Each of the 256 characters is 12×18 pixels. A pixel is two bits wide and
// four pixels are packed in a byte, left-most pixel in the high bits:
//
//	Pixels: 0  1  2  3
//	Values: 2  1  1  0
//	Byte:   0b10_01_01_00 = 0x94
//
// A character therefore uses 54 bytes. The device and .mcm files store 64
// bytes per character; the trailing 10 bytes are unused.
//
// Pixel values:
//
// - Black (0b00): black
// - Transparent (0bx1): video shows through, or gray in local background mode
// - White (0b10): white
//
// Example usage:
//
//	// Create an empty (transparent) character
//	g := glyph.New()
//
//	// Draw a white pixel
//	g.SetPixel(3, 4, glyph.White)
//
//	// Use with standard Go image operations
//	draw.Draw(g, g.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
//
//	// Load a whole font
//	f, err := glyph.ParseMCM(r)
package glyph
