// Package glyph provides the 2-bit character format of the MAX7456 character memory.
//
// Pixels are packed four to a byte, left-most pixel in the two high bits.
// This package provides the Pixel color type and the Glyph image implementation.
package glyph

import (
	"image"
	"image/color"
)

// Character geometry.
const (
	Width  = 12
	Height = 18

	// Size is the number of bytes holding pixels.
	Size = Width * Height / 4
	// StoredSize is the number of bytes per character in the character
	// memory and in .mcm files.
	StoredSize = 64

	stride = Width / 4
)

// Pixel is a 2-bit character memory pixel.
type Pixel uint8

const (
	Black       Pixel = 0
	Transparent Pixel = 1
	White       Pixel = 2
)

// RGBA converts the pixel to standard RGBA. Transparent pixels have zero
// alpha; the high bit of a transparent pixel is ignored like on the device.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	switch {
	case p&Transparent != 0:
		return 0, 0, 0, 0
	case p == White:
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	default:
		return 0, 0, 0, 0xFFFF
	}
}

func (p Pixel) String() string {
	switch {
	case p&Transparent != 0:
		return "transparent"
	case p == White:
		return "white"
	default:
		return "black"
	}
}

// toPixel converts any color.Color to a Pixel.
func toPixel(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p & 0x03
	}
	r, g, b, a := c.RGBA()
	if a < 0x8000 {
		return Transparent
	}
	// Standard grayscale conversion: 0.299R + 0.587G + 0.114B
	y := (299*r + 587*g + 114*b + 500) / 1000
	if y >= 0x8000 {
		return White
	}
	return Black
}

// PixelModel converts colors to Pixel.
var PixelModel = color.ModelFunc(toPixel)

// Glyph is one character of the character memory. Data holds the packed
// pixels as stored in the device, including the unused trailing bytes.
type Glyph struct {
	Data [StoredSize]byte
}

// New returns a glyph with every pixel transparent, which is how blank
// characters are stored.
func New() *Glyph {
	g := &Glyph{}
	for i := range g.Data {
		g.Data[i] = 0x55
	}
	return g
}

// FromBytes returns a glyph holding b. b must be Size or StoredSize bytes
// long; missing trailing bytes are filled with 0x55.
func FromBytes(b []byte) (*Glyph, bool) {
	if len(b) != Size && len(b) != StoredSize {
		return nil, false
	}
	g := New()
	copy(g.Data[:], b)
	return g, true
}

// ColorModel returns the color model of the image.
func (g *Glyph) ColorModel() color.Model {
	return PixelModel
}

// Bounds returns the image bounds.
func (g *Glyph) Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (g *Glyph) At(x, y int) color.Color {
	return g.PixelAt(x, y)
}

// PixelAt returns the Pixel at (x, y). Out of bounds pixels are transparent.
func (g *Glyph) PixelAt(x, y int) Pixel {
	if !(image.Point{X: x, Y: y}.In(g.Bounds())) {
		return Transparent
	}
	offset, shift := pixOffset(x, y)
	return Pixel(g.Data[offset]>>shift) & 0x03
}

// Set sets the color of the pixel at (x, y).
func (g *Glyph) Set(x, y int, c color.Color) {
	g.SetPixel(x, y, PixelModel.Convert(c).(Pixel))
}

// SetPixel sets the Pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (g *Glyph) SetPixel(x, y int, p Pixel) {
	if !(image.Point{X: x, Y: y}.In(g.Bounds())) {
		return
	}
	offset, shift := pixOffset(x, y)
	g.Data[offset] = (g.Data[offset] &^ (0x03 << shift)) | (byte(p&0x03) << shift)
}

// IsBlank reports whether every visible pixel is transparent.
func (g *Glyph) IsBlank() bool {
	for _, b := range g.Data[:Size] {
		if b&0x55 != 0x55 {
			return false
		}
	}
	return true
}

// pixOffset returns the byte offset and bit shift for the pixel at (x, y).
// x%4 == 0 is the left-most pixel of a byte and uses the two high bits.
func pixOffset(x, y int) (offset int, shift uint) {
	offset = y*stride + x/4
	shift = uint(6 - 2*(x&3))
	return
}
