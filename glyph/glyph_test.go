package glyph

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"
)

func TestPixelRGBA(t *testing.T) {
	tests := []struct {
		name  string
		pixel Pixel
		want  [4]uint32
	}{
		{"black", Black, [4]uint32{0, 0, 0, 0xFFFF}},
		{"white", White, [4]uint32{0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF}},
		{"transparent", Transparent, [4]uint32{0, 0, 0, 0}},
		{"transparent high bit ignored", Pixel(3), [4]uint32{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.pixel.RGBA()
			if got := [4]uint32{r, g, b, a}; got != tt.want {
				t.Errorf("RGBA() = %x, want %x", got, tt.want)
			}
		})
	}
}

func TestPixelModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  Pixel
	}{
		{"black", color.Black, Black},
		{"white", color.White, White},
		{"transparent", color.Transparent, Transparent},
		{"dark gray", color.Gray{Y: 0x40}, Black},
		{"light gray", color.Gray{Y: 0xC0}, White},
		{"red", color.RGBA{R: 0xFF, A: 0xFF}, Black},
		{"pixel passthrough", White, White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PixelModel.Convert(tt.input).(Pixel); got != tt.want {
				t.Errorf("Convert(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGlyphBounds(t *testing.T) {
	g := New()
	if got := g.Bounds(); got != image.Rect(0, 0, 12, 18) {
		t.Errorf("Bounds() = %v", got)
	}
	if g.ColorModel() != PixelModel {
		t.Error("ColorModel() did not return PixelModel")
	}
	if !g.IsBlank() {
		t.Error("new glyph should be blank")
	}
}

func TestGlyphPacking(t *testing.T) {
	g := &Glyph{}
	g.SetPixel(0, 0, White)
	g.SetPixel(1, 0, Transparent)
	g.SetPixel(2, 0, Transparent)
	g.SetPixel(3, 0, Black)
	if g.Data[0] != 0x94 {
		t.Errorf("Data[0] = 0x%02X, want 0x94", g.Data[0])
	}

	g.SetPixel(11, 17, White)
	if g.Data[Size-1] != 0x02 {
		t.Errorf("Data[%d] = 0x%02X, want 0x02", Size-1, g.Data[Size-1])
	}

	for x, want := range []Pixel{White, Transparent, Transparent, Black} {
		if got := g.PixelAt(x, 0); got != want {
			t.Errorf("PixelAt(%d, 0) = %v, want %v", x, got, want)
		}
	}
}

func TestGlyphOutOfBounds(t *testing.T) {
	g := &Glyph{}
	g.SetPixel(12, 0, White)
	g.SetPixel(0, 18, White)
	g.SetPixel(-1, -1, White)
	if *g != (Glyph{}) {
		t.Error("out of bounds SetPixel modified the glyph")
	}
	if got := g.PixelAt(100, 100); got != Transparent {
		t.Errorf("PixelAt out of bounds = %v, want transparent", got)
	}
}

func TestGlyphDraw(t *testing.T) {
	g := New()
	draw.Draw(g, image.Rect(0, 0, 4, 1), image.NewUniform(color.White), image.Point{}, draw.Src)
	if g.Data[0] != 0xAA {
		t.Errorf("Data[0] = 0x%02X, want 0xAA", g.Data[0])
	}
	if g.IsBlank() {
		t.Error("glyph with white pixels is not blank")
	}
}

func TestFromBytes(t *testing.T) {
	if _, ok := FromBytes(make([]byte, 10)); ok {
		t.Error("FromBytes should reject 10 bytes")
	}
	g, ok := FromBytes(bytes.Repeat([]byte{0xAA}, Size))
	if !ok {
		t.Fatal("FromBytes rejected 54 bytes")
	}
	if g.Data[Size-1] != 0xAA || g.Data[Size] != 0x55 {
		t.Errorf("Data = % X", g.Data)
	}
}

func mcmFile(glyphs int, last string) string {
	var sb strings.Builder
	sb.WriteString("MAX7456\r\n")
	for i := 0; i < glyphs*StoredSize-1; i++ {
		sb.WriteString("01010101\r\n")
	}
	sb.WriteString(last + "\r\n")
	return sb.String()
}

func TestParseMCM(t *testing.T) {
	f, err := ParseMCM(strings.NewReader(mcmFile(2, "10000001")))
	if err != nil {
		t.Fatal(err)
	}
	if f[1].Data[StoredSize-1] != 0x81 {
		t.Errorf("last byte = 0x%02X, want 0x81", f[1].Data[StoredSize-1])
	}
	if !f[0].IsBlank() || !f[255].IsBlank() {
		t.Error("characters should be blank")
	}
}

func TestParseMCMErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"bad header", "MAX7457\n"},
		{"bad bit", mcmFile(1, "0101010x")},
		{"short line", mcmFile(1, "0101")},
		{"truncated", "MAX7456\n01010101\n"},
		{"too many", mcmFile(257, "01010101")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseMCM(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error but didn't get one")
			}
		})
	}
}

func TestWriteMCM(t *testing.T) {
	f := NewFont()
	f['A'].SetPixel(0, 0, White)
	f[255].Data[63] = 0x0F

	var buf bytes.Buffer
	if err := f.WriteMCM(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "MAX7456\r\n") {
		t.Fatalf("output starts with %q", buf.String()[:10])
	}
	back, err := ParseMCM(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if *back != *f {
		t.Error("font changed after writing and parsing")
	}
}
