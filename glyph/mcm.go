package glyph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// MCMHeader is the first line of a .mcm file.
const MCMHeader = "MAX7456"

// Glyphs is the number of characters in a font.
const Glyphs = 256

// Font is a full character set.
type Font [Glyphs]Glyph

// NewFont returns a font of blank characters.
func NewFont() *Font {
	f := &Font{}
	for i := range f {
		f[i] = *New()
	}
	return f
}

// LoadMCM reads a .mcm font file.
func LoadMCM(path string) (*Font, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to open font: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseMCM(f)
}

// ParseMCM parses a .mcm font. The header line is followed by one line per
// byte, each made of eight '0' or '1' characters, most significant bit
// first, 64 bytes per character. Files with fewer than 256 characters are
// accepted; the remaining characters are blank.
func ParseMCM(r io.Reader) (*Font, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("glyph: failed to read header: %w", err)
		}
		return nil, errors.New("glyph: empty font file")
	}
	if trimCR(scanner.Text()) != MCMHeader {
		return nil, fmt.Errorf("glyph: bad header %q", scanner.Text())
	}

	f := NewFont()
	n := 0
	lineNum := 1
	for scanner.Scan() {
		lineNum++
		line := trimCR(scanner.Text())
		if line == "" {
			continue
		}
		if n == Glyphs*StoredSize {
			return nil, fmt.Errorf("glyph: line %d: more than %d characters", lineNum, Glyphs)
		}
		b, err := parseByte(line)
		if err != nil {
			return nil, fmt.Errorf("glyph: line %d: %w", lineNum, err)
		}
		f[n/StoredSize].Data[n%StoredSize] = b
		n++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("glyph: failed to read font: %w", err)
	}
	if n%StoredSize != 0 {
		return nil, fmt.Errorf("glyph: truncated character %d (%d of %d bytes)", n/StoredSize, n%StoredSize, StoredSize)
	}
	return f, nil
}

// WriteMCM writes the font in .mcm format.
func (f *Font) WriteMCM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(MCMHeader + "\r\n"); err != nil {
		return err
	}
	line := make([]byte, 10)
	line[8], line[9] = '\r', '\n'
	for i := range f {
		for _, b := range f[i].Data {
			for bit := 0; bit < 8; bit++ {
				line[bit] = '0' + (b>>(7-bit))&1
			}
			if _, err := bw.Write(line); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// parseByte decodes one data line.
func parseByte(line string) (byte, error) {
	if len(line) != 8 {
		return 0, fmt.Errorf("expected 8 bits, got %q", line)
	}
	var b byte
	for i := 0; i < 8; i++ {
		switch line[i] {
		case '0':
			b <<= 1
		case '1':
			b = b<<1 | 1
		default:
			return 0, fmt.Errorf("invalid bit %q in %q", line[i], line)
		}
	}
	return b, nil
}

func trimCR(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\r' {
		return s[:len(s)-1]
	}
	return s
}
