package pdf

import (
	"bytes"
	"compress/zlib"
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/vita/font"
)

// replacementByte stands in for runes WinAnsiEncoding cannot represent
const replacementByte = '?'

// EncodeWinAnsi converts text to WinAnsiEncoding (Windows-1252) bytes for
// the standard 14 fonts. Text is NFC-normalised first so composed accents
// map to single code points; anything still unmappable becomes '?'.
func EncodeWinAnsi(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range norm.NFC.String(s) {
		if r == ' ' {
			out = append(out, ' ')
			continue
		}
		if b, ok := charmap.Windows1252.EncodeRune(r); ok {
			out = append(out, b)
			continue
		}
		out = append(out, replacementByte)
	}
	return out
}

// flateEncode compresses data with zlib, the encoding FlateDecode expects
func flateEncode(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("creating zlib writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("compressing stream: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compressing stream: %w", err)
	}
	return buf.Bytes(), nil
}

// standardFonts are the base fonts every PDF viewer provides
var standardFonts = map[string]bool{
	font.Helvetica:            true,
	font.HelveticaBold:        true,
	font.HelveticaOblique:     true,
	font.HelveticaBoldOblique: true,
	font.Courier:              true,
	font.CourierBold:          true,
	"Times-Roman":             true,
	"Times-Bold":              true,
	"Times-Italic":            true,
	"Times-BoldItalic":        true,
	"Courier-Oblique":         true,
	"Courier-BoldOblique":     true,
	"Symbol":                  true,
	"ZapfDingbats":            true,
}

// baseFont maps a font name recorded on a run to a standard 14 font. Names
// that are not standard fonts (a TrueType measurer, for example) fall back
// to Helvetica of the same weight.
func baseFont(name string, bold bool) string {
	if standardFonts[name] {
		return name
	}
	if bold {
		return font.HelveticaBold
	}
	return font.Helvetica
}
