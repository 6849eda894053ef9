// Package grid decodes one line of a shared Wordle grid into squares.
//
// Every colored square is matched by its UTF-32LE byte pattern, not by rune
// class, so that the dark-theme and high-contrast palettes map exactly the
// same way the share text renders them.
package grid

import (
	"fmt"

	perr "wordlebot/internal/platform/errors"

	"golang.org/x/text/encoding/unicode/utf32"
)

// Width is the number of squares in one attempt line
const Width = 5

// GlyphBytes is the UTF-32 size of one square
const GlyphBytes = 4

// LineBytes is the UTF-32 size of a full line
const LineBytes = Width * GlyphBytes

// Square is one cell of the grid
type Square uint8

const (
	// Grey is a letter not in the answer
	Grey Square = iota
	// Yellow is a letter in the answer at another position
	Yellow
	// Green is a letter in the right position
	Green
)

func (s Square) String() string {
	switch s {
	case Grey:
		return "grey"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	default:
		return fmt.Sprintf("square(%d)", uint8(s))
	}
}

// Line is one decoded attempt
type Line [Width]Square

// Count returns how many squares of the given color the line holds
func (l Line) Count(s Square) int {
	n := 0
	for _, sq := range l {
		if sq == s {
			n++
		}
	}
	return n
}

// Solved reports whether every square is green
func (l Line) Solved() bool { return l.Count(Green) == Width }

type glyph [GlyphBytes]byte

// palette maps each known square to its UTF-32LE encoding
var palette = map[glyph]Square{
	{0x1C, 0x2B, 0x00, 0x00}: Grey,   // U+2B1C white large square (light theme)
	{0x1B, 0x2B, 0x00, 0x00}: Grey,   // U+2B1B black large square (dark theme)
	{0xE8, 0xF7, 0x01, 0x00}: Yellow, // U+1F7E8 yellow square
	{0xE6, 0xF7, 0x01, 0x00}: Yellow, // U+1F7E6 blue square (high contrast)
	{0xE9, 0xF7, 0x01, 0x00}: Green,  // U+1F7E9 green square
	{0xE7, 0xF7, 0x01, 0x00}: Green,  // U+1F7E7 orange square (high contrast)
}

var codec = utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)

// Encode re-encodes s to fixed-width UTF-32LE
func Encode(s string) ([]byte, error) {
	b, err := codec.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "utf32 encode")
	}
	return b, nil
}

// DecodeLine turns one grid line into its squares. Any width other than five
// glyphs or any byte pattern outside the palette is a contract error: the
// validator is expected to have rejected such lines already
func DecodeLine(line string) (Line, error) {
	var out Line
	b, err := Encode(line)
	if err != nil {
		return out, perr.WithOp(err, "grid.decode")
	}
	if len(b) != LineBytes {
		return out, perr.WithOp(perr.Contractf("grid line is %d utf32 bytes, want %d", len(b), LineBytes), "grid.decode")
	}
	for i := range Width {
		var g glyph
		copy(g[:], b[i*GlyphBytes:(i+1)*GlyphBytes])
		sq, ok := palette[g]
		if !ok {
			return out, perr.WithOp(perr.Contractf("unknown utf32 glyph %d %d %d %d at column %d", g[0], g[1], g[2], g[3], i), "grid.decode")
		}
		out[i] = sq
	}
	return out, nil
}
