package cuesheet

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/toozej/cuesplit/internal/types"
)

// decoder turns raw cue sheet bytes into text, reporting false when the
// input is not valid in its charset.
type decoder struct {
	charset string
	decode  func([]byte) (string, bool)
}

// decoders is the ordered ladder tried by decodeText. The last entry is byte
// preserving and never fails, so lossyCharmap is only reached if the ladder
// is ever shortened.
var decoders = []decoder{
	{charset: "utf-8", decode: decodeUTF8},
	{charset: "windows-1251", decode: strictCharmap(charmap.Windows1251)},
	{charset: "windows-1252", decode: strictCharmap(charmap.Windows1252)},
	{charset: "iso-8859-1", decode: strictCharmap(charmap.ISO8859_1)},
}

// lossyCharmap decodes anything, substituting U+FFFD for undefined bytes.
var lossyCharmap = charmap.Windows1251

func decodeUTF8(data []byte) (string, bool) {
	if !utf8.Valid(data) {
		return "", false
	}
	return strings.TrimPrefix(string(data), "\ufeff"), true
}

func strictCharmap(cm *charmap.Charmap) func([]byte) (string, bool) {
	return func(data []byte) (string, bool) {
		var b strings.Builder
		b.Grow(len(data))
		for _, c := range data {
			r := cm.DecodeByte(c)
			if r == utf8.RuneError {
				return "", false
			}
			b.WriteRune(r)
		}
		return b.String(), true
	}
}

// decodeText runs the decoder ladder and returns the text together with the
// name of the charset that produced it.
func decodeText(data []byte) (string, string, error) {
	for _, d := range decoders {
		if text, ok := d.decode(data); ok {
			return text, d.charset, nil
		}
	}

	text, err := lossyCharmap.NewDecoder().String(string(data))
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", types.ErrUnreadable, err)
	}
	return text, lossyCharmap.String() + " (lossy)", nil
}
