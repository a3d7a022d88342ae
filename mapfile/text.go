// This file contains Windows-1252 text decoding shared by the Player and
// mission text decoders, for the Western code page this engine's DE/EN
// text was authored under.

package mapfile

import (
	"golang.org/x/text/encoding/charmap"
)

// decodeWin1252 decodes raw as Windows-1252 text. Decoding error bytes are
// replaced by the standard library's substitution rune; this never fails
// because charmap.Windows1252 maps every byte value to some rune.
func decodeWin1252(raw []byte) string {
	dec := charmap.Windows1252.NewDecoder()
	out, err := dec.Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(out)
}
