// Package fontload provides real font binaries for tests, plus an
// independent SFNT view of the same bytes for cross-checking.
package fontload

import (
	"os"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// ScalableFont is a parsed scalable font with original bytes and SFNT view.
type ScalableFont struct {
	Fontname string
	Binary   []byte
	SFNT     *sfnt.Font
}

// GoFonts returns the embedded Go font family members used as the test
// corpus: real, complete TrueType fonts that ship with golang.org/x/image.
func GoFonts() map[string][]byte {
	return map[string][]byte{
		"GoRegular": goregular.TTF,
		"GoBold":    gobold.TTF,
		"GoItalic":  goitalic.TTF,
	}
}

// GoRegular returns the Go Regular font bytes.
func GoRegular() []byte {
	return goregular.TTF
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	return ParseOpenTypeFont(bytez)
}

// ParseOpenTypeFont parses an OpenType font (TTF or OTF) from memory,
// using the x/image sfnt parser. Tests use the resulting view as an
// independent second opinion on the same bytes.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull)
	return f, err
}
