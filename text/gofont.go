// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// FontFace binds a parsed font to the Font it implements. The Size of
// Font is ignored.
type FontFace struct {
	Font Font
	Face *sfnt.Font
}

var (
	once       sync.Once
	collection []FontFace
)

// GoFonts returns the Go fonts. See https://blog.golang.org/go-fonts
// for a description of the fonts.
func GoFonts() []FontFace {
	once.Do(func() {
		register(Font{}, goregular.TTF)
		register(Font{Style: Italic}, goitalic.TTF)
		register(Font{Weight: Bold}, gobold.TTF)
		register(Font{Style: Italic, Weight: Bold}, gobolditalic.TTF)
		register(Font{Weight: Medium}, gomedium.TTF)
		register(Font{Typeface: Mono}, gomono.TTF)
		register(Font{Typeface: Mono, Weight: Bold}, gomonobold.TTF)
		// Ensure that any outside appends will not reuse the backing store.
		n := len(collection)
		collection = collection[:n:n]
	})
	return collection
}

func register(fnt Font, ttf []byte) {
	face, err := sfnt.Parse(ttf)
	if err != nil {
		panic(fmt.Errorf("failed to parse font: %v", err))
	}
	collection = append(collection, FontFace{Font: fnt, Face: face})
}
