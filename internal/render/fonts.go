package render

import (
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

var (
	fallbackOnce sync.Once
	fallbackFont *sfnt.Font
)

// fallback returns the built-in Go Regular font, parsed once.
func fallback() *sfnt.Font {
	fallbackOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			// the embedded TTF is known good; an error here means a
			// corrupted build
			panic("render: parse embedded fallback font: " + err.Error())
		}
		fallbackFont = f
	})
	return fallbackFont
}

// fontCache caches parsed font files by path. Faces are built per
// request because opentype faces are not safe for concurrent use;
// parsing the file is the expensive part.
type fontCache struct {
	mu    sync.RWMutex
	fonts map[string]*sfnt.Font
}

func newFontCache() *fontCache {
	return &fontCache{fonts: make(map[string]*sfnt.Font)}
}

// Face returns a face for the font at path at the given pixel size.
// An unreadable or unparsable font falls back to the built-in face;
// rendering never fails for lack of a font.
func (c *fontCache) Face(path string, size int) font.Face {
	face, err := opentype.NewFace(c.font(path), &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		face, err = opentype.NewFace(fallback(), &opentype.FaceOptions{
			Size:    float64(size),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			panic("render: build fallback face: " + err.Error())
		}
	}
	return face
}

func (c *fontCache) font(path string) *sfnt.Font {
	if path == "" {
		return fallback()
	}

	c.mu.RLock()
	f, ok := c.fonts[path]
	c.mu.RUnlock()
	if ok {
		return f
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if f, ok := c.fonts[path]; ok {
		return f
	}

	f = loadFont(path)
	c.fonts[path] = f
	return f
}

func loadFont(path string) *sfnt.Font {
	data, err := os.ReadFile(path)
	if err != nil {
		return fallback()
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return fallback()
	}
	return f
}
