package font

import (
	"fmt"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// GoFont measures text with the Go TrueType fonts bundled in
// golang.org/x/image. Faces are created lazily per font size and cached;
// a face keeps internal buffers, so access is serialised.
type GoFont struct {
	Name string

	font *opentype.Font

	mu    sync.Mutex
	faces map[float64]xfont.Face
}

// NewGoFont parses Go Regular, or Go Bold when bold is set
func NewGoFont(bold bool) (*GoFont, error) {
	name, data := "Go-Regular", goregular.TTF
	if bold {
		name, data = "Go-Bold", gobold.TTF
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	return &GoFont{
		Name:  name,
		font:  f,
		faces: make(map[float64]xfont.Face),
	}, nil
}

// StringWidth returns the advance width of s at fontSize, in points.
// Faces are opened at 72 DPI so one pixel equals one point.
func (g *GoFont) StringWidth(s string, fontSize float64) float64 {
	if s == "" || fontSize <= 0 {
		return 0
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	face, ok := g.faces[fontSize]
	if !ok {
		var err error
		face, err = opentype.NewFace(g.font, &opentype.FaceOptions{
			Size:    fontSize,
			DPI:     72,
			Hinting: xfont.HintingNone,
		})
		if err != nil {
			// Only reachable with an invalid size; fall back to Helvetica.
			return Standard(Helvetica).StringWidth(s, fontSize)
		}
		g.faces[fontSize] = face
	}

	adv := xfont.MeasureString(face, s)
	return float64(adv) / 64
}

// Measure adapts the font to a [MeasureFunc]
func (g *GoFont) Measure() MeasureFunc {
	return g.StringWidth
}

// Close releases the cached faces
func (g *GoFont) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for size, face := range g.faces {
		face.Close()
		delete(g.faces, size)
	}
	return nil
}
