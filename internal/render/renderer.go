// Package render procedurally draws the 512×512 surah title cards.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"qurangen/internal/config"
)

// Canvas and layout constants, kept from the original cards.
const (
	// CardSize is the width and height of every card in pixels.
	CardSize = 512

	// fontHeight was measured by eye for the Thuluth face; its ascent and
	// descent metrics are unreliable for Arabic glyphs.
	fontHeight  = 50
	lineSpacing = 30

	// reducedIndex is Al-Kafiron, too wide to fit at the regular size.
	reducedIndex   = 109
	reducedXOffset = 10

	blurRadius = 7
)

// surahWord is the upper line on every card except the placeholder.
const surahWord = "سُورَةُ"

// Palette.
var (
	paletteRed  = color.NRGBA{R: 221, G: 95, B: 86, A: 255}
	paletteTeal = color.NRGBA{R: 51, G: 110, B: 106, A: 255}
)

// BackgroundColor is the 50% mix of the two palette colors, used as the
// card base under the per-card theme overlay.
func BackgroundColor() color.NRGBA {
	return lerpColor(paletteRed, paletteTeal, 0.5)
}

// ThemeColor returns the overlay color for a card index: red for odd
// indices, dark teal for even ones.
func ThemeColor(index int) color.NRGBA {
	if index%2 != 0 {
		return paletteRed
	}

	return paletteTeal
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}

	return color.NRGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: 255,
	}
}

// Renderer draws title cards with a parsed TTF font.
type Renderer struct {
	font        *truetype.Font
	regularFace font.Face
	reducedFace font.Face
	regularSize int
	reducedSize int
	out         io.Writer
}

// NewRenderer parses the configured font and prepares both face sizes.
func NewRenderer(cfg *config.DrawablesConfig) (*Renderer, error) {
	data, err := os.ReadFile(cfg.FontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read font %s: %w", cfg.FontPath, err)
	}

	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", cfg.FontPath, err)
	}

	return &Renderer{
		font:        f,
		regularFace: truetype.NewFace(f, &truetype.Options{Size: float64(cfg.FontSize), DPI: 72}),
		reducedFace: truetype.NewFace(f, &truetype.Options{Size: float64(cfg.FontSizeReduced), DPI: 72}),
		regularSize: cfg.FontSize,
		reducedSize: cfg.FontSizeReduced,
		out:         os.Stdout,
	}, nil
}

// WithProgressWriter redirects the user-facing progress lines.
func (r *Renderer) WithProgressWriter(w io.Writer) *Renderer {
	r.out = w

	return r
}

// Card renders the title card for an index at the given opacity. The
// base background stays fully opaque; the theme overlay and text carry
// the opacity.
func (r *Renderer) Card(index int, alpha uint8) (*image.RGBA, error) {
	if index < 0 || index >= len(SurahNames) {
		return nil, fmt.Errorf("card index %d out of range", index)
	}

	img := image.NewRGBA(image.Rect(0, 0, CardSize, CardSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(BackgroundColor()), image.Point{}, draw.Src)

	overlay := ThemeColor(index)
	overlay.A = alpha
	draw.Draw(img, img.Bounds(), image.NewUniform(overlay), image.Point{}, draw.Over)

	face, size := r.regularFace, r.regularSize
	if index == reducedIndex {
		face, size = r.reducedFace, r.reducedSize
	}

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(r.font)
	c.SetFontSize(float64(size))
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetHinting(font.HintingFull)
	c.SetSrc(image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: alpha}))

	textYOffset := size/2 + lineSpacing
	centerX := CardSize / 2
	centerY := CardSize/2 - fontHeight

	var topLine, bottomLine string

	bottomXOffset := 0

	if index == 0 {
		// The placeholder name is two words rendered as two lines
		words := splitTwoWords(SurahNames[0])
		topLine, bottomLine = words[0], words[1]
	} else {
		topLine, bottomLine = surahWord, SurahNames[index]
		if index == reducedIndex {
			bottomXOffset = reducedXOffset
		}
	}

	if err := drawCentered(c, face, topLine, centerX, centerY-textYOffset); err != nil {
		return nil, err
	}

	if err := drawCentered(c, face, bottomLine, centerX+bottomXOffset, centerY+textYOffset); err != nil {
		return nil, err
	}

	return img, nil
}

// Export batch-writes every drawable into dir: the blurred placeholder
// first, then the placeholder and all 114 numbered cards at full opacity.
func (r *Renderer) Export(dir string) error {
	placeholder, err := r.Card(0, 255)
	if err != nil {
		return err
	}

	if err := r.writePNG(BoxBlur(placeholder, blurRadius), filepath.Join(dir, BlurredFilename)); err != nil {
		return err
	}

	for index := range SurahNames {
		img, err := r.Card(index, 255)
		if err != nil {
			return err
		}

		if err := r.writePNG(img, filepath.Join(dir, Filename(index))); err != nil {
			return err
		}
	}

	return nil
}

// SaveCard writes the full-opacity files for one index: the placeholder
// produces both its blurred and plain variant.
func (r *Renderer) SaveCard(index int, img *image.RGBA, dir string) error {
	if index == 0 {
		if err := r.writePNG(BoxBlur(img, blurRadius), filepath.Join(dir, BlurredFilename)); err != nil {
			return err
		}
	}

	return r.writePNG(img, filepath.Join(dir, Filename(index)))
}

func (r *Renderer) writePNG(img *image.RGBA, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	fmt.Fprintf(r.out, "[✓] generated: %s\n", path)

	return nil
}

func drawCentered(c *freetype.Context, face font.Face, text string, centerX, y int) error {
	width := font.MeasureString(face, text).Ceil()

	// Baseline sits half the measured line height below the visual center.
	pt := freetype.Pt(centerX-width/2, y+fontHeight/2)
	if _, err := c.DrawString(text, pt); err != nil {
		return fmt.Errorf("failed to draw %q: %w", text, err)
	}

	return nil
}

func splitTwoWords(s string) [2]string {
	for i, r := range s {
		if r == ' ' {
			return [2]string{s[:i], s[i+1:]}
		}
	}

	return [2]string{s, ""}
}
