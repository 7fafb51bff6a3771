package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/lyrvid/lyrvid/internal/style"
)

const (
	// padding around the glyph layer so blur is not clipped
	layerPadding = 20

	// lines at or below this alpha draw nothing
	visibilityFloor = 5

	// shadow alpha as a fraction of the line alpha
	shadowAlphaRatio = 0.6
)

// drawTextWithEffects renders one lyric line onto its own padded
// layer (shadow, stroke, main run), applies scale and blur to the
// layer, then composites it onto the frame at the alignment-adjusted,
// vertically centered position.
func (r *Renderer) drawTextWithEffects(
	dst *image.NRGBA,
	text string,
	face font.Face,
	x, y int,
	cfg style.Config,
	alpha, scale, blur float64,
) {
	if alpha <= visibilityFloor {
		return
	}
	a := uint8(alpha)

	bounds, _ := font.BoundString(face, text)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if w <= 0 || h <= 0 {
		return
	}

	layer := image.NewNRGBA(image.Rect(0, 0, w+2*layerPadding, h+2*layerPadding))

	// dot that places the ink box at (layerPadding, layerPadding)
	dot := fixed.Point26_6{
		X: fixed.I(layerPadding) - bounds.Min.X,
		Y: fixed.I(layerPadding) - bounds.Min.Y,
	}

	if cfg.Shadow.Enabled {
		drawGlyphRun(layer, text, face,
			offsetDot(dot, cfg.Shadow.OffsetX, cfg.Shadow.OffsetY),
			nrgba(cfg.Shadow.Color, uint8(alpha*shadowAlphaRatio)))
	}

	if cfg.Stroke.Enabled && cfg.Stroke.Width > 0 {
		sw := cfg.Stroke.Width
		strokeColor := nrgba(cfg.Stroke.Color, a)
		for dy := -sw; dy <= sw; dy++ {
			for dx := -sw; dx <= sw; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				if dx*dx+dy*dy > sw*sw {
					continue
				}
				drawGlyphRun(layer, text, face, offsetDot(dot, dx, dy), strokeColor)
			}
		}
	}

	drawGlyphRun(layer, text, face, dot, nrgba(cfg.Typography.Color, a))

	processed := layer
	if scale != 1.0 {
		newW := int(float64(layer.Bounds().Dx()) * scale)
		newH := int(float64(layer.Bounds().Dy()) * scale)
		if newW <= 0 || newH <= 0 {
			return
		}
		processed = imaging.Resize(processed, newW, newH, imaging.Lanczos)
	}
	if blur > 0 {
		processed = imaging.Blur(processed, blur)
	}

	finalW := processed.Bounds().Dx()
	finalH := processed.Bounds().Dy()

	destX := x
	switch cfg.Typography.Align {
	case style.AlignCenter:
		destX = x - finalW/2
	case style.AlignRight:
		destX = x - finalW
	}
	destY := y - finalH/2

	draw.Draw(dst,
		image.Rect(destX, destY, destX+finalW, destY+finalH),
		processed, processed.Bounds().Min, draw.Over)
}

// drawString draws a single run with its top edge at y and its x
// anchor adjusted for alignment. Used for the header block, which
// carries no layer effects.
func drawString(
	dst *image.NRGBA,
	text string,
	face font.Face,
	x, y int,
	rgb style.RGB,
	alpha uint8,
	align string,
) {
	w := font.MeasureString(face, text).Ceil()
	switch align {
	case style.AlignCenter:
		x -= w / 2
	case style.AlignRight:
		x -= w
	}

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(nrgba(rgb, alpha)),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}

func drawGlyphRun(dst draw.Image, text string, face font.Face, dot fixed.Point26_6, col color.NRGBA) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  dot,
	}
	d.DrawString(text)
}

func offsetDot(dot fixed.Point26_6, dx, dy int) fixed.Point26_6 {
	return fixed.Point26_6{
		X: dot.X + fixed.I(dx),
		Y: dot.Y + fixed.I(dy),
	}
}

func nrgba(rgb style.RGB, alpha uint8) color.NRGBA {
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: alpha}
}
