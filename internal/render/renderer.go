// Package render turns a style configuration, a lyric track and a
// timestamp into a fully composited transparent frame. Rendering is
// pure: frames carry no state between timestamps, and identical
// inputs produce byte-identical output.
package render

import (
	"image"
	"math"

	"github.com/lyrvid/lyrvid/internal/lyrics"
	"github.com/lyrvid/lyrvid/internal/style"
)

const (
	// layout constants of the reference design
	headerTopMargin = 40
	edgeMargin      = 50
	infoAlpha       = 200

	// per-distance decay constants
	minScale      = 0.1
	fadeAlphaStep = 50
)

// Renderer renders frames. It is safe for concurrent use; the only
// shared state is the read-mostly font cache.
type Renderer struct {
	fonts *fontCache
}

func New() *Renderer {
	return &Renderer{fonts: newFontCache()}
}

// Frame renders the overlay at time t as a straight-alpha RGBA image
// over a fully transparent background. The track must be sorted
// ascending by time; neither input is mutated.
func (r *Renderer) Frame(cfg style.Config, track lyrics.Track, t float64) *image.NRGBA {
	width := cfg.Canvas.Width
	height := cfg.Canvas.Height
	size := cfg.Typography.Size

	frame := image.NewNRGBA(image.Rect(0, 0, width, height))

	titleFace := r.fonts.Face(cfg.Typography.FontPath, int(float64(size)*1.5))
	infoFace := r.fonts.Face(cfg.Typography.FontPath, int(float64(size)*0.8))
	lineFace := r.fonts.Face(cfg.Typography.FontPath, size)

	anchorX := anchor(cfg.Typography.Align, width)

	// header block: title, then "artist - album" at reduced alpha
	drawString(frame, cfg.Meta.Title, titleFace,
		anchorX, headerTopMargin,
		cfg.Typography.Color, 255, cfg.Typography.Align)
	drawString(frame, cfg.Meta.Artist+" - "+cfg.Meta.Album, infoFace,
		anchorX, headerTopMargin+size*2,
		cfg.Typography.Color, infoAlpha, cfg.Typography.Align)

	// scrollable region sits below the header
	scrollTop := headerTopMargin + size*4
	centerY := scrollTop + (height-scrollTop-edgeMargin)/2

	active := track.ActiveIndex(t)
	for _, c := range visibleWindow(active, len(track), cfg.Scroll.VisibleLines) {
		scale, alpha, blur := lineParams(cfg.Scroll, c.dist)
		y := centerY + c.dist*(size+cfg.Scroll.LineSpacing)
		r.drawTextWithEffects(frame, track[c.index].Text, lineFace,
			anchorX, y, cfg, alpha, scale, blur)
	}

	return frame
}

// candidate pairs a track index with its signed distance from the
// active line.
type candidate struct {
	index int
	dist  int
}

// visibleWindow selects the active line plus lines at increasing
// distance above and below it, clipped to track bounds.
func visibleWindow(active, total, visibleLines int) []candidate {
	var out []candidate
	if active >= 0 && active < total {
		out = append(out, candidate{active, 0})
	}
	for i := 1; i <= visibleLines/2+1; i++ {
		if active-i >= 0 {
			out = append(out, candidate{active - i, -i})
		}
		if below := active + i; below >= 0 && below < total {
			out = append(out, candidate{below, i})
		}
	}
	return out
}

// lineParams computes scale, alpha and blur radius for a line at the
// given signed distance. All three degrade monotonically with
// distance; the active line is always full scale, fully opaque and
// sharp regardless of coefficients.
func lineParams(s style.Scroll, dist int) (scale, alpha, blur float64) {
	d := math.Abs(float64(dist))
	scale = math.Max(minScale, 1-s.ScaleDecay*d)
	alpha = math.Max(0, 255-s.FadeDecay*d*fadeAlphaStep)
	blur = s.BlurBase + s.BlurInc*d
	if dist == 0 {
		alpha = 255
		blur = 0
	}
	return scale, alpha, blur
}

// anchor returns the x coordinate all text anchors to for the given
// alignment.
func anchor(align string, width int) int {
	switch align {
	case style.AlignLeft:
		return edgeMargin
	case style.AlignRight:
		return width - edgeMargin
	default:
		return width / 2
	}
}
