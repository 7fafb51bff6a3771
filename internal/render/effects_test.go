package render

import (
	"bytes"
	"image"
	"testing"

	"github.com/lyrvid/lyrvid/internal/style"
)

func TestDrawTextWithEffectsVisibilityFloor(t *testing.T) {
	cfg := testConfig()
	r := New()
	face := r.fonts.Face("", cfg.Typography.Size)

	for _, alpha := range []float64{0, 3, 5} {
		frame := image.NewNRGBA(image.Rect(0, 0, 320, 240))
		r.drawTextWithEffects(frame, "invisible", face, 160, 120, cfg, alpha, 1, 0)
		if hasInk(frame.Pix) {
			t.Errorf("alpha %v drew pixels, want none at or below the floor", alpha)
		}
	}

	frame := image.NewNRGBA(image.Rect(0, 0, 320, 240))
	r.drawTextWithEffects(frame, "visible", face, 160, 120, cfg, 6, 1, 0)
	if !hasInk(frame.Pix) {
		t.Error("alpha 6 drew nothing, want pixels just above the floor")
	}
}

func TestDrawTextWithEffectsDecorations(t *testing.T) {
	base := testConfig()
	r := New()
	face := r.fonts.Face("", base.Typography.Size)

	plain := image.NewNRGBA(image.Rect(0, 0, 320, 240))
	r.drawTextWithEffects(plain, "decorated", face, 160, 120, base, 255, 1, 0)

	shadowCfg := base
	shadowCfg.Shadow.Enabled = true
	shadowCfg.Shadow.Color = style.RGB{255, 0, 0}
	shadowed := image.NewNRGBA(image.Rect(0, 0, 320, 240))
	r.drawTextWithEffects(shadowed, "decorated", face, 160, 120, shadowCfg, 255, 1, 0)
	if bytes.Equal(plain.Pix, shadowed.Pix) {
		t.Error("enabling the shadow changed nothing")
	}

	strokeCfg := base
	strokeCfg.Stroke.Enabled = true
	strokeCfg.Stroke.Color = style.RGB{0, 255, 0}
	stroked := image.NewNRGBA(image.Rect(0, 0, 320, 240))
	r.drawTextWithEffects(stroked, "decorated", face, 160, 120, strokeCfg, 255, 1, 0)
	if bytes.Equal(plain.Pix, stroked.Pix) {
		t.Error("enabling the stroke changed nothing")
	}
	if inkCount(stroked.Pix) <= inkCount(plain.Pix) {
		t.Error("stroke did not widen the glyph coverage")
	}
}

func TestDrawTextWithEffectsScaleShrinksCoverage(t *testing.T) {
	cfg := testConfig()
	r := New()
	face := r.fonts.Face("", cfg.Typography.Size)

	full := image.NewNRGBA(image.Rect(0, 0, 320, 240))
	r.drawTextWithEffects(full, "scaled run", face, 160, 120, cfg, 255, 1, 0)

	half := image.NewNRGBA(image.Rect(0, 0, 320, 240))
	r.drawTextWithEffects(half, "scaled run", face, 160, 120, cfg, 255, 0.5, 0)

	if inkCount(half.Pix) >= inkCount(full.Pix) {
		t.Error("half scale did not reduce glyph coverage")
	}
}

func TestDrawTextWithEffectsBlurSpreads(t *testing.T) {
	cfg := testConfig()
	r := New()
	face := r.fonts.Face("", cfg.Typography.Size)

	sharp := image.NewNRGBA(image.Rect(0, 0, 320, 240))
	r.drawTextWithEffects(sharp, "blurred run", face, 160, 120, cfg, 255, 1, 0)

	blurred := image.NewNRGBA(image.Rect(0, 0, 320, 240))
	r.drawTextWithEffects(blurred, "blurred run", face, 160, 120, cfg, 255, 1, 3)

	if bytes.Equal(sharp.Pix, blurred.Pix) {
		t.Error("blur radius 3 changed nothing")
	}
	if inkCount(blurred.Pix) <= inkCount(sharp.Pix) {
		t.Error("blur did not spread coverage")
	}
}

// inkCount counts pixels with any alpha at all
func inkCount(pix []byte) int {
	count := 0
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0 {
			count++
		}
	}
	return count
}
