package render

import (
	"bytes"
	"testing"

	"github.com/lyrvid/lyrvid/internal/lyrics"
	"github.com/lyrvid/lyrvid/internal/style"
)

// a small canvas keeps the pixel tests fast
func testConfig() style.Config {
	cfg := style.Default()
	cfg.Canvas = style.Canvas{Width: 320, Height: 240}
	cfg.Typography.Size = 16
	cfg.Scroll.LineSpacing = 8
	cfg.Scroll.VisibleLines = 4
	return cfg
}

func testTrack() lyrics.Track {
	return lyrics.Track{
		{Time: 0, Text: "first line"},
		{Time: 2, Text: "second line"},
		{Time: 5, Text: "third line"},
		{Time: 9, Text: "fourth line"},
	}
}

func TestLineParamsActiveLineAlwaysFullyVisible(t *testing.T) {
	s := style.Scroll{
		ScaleDecay: 0.9,
		FadeDecay:  100,
		BlurBase:   3,
		BlurInc:    5,
	}

	scale, alpha, blur := lineParams(s, 0)
	if scale != 1 {
		t.Errorf("scale at distance 0 = %v, want 1", scale)
	}
	if alpha != 255 {
		t.Errorf("alpha at distance 0 = %v, want 255", alpha)
	}
	if blur != 0 {
		t.Errorf("blur at distance 0 = %v, want 0", blur)
	}
}

func TestLineParamsMonotonicDecay(t *testing.T) {
	coeffs := []style.Scroll{
		{ScaleDecay: 0.1, FadeDecay: 0.5, BlurBase: 0, BlurInc: 2},
		{ScaleDecay: 0, FadeDecay: 0, BlurBase: 1, BlurInc: 0},
		{ScaleDecay: 0.4, FadeDecay: 3, BlurBase: 0.5, BlurInc: 0.25},
	}

	for _, s := range coeffs {
		for d := 1; d < 8; d++ {
			scale, alpha, blur := lineParams(s, d)
			nextScale, nextAlpha, nextBlur := lineParams(s, d+1)
			if nextScale > scale {
				t.Errorf("scale grew from %v to %v at distance %d", scale, nextScale, d+1)
			}
			if nextAlpha > alpha {
				t.Errorf("alpha grew from %v to %v at distance %d", alpha, nextAlpha, d+1)
			}
			if nextBlur < blur {
				t.Errorf("blur shrank from %v to %v at distance %d", blur, nextBlur, d+1)
			}
		}
	}
}

func TestLineParamsFloors(t *testing.T) {
	s := style.Scroll{ScaleDecay: 0.5, FadeDecay: 10}

	scale, alpha, _ := lineParams(s, 6)
	if scale != 0.1 {
		t.Errorf("scale floor = %v, want 0.1", scale)
	}
	if alpha != 0 {
		t.Errorf("alpha floor = %v, want 0", alpha)
	}

	// signed distance only matters for position, not visibility
	scaleNeg, alphaNeg, _ := lineParams(s, -6)
	if scaleNeg != scale || alphaNeg != alpha {
		t.Errorf("params asymmetric: (%v,%v) vs (%v,%v)", scale, alpha, scaleNeg, alphaNeg)
	}
}

func TestVisibleWindow(t *testing.T) {
	tests := []struct {
		name    string
		active  int
		total   int
		visible int
		want    []candidate
	}{
		{
			name: "middle of track", active: 5, total: 20, visible: 2,
			want: []candidate{{5, 0}, {4, -1}, {6, 1}, {3, -2}, {7, 2}},
		},
		{
			name: "before first line", active: -1, total: 3, visible: 2,
			want: []candidate{{0, 1}, {1, 2}},
		},
		{
			name: "clipped at start", active: 0, total: 10, visible: 2,
			want: []candidate{{0, 0}, {1, 1}, {2, 2}},
		},
		{
			name: "clipped at end", active: 9, total: 10, visible: 2,
			want: []candidate{{9, 0}, {8, -1}, {7, -2}},
		},
		{
			name: "empty track", active: -1, total: 0, visible: 4,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := visibleWindow(tt.active, tt.total, tt.visible)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("candidate %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAnchor(t *testing.T) {
	tests := []struct {
		align string
		want  int
	}{
		{style.AlignLeft, 50},
		{style.AlignCenter, 160},
		{style.AlignRight, 270},
	}

	for _, tt := range tests {
		if got := anchor(tt.align, 320); got != tt.want {
			t.Errorf("anchor(%q, 320) = %d, want %d", tt.align, got, tt.want)
		}
	}
}

func TestFrameDeterminism(t *testing.T) {
	cfg := testConfig()
	cfg.Shadow.Enabled = true
	cfg.Stroke.Enabled = true
	track := testTrack()

	r := New()
	first := r.Frame(cfg, track, 2.5)
	second := r.Frame(cfg, track, 2.5)
	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("same renderer produced different frames for identical inputs")
	}

	// a fresh renderer (cold font cache) must agree too
	third := New().Frame(cfg, track, 2.5)
	if !bytes.Equal(first.Pix, third.Pix) {
		t.Error("fresh renderer produced a different frame for identical inputs")
	}
}

func TestFrameDrawsSomething(t *testing.T) {
	cfg := testConfig()
	frame := New().Frame(cfg, testTrack(), 0)

	if !hasInk(frame.Pix) {
		t.Error("frame is fully transparent, expected header and lyrics")
	}
}

func TestFrameFallsBackOnMissingFont(t *testing.T) {
	cfg := testConfig()
	cfg.Typography.FontPath = "/nonexistent/font.ttf"

	frame := New().Frame(cfg, testTrack(), 0)
	if !hasInk(frame.Pix) {
		t.Error("fallback font drew nothing")
	}
}

func TestInvisibleLinesLeaveNoPixels(t *testing.T) {
	cfg := testConfig()
	cfg.Meta = style.Meta{} // keep the header out of the comparison
	// alpha at distance 1 is 255 - 10*50 < 0, below the floor
	cfg.Scroll.FadeDecay = 10

	active := lyrics.Track{{Time: 0, Text: "only visible line"}}
	padded := append(lyrics.Track{}, active...)
	padded = append(padded,
		lyrics.Line{Time: 100, Text: "hidden below"},
		lyrics.Line{Time: 200, Text: "hidden further"},
	)

	r := New()
	got := r.Frame(cfg, padded, 0)
	want := r.Frame(cfg, active, 0)
	if !bytes.Equal(got.Pix, want.Pix) {
		t.Error("lines below the visibility floor left pixels in the frame")
	}
}

func TestFrameEmptyTrackHeaderOnly(t *testing.T) {
	cfg := testConfig()
	frame := New().Frame(cfg, lyrics.Track{}, 0)
	if !hasInk(frame.Pix) {
		t.Error("expected the header block even with no lyrics")
	}
}

func hasInk(pix []byte) bool {
	for _, b := range pix {
		if b != 0 {
			return true
		}
	}
	return false
}
