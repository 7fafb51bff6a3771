package style

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// RGB is a color triple. The fixed-length array keeps JSON round
// trips producing exactly three elements instead of an open-ended
// list.
type RGB [3]uint8

// horizontal text alignment
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// Canvas holds the output frame dimensions in pixels.
type Canvas struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Typography holds the font settings shared by the header and the
// lyric lines.
type Typography struct {
	FontPath string `json:"font_path"`
	Size     int    `json:"font_size"`
	Color    RGB    `json:"font_color"`
	Align    string `json:"align"`
}

// Scroll holds the distance-decay coefficients of the scrolling
// lyric region.
type Scroll struct {
	VisibleLines int     `json:"visible_lines"`
	LineSpacing  int     `json:"line_spacing"`
	ScaleDecay   float64 `json:"scale_decay"`
	FadeDecay    float64 `json:"fade_decay"`
	BlurBase     float64 `json:"blur_base"`
	BlurInc      float64 `json:"blur_inc"`
}

// Shadow is the optional drop shadow behind each lyric line.
type Shadow struct {
	Enabled bool `json:"enabled"`
	Color   RGB  `json:"color"`
	OffsetX int  `json:"x"`
	OffsetY int  `json:"y"`
}

// Stroke is the optional outline around each glyph run.
type Stroke struct {
	Enabled bool `json:"enabled"`
	Color   RGB  `json:"color"`
	Width   int  `json:"width"`
}

// Meta holds the header display strings.
type Meta struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Album  string `json:"album"`
}

// Export holds the output file parameters.
type Export struct {
	Duration float64 `json:"duration"` // seconds
	Bitrate  string  `json:"bitrate"`  // ffmpeg notation, e.g. "50M"
}

// Config is the immutable bundle of all rendering parameters. The
// renderer and exporter read it verbatim and never mutate it.
type Config struct {
	Canvas     Canvas     `json:"canvas"`
	Typography Typography `json:"typography"`
	Scroll     Scroll     `json:"scroll"`
	Shadow     Shadow     `json:"shadow"`
	Stroke     Stroke     `json:"stroke"`
	Meta       Meta       `json:"meta"`
	Export     Export     `json:"export"`
}

// Default returns the reference parameter set.
func Default() Config {
	return Config{
		Canvas: Canvas{
			Width:  1920,
			Height: 1080,
		},
		Typography: Typography{
			FontPath: "",
			Size:     60,
			Color:    RGB{255, 255, 255},
			Align:    AlignCenter,
		},
		Scroll: Scroll{
			VisibleLines: 10,
			LineSpacing:  80,
			ScaleDecay:   0.1,
			FadeDecay:    0.5,
			BlurBase:     0,
			BlurInc:      2,
		},
		Shadow: Shadow{
			Enabled: false,
			Color:   RGB{0, 0, 0},
			OffsetX: 2,
			OffsetY: 2,
		},
		Stroke: Stroke{
			Enabled: false,
			Color:   RGB{0, 0, 0},
			Width:   2,
		},
		Meta: Meta{
			Title:  "Song Title",
			Artist: "Artist",
			Album:  "Album",
		},
		Export: Export{
			Duration: 60,
			Bitrate:  "50M",
		},
	}
}

// Validate rejects out-of-range values before a render or export job
// starts. The renderer's own clamps (scale floor, alpha floor) are
// not validation concerns.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf(
			"canvas dimensions must be positive, got %dx%d",
			c.Canvas.Width, c.Canvas.Height,
		)
	}
	if c.Typography.Size <= 0 {
		return fmt.Errorf("font size must be positive, got %d", c.Typography.Size)
	}
	switch c.Typography.Align {
	case AlignLeft, AlignCenter, AlignRight:
	default:
		return fmt.Errorf(
			"align must be left, center or right, got %q",
			c.Typography.Align,
		)
	}
	if c.Scroll.VisibleLines < 0 {
		return fmt.Errorf("visible lines must not be negative, got %d", c.Scroll.VisibleLines)
	}
	if c.Scroll.LineSpacing < 0 {
		return fmt.Errorf("line spacing must not be negative, got %d", c.Scroll.LineSpacing)
	}
	if c.Scroll.ScaleDecay < 0 || c.Scroll.FadeDecay < 0 {
		return fmt.Errorf(
			"decay coefficients must not be negative, got scale=%v fade=%v",
			c.Scroll.ScaleDecay, c.Scroll.FadeDecay,
		)
	}
	if c.Scroll.BlurBase < 0 || c.Scroll.BlurInc < 0 {
		return fmt.Errorf(
			"blur values must not be negative, got base=%v inc=%v",
			c.Scroll.BlurBase, c.Scroll.BlurInc,
		)
	}
	if c.Shadow.OffsetX < 0 || c.Shadow.OffsetY < 0 {
		return fmt.Errorf(
			"shadow offsets must not be negative, got x=%d y=%d",
			c.Shadow.OffsetX, c.Shadow.OffsetY,
		)
	}
	if c.Stroke.Width < 0 {
		return fmt.Errorf("stroke width must not be negative, got %d", c.Stroke.Width)
	}
	if c.Export.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %v", c.Export.Duration)
	}
	if c.Export.Bitrate == "" {
		return fmt.Errorf("bitrate must not be empty")
	}
	return nil
}

// Load reads a settings file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse settings: %w", err)
	}
	return cfg, nil
}

// Save writes the settings file, creating parent directories as
// needed.
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
