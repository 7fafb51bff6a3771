package style

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero width", func(c *Config) { c.Canvas.Width = 0 }, "dimensions"},
		{"negative height", func(c *Config) { c.Canvas.Height = -1 }, "dimensions"},
		{"zero font size", func(c *Config) { c.Typography.Size = 0 }, "font size"},
		{"bad align", func(c *Config) { c.Typography.Align = "middle" }, "align"},
		{"negative visible lines", func(c *Config) { c.Scroll.VisibleLines = -1 }, "visible lines"},
		{"negative spacing", func(c *Config) { c.Scroll.LineSpacing = -1 }, "line spacing"},
		{"negative scale decay", func(c *Config) { c.Scroll.ScaleDecay = -0.1 }, "decay"},
		{"negative fade decay", func(c *Config) { c.Scroll.FadeDecay = -1 }, "decay"},
		{"negative blur", func(c *Config) { c.Scroll.BlurInc = -2 }, "blur"},
		{"negative shadow offset", func(c *Config) { c.Shadow.OffsetX = -2 }, "shadow"},
		{"negative stroke width", func(c *Config) { c.Stroke.Width = -1 }, "stroke"},
		{"zero duration", func(c *Config) { c.Export.Duration = 0 }, "duration"},
		{"empty bitrate", func(c *Config) { c.Export.Bitrate = "" }, "bitrate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Canvas = Canvas{Width: 1280, Height: 720}
	cfg.Typography.Color = RGB{10, 20, 30}
	cfg.Typography.Align = AlignRight
	cfg.Scroll.FadeDecay = 0.75
	cfg.Shadow = Shadow{Enabled: true, Color: RGB{1, 2, 3}, OffsetX: 4, OffsetY: 5}
	cfg.Stroke = Stroke{Enabled: true, Color: RGB{9, 8, 7}, Width: 3}
	cfg.Meta = Meta{Title: "T", Artist: "A", Album: "B"}
	cfg.Export = Export{Duration: 12.5, Bitrate: "100M"}

	path := filepath.Join(t.TempDir(), "settings.json")
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !reflect.DeepEqual(cfg, loaded) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestColorMarshalsAsFixedTriple(t *testing.T) {
	cfg := Default()
	cfg.Typography.Color = RGB{255, 128, 0}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"font_color":[255,128,0]`) {
		t.Errorf("color not serialized as fixed triple: %s", data)
	}
}

func TestLoadColorAlwaysThreeElements(t *testing.T) {
	// fixed-length arrays keep color round trips at exactly three
	// elements: shorter input zero-fills, longer input is cut off
	path := filepath.Join(t.TempDir(), "settings.json")
	blob := `{"typography": {"font_color": [1, 2, 3, 4]}}`
	if err := writeFile(path, blob); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Typography.Color != (RGB{1, 2, 3}) {
		t.Errorf("color = %v, want [1 2 3]", cfg.Typography.Color)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/settings.json"); err == nil {
		t.Error("expected error for missing settings file, got nil")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	blob := `{"canvas": {"width": 640, "height": 360}}`
	if err := writeFile(path, blob); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Canvas.Width != 640 || cfg.Canvas.Height != 360 {
		t.Errorf("canvas = %+v, want 640x360", cfg.Canvas)
	}
	if cfg.Scroll.VisibleLines != Default().Scroll.VisibleLines {
		t.Errorf("unset fields should keep defaults, got %+v", cfg.Scroll)
	}
}
