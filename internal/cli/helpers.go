package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lyrvid/lyrvid/internal/style"
)

// registerStyleFlags adds the per-command style overrides shared by
// the rendering commands.
func registerStyleFlags(cmd *cobra.Command) {
	cmd.Flags().Int("width", 1920, "Frame width in pixels")
	cmd.Flags().Int("height", 1080, "Frame height in pixels")
	cmd.Flags().String("font", "", "TTF/OTF font file (built-in font when empty)")
	cmd.Flags().Int("font-size", 60, "Base font size in pixels")
	cmd.Flags().String("align", "center", "Horizontal alignment (left, center, right)")
	cmd.Flags().String("title", "", "Song title shown in the header")
	cmd.Flags().String("artist", "", "Artist shown in the header")
	cmd.Flags().String("album", "", "Album shown in the header")
	cmd.Flags().Int("visible-lines", 10, "Number of lyric lines kept visible")
	cmd.Flags().Int("line-spacing", 80, "Vertical spacing between lines in pixels")
	cmd.Flags().Float64("scale-decay", 0.1, "Scale lost per line of distance")
	cmd.Flags().Float64("fade-decay", 0.5, "Opacity decay coefficient per line of distance")
	cmd.Flags().Float64("blur-base", 0, "Blur radius of the nearest inactive lines")
	cmd.Flags().Float64("blur-inc", 2, "Blur radius added per line of distance")
	cmd.Flags().Bool("shadow", false, "Draw a drop shadow behind each line")
	cmd.Flags().Int("shadow-offset", 2, "Shadow offset in pixels")
	cmd.Flags().Bool("stroke", false, "Draw an outline around each glyph")
	cmd.Flags().Int("stroke-width", 2, "Outline width in pixels")
}

// resolveConfig builds the style config for a command: the settings
// file if given (otherwise defaults), with any changed flags applied
// on top.
func resolveConfig(cmd *cobra.Command) (style.Config, error) {
	cfg := style.Default()

	settingsPath, _ := cmd.Flags().GetString("settings")
	if settingsPath != "" {
		loaded, err := style.Load(settingsPath)
		if err != nil {
			return style.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Canvas.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("height") {
		cfg.Canvas.Height, _ = flags.GetInt("height")
	}
	if flags.Changed("font") {
		cfg.Typography.FontPath, _ = flags.GetString("font")
	}
	if flags.Changed("font-size") {
		cfg.Typography.Size, _ = flags.GetInt("font-size")
	}
	if flags.Changed("align") {
		cfg.Typography.Align, _ = flags.GetString("align")
	}
	if flags.Changed("title") {
		cfg.Meta.Title, _ = flags.GetString("title")
	}
	if flags.Changed("artist") {
		cfg.Meta.Artist, _ = flags.GetString("artist")
	}
	if flags.Changed("album") {
		cfg.Meta.Album, _ = flags.GetString("album")
	}
	if flags.Changed("visible-lines") {
		cfg.Scroll.VisibleLines, _ = flags.GetInt("visible-lines")
	}
	if flags.Changed("line-spacing") {
		cfg.Scroll.LineSpacing, _ = flags.GetInt("line-spacing")
	}
	if flags.Changed("scale-decay") {
		cfg.Scroll.ScaleDecay, _ = flags.GetFloat64("scale-decay")
	}
	if flags.Changed("fade-decay") {
		cfg.Scroll.FadeDecay, _ = flags.GetFloat64("fade-decay")
	}
	if flags.Changed("blur-base") {
		cfg.Scroll.BlurBase, _ = flags.GetFloat64("blur-base")
	}
	if flags.Changed("blur-inc") {
		cfg.Scroll.BlurInc, _ = flags.GetFloat64("blur-inc")
	}
	if flags.Changed("shadow") {
		cfg.Shadow.Enabled, _ = flags.GetBool("shadow")
	}
	if flags.Changed("shadow-offset") {
		offset, _ := flags.GetInt("shadow-offset")
		cfg.Shadow.OffsetX = offset
		cfg.Shadow.OffsetY = offset
	}
	if flags.Changed("stroke") {
		cfg.Stroke.Enabled, _ = flags.GetBool("stroke")
	}
	if flags.Changed("stroke-width") {
		cfg.Stroke.Width, _ = flags.GetInt("stroke-width")
	}

	return cfg, nil
}

// replaceExtension swaps a path's extension, keeping the base name.
func replaceExtension(path, ext string) string {
	for i := len(path) - 1; i >= 0; i-- {
		switch path[i] {
		case '.':
			return path[:i] + ext
		case '/', '\\':
			return path + ext
		}
	}
	return path + ext
}

// formatTimestamp renders seconds as mm:ss.mmm for display.
func formatTimestamp(seconds float64) string {
	minutes := int(seconds) / 60
	rest := seconds - float64(minutes*60)
	return fmt.Sprintf("%02d:%06.3f", minutes, rest)
}
