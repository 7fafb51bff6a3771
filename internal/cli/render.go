package cli

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lyrvid/lyrvid/internal/lyrics"
	"github.com/lyrvid/lyrvid/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render [lrc_file]",
	Short: "Render a single frame to a PNG",
	Long: `Render composites the overlay at one timestamp and writes it as a
transparent PNG. Useful for checking layout and effects before a
full export.

Examples:
  lyrvid render song.lrc --time 32.5
  lyrvid render song.lrc -t 62.5 -o check.png --stroke`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	registerStyleFlags(renderCmd)
	renderCmd.Flags().
		Float64P("time", "t", 0, "Timestamp to render, in seconds")
}

func runRender(cmd *cobra.Command, args []string) error {
	lrcPath := args[0]

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	track := lyrics.Parse(lrcPath)
	if len(track) == 0 {
		return fmt.Errorf("no lyrics loaded from %s", lrcPath)
	}

	at, _ := cmd.Flags().GetFloat64("time")
	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = replaceExtension(lrcPath, ".png")
	}

	logger.Debugw("Rendering frame",
		"lyrics", lrcPath,
		"time", at,
		"output", outputPath,
	)

	frame := render.New().Frame(cfg, track, at)

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer out.Close()

	if err := png.Encode(out, frame); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Frame written: %s\n", absOutput)
	return nil
}
