package cli

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lyrvid/lyrvid/internal/lyrics"
	"github.com/lyrvid/lyrvid/internal/preview"
	"github.com/lyrvid/lyrvid/internal/render"
)

var previewCmd = &cobra.Command{
	Use:   "preview [lrc_file]",
	Short: "Interactively render preview frames",
	Long: `Preview reads timestamps (seconds, one per line) from standard input
and writes a transparent PNG for each into the output directory.
Rapid input is debounced: only the latest timestamp within a 200ms
window is rendered, mirroring how an editor scrubs a timeline.

Examples:
  lyrvid preview song.lrc
  seq 0 0.5 30 | lyrvid preview song.lrc -o frames/`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	registerStyleFlags(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
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

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = "preview"
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create preview directory: %w", err)
	}

	renderer := render.New()
	frameIndex := 0

	previewer := preview.New(
		func(t float64) *image.NRGBA {
			return renderer.Frame(cfg, track, t)
		},
		func(frame *image.NRGBA) {
			frameIndex++
			path := filepath.Join(outputDir, fmt.Sprintf("preview_%04d.png", frameIndex))
			if err := writePNG(path, frame); err != nil {
				logger.Errorw("Failed to write preview frame", "path", path, "error", err)
				return
			}
			fmt.Printf("Wrote %s\n", path)
		},
	)
	defer previewer.Close()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		at, err := strconv.ParseFloat(text, 64)
		if err != nil {
			logger.Debugw("Ignoring invalid timestamp", "input", text)
			continue
		}
		previewer.Request(at)
	}
	previewer.Flush()

	return scanner.Err()
}

func writePNG(path string, frame *image.NRGBA) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return png.Encode(out, frame)
}
