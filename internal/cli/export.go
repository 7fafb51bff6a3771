package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/lyrvid/lyrvid/internal/export"
	"github.com/lyrvid/lyrvid/internal/lyrics"
)

var exportCmd = &cobra.Command{
	Use:   "export [lrc_file]",
	Short: "Export the lyric overlay as an alpha-channel MOV",
	Long: `Export renders the scrolling lyric overlay frame by frame at 30 fps
and streams it into ffmpeg, producing a ProRes 4444 MOV whose alpha
channel keeps the background fully transparent.

When --duration is not given, it defaults to the duration from the
settings file, or to the last lyric timestamp plus five seconds.
Ctrl-C cancels the export; a partial file may remain.

Examples:
  lyrvid export song.lrc
  lyrvid export song.lrc -o overlay.mov --title "Song" --artist "Artist"
  lyrvid export song.lrc -s settings.json --bitrate 100M
  lyrvid export song.lrc --duration 90 --shadow --stroke`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	registerStyleFlags(exportCmd)
	exportCmd.Flags().
		Float64P("duration", "d", 0, "Output duration in seconds (0 = last lyric + 5s)")
	exportCmd.Flags().
		StringP("bitrate", "b", "50M", "Target video bitrate (e.g. 50M, 100M)")
}

func runExport(cmd *cobra.Command, args []string) error {
	lrcPath := args[0]

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if duration, _ := cmd.Flags().GetFloat64("duration"); duration > 0 {
		cfg.Export.Duration = duration
	}
	if cmd.Flags().Changed("bitrate") {
		cfg.Export.Bitrate, _ = cmd.Flags().GetString("bitrate")
	}

	track := lyrics.Parse(lrcPath)
	if len(track) == 0 {
		return fmt.Errorf("no lyrics loaded from %s", lrcPath)
	}

	settingsPath, _ := cmd.Flags().GetString("settings")
	if !cmd.Flags().Changed("duration") && settingsPath == "" {
		cfg.Export.Duration = track.SuggestedDuration()
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = replaceExtension(lrcPath, ".mov")
	}

	logger.Infow("Exporting lyric video",
		"lyrics", lrcPath,
		"output", outputPath,
		"size", fmt.Sprintf("%dx%d", cfg.Canvas.Width, cfg.Canvas.Height),
		"duration", cfg.Export.Duration,
		"frames", export.TotalFrames(cfg),
		"bitrate", cfg.Export.Bitrate,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	bar := progressbar.NewOptions(100,
		progressbar.OptionSetDescription("encoding"),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionShowCount(),
	)

	// the export loop blocks on the encoder pipe, so it runs off the
	// command goroutine and reports back over a channel
	done := make(chan error, 1)
	go func() {
		done <- export.New().Run(ctx, export.Job{
			Config:     cfg,
			Track:      track,
			OutputPath: outputPath,
		}, func(pct int) {
			_ = bar.Set(pct)
		})
	}()

	err = <-done
	fmt.Println()
	switch {
	case errors.Is(err, context.Canceled):
		fmt.Println("Export canceled.")
		return nil
	case err != nil:
		return fmt.Errorf("export failed: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Export complete: %s\n", absOutput)
	return nil
}
