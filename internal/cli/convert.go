package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lyrvid/lyrvid/internal/lyrics"
)

var convertCmd = &cobra.Command{
	Use:   "convert [lrc_file]",
	Short: "Convert an LRC file to SRT or VTT subtitles",
	Long: `Convert turns the lyric track into a regular subtitle file. Each cue
starts at its lyric's timestamp and ends when the next line begins.

Examples:
  lyrvid convert song.lrc
  lyrvid convert song.lrc -f vtt -o song.vtt`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		StringP("format", "f", "srt", "Output subtitle format (srt, vtt)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	lrcPath := args[0]

	formatStr, _ := cmd.Flags().GetString("format")
	format := lyrics.Format(formatStr)
	switch format {
	case lyrics.FormatSRT, lyrics.FormatVTT:
	default:
		return fmt.Errorf("invalid format %q: supported formats are srt, vtt", formatStr)
	}

	track := lyrics.Parse(lrcPath)
	if len(track) == 0 {
		return fmt.Errorf("no lyrics loaded from %s", lrcPath)
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = replaceExtension(lrcPath, "."+string(format))
	}

	if err := track.Write(outputPath, format); err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitles written: %s\n", absOutput)
	return nil
}
