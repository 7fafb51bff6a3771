package cli

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/lyrvid/lyrvid/internal/lyrics"
)

var lyricsCmd = &cobra.Command{
	Use:   "lyrics [lrc_file]",
	Short: "Show the parsed lyric track",
	Long: `Lyrics parses an LRC file and prints the resulting track as a table,
sorted the same way the renderer sees it. Handy for verifying
timestamps before an export.

Examples:
  lyrvid lyrics song.lrc`,
	Args: cobra.ExactArgs(1),
	RunE: runLyrics,
}

func init() {
	rootCmd.AddCommand(lyricsCmd)
}

func runLyrics(cmd *cobra.Command, args []string) error {
	lrcPath := args[0]

	track := lyrics.Parse(lrcPath)
	if len(track) == 0 {
		return fmt.Errorf("no lyrics loaded from %s", lrcPath)
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Time", "Text"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignLeft},
	})

	for i, line := range track {
		tw.AppendRow(table.Row{i + 1, formatTimestamp(line.Time), line.Text})
	}
	tw.Render()

	fmt.Printf("%d lines, %.1fs\n", len(track), track.Duration())
	return nil
}
