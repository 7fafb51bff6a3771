package cli

import (
	"github.com/lyrvid/lyrvid/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lyrvid",
	Short: "Transparent scrolling lyric video generator",
	Long: `Lyrvid renders a synchronized, scrolling lyric overlay from an LRC
file and exports it as a ProRes 4444 MOV with an alpha channel,
ready to composite over any footage.

Layout, decay and decoration parameters come from a settings JSON
file, individual flags, or both (flags win).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		StringP("settings", "s", "", "Settings JSON file")
}
