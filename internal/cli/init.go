package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lyrvid/lyrvid/internal/style"
)

var initCmd = &cobra.Command{
	Use:   "init [settings_file]",
	Short: "Write a default settings file",
	Long: `Init writes the default style configuration as a JSON settings file
to edit and pass back with --settings.

Examples:
  lyrvid init
  lyrvid init mystyle.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "lyrvid.json"
	if len(args) == 1 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("refusing to overwrite existing settings file %s", path)
	}

	if err := style.Default().Save(path); err != nil {
		return err
	}

	absPath, _ := filepath.Abs(path)
	fmt.Printf("Settings written: %s\n", absPath)
	return nil
}
