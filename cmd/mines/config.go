package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
)

var flagConfigWrite string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in minesweeper.yaml, or write it to a file as a
starting point for custom presets.

Config files are searched in this order:
  --config <path>
  ~/.mines/configs/minesweeper.yaml
  ./configs/minesweeper.yaml

Examples:
  mines config
  mines config --write ~/.mines/configs/minesweeper.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigWrite, "write", "", "Write the default config to this path instead of stdout")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigWrite == "" {
		return writeDefaultConfig(os.Stdout)
	}
	return writeDefaultConfigFile(flagConfigWrite)
}

func writeDefaultConfig(w io.Writer) error {
	_, err := w.Write(config.DefaultYAML())
	return err
}

// writeDefaultConfigFile refuses to overwrite an existing file.
func writeDefaultConfigFile(path string) error {
	path = expandHome(path)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if err := writeDefaultConfig(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("Wrote default config to %s\n", path)
	return nil
}

func expandHome(path string) string {
	if len(path) > 1 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
