package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/cadmiumcmyk/curator/pkg/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit the curator configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := appVault.ConfigPath()

		// Write the defaults on first edit so there is something to open
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := appConfig.Save(path); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		}

		fmt.Println(ui.FormatInfo("Opening config: " + path))

		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vi"
		}

		c := exec.Command(editor, path)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		return c.Run()
	},
}
