package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cadmiumcmyk/curator/pkg/ui"
)

var newTitle string

var newCmd = &cobra.Command{
	Use:   "new <file>",
	Short: "Create a new portfolio project",
	Long: `Create a new portfolio project file seeded with your saved
artist defaults.

Examples:
  curator new portfolio.json
  curator new reel2026.json --title "2026 Reel"`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVar(&newTitle, "title", "", "Portfolio title")
}

func runNew(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx := getContext()

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("file already exists: %s", path)
	}

	settings, err := settingsRepo.Load()
	if err != nil {
		fmt.Println(ui.FormatWarning("Could not read saved defaults, starting blank"))
	}

	projectService.New(newTitle, settings)
	if err := projectService.Save(ctx, path); err != nil {
		fmt.Println(ui.FormatError("Failed to create project"))
		return err
	}

	fmt.Println(ui.FormatSuccess("Created project: " + path))
	fmt.Println(ui.FormatInfo("Add artwork with: curator add <images...>"))
	return nil
}
