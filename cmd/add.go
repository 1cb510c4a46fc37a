package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cadmiumcmyk/curator/pkg/ui"
)

var addCmd = &cobra.Command{
	Use:   "add <images...>",
	Short: "Add artwork to the project",
	Long: `Add one or more images to the project. Thumbnails are
generated immediately; unsupported files are reported and skipped.

Examples:
  curator add dragon.png harbor.jpg
  curator add renders/*.png`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	if err := openProject(ctx); err != nil {
		return err
	}

	paths := make([]string, 0, len(args))
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			abs = arg
		}
		paths = append(paths, abs)
	}

	res := projectService.AddAssets(ctx, paths)

	for _, rejected := range res.Rejected {
		fmt.Println(ui.FormatWarning("Not a supported image: " + rejected))
	}
	for _, asset := range res.Added {
		fmt.Println(ui.FormatSuccess("Added " + asset.Title))
		if asset.ThumbnailPath == "" {
			fmt.Println(ui.FormatWarning("  no thumbnail, the image could not be decoded"))
		}
	}

	if len(res.Added) == 0 {
		return fmt.Errorf("nothing added")
	}
	if err := projectService.SaveCurrent(ctx); err != nil {
		fmt.Println(ui.FormatError("Failed to save project"))
		return err
	}
	fmt.Println(ui.FormatMuted(fmt.Sprintf("%d added, project saved", len(res.Added))))
	return nil
}
