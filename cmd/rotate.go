package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cadmiumcmyk/curator/internal/adapters/images"
	"github.com/cadmiumcmyk/curator/pkg/ui"
)

var rotateCmd = &cobra.Command{
	Use:   "rotate [query]",
	Short: "Rotate a source image 90° clockwise",
	Long: `Rotate the source image file in place and refresh its cached
thumbnails. This changes the file on disk, not just the project.

Examples:
  curator rotate
  curator rotate harbor`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRotate,
}

func runRotate(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	if err := openProject(ctx); err != nil {
		return err
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}
	asset, err := selectAsset(query)
	if err != nil {
		if err == errSelectionCancelled {
			fmt.Println(ui.FormatInfo("Cancelled."))
			return nil
		}
		return err
	}

	if err := images.RotateCW(asset.SourcePath); err != nil {
		fmt.Println(ui.FormatError("Failed to rotate image"))
		return err
	}
	if err := projectService.RefreshThumbnails(ctx, asset.ID); err != nil {
		fmt.Println(ui.FormatWarning("Rotated, but thumbnail refresh failed: " + err.Error()))
		return nil
	}

	fmt.Println(ui.FormatSuccess("Rotated " + asset.Title))
	return nil
}
