package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/cadmiumcmyk/curator/pkg/ui"
)

var showCopyPath bool

var showCmd = &cobra.Command{
	Use:   "show [query]",
	Short: "Show the details of one piece",
	Long: `Show every field of one asset. With no query the fuzzy
finder opens over the whole project.

Examples:
  curator show
  curator show dragon
  curator show dragon --copy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showCopyPath, "copy", false, "Copy the source path to the clipboard")
}

func runShow(cmd *cobra.Command, args []string) error {
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

	fmt.Println(ui.FormatTitle(asset.Title))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("ID", asset.ID))
	fmt.Println(ui.RenderKeyValue("Source", asset.SourcePath))
	if asset.ThumbnailPath != "" {
		fmt.Println(ui.RenderKeyValue("Thumbnail", asset.ThumbnailPath))
	}
	if asset.Medium != "" {
		fmt.Println(ui.RenderKeyValue("Medium", asset.Medium))
	}
	if asset.Year != "" {
		fmt.Println(ui.RenderKeyValue("Year", asset.Year))
	}
	if len(asset.Tags) > 0 {
		fmt.Println(ui.RenderKeyValue("Tags", asset.TagsString()))
	}
	if asset.Link != "" {
		fmt.Println(ui.RenderKeyValue("Link", asset.Link))
	}
	if asset.Description != "" {
		fmt.Println()
		fmt.Println(asset.Description)
	}
	if asset.Notes != "" {
		fmt.Println()
		fmt.Println(ui.StyleSubtle.Render(asset.Notes))
	}

	if showCopyPath {
		if err := clipboard.WriteAll(asset.SourcePath); err != nil {
			fmt.Println(ui.FormatWarning("Could not copy to clipboard: " + err.Error()))
		} else {
			fmt.Println()
			fmt.Println(ui.FormatSuccess("Source path copied to clipboard"))
		}
	}
	return nil
}
