package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cadmiumcmyk/curator/internal/adapters/images"
	"github.com/cadmiumcmyk/curator/pkg/ui"
)

var paletteCount int

var paletteCmd = &cobra.Command{
	Use:   "palette [query]",
	Short: "Show the dominant colors of a piece",
	Long: `Sample a piece's source image and print its dominant colors
as hex values, most frequent first.

Examples:
  curator palette dragon
  curator palette dragon --count 8`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPalette,
}

func init() {
	paletteCmd.Flags().IntVar(&paletteCount, "count", 5, "Number of colors")
}

func runPalette(cmd *cobra.Command, args []string) error {
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

	colors, err := images.ExtractPalette(asset.SourcePath, paletteCount)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to sample image"))
		return err
	}

	fmt.Println(ui.StylePrimary.Render(ui.IconPalette + " " + asset.Title))
	fmt.Print(ui.RenderSimpleList(colors))
	return nil
}
