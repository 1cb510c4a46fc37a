package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cadmiumcmyk/curator/internal/core/domain"
	"github.com/cadmiumcmyk/curator/internal/core/ports"
	"github.com/cadmiumcmyk/curator/pkg/ui"
)

var (
	thumbsRefresh bool
	thumbsClean   bool
)

var thumbsCmd = &cobra.Command{
	Use:   "thumbs",
	Short: "Manage the thumbnail cache",
	Long: `Pre-generate the thumbnail cache for every piece in the
project, both the interactive and the export tier.

Examples:
  curator thumbs
  curator thumbs --refresh
  curator thumbs --clean`,
	RunE: runThumbs,
}

func init() {
	thumbsCmd.Flags().BoolVar(&thumbsRefresh, "refresh", false, "Regenerate even cached thumbnails")
	thumbsCmd.Flags().BoolVar(&thumbsClean, "clean", false, "Delete the whole cache instead")
}

func runThumbs(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	if thumbsClean {
		if err := appVault.CleanCache(); err != nil {
			fmt.Println(ui.FormatError("Failed to clean cache"))
			return err
		}
		fmt.Println(ui.FormatSuccess("Thumbnail cache cleaned"))
		return nil
	}

	if err := openProject(ctx); err != nil {
		return err
	}

	assets := projectService.Store().Assets()
	if len(assets) == 0 {
		fmt.Println(ui.FormatWarning("Project is empty"))
		return nil
	}

	var generated, failed int
	for i, asset := range assets {
		fmt.Printf("%s %s (%d/%d)\n", ui.StyleAccent.Render(ui.IconImage), asset.Title, i+1, len(assets))
		if err := generateThumbs(asset, thumbsRefresh); err != nil {
			failed++
			fmt.Println(ui.FormatWarning("  " + err.Error()))
			continue
		}
		generated++
	}

	fmt.Println()
	if failed > 0 {
		fmt.Println(ui.FormatWarning(fmt.Sprintf("%d done, %d without thumbnails", generated, failed)))
	} else {
		fmt.Println(ui.FormatSuccess(fmt.Sprintf("%d done", generated)))
	}
	return nil
}

func generateThumbs(asset *domain.Asset, refresh bool) error {
	ctx := getContext()
	if refresh {
		return thumbCache.ForceRefresh(ctx, asset.SourcePath)
	}
	for _, tier := range []ports.Tier{ports.TierThumb, ports.TierPreview} {
		if _, err := thumbCache.GetOrCreate(ctx, asset.SourcePath, tier); err != nil {
			return err
		}
	}
	return nil
}
