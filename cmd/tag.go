package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cadmiumcmyk/curator/internal/core/domain"
	"github.com/cadmiumcmyk/curator/pkg/ui"
)

var (
	tagAdd    []string
	tagRemove []string
	tagSet    string
)

var tagCmd = &cobra.Command{
	Use:   "tag [query]",
	Short: "Manage the tags of one piece",
	Long: `Add, remove or replace an asset's tags. Tags are free text;
duplicates are suppressed.

Examples:
  curator tag dragon --add creature --add wip
  curator tag dragon --rm wip
  curator tag dragon --set "creature, fantasy, final"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTag,
}

func init() {
	tagCmd.Flags().StringArrayVar(&tagAdd, "add", nil, "Tag to add (repeatable)")
	tagCmd.Flags().StringArrayVar(&tagRemove, "rm", nil, "Tag to remove (repeatable)")
	tagCmd.Flags().StringVar(&tagSet, "set", "", "Replace all tags (comma-separated)")
}

func runTag(cmd *cobra.Command, args []string) error {
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

	if !cmd.Flags().Changed("add") && !cmd.Flags().Changed("rm") && !cmd.Flags().Changed("set") {
		if len(asset.Tags) == 0 {
			fmt.Println(ui.FormatMuted(asset.Title + " has no tags"))
		} else {
			fmt.Println(ui.RenderKeyValue(asset.Title, asset.TagsString()))
		}
		return nil
	}

	err = projectService.UpdateAsset(asset.ID, func(a *domain.Asset) {
		if cmd.Flags().Changed("set") {
			a.SetTagsString(tagSet)
		}
		for _, t := range tagAdd {
			a.AddTag(t)
		}
		for _, t := range tagRemove {
			a.RemoveTag(t)
		}
	})
	if err != nil {
		return err
	}

	if err := projectService.SaveCurrent(ctx); err != nil {
		fmt.Println(ui.FormatError("Failed to save project"))
		return err
	}
	fmt.Println(ui.FormatSuccess(asset.Title + ": " + asset.TagsString()))
	return nil
}
