package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cadmiumcmyk/curator/internal/core/domain"
	"github.com/cadmiumcmyk/curator/pkg/ui"
)

var (
	listFilter string
	listSortBy string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List the artwork in the project",
	Aliases: []string{"ls"},
	Long: `List the project's assets in display order, optionally
filtered and sorted for presentation. Filtering and sorting never
change the stored order.

Examples:
  curator list
  curator list --filter dragon
  curator list --sort title
  curator list --filter "concept" --sort year`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listFilter, "filter", "", "Filter by title or tag substring")
	listCmd.Flags().StringVar(&listSortBy, "sort", "added", "Sort by field (added, title, year)")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	if err := openProject(ctx); err != nil {
		return err
	}

	// Config default unless the user asked for something else
	if !cmd.Flags().Changed("sort") {
		listSortBy = appConfig.DefaultSort
	}

	view := domain.View{
		Query: listFilter,
		Sort:  domain.ParseSortMode(listSortBy),
	}
	assets := view.Compute(projectService.Store())

	if len(assets) == 0 {
		if listFilter != "" {
			fmt.Println(ui.FormatWarning("No artwork matches: " + listFilter))
		} else {
			fmt.Println(ui.FormatWarning("Project is empty"))
			fmt.Println(ui.FormatInfo("Add artwork with: curator add <images...>"))
		}
		return nil
	}

	meta := projectService.Store().Metadata
	fmt.Println(ui.FormatTitle(meta.PortfolioTitle))
	fmt.Println()

	table := ui.NewTable([]ui.TableColumn{
		{Header: "#", Width: 3, Align: "right"},
		{Header: "Title", Width: 30, MaxWidth: 40, Align: "left"},
		{Header: "Medium", Width: 14, MaxWidth: 20, Align: "left"},
		{Header: "Year", Width: 6, Align: "left"},
		{Header: "Tags", Width: 24, MaxWidth: 30, Align: "left"},
	})

	for i, asset := range assets {
		table.AddRow([]string{
			strconv.Itoa(i + 1),
			asset.Title,
			asset.Medium,
			asset.Year,
			asset.TagsString(),
		})
	}

	fmt.Print(table.Render())
	fmt.Println()
	fmt.Println(ui.FormatMuted(fmt.Sprintf("Total: %d of %d", len(assets), projectService.Store().Len())))
	return nil
}
