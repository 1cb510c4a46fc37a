package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/cadmiumcmyk/curator/pkg/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics about the project",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	if err := openProject(ctx); err != nil {
		return err
	}

	store := projectService.Store()
	assets := store.Assets()

	fmt.Println(ui.FormatTitle(store.Metadata.PortfolioTitle))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Pieces", fmt.Sprintf("%d", len(assets))))

	described := 0
	tagged := 0
	byMedium := map[string]int{}
	byYear := map[string]int{}
	tagCounts := map[string]int{}
	for _, a := range assets {
		if a.Description != "" {
			described++
		}
		if len(a.Tags) > 0 {
			tagged++
		}
		if a.Medium != "" {
			byMedium[a.Medium]++
		}
		if a.Year != "" {
			byYear[a.Year]++
		}
		for _, t := range a.Tags {
			tagCounts[t]++
		}
	}
	fmt.Println(ui.RenderKeyValue("Described", fmt.Sprintf("%d of %d", described, len(assets))))
	fmt.Println(ui.RenderKeyValue("Tagged", fmt.Sprintf("%d of %d", tagged, len(assets))))

	if len(byMedium) > 0 {
		fmt.Println()
		fmt.Println(ui.FormatBold("By medium"))
		fmt.Print(ui.RenderSimpleList(countLines(byMedium)))
	}
	if len(byYear) > 0 {
		fmt.Println()
		fmt.Println(ui.FormatBold("By year"))
		fmt.Print(ui.RenderSimpleList(countLines(byYear)))
	}
	if len(tagCounts) > 0 {
		fmt.Println()
		fmt.Println(ui.FormatBold("Tags"))
		fmt.Print(ui.RenderSimpleList(countLines(tagCounts)))
	}
	return nil
}

// countLines formats a count map as "name (n)" lines, most frequent
// first, name-sorted within equal counts
func countLines(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = fmt.Sprintf("%s %s", k, ui.FormatMuted(fmt.Sprintf("(%d)", counts[k])))
	}
	return lines
}
