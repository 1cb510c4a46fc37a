package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cadmiumcmyk/curator/pkg/ui"
)

var recentPrune bool

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently opened projects",
	Long: `List the recently opened projects, newest first. Projects
whose file has gone missing are flagged; --prune drops them from the
list.

Examples:
  curator recent
  curator recent --prune`,
	RunE: runRecent,
}

func init() {
	recentCmd.Flags().BoolVar(&recentPrune, "prune", false, "Drop entries whose file is missing")
}

func runRecent(cmd *cobra.Command, args []string) error {
	entries, err := recentRepo.List()
	if err != nil {
		fmt.Println(ui.FormatError("Failed to read recent projects"))
		return err
	}

	if len(entries) == 0 {
		fmt.Println(ui.FormatWarning("No recent projects"))
		return nil
	}

	fmt.Println(ui.FormatTitle("Recent Projects"))
	fmt.Println()

	pruned := 0
	for _, entry := range entries {
		_, statErr := os.Stat(entry.Path)
		missing := statErr != nil

		if missing && recentPrune {
			if err := recentRepo.Remove(entry.Path); err != nil {
				fmt.Println(ui.FormatWarning("Could not prune " + entry.Path))
				continue
			}
			pruned++
			continue
		}

		opened := time.Unix(entry.LastOpened, 0).Format("2006-01-02 15:04")
		line := fmt.Sprintf("%s %s", ui.StyleBold.Render(entry.Title), ui.FormatMuted("("+opened+")"))
		if missing {
			line += " " + ui.FormatWarning("missing")
		}
		fmt.Println(ui.StyleAccent.Render("•") + " " + line)
		fmt.Println(ui.FormatMuted("    " + entry.Path))
	}

	if recentPrune {
		fmt.Println()
		fmt.Println(ui.FormatSuccess(fmt.Sprintf("Pruned %d entr(ies)", pruned)))
	}
	return nil
}
