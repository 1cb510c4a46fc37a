package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cadmiumcmyk/curator/pkg/ui"
)

var removeYes bool

var removeCmd = &cobra.Command{
	Use:     "remove [query]",
	Short:   "Remove artwork from the project",
	Aliases: []string{"rm"},
	Long: `Remove one or more assets from the project. The source image
files are never touched. With no query the fuzzy finder opens with
multi-select (tab to mark).

Examples:
  curator remove
  curator remove dragon
  curator remove dragon -y`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runRemove(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	if err := openProject(ctx); err != nil {
		return err
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}
	assets, err := selectAssets(query)
	if err != nil {
		if err == errSelectionCancelled {
			fmt.Println(ui.FormatInfo("Cancelled."))
			return nil
		}
		return err
	}

	if !removeYes {
		fmt.Println(ui.FormatWarning(fmt.Sprintf("Removing %d piece(s):", len(assets))))
		for _, a := range assets {
			fmt.Println("  " + a.Title)
		}
		fmt.Print("Continue? [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println(ui.FormatInfo("Cancelled."))
			return nil
		}
	}

	ids := make([]string, len(assets))
	for i, a := range assets {
		ids[i] = a.ID
	}
	n := projectService.Delete(ids)

	if err := projectService.SaveCurrent(ctx); err != nil {
		fmt.Println(ui.FormatError("Failed to save project"))
		return err
	}
	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Removed %d piece(s)", n)))
	fmt.Println(ui.FormatMuted("The source images are untouched"))
	return nil
}
