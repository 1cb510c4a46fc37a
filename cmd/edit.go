package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cadmiumcmyk/curator/internal/core/domain"
	"github.com/cadmiumcmyk/curator/pkg/ui"
)

var (
	editTitle       string
	editDescription string
	editMedium      string
	editYear        string
	editLink        string
	editNotes       string
)

var editCmd = &cobra.Command{
	Use:   "edit [query]",
	Short: "Edit the fields of one piece",
	Long: `Edit asset fields in place. Only the flags you pass change;
pass an empty string to clear a field.

Examples:
  curator edit dragon --title "Dragon, Final"
  curator edit dragon --medium "Oil on canvas" --year 2024
  curator edit dragon --notes ""`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "Display title")
	editCmd.Flags().StringVar(&editDescription, "desc", "", "Description")
	editCmd.Flags().StringVar(&editMedium, "medium", "", "Medium")
	editCmd.Flags().StringVar(&editYear, "year", "", "Year (free text)")
	editCmd.Flags().StringVar(&editLink, "link", "", "Project link")
	editCmd.Flags().StringVar(&editNotes, "notes", "", "Private notes")
}

func runEdit(cmd *cobra.Command, args []string) error {
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

	changed := false
	err = projectService.UpdateAsset(asset.ID, func(a *domain.Asset) {
		if cmd.Flags().Changed("title") {
			a.Title = editTitle
			changed = true
		}
		if cmd.Flags().Changed("desc") {
			a.Description = editDescription
			changed = true
		}
		if cmd.Flags().Changed("medium") {
			a.Medium = editMedium
			changed = true
		}
		if cmd.Flags().Changed("year") {
			a.Year = editYear
			changed = true
		}
		if cmd.Flags().Changed("link") {
			a.Link = editLink
			changed = true
		}
		if cmd.Flags().Changed("notes") {
			a.Notes = editNotes
			changed = true
		}
	})
	if err != nil {
		return err
	}

	if !changed {
		fmt.Println(ui.FormatWarning("No fields given, nothing changed"))
		return nil
	}

	if err := projectService.SaveCurrent(ctx); err != nil {
		fmt.Println(ui.FormatError("Failed to save project"))
		return err
	}
	fmt.Println(ui.FormatSuccess("Updated " + asset.Title))
	return nil
}
