package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cadmiumcmyk/curator/pkg/ui"
)

var moveCmd = &cobra.Command{
	Use:   "move <query> <position>",
	Short: "Move a piece to a new position",
	Long: `Move an asset to a 1-based position in the display order.
Positions past the end clamp to the last slot.

Examples:
  curator move dragon 1
  curator move harbor 5`,
	Args: cobra.ExactArgs(2),
	RunE: runMove,
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	if err := openProject(ctx); err != nil {
		return err
	}

	position, err := strconv.Atoi(args[1])
	if err != nil || position < 1 {
		return fmt.Errorf("position must be a positive number, got %q", args[1])
	}

	asset, err := selectAsset(args[0])
	if err != nil {
		if err == errSelectionCancelled {
			fmt.Println(ui.FormatInfo("Cancelled."))
			return nil
		}
		return err
	}

	if err := projectService.MoveAsset(asset.ID, position-1); err != nil {
		return err
	}
	if err := projectService.SaveCurrent(ctx); err != nil {
		fmt.Println(ui.FormatError("Failed to save project"))
		return err
	}

	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Moved %s to position %d",
		asset.Title, projectService.Store().IndexOf(asset.ID)+1)))
	return nil
}
