package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cadmiumcmyk/curator/internal/adapters/renderer"
	"github.com/cadmiumcmyk/curator/pkg/ui"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the installed gallery themes",
	Long: `List the HTML themes installed in the vault. Drop your own
.html files next to the built-in one to add themes; they use the same
{{TITLE}}/{{NAME}}/{{ROLE}}/{{BIO}}/{{EMAIL}}/{{LINKS}} tokens.`,
	RunE: runThemes,
}

func runThemes(cmd *cobra.Command, args []string) error {
	themes, err := renderer.AvailableThemes(appVault)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to list themes"))
		return err
	}

	if len(themes) == 0 {
		fmt.Println(ui.FormatWarning("No themes installed"))
		return nil
	}

	fmt.Println(ui.FormatTitle(fmt.Sprintf("Themes (%d)", len(themes))))
	fmt.Println()
	for _, theme := range themes {
		name := theme.Name
		if name == appConfig.DefaultTheme {
			name += " " + ui.FormatMuted("(default)")
		}
		fmt.Printf("%s %s\n", ui.StyleAccent.Render("•"), ui.StyleBold.Render(name))
		fmt.Println(ui.FormatMuted("    " + theme.Path))
	}
	return nil
}
