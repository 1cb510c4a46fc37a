package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cadmiumcmyk/curator/internal/core/domain"
	"github.com/cadmiumcmyk/curator/pkg/ui"
)

var (
	settingsName   string
	settingsRole   string
	settingsEmail  string
	settingsBio    string
	settingsSocial string
	settingsCV     string
	settingsTheme  string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change your saved artist defaults",
	Long: `Show or change the cross-project defaults: the artist
identity seeded into new projects and the preferred export theme.

Examples:
  curator settings
  curator settings --name "R. Vance" --role "Concept Artist"
  curator settings --theme "Modern Dark"`,
	RunE: runSettings,
}

func init() {
	settingsCmd.Flags().StringVar(&settingsName, "name", "", "Artist name")
	settingsCmd.Flags().StringVar(&settingsRole, "role", "", "Role or job title")
	settingsCmd.Flags().StringVar(&settingsEmail, "email", "", "Contact email")
	settingsCmd.Flags().StringVar(&settingsBio, "bio", "", "Short biography")
	settingsCmd.Flags().StringVar(&settingsSocial, "social", "", "Social profile URL")
	settingsCmd.Flags().StringVar(&settingsCV, "cv", "", "Resume/CV URL")
	settingsCmd.Flags().StringVar(&settingsTheme, "theme", "", "Preferred export theme")
}

func runSettings(cmd *cobra.Command, args []string) error {
	settings, err := settingsRepo.Load()
	if err != nil {
		fmt.Println(ui.FormatError("Failed to read settings"))
		return err
	}

	changed := applySettingsFlags(cmd, &settings)
	if changed {
		if err := settingsRepo.Save(settings); err != nil {
			fmt.Println(ui.FormatError("Failed to save settings"))
			return err
		}
		fmt.Println(ui.FormatSuccess("Settings saved"))
		return nil
	}

	fmt.Println(ui.FormatTitle("Settings"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Name", settings.ArtistName))
	fmt.Println(ui.RenderKeyValue("Role", settings.Role))
	fmt.Println(ui.RenderKeyValue("Email", settings.Email))
	fmt.Println(ui.RenderKeyValue("Social", settings.SocialLink))
	fmt.Println(ui.RenderKeyValue("Resume/CV", settings.CVLink))
	fmt.Println(ui.RenderKeyValue("Theme", settings.Theme))
	if settings.Bio != "" {
		fmt.Println()
		fmt.Println(settings.Bio)
	}
	return nil
}

func applySettingsFlags(cmd *cobra.Command, s *domain.Settings) bool {
	changed := false
	if cmd.Flags().Changed("name") {
		s.ArtistName = settingsName
		changed = true
	}
	if cmd.Flags().Changed("role") {
		s.Role = settingsRole
		changed = true
	}
	if cmd.Flags().Changed("email") {
		s.Email = settingsEmail
		changed = true
	}
	if cmd.Flags().Changed("bio") {
		s.Bio = settingsBio
		changed = true
	}
	if cmd.Flags().Changed("social") {
		s.SocialLink = settingsSocial
		changed = true
	}
	if cmd.Flags().Changed("cv") {
		s.CVLink = settingsCV
		changed = true
	}
	if cmd.Flags().Changed("theme") {
		s.Theme = settingsTheme
		changed = true
	}
	return changed
}
