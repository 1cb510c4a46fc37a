package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cadmiumcmyk/curator/internal/adapters/images"
	"github.com/cadmiumcmyk/curator/internal/adapters/renderer"
	"github.com/cadmiumcmyk/curator/internal/adapters/repository"
	"github.com/cadmiumcmyk/curator/internal/core/services"
	"github.com/cadmiumcmyk/curator/internal/logger"
	"github.com/cadmiumcmyk/curator/pkg/config"
	"github.com/cadmiumcmyk/curator/pkg/ui"
	"github.com/cadmiumcmyk/curator/pkg/vault"
)

var (
	// Global vault instance
	appVault  *vault.Vault
	appConfig *config.Config
	appLogger logger.Logger

	// Repositories
	projectRepo  *repository.ProjectRepository
	recentRepo   *repository.RecentRepository
	settingsRepo *repository.SettingsRepository

	// Adapters
	thumbCache      *images.Cache
	imageProcessor  *images.Processor
	galleryRenderer *renderer.Gallery
	bookletRenderer *renderer.Booklet

	// Services
	projectService *services.ProjectService
	exportService  *services.ExportService

	// --project flag, empty means the most recent project
	projectFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "curator",
	Short: "Curator - portfolio manager for visual artists",
	Long: ui.StyleTitle.Render("Curator") + " - Portfolio Manager\n\n" +
		"Organize your artwork, keep it described and ordered, and publish\n" +
		"it as a static HTML gallery or a PDF booklet.",
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectFlag, "project", "p", "", "Project file (defaults to the most recent)")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(arrangeCmd)
	rootCmd.AddCommand(rotateCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(thumbsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	v, err := vault.New()
	if err != nil {
		return fmt.Errorf("failed to initialize vault: %w", err)
	}
	appVault = v

	// First run just creates the directories, no init command needed
	if err := appVault.Initialize(); err != nil {
		return fmt.Errorf("failed to create vault directories: %w", err)
	}
	if err := renderer.EnsureDefaultTheme(appVault); err != nil {
		return fmt.Errorf("failed to install default theme: %w", err)
	}

	cfg, err := config.Load(appVault.ConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appConfig = cfg
	ui.SetTheme(appConfig.ColorTheme)

	appLogger = logger.New(appConfig.LogLevel, true)

	projectRepo = repository.NewProjectRepository()
	recentRepo = repository.NewRecentRepository(appVault)
	settingsRepo = repository.NewSettingsRepository(appVault)

	imageProcessor = images.NewProcessor(appConfig.JPEGQuality)
	thumbCache = images.NewCache(appVault, imageProcessor, appConfig.ThumbMaxPx, appConfig.PreviewMaxPx)
	galleryRenderer = renderer.NewGallery()
	bookletRenderer = renderer.NewBooklet()

	projectService = services.NewProjectService(projectRepo, recentRepo, thumbCache, appVault, appLogger)
	exportService = services.NewExportService(galleryRenderer, bookletRenderer, imageProcessor, appLogger)

	return nil
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}

// resolveProjectPath picks the project file: the --project flag if set,
// otherwise the most recently opened project
func resolveProjectPath() (string, error) {
	if projectFlag != "" {
		return projectFlag, nil
	}
	entries, err := recentRepo.List()
	if err != nil {
		return "", fmt.Errorf("failed to read recent projects: %w", err)
	}
	if len(entries) == 0 {
		return "", fmt.Errorf("no project given and no recent projects, create one with: curator new my-portfolio.json")
	}
	return entries[0].Path, nil
}

// openProject loads the working project into the project service
func openProject(ctx context.Context) error {
	path, err := resolveProjectPath()
	if err != nil {
		return err
	}
	if err := projectService.Open(ctx, path); err != nil {
		return err
	}
	return nil
}
