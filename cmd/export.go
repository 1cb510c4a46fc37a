package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cadmiumcmyk/curator/internal/adapters/renderer"
	"github.com/cadmiumcmyk/curator/internal/core/domain"
	"github.com/cadmiumcmyk/curator/internal/core/services"
	"github.com/cadmiumcmyk/curator/pkg/ui"
)

var exportTheme string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Publish the portfolio",
}

var exportHTMLCmd = &cobra.Command{
	Use:   "html <output-dir>",
	Short: "Publish a static HTML gallery",
	Long: `Publish the portfolio as a static HTML gallery: normalized
images under images/ and an index.html built from the chosen theme.
Unchanged images are not reprocessed on repeat exports.

Examples:
  curator export html ./site
  curator export html ./site --theme "Modern Dark"`,
	Args: cobra.ExactArgs(1),
	RunE: runExportHTML,
}

var exportPDFCmd = &cobra.Command{
	Use:   "pdf <output-file>",
	Short: "Publish a PDF booklet",
	Long: `Publish the portfolio as an A4 PDF booklet: a title page
followed by one page per piece.

Examples:
  curator export pdf portfolio.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runExportPDF,
}

func init() {
	exportHTMLCmd.Flags().StringVar(&exportTheme, "theme", "", "Theme name (defaults to the configured theme)")
	exportCmd.AddCommand(exportHTMLCmd)
	exportCmd.AddCommand(exportPDFCmd)
}

func runExportHTML(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	if err := openProject(ctx); err != nil {
		return err
	}

	themeName := exportTheme
	if themeName == "" {
		settings, err := settingsRepo.Load()
		if err == nil && settings.Theme != "" {
			themeName = settings.Theme
		} else {
			themeName = appConfig.DefaultTheme
		}
	}
	theme, err := renderer.FindTheme(appVault, themeName)
	if err != nil {
		return err
	}
	if theme.Name != themeName {
		fmt.Println(ui.FormatWarning(fmt.Sprintf("Theme %q not found, using %q", themeName, theme.Name)))
	}

	outDir, err := filepath.Abs(args[0])
	if err != nil {
		outDir = args[0]
	}

	snap := domain.TakeSnapshot(projectService.Store())
	fmt.Println(ui.FormatExport(fmt.Sprintf("Publishing %d piece(s) to %s", len(snap.Assets), outDir)))

	progress := make(chan services.ExportProgress, len(snap.Assets)+1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for p := range progress {
			if p.Success {
				fmt.Printf("  %s %s (%d/%d)\n", ui.StyleSuccess.Render(ui.IconSuccess), p.Title, p.Current, p.Total)
			} else {
				fmt.Printf("  %s %s: %v\n", ui.StyleError.Render(ui.IconError), p.Title, p.Error)
			}
		}
	}()

	summary, err := exportService.ExportHTML(ctx, snap, theme.Path, outDir, appConfig.MaxWorkers, progress)
	<-done
	if err != nil {
		fmt.Println(ui.FormatError("Export failed"))
		return err
	}

	fmt.Println()
	msg := fmt.Sprintf("Published %d piece(s)", summary.Exported)
	if summary.Skipped > 0 {
		msg += fmt.Sprintf(", %d skipped (missing or already current)", summary.Skipped)
	}
	if summary.Failed > 0 {
		msg += fmt.Sprintf(", %d failed", summary.Failed)
		fmt.Println(ui.FormatWarning(msg))
	} else {
		fmt.Println(ui.FormatSuccess(msg))
	}
	fmt.Println(ui.FormatMuted("Open " + filepath.Join(outDir, "index.html")))
	return nil
}

func runExportPDF(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	if err := openProject(ctx); err != nil {
		return err
	}

	if !bookletRenderer.Available() {
		fmt.Println(ui.FormatError("PDF backend not available"))
		return services.ErrPDFUnavailable
	}

	outPath, err := filepath.Abs(args[0])
	if err != nil {
		outPath = args[0]
	}

	snap := domain.TakeSnapshot(projectService.Store())
	fmt.Println(ui.FormatExport(fmt.Sprintf("Rendering %d piece(s) to %s", len(snap.Assets), outPath)))

	if err := exportService.ExportPDF(ctx, snap, outPath); err != nil {
		fmt.Println(ui.FormatError("Export failed"))
		return err
	}
	fmt.Println(ui.FormatSuccess("Booklet written"))
	return nil
}
