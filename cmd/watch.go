package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/cadmiumcmyk/curator/internal/core/services"
	"github.com/cadmiumcmyk/curator/internal/logger"
	"github.com/cadmiumcmyk/curator/pkg/ui"
)

// watchDebounce coalesces bursts of writes to the same file
const watchDebounce = 500 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Refresh thumbnails as source images change",
	Long: `Watch the directories containing the project's source images
and refresh cached thumbnails whenever a source file is written, e.g.
while painting in an external editor. Ctrl+C stops watching.`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	if err := openProject(ctx); err != nil {
		return err
	}

	assets := projectService.Store().Assets()
	if len(assets) == 0 {
		fmt.Println(ui.FormatWarning("Project is empty, nothing to watch"))
		return nil
	}

	// One watch per directory, sources mapped back to asset ids
	sourceIDs := make(map[string]string)
	dirs := make(map[string]bool)
	for _, a := range assets {
		sourceIDs[a.SourcePath] = a.ID
		dirs[filepath.Dir(a.SourcePath)] = true
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	watched := 0
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			fmt.Println(ui.FormatWarning("Cannot watch " + dir + ": " + err.Error()))
			continue
		}
		watched++
	}
	if watched == 0 {
		return fmt.Errorf("no watchable directories")
	}

	fmt.Println(ui.FormatInfo(fmt.Sprintf("Watching %d directorie(s), Ctrl+C to stop", watched)))

	// Watch sessions run for hours; keep the project file fresh. The
	// store is never mutated while watching, so the background save
	// can read it.
	autosaver := services.NewAutosaveService(
		time.Duration(appConfig.AutosaveSeconds)*time.Second,
		projectService.Autosave, appLogger)
	autosaver.Start(ctx)
	defer autosaver.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	var mu sync.Mutex
	pending := make(map[string]*time.Timer)

	for {
		select {
		case <-sigCh:
			fmt.Println()
			fmt.Println(ui.FormatInfo("Stopped."))
			return nil

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			appLogger.Warn("watch error", logger.Error(err))

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if _, tracked := sourceIDs[event.Name]; !tracked {
				continue
			}

			// Debounce: editors fire several writes per save
			mu.Lock()
			if timer, ok := pending[event.Name]; ok {
				timer.Stop()
			}
			path := event.Name
			pending[path] = time.AfterFunc(watchDebounce, func() {
				mu.Lock()
				delete(pending, path)
				mu.Unlock()

				if err := thumbCache.ForceRefresh(ctx, path); err != nil {
					fmt.Println(ui.FormatWarning("Refresh failed for " + filepath.Base(path)))
					return
				}
				fmt.Println(ui.FormatSuccess("Refreshed " + filepath.Base(path)))
			})
			mu.Unlock()
		}
	}
}
