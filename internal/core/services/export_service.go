package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cadmiumcmyk/curator/internal/core/domain"
	"github.com/cadmiumcmyk/curator/internal/core/ports"
	"github.com/cadmiumcmyk/curator/internal/logger"
)

// ImageNormalizer prepares a source image for publishing: bounded,
// flattened, JPEG-encoded
type ImageNormalizer interface {
	Normalize(sourcePath, destPath string, maxPx int) error
}

// exportImagePx is the bounding box for published gallery images
const exportImagePx = 1920

// ExportService turns a project snapshot into publishable documents.
// It works from a deep-copied snapshot so edits made while an export
// runs are not observed mid-flight.
type ExportService struct {
	gallery    ports.GalleryRenderer
	booklet    ports.BookletRenderer
	normalizer ImageNormalizer
	log        logger.Logger
}

// NewExportService creates an export service
func NewExportService(gallery ports.GalleryRenderer, booklet ports.BookletRenderer, normalizer ImageNormalizer, log logger.Logger) *ExportService {
	return &ExportService{
		gallery:    gallery,
		booklet:    booklet,
		normalizer: normalizer,
		log:        log,
	}
}

// ExportProgress reports one processed asset during an HTML export
type ExportProgress struct {
	Current int
	Total   int
	AssetID string
	Title   string
	Success bool
	Error   error
}

// ExportSummary aggregates an HTML export run. Skipped counts assets
// whose source is missing and images already up to date; only the
// former are excluded from the document.
type ExportSummary struct {
	Total    int
	Exported int
	Skipped  int
	Failed   int
}

// imageJob is one asset's publish-image task
type imageJob struct {
	asset *domain.Asset
	dest  string
}

// imageResult is the outcome of one imageJob
type imageResult struct {
	asset   *domain.Asset
	skipped bool
	err     error
}

// ExportHTML publishes the snapshot as a static gallery under outDir:
// normalized images in images/, then index.html from the theme.
// Assets whose source file is missing are skipped; processing failures
// exclude the asset from the document but never abort the export.
// progress may be nil; when set it is closed before returning.
func (s *ExportService) ExportHTML(ctx context.Context, snap domain.Snapshot, themePath, outDir string, maxWorkers int, progress chan<- ExportProgress) (*ExportSummary, error) {
	if progress != nil {
		defer close(progress)
	}

	imagesDir := filepath.Join(outDir, "images")
	if err := os.MkdirAll(imagesDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}

	if maxWorkers <= 0 {
		maxWorkers = 4
	}

	summary := &ExportSummary{Total: len(snap.Assets)}
	includedSet := make(map[string]bool)

	var jobs []imageJob
	for _, asset := range snap.Assets {
		if _, err := os.Stat(asset.SourcePath); err != nil {
			summary.Skipped++
			s.log.Warn("export skipping missing source",
				logger.String("id", asset.ID), logger.String("path", asset.SourcePath))
			continue
		}
		jobs = append(jobs, imageJob{
			asset: asset,
			dest:  filepath.Join(imagesDir, asset.ID+".jpg"),
		})
	}

	results := s.processConcurrently(ctx, jobs, maxWorkers)

	current := 0
	for result := range results {
		current++
		switch {
		case result.err != nil:
			summary.Failed++
			s.log.Warn("export image processing failed",
				logger.String("id", result.asset.ID), logger.Error(result.err))
		case result.skipped:
			summary.Skipped++
			includedSet[result.asset.ID] = true
		default:
			summary.Exported++
			includedSet[result.asset.ID] = true
		}
		if progress != nil {
			progress <- ExportProgress{
				Current: current,
				Total:   len(jobs),
				AssetID: result.asset.ID,
				Title:   result.asset.Title,
				Success: result.err == nil,
				Error:   result.err,
			}
		}
	}

	// Document order follows the snapshot, not completion order
	var included []string
	for _, asset := range snap.Assets {
		if includedSet[asset.ID] {
			included = append(included, asset.ID)
		}
	}

	if err := s.gallery.RenderDocument(snap, included, themePath, outDir); err != nil {
		return nil, fmt.Errorf("failed to render gallery: %w", err)
	}
	return summary, nil
}

// processConcurrently runs the image jobs on a worker pool
func (s *ExportService) processConcurrently(ctx context.Context, jobs []imageJob, maxWorkers int) <-chan imageResult {
	jobCh := make(chan imageJob, len(jobs))
	results := make(chan imageResult, len(jobs))

	var wg sync.WaitGroup
	for i := 0; i < maxWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.worker(ctx, jobCh, results)
		}()
	}

	for _, job := range jobs {
		jobCh <- job
	}
	close(jobCh)

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// worker processes image jobs until the channel drains
func (s *ExportService) worker(ctx context.Context, jobs <-chan imageJob, results chan<- imageResult) {
	for job := range jobs {
		select {
		case <-ctx.Done():
			results <- imageResult{asset: job.asset, err: ctx.Err()}
			continue
		default:
		}

		if upToDate(job.asset.SourcePath, job.dest) {
			results <- imageResult{asset: job.asset, skipped: true}
			continue
		}

		err := s.normalizer.Normalize(job.asset.SourcePath, job.dest, exportImagePx)
		results <- imageResult{asset: job.asset, err: err}
	}
}

// upToDate reports whether the published image is newer than its
// source. Any stat failure means reprocess.
func upToDate(sourcePath, destPath string) bool {
	destInfo, err := os.Stat(destPath)
	if err != nil {
		return false
	}
	srcInfo, err := os.Stat(sourcePath)
	if err != nil {
		return false
	}
	return !srcInfo.ModTime().After(destInfo.ModTime())
}

// ErrPDFUnavailable is returned when the booklet backend can't run
var ErrPDFUnavailable = fmt.Errorf("pdf backend not available")

// ExportPDF publishes the snapshot as a paginated booklet
func (s *ExportService) ExportPDF(ctx context.Context, snap domain.Snapshot, outPath string) error {
	if !s.booklet.Available() {
		return ErrPDFUnavailable
	}
	if err := s.booklet.Render(ctx, snap, outPath); err != nil {
		return fmt.Errorf("failed to render booklet: %w", err)
	}
	return nil
}
