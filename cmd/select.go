package cmd

import (
	"fmt"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"

	"github.com/cadmiumcmyk/curator/internal/core/domain"
)

// errSelectionCancelled marks a user abort, not a failure
var errSelectionCancelled = fmt.Errorf("selection cancelled")

// selectAsset resolves a query to one asset. A unique match is taken
// directly; otherwise the fuzzy finder opens over the candidates.
func selectAsset(query string) (*domain.Asset, error) {
	view := domain.View{Query: query, Sort: domain.SortAdded}
	candidates := view.Compute(projectService.Store())

	if len(candidates) == 0 {
		if query != "" {
			return nil, fmt.Errorf("no artwork matches: %s", query)
		}
		return nil, fmt.Errorf("project is empty")
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	idx, err := fuzzyfinder.Find(
		candidates,
		func(i int) string {
			return candidates[i].Title
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return assetPreview(candidates[i])
		}),
	)
	if err != nil {
		// User cancelled (Ctrl+C or ESC)
		return nil, errSelectionCancelled
	}
	return candidates[idx], nil
}

// selectAssets resolves a query to one or more assets, with multi
// select in the fuzzy finder (tab to mark)
func selectAssets(query string) ([]*domain.Asset, error) {
	view := domain.View{Query: query, Sort: domain.SortAdded}
	candidates := view.Compute(projectService.Store())

	if len(candidates) == 0 {
		if query != "" {
			return nil, fmt.Errorf("no artwork matches: %s", query)
		}
		return nil, fmt.Errorf("project is empty")
	}
	if len(candidates) == 1 {
		return candidates, nil
	}

	idxs, err := fuzzyfinder.FindMulti(
		candidates,
		func(i int) string {
			return candidates[i].Title
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return assetPreview(candidates[i])
		}),
	)
	if err != nil {
		return nil, errSelectionCancelled
	}

	selected := make([]*domain.Asset, 0, len(idxs))
	for _, i := range idxs {
		selected = append(selected, candidates[i])
	}
	return selected, nil
}

func assetPreview(a *domain.Asset) string {
	preview := fmt.Sprintf("Title: %s\nSource: %s", a.Title, a.SourcePath)
	if a.Medium != "" || a.Year != "" {
		preview += fmt.Sprintf("\nMedium: %s  Year: %s", a.Medium, a.Year)
	}
	if len(a.Tags) > 0 {
		preview += "\nTags: " + a.TagsString()
	}
	if a.Description != "" {
		preview += "\n\n" + a.Description
	}
	return preview
}
