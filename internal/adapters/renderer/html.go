package renderer

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/cadmiumcmyk/curator/internal/core/domain"
	"github.com/cadmiumcmyk/curator/internal/core/ports"
)

// gridMarker is where the gallery cards are injected into a theme
const gridMarker = `<div class="grid"></div>`

// Gallery renders the static HTML portfolio document. Image files are
// produced by the export service beforehand; the renderer only writes
// index.html.
type Gallery struct{}

// NewGallery creates an HTML gallery renderer
func NewGallery() *Gallery {
	return &Gallery{}
}

var _ ports.GalleryRenderer = (*Gallery)(nil)

// RenderDocument writes outDir/index.html from the snapshot, including
// only the assets whose ids appear in included, in snapshot order
func (g *Gallery) RenderDocument(snap domain.Snapshot, included []string, themePath, outDir string) error {
	includedSet := make(map[string]bool, len(included))
	for _, id := range included {
		includedSet[id] = true
	}

	var cards strings.Builder
	for _, asset := range snap.Assets {
		if !includedSet[asset.ID] {
			continue
		}
		cards.WriteString(renderCard(asset))
	}

	content := themeContent(themePath)
	content = substituteTokens(content, snap.Metadata)
	content = injectGrid(content, cards.String())

	outPath := filepath.Join(outDir, "index.html")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write gallery document: %w", err)
	}
	return nil
}

// themeContent reads the theme file, falling back to the built-in
// theme when the file can't be read
func themeContent(themePath string) string {
	data, err := os.ReadFile(themePath)
	if err != nil {
		return themeDark
	}
	return string(data)
}

// renderCard builds one gallery card. Descriptions are never
// truncated here; the full text belongs in the gallery.
func renderCard(a *domain.Asset) string {
	var b strings.Builder
	b.WriteString(`<div class="card"><img src="images/` + a.ID + `.jpg" loading="lazy"><div class="info">`)
	b.WriteString("<h2>" + html.EscapeString(a.Title) + "</h2>")

	if a.Medium != "" || a.Year != "" {
		meta := html.EscapeString(a.Medium)
		if a.Year != "" {
			meta += " | " + html.EscapeString(a.Year)
		}
		b.WriteString(`<p class="meta">` + meta + "</p>")
	}

	b.WriteString(`<p class="desc">` + html.EscapeString(a.Description) + "</p>")

	if a.Notes != "" {
		b.WriteString(`<div class="notes">` + html.EscapeString(a.Notes) + "</div>")
	}
	if a.Link != "" {
		b.WriteString(`<a href="` + html.EscapeString(a.Link) + `" class="btn" target="_blank">View Project</a>`)
	}

	b.WriteString("</div></div>")
	return b.String()
}

// substituteTokens replaces the metadata placeholders. Metadata values
// are inserted verbatim so owners can use markup in their own bio.
func substituteTokens(content string, meta domain.Metadata) string {
	replacer := strings.NewReplacer(
		"{{TITLE}}", meta.PortfolioTitle,
		"{{NAME}}", meta.ArtistName,
		"{{ROLE}}", meta.Role,
		"{{BIO}}", meta.Bio,
		"{{EMAIL}}", meta.Email,
		"{{LINKS}}", renderLinks(meta),
	)
	return replacer.Replace(content)
}

// renderLinks builds the footer link list
func renderLinks(meta domain.Metadata) string {
	var links []string
	if meta.SocialLink != "" {
		links = append(links, `<a href="`+meta.SocialLink+`">Social</a>`)
	}
	if meta.CVLink != "" {
		links = append(links, `<a href="`+meta.CVLink+`">Resume/CV</a>`)
	}
	return strings.Join(links, " | ")
}

// injectGrid places the cards inside the theme's grid container, or
// ahead of </body> for themes without one
func injectGrid(content, cards string) string {
	if strings.Contains(content, gridMarker) {
		return strings.Replace(content, gridMarker, `<div class="grid">`+cards+"</div>", 1)
	}
	if idx := strings.LastIndex(content, "</body>"); idx >= 0 {
		return content[:idx] + `<div class="grid">` + cards + "</div>" + content[idx:]
	}
	return content + `<div class="grid">` + cards + "</div>"
}
