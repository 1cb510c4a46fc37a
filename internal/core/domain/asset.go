package domain

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Asset represents one creative work in a portfolio: a source image
// plus its descriptive fields. The ID is assigned at creation and is
// never reassigned or reused, even across a deletion and its undo.
type Asset struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	SourcePath    string   `json:"source_path"`
	ThumbnailPath string   `json:"thumbnail_path"`
	Description   string   `json:"description"`
	Medium        string   `json:"medium"`
	Year          string   `json:"year"` // free text, not a validated integer
	Link          string   `json:"link"`
	Notes         string   `json:"notes"`
	Tags          []string `json:"tags"`
}

// NewID returns a fresh asset identifier
func NewID() string {
	return uuid.NewString()
}

// NewAsset creates an asset for a source image, titled after its filename
func NewAsset(sourcePath string) *Asset {
	title := filepath.Base(sourcePath)
	if title == "." || title == string(filepath.Separator) {
		title = "Untitled"
	}
	return &Asset{
		ID:         NewID(),
		Title:      title,
		SourcePath: sourcePath,
		Tags:       []string{},
	}
}

// AddTag appends a tag, suppressing duplicates (case-sensitive).
// Returns true if the tag was added.
func (a *Asset) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	for _, t := range a.Tags {
		if t == tag {
			return false
		}
	}
	a.Tags = append(a.Tags, tag)
	return true
}

// RemoveTag deletes a tag if present
func (a *Asset) RemoveTag(tag string) {
	for i, t := range a.Tags {
		if t == tag {
			a.Tags = append(a.Tags[:i], a.Tags[i+1:]...)
			return
		}
	}
}

// SetTagsString replaces the tag list from a comma-separated string,
// trimming whitespace and dropping empties and duplicates
func (a *Asset) SetTagsString(s string) {
	a.Tags = a.Tags[:0]
	for _, part := range strings.Split(s, ",") {
		a.AddTag(part)
	}
}

// TagsString returns tags as a comma-separated string
func (a *Asset) TagsString() string {
	return strings.Join(a.Tags, ", ")
}

// Clone returns a deep copy of the asset. Export snapshots use this so
// later edits are not observed by an in-flight export.
func (a *Asset) Clone() *Asset {
	c := *a
	c.Tags = append([]string(nil), a.Tags...)
	return &c
}

// supportedExtensions is the set of image types the pipeline can decode
var supportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// IsSupportedImage reports whether the path has a decodable image extension
func IsSupportedImage(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}
