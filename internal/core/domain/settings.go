package domain

// Settings are the cross-project defaults kept outside any project
// file: the artist identity seeded into new projects and the preferred
// export theme.
type Settings struct {
	ArtistName string
	Role       string
	Email      string
	Bio        string
	SocialLink string
	CVLink     string
	Theme      string
}

// SeedMetadata fills a fresh project's metadata from the saved
// defaults, keeping the built-in value wherever a default is empty
func (s Settings) SeedMetadata(title string) Metadata {
	meta := DefaultMetadata()
	if title != "" {
		meta.PortfolioTitle = title
	}
	if s.ArtistName != "" {
		meta.ArtistName = s.ArtistName
	}
	if s.Role != "" {
		meta.Role = s.Role
	}
	meta.Email = s.Email
	meta.Bio = s.Bio
	meta.SocialLink = s.SocialLink
	meta.CVLink = s.CVLink
	return meta
}

// RecentProject is one entry in the recent-projects index
type RecentProject struct {
	Path       string `json:"path"`
	Name       string `json:"name"`
	Title      string `json:"title"`
	LastOpened int64  `json:"last_opened"` // epoch seconds
}
