package domain

// Metadata holds the portfolio-level identity fields for a project.
// All fields are optional free text; there are no cross-field rules.
type Metadata struct {
	PortfolioTitle string `json:"portfolio_title"`
	ArtistName     string `json:"artist_name"`
	Role           string `json:"role"`
	Email          string `json:"email"`
	Bio            string `json:"bio"`
	SocialLink     string `json:"social_link"`
	CVLink         string `json:"cv_link"`
}

// DefaultMetadata returns the metadata a fresh project starts with
func DefaultMetadata() Metadata {
	return Metadata{
		PortfolioTitle: "Portfolio",
		ArtistName:     "Artist Name",
		Role:           "Concept Artist",
	}
}
