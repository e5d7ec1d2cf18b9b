package models

// PortfolioType classifies an achievement record.
type PortfolioType string

const (
	PortfolioProject     PortfolioType = "project"
	PortfolioCertificate PortfolioType = "certificate"
	PortfolioAward       PortfolioType = "award"
	PortfolioActivity    PortfolioType = "activity"
	PortfolioExperience  PortfolioType = "experience"
)

// PortfolioLinks holds the optional evidence links of a portfolio item.
type PortfolioLinks struct {
	GitHub string `json:"github,omitempty"`
	Demo   string `json:"demo,omitempty"`
	Other  string `json:"other,omitempty"`
}

// PortfolioItem is a single achievement record. No derived fields.
type PortfolioItem struct {
	ID          string         `json:"id"`
	Type        PortfolioType  `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Date        string         `json:"date"`
	Tags        []string       `json:"tags"`
	Images      []string       `json:"images"`
	Links       PortfolioLinks `json:"links"`
	Details     string         `json:"details"`
}

// PortfolioUpdate carries a partial portfolio-item change.
type PortfolioUpdate struct {
	Type        *PortfolioType  `json:"type,omitempty" validate:"omitempty,oneof=project certificate award activity experience"`
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Date        *string         `json:"date,omitempty"`
	Tags        *[]string       `json:"tags,omitempty"`
	Images      *[]string       `json:"images,omitempty"`
	Links       *PortfolioLinks `json:"links,omitempty"`
	Details     *string         `json:"details,omitempty"`
}
