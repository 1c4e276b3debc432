package domain

// Game represents a sellable catalog item. Stock is the only field mutated
// outside the admin surface, and only at checkout commit time.
type Game struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Platform    string  `json:"platform"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Popularity  int     `json:"popularity"`
	Image       string  `json:"image"`
	Description string  `json:"description,omitempty"`
}

// Category is a navigation entry for a platform tab.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// CategoryCount pairs a category tag with the number of games carrying it.
type CategoryCount struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// PlatformCount pairs a platform tag with its game count.
type PlatformCount struct {
	Platform string `json:"platform"`
	Count    int    `json:"count"`
}

// SortKey selects the catalog ordering.
type SortKey string

const (
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortPopular   SortKey = "popular"
)
