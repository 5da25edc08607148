// Package entity contains the core business objects of the project.
package entity

// StoreRecord is one recommended store as returned by the listing endpoint.
// Records are immutable once fetched; StoreID is the identity.
type StoreRecord struct {
	StoreID      string  `json:"store_id"`      // Unique store identifier.
	Name         string  `json:"name"`          // Display name.
	RatingValue  float64 `json:"rating_value"`  // Average rating in [0,5].
	AveragePrice float64 `json:"average_price"` // Average price per person.
	Distance     float64 `json:"distance"`      // Distance from the requesting coordinate, in meters.
	ImageRef     string  `json:"image_ref"`     // Cover image reference.
	IsFavorite   bool    `json:"is_favorite"`   // Whether the user marked the store as favorite.
}

// Banner is a promoted store shown in the banner carousel.
type Banner struct {
	StoreID  string `json:"store_id"`
	ImageRef string `json:"img"`
}

// Category is a browsable store category.
type Category struct {
	ConcernID  int    `json:"concern_id"`
	ShortLabel string `json:"short_label"`
	Label      string `json:"label"`
}
