package models

// Show represents a TV show as identified on the catalog site
type Show struct {
	ID   int    `json:"id"`
	Slug string `json:"slug"`
}
