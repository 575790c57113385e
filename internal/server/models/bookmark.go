package models

import "time"

// Bookmark is one entry of a user's ordered bookmark list. Position is the
// display order within the owner's list; the JSON field keeps the historical
// name "order". Positions start contiguous but are not renumbered after
// deletes.
type Bookmark struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Icon      string    `json:"icon"`
	Category  string    `json:"category"`
	Position  int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}
