package models

import "time"

// Preferences is the fixed set of per-user UI settings. The whole document
// is replaced on update, never merged.
type Preferences struct {
	Theme               string `json:"theme"`
	DefaultSearchEngine string `json:"default_search_engine"`
	ClockFormat         string `json:"clock_format"`
	Language            string `json:"language"`
}

// DefaultPreferences returns the settings applied to every new account.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:               "dark",
		DefaultSearchEngine: "google",
		ClockFormat:         "12h",
		Language:            "bn",
	}
}

// User is an account record. PasswordHash and LastLogin never appear in
// API responses.
type User struct {
	ID           string      `json:"id"`
	Email        string      `json:"email"`
	Name         string      `json:"name"`
	PasswordHash string      `json:"-"`
	Preferences  Preferences `json:"preferences"`
	CreatedAt    time.Time   `json:"created_at"`
	LastLogin    time.Time   `json:"-"`
}
