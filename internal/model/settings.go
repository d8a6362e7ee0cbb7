package model

import "time"

// Settings is the single global configuration record. It is overwritten
// wholesale on change and never versioned.
type Settings struct {
	Currency   string `json:"currency"`
	Timezone   string `json:"timezone"`
	Theme      string `json:"theme"`
	DateFormat string `json:"dateFormat"`
}

// DefaultSettings returns the configuration a fresh ledger starts with.
func DefaultSettings() Settings {
	return Settings{
		Currency:   "INR",
		Timezone:   "Asia/Kolkata",
		Theme:      "light",
		DateFormat: "dd/mm/yyyy",
	}
}

// Location resolves the configured timezone, falling back to UTC when the
// name is unknown so date math stays deterministic.
func (s Settings) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
