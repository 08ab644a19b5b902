package domain

import "time"

// LocalizedText maps a language code ("en", "uk", ...) to a translation.
type LocalizedText map[string]string

// Get returns the translation for lang, falling back to any available one.
func (t LocalizedText) Get(lang string) string {
	if v, ok := t[lang]; ok && v != "" {
		return v
	}
	if v, ok := t["en"]; ok {
		return v
	}
	for _, v := range t {
		return v
	}
	return ""
}

// Course is an admin-authored training offering.
type Course struct {
	ID          int64         `json:"id"`
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description,omitempty"`
	Price       int64         `json:"price"`
	Duration    int           `json:"duration"`
	Category    string        `json:"category,omitempty"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Service is a bookable catalog offering. Price is in minor currency
// units, Duration in minutes.
type Service struct {
	ID          int64         `json:"id"`
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description,omitempty"`
	Price       int64         `json:"price"`
	Duration    int           `json:"duration"`
	Category    string        `json:"category,omitempty"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
