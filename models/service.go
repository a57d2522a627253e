package models

// Service is a bookable treatment (haircut, shave, ...).
type Service struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	ImageURL        string  `json:"imageUrl,omitempty"`
}
