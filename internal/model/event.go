package model

// Event is a scheduled cultural event held at a place. Dates are kept as the
// ISO-8601 strings found in the source data.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	PlaceID     string `json:"place_id"`
	ImageURL    string `json:"image_url,omitempty"`
}
