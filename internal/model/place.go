package model

// Place is a heritage site or point of interest.
type Place struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url,omitempty"`
}
