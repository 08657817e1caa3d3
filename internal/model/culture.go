package model

// CultureItem is a story about a cultural practice, either bundled with the
// application or submitted by a user at runtime.
type CultureItem struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Category       string   `json:"category"`
	Summary        string   `json:"summary"`
	Content        string   `json:"content"`
	CoverImage     string   `json:"cover_image,omitempty"`
	GalleryImages  []string `json:"gallery_images"`
	Tags           []string `json:"tags"`
	PlaceID        *string  `json:"place_id,omitempty"`
	CreatedAtMilli int64    `json:"created_at"`
}

// TagUserPost marks items submitted through AddPost.
const TagUserPost = "UserPost"

// UserPostIDPrefix prefixes the generated id of user submissions.
const UserPostIDPrefix = "u_"

// IsUserPost reports whether the item was submitted at runtime.
func (c CultureItem) IsUserPost() bool {
	for _, t := range c.Tags {
		if t == TagUserPost {
			return true
		}
	}
	return false
}
