package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/erazemk/kultur/internal/model"
)

// ErrInvalidPost is returned by AddPost when a required field is blank.
var ErrInvalidPost = errors.New("invalid post")

// PostInput holds the fields of a user-submitted story.
type PostInput struct {
	Title      string `json:"title"`
	Category   string `json:"category"`
	Summary    string `json:"summary"`
	Content    string `json:"content"`
	CoverImage string `json:"cover_image"`
}

// Validate checks that all required fields are non-blank.
func (p PostInput) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"title", p.Title},
		{"category", p.Category},
		{"summary", p.Summary},
		{"content", p.Content},
	} {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s required", ErrInvalidPost, f.name)
		}
	}
	return nil
}

// Culture holds the bundled culture items plus stories submitted during the
// lifetime of the process. Submitted stories are never persisted.
type Culture struct {
	base []model.CultureItem

	mu     sync.RWMutex
	posts  []model.CultureItem
	lastID int64

	now func() time.Time
}

// NewCulture returns a catalog over the given bundled items.
func NewCulture(items []model.CultureItem) *Culture {
	base := make([]model.CultureItem, len(items))
	for i, item := range items {
		base[i] = cloneItem(item)
	}
	return &Culture{base: base, now: time.Now}
}

// cloneItem copies the slices and pointers of item so callers never share
// storage with the catalog.
func cloneItem(item model.CultureItem) model.CultureItem {
	item.GalleryImages = slices.Clone(item.GalleryImages)
	item.Tags = slices.Clone(item.Tags)
	if item.PlaceID != nil {
		id := *item.PlaceID
		item.PlaceID = &id
	}
	return item
}

// merged returns copies of the posts followed by the bundled items.
func (c *Culture) merged() []model.CultureItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.CultureItem, 0, len(c.posts)+len(c.base))
	for _, item := range c.posts {
		out = append(out, cloneItem(item))
	}
	for _, item := range c.base {
		out = append(out, cloneItem(item))
	}
	return out
}

// newestFirst orders by descending creation time, then ascending id.
func newestFirst(a, b model.CultureItem) int {
	if c := cmp.Compare(b.CreatedAtMilli, a.CreatedAtMilli); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

// All returns every item, newest first.
func (c *Culture) All() []model.CultureItem {
	items := c.merged()
	slices.SortFunc(items, newestFirst)
	return items
}

// Categories returns the distinct categories in ascending, case-sensitive order.
func (c *Culture) Categories() []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, item := range c.merged() {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		categories = append(categories, item.Category)
	}
	slices.Sort(categories)
	return categories
}

// ByCategory returns items whose category matches case-insensitively, newest first.
func (c *Culture) ByCategory(category string) []model.CultureItem {
	var items []model.CultureItem
	for _, item := range c.merged() {
		if strings.EqualFold(item.Category, category) {
			items = append(items, item)
		}
	}
	slices.SortFunc(items, newestFirst)
	return items
}

// ByID returns the first item with the given id.
func (c *Culture) ByID(id string) (model.CultureItem, bool) {
	for _, item := range c.merged() {
		if item.ID == id {
			return item, true
		}
	}
	return model.CultureItem{}, false
}

// ByIDs returns the items whose id is in ids, newest first. Ids that do not
// resolve are skipped.
func (c *Culture) ByIDs(ids []string) []model.CultureItem {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var items []model.CultureItem
	for _, item := range c.All() {
		if _, ok := want[item.ID]; ok {
			items = append(items, item)
		}
	}
	return items
}

// Search returns items whose title, summary or tags contain query,
// case-insensitively, newest first. A blank query matches everything.
func (c *Culture) Search(query string) []model.CultureItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.All()
	}
	var items []model.CultureItem
	for _, item := range c.All() {
		if matchesCulture(item, q) {
			items = append(items, item)
		}
	}
	return items
}

func matchesCulture(item model.CultureItem, q string) bool {
	if strings.Contains(strings.ToLower(item.Title), q) ||
		strings.Contains(strings.ToLower(item.Summary), q) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Posts returns stories submitted through AddPost, newest first.
func (c *Culture) Posts() []model.CultureItem {
	c.mu.RLock()
	posts := make([]model.CultureItem, 0, len(c.posts))
	for _, item := range c.posts {
		posts = append(posts, cloneItem(item))
	}
	c.mu.RUnlock()
	slices.SortFunc(posts, newestFirst)
	return posts
}

// AddPost validates and appends a user-submitted story. The id is derived
// from the current time in milliseconds and is moved forward when two posts
// land in the same millisecond.
func (c *Culture) AddPost(in PostInput) (model.CultureItem, error) {
	if err := in.Validate(); err != nil {
		return model.CultureItem{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	millis := c.now().UnixMilli()
	if millis <= c.lastID {
		millis = c.lastID + 1
	}
	c.lastID = millis

	item := model.CultureItem{
		ID:             model.UserPostIDPrefix + strconv.FormatInt(millis, 10),
		Title:          in.Title,
		Category:       in.Category,
		Summary:        in.Summary,
		Content:        in.Content,
		CoverImage:     in.CoverImage,
		GalleryImages:  []string{},
		Tags:           []string{model.TagUserPost},
		CreatedAtMilli: millis,
	}
	c.posts = append(c.posts, item)
	return cloneItem(item), nil
}

// SetCover replaces the cover image reference of a submitted story.
func (c *Culture) SetCover(id, ref string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.posts {
		if c.posts[i].ID == id {
			c.posts[i].CoverImage = ref
			return true
		}
	}
	return false
}
