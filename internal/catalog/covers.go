package catalog

import "sync"

// Cover is an encoded image attached to a submitted story.
type Cover struct {
	Data []byte
	MIME string
}

// Covers keeps uploaded cover images in memory, like the stories they belong to.
type Covers struct {
	mu     sync.RWMutex
	covers map[string]Cover
}

// NewCovers returns an empty cover store.
func NewCovers() *Covers {
	return &Covers{covers: make(map[string]Cover)}
}

// Put stores the cover for id, replacing any previous one.
func (c *Covers) Put(id string, cover Cover) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.covers[id] = cover
}

// Get returns the cover for id.
func (c *Covers) Get(id string) (Cover, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cover, ok := c.covers[id]
	return cover, ok
}
