package site

import (
	"sync"
	"time"
)

// ContentCache is an in-memory snapshot of all published content with TTL.
// Rows are cached pre-liveness: scheduled-but-future items stay in the
// snapshot and the query layer gates on LiveAt per request, so a scheduled
// post goes live on time without an invalidation.
type ContentCache struct {
	mu            sync.RWMutex
	posts         []Post
	events        []Event
	cases         []CaseStudy
	presentations []Presentation
	tags          []string
	fetched       time.Time
	ttl           time.Duration
	store         *Store
}

// NewContentCache creates a ContentCache backed by the given Store.
func NewContentCache(s *Store, ttl time.Duration) *ContentCache {
	return &ContentCache{store: s, ttl: ttl}
}

func (c *ContentCache) valid() bool {
	return !c.fetched.IsZero() && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *ContentCache) Invalidate() {
	c.mu.Lock()
	c.fetched = time.Time{}
	c.posts = nil
	c.events = nil
	c.cases = nil
	c.presentations = nil
	c.tags = nil
	c.mu.Unlock()
}

func (c *ContentCache) load() error {
	if c.valid() {
		return nil
	}
	posts, err := c.store.ListPublishedPosts()
	if err != nil {
		return err
	}
	events, err := c.store.ListPublishedEvents()
	if err != nil {
		return err
	}
	cases, err := c.store.ListPublishedCaseStudies()
	if err != nil {
		return err
	}
	presentations, err := c.store.ListPublishedPresentations()
	if err != nil {
		return err
	}
	tags, err := c.store.ListTags()
	if err != nil {
		return err
	}
	c.posts = posts
	c.events = events
	c.cases = cases
	c.presentations = presentations
	c.tags = tags
	c.fetched = time.Now()
	return nil
}

// snapshot returns the cached content after ensuring freshness. It tries a
// read lock first; only takes a write lock if a reload is needed.
func (c *ContentCache) snapshot() (contentSnapshot, error) {
	c.mu.RLock()
	if c.valid() {
		snap := contentSnapshot{c.posts, c.events, c.cases, c.presentations, c.tags}
		c.mu.RUnlock()
		return snap, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return contentSnapshot{}, err
	}
	return contentSnapshot{c.posts, c.events, c.cases, c.presentations, c.tags}, nil
}

type contentSnapshot struct {
	posts         []Post
	events        []Event
	cases         []CaseStudy
	presentations []Presentation
	tags          []string
}

// Posts returns published posts in listing order.
func (c *ContentCache) Posts() ([]Post, error) {
	snap, err := c.snapshot()
	return snap.posts, err
}

// Events returns published events by start time ascending.
func (c *ContentCache) Events() ([]Event, error) {
	snap, err := c.snapshot()
	return snap.events, err
}

// CaseStudies returns published case studies in listing order.
func (c *ContentCache) CaseStudies() ([]CaseStudy, error) {
	snap, err := c.snapshot()
	return snap.cases, err
}

// Presentations returns published presentations in listing order.
func (c *ContentCache) Presentations() ([]Presentation, error) {
	snap, err := c.snapshot()
	return snap.presentations, err
}

// Tags returns all unique tags from published posts.
func (c *ContentCache) Tags() ([]string, error) {
	snap, err := c.snapshot()
	return snap.tags, err
}
