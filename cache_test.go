package site

import (
	"testing"
	"time"
)

func TestCacheServesSnapshotUntilInvalidated(t *testing.T) {
	s, cache := setupTestCache(t)

	mustSavePost(t, s, Post{Title: "First", Publication: Publication{Published: true}})

	posts, err := cache.Posts()
	if err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("posts = %d, want 1", len(posts))
	}

	mustSavePost(t, s, Post{Title: "Second", Publication: Publication{Published: true}})

	posts, err = cache.Posts()
	if err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	if len(posts) != 1 {
		t.Errorf("cache returned %d posts before invalidation, want the stale 1", len(posts))
	}

	cache.Invalidate()
	posts, err = cache.Posts()
	if err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	if len(posts) != 2 {
		t.Errorf("posts after Invalidate = %d, want 2", len(posts))
	}
}

func TestCacheExpiresAfterTTL(t *testing.T) {
	s := setupTestStore(t)
	cache := NewContentCache(s, 30*time.Millisecond)

	mustSavePost(t, s, Post{Title: "First", Publication: Publication{Published: true}})
	if _, err := cache.Posts(); err != nil {
		t.Fatalf("Posts failed: %v", err)
	}

	mustSavePost(t, s, Post{Title: "Second", Publication: Publication{Published: true}})
	time.Sleep(50 * time.Millisecond)

	posts, err := cache.Posts()
	if err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	if len(posts) != 2 {
		t.Errorf("posts after TTL expiry = %d, want 2", len(posts))
	}
}

func TestCacheHoldsAllContentTypes(t *testing.T) {
	s, cache := setupTestCache(t)
	now := time.Now()

	mustSavePost(t, s, Post{Title: "P", Tags: []string{"go"}, Publication: Publication{Published: true}})
	mustSaveEvent(t, s, Event{Title: "E", StartsAt: now, EndsAt: now.Add(time.Hour), Publication: Publication{Published: true}})
	cs := CaseStudy{Title: "C", Publication: Publication{Published: true}}
	if err := s.SaveCaseStudy(&cs); err != nil {
		t.Fatalf("SaveCaseStudy failed: %v", err)
	}
	pr := Presentation{Title: "T", Speaker: "S", Publication: Publication{Published: true}}
	if err := s.SavePresentation(&pr); err != nil {
		t.Fatalf("SavePresentation failed: %v", err)
	}

	if got, _ := cache.Posts(); len(got) != 1 {
		t.Errorf("cached posts = %d, want 1", len(got))
	}
	if got, _ := cache.Events(); len(got) != 1 {
		t.Errorf("cached events = %d, want 1", len(got))
	}
	if got, _ := cache.CaseStudies(); len(got) != 1 {
		t.Errorf("cached case studies = %d, want 1", len(got))
	}
	if got, _ := cache.Presentations(); len(got) != 1 {
		t.Errorf("cached presentations = %d, want 1", len(got))
	}
	if got, _ := cache.Tags(); len(got) != 1 || got[0] != "go" {
		t.Errorf("cached tags = %v, want [go]", got)
	}
}
