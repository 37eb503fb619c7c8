package site

import (
	"fmt"
	"testing"
	"time"
)

func setupTestCache(t *testing.T) (*Store, *ContentCache) {
	t.Helper()
	s := setupTestStore(t)
	return s, NewContentCache(s, time.Minute)
}

func mustSavePost(t *testing.T, s *Store, p Post) Post {
	t.Helper()
	if err := s.SavePost(&p); err != nil {
		t.Fatalf("SavePost failed: %v", err)
	}
	return p
}

func mustSaveEvent(t *testing.T, s *Store, e Event) Event {
	t.Helper()
	if err := s.SaveEvent(&e); err != nil {
		t.Fatalf("SaveEvent failed: %v", err)
	}
	return e
}

func TestPostListingPagination(t *testing.T) {
	s, cache := setupTestCache(t)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 12; i++ {
		mustSavePost(t, s, Post{
			Title:       fmt.Sprintf("Post %02d", i),
			Publication: Publication{Published: true, PublishAt: now.Add(-time.Duration(i) * time.Hour)},
		})
	}

	page, err := cache.PostListing(now, "", "", 1)
	if err != nil {
		t.Fatalf("PostListing failed: %v", err)
	}
	if len(page.Posts) != 9 {
		t.Errorf("page 1 size = %d, want 9", len(page.Posts))
	}
	if page.TotalPages != 2 || page.TotalCount != 12 {
		t.Errorf("TotalPages = %d TotalCount = %d, want 2/12", page.TotalPages, page.TotalCount)
	}
	if page.Posts[0].Title != "Post 00" {
		t.Errorf("page 1 should start with the newest post, got %q", page.Posts[0].Title)
	}
	if page.HasPrev() || !page.HasNext() {
		t.Error("page 1 should have next but not prev")
	}

	page, err = cache.PostListing(now, "", "", 2)
	if err != nil {
		t.Fatalf("PostListing failed: %v", err)
	}
	if len(page.Posts) != 3 {
		t.Errorf("page 2 size = %d, want 3", len(page.Posts))
	}
	if !page.HasPrev() || page.HasNext() {
		t.Error("page 2 should have prev but not next")
	}

	// Out-of-range page numbers clamp instead of erroring.
	page, err = cache.PostListing(now, "", "", 99)
	if err != nil {
		t.Fatalf("PostListing failed: %v", err)
	}
	if page.Number != 2 {
		t.Errorf("page 99 should clamp to 2, got %d", page.Number)
	}
	page, err = cache.PostListing(now, "", "", 0)
	if err != nil {
		t.Fatalf("PostListing failed: %v", err)
	}
	if page.Number != 1 {
		t.Errorf("page 0 should clamp to 1, got %d", page.Number)
	}
}

func TestPostListingEmptyResult(t *testing.T) {
	_, cache := setupTestCache(t)
	now := time.Now()

	page, err := cache.PostListing(now, "nothing matches this", "", 5)
	if err != nil {
		t.Fatalf("PostListing failed: %v", err)
	}
	if len(page.Posts) != 0 || page.Number != 1 || page.TotalPages != 1 {
		t.Errorf("empty listing = %+v, want one empty page", page)
	}
}

func TestPostListingSearch(t *testing.T) {
	s, cache := setupTestCache(t)
	now := time.Now()

	mustSavePost(t, s, Post{Title: "Kubernetes at scale", Publication: Publication{Published: true, PublishAt: now.Add(-time.Hour)}})
	mustSavePost(t, s, Post{Title: "Plain title", Summary: "All about Kubernetes", Publication: Publication{Published: true, PublishAt: now.Add(-2 * time.Hour)}})
	mustSavePost(t, s, Post{Title: "Body match", Body: "<p>kubernetes inside</p>", Publication: Publication{Published: true, PublishAt: now.Add(-3 * time.Hour)}})
	mustSavePost(t, s, Post{Title: "Unrelated", Publication: Publication{Published: true, PublishAt: now.Add(-4 * time.Hour)}})

	page, err := cache.PostListing(now, "KUBERNETES", "", 1)
	if err != nil {
		t.Fatalf("PostListing failed: %v", err)
	}
	if len(page.Posts) != 3 {
		t.Errorf("search matched %d posts, want 3 (title, summary, body)", len(page.Posts))
	}
}

func TestPostListingTagFilter(t *testing.T) {
	s, cache := setupTestCache(t)
	now := time.Now()

	mustSavePost(t, s, Post{Title: "A", Tags: []string{"golang"}, Publication: Publication{Published: true, PublishAt: now.Add(-time.Hour)}})
	mustSavePost(t, s, Post{Title: "B", Tags: []string{"python"}, Publication: Publication{Published: true, PublishAt: now.Add(-2 * time.Hour)}})

	page, err := cache.PostListing(now, "", "go", 1)
	if err != nil {
		t.Fatalf("PostListing failed: %v", err)
	}
	if len(page.Posts) != 1 || page.Posts[0].Title != "A" {
		t.Errorf("tag filter 'go' should match only the golang post, got %d", len(page.Posts))
	}
}

func TestLivePostsExcludeScheduled(t *testing.T) {
	s, cache := setupTestCache(t)
	now := time.Now()

	mustSavePost(t, s, Post{Title: "Live Now", Publication: Publication{Published: true, PublishAt: now.Add(-time.Hour)}})
	mustSavePost(t, s, Post{Title: "Scheduled", Publication: Publication{Published: true, PublishAt: now.Add(time.Hour)}})

	live, err := cache.LivePosts(now)
	if err != nil {
		t.Fatalf("LivePosts failed: %v", err)
	}
	if len(live) != 1 || live[0].Title != "Live Now" {
		t.Errorf("live posts = %d, want only the past-scheduled one", len(live))
	}

	// The scheduled post goes live once its time passes, without any
	// cache invalidation in between.
	later := now.Add(2 * time.Hour)
	live, err = cache.LivePosts(later)
	if err != nil {
		t.Fatalf("LivePosts failed: %v", err)
	}
	if len(live) != 2 {
		t.Errorf("live posts after schedule = %d, want 2", len(live))
	}
}

func TestLivePostHidesNonLive(t *testing.T) {
	s, cache := setupTestCache(t)
	now := time.Now()

	mustSavePost(t, s, Post{Title: "Future", Slug: "future", Publication: Publication{Published: true, PublishAt: now.Add(time.Hour)}})

	_, ok, err := cache.LivePost("future", now)
	if err != nil {
		t.Fatalf("LivePost failed: %v", err)
	}
	if ok {
		t.Error("a scheduled post must look like a missing one")
	}
	_, ok, err = cache.LivePost("never-existed", now)
	if err != nil {
		t.Fatalf("LivePost failed: %v", err)
	}
	if ok {
		t.Error("missing slug should not resolve")
	}
}

func TestRelatedPosts(t *testing.T) {
	s, cache := setupTestCache(t)
	now := time.Now()

	base := mustSavePost(t, s, Post{Title: "Base", Tags: []string{"go", "web"}, Publication: Publication{Published: true, PublishAt: now.Add(-time.Hour)}})
	for i := 0; i < 5; i++ {
		mustSavePost(t, s, Post{
			Title:       fmt.Sprintf("Sharer %d", i),
			Tags:        []string{"GO"},
			Publication: Publication{Published: true, PublishAt: now.Add(-time.Duration(i+2) * time.Hour)},
		})
	}
	mustSavePost(t, s, Post{Title: "Unrelated", Tags: []string{"rust"}, Publication: Publication{Published: true, PublishAt: now.Add(-time.Hour)}})
	mustSavePost(t, s, Post{Title: "Draft Sharer", Tags: []string{"go"}})

	related, err := cache.RelatedPosts(base, now)
	if err != nil {
		t.Fatalf("RelatedPosts failed: %v", err)
	}
	if len(related) != 3 {
		t.Fatalf("related count = %d, want cap of 3", len(related))
	}
	for _, r := range related {
		if r.ID == base.ID {
			t.Error("related must exclude the post itself")
		}
		if r.Title == "Unrelated" || r.Title == "Draft Sharer" {
			t.Errorf("related includes %q, which should be filtered", r.Title)
		}
	}
}

func TestUpcomingAndPastEvents(t *testing.T) {
	s, cache := setupTestCache(t)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	soon := mustSaveEvent(t, s, Event{Title: "Soon", StartsAt: now.Add(time.Hour), EndsAt: now.Add(2 * time.Hour), Publication: Publication{Published: true, PublishAt: now.Add(-time.Hour)}})
	later := mustSaveEvent(t, s, Event{Title: "Later", StartsAt: now.Add(48 * time.Hour), EndsAt: now.Add(50 * time.Hour), Publication: Publication{Published: true, PublishAt: now.Add(-time.Hour)}})
	recent := mustSaveEvent(t, s, Event{Title: "Recent Past", StartsAt: now.Add(-24 * time.Hour), EndsAt: now.Add(-23 * time.Hour), Publication: Publication{Published: true, PublishAt: now.Add(-48 * time.Hour)}})
	old := mustSaveEvent(t, s, Event{Title: "Old Past", StartsAt: now.Add(-96 * time.Hour), EndsAt: now.Add(-95 * time.Hour), Publication: Publication{Published: true, PublishAt: now.Add(-100 * time.Hour)}})
	mustSaveEvent(t, s, Event{Title: "Underway", StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour), Publication: Publication{Published: true, PublishAt: now.Add(-24 * time.Hour)}})
	mustSaveEvent(t, s, Event{Title: "Unpublished", StartsAt: now.Add(time.Hour), EndsAt: now.Add(2 * time.Hour)})

	upcoming, err := cache.UpcomingEvents(now)
	if err != nil {
		t.Fatalf("UpcomingEvents failed: %v", err)
	}
	if len(upcoming) != 2 || upcoming[0].ID != soon.ID || upcoming[1].ID != later.ID {
		t.Errorf("upcoming = %v, want [Soon Later] soonest first", eventTitles(upcoming))
	}

	past, err := cache.PastEvents(now)
	if err != nil {
		t.Fatalf("PastEvents failed: %v", err)
	}
	if len(past) != 2 || past[0].ID != recent.ID || past[1].ID != old.ID {
		t.Errorf("past = %v, want [Recent Past, Old Past] most recent first", eventTitles(past))
	}
}

func eventTitles(events []Event) []string {
	titles := make([]string, len(events))
	for i, e := range events {
		titles[i] = e.Title
	}
	return titles
}

func TestFeaturedEvent(t *testing.T) {
	s, cache := setupTestCache(t)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// A featured event that already ended should not surface.
	mustSaveEvent(t, s, Event{Title: "Ended", StartsAt: now.Add(-48 * time.Hour), EndsAt: now.Add(-47 * time.Hour), Featured: true, Publication: Publication{Published: true, PublishAt: now.Add(-72 * time.Hour)}})

	if _, ok, err := cache.FeaturedEvent(now); err != nil {
		t.Fatalf("FeaturedEvent failed: %v", err)
	} else if ok {
		t.Error("an ended featured event should not be returned")
	}

	up := mustSaveEvent(t, s, Event{Title: "Upcoming Featured", StartsAt: now.Add(24 * time.Hour), EndsAt: now.Add(26 * time.Hour), Featured: true, Publication: Publication{Published: true, PublishAt: now.Add(-time.Hour)}})
	cache.Invalidate()

	got, ok, err := cache.FeaturedEvent(now)
	if err != nil {
		t.Fatalf("FeaturedEvent failed: %v", err)
	}
	if !ok || got.ID != up.ID {
		t.Errorf("FeaturedEvent = %v ok=%v, want the upcoming featured event", got.Title, ok)
	}
}

func TestEventPresentations(t *testing.T) {
	s, cache := setupTestCache(t)
	now := time.Now()

	ev := mustSaveEvent(t, s, Event{Title: "Host Event", StartsAt: now.Add(time.Hour), EndsAt: now.Add(2 * time.Hour), Publication: Publication{Published: true, PublishAt: now.Add(-time.Hour)}})

	attached := Presentation{Title: "Attached Talk", Speaker: "Kari", EventID: ev.ID, Publication: Publication{Published: true, PublishAt: now.Add(-time.Hour)}}
	if err := s.SavePresentation(&attached); err != nil {
		t.Fatalf("SavePresentation failed: %v", err)
	}
	loose := Presentation{Title: "Loose Talk", Speaker: "Ola", Publication: Publication{Published: true, PublishAt: now.Add(-time.Hour)}}
	if err := s.SavePresentation(&loose); err != nil {
		t.Fatalf("SavePresentation failed: %v", err)
	}

	got, err := cache.EventPresentations(ev.ID, now)
	if err != nil {
		t.Fatalf("EventPresentations failed: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Attached Talk" {
		t.Errorf("EventPresentations = %d items, want only the attached talk", len(got))
	}
}

func TestFeaturedAndRecentSets(t *testing.T) {
	s, cache := setupTestCache(t)
	now := time.Now()

	for i := 0; i < 5; i++ {
		cs := CaseStudy{
			Title:       fmt.Sprintf("Case %d", i),
			Featured:    i < 4,
			Publication: Publication{Published: true, PublishAt: now.Add(-time.Duration(i+1) * time.Hour)},
		}
		if err := s.SaveCaseStudy(&cs); err != nil {
			t.Fatalf("SaveCaseStudy failed: %v", err)
		}
	}

	featured, err := cache.FeaturedCaseStudies(now, 3)
	if err != nil {
		t.Fatalf("FeaturedCaseStudies failed: %v", err)
	}
	if len(featured) != 3 {
		t.Errorf("featured cap = %d, want 3", len(featured))
	}
	for _, cs := range featured {
		if !cs.Featured {
			t.Errorf("%q is not flagged featured", cs.Title)
		}
	}

	recent, err := cache.RecentCaseStudies(now, 6)
	if err != nil {
		t.Fatalf("RecentCaseStudies failed: %v", err)
	}
	if len(recent) != 5 {
		t.Errorf("recent = %d, want all 5", len(recent))
	}
}

func TestLatestPosts(t *testing.T) {
	s, cache := setupTestCache(t)
	now := time.Now()

	for i := 0; i < 5; i++ {
		mustSavePost(t, s, Post{
			Title:       fmt.Sprintf("Post %d", i),
			Publication: Publication{Published: true, PublishAt: now.Add(-time.Duration(i+1) * time.Hour)},
		})
	}

	latest, err := cache.LatestPosts(now, 3)
	if err != nil {
		t.Fatalf("LatestPosts failed: %v", err)
	}
	if len(latest) != 3 || latest[0].Title != "Post 0" {
		t.Errorf("LatestPosts = %d starting with %q, want 3 newest first", len(latest), latest[0].Title)
	}
}
