package site

import (
	"testing"
	"time"
)

func TestLiveAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name      string
		published bool
		publishAt time.Time
		want      bool
	}{
		{"unpublished", false, time.Time{}, false},
		{"unpublished with past publish time", false, now.Add(-time.Hour), false},
		{"published unscheduled", true, time.Time{}, true},
		{"published in the past", true, now.Add(-time.Hour), true},
		{"published exactly now", true, now, true},
		{"scheduled for the future", true, now.Add(time.Hour), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Publication{Published: tt.published, PublishAt: tt.publishAt}
			if got := p.LiveAt(now); got != tt.want {
				t.Errorf("LiveAt = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventUpcomingPast(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	future := Event{StartsAt: now.Add(time.Hour), EndsAt: now.Add(2 * time.Hour)}
	if !future.Upcoming(now) || future.Past(now) {
		t.Error("future event should be upcoming, not past")
	}

	ended := Event{StartsAt: now.Add(-2 * time.Hour), EndsAt: now.Add(-time.Hour)}
	if ended.Upcoming(now) || !ended.Past(now) {
		t.Error("ended event should be past, not upcoming")
	}

	// An event that is underway is in neither bucket.
	underway := Event{StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour)}
	if underway.Upcoming(now) || underway.Past(now) {
		t.Error("underway event should be neither upcoming nor past")
	}

	// Boundary: starting exactly now still counts as upcoming.
	starting := Event{StartsAt: now, EndsAt: now.Add(time.Hour)}
	if !starting.Upcoming(now) {
		t.Error("event starting exactly now should be upcoming")
	}

	// Boundary: ending exactly now is not yet past.
	ending := Event{StartsAt: now.Add(-time.Hour), EndsAt: now}
	if ending.Past(now) {
		t.Error("event ending exactly now should not be past yet")
	}
}

func TestMetaFallbacks(t *testing.T) {
	p := Post{Title: "Plain Title", Summary: "Plain summary"}
	if p.MetaTitle() != "Plain Title" {
		t.Errorf("MetaTitle = %q", p.MetaTitle())
	}
	if p.MetaDescription() != "Plain summary" {
		t.Errorf("MetaDescription = %q", p.MetaDescription())
	}

	p.SEOTitle = "SEO Title"
	p.SEODescription = "SEO description"
	if p.MetaTitle() != "SEO Title" {
		t.Errorf("MetaTitle = %q, want override", p.MetaTitle())
	}
	if p.MetaDescription() != "SEO description" {
		t.Errorf("MetaDescription = %q, want override", p.MetaDescription())
	}

	pr := Presentation{Title: "Talk", Speaker: "Kari"}
	if pr.MetaTitle() != "Talk by Kari" {
		t.Errorf("presentation MetaTitle = %q, want %q", pr.MetaTitle(), "Talk by Kari")
	}

	e := Event{Title: "Meetup", ShortDescription: "Short"}
	if e.MetaTitle() != "Meetup" || e.MetaDescription() != "Short" {
		t.Errorf("event meta = %q / %q", e.MetaTitle(), e.MetaDescription())
	}
}

func TestLinks(t *testing.T) {
	if got := (Post{Slug: "a"}).Link(); got != "/blog/a/" {
		t.Errorf("post link = %q", got)
	}
	if got := (Event{Slug: "b"}).Link(); got != "/events/b/" {
		t.Errorf("event link = %q", got)
	}
	if got := (CaseStudy{Slug: "c"}).Link(); got != "/cases/c/" {
		t.Errorf("case link = %q", got)
	}
	if got := (Presentation{Slug: "d"}).Link(); got != "/presentations/d/" {
		t.Errorf("presentation link = %q", got)
	}
}

func TestEventLocalTimes(t *testing.T) {
	start := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	e := Event{StartsAt: start, EndsAt: start.Add(time.Hour), Timezone: "Europe/Oslo"}
	if got := e.LocalStart().Hour(); got != 12 {
		t.Errorf("LocalStart hour = %d, want 12 (CEST)", got)
	}

	// Unknown zone names fall back to UTC instead of erroring.
	e.Timezone = "Not/AZone"
	if got := e.LocalStart(); !got.Equal(start) || got.Location() != time.UTC {
		t.Errorf("LocalStart with bad zone = %v, want UTC passthrough", got)
	}
}
