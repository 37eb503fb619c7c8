package site

import (
	"strings"
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Test Blog Post", "test-blog-post"},
		{"Hello, World!", "hello-world"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Multiple   spaces", "multiple-spaces"},
		{"already-slugged", "already-slugged"},
		{"123 Go", "123-go"},
		{"Trailing punctuation...", "trailing-punctuation"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	if Slugify("Same Input") != Slugify("Same Input") {
		t.Error("Slugify should be deterministic")
	}
	if Slugify(Slugify("Round Trip")) != Slugify("Round Trip") {
		t.Error("Slugify should be idempotent")
	}
}

func TestBuildURL(t *testing.T) {
	if got := BuildURL("http://example.com", "blog", "my-post"); got != "http://example.com/blog/my-post/" {
		t.Errorf("BuildURL = %q", got)
	}
	if got := BuildURL("http://example.com"); got != "http://example.com" {
		t.Errorf("BuildURL without segments = %q", got)
	}
}

func TestFilterEmpty(t *testing.T) {
	got := FilterEmpty([]string{"a", "", "  ", "b"})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("FilterEmpty = %v", got)
	}
}

func TestHasTagMatch(t *testing.T) {
	tags := []string{"Golang", "Web Development"}
	tests := []struct {
		filter string
		want   bool
	}{
		{"go", true},      // substring of "golang"
		{"GOLANG", true},  // case-insensitive
		{"develop", true}, // substring of "web development"
		{"python", false},
		{"", true}, // empty filter matches everything
	}
	for _, tt := range tests {
		if got := hasTagMatch(tags, tt.filter); got != tt.want {
			t.Errorf("hasTagMatch(%q) = %v, want %v", tt.filter, got, tt.want)
		}
	}
}

func TestSharesTag(t *testing.T) {
	if !sharesTag([]string{"Go", "web"}, []string{"GO"}) {
		t.Error("matching should ignore case")
	}
	if sharesTag([]string{"go"}, []string{"rust"}) {
		t.Error("disjoint sets should not match")
	}
	if sharesTag([]string{""}, []string{""}) {
		t.Error("empty tags should never match each other")
	}
}

func TestBlogPostingJsonLD(t *testing.T) {
	cfg := SiteConfig{Name: "Test Site", URL: "http://example.com"}
	post := Post{
		Title:       "My Post",
		Slug:        "my-post",
		Summary:     "Summary",
		Author:      "Kari",
		Tags:        []string{"go"},
		Publication: Publication{Published: true, PublishAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)},
	}
	got := BlogPostingJsonLD(post, cfg)
	for _, want := range []string{`"BlogPosting"`, `"My Post"`, `"2025-01-02"`, "http://example.com/blog/my-post/"} {
		if !strings.Contains(got, want) {
			t.Errorf("JSON-LD missing %s: %s", want, got)
		}
	}
}

func TestEventJsonLD(t *testing.T) {
	cfg := SiteConfig{Name: "Test Site", URL: "http://example.com"}
	ev := Event{
		Title:    "Oslo Meetup",
		Slug:     "oslo-meetup",
		Location: "Oslo",
		StartsAt: time.Date(2025, 5, 1, 18, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2025, 5, 1, 20, 0, 0, 0, time.UTC),
	}
	got := EventJsonLD(ev, cfg)
	for _, want := range []string{`"Event"`, `"Oslo Meetup"`, `"Place"`, "http://example.com/events/oslo-meetup/"} {
		if !strings.Contains(got, want) {
			t.Errorf("JSON-LD missing %s: %s", want, got)
		}
	}
}
