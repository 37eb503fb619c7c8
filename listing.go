package site

import (
	"sort"
	"strings"
	"time"
)

// blogPageSize is the number of posts per blog listing page.
const blogPageSize = 9

// relatedLimit caps every "related content" set.
const relatedLimit = 3

// PostPage is one page of the blog listing.
type PostPage struct {
	Posts      []Post
	Number     int // 1-based, clamped into range
	TotalPages int
	TotalCount int
}

// HasPrev reports whether an earlier page exists.
func (p PostPage) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a later page exists.
func (p PostPage) HasNext() bool { return p.Number < p.TotalPages }

// LivePosts returns the posts visible to the public at now, in listing order.
func (c *ContentCache) LivePosts(now time.Time) ([]Post, error) {
	posts, err := c.Posts()
	if err != nil {
		return nil, err
	}
	var live []Post
	for _, p := range posts {
		if p.LiveAt(now) {
			live = append(live, p)
		}
	}
	return live, nil
}

// matchesSearch reports a case-insensitive substring hit in title, summary
// or body.
func matchesSearch(search string, fields ...string) bool {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// PostListing returns one page of live posts filtered by an optional search
// term (title/summary/body) and an optional tag substring. Out-of-range or
// unparsable page numbers clamp into range rather than erroring.
func (c *ContentCache) PostListing(now time.Time, search, tag string, page int) (PostPage, error) {
	live, err := c.LivePosts(now)
	if err != nil {
		return PostPage{}, err
	}
	var filtered []Post
	for _, p := range live {
		if !matchesSearch(search, p.Title, p.Summary, p.Body) {
			continue
		}
		if tag != "" && !hasTagMatch(p.Tags, tag) {
			continue
		}
		filtered = append(filtered, p)
	}

	total := len(filtered)
	totalPages := (total + blogPageSize - 1) / blogPageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * blogPageSize
	end := start + blogPageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return PostPage{
		Posts:      filtered[start:end],
		Number:     page,
		TotalPages: totalPages,
		TotalCount: total,
	}, nil
}

// LivePost returns the live post with the given slug. A post that exists but
// is not live is indistinguishable from a missing one.
func (c *ContentCache) LivePost(slug string, now time.Time) (Post, bool, error) {
	live, err := c.LivePosts(now)
	if err != nil {
		return Post{}, false, err
	}
	for _, p := range live {
		if p.Slug == slug {
			return p, true, nil
		}
	}
	return Post{}, false, nil
}

// RelatedPosts returns up to three other live posts sharing at least one tag
// with post, in listing order.
func (c *ContentCache) RelatedPosts(post Post, now time.Time) ([]Post, error) {
	live, err := c.LivePosts(now)
	if err != nil {
		return nil, err
	}
	var related []Post
	for _, p := range live {
		if p.ID == post.ID {
			continue
		}
		if sharesTag(post.Tags, p.Tags) {
			related = append(related, p)
			if len(related) == relatedLimit {
				break
			}
		}
	}
	return related, nil
}

// LatestPosts returns the n most recent live posts.
func (c *ContentCache) LatestPosts(now time.Time, n int) ([]Post, error) {
	live, err := c.LivePosts(now)
	if err != nil {
		return nil, err
	}
	if len(live) > n {
		live = live[:n]
	}
	return live, nil
}

// --- events ---

// LiveEvents returns published-and-live events by start time ascending.
func (c *ContentCache) LiveEvents(now time.Time) ([]Event, error) {
	events, err := c.Events()
	if err != nil {
		return nil, err
	}
	var live []Event
	for _, e := range events {
		if e.LiveAt(now) {
			live = append(live, e)
		}
	}
	return live, nil
}

// UpcomingEvents returns live events that have not started yet, soonest
// first. An event that is underway (started, not ended) appears in neither
// the upcoming nor the past list; that boundary is intentional.
func (c *ContentCache) UpcomingEvents(now time.Time) ([]Event, error) {
	live, err := c.LiveEvents(now)
	if err != nil {
		return nil, err
	}
	var upcoming []Event
	for _, e := range live {
		if e.Upcoming(now) {
			upcoming = append(upcoming, e)
		}
	}
	return upcoming, nil
}

// PastEvents returns live events that have ended, most recent first.
func (c *ContentCache) PastEvents(now time.Time) ([]Event, error) {
	live, err := c.LiveEvents(now)
	if err != nil {
		return nil, err
	}
	var past []Event
	for _, e := range live {
		if e.Past(now) {
			past = append(past, e)
		}
	}
	sort.SliceStable(past, func(i, j int) bool {
		return past[i].StartsAt.After(past[j].StartsAt)
	})
	return past, nil
}

// FeaturedEvent returns the first live featured event that has not started
// yet, if any.
func (c *ContentCache) FeaturedEvent(now time.Time) (Event, bool, error) {
	live, err := c.LiveEvents(now)
	if err != nil {
		return Event{}, false, err
	}
	for _, e := range live {
		if e.Featured && e.Upcoming(now) {
			return e, true, nil
		}
	}
	return Event{}, false, nil
}

// LiveEvent returns the live event with the given slug.
func (c *ContentCache) LiveEvent(slug string, now time.Time) (Event, bool, error) {
	live, err := c.LiveEvents(now)
	if err != nil {
		return Event{}, false, err
	}
	for _, e := range live {
		if e.Slug == slug {
			return e, true, nil
		}
	}
	return Event{}, false, nil
}

// EventPresentations returns the live presentations attached to an event.
func (c *ContentCache) EventPresentations(eventID int64, now time.Time) ([]Presentation, error) {
	live, err := c.LivePresentations(now)
	if err != nil {
		return nil, err
	}
	var out []Presentation
	for _, pr := range live {
		if pr.EventID == eventID {
			out = append(out, pr)
		}
	}
	return out, nil
}

// --- case studies ---

// LiveCaseStudies returns live case studies in listing order.
func (c *ContentCache) LiveCaseStudies(now time.Time) ([]CaseStudy, error) {
	cases, err := c.CaseStudies()
	if err != nil {
		return nil, err
	}
	var live []CaseStudy
	for _, cs := range cases {
		if cs.LiveAt(now) {
			live = append(live, cs)
		}
	}
	return live, nil
}

// LiveCaseStudy returns the live case study with the given slug.
func (c *ContentCache) LiveCaseStudy(slug string, now time.Time) (CaseStudy, bool, error) {
	live, err := c.LiveCaseStudies(now)
	if err != nil {
		return CaseStudy{}, false, err
	}
	for _, cs := range live {
		if cs.Slug == slug {
			return cs, true, nil
		}
	}
	return CaseStudy{}, false, nil
}

// RelatedCaseStudies returns up to three other live case studies sharing a tag.
func (c *ContentCache) RelatedCaseStudies(cs CaseStudy, now time.Time) ([]CaseStudy, error) {
	live, err := c.LiveCaseStudies(now)
	if err != nil {
		return nil, err
	}
	var related []CaseStudy
	for _, other := range live {
		if other.ID == cs.ID {
			continue
		}
		if sharesTag(cs.Tags, other.Tags) {
			related = append(related, other)
			if len(related) == relatedLimit {
				break
			}
		}
	}
	return related, nil
}

// FeaturedCaseStudies returns up to n live case studies flagged for the home page.
func (c *ContentCache) FeaturedCaseStudies(now time.Time, n int) ([]CaseStudy, error) {
	live, err := c.LiveCaseStudies(now)
	if err != nil {
		return nil, err
	}
	var out []CaseStudy
	for _, cs := range live {
		if cs.Featured {
			out = append(out, cs)
			if len(out) == n {
				break
			}
		}
	}
	return out, nil
}

// RecentCaseStudies returns the first n live case studies in listing order.
func (c *ContentCache) RecentCaseStudies(now time.Time, n int) ([]CaseStudy, error) {
	live, err := c.LiveCaseStudies(now)
	if err != nil {
		return nil, err
	}
	if len(live) > n {
		live = live[:n]
	}
	return live, nil
}

// --- presentations ---

// LivePresentations returns live presentations in listing order.
func (c *ContentCache) LivePresentations(now time.Time) ([]Presentation, error) {
	prs, err := c.Presentations()
	if err != nil {
		return nil, err
	}
	var live []Presentation
	for _, pr := range prs {
		if pr.LiveAt(now) {
			live = append(live, pr)
		}
	}
	return live, nil
}

// LivePresentation returns the live presentation with the given slug.
func (c *ContentCache) LivePresentation(slug string, now time.Time) (Presentation, bool, error) {
	live, err := c.LivePresentations(now)
	if err != nil {
		return Presentation{}, false, err
	}
	for _, pr := range live {
		if pr.Slug == slug {
			return pr, true, nil
		}
	}
	return Presentation{}, false, nil
}

// RelatedPresentations returns up to three other live presentations sharing a tag.
func (c *ContentCache) RelatedPresentations(pr Presentation, now time.Time) ([]Presentation, error) {
	live, err := c.LivePresentations(now)
	if err != nil {
		return nil, err
	}
	var related []Presentation
	for _, other := range live {
		if other.ID == pr.ID {
			continue
		}
		if sharesTag(pr.Tags, other.Tags) {
			related = append(related, other)
			if len(related) == relatedLimit {
				break
			}
		}
	}
	return related, nil
}

// FeaturedPresentations returns up to n live presentations flagged for the home page.
func (c *ContentCache) FeaturedPresentations(now time.Time, n int) ([]Presentation, error) {
	live, err := c.LivePresentations(now)
	if err != nil {
		return nil, err
	}
	var out []Presentation
	for _, pr := range live {
		if pr.Featured {
			out = append(out, pr)
			if len(out) == n {
				break
			}
		}
	}
	return out, nil
}

// RecentPresentations returns the first n live presentations in listing order.
func (c *ContentCache) RecentPresentations(now time.Time, n int) ([]Presentation, error) {
	live, err := c.LivePresentations(now)
	if err != nil {
		return nil, err
	}
	if len(live) > n {
		live = live[:n]
	}
	return live, nil
}
