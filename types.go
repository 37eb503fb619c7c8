package site

import "time"

// Timestamps carries the system-assigned audit fields shared by every record.
// The store stamps them on save.
type Timestamps struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SEOFields holds optional per-page metadata overrides shared by the
// publishable content types.
type SEOFields struct {
	SEOTitle       string // max 60 chars, falls back to the entity title
	SEODescription string // max 160 chars, falls back to the entity summary
}

// Publication is the visibility gate shared by every content type.
// A zero PublishAt means "unscheduled"; the store fills it in when an entity
// is first saved with Published set.
type Publication struct {
	Published bool
	PublishAt time.Time
}

// LiveAt reports whether the content is publicly visible at the given time:
// it must be published, and any scheduled publish time must have passed.
func (p Publication) LiveAt(now time.Time) bool {
	if !p.Published {
		return false
	}
	if !p.PublishAt.IsZero() && p.PublishAt.After(now) {
		return false
	}
	return true
}

// Post is a blog post.
type Post struct {
	ID          int64
	Title       string
	Slug        string
	Author      string
	Summary     string
	Body        string // rich-text HTML
	Tags        []string
	Featured    bool
	ReadingTime int // estimated minutes

	SEOFields
	Publication
	Timestamps
}

// Event is a scheduled happening, physical or streamed. At most one event
// carries Featured at a time; SaveEvent enforces that.
type Event struct {
	ID               int64
	Title            string
	Slug             string
	StartsAt         time.Time
	EndsAt           time.Time
	Timezone         string // IANA name, e.g. "Europe/Oslo"
	Location         string
	StreamingURL     string
	ShortDescription string
	Description      string // rich-text HTML
	Featured         bool
	RSVPURL          string
	Capacity         int // 0 = unlimited/unknown
	Tags             []string

	SEOFields
	Publication
	Timestamps
}

// Upcoming reports whether the event has not yet started.
func (e Event) Upcoming(now time.Time) bool {
	return !e.StartsAt.Before(now)
}

// Past reports whether the event has already ended.
func (e Event) Past(now time.Time) bool {
	return e.EndsAt.Before(now)
}

// LocalStart returns the start time in the event's own timezone.
// Falls back to UTC when the zone name does not resolve.
func (e Event) LocalStart() time.Time {
	loc, err := time.LoadLocation(e.Timezone)
	if err != nil {
		return e.StartsAt.UTC()
	}
	return e.StartsAt.In(loc)
}

// LocalEnd returns the end time in the event's own timezone.
func (e Event) LocalEnd() time.Time {
	loc, err := time.LoadLocation(e.Timezone)
	if err != nil {
		return e.EndsAt.UTC()
	}
	return e.EndsAt.In(loc)
}

// CaseStudy is a client success story with optional outcome metrics.
type CaseStudy struct {
	ID       int64
	Title    string
	Slug     string
	Client   string
	Industry string
	Summary  string
	Body     string // rich-text HTML
	Tags     []string
	Featured bool

	ROIPercent  int
	CostSavings string // free-form amount, e.g. "120000.00"
	TimeSavings string // e.g. "50% reduction in processing time"

	SEOFields
	Publication
	Timestamps
}

// Presentation is a talk, optionally attached to an Event.
type Presentation struct {
	ID               int64
	Title            string
	Slug             string
	Speaker          string
	SpeakerTitle     string
	SpeakerBio       string
	Summary          string
	Body             string // rich-text HTML
	SlidesURL        string
	VideoURL         string
	Tags             []string
	Featured         bool
	EventID          int64 // 0 = no linked event
	PresentationDate time.Time

	SEOFields
	Publication
	Timestamps
}

// ContactSubmission is a persisted contact-form message.
type ContactSubmission struct {
	ID        int64
	Name      string
	Email     string
	Subject   string
	Message   string
	IPAddress string
	UserAgent string // truncated to 500 chars before persisting
	Read      bool
	Timestamps
}

// NewsletterSubscription is a single newsletter signup, unique per email.
type NewsletterSubscription struct {
	ID          int64
	Email       string
	Active      bool
	Token       string // confirmation token handed to the mail provider
	ConfirmedAt time.Time
	IPAddress   string
	Timestamps
}

// MetaTitle returns the SEO title override or the post title.
func (p Post) MetaTitle() string {
	if p.SEOTitle != "" {
		return p.SEOTitle
	}
	return p.Title
}

// MetaDescription returns the SEO description override or the summary.
func (p Post) MetaDescription() string {
	if p.SEODescription != "" {
		return p.SEODescription
	}
	return p.Summary
}

// MetaTitle returns the SEO title override or the event title.
func (e Event) MetaTitle() string {
	if e.SEOTitle != "" {
		return e.SEOTitle
	}
	return e.Title
}

// MetaDescription returns the SEO description override or the short description.
func (e Event) MetaDescription() string {
	if e.SEODescription != "" {
		return e.SEODescription
	}
	return e.ShortDescription
}

// MetaTitle returns the SEO title override or the case-study title.
func (cs CaseStudy) MetaTitle() string {
	if cs.SEOTitle != "" {
		return cs.SEOTitle
	}
	return cs.Title
}

// MetaDescription returns the SEO description override or the summary.
func (cs CaseStudy) MetaDescription() string {
	if cs.SEODescription != "" {
		return cs.SEODescription
	}
	return cs.Summary
}

// MetaTitle returns the SEO title override or "title by speaker".
func (pr Presentation) MetaTitle() string {
	if pr.SEOTitle != "" {
		return pr.SEOTitle
	}
	return pr.Title + " by " + pr.Speaker
}

// MetaDescription returns the SEO description override or the summary.
func (pr Presentation) MetaDescription() string {
	if pr.SEODescription != "" {
		return pr.SEODescription
	}
	return pr.Summary
}

// Link returns the public URL path for the post.
func (p Post) Link() string { return "/blog/" + p.Slug + "/" }

// Link returns the public URL path for the event.
func (e Event) Link() string { return "/events/" + e.Slug + "/" }

// Link returns the public URL path for the case study.
func (cs CaseStudy) Link() string { return "/cases/" + cs.Slug + "/" }

// Link returns the public URL path for the presentation.
func (pr Presentation) Link() string { return "/presentations/" + pr.Slug + "/" }
