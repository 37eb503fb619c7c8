package views

// Site holds site-wide settings rendered into every layout.
type Site struct {
	Name        string
	URL         string
	Description string
	Author      string
	ContactMail string
}

// Meta carries per-page OpenGraph and SEO metadata into the <head>.
type Meta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	JSONLD      string // optional schema.org payload
}

// Page bundles what every template needs besides its own content.
type Page struct {
	Site    Site
	Meta    Meta
	Flashes []string
	CSRF    string
}

// Card is the minimal view model for a content teaser in any listing.
type Card struct {
	Title    string
	Summary  string
	Link     string
	Label    string // date line, speaker line, client line
	Tags     []string
	BodyHTML string // detail pages only; trusted rich-text from the store
}

// EventCard is the view model for an event teaser or header.
type EventCard struct {
	Title    string
	Link     string
	Starts   string
	Ends     string
	Location string
	RSVPURL  string
	Summary  string
	BodyHTML string
	Capacity int
	Tags     []string
}

// ContactForm carries submitted values and per-field errors back into the
// form template.
type ContactForm struct {
	Name    string
	Email   string
	Subject string
	Message string
	Errors  map[string]string
}

// Pagination mirrors the blog listing page state.
type Pagination struct {
	Number     int
	TotalPages int
	HasPrev    bool
	HasNext    bool
}
