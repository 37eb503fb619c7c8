// Package views holds hand-written templ components for every public page.
// Components write escaped HTML into a buffer; rich-text bodies arrive
// pre-sanitized from the editor and render as-is.
package views

import (
	"bytes"
	"fmt"

	"github.com/a-h/templ"
)

// Home renders the landing page: featured event, latest posts, featured
// presentations and case studies.
func Home(p Page, featured *EventCard, latest, presentations, cases []Card) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		fmt.Fprintf(buf, "<h1>%s</h1>", esc(p.Site.Name))
		if p.Site.Description != "" {
			fmt.Fprintf(buf, "<p class=\"tagline\">%s</p>", esc(p.Site.Description))
		}
		if featured != nil {
			buf.WriteString("<section class=\"featured-event\"><h2>Next event</h2>")
			writeEventCard(buf, *featured)
			buf.WriteString("</section>")
		}
		writeSection(buf, "Latest from the blog", latest)
		writeSection(buf, "Presentations", presentations)
		writeSection(buf, "Case studies", cases)
	})
}

// BlogList renders the paginated blog listing with search and tag filters.
func BlogList(p Page, posts []Card, search, tag string, pg Pagination, tags []string) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString("<h1>Blog</h1>")
		buf.WriteString("<form method=\"get\" action=\"/blog/\" class=\"filters\">")
		fmt.Fprintf(buf, "<input type=\"search\" name=\"search\" value=\"%s\" placeholder=\"Search posts\">", esc(search))
		fmt.Fprintf(buf, "<input type=\"hidden\" name=\"tag\" value=\"%s\">", esc(tag))
		buf.WriteString("<button type=\"submit\">Search</button></form>")
		writeTagLinks(buf, tags)
		if len(posts) == 0 {
			buf.WriteString("<p>No posts found.</p>")
		}
		for _, c := range posts {
			writeCard(buf, c)
		}
		buf.WriteString("<nav class=\"pagination\">")
		if pg.HasPrev {
			fmt.Fprintf(buf, "<a href=\"/blog/?page=%d\">Previous</a>", pg.Number-1)
		}
		fmt.Fprintf(buf, "<span>Page %d of %d</span>", pg.Number, pg.TotalPages)
		if pg.HasNext {
			fmt.Fprintf(buf, "<a href=\"/blog/?page=%d\">Next</a>", pg.Number+1)
		}
		buf.WriteString("</nav>")
	})
}

// BlogDetail renders a single post with its related posts.
func BlogDetail(p Page, post Card, related []Card) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString("<article class=\"post\">")
		fmt.Fprintf(buf, "<h1>%s</h1>", esc(post.Title))
		if post.Label != "" {
			fmt.Fprintf(buf, "<p class=\"label\">%s</p>", esc(post.Label))
		}
		buf.WriteString("<div class=\"body\">")
		buf.WriteString(post.BodyHTML)
		buf.WriteString("</div>")
		writeTagLinks(buf, post.Tags)
		buf.WriteString("</article>")
		writeRelated(buf, "Related posts", related)
	})
}

// EventsList renders upcoming and past events.
func EventsList(p Page, upcoming, past []EventCard) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString("<h1>Events</h1><section><h2>Upcoming</h2>")
		if len(upcoming) == 0 {
			buf.WriteString("<p>No upcoming events.</p>")
		}
		for _, e := range upcoming {
			writeEventCard(buf, e)
		}
		buf.WriteString("</section><section><h2>Past events</h2>")
		for _, e := range past {
			writeEventCard(buf, e)
		}
		buf.WriteString("</section>")
	})
}

// EventDetail renders one event and the presentations given there.
func EventDetail(p Page, event EventCard, presentations []Card) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString("<article class=\"event-detail\">")
		fmt.Fprintf(buf, "<h1>%s</h1>", esc(event.Title))
		fmt.Fprintf(buf, "<p class=\"when\">%s &ndash; %s</p>", esc(event.Starts), esc(event.Ends))
		if event.Location != "" {
			fmt.Fprintf(buf, "<p class=\"where\">%s</p>", esc(event.Location))
		}
		if event.Capacity > 0 {
			fmt.Fprintf(buf, "<p class=\"capacity\">Capacity: %d</p>", event.Capacity)
		}
		buf.WriteString("<div class=\"body\">")
		buf.WriteString(event.BodyHTML)
		buf.WriteString("</div>")
		if event.RSVPURL != "" {
			fmt.Fprintf(buf, "<a class=\"rsvp\" href=\"%s\">RSVP</a>", esc(event.RSVPURL))
		}
		writeTagLinks(buf, event.Tags)
		buf.WriteString("</article>")
		writeRelated(buf, "Presentations", presentations)
	})
}

// CaseDetail renders a case study with its related case studies.
func CaseDetail(p Page, cs Card, related []Card) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString("<article class=\"case-study\">")
		fmt.Fprintf(buf, "<h1>%s</h1>", esc(cs.Title))
		if cs.Label != "" {
			fmt.Fprintf(buf, "<p class=\"label\">%s</p>", esc(cs.Label))
		}
		buf.WriteString("<div class=\"body\">")
		buf.WriteString(cs.BodyHTML)
		buf.WriteString("</div>")
		writeTagLinks(buf, cs.Tags)
		buf.WriteString("</article>")
		writeRelated(buf, "Related case studies", related)
	})
}

// PresentationDetail renders a presentation with related talks.
func PresentationDetail(p Page, pr Card, related []Card) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString("<article class=\"presentation\">")
		fmt.Fprintf(buf, "<h1>%s</h1>", esc(pr.Title))
		if pr.Label != "" {
			fmt.Fprintf(buf, "<p class=\"label\">%s</p>", esc(pr.Label))
		}
		buf.WriteString("<div class=\"body\">")
		buf.WriteString(pr.BodyHTML)
		buf.WriteString("</div>")
		writeTagLinks(buf, pr.Tags)
		buf.WriteString("</article>")
		writeRelated(buf, "Related presentations", related)
	})
}

// About renders the about page with recent presentations and case studies.
func About(p Page, presentations, cases []Card) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString("<h1>About</h1>")
		if p.Site.Description != "" {
			fmt.Fprintf(buf, "<p>%s</p>", esc(p.Site.Description))
		}
		writeSection(buf, "Presentations", presentations)
		writeSection(buf, "Case studies", cases)
	})
}

// Contact renders the contact form, optionally with submitted values and
// per-field validation errors.
func Contact(p Page, form ContactForm) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString("<h1>Contact</h1>")
		if p.Site.ContactMail != "" {
			fmt.Fprintf(buf, "<p>Or email us at <a href=\"mailto:%s\">%s</a>.</p>",
				esc(p.Site.ContactMail), esc(p.Site.ContactMail))
		}
		if len(form.Errors) > 0 {
			buf.WriteString("<p class=\"form-error\">Please correct the errors below.</p>")
		}
		buf.WriteString("<form method=\"post\" action=\"/contact/\">")
		fmt.Fprintf(buf, "<input type=\"hidden\" name=\"_csrf\" value=\"%s\">", esc(p.CSRF))
		writeInput(buf, form, "name", "Name", "text", true)
		writeInput(buf, form, "email", "Email", "email", true)
		writeInput(buf, form, "subject", "Subject (optional)", "text", false)
		buf.WriteString("<label for=\"contact-message\">Message</label>")
		fmt.Fprintf(buf, "<textarea id=\"contact-message\" name=\"message\" rows=\"5\" required>%s</textarea>", esc(form.Message))
		writeFieldError(buf, form, "message")
		// Honeypot: hidden from humans, tempting for bots.
		buf.WriteString("<div class=\"hp\" aria-hidden=\"true\" style=\"display:none\">")
		buf.WriteString("<label for=\"contact-website\">Website</label>")
		buf.WriteString("<input id=\"contact-website\" type=\"text\" name=\"website\" tabindex=\"-1\" autocomplete=\"off\">")
		buf.WriteString("</div>")
		buf.WriteString("<button type=\"submit\">Send</button></form>")
	})
}

// NotFound renders the styled 404 page.
func NotFound(p Page) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString("<h1>Page not found</h1>")
		buf.WriteString("<p>The page you are looking for does not exist or is no longer available.</p>")
		buf.WriteString("<p><a href=\"/\">Back to the front page</a></p>")
	})
}

// ServerError renders the styled 500 page.
func ServerError(p Page) templ.Component {
	return page(p, func(buf *bytes.Buffer) {
		buf.WriteString("<h1>Something went wrong</h1>")
		buf.WriteString("<p>We have been notified. Please try again shortly.</p>")
	})
}
