package views

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"net/url"

	"github.com/a-h/templ"
)

// component wraps a buffer-writing render function as a templ.Component.
func component(render func(buf *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		render(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func esc(s string) string { return html.EscapeString(s) }

// page renders the shared document shell around a body renderer.
func page(p Page, body func(buf *bytes.Buffer)) templ.Component {
	return component(func(buf *bytes.Buffer) {
		buf.WriteString("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\">")
		buf.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
		title := p.Meta.Title
		if title == "" {
			title = p.Site.Name
		}
		fmt.Fprintf(buf, "<title>%s</title>", esc(title))
		if p.Meta.Description != "" {
			fmt.Fprintf(buf, "<meta name=\"description\" content=\"%s\">", esc(p.Meta.Description))
		}
		if p.Meta.URL != "" {
			fmt.Fprintf(buf, "<link rel=\"canonical\" href=\"%s\">", esc(p.Meta.URL))
			fmt.Fprintf(buf, "<meta property=\"og:url\" content=\"%s\">", esc(p.Meta.URL))
		}
		ogType := p.Meta.OGType
		if ogType == "" {
			ogType = "website"
		}
		fmt.Fprintf(buf, "<meta property=\"og:type\" content=\"%s\">", esc(ogType))
		fmt.Fprintf(buf, "<meta property=\"og:title\" content=\"%s\">", esc(title))
		fmt.Fprintf(buf, "<link rel=\"alternate\" type=\"application/rss+xml\" title=\"%s\" href=\"/blog/rss.xml\">", esc(p.Site.Name))
		if p.Meta.JSONLD != "" {
			buf.WriteString("<script type=\"application/ld+json\">")
			buf.WriteString(p.Meta.JSONLD)
			buf.WriteString("</script>")
		}
		buf.WriteString("<link rel=\"stylesheet\" href=\"/public/style.css\"></head><body>")
		writeHeader(buf, p.Site)
		for _, f := range p.Flashes {
			fmt.Fprintf(buf, "<div class=\"flash\" role=\"status\">%s</div>", esc(f))
		}
		buf.WriteString("<main>")
		body(buf)
		buf.WriteString("</main>")
		writeFooter(buf, p.Site)
		buf.WriteString("</body></html>")
	})
}

func writeHeader(buf *bytes.Buffer, s Site) {
	buf.WriteString("<header><nav>")
	fmt.Fprintf(buf, "<a class=\"brand\" href=\"/\">%s</a>", esc(s.Name))
	buf.WriteString("<a href=\"/blog/\">Blog</a>")
	buf.WriteString("<a href=\"/events/\">Events</a>")
	buf.WriteString("<a href=\"/about/\">About</a>")
	buf.WriteString("<a href=\"/contact/\">Contact</a>")
	buf.WriteString("</nav></header>")
}

func writeFooter(buf *bytes.Buffer, s Site) {
	buf.WriteString("<footer>")
	if s.Description != "" {
		fmt.Fprintf(buf, "<p>%s</p>", esc(s.Description))
	}
	buf.WriteString("<form class=\"newsletter\" data-endpoint=\"/newsletter/signup/\">")
	buf.WriteString("<label for=\"newsletter-email\">Newsletter</label>")
	buf.WriteString("<input id=\"newsletter-email\" type=\"email\" name=\"email\" placeholder=\"you@example.com\">")
	buf.WriteString("<button type=\"submit\">Subscribe</button>")
	buf.WriteString("</form></footer>")
}

func writeCard(buf *bytes.Buffer, c Card) {
	buf.WriteString("<article class=\"card\">")
	fmt.Fprintf(buf, "<h3><a href=\"%s\">%s</a></h3>", esc(c.Link), esc(c.Title))
	if c.Label != "" {
		fmt.Fprintf(buf, "<p class=\"label\">%s</p>", esc(c.Label))
	}
	if c.Summary != "" {
		fmt.Fprintf(buf, "<p>%s</p>", esc(c.Summary))
	}
	writeTagLinks(buf, c.Tags)
	buf.WriteString("</article>")
}

func writeTagLinks(buf *bytes.Buffer, tags []string) {
	if len(tags) == 0 {
		return
	}
	buf.WriteString("<ul class=\"tags\">")
	for _, t := range tags {
		fmt.Fprintf(buf, "<li><a href=\"/blog/?tag=%s\">%s</a></li>", url.QueryEscape(t), esc(t))
	}
	buf.WriteString("</ul>")
}

func writeEventCard(buf *bytes.Buffer, e EventCard) {
	buf.WriteString("<article class=\"event\">")
	fmt.Fprintf(buf, "<h3><a href=\"%s\">%s</a></h3>", esc(e.Link), esc(e.Title))
	fmt.Fprintf(buf, "<p class=\"when\">%s &ndash; %s</p>", esc(e.Starts), esc(e.Ends))
	if e.Location != "" {
		fmt.Fprintf(buf, "<p class=\"where\">%s</p>", esc(e.Location))
	}
	if e.Summary != "" {
		fmt.Fprintf(buf, "<p>%s</p>", esc(e.Summary))
	}
	if e.RSVPURL != "" {
		fmt.Fprintf(buf, "<a class=\"rsvp\" href=\"%s\">RSVP</a>", esc(e.RSVPURL))
	}
	buf.WriteString("</article>")
}

func writeRelated(buf *bytes.Buffer, heading string, cards []Card) {
	if len(cards) == 0 {
		return
	}
	fmt.Fprintf(buf, "<aside class=\"related\"><h2>%s</h2>", esc(heading))
	for _, c := range cards {
		writeCard(buf, c)
	}
	buf.WriteString("</aside>")
}

func writeSection(buf *bytes.Buffer, heading string, cards []Card) {
	if len(cards) == 0 {
		return
	}
	fmt.Fprintf(buf, "<section><h2>%s</h2>", esc(heading))
	for _, c := range cards {
		writeCard(buf, c)
	}
	buf.WriteString("</section>")
}

func formValue(f ContactForm, field string) string {
	switch field {
	case "name":
		return f.Name
	case "email":
		return f.Email
	case "subject":
		return f.Subject
	}
	return ""
}

func writeFieldError(buf *bytes.Buffer, f ContactForm, field string) {
	if msg, ok := f.Errors[field]; ok {
		fmt.Fprintf(buf, "<p class=\"field-error\">%s</p>", esc(msg))
	}
}

func writeInput(buf *bytes.Buffer, f ContactForm, field, label, typ string, required bool) {
	req := ""
	if required {
		req = " required"
	}
	fmt.Fprintf(buf, "<label for=\"contact-%s\">%s</label>", field, esc(label))
	fmt.Fprintf(buf, "<input id=\"contact-%s\" type=\"%s\" name=\"%s\" value=\"%s\"%s>",
		field, typ, field, esc(formValue(f, field)), req)
	writeFieldError(buf, f, field)
}
