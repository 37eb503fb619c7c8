package site

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/aisnakk/site/views"
)

const dateLabel = "Jan 2, 2006"
const eventTimeLabel = "Jan 2, 2006 15:04"

func (a *App) viewSite() views.Site {
	return views.Site{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
		ContactMail: a.Config.ContactEmail,
	}
}

func (a *App) viewPage(c echo.Context, meta views.Meta) views.Page {
	return views.Page{
		Site:    a.viewSite(),
		Meta:    meta,
		Flashes: takeFlashes(c),
		CSRF:    CsrfToken(c),
	}
}

func postCard(p Post, detail bool) views.Card {
	card := views.Card{
		Title:   p.Title,
		Summary: p.Summary,
		Link:    p.Link(),
		Tags:    p.Tags,
	}
	if !p.PublishAt.IsZero() {
		card.Label = p.PublishAt.Format(dateLabel)
	}
	if p.ReadingTime > 0 {
		if card.Label != "" {
			card.Label += " · "
		}
		card.Label += fmt.Sprintf("%d min read", p.ReadingTime)
	}
	if detail {
		card.BodyHTML = p.Body
	}
	return card
}

func eventCard(e Event, detail bool) views.EventCard {
	card := views.EventCard{
		Title:    e.Title,
		Link:     e.Link(),
		Starts:   e.LocalStart().Format(eventTimeLabel),
		Ends:     e.LocalEnd().Format(eventTimeLabel),
		Location: e.Location,
		RSVPURL:  e.RSVPURL,
		Summary:  e.ShortDescription,
		Tags:     e.Tags,
	}
	if detail {
		card.BodyHTML = e.Description
		card.Capacity = e.Capacity
	}
	return card
}

func caseCard(cs CaseStudy, detail bool) views.Card {
	label := cs.Client
	if cs.Industry != "" {
		if label != "" {
			label += " · "
		}
		label += cs.Industry
	}
	card := views.Card{
		Title:   cs.Title,
		Summary: cs.Summary,
		Link:    cs.Link(),
		Label:   label,
		Tags:    cs.Tags,
	}
	if detail {
		card.BodyHTML = cs.Body
	}
	return card
}

func presentationCard(pr Presentation, detail bool) views.Card {
	label := pr.Speaker
	if !pr.PresentationDate.IsZero() {
		if label != "" {
			label += " · "
		}
		label += pr.PresentationDate.Format(dateLabel)
	}
	card := views.Card{
		Title:   pr.Title,
		Summary: pr.Summary,
		Link:    pr.Link(),
		Label:   label,
		Tags:    pr.Tags,
	}
	if detail {
		card.BodyHTML = pr.Body
	}
	return card
}

func postCards(posts []Post) []views.Card {
	cards := make([]views.Card, len(posts))
	for i, p := range posts {
		cards[i] = postCard(p, false)
	}
	return cards
}

func caseCards(cases []CaseStudy) []views.Card {
	cards := make([]views.Card, len(cases))
	for i, cs := range cases {
		cards[i] = caseCard(cs, false)
	}
	return cards
}

func presentationCards(prs []Presentation) []views.Card {
	cards := make([]views.Card, len(prs))
	for i, pr := range prs {
		cards[i] = presentationCard(pr, false)
	}
	return cards
}

func eventCards(events []Event) []views.EventCard {
	cards := make([]views.EventCard, len(events))
	for i, e := range events {
		cards[i] = eventCard(e, false)
	}
	return cards
}

// handleHome serves the landing page: featured event, three latest posts,
// three featured presentations and case studies.
func (a *App) handleHome(c echo.Context) error {
	now := a.now()
	var featured *views.EventCard
	if ev, ok, err := a.Cache.FeaturedEvent(now); err != nil {
		return err
	} else if ok {
		card := eventCard(ev, false)
		featured = &card
	}
	latest, err := a.Cache.LatestPosts(now, 3)
	if err != nil {
		return err
	}
	presentations, err := a.Cache.FeaturedPresentations(now, 3)
	if err != nil {
		return err
	}
	cases, err := a.Cache.FeaturedCaseStudies(now, 3)
	if err != nil {
		return err
	}
	pg := a.viewPage(c, views.Meta{
		Title:       a.Config.Name,
		Description: a.Config.Description,
		URL:         BuildURL(a.Config.URL),
		OGType:      "website",
		JSONLD:      WebsiteJsonLD(a.Config),
	})
	return Render(c, views.Home(pg, featured, postCards(latest), presentationCards(presentations), caseCards(cases)))
}

// handleBlogList serves the paginated blog listing with search and tag
// query parameters.
func (a *App) handleBlogList(c echo.Context) error {
	now := a.now()
	search := c.QueryParam("search")
	tag := c.QueryParam("tag")
	pageNum, _ := strconv.Atoi(c.QueryParam("page"))

	listing, err := a.Cache.PostListing(now, search, tag, pageNum)
	if err != nil {
		return err
	}
	tags, err := a.Cache.Tags()
	if err != nil {
		return err
	}
	pg := a.viewPage(c, views.Meta{
		Title:  "Blog | " + a.Config.Name,
		URL:    BuildURL(a.Config.URL, "blog"),
		OGType: "website",
	})
	pagination := views.Pagination{
		Number:     listing.Number,
		TotalPages: listing.TotalPages,
		HasPrev:    listing.HasPrev(),
		HasNext:    listing.HasNext(),
	}
	return Render(c, views.BlogList(pg, postCards(listing.Posts), search, tag, pagination, tags))
}

// handleBlogDetail serves a single live post; anything else is a 404, so an
// unpublished slug is indistinguishable from a missing one.
func (a *App) handleBlogDetail(c echo.Context) error {
	now := a.now()
	post, ok, err := a.Cache.LivePost(c.Param("slug"), now)
	if err != nil {
		return err
	}
	if !ok {
		return a.renderNotFound(c)
	}
	related, err := a.Cache.RelatedPosts(post, now)
	if err != nil {
		return err
	}
	pg := a.viewPage(c, views.Meta{
		Title:       post.MetaTitle(),
		Description: post.MetaDescription(),
		URL:         BuildURL(a.Config.URL, "blog", post.Slug),
		OGType:      "article",
		JSONLD:      BlogPostingJsonLD(post, a.Config),
	})
	return Render(c, views.BlogDetail(pg, postCard(post, true), postCards(related)))
}

// handleEventsList serves the events page split into upcoming and past. An
// event that is underway shows up in neither list.
func (a *App) handleEventsList(c echo.Context) error {
	now := a.now()
	upcoming, err := a.Cache.UpcomingEvents(now)
	if err != nil {
		return err
	}
	past, err := a.Cache.PastEvents(now)
	if err != nil {
		return err
	}
	pg := a.viewPage(c, views.Meta{
		Title:  "Events | " + a.Config.Name,
		URL:    BuildURL(a.Config.URL, "events"),
		OGType: "website",
	})
	return Render(c, views.EventsList(pg, eventCards(upcoming), eventCards(past)))
}

func (a *App) handleEventDetail(c echo.Context) error {
	now := a.now()
	event, ok, err := a.Cache.LiveEvent(c.Param("slug"), now)
	if err != nil {
		return err
	}
	if !ok {
		return a.renderNotFound(c)
	}
	presentations, err := a.Cache.EventPresentations(event.ID, now)
	if err != nil {
		return err
	}
	pg := a.viewPage(c, views.Meta{
		Title:       event.MetaTitle(),
		Description: event.MetaDescription(),
		URL:         BuildURL(a.Config.URL, "events", event.Slug),
		OGType:      "article",
		JSONLD:      EventJsonLD(event, a.Config),
	})
	return Render(c, views.EventDetail(pg, eventCard(event, true), presentationCards(presentations)))
}

func (a *App) handleCaseDetail(c echo.Context) error {
	now := a.now()
	cs, ok, err := a.Cache.LiveCaseStudy(c.Param("slug"), now)
	if err != nil {
		return err
	}
	if !ok {
		return a.renderNotFound(c)
	}
	related, err := a.Cache.RelatedCaseStudies(cs, now)
	if err != nil {
		return err
	}
	pg := a.viewPage(c, views.Meta{
		Title:       cs.MetaTitle(),
		Description: cs.MetaDescription(),
		URL:         BuildURL(a.Config.URL, "cases", cs.Slug),
		OGType:      "article",
	})
	return Render(c, views.CaseDetail(pg, caseCard(cs, true), caseCards(related)))
}

func (a *App) handlePresentationDetail(c echo.Context) error {
	now := a.now()
	pr, ok, err := a.Cache.LivePresentation(c.Param("slug"), now)
	if err != nil {
		return err
	}
	if !ok {
		return a.renderNotFound(c)
	}
	related, err := a.Cache.RelatedPresentations(pr, now)
	if err != nil {
		return err
	}
	pg := a.viewPage(c, views.Meta{
		Title:       pr.MetaTitle(),
		Description: pr.MetaDescription(),
		URL:         BuildURL(a.Config.URL, "presentations", pr.Slug),
		OGType:      "article",
	})
	return Render(c, views.PresentationDetail(pg, presentationCard(pr, true), presentationCards(related)))
}

// handleAbout serves the about page with recent presentations and case studies.
func (a *App) handleAbout(c echo.Context) error {
	now := a.now()
	presentations, err := a.Cache.RecentPresentations(now, 6)
	if err != nil {
		return err
	}
	cases, err := a.Cache.RecentCaseStudies(now, 6)
	if err != nil {
		return err
	}
	pg := a.viewPage(c, views.Meta{
		Title:       "About | " + a.Config.Name,
		Description: a.Config.Description,
		URL:         BuildURL(a.Config.URL, "about"),
		OGType:      "website",
	})
	return Render(c, views.About(pg, presentationCards(presentations), caseCards(cases)))
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

// handleRobots generates robots.txt dynamically using the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) renderNotFound(c echo.Context) error {
	pg := a.viewPage(c, views.Meta{Title: "Not found | " + a.Config.Name})
	return RenderStatus(c, http.StatusNotFound, views.NotFound(pg))
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = a.renderNotFound(c)
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		pg := a.viewPage(c, views.Meta{Title: "Error | " + a.Config.Name})
		_ = RenderStatus(c, code, views.ServerError(pg))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
