package site

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// handleSitemap serves /sitemap.xml covering the static pages and every
// live entry of all four content types.
func (a *App) handleSitemap(c echo.Context) error {
	now := a.now()
	posts, err := a.Cache.LivePosts(now)
	if err != nil {
		return err
	}
	events, err := a.Cache.LiveEvents(now)
	if err != nil {
		return err
	}
	cases, err := a.Cache.LiveCaseStudies(now)
	if err != nil {
		return err
	}
	presentations, err := a.Cache.LivePresentations(now)
	if err != nil {
		return err
	}

	base := a.Config.URL
	urls := []sitemapURL{
		{Loc: BuildURL(base)},
		{Loc: BuildURL(base, "blog")},
		{Loc: BuildURL(base, "events")},
		{Loc: BuildURL(base, "about")},
		{Loc: BuildURL(base, "contact")},
	}
	lastMod := func(ts Timestamps) string {
		if ts.UpdatedAt.IsZero() {
			return ""
		}
		return ts.UpdatedAt.UTC().Format("2006-01-02")
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{Loc: BuildURL(base, "blog", p.Slug), LastMod: lastMod(p.Timestamps)})
	}
	for _, e := range events {
		urls = append(urls, sitemapURL{Loc: BuildURL(base, "events", e.Slug), LastMod: lastMod(e.Timestamps)})
	}
	for _, cs := range cases {
		urls = append(urls, sitemapURL{Loc: BuildURL(base, "cases", cs.Slug), LastMod: lastMod(cs.Timestamps)})
	}
	for _, pr := range presentations {
		urls = append(urls, sitemapURL{Loc: BuildURL(base, "presentations", pr.Slug), LastMod: lastMod(pr.Timestamps)})
	}

	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
