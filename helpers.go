package site

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
)

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// normalizeTag lowercases and trims a tag label for comparisons.
func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}

// hasTagMatch reports whether any tag label contains the filter as a
// case-insensitive substring.
func hasTagMatch(tags []string, filter string) bool {
	needle := normalizeTag(filter)
	if needle == "" {
		return true
	}
	for _, t := range tags {
		if strings.Contains(normalizeTag(t), needle) {
			return true
		}
	}
	return false
}

// sharesTag reports whether the two tag sets intersect, ignoring case.
func sharesTag(a, b []string) bool {
	set := make(map[string]struct{}, len(a))
	for _, t := range a {
		if n := normalizeTag(t); n != "" {
			set[n] = struct{}{}
		}
	}
	for _, t := range b {
		if _, ok := set[normalizeTag(t)]; ok {
			return true
		}
	}
	return false
}

// WebsiteJsonLD returns a JSON-LD string for a WebSite schema using SiteConfig.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        cfg.Name,
		"url":         BuildURL(cfg.URL),
		"description": cfg.Description,
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD returns a JSON-LD string for a BlogPosting schema.
func BlogPostingJsonLD(post Post, cfg SiteConfig) string {
	postURL := BuildURL(cfg.URL, "blog", post.Slug)
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "BlogPosting",
		"headline":    post.Title,
		"description": post.Summary,
		"url":         postURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if !post.PublishAt.IsZero() {
		data["datePublished"] = post.PublishAt.UTC().Format("2006-01-02")
	}
	if post.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  post.Author,
		}
	}
	if cfg.Name != "" {
		data["publisher"] = map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		}
	}
	if len(post.Tags) > 0 {
		data["keywords"] = strings.Join(post.Tags, ", ")
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// EventJsonLD returns a JSON-LD string for an Event schema.
func EventJsonLD(ev Event, cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "Event",
		"name":        ev.Title,
		"description": ev.ShortDescription,
		"startDate":   ev.StartsAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		"endDate":     ev.EndsAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		"url":         BuildURL(cfg.URL, "events", ev.Slug),
	}
	if ev.Location != "" {
		data["location"] = map[string]string{
			"@type": "Place",
			"name":  ev.Location,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
