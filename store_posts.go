package site

import (
	"sort"
	"time"
)

const postCols = `id, title, slug, author, summary, body, tags, featured, reading_time,
	seo_title, seo_description, published, publish_at, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(r rowScanner) (Post, error) {
	var p Post
	var tags, publishAt, createdAt, updatedAt string
	var featured, published int
	err := r.Scan(&p.ID, &p.Title, &p.Slug, &p.Author, &p.Summary, &p.Body, &tags,
		&featured, &p.ReadingTime, &p.SEOTitle, &p.SEODescription,
		&published, &publishAt, &createdAt, &updatedAt)
	if err != nil {
		return Post{}, err
	}
	p.Tags = ParseTags(tags)
	p.Featured = featured == 1
	p.Published = published == 1
	p.PublishAt = decodeTime(publishAt)
	p.CreatedAt = decodeTime(createdAt)
	p.UpdatedAt = decodeTime(updatedAt)
	return p, nil
}

// SavePost inserts or updates a post. An empty slug is derived from the
// title; first publication stamps PublishAt. A slug collision surfaces as
// the UNIQUE constraint error from SQLite.
func (s *Store) SavePost(p *Post) error {
	now := time.Now().UTC()
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	if p.Published && p.PublishAt.IsZero() {
		p.PublishAt = now
	}
	p.UpdatedAt = now
	if p.ID == 0 {
		p.CreatedAt = now
		res, err := s.db.Exec(`INSERT INTO posts (title, slug, author, summary, body, tags, featured, reading_time,
			seo_title, seo_description, published, publish_at, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.Title, p.Slug, p.Author, p.Summary, p.Body, encodeTags(p.Tags), boolToInt(p.Featured), p.ReadingTime,
			p.SEOTitle, p.SEODescription, boolToInt(p.Published), encodeTime(p.PublishAt),
			encodeTime(p.CreatedAt), encodeTime(p.UpdatedAt))
		if err != nil {
			return err
		}
		p.ID, err = res.LastInsertId()
		return err
	}
	_, err := s.db.Exec(`UPDATE posts SET title = ?, slug = ?, author = ?, summary = ?, body = ?, tags = ?,
		featured = ?, reading_time = ?, seo_title = ?, seo_description = ?, published = ?, publish_at = ?, updated_at = ?
		WHERE id = ?`,
		p.Title, p.Slug, p.Author, p.Summary, p.Body, encodeTags(p.Tags),
		boolToInt(p.Featured), p.ReadingTime, p.SEOTitle, p.SEODescription,
		boolToInt(p.Published), encodeTime(p.PublishAt), encodeTime(p.UpdatedAt), p.ID)
	return err
}

// GetPost returns a single published post by slug.
func (s *Store) GetPost(slug string) (Post, error) {
	row := s.db.QueryRow(`SELECT `+postCols+` FROM posts WHERE slug = ? AND published = 1`, slug)
	return scanPost(row)
}

// ListPublishedPosts returns all published posts ordered by publish date
// descending, then creation date descending. Scheduled-but-future posts are
// included; callers gate on LiveAt.
func (s *Store) ListPublishedPosts() ([]Post, error) {
	rows, err := s.db.Query(`SELECT ` + postCols + ` FROM posts WHERE published = 1
		ORDER BY publish_at DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// ListAllPosts returns every post, drafts included, newest first.
func (s *Store) ListAllPosts() ([]Post, error) {
	rows, err := s.db.Query(`SELECT ` + postCols + ` FROM posts ORDER BY publish_at DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// DeletePost removes a post by slug.
func (s *Store) DeletePost(slug string) error {
	_, err := s.db.Exec(`DELETE FROM posts WHERE slug = ?`, slug)
	return err
}

// ListTags returns a sorted, deduplicated slice of all tags from published posts.
func (s *Store) ListTags() ([]string, error) {
	rows, err := s.db.Query(`SELECT tags FROM posts WHERE published = 1`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set := make(map[string]struct{})
	for rows.Next() {
		var tags string
		if err := rows.Scan(&tags); err != nil {
			return nil, err
		}
		for _, t := range ParseTags(tags) {
			set[normalizeTag(t)] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	result := make([]string, 0, len(set))
	for t := range set {
		result = append(result, t)
	}
	sort.Strings(result)
	return result, nil
}
