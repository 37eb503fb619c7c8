package site

import "time"

const presentationCols = `id, title, slug, speaker, speaker_title, speaker_bio, summary, body,
	slides_url, video_url, tags, featured, event_id, presentation_date,
	seo_title, seo_description, published, publish_at, created_at, updated_at`

func scanPresentation(r rowScanner) (Presentation, error) {
	var pr Presentation
	var tags, presentationDate, publishAt, createdAt, updatedAt string
	var featured, published int
	err := r.Scan(&pr.ID, &pr.Title, &pr.Slug, &pr.Speaker, &pr.SpeakerTitle, &pr.SpeakerBio, &pr.Summary, &pr.Body,
		&pr.SlidesURL, &pr.VideoURL, &tags, &featured, &pr.EventID, &presentationDate,
		&pr.SEOTitle, &pr.SEODescription, &published, &publishAt, &createdAt, &updatedAt)
	if err != nil {
		return Presentation{}, err
	}
	pr.Tags = ParseTags(tags)
	pr.Featured = featured == 1
	pr.PresentationDate = decodeTime(presentationDate)
	pr.Published = published == 1
	pr.PublishAt = decodeTime(publishAt)
	pr.CreatedAt = decodeTime(createdAt)
	pr.UpdatedAt = decodeTime(updatedAt)
	return pr, nil
}

// SavePresentation inserts or updates a presentation. An empty slug derives
// from "{title}-{speaker}" so two speakers can give the same talk.
func (s *Store) SavePresentation(pr *Presentation) error {
	now := time.Now().UTC()
	if pr.Slug == "" {
		pr.Slug = Slugify(pr.Title + "-" + pr.Speaker)
	}
	if pr.Published && pr.PublishAt.IsZero() {
		pr.PublishAt = now
	}
	pr.UpdatedAt = now
	if pr.ID == 0 {
		pr.CreatedAt = now
		res, err := s.db.Exec(`INSERT INTO presentations (title, slug, speaker, speaker_title, speaker_bio, summary, body,
			slides_url, video_url, tags, featured, event_id, presentation_date,
			seo_title, seo_description, published, publish_at, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			pr.Title, pr.Slug, pr.Speaker, pr.SpeakerTitle, pr.SpeakerBio, pr.Summary, pr.Body,
			pr.SlidesURL, pr.VideoURL, encodeTags(pr.Tags), boolToInt(pr.Featured), pr.EventID, encodeTime(pr.PresentationDate),
			pr.SEOTitle, pr.SEODescription, boolToInt(pr.Published), encodeTime(pr.PublishAt),
			encodeTime(pr.CreatedAt), encodeTime(pr.UpdatedAt))
		if err != nil {
			return err
		}
		pr.ID, err = res.LastInsertId()
		return err
	}
	_, err := s.db.Exec(`UPDATE presentations SET title = ?, slug = ?, speaker = ?, speaker_title = ?, speaker_bio = ?,
		summary = ?, body = ?, slides_url = ?, video_url = ?, tags = ?, featured = ?, event_id = ?, presentation_date = ?,
		seo_title = ?, seo_description = ?, published = ?, publish_at = ?, updated_at = ?
		WHERE id = ?`,
		pr.Title, pr.Slug, pr.Speaker, pr.SpeakerTitle, pr.SpeakerBio,
		pr.Summary, pr.Body, pr.SlidesURL, pr.VideoURL, encodeTags(pr.Tags), boolToInt(pr.Featured), pr.EventID,
		encodeTime(pr.PresentationDate), pr.SEOTitle, pr.SEODescription,
		boolToInt(pr.Published), encodeTime(pr.PublishAt), encodeTime(pr.UpdatedAt), pr.ID)
	return err
}

// GetPresentation returns a single published presentation by slug.
func (s *Store) GetPresentation(slug string) (Presentation, error) {
	row := s.db.QueryRow(`SELECT `+presentationCols+` FROM presentations WHERE slug = ? AND published = 1`, slug)
	return scanPresentation(row)
}

// ListPublishedPresentations returns all published presentations ordered by
// presentation date, publish date, then creation date, all descending.
func (s *Store) ListPublishedPresentations() ([]Presentation, error) {
	rows, err := s.db.Query(`SELECT ` + presentationCols + ` FROM presentations WHERE published = 1
		ORDER BY presentation_date DESC, publish_at DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prs []Presentation
	for rows.Next() {
		pr, err := scanPresentation(rows)
		if err != nil {
			return nil, err
		}
		prs = append(prs, pr)
	}
	return prs, rows.Err()
}

// DeletePresentation removes a presentation by slug.
func (s *Store) DeletePresentation(slug string) error {
	_, err := s.db.Exec(`DELETE FROM presentations WHERE slug = ?`, slug)
	return err
}
