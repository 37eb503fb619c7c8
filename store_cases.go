package site

import "time"

const caseCols = `id, title, slug, client, industry, summary, body, tags, featured,
	roi_percent, cost_savings, time_savings,
	seo_title, seo_description, published, publish_at, created_at, updated_at`

func scanCaseStudy(r rowScanner) (CaseStudy, error) {
	var cs CaseStudy
	var tags, publishAt, createdAt, updatedAt string
	var featured, published int
	err := r.Scan(&cs.ID, &cs.Title, &cs.Slug, &cs.Client, &cs.Industry, &cs.Summary, &cs.Body, &tags, &featured,
		&cs.ROIPercent, &cs.CostSavings, &cs.TimeSavings,
		&cs.SEOTitle, &cs.SEODescription, &published, &publishAt, &createdAt, &updatedAt)
	if err != nil {
		return CaseStudy{}, err
	}
	cs.Tags = ParseTags(tags)
	cs.Featured = featured == 1
	cs.Published = published == 1
	cs.PublishAt = decodeTime(publishAt)
	cs.CreatedAt = decodeTime(createdAt)
	cs.UpdatedAt = decodeTime(updatedAt)
	return cs, nil
}

// SaveCaseStudy inserts or updates a case study, with the same slug and
// publish-at side effects as posts.
func (s *Store) SaveCaseStudy(cs *CaseStudy) error {
	now := time.Now().UTC()
	if cs.Slug == "" {
		cs.Slug = Slugify(cs.Title)
	}
	if cs.Published && cs.PublishAt.IsZero() {
		cs.PublishAt = now
	}
	cs.UpdatedAt = now
	if cs.ID == 0 {
		cs.CreatedAt = now
		res, err := s.db.Exec(`INSERT INTO case_studies (title, slug, client, industry, summary, body, tags, featured,
			roi_percent, cost_savings, time_savings, seo_title, seo_description, published, publish_at, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			cs.Title, cs.Slug, cs.Client, cs.Industry, cs.Summary, cs.Body, encodeTags(cs.Tags), boolToInt(cs.Featured),
			cs.ROIPercent, cs.CostSavings, cs.TimeSavings, cs.SEOTitle, cs.SEODescription,
			boolToInt(cs.Published), encodeTime(cs.PublishAt), encodeTime(cs.CreatedAt), encodeTime(cs.UpdatedAt))
		if err != nil {
			return err
		}
		cs.ID, err = res.LastInsertId()
		return err
	}
	_, err := s.db.Exec(`UPDATE case_studies SET title = ?, slug = ?, client = ?, industry = ?, summary = ?, body = ?,
		tags = ?, featured = ?, roi_percent = ?, cost_savings = ?, time_savings = ?,
		seo_title = ?, seo_description = ?, published = ?, publish_at = ?, updated_at = ?
		WHERE id = ?`,
		cs.Title, cs.Slug, cs.Client, cs.Industry, cs.Summary, cs.Body,
		encodeTags(cs.Tags), boolToInt(cs.Featured), cs.ROIPercent, cs.CostSavings, cs.TimeSavings,
		cs.SEOTitle, cs.SEODescription, boolToInt(cs.Published), encodeTime(cs.PublishAt), encodeTime(cs.UpdatedAt), cs.ID)
	return err
}

// GetCaseStudy returns a single published case study by slug.
func (s *Store) GetCaseStudy(slug string) (CaseStudy, error) {
	row := s.db.QueryRow(`SELECT `+caseCols+` FROM case_studies WHERE slug = ? AND published = 1`, slug)
	return scanCaseStudy(row)
}

// ListPublishedCaseStudies returns all published case studies ordered by
// publish date descending, then creation date descending.
func (s *Store) ListPublishedCaseStudies() ([]CaseStudy, error) {
	rows, err := s.db.Query(`SELECT ` + caseCols + ` FROM case_studies WHERE published = 1
		ORDER BY publish_at DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cases []CaseStudy
	for rows.Next() {
		cs, err := scanCaseStudy(rows)
		if err != nil {
			return nil, err
		}
		cases = append(cases, cs)
	}
	return cases, rows.Err()
}

// DeleteCaseStudy removes a case study by slug.
func (s *Store) DeleteCaseStudy(slug string) error {
	_, err := s.db.Exec(`DELETE FROM case_studies WHERE slug = ?`, slug)
	return err
}
