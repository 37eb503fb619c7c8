package site

import "time"

const eventCols = `id, title, slug, starts_at, ends_at, timezone, location, streaming_url,
	short_description, description, featured, rsvp_url, capacity, tags,
	seo_title, seo_description, published, publish_at, created_at, updated_at`

func scanEvent(r rowScanner) (Event, error) {
	var e Event
	var startsAt, endsAt, tags, publishAt, createdAt, updatedAt string
	var featured, published int
	err := r.Scan(&e.ID, &e.Title, &e.Slug, &startsAt, &endsAt, &e.Timezone, &e.Location, &e.StreamingURL,
		&e.ShortDescription, &e.Description, &featured, &e.RSVPURL, &e.Capacity, &tags,
		&e.SEOTitle, &e.SEODescription, &published, &publishAt, &createdAt, &updatedAt)
	if err != nil {
		return Event{}, err
	}
	e.StartsAt = decodeTime(startsAt)
	e.EndsAt = decodeTime(endsAt)
	e.Tags = ParseTags(tags)
	e.Featured = featured == 1
	e.Published = published == 1
	e.PublishAt = decodeTime(publishAt)
	e.CreatedAt = decodeTime(createdAt)
	e.UpdatedAt = decodeTime(updatedAt)
	return e, nil
}

// SaveEvent inserts or updates an event. Saving with Featured set demotes
// every other event inside the same transaction, so two concurrent feature
// writes serialize to exactly one winner. The demotion is silent.
func (s *Store) SaveEvent(e *Event) error {
	now := time.Now().UTC()
	if e.Slug == "" {
		e.Slug = Slugify(e.Title)
	}
	if e.Published && e.PublishAt.IsZero() {
		e.PublishAt = now
	}
	e.UpdatedAt = now

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if e.Featured {
		if _, err := tx.Exec(`UPDATE events SET featured = 0 WHERE id != ?`, e.ID); err != nil {
			return err
		}
	}

	if e.ID == 0 {
		e.CreatedAt = now
		res, err := tx.Exec(`INSERT INTO events (title, slug, starts_at, ends_at, timezone, location, streaming_url,
			short_description, description, featured, rsvp_url, capacity, tags,
			seo_title, seo_description, published, publish_at, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.Title, e.Slug, encodeTime(e.StartsAt), encodeTime(e.EndsAt), e.Timezone, e.Location, e.StreamingURL,
			e.ShortDescription, e.Description, boolToInt(e.Featured), e.RSVPURL, e.Capacity, encodeTags(e.Tags),
			e.SEOTitle, e.SEODescription, boolToInt(e.Published), encodeTime(e.PublishAt),
			encodeTime(e.CreatedAt), encodeTime(e.UpdatedAt))
		if err != nil {
			return err
		}
		if e.ID, err = res.LastInsertId(); err != nil {
			return err
		}
	} else {
		_, err := tx.Exec(`UPDATE events SET title = ?, slug = ?, starts_at = ?, ends_at = ?, timezone = ?,
			location = ?, streaming_url = ?, short_description = ?, description = ?, featured = ?,
			rsvp_url = ?, capacity = ?, tags = ?, seo_title = ?, seo_description = ?,
			published = ?, publish_at = ?, updated_at = ?
			WHERE id = ?`,
			e.Title, e.Slug, encodeTime(e.StartsAt), encodeTime(e.EndsAt), e.Timezone,
			e.Location, e.StreamingURL, e.ShortDescription, e.Description, boolToInt(e.Featured),
			e.RSVPURL, e.Capacity, encodeTags(e.Tags), e.SEOTitle, e.SEODescription,
			boolToInt(e.Published), encodeTime(e.PublishAt), encodeTime(e.UpdatedAt), e.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetEvent returns a single published event by slug.
func (s *Store) GetEvent(slug string) (Event, error) {
	row := s.db.QueryRow(`SELECT `+eventCols+` FROM events WHERE slug = ? AND published = 1`, slug)
	return scanEvent(row)
}

// ListPublishedEvents returns all published events ordered by start time ascending.
func (s *Store) ListPublishedEvents() ([]Event, error) {
	rows, err := s.db.Query(`SELECT ` + eventCols + ` FROM events WHERE published = 1 ORDER BY starts_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// ListAllEvents returns every event, drafts included, by start time ascending.
func (s *Store) ListAllEvents() ([]Event, error) {
	rows, err := s.db.Query(`SELECT ` + eventCols + ` FROM events ORDER BY starts_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// DeleteEvent removes an event by slug.
func (s *Store) DeleteEvent(slug string) error {
	_, err := s.db.Exec(`DELETE FROM events WHERE slug = ?`, slug)
	return err
}
