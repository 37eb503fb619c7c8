package site

import (
	"time"

	"github.com/google/uuid"
)

// SaveContactSubmission persists a validated contact-form message.
// The user agent is truncated to 500 characters before storage; the cut
// lands on a rune boundary so the stored value stays valid UTF-8.
func (s *Store) SaveContactSubmission(cs *ContactSubmission) error {
	now := time.Now().UTC()
	cs.CreatedAt = now
	cs.UpdatedAt = now
	if ua := []rune(cs.UserAgent); len(ua) > 500 {
		cs.UserAgent = string(ua[:500])
	}
	res, err := s.db.Exec(`INSERT INTO contact_submissions (name, email, subject, message, ip_address, user_agent, is_read, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, 0, ?, ?)`,
		cs.Name, cs.Email, cs.Subject, cs.Message, cs.IPAddress, cs.UserAgent,
		encodeTime(cs.CreatedAt), encodeTime(cs.UpdatedAt))
	if err != nil {
		return err
	}
	cs.ID, err = res.LastInsertId()
	return err
}

// CountContactSubmissions returns the number of stored submissions.
func (s *Store) CountContactSubmissions() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM contact_submissions`).Scan(&n)
	return n, err
}

// SubscribeNewsletter records a signup for email and reports whether a new
// subscription was created. The insert rides on the UNIQUE(email) constraint
// with ON CONFLICT DO NOTHING, so concurrent identical requests cannot
// produce duplicate rows; the loser simply observes created=false.
func (s *Store) SubscribeNewsletter(email, ip string) (created bool, err error) {
	now := encodeTime(time.Now().UTC())
	res, err := s.db.Exec(`INSERT INTO newsletter_subscriptions (email, is_active, token, ip_address, created_at, updated_at)
		VALUES (?, 1, ?, ?, ?, ?)
		ON CONFLICT(email) DO NOTHING`,
		email, uuid.NewString(), ip, now, now)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// GetNewsletterSubscription returns a subscription by email.
func (s *Store) GetNewsletterSubscription(email string) (NewsletterSubscription, error) {
	var sub NewsletterSubscription
	var active int
	var confirmedAt, createdAt, updatedAt string
	err := s.db.QueryRow(`SELECT id, email, is_active, token, confirmed_at, ip_address, created_at, updated_at
		FROM newsletter_subscriptions WHERE email = ?`, email).
		Scan(&sub.ID, &sub.Email, &active, &sub.Token, &confirmedAt, &sub.IPAddress, &createdAt, &updatedAt)
	if err != nil {
		return NewsletterSubscription{}, err
	}
	sub.Active = active == 1
	sub.ConfirmedAt = decodeTime(confirmedAt)
	sub.CreatedAt = decodeTime(createdAt)
	sub.UpdatedAt = decodeTime(updatedAt)
	return sub, nil
}

// ConfirmNewsletterSubscription marks the subscription holding token as
// confirmed. Unknown tokens are a no-op.
func (s *Store) ConfirmNewsletterSubscription(token string) error {
	now := encodeTime(time.Now().UTC())
	_, err := s.db.Exec(`UPDATE newsletter_subscriptions SET confirmed_at = ?, updated_at = ? WHERE token = ? AND confirmed_at = ''`,
		now, now, token)
	return err
}

// CountNewsletterSubscriptions returns the number of stored subscriptions.
func (s *Store) CountNewsletterSubscriptions() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM newsletter_subscriptions`).Scan(&n)
	return n, err
}
