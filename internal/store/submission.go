// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"carewell/internal/models"
)

// SubmissionStore handles contact and inquiry form submissions. Rows are
// inserted only by the public forms; status is mutated only by admins.
type SubmissionStore struct {
	db *sql.DB
}

// NewSubmissionStore creates a new SubmissionStore.
func NewSubmissionStore(db *sql.DB) *SubmissionStore {
	return &SubmissionStore{db: db}
}

const contactColumns = `id, name, email, phone, preferred_time, service_type, message, status, submitted_at`

// CreateContact inserts a contact submission. Status is always "new" on
// insert regardless of what the caller set.
func (s *SubmissionStore) CreateContact(c *models.ContactSubmission) (*models.ContactSubmission, error) {
	result := &models.ContactSubmission{}
	err := s.db.QueryRow(`
		INSERT INTO contact_submissions (name, email, phone, preferred_time, service_type, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'new')
		RETURNING `+contactColumns,
		c.Name, c.Email, c.Phone, c.PreferredTime, c.ServiceType, c.Message,
	).Scan(
		&result.ID, &result.Name, &result.Email, &result.Phone,
		&result.PreferredTime, &result.ServiceType, &result.Message,
		&result.Status, &result.SubmittedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create contact submission: %w", err)
	}
	return result, nil
}

// ListContacts returns all contact submissions, newest first.
func (s *SubmissionStore) ListContacts() ([]models.ContactSubmission, error) {
	rows, err := s.db.Query(`SELECT ` + contactColumns + ` FROM contact_submissions ORDER BY submitted_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	defer rows.Close()

	var items []models.ContactSubmission
	for rows.Next() {
		var c models.ContactSubmission
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.Phone, &c.PreferredTime,
			&c.ServiceType, &c.Message, &c.Status, &c.SubmittedAt,
		); err != nil {
			return nil, fmt.Errorf("scan contact submission: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindContactByID retrieves a contact submission. Returns nil if not found.
func (s *SubmissionStore) FindContactByID(id uuid.UUID) (*models.ContactSubmission, error) {
	var c models.ContactSubmission
	err := s.db.QueryRow(`SELECT `+contactColumns+` FROM contact_submissions WHERE id = $1`, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.PreferredTime,
		&c.ServiceType, &c.Message, &c.Status, &c.SubmittedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find contact submission: %w", err)
	}
	return &c, nil
}

// UpdateContactStatus moves a contact submission through the triage states.
func (s *SubmissionStore) UpdateContactStatus(id uuid.UUID, status models.SubmissionStatus) error {
	if !models.ValidSubmissionStatus(status) {
		return fmt.Errorf("invalid submission status %q", status)
	}
	_, err := s.db.Exec(`UPDATE contact_submissions SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update contact status: %w", err)
	}
	return nil
}

// DeleteContact removes a contact submission by ID.
func (s *SubmissionStore) DeleteContact(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM contact_submissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact submission: %w", err)
	}
	return nil
}

const inquiryColumns = `id, full_name, email, phone, address, care_for, start_date,
       reason, hours_per_week, referrer, can_afford, service_option, status, submitted_at`

// CreateInquiry inserts an inquiry submission with status "new".
func (s *SubmissionStore) CreateInquiry(q *models.InquirySubmission) (*models.InquirySubmission, error) {
	result := &models.InquirySubmission{}
	err := s.db.QueryRow(`
		INSERT INTO inquiry_submissions (full_name, email, phone, address, care_for,
		                                 start_date, reason, hours_per_week, referrer,
		                                 can_afford, service_option, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 'new')
		RETURNING `+inquiryColumns,
		q.FullName, q.Email, q.Phone, q.Address, q.CareFor,
		q.StartDate, q.Reason, q.HoursPerWeek, q.Referrer,
		q.CanAfford, q.ServiceOption,
	).Scan(
		&result.ID, &result.FullName, &result.Email, &result.Phone, &result.Address,
		&result.CareFor, &result.StartDate, &result.Reason, &result.HoursPerWeek,
		&result.Referrer, &result.CanAfford, &result.ServiceOption,
		&result.Status, &result.SubmittedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create inquiry submission: %w", err)
	}
	return result, nil
}

// ListInquiries returns all inquiry submissions, newest first.
func (s *SubmissionStore) ListInquiries() ([]models.InquirySubmission, error) {
	rows, err := s.db.Query(`SELECT ` + inquiryColumns + ` FROM inquiry_submissions ORDER BY submitted_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list inquiry submissions: %w", err)
	}
	defer rows.Close()

	var items []models.InquirySubmission
	for rows.Next() {
		var q models.InquirySubmission
		if err := rows.Scan(
			&q.ID, &q.FullName, &q.Email, &q.Phone, &q.Address,
			&q.CareFor, &q.StartDate, &q.Reason, &q.HoursPerWeek,
			&q.Referrer, &q.CanAfford, &q.ServiceOption,
			&q.Status, &q.SubmittedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inquiry submission: %w", err)
		}
		items = append(items, q)
	}
	return items, rows.Err()
}

// FindInquiryByID retrieves an inquiry submission. Returns nil if not found.
func (s *SubmissionStore) FindInquiryByID(id uuid.UUID) (*models.InquirySubmission, error) {
	var q models.InquirySubmission
	err := s.db.QueryRow(`SELECT `+inquiryColumns+` FROM inquiry_submissions WHERE id = $1`, id).Scan(
		&q.ID, &q.FullName, &q.Email, &q.Phone, &q.Address,
		&q.CareFor, &q.StartDate, &q.Reason, &q.HoursPerWeek,
		&q.Referrer, &q.CanAfford, &q.ServiceOption,
		&q.Status, &q.SubmittedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find inquiry submission: %w", err)
	}
	return &q, nil
}

// UpdateInquiryStatus moves an inquiry submission through the triage states.
func (s *SubmissionStore) UpdateInquiryStatus(id uuid.UUID, status models.SubmissionStatus) error {
	if !models.ValidSubmissionStatus(status) {
		return fmt.Errorf("invalid submission status %q", status)
	}
	_, err := s.db.Exec(`UPDATE inquiry_submissions SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update inquiry status: %w", err)
	}
	return nil
}

// DeleteInquiry removes an inquiry submission by ID.
func (s *SubmissionStore) DeleteInquiry(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM inquiry_submissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inquiry submission: %w", err)
	}
	return nil
}

// CountNewSubmissions returns the number of untriaged submissions across
// both forms, for the dashboard badge.
func (s *SubmissionStore) CountNewSubmissions() (int, error) {
	var contact, inquiry int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM contact_submissions WHERE status = 'new'`).Scan(&contact); err != nil {
		return 0, fmt.Errorf("count new contacts: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM inquiry_submissions WHERE status = 'new'`).Scan(&inquiry); err != nil {
		return 0, fmt.Errorf("count new inquiries: %w", err)
	}
	return contact + inquiry, nil
}
