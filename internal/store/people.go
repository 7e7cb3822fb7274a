// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"carewell/internal/models"
)

// StaffStore manages staff members shown on the about page.
type StaffStore struct {
	db *sql.DB
}

// NewStaffStore returns a new StaffStore.
func NewStaffStore(db *sql.DB) *StaffStore {
	return &StaffStore{db: db}
}

const staffColumns = `id, name, role, photo_url, bio, sort_order, created_at, updated_at`

// List returns all staff members ordered by sort order then name. Logs and
// returns an empty slice on failure (public read path).
func (s *StaffStore) List() []models.StaffMember {
	rows, err := s.db.Query(`SELECT ` + staffColumns + ` FROM staff_members ORDER BY sort_order, name`)
	if err != nil {
		slog.Error("list staff failed", "error", err)
		return nil
	}
	defer rows.Close()

	var items []models.StaffMember
	for rows.Next() {
		var m models.StaffMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.PhotoURL, &m.Bio, &m.SortOrder, &m.CreatedAt, &m.UpdatedAt); err != nil {
			slog.Error("scan staff failed", "error", err)
			return nil
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		slog.Error("list staff failed", "error", err)
		return nil
	}
	return items
}

// FindByID retrieves a staff member by ID. Returns nil if not found.
func (s *StaffStore) FindByID(id uuid.UUID) (*models.StaffMember, error) {
	var m models.StaffMember
	err := s.db.QueryRow(`SELECT `+staffColumns+` FROM staff_members WHERE id = $1`, id).
		Scan(&m.ID, &m.Name, &m.Role, &m.PhotoURL, &m.Bio, &m.SortOrder, &m.CreatedAt, &m.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find staff by id: %w", err)
	}
	return &m, nil
}

// Create inserts a staff member and returns it with the generated ID.
func (s *StaffStore) Create(m *models.StaffMember) (*models.StaffMember, error) {
	result := &models.StaffMember{}
	err := s.db.QueryRow(`
		INSERT INTO staff_members (name, role, photo_url, bio, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+staffColumns,
		m.Name, m.Role, m.PhotoURL, m.Bio, m.SortOrder,
	).Scan(&result.ID, &result.Name, &result.Role, &result.PhotoURL, &result.Bio,
		&result.SortOrder, &result.CreatedAt, &result.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create staff: %w", err)
	}
	return result, nil
}

// Update modifies a staff member.
func (s *StaffStore) Update(m *models.StaffMember) error {
	_, err := s.db.Exec(`
		UPDATE staff_members SET
			name = $1, role = $2, photo_url = $3, bio = $4, sort_order = $5,
			updated_at = NOW()
		WHERE id = $6
	`, m.Name, m.Role, m.PhotoURL, m.Bio, m.SortOrder, m.ID)
	if err != nil {
		return fmt.Errorf("update staff: %w", err)
	}
	return nil
}

// Delete removes a staff member by ID.
func (s *StaffStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM staff_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete staff: %w", err)
	}
	return nil
}

// TestimonialStore manages client testimonials.
type TestimonialStore struct {
	db *sql.DB
}

// NewTestimonialStore returns a new TestimonialStore.
func NewTestimonialStore(db *sql.DB) *TestimonialStore {
	return &TestimonialStore{db: db}
}

const testimonialColumns = `id, name, location, avatar_url, quote, attribution, published, created_at, updated_at`

// scanTestimonial scans a row into a Testimonial struct.
func scanTestimonial(scanner interface{ Scan(...any) error }) (*models.Testimonial, error) {
	var tm models.Testimonial
	err := scanner.Scan(
		&tm.ID, &tm.Name, &tm.Location, &tm.AvatarURL, &tm.Quote,
		&tm.Attribution, &tm.Published, &tm.CreatedAt, &tm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tm, nil
}

// List returns all testimonials for the admin view, newest first.
func (s *TestimonialStore) List() ([]models.Testimonial, error) {
	return s.list(`SELECT ` + testimonialColumns + ` FROM testimonials ORDER BY created_at DESC`)
}

// ListPublished returns published testimonials for the homepage. Logs and
// returns an empty slice on failure.
func (s *TestimonialStore) ListPublished() []models.Testimonial {
	items, err := s.list(`
		SELECT ` + testimonialColumns + ` FROM testimonials
		WHERE published ORDER BY created_at DESC`)
	if err != nil {
		slog.Error("list published testimonials failed", "error", err)
		return nil
	}
	return items
}

func (s *TestimonialStore) list(query string) ([]models.Testimonial, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer rows.Close()

	var items []models.Testimonial
	for rows.Next() {
		tm, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		items = append(items, *tm)
	}
	return items, rows.Err()
}

// FindByID retrieves a testimonial by ID. Returns nil if not found.
func (s *TestimonialStore) FindByID(id uuid.UUID) (*models.Testimonial, error) {
	row := s.db.QueryRow(`SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id)
	tm, err := scanTestimonial(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find testimonial by id: %w", err)
	}
	return tm, nil
}

// Create inserts a testimonial and returns it with the generated ID.
// New testimonials default to published unless explicitly unpublished.
func (s *TestimonialStore) Create(tm *models.Testimonial) (*models.Testimonial, error) {
	row := s.db.QueryRow(`
		INSERT INTO testimonials (name, location, avatar_url, quote, attribution, published)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+testimonialColumns,
		tm.Name, tm.Location, tm.AvatarURL, tm.Quote, tm.Attribution, tm.Published,
	)
	result, err := scanTestimonial(row)
	if err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	return result, nil
}

// Update modifies a testimonial.
func (s *TestimonialStore) Update(tm *models.Testimonial) error {
	_, err := s.db.Exec(`
		UPDATE testimonials SET
			name = $1, location = $2, avatar_url = $3, quote = $4,
			attribution = $5, published = $6, updated_at = NOW()
		WHERE id = $7
	`, tm.Name, tm.Location, tm.AvatarURL, tm.Quote, tm.Attribution, tm.Published, tm.ID)
	if err != nil {
		return fmt.Errorf("update testimonial: %w", err)
	}
	return nil
}

// Delete removes a testimonial by ID.
func (s *TestimonialStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	return nil
}
