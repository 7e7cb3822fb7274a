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
	"carewell/internal/slug"
)

// CategoryStore manages service categories. The slug is always recomputed
// from the name on write — it is never accepted from the caller.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

const categoryColumns = `id, name, slug, description, created_at, updated_at`

// List returns all categories ordered by name. Logs and returns an empty
// slice on failure (public read path).
func (s *CategoryStore) List() []models.ServiceCategory {
	rows, err := s.db.Query(`SELECT ` + categoryColumns + ` FROM service_categories ORDER BY name`)
	if err != nil {
		slog.Error("list categories failed", "error", err)
		return nil
	}
	defer rows.Close()

	var items []models.ServiceCategory
	for rows.Next() {
		var c models.ServiceCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			slog.Error("scan category failed", "error", err)
			return nil
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		slog.Error("list categories failed", "error", err)
		return nil
	}
	return items
}

// Create inserts a category with a slug derived from the name.
func (s *CategoryStore) Create(c *models.ServiceCategory) (*models.ServiceCategory, error) {
	c.Slug = slug.Make(c.Name)

	result := &models.ServiceCategory{}
	err := s.db.QueryRow(`
		INSERT INTO service_categories (name, slug, description)
		VALUES ($1, $2, $3)
		RETURNING `+categoryColumns,
		c.Name, c.Slug, c.Description,
	).Scan(&result.ID, &result.Name, &result.Slug, &result.Description, &result.CreatedAt, &result.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return result, nil
}

// Update modifies a category, recomputing the slug from the new name.
func (s *CategoryStore) Update(c *models.ServiceCategory) error {
	c.Slug = slug.Make(c.Name)

	_, err := s.db.Exec(`
		UPDATE service_categories SET name = $1, slug = $2, description = $3, updated_at = NOW()
		WHERE id = $4
	`, c.Name, c.Slug, c.Description, c.ID)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete removes a category by ID.
func (s *CategoryStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM service_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// SpecialtyStore manages service specialties. Same slug rule as categories.
type SpecialtyStore struct {
	db *sql.DB
}

// NewSpecialtyStore returns a new SpecialtyStore.
func NewSpecialtyStore(db *sql.DB) *SpecialtyStore {
	return &SpecialtyStore{db: db}
}

const specialtyColumns = `id, name, slug, description, is_active, sort_order, created_at, updated_at`

// scanSpecialty scans a row into a ServiceSpecialty struct.
func scanSpecialty(scanner interface{ Scan(...any) error }) (*models.ServiceSpecialty, error) {
	var sp models.ServiceSpecialty
	err := scanner.Scan(
		&sp.ID, &sp.Name, &sp.Slug, &sp.Description,
		&sp.IsActive, &sp.SortOrder, &sp.CreatedAt, &sp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

// List returns all specialties ordered by sort order then name (admin view).
func (s *SpecialtyStore) List() ([]models.ServiceSpecialty, error) {
	return s.list(`SELECT ` + specialtyColumns + ` FROM service_specialties ORDER BY sort_order, name`)
}

// ListActive returns active specialties for the public site. Logs and
// returns an empty slice on failure.
func (s *SpecialtyStore) ListActive() []models.ServiceSpecialty {
	items, err := s.list(`
		SELECT ` + specialtyColumns + ` FROM service_specialties
		WHERE is_active ORDER BY sort_order, name`)
	if err != nil {
		slog.Error("list active specialties failed", "error", err)
		return nil
	}
	return items
}

func (s *SpecialtyStore) list(query string) ([]models.ServiceSpecialty, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list specialties: %w", err)
	}
	defer rows.Close()

	var items []models.ServiceSpecialty
	for rows.Next() {
		sp, err := scanSpecialty(rows)
		if err != nil {
			return nil, fmt.Errorf("scan specialty: %w", err)
		}
		items = append(items, *sp)
	}
	return items, rows.Err()
}

// Create inserts a specialty with a slug derived from the name.
func (s *SpecialtyStore) Create(sp *models.ServiceSpecialty) (*models.ServiceSpecialty, error) {
	sp.Slug = slug.Make(sp.Name)

	row := s.db.QueryRow(`
		INSERT INTO service_specialties (name, slug, description, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+specialtyColumns,
		sp.Name, sp.Slug, sp.Description, sp.IsActive, sp.SortOrder,
	)
	result, err := scanSpecialty(row)
	if err != nil {
		return nil, fmt.Errorf("create specialty: %w", err)
	}
	return result, nil
}

// Update modifies a specialty, recomputing the slug from the new name.
func (s *SpecialtyStore) Update(sp *models.ServiceSpecialty) error {
	sp.Slug = slug.Make(sp.Name)

	_, err := s.db.Exec(`
		UPDATE service_specialties SET
			name = $1, slug = $2, description = $3, is_active = $4,
			sort_order = $5, updated_at = NOW()
		WHERE id = $6
	`, sp.Name, sp.Slug, sp.Description, sp.IsActive, sp.SortOrder, sp.ID)
	if err != nil {
		return fmt.Errorf("update specialty: %w", err)
	}
	return nil
}

// Delete removes a specialty by ID.
func (s *SpecialtyStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM service_specialties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete specialty: %w", err)
	}
	return nil
}
