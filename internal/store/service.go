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

// ServiceStore handles all service-related database operations.
type ServiceStore struct {
	db *sql.DB
}

// NewServiceStore creates a new ServiceStore with the given database connection.
func NewServiceStore(db *sql.DB) *ServiceStore {
	return &ServiceStore{db: db}
}

const serviceColumns = `id, slug, name, short_description, category, hero_image_url,
       body_markdown, audience_markdown, features_markdown, created_at, updated_at`

// scanService scans a row into a Service struct.
func scanService(scanner interface{ Scan(...any) error }) (*models.Service, error) {
	var v models.Service
	err := scanner.Scan(
		&v.ID, &v.Slug, &v.Name, &v.ShortDescription, &v.Category, &v.HeroImageURL,
		&v.BodyMarkdown, &v.AudienceMarkdown, &v.FeaturesRaw, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// List returns all services ordered by name. A query failure is logged and
// returns an empty slice so public pages keep rendering.
func (s *ServiceStore) List() []models.Service {
	rows, err := s.db.Query(`SELECT ` + serviceColumns + ` FROM services ORDER BY name`)
	if err != nil {
		slog.Error("list services failed", "error", err)
		return nil
	}
	defer rows.Close()

	var items []models.Service
	for rows.Next() {
		v, err := scanService(rows)
		if err != nil {
			slog.Error("scan service failed", "error", err)
			return nil
		}
		items = append(items, *v)
	}
	if err := rows.Err(); err != nil {
		slog.Error("list services failed", "error", err)
		return nil
	}
	return items
}

// FindByID retrieves a service by its UUID. Returns nil if not found.
// Admin-only read path — errors propagate.
func (s *ServiceStore) FindByID(id uuid.UUID) (*models.Service, error) {
	row := s.db.QueryRow(`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id)
	v, err := scanService(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find service by id: %w", err)
	}
	return v, nil
}

// FindBySlug retrieves a service by its slug for public detail pages.
// Returns nil if not found.
func (s *ServiceStore) FindBySlug(serviceSlug string) (*models.Service, error) {
	row := s.db.QueryRow(`SELECT `+serviceColumns+` FROM services WHERE slug = $1`, serviceSlug)
	v, err := scanService(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find service by slug: %w", err)
	}
	return v, nil
}

// Create inserts a new service and returns it with the generated ID.
// An empty slug is derived from the name.
func (s *ServiceStore) Create(v *models.Service) (*models.Service, error) {
	if v.Slug == "" {
		v.Slug = slug.Make(v.Name)
	}

	row := s.db.QueryRow(`
		INSERT INTO services (slug, name, short_description, category, hero_image_url,
		                      body_markdown, audience_markdown, features_markdown)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+serviceColumns,
		v.Slug, v.Name, v.ShortDescription, v.Category, v.HeroImageURL,
		v.BodyMarkdown, v.AudienceMarkdown, v.FeaturesRaw,
	)
	result, err := scanService(row)
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return result, nil
}

// Update modifies an existing service. An empty slug is derived from the name.
func (s *ServiceStore) Update(v *models.Service) error {
	if v.Slug == "" {
		v.Slug = slug.Make(v.Name)
	}

	_, err := s.db.Exec(`
		UPDATE services SET
			slug = $1, name = $2, short_description = $3, category = $4,
			hero_image_url = $5, body_markdown = $6, audience_markdown = $7,
			features_markdown = $8, updated_at = NOW()
		WHERE id = $9
	`, v.Slug, v.Name, v.ShortDescription, v.Category,
		v.HeroImageURL, v.BodyMarkdown, v.AudienceMarkdown,
		v.FeaturesRaw, v.ID,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// Delete removes a service by ID. Hard delete, no undo.
func (s *ServiceStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

// Count returns the number of services.
func (s *ServiceStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM services`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count services: %w", err)
	}
	return count, nil
}
