// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// singleton.go holds the stores for single-row tables (home hero,
// specialties header). Updates look up the existing row's id and update it
// in place; a row is inserted only when the table is empty, so two
// consecutive updates can never produce two rows.
package store

import (
	"database/sql"
	"fmt"
	"log/slog"

	"carewell/internal/defaults"
	"carewell/internal/models"
)

// HeroStore manages the singleton home hero record.
type HeroStore struct {
	db *sql.DB
}

// NewHeroStore returns a new HeroStore.
func NewHeroStore(db *sql.DB) *HeroStore {
	return &HeroStore{db: db}
}

const heroColumns = `id, badge, title, subtitle, description, image_url,
       primary_cta_text, primary_cta_url, primary_cta_enabled,
       secondary_cta_text, secondary_cta_url, secondary_cta_enabled, updated_at`

func scanHero(scanner interface{ Scan(...any) error }) (*models.HomeHeroSettings, error) {
	var h models.HomeHeroSettings
	err := scanner.Scan(
		&h.ID, &h.Badge, &h.Title, &h.Subtitle, &h.Description, &h.ImageURL,
		&h.PrimaryCTA.Text, &h.PrimaryCTA.URL, &h.PrimaryCTA.Enabled,
		&h.SecondaryCTA.Text, &h.SecondaryCTA.URL, &h.SecondaryCTA.Enabled,
		&h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Get fetches the hero row. Returns nil if the table is empty.
func (s *HeroStore) Get() (*models.HomeHeroSettings, error) {
	row := s.db.QueryRow(`SELECT ` + heroColumns + ` FROM home_hero_settings ORDER BY id LIMIT 1`)
	h, err := scanHero(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get home hero: %w", err)
	}
	return h, nil
}

// GetOrDefault never fails: a missing row or unreachable store logs and
// returns the shared fallback record so the homepage keeps rendering.
func (s *HeroStore) GetOrDefault() models.HomeHeroSettings {
	h, err := s.Get()
	if err != nil {
		slog.Error("load home hero failed, using defaults", "error", err)
		return defaults.HomeHero()
	}
	if h == nil {
		return defaults.HomeHero()
	}
	return *h
}

// Update writes the hero settings into the existing row, inserting one only
// when the table is empty.
func (s *HeroStore) Update(h models.HomeHeroSettings) error {
	existing, err := s.Get()
	if err != nil {
		return err
	}

	if existing == nil {
		_, err := s.db.Exec(`
			INSERT INTO home_hero_settings (badge, title, subtitle, description, image_url,
				primary_cta_text, primary_cta_url, primary_cta_enabled,
				secondary_cta_text, secondary_cta_url, secondary_cta_enabled)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, h.Badge, h.Title, h.Subtitle, h.Description, h.ImageURL,
			h.PrimaryCTA.Text, h.PrimaryCTA.URL, h.PrimaryCTA.Enabled,
			h.SecondaryCTA.Text, h.SecondaryCTA.URL, h.SecondaryCTA.Enabled,
		)
		if err != nil {
			return fmt.Errorf("insert home hero: %w", err)
		}
		return nil
	}

	_, err = s.db.Exec(`
		UPDATE home_hero_settings SET
			badge = $1, title = $2, subtitle = $3, description = $4, image_url = $5,
			primary_cta_text = $6, primary_cta_url = $7, primary_cta_enabled = $8,
			secondary_cta_text = $9, secondary_cta_url = $10, secondary_cta_enabled = $11,
			updated_at = NOW()
		WHERE id = $12
	`, h.Badge, h.Title, h.Subtitle, h.Description, h.ImageURL,
		h.PrimaryCTA.Text, h.PrimaryCTA.URL, h.PrimaryCTA.Enabled,
		h.SecondaryCTA.Text, h.SecondaryCTA.URL, h.SecondaryCTA.Enabled,
		existing.ID,
	)
	if err != nil {
		return fmt.Errorf("update home hero: %w", err)
	}
	return nil
}

// SpecialtiesHeaderStore manages the singleton specialties header.
type SpecialtiesHeaderStore struct {
	db *sql.DB
}

// NewSpecialtiesHeaderStore returns a new SpecialtiesHeaderStore.
func NewSpecialtiesHeaderStore(db *sql.DB) *SpecialtiesHeaderStore {
	return &SpecialtiesHeaderStore{db: db}
}

// Get fetches the header row. Returns nil if the table is empty.
func (s *SpecialtiesHeaderStore) Get() (*models.SpecialtiesHeader, error) {
	var h models.SpecialtiesHeader
	err := s.db.QueryRow(`
		SELECT id, title, description, updated_at
		FROM specialties_header ORDER BY id LIMIT 1
	`).Scan(&h.ID, &h.Title, &h.Description, &h.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get specialties header: %w", err)
	}
	return &h, nil
}

// GetOrDefault never fails; see HeroStore.GetOrDefault.
func (s *SpecialtiesHeaderStore) GetOrDefault() models.SpecialtiesHeader {
	h, err := s.Get()
	if err != nil {
		slog.Error("load specialties header failed, using defaults", "error", err)
		return defaults.SpecialtiesHeader()
	}
	if h == nil {
		return defaults.SpecialtiesHeader()
	}
	return *h
}

// Update writes the header into the existing row, inserting one only when
// the table is empty.
func (s *SpecialtiesHeaderStore) Update(h models.SpecialtiesHeader) error {
	existing, err := s.Get()
	if err != nil {
		return err
	}

	if existing == nil {
		_, err := s.db.Exec(`
			INSERT INTO specialties_header (title, description) VALUES ($1, $2)
		`, h.Title, h.Description)
		if err != nil {
			return fmt.Errorf("insert specialties header: %w", err)
		}
		return nil
	}

	_, err = s.db.Exec(`
		UPDATE specialties_header SET title = $1, description = $2, updated_at = NOW()
		WHERE id = $3
	`, h.Title, h.Description, existing.ID)
	if err != nil {
		return fmt.Errorf("update specialties header: %w", err)
	}
	return nil
}
