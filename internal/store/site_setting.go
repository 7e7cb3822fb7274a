// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"carewell/internal/defaults"
	"carewell/internal/models"
)

// whyChooseUsKey is the settings key holding the homepage why-choose-us
// section as a JSON document.
const whyChooseUsKey = "why_choose_us"

// SiteSettingStore manages JSON-valued site configuration keys.
// One row per key, upserted on write.
type SiteSettingStore struct {
	db *sql.DB
}

// NewSiteSettingStore returns a new SiteSettingStore backed by the given database.
func NewSiteSettingStore(db *sql.DB) *SiteSettingStore {
	return &SiteSettingStore{db: db}
}

// Get returns the raw JSON value for a key, or the fallback if the key is
// missing or empty.
func (s *SiteSettingStore) Get(key, fallback string) (string, error) {
	var val string
	err := s.db.QueryRow(`SELECT value_json FROM site_settings WHERE key = $1`, key).Scan(&val)
	if err == sql.ErrNoRows {
		return fallback, nil
	}
	if err != nil {
		return fallback, fmt.Errorf("get setting %q: %w", key, err)
	}
	if val == "" {
		return fallback, nil
	}
	return val, nil
}

// Set upserts a single setting. Creates the row if it doesn't exist.
func (s *SiteSettingStore) Set(key, valueJSON string) error {
	_, err := s.db.Exec(`
		INSERT INTO site_settings (key, value_json, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key)
		DO UPDATE SET value_json = EXCLUDED.value_json, updated_at = EXCLUDED.updated_at`,
		key, valueJSON, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

// All returns every setting keyed by name.
func (s *SiteSettingStore) All() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT key, value_json FROM site_settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		settings[k] = v
	}
	return settings, rows.Err()
}

// WhyChooseUs returns the homepage why-choose-us section. Any failure —
// missing key, bad JSON, unreachable store — logs and falls back to the
// shared defaults so the homepage keeps rendering.
func (s *SiteSettingStore) WhyChooseUs() models.WhyChooseUs {
	raw, err := s.Get(whyChooseUsKey, "")
	if err != nil {
		slog.Error("load why-choose-us failed, using defaults", "error", err)
		return defaults.WhyChooseUs()
	}
	if raw == "" {
		return defaults.WhyChooseUs()
	}

	var w models.WhyChooseUs
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		slog.Error("decode why-choose-us failed, using defaults", "error", err)
		return defaults.WhyChooseUs()
	}
	return w
}

// SetWhyChooseUs stores the why-choose-us section as JSON.
func (s *SiteSettingStore) SetWhyChooseUs(w models.WhyChooseUs) error {
	b, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("encode why-choose-us: %w", err)
	}
	return s.Set(whyChooseUsKey, string(b))
}
