// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// SiteSetting is a single configuration key with a JSON-encoded value.
// One row per key.
type SiteSetting struct {
	Key       string    `json:"key"`
	ValueJSON string    `json:"value_json"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CTAButton is a call-to-action button on the home hero.
type CTAButton struct {
	Text    string `json:"text"`
	URL     string `json:"url"`
	Enabled bool   `json:"enabled"`
}

// HomeHeroSettings is the singleton record behind the homepage hero section.
// Exactly one row exists; updates always target that row's id.
type HomeHeroSettings struct {
	ID           int64     `json:"id"`
	Badge        string    `json:"badge"`
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	PrimaryCTA   CTAButton `json:"primary_cta"`
	SecondaryCTA CTAButton `json:"secondary_cta"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SpecialtiesHeader is the singleton title/description pair shown above the
// specialties list.
type SpecialtiesHeader struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WhyChooseUsItem is one reason card in the why-choose-us section.
type WhyChooseUsItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// WhyChooseUs is the homepage why-choose-us section, stored as a JSON site
// setting rather than its own table.
type WhyChooseUs struct {
	Title    string            `json:"title"`
	Subtitle string            `json:"subtitle"`
	Items    []WhyChooseUsItem `json:"items"`
}
