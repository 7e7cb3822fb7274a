// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service represents a care service offered on the public site.
type Service struct {
	ID               uuid.UUID `json:"id"`
	Slug             string    `json:"slug"`
	Name             string    `json:"name"`
	ShortDescription string    `json:"short_description"`
	Category         string    `json:"category"`
	HeroImageURL     string    `json:"hero_image_url"`
	BodyMarkdown     string    `json:"body_markdown"`
	AudienceMarkdown string    `json:"audience_markdown"`
	// FeaturesRaw holds the legacy features column: either plain markdown or
	// a JSON-encoded array of core tasks. Use Features() for the decoded form.
	FeaturesRaw string    `json:"features_markdown"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FeaturesKind tags the two encodings the legacy features column can hold.
type FeaturesKind string

const (
	FeaturesLegacyMarkdown  FeaturesKind = "legacy_markdown"
	FeaturesStructuredTasks FeaturesKind = "structured_tasks"
)

// CoreTask is a structured work item included in a service.
type CoreTask struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ServiceFeatures is the decoded form of the legacy features column.
// Exactly one of Markdown or Tasks is meaningful, selected by Kind.
type ServiceFeatures struct {
	Kind     FeaturesKind `json:"kind"`
	Markdown string       `json:"markdown,omitempty"`
	Tasks    []CoreTask   `json:"tasks,omitempty"`
}

// ParseFeatures decodes the legacy column. A value starting with '[' is the
// JSON core-task encoding; anything else is treated as markdown. A JSON-ish
// value that fails to decode falls back to markdown rather than erroring,
// matching how the column has always been read.
func ParseFeatures(raw string) ServiceFeatures {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") {
		var tasks []CoreTask
		if err := json.Unmarshal([]byte(trimmed), &tasks); err == nil {
			return ServiceFeatures{Kind: FeaturesStructuredTasks, Tasks: tasks}
		}
	}
	return ServiceFeatures{Kind: FeaturesLegacyMarkdown, Markdown: raw}
}

// Encode returns the column representation of the features value.
func (f ServiceFeatures) Encode() (string, error) {
	if f.Kind == FeaturesStructuredTasks {
		b, err := json.Marshal(f.Tasks)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return f.Markdown, nil
}

// Features decodes the legacy features column into its tagged form.
func (s *Service) Features() ServiceFeatures {
	return ParseFeatures(s.FeaturesRaw)
}
