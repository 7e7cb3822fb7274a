// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Media records an image uploaded through the admin panel and stored in the
// public object storage bucket. Entity records reference media by URL, not
// by ID, so deleting a media row never cascades into content.
type Media struct {
	ID           uuid.UUID `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	ContentType  string    `json:"content_type"`
	SizeBytes    int64     `json:"size_bytes"`
	StorageKey   string    `json:"storage_key"`
	ThumbKey     *string   `json:"thumb_key,omitempty"`
	UploaderID   uuid.UUID `json:"uploader_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// HumanSize formats SizeBytes for display (e.g. "1.2 MB").
func (m *Media) HumanSize() string {
	const unit = 1024
	if m.SizeBytes < unit {
		return fmt.Sprintf("%d B", m.SizeBytes)
	}
	div, exp := int64(unit), 0
	for n := m.SizeBytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(m.SizeBytes)/float64(div), "KMGTPE"[exp])
}
