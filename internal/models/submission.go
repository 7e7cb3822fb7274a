// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionStatus is the triage state of a form submission. Submissions are
// created as "new" by the public forms and only admins move them forward.
type SubmissionStatus string

const (
	SubmissionNew       SubmissionStatus = "new"
	SubmissionContacted SubmissionStatus = "contacted"
	SubmissionClosed    SubmissionStatus = "closed"
)

// ValidSubmissionStatus reports whether s is one of the known triage states.
func ValidSubmissionStatus(s SubmissionStatus) bool {
	return s == SubmissionNew || s == SubmissionContacted || s == SubmissionClosed
}

// ContactSubmission is a message from the public contact form.
type ContactSubmission struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Email         string           `json:"email"`
	Phone         string           `json:"phone"`
	PreferredTime string           `json:"preferred_time"`
	ServiceType   string           `json:"service_type"`
	Message       string           `json:"message"`
	Status        SubmissionStatus `json:"status"`
	SubmittedAt   time.Time        `json:"submitted_at"`
}

// InquirySubmission is a care inquiry from the public inquiry form.
type InquirySubmission struct {
	ID            uuid.UUID        `json:"id"`
	FullName      string           `json:"full_name"`
	Email         string           `json:"email"`
	Phone         string           `json:"phone"`
	Address       string           `json:"address"`
	CareFor       string           `json:"care_for"`
	StartDate     string           `json:"start_date"`
	Reason        string           `json:"reason"`
	HoursPerWeek  string           `json:"hours_per_week"`
	Referrer      string           `json:"referrer"`
	CanAfford     string           `json:"can_afford"`
	ServiceOption string           `json:"service_option"`
	Status        SubmissionStatus `json:"status"`
	SubmittedAt   time.Time        `json:"submitted_at"`
}
