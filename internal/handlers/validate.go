// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"carewell/internal/models"
)

// Validation limits for content and form fields.
const (
	maxTitleLen    = 300
	maxSlugLen     = 300
	maxBodyLen     = 100_000
	maxNameLen     = 200
	maxEmailLen    = 320
	maxPhoneLen    = 50
	maxMessageLen  = 10_000
	minPasswordLen = 12
)

// validateContent checks title/slug/body form inputs shared by services
// and blog posts, returning the first error found or "".
func validateContent(title, slug, body string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if utf8.RuneCountInString(slug) > maxSlugLen {
		return "Slug is too long (max 300 characters)."
	}
	if utf8.RuneCountInString(body) > maxBodyLen {
		return "Body is too long (max 100,000 characters)."
	}
	return ""
}

// validateService checks a service form beyond the shared content rules.
func validateService(svc *models.Service) string {
	if msg := validateContent(svc.Name, svc.Slug, svc.BodyMarkdown); msg != "" {
		return strings.Replace(msg, "Title", "Name", 1)
	}
	if utf8.RuneCountInString(svc.FeaturesRaw) > maxBodyLen {
		return "Features are too long (max 100,000 characters)."
	}
	return ""
}

// validateNewUser checks the add-user form.
func validateNewUser(email, password, displayName string) string {
	if displayName == "" {
		return "Name is required."
	}
	if !validEmail(email) {
		return "A valid email address is required."
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return "Password must be at least 12 characters."
	}
	return ""
}

// validateContact checks the public contact form.
func validateContact(c *models.ContactSubmission) string {
	if strings.TrimSpace(c.Name) == "" {
		return "Please tell us your name."
	}
	if utf8.RuneCountInString(c.Name) > maxNameLen {
		return "Name is too long."
	}
	if !validEmail(c.Email) {
		return "Please provide a valid email address."
	}
	if utf8.RuneCountInString(c.Phone) > maxPhoneLen {
		return "Phone number is too long."
	}
	if strings.TrimSpace(c.Message) == "" {
		return "Please include a message."
	}
	if utf8.RuneCountInString(c.Message) > maxMessageLen {
		return "Message is too long (max 10,000 characters)."
	}
	return ""
}

// validateInquiry checks the public care inquiry form.
func validateInquiry(q *models.InquirySubmission) string {
	if strings.TrimSpace(q.FullName) == "" {
		return "Please tell us your name."
	}
	if utf8.RuneCountInString(q.FullName) > maxNameLen {
		return "Name is too long."
	}
	if !validEmail(q.Email) {
		return "Please provide a valid email address."
	}
	if strings.TrimSpace(q.Phone) == "" {
		return "Please provide a phone number so we can reach you."
	}
	if utf8.RuneCountInString(q.Phone) > maxPhoneLen {
		return "Phone number is too long."
	}
	if utf8.RuneCountInString(q.Reason) > maxMessageLen {
		return "Details are too long (max 10,000 characters)."
	}
	return ""
}

// validEmail reports whether the address parses as a single RFC 5322 address.
func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" || utf8.RuneCountInString(email) > maxEmailLen {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
