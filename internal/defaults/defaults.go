// Package defaults is the single source of fallback content for singleton
// records. Public pages render these values whenever the database row is
// missing or unreachable, so the site never renders empty sections.
package defaults

import "carewell/internal/models"

// HomeHero returns the hard-coded fallback for the homepage hero section.
// Every field is a non-empty string or explicit boolean.
func HomeHero() models.HomeHeroSettings {
	return models.HomeHeroSettings{
		Badge:       "Trusted Home Care",
		Title:       "Compassionate care, right at home",
		Subtitle:    "Professional caregivers for your loved ones",
		Description: "We provide personal care, companionship, and specialized support so your family members can live safely and comfortably in their own homes.",
		ImageURL:    "/static/img/hero-default.jpg",
		PrimaryCTA: models.CTAButton{
			Text:    "Request Care",
			URL:     "/inquiry",
			Enabled: true,
		},
		SecondaryCTA: models.CTAButton{
			Text:    "Our Services",
			URL:     "/services",
			Enabled: true,
		},
	}
}

// SpecialtiesHeader returns the fallback heading above the specialties list.
func SpecialtiesHeader() models.SpecialtiesHeader {
	return models.SpecialtiesHeader{
		Title:       "Specialized Care Programs",
		Description: "Focused support for specific conditions, delivered by caregivers trained for them.",
	}
}

// WhyChooseUs returns the fallback why-choose-us section.
func WhyChooseUs() models.WhyChooseUs {
	return models.WhyChooseUs{
		Title:    "Why Families Choose Us",
		Subtitle: "Care built around your loved one, not around a schedule.",
		Items: []models.WhyChooseUsItem{
			{Title: "Vetted caregivers", Description: "Every caregiver is background-checked, insured, and trained."},
			{Title: "Flexible hours", Description: "From a few hours a week to 24/7 live-in support."},
			{Title: "Care plans that adapt", Description: "Plans are reviewed with your family as needs change."},
		},
	}
}
