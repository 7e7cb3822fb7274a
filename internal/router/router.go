// Package router sets up all HTTP routes and middleware chains for the
// CareWell site. It organizes routes into public and admin groups with
// appropriate middleware stacks.
package router

import (
	"github.com/go-chi/chi/v5"

	"carewell/internal/handlers"
	"carewell/internal/middleware"
	"carewell/internal/session"
)

// Options configures router construction.
type Options struct {
	// SecureCookies controls the Secure flag on the CSRF cookie. Off in
	// development, on everywhere else.
	SecureCookies bool

	// FormLimiter rate-limits the public form POST endpoints. Optional.
	FormLimiter *middleware.RateLimiter
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, admin *handlers.Admin, auth *handlers.Auth, public *handlers.Public, opts Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check: no auth, no CSRF.
	r.Get("/health", public.Health)

	// Admin routes: CSRF-protected, mostly behind auth + 2FA.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.NewCSRF(opts.SecureCookies))

		// Auth pages, accessible without a session.
		r.Get("/login", auth.LoginPage)
		r.Post("/login", auth.LoginSubmit)
		r.Post("/logout", auth.Logout)

		// 2FA: requires auth but NOT completed 2FA.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/2fa/setup", auth.TwoFASetupPage)
			r.Get("/2fa/verify", auth.TwoFAVerifyPage)
			r.Post("/2fa/verify", auth.TwoFAVerifySubmit)
		})

		// Authenticated + 2FA-verified admin area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			r.Get("/", admin.Dashboard)
			r.Get("/dashboard", admin.Dashboard)

			// Services
			r.Route("/services", func(r chi.Router) {
				r.Get("/", admin.ServicesPage)
				r.Get("/new", admin.ServiceNewPage)
				r.Post("/", admin.ServiceCreate)
				r.Get("/{id}", admin.ServiceEditPage)
				r.Post("/{id}", admin.ServiceUpdate)
				r.Post("/{id}/delete", admin.ServiceDelete)
			})

			// Blog
			r.Route("/blog", func(r chi.Router) {
				r.Get("/", admin.BlogPage)
				r.Get("/new", admin.BlogNewPage)
				r.Post("/", admin.BlogCreate)
				r.Get("/{id}", admin.BlogEditPage)
				r.Post("/{id}", admin.BlogUpdate)
				r.Post("/{id}/delete", admin.BlogDelete)
			})

			// Taxonomy
			r.Route("/categories", func(r chi.Router) {
				r.Get("/", admin.CategoriesPage)
				r.Post("/", admin.CategoryCreate)
				r.Post("/{id}/delete", admin.CategoryDelete)
			})
			r.Route("/specialties", func(r chi.Router) {
				r.Get("/", admin.SpecialtiesPage)
				r.Post("/", admin.SpecialtyCreate)
				r.Post("/header", admin.SpecialtiesHeaderSubmit)
				r.Post("/{id}/delete", admin.SpecialtyDelete)
			})

			// People
			r.Route("/staff", func(r chi.Router) {
				r.Get("/", admin.StaffPage)
				r.Get("/new", admin.StaffNewPage)
				r.Post("/", admin.StaffCreate)
				r.Get("/{id}", admin.StaffEditPage)
				r.Post("/{id}", admin.StaffUpdate)
				r.Post("/{id}/delete", admin.StaffDelete)
			})
			r.Route("/testimonials", func(r chi.Router) {
				r.Get("/", admin.TestimonialsPage)
				r.Get("/new", admin.TestimonialNewPage)
				r.Post("/", admin.TestimonialCreate)
				r.Get("/{id}", admin.TestimonialEditPage)
				r.Post("/{id}", admin.TestimonialUpdate)
				r.Post("/{id}/delete", admin.TestimonialDelete)
			})

			// Homepage sections and settings
			r.Get("/hero", admin.HeroPage)
			r.Post("/hero", admin.HeroSubmit)
			r.Get("/why-choose-us", admin.WhyChooseUsPage)
			r.Post("/why-choose-us", admin.WhyChooseUsSubmit)
			r.Get("/settings", admin.SettingsPage)
			r.Post("/settings", admin.SettingsSubmit)

			// Submission triage
			r.Route("/submissions", func(r chi.Router) {
				r.Get("/", admin.SubmissionsPage)
				r.Get("/export", admin.SubmissionsExport)
				r.Post("/{id}/status", admin.SubmissionStatusSubmit)
				r.Post("/{id}/delete", admin.SubmissionDelete)
			})

			// Media library
			r.Route("/media", func(r chi.Router) {
				r.Get("/", admin.MediaPage)
				r.Post("/upload", admin.MediaUpload)
				r.Post("/{id}/delete", admin.MediaDelete)
			})

			// User management, admin role only
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", admin.UsersPage)
				r.Post("/", admin.UserCreate)
				r.Post("/{id}/reset-2fa", admin.UserReset2FA)
			})
		})
	})

	// Public routes.
	r.Get("/", public.Homepage)
	r.Get("/about", public.AboutPage)
	r.Get("/services", public.ServicesPage)
	r.Get("/services/{slug}", public.ServicePage)
	r.Get("/blog", public.BlogPage)
	r.Get("/blog/{slug}", public.PostPage)
	r.Get("/contact", public.ContactPage)
	r.Get("/inquiry", public.InquiryPage)

	// Form submissions are rate limited per client IP when a limiter is
	// configured.
	r.Group(func(r chi.Router) {
		if opts.FormLimiter != nil {
			r.Use(opts.FormLimiter.Middleware)
		}
		r.Post("/contact", public.ContactSubmit)
		r.Post("/inquiry", public.InquirySubmit)
	})

	return r
}
