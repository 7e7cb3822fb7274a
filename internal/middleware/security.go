// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import "net/http"

// SecureHeaders sets baseline hardening headers on every response, public
// site and admin panel alike.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		// Never let the browser second-guess the Content-Type.
		h.Set("X-Content-Type-Options", "nosniff")

		// The admin panel must not be frameable from other origins.
		h.Set("X-Frame-Options", "SAMEORIGIN")

		// The legacy XSS filter does more harm than good.
		h.Set("X-XSS-Protection", "0")

		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "interest-cohort=()")

		next.ServeHTTP(w, r)
	})
}
