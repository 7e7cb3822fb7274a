// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"carewell/internal/models"
	"carewell/internal/render"
)

// UsersPage lists all panel users. Reachable only by admins.
func (a *Admin) UsersPage(w http.ResponseWriter, r *http.Request) {
	users, err := a.users.List()
	if err != nil {
		slog.Error("list users failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.renderer.Page(w, r, "users", &render.PageData{
		Title:   "Users",
		Section: "users",
		Data:    map[string]any{"users": users},
	})
}

// UserCreate adds a new panel user. The new user gets TOTP disabled and is
// forced through 2FA enrollment on first login.
func (a *Admin) UserCreate(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	displayName := strings.TrimSpace(r.FormValue("display_name"))

	if msg := validateNewUser(email, password, displayName); msg != "" {
		users, _ := a.users.List()
		a.renderer.Page(w, r, "users", &render.PageData{
			Title:   "Users",
			Section: "users",
			Flashes: []render.Flash{{Type: "error", Message: msg}},
			Data:    map[string]any{"users": users},
		})
		return
	}

	role := models.RoleEditor
	if r.FormValue("role") == string(models.RoleAdmin) {
		role = models.RoleAdmin
	}

	if _, err := a.users.Create(email, password, displayName, role); err != nil {
		slog.Error("create user failed", "error", err)
		users, _ := a.users.List()
		a.renderer.Page(w, r, "users", &render.PageData{
			Title:   "Users",
			Section: "users",
			Flashes: []render.Flash{{Type: "error", Message: "Could not create user. Is the email already taken?"}},
			Data:    map[string]any{"users": users},
		})
		return
	}

	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

// UserReset2FA clears a user's TOTP enrollment so they re-enroll on next login.
func (a *Admin) UserReset2FA(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := a.users.ResetTOTP(id); err != nil {
		slog.Error("reset totp failed", "user_id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.UsersPage(w, r)
}
