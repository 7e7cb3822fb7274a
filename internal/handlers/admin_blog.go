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

	"carewell/internal/cache"
	"carewell/internal/models"
	"carewell/internal/render"
)

// BlogPage lists all posts, drafts included, for the admin panel.
func (a *Admin) BlogPage(w http.ResponseWriter, r *http.Request) {
	posts, err := a.posts.List()
	if err != nil {
		slog.Error("list posts failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.renderer.Page(w, r, "blog", &render.PageData{
		Title:   "Blog",
		Section: "blog",
		Data:    map[string]any{"posts": posts},
	})
}

// BlogNewPage renders an empty post form.
func (a *Admin) BlogNewPage(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "blog_form", &render.PageData{
		Title:   "New Post",
		Section: "blog",
		Data: map[string]any{
			"post":   &models.BlogPost{Status: models.PostStatusDraft},
			"action": "/admin/blog",
		},
	})
}

// BlogEditPage renders the edit form for an existing post.
func (a *Admin) BlogEditPage(w http.ResponseWriter, r *http.Request) {
	post := a.findPost(w, r)
	if post == nil {
		return
	}

	a.renderer.Page(w, r, "blog_form", &render.PageData{
		Title:   "Edit Post",
		Section: "blog",
		Data: map[string]any{
			"post":   post,
			"action": "/admin/blog/" + post.ID.String(),
		},
	})
}

// BlogCreate inserts a new post. Publishing on create stamps PublishedAt.
func (a *Admin) BlogCreate(w http.ResponseWriter, r *http.Request) {
	post := &models.BlogPost{}
	fillPostForm(post, r)

	if msg := validateContent(post.Title, post.Slug, post.BodyMarkdown); msg != "" {
		a.postFormError(w, r, post, "/admin/blog", msg)
		return
	}

	created, err := a.posts.Create(post)
	if err != nil {
		slog.Error("create post failed", "error", err)
		a.postFormError(w, r, post, "/admin/blog", "Could not save the post. Is the slug already in use?")
		return
	}

	a.invalidate(r.Context(), cache.EntityBlogPost, created.Slug)
	http.Redirect(w, r, "/admin/blog", http.StatusSeeOther)
}

// BlogUpdate saves changes to an existing post. The first transition to
// published stamps PublishedAt; later edits and status flips keep the
// original stamp.
func (a *Admin) BlogUpdate(w http.ResponseWriter, r *http.Request) {
	post := a.findPost(w, r)
	if post == nil {
		return
	}

	oldSlug := post.Slug
	fillPostForm(post, r)

	if msg := validateContent(post.Title, post.Slug, post.BodyMarkdown); msg != "" {
		a.postFormError(w, r, post, "/admin/blog/"+post.ID.String(), msg)
		return
	}

	if err := a.posts.Update(post); err != nil {
		slog.Error("update post failed", "id", post.ID, "error", err)
		a.postFormError(w, r, post, "/admin/blog/"+post.ID.String(), "Could not save the post. Is the slug already in use?")
		return
	}

	a.invalidate(r.Context(), cache.EntityBlogPost, oldSlug)
	if post.Slug != oldSlug {
		a.invalidate(r.Context(), cache.EntityBlogPost, post.Slug)
	}
	http.Redirect(w, r, "/admin/blog", http.StatusSeeOther)
}

// BlogDelete removes a post and re-renders the list.
func (a *Admin) BlogDelete(w http.ResponseWriter, r *http.Request) {
	post := a.findPost(w, r)
	if post == nil {
		return
	}

	if err := a.posts.Delete(post.ID); err != nil {
		slog.Error("delete post failed", "id", post.ID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.invalidate(r.Context(), cache.EntityBlogPost, post.Slug)
	a.BlogPage(w, r)
}

func fillPostForm(post *models.BlogPost, r *http.Request) {
	post.Title = strings.TrimSpace(r.FormValue("title"))
	post.Slug = strings.TrimSpace(r.FormValue("slug"))
	post.Excerpt = strings.TrimSpace(r.FormValue("excerpt"))
	post.HeroImageURL = strings.TrimSpace(r.FormValue("hero_image_url"))
	post.BodyMarkdown = r.FormValue("body_markdown")
	post.SEOTitle = strings.TrimSpace(r.FormValue("seo_title"))
	post.SEODescription = strings.TrimSpace(r.FormValue("seo_description"))

	if r.FormValue("status") == string(models.PostStatusPublished) {
		post.Status = models.PostStatusPublished
	} else {
		post.Status = models.PostStatusDraft
	}
}

func (a *Admin) postFormError(w http.ResponseWriter, r *http.Request, post *models.BlogPost, action, msg string) {
	a.renderer.Page(w, r, "blog_form", &render.PageData{
		Title:   "Post",
		Section: "blog",
		Flashes: []render.Flash{{Type: "error", Message: msg}},
		Data: map[string]any{
			"post":   post,
			"action": action,
		},
	})
}

func (a *Admin) findPost(w http.ResponseWriter, r *http.Request) *models.BlogPost {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return nil
	}

	post, err := a.posts.FindByID(id)
	if err != nil {
		slog.Error("find post failed", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil
	}
	if post == nil {
		http.NotFound(w, r)
		return nil
	}
	return post
}
