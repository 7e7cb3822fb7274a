// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"carewell/internal/models"
	"carewell/internal/slug"
)

// BlogPostStore handles all blog-related database operations.
type BlogPostStore struct {
	db *sql.DB
}

// NewBlogPostStore creates a new BlogPostStore with the given database connection.
func NewBlogPostStore(db *sql.DB) *BlogPostStore {
	return &BlogPostStore{db: db}
}

const blogColumns = `id, title, slug, excerpt, body_markdown, hero_image_url,
       seo_title, seo_description, status, published_at, created_at, updated_at`

// scanBlogPost scans a row into a BlogPost struct.
func scanBlogPost(scanner interface{ Scan(...any) error }) (*models.BlogPost, error) {
	var p models.BlogPost
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.BodyMarkdown, &p.HeroImageURL,
		&p.SEOTitle, &p.SEODescription, &p.Status, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// stampPublished sets published_at when a post transitions to published
// without an explicit date. Reverting to draft leaves published_at untouched
// so publication history is preserved.
func stampPublished(p *models.BlogPost) {
	if p.Status == models.PostStatusPublished && p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}
}

// List returns every post for the admin list, newest first.
func (s *BlogPostStore) List() ([]models.BlogPost, error) {
	rows, err := s.db.Query(`SELECT ` + blogColumns + ` FROM blog_posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()
	return collectBlogPosts(rows)
}

// ListPublished returns publicly visible posts, most recently published
// first. A query failure is logged and returns an empty slice so the public
// blog keeps rendering.
func (s *BlogPostStore) ListPublished() []models.BlogPost {
	rows, err := s.db.Query(`
		SELECT ` + blogColumns + `
		FROM blog_posts
		WHERE status = 'published' AND published_at IS NOT NULL
		ORDER BY published_at DESC
	`)
	if err != nil {
		slog.Error("list published posts failed", "error", err)
		return nil
	}
	defer rows.Close()

	items, err := collectBlogPosts(rows)
	if err != nil {
		slog.Error("list published posts failed", "error", err)
		return nil
	}
	return items
}

func collectBlogPosts(rows *sql.Rows) ([]models.BlogPost, error) {
	var items []models.BlogPost
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan blog post: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a post by its UUID. Returns nil if not found.
func (s *BlogPostStore) FindByID(id uuid.UUID) (*models.BlogPost, error) {
	row := s.db.QueryRow(`SELECT `+blogColumns+` FROM blog_posts WHERE id = $1`, id)
	p, err := scanBlogPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find blog post by id: %w", err)
	}
	return p, nil
}

// FindPublishedBySlug retrieves a publicly visible post by its slug.
// Returns nil if not found or not published.
func (s *BlogPostStore) FindPublishedBySlug(postSlug string) (*models.BlogPost, error) {
	row := s.db.QueryRow(`
		SELECT `+blogColumns+`
		FROM blog_posts
		WHERE slug = $1 AND status = 'published' AND published_at IS NOT NULL
	`, postSlug)
	p, err := scanBlogPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find blog post by slug: %w", err)
	}
	return p, nil
}

// Create inserts a new post and returns it with the generated ID. An empty
// slug is derived from the title; publishing without a date stamps now.
func (s *BlogPostStore) Create(p *models.BlogPost) (*models.BlogPost, error) {
	if p.Slug == "" {
		p.Slug = slug.Make(p.Title)
	}
	stampPublished(p)

	row := s.db.QueryRow(`
		INSERT INTO blog_posts (title, slug, excerpt, body_markdown, hero_image_url,
		                        seo_title, seo_description, status, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+blogColumns,
		p.Title, p.Slug, p.Excerpt, p.BodyMarkdown, p.HeroImageURL,
		p.SEOTitle, p.SEODescription, p.Status, p.PublishedAt,
	)
	result, err := scanBlogPost(row)
	if err != nil {
		return nil, fmt.Errorf("create blog post: %w", err)
	}
	return result, nil
}

// Update modifies an existing post, stamping published_at on the transition
// to published when no date was supplied.
func (s *BlogPostStore) Update(p *models.BlogPost) error {
	if p.Slug == "" {
		p.Slug = slug.Make(p.Title)
	}
	stampPublished(p)

	_, err := s.db.Exec(`
		UPDATE blog_posts SET
			title = $1, slug = $2, excerpt = $3, body_markdown = $4,
			hero_image_url = $5, seo_title = $6, seo_description = $7,
			status = $8, published_at = $9, updated_at = NOW()
		WHERE id = $10
	`, p.Title, p.Slug, p.Excerpt, p.BodyMarkdown,
		p.HeroImageURL, p.SEOTitle, p.SEODescription,
		p.Status, p.PublishedAt, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update blog post: %w", err)
	}
	return nil
}

// Delete removes a post by ID.
func (s *BlogPostStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog post: %w", err)
	}
	return nil
}

// Count returns the number of posts.
func (s *BlogPostStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM blog_posts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count blog posts: %w", err)
	}
	return count, nil
}
