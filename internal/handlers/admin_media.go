// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder

	"carewell/internal/middleware"
	"carewell/internal/models"
	"carewell/internal/render"
)

const (
	// maxUploadSize is the limit for regular image uploads (5 MB decoded).
	maxUploadSize = 5 << 20

	// maxHeroUploadSize is the limit for hero images (10 MB decoded).
	maxHeroUploadSize = 10 << 20

	// thumbMaxWidth is the maximum thumbnail width in pixels.
	thumbMaxWidth = 400

	// thumbQuality is the JPEG quality for generated thumbnails.
	thumbQuality = 80

	// maxImagePixels caps decoded size to prevent memory bombs.
	maxImagePixels = 100_000_000
)

// allowedMediaTypes defines MIME types accepted for upload.
var allowedMediaTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// thumbableTypes are image types that get a generated thumbnail.
// GIF is excluded to preserve animation.
var thumbableTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// uploadRequest is the JSON body sent by the media upload UI. The file
// content arrives base64-encoded; kind selects the size limit ("hero"
// uploads get a larger allowance).
type uploadRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	DataBase64  string `json:"data_base64"`
	Kind        string `json:"kind"`
}

// MediaPage renders the media library.
func (a *Admin) MediaPage(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"media": []models.Media(nil), "baseURL": ""}
	var flashes []render.Flash

	if a.storageClient == nil {
		flashes = append(flashes, render.Flash{Type: "warning", Message: "Object storage is not configured. Uploads are disabled."})
	} else {
		items, err := a.media.List(100, 0)
		if err != nil {
			slog.Error("list media failed", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		data["media"] = items
		data["baseURL"] = strings.TrimSuffix(a.storageClient.FileURL(""), "/")
	}

	a.renderer.Page(w, r, "media", &render.PageData{
		Title:   "Media",
		Section: "media",
		Flashes: flashes,
		Data:    data,
	})
}

// MediaUpload accepts a base64-encoded image, validates it, stores the
// original and a thumbnail in object storage, and records the upload.
func (a *Admin) MediaUpload(w http.ResponseWriter, r *http.Request) {
	if a.storageClient == nil {
		writeMediaError(w, "Object storage is not configured.", http.StatusServiceUnavailable)
		return
	}

	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		writeMediaError(w, "Not authenticated.", http.StatusUnauthorized)
		return
	}

	// The base64 wire form is ~4/3 the decoded size.
	r.Body = http.MaxBytesReader(w, r.Body, (maxHeroUploadSize*4/3)+4096)

	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMediaError(w, "Invalid upload request.", http.StatusBadRequest)
		return
	}

	limit := int64(maxUploadSize)
	limitLabel := "5 MB"
	if req.Kind == "hero" {
		limit = maxHeroUploadSize
		limitLabel = "10 MB"
	}

	if !allowedMediaTypes[req.ContentType] {
		writeMediaError(w, "Unsupported file type. Allowed: JPEG, PNG, WebP, GIF.", http.StatusBadRequest)
		return
	}

	raw, err := base64.StdEncoding.DecodeString(req.DataBase64)
	if err != nil {
		writeMediaError(w, "Invalid file data.", http.StatusBadRequest)
		return
	}
	if int64(len(raw)) > limit {
		writeMediaError(w, fmt.Sprintf("File too large. Maximum size is %s.", limitLabel), http.StatusRequestEntityTooLarge)
		return
	}

	// Trust the bytes, not the declared content type.
	sniffed := http.DetectContentType(raw)
	if !allowedMediaTypes[sniffed] {
		writeMediaError(w, "File content does not match an allowed image type.", http.StatusBadRequest)
		return
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		writeMediaError(w, "Could not read image dimensions.", http.StatusBadRequest)
		return
	}
	if cfg.Width*cfg.Height > maxImagePixels {
		writeMediaError(w, "Image dimensions are too large.", http.StatusBadRequest)
		return
	}

	key := mediaKey(req.Filename)
	if err := a.storageClient.Upload(r.Context(), key, sniffed, bytes.NewReader(raw), int64(len(raw))); err != nil {
		slog.Error("media upload failed", "key", key, "error", err)
		writeMediaError(w, "Upload failed.", http.StatusInternalServerError)
		return
	}

	var thumbKey *string
	if thumbableTypes[sniffed] {
		if tk, err := a.uploadThumbnail(r, key, raw); err != nil {
			slog.Warn("thumbnail generation failed", "key", key, "error", err)
		} else {
			thumbKey = &tk
		}
	}

	m, err := a.media.Create(&models.Media{
		Filename:     filepath.Base(key),
		OriginalName: req.Filename,
		ContentType:  sniffed,
		SizeBytes:    int64(len(raw)),
		StorageKey:   key,
		ThumbKey:     thumbKey,
		UploaderID:   sess.UserID,
	})
	if err != nil {
		slog.Error("media record create failed", "key", key, "error", err)
		writeMediaError(w, "Upload failed.", http.StatusInternalServerError)
		return
	}

	resp := map[string]any{
		"id":  m.ID,
		"url": a.storageClient.FileURL(m.StorageKey),
	}
	if m.ThumbKey != nil {
		resp["thumb_url"] = a.storageClient.FileURL(*m.ThumbKey)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// MediaDelete removes the database record and best-effort deletes the
// stored objects. Content that references the file by URL keeps the URL.
func (a *Admin) MediaDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	m, err := a.media.Delete(id)
	if err != nil {
		slog.Error("media delete failed", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if m != nil && a.storageClient != nil {
		if err := a.storageClient.Delete(r.Context(), m.StorageKey); err != nil {
			slog.Warn("storage object delete failed", "key", m.StorageKey, "error", err)
		}
		if m.ThumbKey != nil {
			if err := a.storageClient.Delete(r.Context(), *m.ThumbKey); err != nil {
				slog.Warn("storage thumb delete failed", "key", *m.ThumbKey, "error", err)
			}
		}
	}

	a.MediaPage(w, r)
}

// uploadThumbnail scales the image down to thumbMaxWidth with CatmullRom
// resampling, encodes it as JPEG, and uploads it next to the original.
func (a *Admin) uploadThumbnail(r *http.Request, key string, raw []byte) (string, error) {
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width > thumbMaxWidth {
		height = height * thumbMaxWidth / width
		width = thumbMaxWidth
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: thumbQuality}); err != nil {
		return "", fmt.Errorf("encode thumbnail: %w", err)
	}

	ext := filepath.Ext(key)
	thumbKey := strings.TrimSuffix(key, ext) + "_thumb.jpg"
	if err := a.storageClient.Upload(r.Context(), thumbKey, "image/jpeg", &buf, int64(buf.Len())); err != nil {
		return "", fmt.Errorf("upload thumbnail: %w", err)
	}
	return thumbKey, nil
}

// mediaKey builds the storage key for an upload: a UUID prefix keeps keys
// unique while preserving a sanitized version of the original name.
func mediaKey(original string) string {
	base := filepath.Base(original)
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, base)
	if base == "" || base == "." {
		base = "upload"
	}
	return "media/" + uuid.New().String() + "-" + base
}

// writeMediaError sends a JSON error payload matching what the upload UI expects.
func writeMediaError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
