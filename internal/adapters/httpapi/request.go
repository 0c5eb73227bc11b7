package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MostafaRhazlani/EventFlow/internal/domain"
	"github.com/MostafaRhazlani/EventFlow/internal/domain/entities"
)

const maxUploadBytes = 10 << 20

func badJSON(err error) error {
	return &domain.ValidationError{Fields: map[string]string{"body": err.Error()}}
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

func stringOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}

// parseEventForm reads event fields from a multipart form. Absent fields
// stay nil so the same parser serves both create and patch. An uploaded
// image is stored and replaced by its opaque path.
func (h *Handler) parseEventForm(r *http.Request) (*entities.EventPatch, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, &domain.ValidationError{Fields: map[string]string{"body": "invalid multipart form"}}
	}

	patch := &entities.EventPatch{}
	if v, ok := formValue(r, "title"); ok {
		patch.Title = &v
	}
	if v, ok := formValue(r, "description"); ok {
		patch.Description = &v
	}
	if v, ok := formValue(r, "location"); ok {
		patch.Location = &v
	}
	if v, ok := formValue(r, "date"); ok {
		d, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, &domain.ValidationError{Fields: map[string]string{"Date": "datetime"}}
		}
		patch.Date = &d
	}
	if v, ok := formValue(r, "max_participants"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, &domain.ValidationError{Fields: map[string]string{"MaxParticipants": "numeric"}}
		}
		patch.MaxParticipants = &n
	}

	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		path, err := h.saveUpload(file, header.Filename)
		if err != nil {
			return nil, err
		}
		patch.Image = &path
	}

	return patch, nil
}

func formValue(r *http.Request, key string) (string, bool) {
	vs, ok := r.MultipartForm.Value[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// saveUpload writes the uploaded file under the configured upload dir with
// a random name and returns the opaque path. Content is never inspected.
func (h *Handler) saveUpload(src io.Reader, originalName string) (string, error) {
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	name := uuid.New().String() + filepath.Ext(originalName)
	path := filepath.Join(h.uploadDir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return path, nil
}
