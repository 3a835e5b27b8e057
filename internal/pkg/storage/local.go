// FILE: internal/pkg/storage/local.go
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"devagency-be/internal/pkg/apperror"
)

// MaxUploadBytes caps payment receipt images.
const MaxUploadBytes = 5 * 1024 * 1024

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".pdf":  true,
}

// LocalStore writes uploads under a base directory served by the static
// /uploads route.
type LocalStore struct {
	baseDir string
	baseURL string
}

func NewLocalStore(baseDir string) *LocalStore {
	baseURL := os.Getenv("APP_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	return &LocalStore{baseDir: baseDir, baseURL: baseURL}
}

// SaveReceipt stores a payment proof and returns its public URL.
func (s *LocalStore) SaveReceipt(ownerId uuid.UUID, file *multipart.FileHeader) (string, error) {
	if file.Size > MaxUploadBytes {
		return "", apperror.Validation("payment image too large (max 5MB)")
	}

	ext := filepath.Ext(file.Filename)
	if !allowedExtensions[ext] {
		return "", apperror.Validation("unsupported file type %q", ext)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dir := filepath.Join(s.baseDir, "receipts")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	// uuid component keeps rapid re-uploads from overwriting each other
	filename := fmt.Sprintf("%s_%s%s", ownerId.String(), uuid.NewString(), ext)
	dstPath := filepath.Join(dir, filename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/uploads/receipts/%s", s.baseURL, filename), nil
}

// Remove deletes a previously stored receipt by its public URL. Used to
// clean up when the enclosing transaction fails.
func (s *LocalStore) Remove(publicURL string) error {
	name := filepath.Base(publicURL)
	if name == "." || name == "/" {
		return nil
	}
	err := os.Remove(filepath.Join(s.baseDir, "receipts", name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
