package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devagency-be/internal/pkg/apperror"
)

func multipartFile(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File[field][0]
}

func TestSaveReceiptAndRemove(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	fh := multipartFile(t, "payment_image", "proof.png", []byte("fake png bytes"))

	url, err := store.SaveReceipt(uuid.New(), fh)
	require.NoError(t, err)
	assert.Contains(t, url, "/uploads/receipts/")

	assert.NoError(t, store.Remove(url))
	// Removing twice is not an error.
	assert.NoError(t, store.Remove(url))
}

func TestSaveReceiptKeepsConcurrentUploadsApart(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ownerId := uuid.New()

	first, err := store.SaveReceipt(ownerId, multipartFile(t, "payment_image", "proof.png", []byte("first")))
	require.NoError(t, err)
	second, err := store.SaveReceipt(ownerId, multipartFile(t, "payment_image", "proof.png", []byte("second")))
	require.NoError(t, err)

	// Same owner, same instant: both files must survive.
	assert.NotEqual(t, first, second)
	assert.NoError(t, store.Remove(first))
	assert.NoError(t, store.Remove(second))
}

func TestSaveReceiptRejectsUnknownExtension(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	fh := multipartFile(t, "payment_image", "proof.exe", []byte("nope"))

	_, err := store.SaveReceipt(uuid.New(), fh)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestSaveReceiptRejectsOversizedFile(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	big := make([]byte, MaxUploadBytes+1)
	fh := multipartFile(t, "payment_image", "proof.jpg", big)

	_, err := store.SaveReceipt(uuid.New(), fh)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}
