package embed

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/akseleran/VenueBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoder_Embed_NilUpload(t *testing.T) {
	enc := NewEncoder(1024)

	url, err := enc.Embed(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, url)
}

func TestEncoder_Embed_DataURL(t *testing.T) {
	enc := NewEncoder(1024)

	content := "hello world"
	file := &domain.FileUpload{
		Filename:    "note.txt",
		ContentType: "text/plain",
		Size:        int64(len(content)),
		Content:     strings.NewReader(content),
	}

	url, err := enc.Embed(context.Background(), file)

	require.NoError(t, err)
	assert.Equal(t, "data:text/plain;base64,"+base64.StdEncoding.EncodeToString([]byte(content)), url)
}

func TestEncoder_Embed_SniffsMissingContentType(t *testing.T) {
	enc := NewEncoder(1024)

	// PNG magic bytes.
	content := "\x89PNG\r\n\x1a\n" + strings.Repeat("\x00", 8)
	file := &domain.FileUpload{
		Filename: "photo.png",
		Size:     int64(len(content)),
		Content:  strings.NewReader(content),
	}

	url, err := enc.Embed(context.Background(), file)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"), url)
}

func TestEncoder_Embed_DeclaredSizeTooLarge(t *testing.T) {
	enc := NewEncoder(10)

	file := &domain.FileUpload{
		Filename: "big.bin",
		Size:     11,
		Content:  strings.NewReader(strings.Repeat("x", 11)),
	}

	_, err := enc.Embed(context.Background(), file)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmbedFailed)
}

func TestEncoder_Embed_ActualSizeTooLarge(t *testing.T) {
	enc := NewEncoder(10)

	// Declared size lies; the read-side guard still catches it.
	file := &domain.FileUpload{
		Filename: "big.bin",
		Size:     5,
		Content:  strings.NewReader(strings.Repeat("x", 20)),
	}

	_, err := enc.Embed(context.Background(), file)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmbedFailed)
}

func TestEncoder_Embed_AtLimitIsFine(t *testing.T) {
	enc := NewEncoder(10)

	content := strings.Repeat("x", 10)
	file := &domain.FileUpload{
		Filename:    "exact.txt",
		ContentType: "text/plain",
		Size:        10,
		Content:     strings.NewReader(content),
	}

	url, err := enc.Embed(context.Background(), file)

	require.NoError(t, err)
	assert.NotEmpty(t, url)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk error") }

func TestEncoder_Embed_ReadError(t *testing.T) {
	enc := NewEncoder(1024)

	file := &domain.FileUpload{
		Filename: "broken.bin",
		Size:     4,
		Content:  failingReader{},
	}

	_, err := enc.Embed(context.Background(), file)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmbedFailed)
}

func TestEncoder_Embed_CancelledContext(t *testing.T) {
	enc := NewEncoder(1024)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	file := &domain.FileUpload{
		Filename: "note.txt",
		Size:     2,
		Content:  strings.NewReader("hi"),
	}

	_, err := enc.Embed(ctx, file)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmbedFailed)
}

func TestEncoder_Embed_NoLimit(t *testing.T) {
	enc := NewEncoder(0)

	content := strings.Repeat("x", 4096)
	file := &domain.FileUpload{
		Filename:    "large.txt",
		ContentType: "text/plain",
		Size:        int64(len(content)),
		Content:     strings.NewReader(content),
	}

	url, err := enc.Embed(context.Background(), file)

	require.NoError(t, err)
	assert.NotEmpty(t, url)
}
