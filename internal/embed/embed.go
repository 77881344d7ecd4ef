package embed

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"

	"github.com/akseleran/VenueBooker/internal/domain"
)

// Encoder turns uploaded files into base64 data URLs, the shape the store
// has always carried attachments in and the detail cards render directly.
type Encoder struct {
	maxBytes int64
}

func NewEncoder(maxBytes int64) *Encoder {
	return &Encoder{maxBytes: maxBytes}
}

// Embed reads the whole upload and encodes it. A nil upload yields an empty
// string. Any read failure or an oversized file surfaces as ErrEmbedFailed
// so the commit path can abort without a partial write.
func (e *Encoder) Embed(ctx context.Context, file *domain.FileUpload) (string, error) {
	if file == nil {
		return "", nil
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrEmbedFailed, err)
	}
	if e.maxBytes > 0 && file.Size > e.maxBytes {
		return "", fmt.Errorf("%w: %s exceeds %d bytes", domain.ErrEmbedFailed, file.Filename, e.maxBytes)
	}

	reader := file.Content
	if e.maxBytes > 0 {
		reader = io.LimitReader(reader, e.maxBytes+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrEmbedFailed, file.Filename, err)
	}
	if e.maxBytes > 0 && int64(len(data)) > e.maxBytes {
		return "", fmt.Errorf("%w: %s exceeds %d bytes", domain.ErrEmbedFailed, file.Filename, e.maxBytes)
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
