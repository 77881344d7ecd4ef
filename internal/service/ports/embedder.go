package ports

import (
	"context"

	"github.com/akseleran/VenueBooker/internal/domain"
)

// Embedder turns an uploaded file into embedded data the record carries
// inline. A nil upload yields an empty string. There is no cancellation of
// an embed in flight; the commit path waits for it to finish or fail.
type Embedder interface {
	Embed(ctx context.Context, file *domain.FileUpload) (string, error)
}
