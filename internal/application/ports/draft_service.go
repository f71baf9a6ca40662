package ports

import (
	"context"
	"mime/multipart"

	"webcars-api/internal/domain/draft"
	"webcars-api/internal/domain/listing"
	"webcars-api/internal/domain/user"
)

// DraftService owns the transient per-user image list accumulated while the
// create-listing form is being filled in.
type DraftService interface {
	Images(ownerID user.ID) draft.Images
	AttachImage(ctx context.Context, owner *user.User, in *multipart.FileHeader) (*draft.Image, error)
	RemoveImage(ctx context.Context, ownerID user.ID, blobKey string) error
	// Submit persists the validated form plus the accumulated images as
	// one listing document and clears the draft on success.
	Submit(ctx context.Context, owner *user.User, form listing.Form) (string, error)
}
