package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"webcars-api/internal/application/ports"
	"webcars-api/internal/domain/draft"
	domain "webcars-api/internal/domain/listing"
	"webcars-api/internal/domain/user"
	"webcars-api/internal/infrastructure/mq"
)

var (
	ErrUnsupportedImageType = errors.New("only jpeg and png images are accepted")
	ErrNoImages             = errors.New("a listing needs at least one image")
	ErrImageNotFound        = errors.New("image not found in draft")
)

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
}

// DraftService accumulates uploaded images per user until the listing form
// is submitted. The draft map is the only state shared between handlers;
// every mutation happens under the mutex.
type DraftService struct {
	objectStore       ports.ObjectStore
	listingRepository domain.Repository
	mq                ports.RabbitMQ
	mCounter          *prometheus.CounterVec

	mu     sync.Mutex
	drafts map[user.ID]draft.Images
}

func NewDraftService(
	objectStore ports.ObjectStore,
	listingRepository domain.Repository,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.DraftService {
	return &DraftService{
		objectStore:       objectStore,
		listingRepository: listingRepository,
		mq:                rabbit,
		mCounter:          mCounter,
		drafts:            make(map[user.ID]draft.Images),
	}
}

func (ds *DraftService) Images(ownerID user.ID) draft.Images {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	imgs := make(draft.Images, len(ds.drafts[ownerID]))
	copy(imgs, ds.drafts[ownerID])

	return imgs
}

func (ds *DraftService) AttachImage(
	ctx context.Context,
	owner *user.User,
	in *multipart.FileHeader,
) (*draft.Image, error) {
	mimeType := in.Header.Get("Content-Type")
	if _, ok := allowedImageTypes[mimeType]; !ok {
		return nil, ErrUnsupportedImageType
	}

	// The blob key is generated locally before the upload, so concurrent
	// uploads can never collide on a storage path.
	blobKey := uuid.NewString()
	key := imageKey(owner.ID, blobKey)

	f, err := in.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err = ds.objectStore.Put(ctx, key, f, mimeType); err != nil {
		return nil, err
	}

	img := &draft.Image{
		UID:       owner.ID,
		Name:      blobKey,
		FileName:  sanitizeFileName(in.Filename),
		MimeType:  mimeType,
		SizeBytes: uint64(in.Size),
		URL:       ds.objectStore.PublicURL(key),
	}

	ds.mu.Lock()
	ds.drafts[owner.ID] = append(ds.drafts[owner.ID], img)
	ds.mu.Unlock()

	ds.mCounter.WithLabelValues("image_uploaded_total").Inc()

	return img, nil
}

func (ds *DraftService) RemoveImage(ctx context.Context, ownerID user.ID, blobKey string) error {
	ds.mu.Lock()
	var img *draft.Image
	for _, candidate := range ds.drafts[ownerID] {
		if candidate.Name == blobKey {
			img = candidate
			break
		}
	}
	ds.mu.Unlock()

	if img == nil {
		return ErrImageNotFound
	}

	// Delete the blob first: when the delete fails the draft entry stays,
	// so the list never references a blob we believe gone but is not.
	if err := ds.objectStore.Delete(ctx, imageKey(img.UID, img.Name)); err != nil {
		return err
	}

	ds.mu.Lock()
	kept := make(draft.Images, 0, len(ds.drafts[ownerID]))
	for _, candidate := range ds.drafts[ownerID] {
		if candidate.URL != img.URL {
			kept = append(kept, candidate)
		}
	}
	ds.drafts[ownerID] = kept
	ds.mu.Unlock()

	ds.mCounter.WithLabelValues("image_removed_total").Inc()

	return nil
}

func (ds *DraftService) Submit(ctx context.Context, owner *user.User, form domain.Form) (string, error) {
	ds.mu.Lock()
	imgs := make(draft.Images, len(ds.drafts[owner.ID]))
	copy(imgs, ds.drafts[owner.ID])
	ds.mu.Unlock()

	if len(imgs) == 0 {
		return "", ErrNoImages
	}

	refs := make([]domain.ImageRef, 0, len(imgs))
	for _, img := range imgs {
		refs = append(refs, domain.ImageRef{
			UID:  img.UID,
			Name: img.Name,
			URL:  img.URL,
		})
	}

	l := &domain.Listing{
		Name:        form.Name,
		Model:       form.Model,
		Year:        form.Year,
		Km:          form.Km,
		Price:       form.Price,
		City:        form.City,
		Description: form.Description,
		Whatsapp:    form.Whatsapp,
		Owner:       owner.Name,
		UID:         owner.ID,
		Created:     time.Now().UTC(),
		Images:      refs,
	}

	id, err := ds.listingRepository.CreateListing(ctx, l)
	if err != nil {
		// The draft is kept: the user may retry the submission.
		return "", err
	}

	ds.mu.Lock()
	delete(ds.drafts, owner.ID)
	ds.mu.Unlock()

	ds.mq.GetInputChan() <- mq.Event{
		Id:     uuid.New(),
		TS:     time.Now(),
		Action: mq.ActionListingCreated,
		UserID: owner.ID,
		Payload: map[string]any{
			"listing_id": id,
			"name":       l.Name,
		},
	}

	ds.mCounter.WithLabelValues("listing_created_total").Inc()

	return id, nil
}

func imageKey(ownerID, blobKey string) string {
	return fmt.Sprintf("images/%s/%s", ownerID, blobKey)
}
