package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webcars-api/internal/application/ports"
	domain "webcars-api/internal/domain/listing"
	"webcars-api/internal/domain/user"
	"webcars-api/internal/infrastructure/mq"
)

type FakeObjectStore struct {
	mu      sync.Mutex
	puts    []string
	deletes []string

	PutErr    error
	DeleteErr error
}

func (f *FakeObjectStore) Put(ctx context.Context, key string, r io.Reader, contentType string) error {
	if f.PutErr != nil {
		return f.PutErr
	}
	f.mu.Lock()
	f.puts = append(f.puts, key)
	f.mu.Unlock()
	return nil
}

func (f *FakeObjectStore) Delete(ctx context.Context, key string) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.mu.Lock()
	f.deletes = append(f.deletes, key)
	f.mu.Unlock()
	return nil
}

func (f *FakeObjectStore) PublicURL(key string) string {
	return "https://storage.googleapis.com/test-bucket/" + key
}

func (f *FakeObjectStore) Bucket() string { return "test-bucket" }

type FakeListingRepository struct {
	FetchListingsFunc    func(ctx context.Context) (domain.Listings, error)
	FetchListingByIDFunc func(ctx context.Context, id string) (*domain.Listing, error)
	CreateListingFunc    func(ctx context.Context, l *domain.Listing) (string, error)
}

func (f *FakeListingRepository) FetchListings(ctx context.Context) (domain.Listings, error) {
	if f.FetchListingsFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchListingsFunc(ctx)
}

func (f *FakeListingRepository) FetchListingByID(ctx context.Context, id string) (*domain.Listing, error) {
	if f.FetchListingByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchListingByIDFunc(ctx, id)
}

func (f *FakeListingRepository) CreateListing(ctx context.Context, l *domain.Listing) (string, error) {
	if f.CreateListingFunc == nil {
		return "", errors.New("not used")
	}
	return f.CreateListingFunc(ctx, l)
}

type FakeRabbitMQ struct {
	in mq.InputCh
}

func NewFakeRabbitMQ() *FakeRabbitMQ {
	return &FakeRabbitMQ{in: make(mq.InputCh, 16)}
}

func (f *FakeRabbitMQ) Connect(ctx context.Context, dsn string) error { return nil }
func (f *FakeRabbitMQ) Init() error                                   { return nil }
func (f *FakeRabbitMQ) PublisherWorker(ctx context.Context)           {}
func (f *FakeRabbitMQ) GetInputChan() chan mq.Event                   { return f.in }
func (f *FakeRabbitMQ) GetConn() *amqp091.Connection                  { return nil }

func testCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "test_counters"},
		[]string{"result"})
}

func makeFileHeader(t *testing.T, filename, contentType, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	fhs := form.File["image"]
	require.Len(t, fhs, 1)
	return fhs[0]
}

func someOwner() *user.User {
	return &user.User{ID: "user-1", Name: "Ana"}
}

func newDraftService(store ports.ObjectStore, repo domain.Repository) (ports.DraftService, *FakeRabbitMQ) {
	rabbit := NewFakeRabbitMQ()
	return NewDraftService(store, repo, rabbit, testCounter()), rabbit
}

func TestDraftService_AttachImage(t *testing.T) {
	ctx := context.Background()
	owner := someOwner()

	t.Run("rejects unsupported mime type before uploading", func(t *testing.T) {
		store := &FakeObjectStore{}
		ds, _ := newDraftService(store, &FakeListingRepository{})

		fh := makeFileHeader(t, "car.gif", "image/gif", "gif-bytes")
		img, err := ds.AttachImage(ctx, owner, fh)
		require.ErrorIs(t, err, ErrUnsupportedImageType)
		assert.Nil(t, img)
		assert.Empty(t, store.puts)
		assert.Empty(t, ds.Images(owner.ID))
	})

	t.Run("uploads under images/{uid}/{key} and records the draft entry", func(t *testing.T) {
		store := &FakeObjectStore{}
		ds, _ := newDraftService(store, &FakeListingRepository{})

		fh := makeFileHeader(t, "Meu Carro.PNG", "image/png", "png-bytes")
		img, err := ds.AttachImage(ctx, owner, fh)
		require.NoError(t, err)
		require.NotNil(t, img)

		assert.Equal(t, owner.ID, img.UID)
		assert.NotEmpty(t, img.Name)
		assert.Equal(t, "meu-carro.png", img.FileName)
		assert.Equal(t, "image/png", img.MimeType)
		assert.Equal(t, uint64(len("png-bytes")), img.SizeBytes)
		assert.Equal(t, store.PublicURL("images/"+owner.ID+"/"+img.Name), img.URL)

		require.Len(t, store.puts, 1)
		assert.Equal(t, "images/"+owner.ID+"/"+img.Name, store.puts[0])
		assert.Len(t, ds.Images(owner.ID), 1)
	})

	t.Run("generates a fresh blob key per upload", func(t *testing.T) {
		store := &FakeObjectStore{}
		ds, _ := newDraftService(store, &FakeListingRepository{})

		keys := map[string]struct{}{}
		for i := 0; i < 5; i++ {
			fh := makeFileHeader(t, "car.jpg", "image/jpeg", "jpeg-bytes")
			img, err := ds.AttachImage(ctx, owner, fh)
			require.NoError(t, err)
			keys[img.Name] = struct{}{}
		}
		assert.Len(t, keys, 5)
		assert.Len(t, ds.Images(owner.ID), 5)
	})

	t.Run("upload failure leaves the draft untouched", func(t *testing.T) {
		store := &FakeObjectStore{PutErr: errors.New("gcs down")}
		ds, _ := newDraftService(store, &FakeListingRepository{})

		fh := makeFileHeader(t, "car.jpg", "image/jpeg", "jpeg-bytes")
		_, err := ds.AttachImage(ctx, owner, fh)
		require.Error(t, err)
		assert.Empty(t, ds.Images(owner.ID))
	})
}

func TestDraftService_RemoveImage(t *testing.T) {
	ctx := context.Background()
	owner := someOwner()

	attach := func(t *testing.T, ds ports.DraftService) string {
		t.Helper()
		fh := makeFileHeader(t, "car.jpg", "image/jpeg", "jpeg-bytes")
		img, err := ds.AttachImage(ctx, owner, fh)
		require.NoError(t, err)
		return img.Name
	}

	t.Run("unknown blob key", func(t *testing.T) {
		ds, _ := newDraftService(&FakeObjectStore{}, &FakeListingRepository{})
		err := ds.RemoveImage(ctx, owner.ID, "no-such-key")
		require.ErrorIs(t, err, ErrImageNotFound)
	})

	t.Run("deletes the blob and drops the entry", func(t *testing.T) {
		store := &FakeObjectStore{}
		ds, _ := newDraftService(store, &FakeListingRepository{})
		key := attach(t, ds)
		attach(t, ds)

		require.NoError(t, ds.RemoveImage(ctx, owner.ID, key))
		require.Len(t, store.deletes, 1)
		assert.Equal(t, "images/"+owner.ID+"/"+key, store.deletes[0])
		assert.Len(t, ds.Images(owner.ID), 1)
	})

	t.Run("delete failure keeps the entry", func(t *testing.T) {
		store := &FakeObjectStore{}
		ds, _ := newDraftService(store, &FakeListingRepository{})
		key := attach(t, ds)

		store.DeleteErr = errors.New("gcs down")
		err := ds.RemoveImage(ctx, owner.ID, key)
		require.Error(t, err)
		assert.Len(t, ds.Images(owner.ID), 1)
	})
}

func TestDraftService_Submit(t *testing.T) {
	ctx := context.Background()
	owner := someOwner()

	validForm := domain.Form{
		Name:        "Onix",
		Model:       "1.0 Turbo",
		Year:        "2021/2022",
		Km:          "23000",
		Price:       "72000",
		City:        "Campinas - SP",
		Description: "Carro novo, revisado.",
		Whatsapp:    "11999999999",
	}

	t.Run("empty draft never reaches the repository", func(t *testing.T) {
		repo := &FakeListingRepository{
			CreateListingFunc: func(ctx context.Context, l *domain.Listing) (string, error) {
				t.Fatal("CreateListing must not be called")
				return "", nil
			},
		}
		ds, _ := newDraftService(&FakeObjectStore{}, repo)

		_, err := ds.Submit(ctx, owner, validForm)
		require.ErrorIs(t, err, ErrNoImages)
	})

	t.Run("persists form plus images and clears the draft", func(t *testing.T) {
		var got *domain.Listing
		repo := &FakeListingRepository{
			CreateListingFunc: func(ctx context.Context, l *domain.Listing) (string, error) {
				got = l
				return "listing-1", nil
			},
		}
		ds, rabbit := newDraftService(&FakeObjectStore{}, repo)

		fh := makeFileHeader(t, "car.jpg", "image/jpeg", "jpeg-bytes")
		img, err := ds.AttachImage(ctx, owner, fh)
		require.NoError(t, err)

		id, err := ds.Submit(ctx, owner, validForm)
		require.NoError(t, err)
		assert.Equal(t, "listing-1", id)

		require.NotNil(t, got)
		assert.Equal(t, validForm.Name, got.Name)
		assert.Equal(t, validForm.City, got.City)
		assert.Equal(t, owner.Name, got.Owner)
		assert.Equal(t, owner.ID, got.UID)
		assert.False(t, got.Created.IsZero())
		require.Len(t, got.Images, 1)
		assert.Equal(t, img.Name, got.Images[0].Name)
		assert.Equal(t, img.URL, got.Images[0].URL)

		assert.Empty(t, ds.Images(owner.ID))

		select {
		case e := <-rabbit.GetInputChan():
			assert.Equal(t, mq.ActionListingCreated, e.Action)
			assert.Equal(t, owner.ID, e.UserID)
		default:
			t.Fatal("expected a listing.created event")
		}
	})

	t.Run("repository failure keeps the draft for a retry", func(t *testing.T) {
		repo := &FakeListingRepository{
			CreateListingFunc: func(ctx context.Context, l *domain.Listing) (string, error) {
				return "", errors.New("db error")
			},
		}
		ds, rabbit := newDraftService(&FakeObjectStore{}, repo)

		fh := makeFileHeader(t, "car.jpg", "image/jpeg", "jpeg-bytes")
		_, err := ds.AttachImage(ctx, owner, fh)
		require.NoError(t, err)

		_, err = ds.Submit(ctx, owner, validForm)
		require.Error(t, err)
		assert.Len(t, ds.Images(owner.ID), 1)
		assert.Empty(t, rabbit.GetInputChan())
	})
}
