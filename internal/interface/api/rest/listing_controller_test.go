package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"webcars-api/internal/application/ports"
	"webcars-api/internal/application/services"
	listingDomain "webcars-api/internal/domain/listing"
	domain "webcars-api/internal/domain/user"
	jwtSvc "webcars-api/internal/infrastructure/jwt"
	listingdto "webcars-api/internal/interface/api/rest/dto/listing"
)

func setupListingRouter(t *testing.T, ls ports.ListingService, ds ports.DraftService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	NewListingController(r, ls, ds, zap.NewNop(), jwtSvc.New(testSecret))
	return r
}

func someListing() *listingDomain.Listing {
	return &listingDomain.Listing{
		ID:          "listing-1",
		Name:        "Onix",
		Model:       "1.0 Turbo",
		Year:        "2021/2022",
		Km:          "23000",
		Price:       "72000",
		City:        "Campinas - SP",
		Description: "Carro novo, revisado.",
		Whatsapp:    "11999999999",
		Owner:       "Ana",
		UID:         "user-1",
		Created:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Images: []listingDomain.ImageRef{
			{UID: "user-1", Name: "blob-1", URL: "https://example.com/blob-1"},
			{UID: "user-1", Name: "blob-2", URL: "https://example.com/blob-2"},
		},
	}
}

func validListingForm() listingdto.Form {
	return listingdto.Form{
		Name:        "Onix",
		Model:       "1.0 Turbo",
		Year:        "2021/2022",
		Km:          "23000",
		Price:       "72000",
		City:        "Campinas - SP",
		Description: "Carro novo, revisado.",
		Whatsapp:    "11999999999",
	}
}

func TestListingController_GetListingsHandler(t *testing.T) {
	t.Run("500 when service fails", func(t *testing.T) {
		r := setupListingRouter(t, &FakeListingService{
			FindListingsFunc: func(ctx context.Context) (listingDomain.Listings, error) {
				return nil, errors.New("db error")
			},
		}, &FakeDraftService{})

		rr := doReq(t, r, http.MethodGet, RouteListings, nil, nil)
		require.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("200 feed with cover image", func(t *testing.T) {
		l := someListing()
		r := setupListingRouter(t, &FakeListingService{
			FindListingsFunc: func(ctx context.Context) (listingDomain.Listings, error) {
				return listingDomain.Listings{l}, nil
			},
		}, &FakeDraftService{})

		rr := doReq(t, r, http.MethodGet, RouteListings, nil, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp listingdto.ResponseData
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 1)
		assert.Equal(t, l.ID, resp.Data[0].ID)
		assert.Equal(t, l.Images[0].URL, resp.Data[0].Cover)
	})

	t.Run("200 empty feed", func(t *testing.T) {
		r := setupListingRouter(t, &FakeListingService{
			FindListingsFunc: func(ctx context.Context) (listingDomain.Listings, error) {
				return listingDomain.Listings{}, nil
			},
		}, &FakeDraftService{})

		rr := doReq(t, r, http.MethodGet, RouteListings, nil, nil)
		require.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestListingController_GetListingHandler(t *testing.T) {
	t.Run("302 to home for an unknown id", func(t *testing.T) {
		r := setupListingRouter(t, &FakeListingService{
			FindListingByIDFunc: func(ctx context.Context, id string) (*listingDomain.Listing, error) {
				return nil, nil
			},
		}, &FakeDraftService{})

		rr := doReq(t, r, http.MethodGet, RouteListings+"/missing", nil, nil)
		require.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, RouteHome, rr.Header().Get("Location"))
	})

	t.Run("500 when service fails", func(t *testing.T) {
		r := setupListingRouter(t, &FakeListingService{
			FindListingByIDFunc: func(ctx context.Context, id string) (*listingDomain.Listing, error) {
				return nil, errors.New("db error")
			},
		}, &FakeDraftService{})

		rr := doReq(t, r, http.MethodGet, RouteListings+"/listing-1", nil, nil)
		require.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("200 detail with slider width", func(t *testing.T) {
		l := someListing()
		r := setupListingRouter(t, &FakeListingService{
			FindListingByIDFunc: func(ctx context.Context, id string) (*listingDomain.Listing, error) {
				assert.Equal(t, "listing-1", id)
				return l, nil
			},
		}, &FakeDraftService{})

		cases := []struct {
			query string
			want  float64
		}{
			{"", 2},                     // default width is the breakpoint
			{"?viewport_width=500", 1},
			{"?viewport_width=719", 1},
			{"?viewport_width=1440", 2},
			{"?viewport_width=oops", 2}, // unparseable falls back to default
		}
		for _, c := range cases {
			rr := doReq(t, r, http.MethodGet, RouteListings+"/listing-1"+c.query, nil, nil)
			require.Equal(t, http.StatusOK, rr.Code, "query=%q", c.query)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, c.want, resp["slider_per_view"], "query=%q", c.query)
			assert.Equal(t, l.Name, resp["name"])
		}
	})
}

func TestListingController_CreateListingHandler(t *testing.T) {
	t.Run("401 without a token", func(t *testing.T) {
		r := setupListingRouter(t, &FakeListingService{}, &FakeDraftService{})
		rr := doReq(t, r, http.MethodPost, RouteListings, validListingForm(), nil)
		require.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("400 validation error with field message", func(t *testing.T) {
		form := validListingForm()
		form.Whatsapp = "123"

		r := setupListingRouter(t, &FakeListingService{}, &FakeDraftService{})
		rr := doReq(t, r, http.MethodPost, RouteListings, form, bearerHeader(t, "user-1", "Ana"))
		require.Equal(t, http.StatusBadRequest, rr.Code)

		var resp struct {
			Details map[string]string `json:"details"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Número de telefone inválido", resp.Details["whatsapp"])
	})

	t.Run("422 when the draft has no images", func(t *testing.T) {
		r := setupListingRouter(t, &FakeListingService{}, &FakeDraftService{
			SubmitFunc: func(ctx context.Context, owner *domain.User, form listingDomain.Form) (string, error) {
				return "", services.ErrNoImages
			},
		})

		rr := doReq(t, r, http.MethodPost, RouteListings, validListingForm(), bearerHeader(t, "user-1", "Ana"))
		require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Envie alguma imagem deste carro", resp["error"])
	})

	t.Run("201 submits with the token's identity", func(t *testing.T) {
		r := setupListingRouter(t, &FakeListingService{}, &FakeDraftService{
			SubmitFunc: func(ctx context.Context, owner *domain.User, form listingDomain.Form) (string, error) {
				assert.Equal(t, "user-1", owner.ID)
				assert.Equal(t, "Ana", owner.Name)
				assert.Equal(t, "Onix", form.Name)
				assert.Equal(t, "Campinas - SP", form.City)
				return "listing-1", nil
			},
		})

		rr := doReq(t, r, http.MethodPost, RouteListings, validListingForm(), bearerHeader(t, "user-1", "Ana"))
		require.Equal(t, http.StatusCreated, rr.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "listing-1", resp["id"])
	})
}
