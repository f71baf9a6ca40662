package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"webcars-api/internal/application/ports"
	"webcars-api/internal/application/services"
	"webcars-api/internal/domain/user"
	"webcars-api/internal/infrastructure/jwt"
	listingdto "webcars-api/internal/interface/api/rest/dto/listing"
	"webcars-api/internal/interface/api/rest/forms"
	"webcars-api/internal/interface/api/rest/middleware"
)

const defaultViewportWidth = 720

type ListingController struct {
	listingService ports.ListingService
	draftService   ports.DraftService
	logger         *zap.Logger
}

func NewListingController(
	r *gin.Engine,
	listingService ports.ListingService,
	draftService ports.DraftService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *ListingController {
	lc := &ListingController{
		listingService: listingService,
		draftService:   draftService,
		logger:         logger,
	}

	r.GET(RouteListings, lc.GetListingsHandler)
	r.GET(RouteListing, lc.GetListingHandler)
	r.POST(RouteListings, middleware.AuthMiddleware(jwtService), lc.CreateListingHandler)

	return lc
}

// GetListingsHandler returns the whole feed, newest first. No pagination:
// the marketplace is small enough to fetch in one call.
func (lc *ListingController) GetListingsHandler(c *gin.Context) {
	listings, err := lc.listingService.FindListings(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get listings"},
		)
		lc.logger.Error("FindListings() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, listingdto.ResponseData{
		Data: listingdto.ToSummaries(listings),
	})
}

// GetListingHandler serves the detail view. An unknown id redirects to the
// home view: not-found is a recovery path here, not a hard error.
func (lc *ListingController) GetListingHandler(c *gin.Context) {
	id := c.Param("listing_id")

	l, err := lc.listingService.FindListingByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a listing"},
		)
		lc.logger.Error("FindListingByID() error", zap.Error(err))
		return
	}
	if l == nil {
		c.Redirect(http.StatusFound, RouteHome)
		return
	}

	width, err := strconv.Atoi(c.DefaultQuery("viewport_width", strconv.Itoa(defaultViewportWidth)))
	if err != nil {
		width = defaultViewportWidth
	}

	c.JSON(http.StatusOK, listingdto.ToDetail(*l, services.SliderPerView(width)))
}

func (lc *ListingController) CreateListingHandler(c *gin.Context) {
	var req listingdto.Form
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	if errs := forms.Listing.Validate(req.Values()); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	owner := &user.User{
		ID:   c.GetString(middleware.CtxUserID),
		Name: c.GetString(middleware.CtxUserName),
	}

	id, err := lc.draftService.Submit(c.Request.Context(), owner, listingdto.ToDomainForm(req))
	if err != nil {
		if errors.Is(err, services.ErrNoImages) {
			c.JSON(
				http.StatusUnprocessableEntity,
				gin.H{"error": "Envie alguma imagem deste carro"},
			)
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a listing"},
		)
		lc.logger.Error("Submit() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}
