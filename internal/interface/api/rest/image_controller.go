package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"webcars-api/internal/application/ports"
	"webcars-api/internal/application/services"
	"webcars-api/internal/domain/user"
	"webcars-api/internal/infrastructure/jwt"
	imagedto "webcars-api/internal/interface/api/rest/dto/image"
	"webcars-api/internal/interface/api/rest/middleware"
)

// 10MB
const maxImageSize = int64(10 << 20)

type ImageController struct {
	draftService ports.DraftService
	logger       *zap.Logger
}

func NewImageController(
	r *gin.Engine,
	draftService ports.DraftService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *ImageController {
	ic := &ImageController{
		draftService: draftService,
		logger:       logger,
	}

	r.GET(RouteDraftImages, middleware.AuthMiddleware(jwtService), ic.GetDraftImagesHandler)
	r.POST(RouteDraftImages, middleware.AuthMiddleware(jwtService), ic.UploadImageHandler)
	r.DELETE(RouteDraftImage, middleware.AuthMiddleware(jwtService), ic.DeleteDraftImageHandler)

	return ic
}

func (ic *ImageController) GetDraftImagesHandler(c *gin.Context) {
	imgs := ic.draftService.Images(c.GetString(middleware.CtxUserID))

	c.JSON(http.StatusOK, imagedto.ResponseData{
		Data: imagedto.ToResponseImages(imgs),
	})
}

func (ic *ImageController) UploadImageHandler(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	if fh.Size <= 0 || fh.Size > maxImageSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image too large or empty"})
		return
	}

	owner := &user.User{
		ID:   c.GetString(middleware.CtxUserID),
		Name: c.GetString(middleware.CtxUserName),
	}

	img, err := ic.draftService.AttachImage(c.Request.Context(), owner, fh)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedImageType) {
			c.JSON(
				http.StatusUnsupportedMediaType,
				gin.H{"error": "Envie uma imagem jpeg ou png!"},
			)
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to upload an image"},
		)
		ic.logger.Error("AttachImage() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, imagedto.ToResponseImage(*img))
}

func (ic *ImageController) DeleteDraftImageHandler(c *gin.Context) {
	err := ic.draftService.RemoveImage(
		c.Request.Context(),
		c.GetString(middleware.CtxUserID),
		c.Param("image_id"),
	)
	if err != nil {
		if errors.Is(err, services.ErrImageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		// The draft entry is kept on failure so it never points at a
		// blob that is still present remotely.
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete an image"},
		)
		ic.logger.Error("RemoveImage() error", zap.Error(err))
		return
	}

	c.Status(http.StatusNoContent)
}
