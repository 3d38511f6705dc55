package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kennelhouse/kennel-backend/internal/model"
	"github.com/kennelhouse/kennel-backend/internal/response"
	"github.com/kennelhouse/kennel-backend/internal/service"
)

type GalleryHandler struct {
	galleryService service.GalleryService
}

func NewGalleryHandler(galleryService service.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

// List godoc
// GET /api/gallery
// Newest photos first.
func (h *GalleryHandler) List(c *gin.Context) {
	photos, err := h.galleryService.ListPhotos(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	if photos == nil {
		photos = []model.Photo{}
	}
	response.JSON(c, http.StatusOK, gin.H{"photos": photos})
}

// Create godoc
// POST /api/gallery
func (h *GalleryHandler) Create(c *gin.Context) {
	var req model.PhotoRequest
	if !bindBody(c, &req) {
		return
	}

	id, err := h.galleryService.AddPhoto(c.Request.Context(), req)
	if err != nil {
		internalError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, response.Created{ID: id, Success: true})
}

// Delete godoc
// DELETE /api/gallery?id=N
func (h *GalleryHandler) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := h.galleryService.DeletePhoto(c.Request.Context(), id); err != nil {
		internalError(c, err)
		return
	}
	response.OK(c, http.StatusOK)
}
