package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kennelhouse/kennel-backend/internal/model"
	"github.com/kennelhouse/kennel-backend/internal/response"
	"github.com/kennelhouse/kennel-backend/internal/service"
)

type DogHandler struct {
	dogService service.DogService
}

func NewDogHandler(dogService service.DogService) *DogHandler {
	return &DogHandler{dogService: dogService}
}

// List godoc
// GET /api/dogs
func (h *DogHandler) List(c *gin.Context) {
	dogs, err := h.dogService.ListDogs(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	if dogs == nil {
		dogs = []model.Dog{}
	}
	response.JSON(c, http.StatusOK, gin.H{"dogs": dogs})
}

// Create godoc
// POST /api/dogs
func (h *DogHandler) Create(c *gin.Context) {
	var req model.DogRequest
	if !bindBody(c, &req) {
		return
	}

	id, err := h.dogService.CreateDog(c.Request.Context(), req)
	if err != nil {
		internalError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, response.Created{ID: id, Success: true})
}

// Update godoc
// PUT /api/dogs
func (h *DogHandler) Update(c *gin.Context) {
	var req model.UpdateDogRequest
	if !bindBody(c, &req) {
		return
	}

	if err := h.dogService.UpdateDog(c.Request.Context(), req); err != nil {
		internalError(c, err)
		return
	}
	response.OK(c, http.StatusOK)
}

// Delete godoc
// DELETE /api/dogs?id=N
func (h *DogHandler) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := h.dogService.DeleteDog(c.Request.Context(), id); err != nil {
		internalError(c, err)
		return
	}
	response.OK(c, http.StatusOK)
}
