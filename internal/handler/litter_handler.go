package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kennelhouse/kennel-backend/internal/model"
	"github.com/kennelhouse/kennel-backend/internal/response"
	"github.com/kennelhouse/kennel-backend/internal/service"
)

type LitterHandler struct {
	litterService service.LitterService
}

func NewLitterHandler(litterService service.LitterService) *LitterHandler {
	return &LitterHandler{litterService: litterService}
}

// List godoc
// GET /api/litters
func (h *LitterHandler) List(c *gin.Context) {
	litters, err := h.litterService.ListLitters(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}

	views := make([]model.LitterView, 0, len(litters))
	for _, l := range litters {
		views = append(views, l.View())
	}
	response.JSON(c, http.StatusOK, gin.H{"litters": views})
}

// Create godoc
// POST /api/litters
func (h *LitterHandler) Create(c *gin.Context) {
	var req model.LitterRequest
	if !bindBody(c, &req) {
		return
	}

	id, err := h.litterService.CreateLitter(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, response.Created{ID: id, Success: true})
}

// Update godoc
// PUT /api/litters
func (h *LitterHandler) Update(c *gin.Context) {
	var req model.UpdateLitterRequest
	if !bindBody(c, &req) {
		return
	}

	if err := h.litterService.UpdateLitter(c.Request.Context(), req); err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, http.StatusOK)
}

// Delete godoc
// DELETE /api/litters?id=N
func (h *LitterHandler) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := h.litterService.DeleteLitter(c.Request.Context(), id); err != nil {
		internalError(c, err)
		return
	}
	response.OK(c, http.StatusOK)
}

func (h *LitterHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, service.ErrInvalidBornDate) {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, map[string]string{
			"born_date": service.ErrInvalidBornDate.Error(),
		})
		return
	}
	internalError(c, err)
}
