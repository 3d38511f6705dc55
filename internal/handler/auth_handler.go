package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kennelhouse/kennel-backend/internal/model"
	"github.com/kennelhouse/kennel-backend/internal/response"
	"github.com/kennelhouse/kennel-backend/internal/service"
	"github.com/kennelhouse/kennel-backend/internal/validator"
)

// AuthHandler handles the login and verify actions.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Authenticate godoc
// POST /api/auth
// Dispatches on the "action" field, which defaults to login.
func (h *AuthHandler) Authenticate(c *gin.Context) {
	var req model.AuthRequest
	if fields := validator.BindJSON(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidPayload, fields)
		return
	}

	switch req.ResolvedAction() {
	case model.AuthActionLogin:
		h.login(c, model.LoginRequest{Username: req.Username, Password: req.Password})
	case model.AuthActionVerify:
		h.verify(c, model.VerifyRequest{SessionToken: req.SessionToken})
	default:
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidAction)
	}
}

func (h *AuthHandler) login(c *gin.Context, req model.LoginRequest) {
	if fields := validator.Validate(&req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrCredentialsRequired, fields)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		internalError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, model.LoginResponse{
		Success:      true,
		User:         *user,
		SessionToken: token,
	})
}

// verify only checks that some token was sent; see AuthService.VerifyToken.
func (h *AuthHandler) verify(c *gin.Context, req model.VerifyRequest) {
	if !h.authService.VerifyToken(req.Token()) {
		response.JSON(c, http.StatusUnauthorized, model.VerifyResponse{Valid: false})
		return
	}
	response.JSON(c, http.StatusOK, model.VerifyResponse{Valid: true})
}
