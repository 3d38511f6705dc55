package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kennelhouse/kennel-backend/internal/model"
	"github.com/kennelhouse/kennel-backend/internal/response"
)

// Authorizer decides whether the caller behind a request holds a role.
// Handlers never inspect roles themselves; they sit behind RequireRole.
type Authorizer interface {
	HasRole(c *gin.Context, role model.Role) bool
}

// HeaderAuthorizer trusts the role named in a request header verbatim. The
// header is not tied to the session token, so any caller can claim any role.
type HeaderAuthorizer struct {
	Header      string
	DefaultRole model.Role
}

// NewHeaderAuthorizer returns an Authorizer reading header, falling back to
// defaultRole when the header is absent.
func NewHeaderAuthorizer(header string, defaultRole model.Role) HeaderAuthorizer {
	return HeaderAuthorizer{Header: header, DefaultRole: defaultRole}
}

// Role returns the role the caller asserted.
func (a HeaderAuthorizer) Role(c *gin.Context) model.Role {
	if _, present := c.Request.Header[http.CanonicalHeaderKey(a.Header)]; !present {
		return a.DefaultRole
	}
	return model.Role(c.GetHeader(a.Header))
}

func (a HeaderAuthorizer) HasRole(c *gin.Context, role model.Role) bool {
	return a.Role(c) == role
}

// RequireRole rejects the request with 403 unless the authorizer grants role.
func RequireRole(az Authorizer, role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !az.HasRole(c, role) {
			response.AbortFail(c, http.StatusForbidden, response.ErrAdminAccessOnly)
			return
		}
		c.Next()
	}
}
