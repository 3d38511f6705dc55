package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kennelhouse/kennel-backend/internal/response"
	"github.com/kennelhouse/kennel-backend/internal/validator"
)

// idQuery is the query string of delete requests.
type idQuery struct {
	ID int `form:"id" binding:"required,gt=0"`
}

// bindBody decodes the JSON body into dst and writes a 400 on failure.
// Undecodable bodies and failed field rules are reported with different codes.
func bindBody(c *gin.Context, dst interface{}) bool {
	fields := validator.BindJSON(c, dst)
	if fields == nil {
		return true
	}
	code := response.ErrInvalidPayload
	if validator.IsValidationError(fields) {
		code = response.ErrValidation
	}
	response.FailWithFields(c, http.StatusBadRequest, code, fields)
	return false
}

// bindID reads the required ?id= parameter and writes a 400 on failure.
func bindID(c *gin.Context) (int, bool) {
	var q idQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidID, fields)
		return 0, false
	}
	return q.ID, true
}

// internalError records err on the context for the request logger and
// reports a 500.
func internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}

// Health godoc
// GET /health
func Health(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{"status": "ok"})
}

// MethodNotAllowed answers requests whose path exists under another method.
func MethodNotAllowed(c *gin.Context) {
	response.Fail(c, http.StatusMethodNotAllowed, response.ErrMethodNotAllowed)
}

// NotFound answers requests for unknown paths.
func NotFound(c *gin.Context) {
	response.Fail(c, http.StatusNotFound, response.ErrNotFound)
}
