package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Header sets advertised in preflight responses.
var (
	AuthAllowHeaders     = []string{"Content-Type", "X-Session-Token"}
	ResourceAllowHeaders = []string{"Content-Type", "X-Session-Token", "X-User-Role"}
)

// PreflightMaxAge is how long browsers may cache a preflight answer.
const PreflightMaxAge = 24 * time.Hour

// CORSPolicy is the preflight answer for one endpoint.
type CORSPolicy struct {
	Methods []string
	Headers []string
	MaxAge  time.Duration
}

// NewCORSPolicy builds a policy for the given methods. OPTIONS is appended
// when missing.
func NewCORSPolicy(headers []string, methods ...string) CORSPolicy {
	hasOptions := false
	for _, m := range methods {
		if m == http.MethodOptions {
			hasOptions = true
		}
	}
	if !hasOptions {
		methods = append(methods, http.MethodOptions)
	}
	return CORSPolicy{Methods: methods, Headers: headers, MaxAge: PreflightMaxAge}
}

// AllowAnyOrigin stamps Access-Control-Allow-Origin: * on every response,
// including errors and requests without an Origin header.
func AllowAnyOrigin() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Next()
	}
}

// Middleware answers browser preflights (requests carrying Origin) for the
// endpoint group it is attached to.
func (p CORSPolicy) Middleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              p.Methods,
		AllowHeaders:              p.Headers,
		MaxAge:                    p.MaxAge,
		OptionsResponseStatusCode: http.StatusOK,
	})
}

// Preflight answers OPTIONS requests that reach the route directly, which is
// the case for callers that do not send an Origin header.
func (p CORSPolicy) Preflight(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", strings.Join(p.Methods, ", "))
	c.Header("Access-Control-Allow-Headers", strings.Join(p.Headers, ", "))
	c.Header("Access-Control-Max-Age", strconv.FormatInt(int64(p.MaxAge/time.Second), 10))
	c.Status(http.StatusOK)
}
