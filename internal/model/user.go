package model

import (
	"encoding/json"
	"strconv"
)

// Role is a caller-asserted role string.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleGuest Role = "guest"
)

// User is a site account. Users are provisioned out of band and only read here.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}

// AuthAction selects what the auth endpoint does with a request.
type AuthAction string

const (
	AuthActionLogin  AuthAction = "login"
	AuthActionVerify AuthAction = "verify"
)

// AuthRequest is the raw payload accepted by the auth endpoint. It is split into
// LoginRequest or VerifyRequest once the action is known.
type AuthRequest struct {
	Action       *string     `json:"action"`
	Username     string      `json:"username"`
	Password     string      `json:"password"`
	SessionToken interface{} `json:"sessionToken"`
}

// ResolvedAction returns the requested action, defaulting to login when the
// field is absent. An explicit empty string is kept as-is and rejected later.
func (r AuthRequest) ResolvedAction() AuthAction {
	if r.Action == nil {
		return AuthActionLogin
	}
	return AuthAction(*r.Action)
}

// LoginRequest is the payload for the login action.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// VerifyRequest is the payload for the verify action. The token is accepted in
// any JSON type; only its truthiness matters.
type VerifyRequest struct {
	SessionToken interface{} `json:"sessionToken"`
}

// Token returns the presented token as a string, or "" when the value is
// absent, null, false, zero, or an empty string, list or object.
func (r VerifyRequest) Token() string {
	switch v := r.SessionToken.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if !v {
			return ""
		}
		return "true"
	case float64:
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		if f, err := v.Float64(); err == nil && f == 0 {
			return ""
		}
		return v.String()
	case []interface{}:
		if len(v) == 0 {
			return ""
		}
	case map[string]interface{}:
		if len(v) == 0 {
			return ""
		}
	}
	b, err := json.Marshal(r.SessionToken)
	if err != nil {
		return ""
	}
	return string(b)
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Success      bool   `json:"success"`
	User         User   `json:"user"`
	SessionToken string `json:"sessionToken"`
}

// VerifyResponse is returned by the verify action.
type VerifyResponse struct {
	Valid bool `json:"valid"`
}
