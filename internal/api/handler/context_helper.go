package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"attendify/backend/internal/api/middleware"
	"attendify/backend/pkg/response"
)

// MustGetUserID safely extracts the account id injected by the JWT
// middleware. On failure it writes a 401 and returns ok=false; callers
// should return immediately.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.CtxUserID)
	if !exists {
		response.Unauthorized(c, "Not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, "Not authenticated")
		return "", false
	}
	return s, true
}

// MustGetTokenInfo extracts the token's JTI and expiry for logout.
func MustGetTokenInfo(c *gin.Context) (jti string, expiresAt time.Time, ok bool) {
	v, exists := c.Get(middleware.CtxTokenJTI)
	if !exists {
		response.Unauthorized(c, "Not authenticated")
		return "", time.Time{}, false
	}
	jti, jtiOK := v.(string)

	v, exists = c.Get(middleware.CtxTokenExp)
	if !exists {
		response.Unauthorized(c, "Not authenticated")
		return "", time.Time{}, false
	}
	expiresAt, expOK := v.(time.Time)

	if !jtiOK || !expOK || jti == "" {
		response.Unauthorized(c, "Not authenticated")
		return "", time.Time{}, false
	}
	return jti, expiresAt, true
}

// parseDay parses an optional "2006-01-02" query/body value.
func parseDay(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
