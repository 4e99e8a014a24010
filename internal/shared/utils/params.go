package utils

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/relatorio-inc/relatorio/internal/shared/authorization"
	"github.com/relatorio-inc/relatorio/internal/shared/constants"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
)

// ParseUintParam parses a positive numeric path parameter.
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}
	return uint(v), nil
}

// ParseUintQuery parses an optional positive numeric query value.
// Returns nil when the key is absent.
func ParseUintQuery(c *gin.Context, key string) (*uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return nil, errors.NewValidationError("invalid " + key)
	}
	u := uint(v)
	return &u, nil
}

// ParseBoolQuery parses an optional boolean query value.
func ParseBoolQuery(c *gin.Context, key string) (*bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.NewValidationError("invalid " + key)
	}
	return &v, nil
}

// ParseOptionalTime accepts a date (2006-01-02) or an RFC 3339 timestamp.
// Nil or blank input yields nil.
func ParseOptionalTime(field string, raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, *raw); err == nil {
			return &t, nil
		}
	}
	return nil, errors.NewValidationError("invalid " + field, "expected YYYY-MM-DD or RFC 3339")
}

// Actor is the authenticated caller as stored by the auth middleware.
type Actor struct {
	UserID   uint
	Role     authorization.UserRole
	TenantID uint
}

func (a Actor) IsStaff() bool {
	return a.Role.IsStaff()
}

// GetActor reads the authenticated caller from the gin context.
func GetActor(c *gin.Context) (Actor, error) {
	raw, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return Actor{}, errors.NewUnauthorizedError("user not authenticated")
	}
	userID, ok := raw.(uint)
	if !ok || userID == 0 {
		return Actor{}, errors.NewUnauthorizedError("invalid user ID in context")
	}

	actor := Actor{
		UserID: userID,
		Role:   authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole)),
	}
	if tenantID, ok := c.Get(constants.ContextKeyTenantID); ok {
		if t, ok := tenantID.(uint); ok {
			actor.TenantID = t
		}
	}
	return actor, nil
}
