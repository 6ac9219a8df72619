package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
)

func statusFor(code domain.ErrorCode) int {
	switch code {
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeValidationFailed:
		return http.StatusBadRequest
	case domain.CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusServiceUnavailable
	}
}

// respond writes the operation result as the body. okStatus is used on
// success, the error code decides the status otherwise.
func respond[T any](c *gin.Context, okStatus int, result domain.OperationResult[T]) {
	if result.Success {
		c.JSON(okStatus, result)
		return
	}

	c.JSON(statusFor(result.ErrorCode), result)
}

func badRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, domain.Fail[any](domain.CodeValidationFailed, message))
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, fmt.Sprintf("invalid id %q", c.Param("id")))
		return 0, false
	}

	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		badRequest(c, "invalid json body: "+err.Error())
		return false
	}

	return true
}

// queryDate accepts a plain date or an RFC 3339 timestamp.
func queryDate(c *gin.Context, key string) (time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		badRequest(c, key+" is required")
		return time.Time{}, false
	}

	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, true
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		badRequest(c, fmt.Sprintf("invalid %s %q", key, raw))
		return time.Time{}, false
	}

	return t.UTC(), true
}
