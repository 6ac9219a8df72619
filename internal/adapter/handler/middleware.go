package handler

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/srgjo27/hotel_inventory/internal/core/services"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderActor     = "X-Actor"
)

// RequestID echoes the caller's request id or generates one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(HeaderRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// Actor puts the staff member named in X-Actor on the request context.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor := c.GetHeader(HeaderActor); actor != "" {
			c.Request = c.Request.WithContext(services.WithActor(c.Request.Context(), actor))
		}

		c.Next()
	}
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Printf("%s %s %d %s request_id=%s", c.Request.Method, c.Request.URL.Path,
			c.Writer.Status(), time.Since(start), c.GetString(HeaderRequestID))
	}
}
