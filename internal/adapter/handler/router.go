package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the room and reservation endpoints. A "*" entry in
// origins allows any origin without credentials.
func NewRouter(rooms *RoomHandler, reservations *ReservationHandler, origins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), Logger(), Actor())

	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", HeaderActor, HeaderRequestID},
		ExposeHeaders:    []string{"Content-Length", HeaderRequestID},
		AllowCredentials: allowCredentials,
	}))

	roomGroup := r.Group("/rooms")
	{
		roomGroup.GET("", rooms.List)
		roomGroup.POST("", rooms.Create)
		roomGroup.GET("/available", rooms.Available)
		roomGroup.GET("/:id", rooms.Get)
		roomGroup.PUT("/:id", rooms.Update)
		roomGroup.DELETE("/:id", rooms.Deactivate)
		roomGroup.PATCH("/:id/price", rooms.UpdatePrice)
		roomGroup.PATCH("/:id/status", rooms.SetStatus)
	}

	resGroup := r.Group("/reservations")
	{
		resGroup.GET("", reservations.List)
		resGroup.POST("", reservations.Create)
		resGroup.GET("/:id", reservations.Get)
		resGroup.PUT("/:id", reservations.Update)
		resGroup.DELETE("/:id", reservations.Deactivate)
		resGroup.POST("/:id/confirm", reservations.Confirm)
		resGroup.POST("/:id/check-in", reservations.CheckIn)
		resGroup.POST("/:id/check-out", reservations.CheckOut)
		resGroup.POST("/:id/cancel", reservations.Cancel)
	}

	return r
}
