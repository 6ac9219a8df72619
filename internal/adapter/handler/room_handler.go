package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srgjo27/hotel_inventory/internal/core/services"
)

type RoomHandler struct {
	svc *services.RoomService
}

func NewRoomHandler(svc *services.RoomService) *RoomHandler {
	return &RoomHandler{svc: svc}
}

func (h *RoomHandler) List(c *gin.Context) {
	respond(c, http.StatusOK, h.svc.GetAll(c.Request.Context()))
}

func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	respond(c, http.StatusOK, h.svc.GetByID(c.Request.Context(), id))
}

func (h *RoomHandler) Create(c *gin.Context) {
	var req services.RoomAddDTO
	if !bindJSON(c, &req) {
		return
	}

	respond(c, http.StatusCreated, h.svc.Create(c.Request.Context(), req))
}

func (h *RoomHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req services.RoomUpdateDTO
	if !bindJSON(c, &req) {
		return
	}
	req.ID = id

	respond(c, http.StatusOK, h.svc.Update(c.Request.Context(), req))
}

func (h *RoomHandler) UpdatePrice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req services.PriceUpdateDTO
	if !bindJSON(c, &req) {
		return
	}
	req.RoomID = id

	respond(c, http.StatusOK, h.svc.UpdatePrice(c.Request.Context(), req))
}

func (h *RoomHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req services.RoomStatusUpdateDTO
	if !bindJSON(c, &req) {
		return
	}
	req.RoomID = id

	respond(c, http.StatusOK, h.svc.SetStatus(c.Request.Context(), req))
}

func (h *RoomHandler) Deactivate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	respond(c, http.StatusOK, h.svc.Deactivate(c.Request.Context(), id))
}

func (h *RoomHandler) Available(c *gin.Context) {
	checkIn, ok := queryDate(c, "check_in")
	if !ok {
		return
	}

	checkOut, ok := queryDate(c, "check_out")
	if !ok {
		return
	}

	respond(c, http.StatusOK, h.svc.FindAvailable(c.Request.Context(), checkIn, checkOut))
}
