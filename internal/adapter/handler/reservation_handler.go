package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
	"github.com/srgjo27/hotel_inventory/internal/core/services"
)

type ReservationHandler struct {
	svc *services.ReservationService
}

func NewReservationHandler(svc *services.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

func (h *ReservationHandler) List(c *gin.Context) {
	respond(c, http.StatusOK, h.svc.GetAll(c.Request.Context()))
}

func (h *ReservationHandler) Get(c *gin.Context) {
	h.byID(c, h.svc.GetByID)
}

func (h *ReservationHandler) Create(c *gin.Context) {
	var req services.ReservationAddDTO
	if !bindJSON(c, &req) {
		return
	}

	respond(c, http.StatusCreated, h.svc.Create(c.Request.Context(), req))
}

func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req services.ReservationUpdateDTO
	if !bindJSON(c, &req) {
		return
	}
	req.ID = id

	respond(c, http.StatusOK, h.svc.Update(c.Request.Context(), req))
}

func (h *ReservationHandler) Deactivate(c *gin.Context) {
	h.byID(c, h.svc.Deactivate)
}

func (h *ReservationHandler) Confirm(c *gin.Context) {
	h.byID(c, h.svc.Confirm)
}

func (h *ReservationHandler) CheckIn(c *gin.Context) {
	h.byID(c, h.svc.CheckIn)
}

func (h *ReservationHandler) CheckOut(c *gin.Context) {
	h.byID(c, h.svc.CheckOut)
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	h.byID(c, h.svc.Cancel)
}

func (h *ReservationHandler) byID(c *gin.Context, op func(ctx context.Context, id int64) domain.OperationResult[services.ReservationDTO]) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	respond(c, http.StatusOK, op(c.Request.Context(), id))
}
