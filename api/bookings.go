package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/siliguripickdrop/backend/internal/domain"
	"github.com/siliguripickdrop/backend/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type listBookingsResponse struct {
	Success  bool             `json:"success"`
	Bookings []domain.Booking `json:"bookings"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/bookings", h.create)
	router.GET("/bookings", h.list)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req booking.SubmitBookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	result, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		if domain.IsValidation(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	if bookings == nil {
		bookings = []domain.Booking{}
	}
	c.JSON(http.StatusOK, listBookingsResponse{Success: true, Bookings: bookings})
}
