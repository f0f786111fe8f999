package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/siliguripickdrop/backend/internal/domain"
	"github.com/siliguripickdrop/backend/internal/service/status"
)

type StatusHandler struct {
	service status.StatusUseCase
}

type createStatusCheckRequest struct {
	ClientName string `json:"client_name"`
}

func NewStatusHandler(service status.StatusUseCase) *StatusHandler {
	return &StatusHandler{service: service}
}

func (h *StatusHandler) Register(router *gin.RouterGroup) {
	router.POST("/status", h.create)
	router.GET("/status", h.list)
}

func (h *StatusHandler) create(c *gin.Context) {
	var req createStatusCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	check, err := h.service.Create(c.Request.Context(), req.ClientName)
	if err != nil {
		if domain.IsValidation(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, check)
}

func (h *StatusHandler) list(c *gin.Context) {
	checks, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	if checks == nil {
		checks = []domain.StatusCheck{}
	}
	c.JSON(http.StatusOK, checks)
}
