package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type registerDeviceRequest struct {
	Name         string `json:"name"`
	ProvisionKey string `json:"provision_key"`
}

func (h *Handler) RegisterDevice(c *gin.Context) {
	var req registerDeviceRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	device, token, err := h.service.RegisterDevice(req.Name, req.ProvisionKey)
	if errors.Is(err, ErrInvalidProvisionKey) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"device_id": device.ID,
		"name":      device.Name,
		"token":     token,
	})
}

type adminLoginRequest struct {
	Password string `json:"password"`
}

func (h *Handler) AdminLogin(c *gin.Context) {
	var req adminLoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, err := h.service.AdminLogin(req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
