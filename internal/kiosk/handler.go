package kiosk

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"aarka/internal/session"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func respond(c *gin.Context, snap Snapshot, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, snap)
	}
}

// --------------------------------------------------
// Lifecycle
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	c.JSON(http.StatusCreated, h.service.Create())
}

func (h *Handler) Get(c *gin.Context) {
	snap, err := h.service.Get(c.Param("id"))
	respond(c, snap, err)
}

func (h *Handler) Reset(c *gin.Context) {
	snap, err := h.service.Reset(c.Param("id"))
	respond(c, snap, err)
}

// --------------------------------------------------
// Splash + welcome
// --------------------------------------------------
func (h *Handler) ContinueFromSplash(c *gin.Context) {
	snap, err := h.service.ContinueFromSplash(c.Param("id"))
	respond(c, snap, err)
}

func (h *Handler) SetOrderType(c *gin.Context) {
	var req struct {
		OrderType session.OrderType `json:"order_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order_type is required"})
		return
	}

	snap, err := h.service.SetOrderType(c.Param("id"), req.OrderType)
	respond(c, snap, err)
}

func (h *Handler) SetPartySize(c *gin.Context) {
	var req struct {
		Adults int `json:"adults"`
		Kids   int `json:"kids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid party size"})
		return
	}

	snap, err := h.service.SetPartySize(c.Param("id"), session.PartySize{
		Adults: req.Adults,
		Kids:   req.Kids,
	})
	respond(c, snap, err)
}

func (h *Handler) SetLanguage(c *gin.Context) {
	var req struct {
		Language session.Language `json:"language" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "language is required"})
		return
	}

	snap, err := h.service.SetLanguage(c.Param("id"), req.Language)
	respond(c, snap, err)
}

func (h *Handler) ContinueFromWelcome(c *gin.Context) {
	snap, err := h.service.ContinueFromWelcome(c.Param("id"))
	respond(c, snap, err)
}

// --------------------------------------------------
// Menu
// --------------------------------------------------
func (h *Handler) SelectCategory(c *gin.Context) {
	var req struct {
		Category string `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
		return
	}

	snap, err := h.service.SelectCategory(c.Param("id"), req.Category)
	respond(c, snap, err)
}

func (h *Handler) OpenItem(c *gin.Context) {
	snap, err := h.service.OpenItem(c.Param("id"), c.Param("itemId"))
	respond(c, snap, err)
}

func (h *Handler) ToggleStaged(c *gin.Context) {
	snap, err := h.service.ToggleStaged(c.Param("id"), c.Param("itemId"))
	respond(c, snap, err)
}

func (h *Handler) ConfirmStaged(c *gin.Context) {
	snap, err := h.service.ConfirmStaged(c.Param("id"))
	respond(c, snap, err)
}

func (h *Handler) ToggleFilter(c *gin.Context) {
	var req struct {
		Filter session.DietaryFilter `json:"filter"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter"})
		return
	}

	snap, err := h.service.ToggleFilter(c.Param("id"), req.Filter)
	respond(c, snap, err)
}

// --------------------------------------------------
// Customize
// --------------------------------------------------
func (h *Handler) ConfirmCustomize(c *gin.Context) {
	var req struct {
		SpiceLevel string   `json:"spice_level"`
		Other      []string `json:"other"`
		AddOns     []string `json:"add_ons"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customization"})
		return
	}

	snap, err := h.service.ConfirmCustomize(c.Param("id"), &session.Customization{
		SpiceLevel: req.SpiceLevel,
		Other:      req.Other,
		AddOns:     req.AddOns,
	})
	respond(c, snap, err)
}

func (h *Handler) CancelCustomize(c *gin.Context) {
	snap, err := h.service.CancelCustomize(c.Param("id"))
	respond(c, snap, err)
}

// --------------------------------------------------
// Cart + review
// --------------------------------------------------
func (h *Handler) UpdateLineQuantity(c *gin.Context) {
	// Line keys carry the customization fingerprint, which is hostile
	// to URL paths, so they travel in the body.
	var req struct {
		LineKey string `json:"line_key" binding:"required"`
		Delta   int    `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "line_key and delta are required"})
		return
	}

	snap, err := h.service.UpdateLineQuantity(c.Param("id"), req.LineKey, req.Delta)
	respond(c, snap, err)
}

func (h *Handler) AddSuggested(c *gin.Context) {
	snap, err := h.service.AddSuggested(c.Param("id"), c.Param("itemId"))
	respond(c, snap, err)
}

func (h *Handler) Checkout(c *gin.Context) {
	snap, err := h.service.Checkout(c.Param("id"))
	respond(c, snap, err)
}

func (h *Handler) BackToMenu(c *gin.Context) {
	snap, err := h.service.BackToMenu(c.Param("id"))
	respond(c, snap, err)
}

func (h *Handler) SetSpecialRequests(c *gin.Context) {
	var req struct {
		SpecialRequests string `json:"special_requests"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	snap, err := h.service.SetSpecialRequests(c.Param("id"), req.SpecialRequests)
	respond(c, snap, err)
}

func (h *Handler) PlaceOrder(c *gin.Context) {
	snap, err := h.service.PlaceOrder(c.Param("id"))
	respond(c, snap, err)
}

func (h *Handler) Review(c *gin.Context) {
	review, err := h.service.Review(c.Param("id"))
	if errors.Is(err, ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, review)
}
