package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

type AdminHandler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// --------------------------------------------------
// Kiosk reads (public)
// --------------------------------------------------
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.service.Categories(),
	})
}

func (h *Handler) ListItems(c *gin.Context) {
	items := h.service.Items()

	// Optional ?category= narrowing for screens that fetch one column
	// at a time.
	if category := c.Query("category"); category != "" {
		filtered := make([]Item, 0, len(items))
		for _, item := range items {
			if item.Category == category {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) GetItem(c *gin.Context) {
	item, ok := h.service.Find(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// --------------------------------------------------
// Admin: reload catalog from storage
// --------------------------------------------------
func (h *AdminHandler) Reload(c *gin.Context) {
	if err := h.service.Load(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "catalog reloaded",
		"items":      len(h.service.Items()),
		"categories": len(h.service.Categories()),
	})
}
