package images

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"aarka/internal/catalog"
)

var allowedExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

func ValidateImageExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == "" {
		return errors.New("file extension missing")
	}

	if !allowedExt[ext] {
		return errors.New("file type not allowed")
	}

	return nil
}

// Uploader pushes image bytes to object storage and returns the public
// URL. Satisfied by storage.R2Client.
type Uploader interface {
	Upload(ctx context.Context, key string, file multipart.File, contentType string) (string, error)
}

type Handler struct {
	catalog  *catalog.Service
	resolver *Resolver
}

type AdminHandler struct {
	resolver *Resolver
	uploader Uploader
}

func NewHandler(cat *catalog.Service, resolver *Resolver) *Handler {
	return &Handler{catalog: cat, resolver: resolver}
}

func NewAdminHandler(resolver *Resolver, uploader Uploader) *AdminHandler {
	return &AdminHandler{resolver: resolver, uploader: uploader}
}

// --------------------------------------------------
// Ingredient overlay payload (hold-to-reveal)
// --------------------------------------------------
func (h *Handler) ItemIngredients(c *gin.Context) {
	item, ok := h.catalog.Find(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item_id":        item.ID,
		"name":           item.Name,
		"has_info":       item.HasDietaryInfo(),
		"ingredients":    h.resolver.ResolveAll(item.Ingredients),
		"allergens":      item.Allergens,
		"is_vegan":       item.IsVegan,
		"is_vegetarian":  item.IsVegetarian,
		"is_gluten_free": item.IsGlutenFree,
	})
}

// --------------------------------------------------
// Admin: upload ingredient art
// --------------------------------------------------
func (h *AdminHandler) Upload(c *gin.Context) {
	if h.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage not configured"})
		return
	}

	ingredient := c.PostForm("ingredient")
	if ingredient == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ingredient is required"})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	defer file.Close()

	if err := ValidateImageExtension(header.Filename); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key := fmt.Sprintf(
		"ingredients/%s%s",
		uuid.New().String(),
		strings.ToLower(filepath.Ext(header.Filename)),
	)

	url, err := h.uploader.Upload(
		c.Request.Context(),
		key,
		file,
		header.Header.Get("Content-Type"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.resolver.Register(ingredient, url)

	c.JSON(http.StatusCreated, gin.H{
		"ingredient": ingredient,
		"url":        url,
	})
}
