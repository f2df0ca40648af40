package router

import (
	"time"

	"aarka/internal/auth"
	"aarka/internal/catalog"
	"aarka/internal/images"
	"aarka/internal/kiosk"
	"aarka/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers collects everything the route table needs.
type Handlers struct {
	Auth         *auth.Handler
	Catalog      *catalog.Handler
	CatalogAdmin *catalog.AdminHandler
	Images       *images.Handler
	ImagesAdmin  *images.AdminHandler
	Kiosk        *kiosk.Handler
}

// New builds the full gin engine. Kept separate from main so httptest
// can exercise the real route table.
func New(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── AUTH ─────────────────────────
	r.POST("/devices/register", h.Auth.RegisterDevice)
	r.POST("/admin/login", h.Auth.AdminLogin)

	// ───────────────────────── CATALOG (PUBLIC) ─────────────────────────
	catalogGroup := r.Group("/catalog")
	{
		catalogGroup.GET("/categories", h.Catalog.ListCategories)
		catalogGroup.GET("/items", h.Catalog.ListItems)
		catalogGroup.GET("/items/:id", h.Catalog.GetItem)
		catalogGroup.GET("/items/:id/ingredients", h.Images.ItemIngredients)
	}

	// ───────────────────────── SESSIONS (KIOSK DEVICES) ─────────────────────────
	sessions := r.Group("/sessions")
	sessions.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleKiosk, auth.RoleAdmin),
	)
	{
		sessions.POST("", h.Kiosk.Create)
		sessions.GET("/:id", h.Kiosk.Get)
		sessions.POST("/:id/reset", h.Kiosk.Reset)

		sessions.POST("/:id/splash/continue", h.Kiosk.ContinueFromSplash)

		sessions.POST("/:id/welcome/order-type", h.Kiosk.SetOrderType)
		sessions.POST("/:id/welcome/party-size", h.Kiosk.SetPartySize)
		sessions.POST("/:id/welcome/language", h.Kiosk.SetLanguage)
		sessions.POST("/:id/welcome/continue", h.Kiosk.ContinueFromWelcome)

		sessions.POST("/:id/menu/category", h.Kiosk.SelectCategory)
		sessions.POST("/:id/menu/items/:itemId/open", h.Kiosk.OpenItem)
		sessions.POST("/:id/menu/stage/:itemId", h.Kiosk.ToggleStaged)
		sessions.POST("/:id/menu/stage/confirm", h.Kiosk.ConfirmStaged)
		sessions.POST("/:id/menu/filter", h.Kiosk.ToggleFilter)

		sessions.POST("/:id/customize/confirm", h.Kiosk.ConfirmCustomize)
		sessions.POST("/:id/customize/cancel", h.Kiosk.CancelCustomize)

		sessions.POST("/:id/cart/quantity", h.Kiosk.UpdateLineQuantity)
		sessions.POST("/:id/checkout", h.Kiosk.Checkout)

		sessions.GET("/:id/review", h.Kiosk.Review)
		sessions.POST("/:id/review/add/:itemId", h.Kiosk.AddSuggested)
		sessions.POST("/:id/review/special-requests", h.Kiosk.SetSpecialRequests)
		sessions.POST("/:id/review/back-to-menu", h.Kiosk.BackToMenu)
		sessions.POST("/:id/review/place-order", h.Kiosk.PlaceOrder)
	}

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.POST("/catalog/reload", h.CatalogAdmin.Reload)
		admin.POST("/images", h.ImagesAdmin.Upload)
	}

	return r
}
