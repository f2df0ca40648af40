package main

import (
	"context"
	"log"
	"os"

	"aarka/internal/auth"
	"aarka/internal/catalog"
	"aarka/internal/db"
	"aarka/internal/images"
	"aarka/internal/kiosk"
	"aarka/internal/router"
	"aarka/internal/storage"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"KIOSK_PROVISION_KEY",
		"ADMIN_PASSWORD",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	ctx := context.Background()

	// ───────────────────────── REPOS ─────────────────────────
	// DATABASE_URL is optional: without it the kiosk runs standalone on
	// the bundled menu and in-memory device registry.
	var catalogRepo catalog.Repository
	var deviceRepo auth.DeviceRepository

	if os.Getenv("DATABASE_URL") != "" {
		pgDB := db.ConnectPostgres()
		defer pgDB.Close()

		pgCatalog := catalog.NewPostgresRepository(pgDB)
		seedCatalogIfEmpty(ctx, pgCatalog)

		catalogRepo = pgCatalog
		deviceRepo = auth.NewPostgresDeviceRepository(pgDB)
	} else {
		log.Println("DATABASE_URL not set, running on in-memory storage")
		catalogRepo = catalog.NewSeededRepository()
		deviceRepo = auth.NewInMemoryDeviceRepository()
	}

	// ───────────────────────── CATALOG ─────────────────────────
	catalogService := catalog.NewService(catalogRepo)
	if err := catalogService.Load(ctx); err != nil {
		log.Fatal("Catalog load failed:", err)
	}
	log.Printf(
		"Catalog loaded: %d items, %d categories",
		len(catalogService.Items()),
		len(catalogService.Categories()),
	)

	// ───────────────────────── IMAGE STORAGE ─────────────────────────
	var uploader images.Uploader
	if storage.Configured() {
		r2Client, err := storage.NewR2Client(ctx)
		if err != nil {
			log.Fatal("R2 init failed:", err)
		}
		uploader = r2Client
	} else {
		log.Println("R2 not configured, image uploads disabled")
	}

	resolver := images.NewSeededResolver()

	// ───────────────────────── AUTH ─────────────────────────
	authService, err := auth.NewService(
		deviceRepo,
		os.Getenv("KIOSK_PROVISION_KEY"),
		os.Getenv("ADMIN_PASSWORD"),
	)
	if err != nil {
		log.Fatal("Auth init failed:", err)
	}

	// ───────────────────────── KIOSK ─────────────────────────
	kioskService := kiosk.NewService(kiosk.NewStore(), catalogService)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(router.Handlers{
		Auth:         auth.NewHandler(authService),
		Catalog:      catalog.NewHandler(catalogService),
		CatalogAdmin: catalog.NewAdminHandler(catalogService),
		Images:       images.NewHandler(catalogService, resolver),
		ImagesAdmin:  images.NewAdminHandler(resolver, uploader),
		Kiosk:        kiosk.NewHandler(kioskService),
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("Kiosk API running at http://localhost:8000")
	if err := r.Run(":8000"); err != nil {
		log.Fatal(err)
	}
}

// seedCatalogIfEmpty loads the bundled menu into a fresh database so a
// new deployment boots with something to sell.
func seedCatalogIfEmpty(ctx context.Context, repo catalog.Repository) {
	items, err := repo.ListItems(ctx)
	if err != nil {
		log.Fatal("Catalog check failed:", err)
	}
	if len(items) > 0 {
		return
	}

	log.Println("Empty catalog, seeding default menu")
	if err := repo.ReplaceAll(ctx, catalog.DefaultItems(), catalog.DefaultCategories()); err != nil {
		log.Fatal("Catalog seed failed:", err)
	}
}
