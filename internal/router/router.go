package router

import (
	"database/sql"
	"net/http"
	"slices"

	"dance_site_backend/internal/config"
	"dance_site_backend/internal/handlers"
	"dance_site_backend/internal/middleware"
	"dance_site_backend/internal/repositories"
	"dance_site_backend/internal/services"
	"dance_site_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New builds the engine with the middleware chain and every route.
func New(cfg *config.Config, db *sql.DB) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.RequestID(), utils.GinLogger(), middleware.Recovery())
	engine.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	Setup(engine, db)
	return engine
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	if slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	c.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	c.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", middleware.RequestIDHeader}
	c.ExposeHeaders = []string{"Location", middleware.RequestIDHeader}
	return c
}

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	clientRepo := repositories.NewClientRepository(db)
	offeringRepo := repositories.NewServiceOfferingRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	testimonialRepo := repositories.NewTestimonialRepository(db)

	// Initialize Services
	clientService := services.NewClientService(clientRepo, db)
	offeringService := services.NewServiceOfferingService(offeringRepo, db)
	bookingService := services.NewBookingService(bookingRepo, clientRepo, offeringRepo, db)
	testimonialService := services.NewTestimonialService(testimonialRepo, db)

	// Initialize Handlers
	clientHandler := handlers.NewClientHandler(clientService)
	offeringHandler := handlers.NewServiceOfferingHandler(offeringService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	testimonialHandler := handlers.NewTestimonialHandler(testimonialService)

	engine.GET("/health", handlers.NewHealthHandler(db).Health)
	engine.NoRoute(handlers.NotFound)

	api := engine.Group("/api")
	{
		SetupBookingRoutes(api, bookingHandler)
		SetupClientRoutes(api, clientHandler)
		SetupServiceOfferingRoutes(api, offeringHandler)
		SetupTestimonialRoutes(api, testimonialHandler)
	}
}
