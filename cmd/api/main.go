package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"agendamentos/internal/config"
	"agendamentos/internal/database"
	"agendamentos/internal/middleware"
	"agendamentos/internal/modules/analytics"
	"agendamentos/internal/modules/auth"
	"agendamentos/internal/modules/booking"
	"agendamentos/internal/modules/catalog"
	"agendamentos/internal/modules/discount"
	jwtsvc "agendamentos/internal/pkg/jwt"
	"agendamentos/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	consultoriaRepo := repository.NewConsultoriaRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	discountRepo := repository.NewDiscountRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := analytics.NewHub()
	dispatcher := analytics.NewDispatcher(analyticsRepo, hub, cfg.AnalyticsBuffer)
	defer dispatcher.Close()
	defer hub.Close()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(consultoriaRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	discountService := discount.NewService(discountRepo, consultoriaRepo)
	discountHandler := discount.NewHandler(discountService)

	bookingService := booking.NewService(bookingRepo, consultoriaRepo, discountRepo, dispatcher, cfg.DefaultTimezone)
	bookingHandler := booking.NewHandler(bookingService)

	analyticsHandler := analytics.NewHandler(analyticsRepo, hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		discountHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(protected)
		}

		// admin
		admin := v1.Group("/admin")
		admin.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			discountHandler.RegisterAdminRoutes(admin)
			analyticsHandler.RegisterRoutes(admin)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
