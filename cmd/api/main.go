package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "sewa-backend/internal/adapter/http"
	idemp "sewa-backend/internal/adapter/middleware"
	"sewa-backend/internal/adapter/repository/mysql"
	"sewa-backend/internal/config"
	"sewa-backend/internal/domain/donation"
	"sewa-backend/internal/infrastructure/cache"
	"sewa-backend/internal/infrastructure/db"
	donationUC "sewa-backend/internal/usecase/donation"
	reportUC "sewa-backend/internal/usecase/report"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(&donation.Donation{}, &donation.Rejection{}); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	repo := mysql.NewDonationRepository(gdb)
	donations := donationUC.NewUsecase(repo)
	reports := reportUC.NewUsecase(repo)

	h := httpadp.NewHandler()
	dh := httpadp.NewDonationHandler(donations)
	rh := httpadp.NewReportHandler(reports)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger(), middleware.Recover())
	e.Validator = httpadp.NewValidator()

	// routes
	e.GET("/health", h.Health)

	food := e.Group("/api/food", idemp.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	food.POST("/add", dh.CreateDonation)
	food.GET("/available", dh.ListAvailable)
	food.GET("/history/:hotel_id", dh.HotelHistory)
	food.GET("/ngo/history/:ngo_id", dh.NgoHistory)
	food.GET("/:donation_id", dh.GetDonation)
	food.PUT("/:donation_id/accept", dh.AcceptDonation)
	food.PUT("/:donation_id/reject", dh.RejectDonation)

	e.GET("/api/reports/overview/:ngo_id", rh.NgoOverview)
	e.GET("/api/reports/donations/:ngo_id", rh.NgoDonations)
	e.GET("/api/reports/impact/:ngo_id", rh.NgoImpact)
	e.GET("/api/hotel-reports/:hotel_id", rh.HotelReport)
	e.GET("/api/hotel/:hotel_id/dashboard", rh.HotelDashboard)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
