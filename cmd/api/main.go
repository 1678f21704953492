package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"vehiclerental/internal/config"
	"vehiclerental/internal/database"
	"vehiclerental/internal/middleware"
	"vehiclerental/internal/modules/auth"
	"vehiclerental/internal/modules/booking"
	"vehiclerental/internal/modules/user"
	"vehiclerental/internal/modules/vehicle"
	jwtsvc "vehiclerental/internal/pkg/jwt"
	"vehiclerental/internal/repository"
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
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("migration failed: ", err)
	}

	userRepo := repository.NewUserRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	txm := repository.NewTxManager(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	userHandler := user.NewHandler(user.NewService(userRepo))
	vehicleHandler := vehicle.NewHandler(vehicle.NewService(vehicleRepo))

	bookingService := booking.NewService(txm, bookingRepo)
	bookingHandler := booking.NewHandler(bookingService)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweeper := booking.NewSweeper(txm, cfg.SweepInterval)
	sweeper.Start(ctx)

	r := gin.Default()

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		vehicleHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			userHandler.RegisterRoutes(protected)
			vehicleHandler.RegisterAdminRoutes(protected)
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
