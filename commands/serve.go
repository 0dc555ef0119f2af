package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"car-rental-backend/config"
	"car-rental-backend/controllers"
	"car-rental-backend/middleware"
	"car-rental-backend/routes"
	"car-rental-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(config.Load())
		},
	}
}

// seedAdmin creates the first admin account. Without ADMIN_PASSWORD nothing
// is seeded; Load only fills in the development password in debug mode.
func seedAdmin(users *services.UserService, cfg *config.Config) error {
	if cfg.AdminPassword == "" {
		log.Println("warning: ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}
	return users.EnsureAdmin(cfg.AdminUsername, cfg.AdminPassword)
}

func serve(cfg *config.Config) error {
	gin.SetMode(cfg.GinMode)

	sessions, err := services.NewSessionService(cfg.SessionSecret, cfg.SessionTTL)
	if err != nil {
		return fmt.Errorf("SESSION_SECRET: %w", err)
	}

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	log.Printf("database connection established (%s)", cfg.DBDriver)

	carService := services.NewCarService(db)
	bookingService := services.NewBookingService(db)
	userService := services.NewUserService(db)

	if err := seedAdmin(userService, cfg); err != nil {
		return err
	}

	router := routes.SetupRouter(
		controllers.NewCarController(carService),
		controllers.NewBookingController(bookingService),
		controllers.NewUserController(userService, sessions),
		middleware.RequireAuth(sessions, userService),
		cfg.CorsOrigins,
	)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-quit:
	}
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Println("server stopped gracefully")
	return nil
}
