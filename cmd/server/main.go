package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"turnero/internal/api"
	"turnero/internal/auth"
	"turnero/internal/config"
	"turnero/internal/repository"
	"turnero/internal/service"
)

func main() {
	godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	providerRepo := repository.NewProviderRepository(db)
	clientRepo := repository.NewClientRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	jobRepo := repository.NewJobRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	adminAuthRepo := repository.NewAdminAuthRepository(db)

	scheduleSvc := service.NewScheduleService(providerRepo, clientRepo, availabilityRepo, reservationRepo)
	jobSvc := service.NewJobService(jobRepo)
	adminSvc := service.NewAdminService(providerRepo, clientRepo, adminRepo)
	adminAuthSvc := service.NewAdminAuthService(adminAuthRepo, cfg.JWTSecret)

	scheduleHandler := api.NewScheduleHandler(scheduleSvc)
	adminHandler := api.NewAdminHandler(adminSvc)
	adminAuthHandler := api.NewAdminAuthHandler(adminAuthSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/schedule/provider/{name}/availability", scheduleHandler.CreateAvailability).Methods("POST")
	r.HandleFunc("/api/schedule/provider/{name}/available-slots", scheduleHandler.GetAvailableSlots).Methods("GET")
	r.HandleFunc("/api/schedule/reservation", scheduleHandler.CreateReservation).Methods("POST")
	r.HandleFunc("/api/schedule/reservation/{id}/confirm", scheduleHandler.ConfirmReservation).Methods("POST")

	// Admin endpoints (login open, the rest protected)
	r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods("POST")
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware(cfg.JWTSecret))
	admin.HandleFunc("/register", adminAuthHandler.CreateUserAdmin).Methods("POST")
	admin.HandleFunc("/providers", adminHandler.CreateProvider).Methods("POST")
	admin.HandleFunc("/clients", adminHandler.CreateClient).Methods("POST")
	admin.HandleFunc("/reservations", adminHandler.ListReservations).Methods("GET")

	// The expiry sweep runs on its own schedule, independent of request
	// traffic. Started here and stopped on shutdown so the timer has an
	// explicit owner.
	c := cron.New()
	if _, err := c.AddFunc(cfg.SweepSchedule, func() {
		if err := jobSvc.RemoveExpiredReservations(); err != nil {
			log.Printf("Expiry sweep failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule expiry sweep: %v", err)
	}
	c.Start()

	corsMiddleware := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handlers.CombinedLoggingHandler(os.Stdout, corsMiddleware(r)),
	}

	go func() {
		log.Printf("Server running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	<-c.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
}
