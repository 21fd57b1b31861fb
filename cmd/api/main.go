package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/medlight/clinic-api/internal/config"
	authHandler "github.com/medlight/clinic-api/internal/handler/auth"
	doctorHandler "github.com/medlight/clinic-api/internal/handler/doctor"
	patientHandler "github.com/medlight/clinic-api/internal/handler/patient"
	recordHandler "github.com/medlight/clinic-api/internal/handler/record"
	serviceHandler "github.com/medlight/clinic-api/internal/handler/service"
	"github.com/medlight/clinic-api/internal/middleware"
	"github.com/medlight/clinic-api/internal/repository/postgres"
	"github.com/medlight/clinic-api/internal/router"
	authService "github.com/medlight/clinic-api/internal/service/auth"
	doctorService "github.com/medlight/clinic-api/internal/service/doctor"
	patientService "github.com/medlight/clinic-api/internal/service/patient"
	recordService "github.com/medlight/clinic-api/internal/service/record"
	svcService "github.com/medlight/clinic-api/internal/service/service"
	"github.com/medlight/clinic-api/pkg/logger"
	"github.com/medlight/clinic-api/pkg/security"
	"github.com/medlight/clinic-api/pkg/session"
)

const bcryptCost = 12

func main() {
	log := logger.NewLogger(&logger.Config{
		Level:      logger.InfoLevel,
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
	})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	sessions, err := newSessionStore(cfg.Session)
	if err != nil {
		log.Fatal(err, "failed to initialize session store")
	}

	// Repositories
	patientRepo := postgres.NewPatientRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)
	serviceRepo := postgres.NewServiceRepository(db)
	recordRepo := postgres.NewRecordRepository(db)
	userRepo := postgres.NewUserRepository(db)

	// Services
	patientSvc := patientService.NewService(patientRepo)
	doctorSvc := doctorService.NewService(doctorRepo)
	serviceSvc := svcService.NewService(serviceRepo)
	recordSvc := recordService.NewService(recordRepo, patientRepo, doctorRepo)
	authSvc := authService.NewService(userRepo, sessions, security.NewBcryptHasher(bcryptCost))

	// Handlers
	patientH := patientHandler.NewHandler(patientSvc, recordSvc)
	doctorH := doctorHandler.NewHandler(doctorSvc)
	serviceH := serviceHandler.NewHandler(serviceSvc)
	recordH := recordHandler.NewHandler(recordSvc)
	authH := authHandler.NewHandler(authSvc, cfg.Session.TTL)

	sessionMW := middleware.NewSessionMiddleware(sessions)

	routerCfg := router.Config{CORS: corsConfig(cfg.CORS)}
	if cfg.RateLimit.Enabled {
		routerCfg.RateLimit = rate.Limit(cfg.RateLimit.RequestsPerSecond)
		routerCfg.RateBurst = cfg.RateLimit.Burst
	}

	r := router.New(routerCfg, sessionMW, authH, patientH, doctorH, serviceH, recordH)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err, "server forced to shutdown")
	}

	log.Info("server exited properly")
}

func newSessionStore(cfg config.SessionConfig) (session.Store, error) {
	if cfg.Backend == "redis" {
		return session.NewRedisStore(cfg.RedisURL, cfg.TTL)
	}
	return session.NewMemoryStore(cfg.TTL), nil
}

func corsConfig(cfg config.CORSConfig) middleware.CORSConfig {
	cors := middleware.DefaultCORSConfig()
	if len(cfg.AllowedOrigins) > 0 {
		cors.AllowOrigins = cfg.AllowedOrigins
	}
	return cors
}
