package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Alexander2227/tennis-pro-system/internal/repository"
	"github.com/Alexander2227/tennis-pro-system/internal/service"
	transport "github.com/Alexander2227/tennis-pro-system/internal/transport/http"
	"github.com/Alexander2227/tennis-pro-system/pkg/config"
	"github.com/Alexander2227/tennis-pro-system/pkg/db"
	"github.com/Alexander2227/tennis-pro-system/pkg/mq"
	"github.com/Alexander2227/tennis-pro-system/pkg/obs"
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

func main() {
	_ = godotenv.Load()
	cfg := must(config.Load())

	loc := time.Local
	if cfg.FacilityTZ != "" && cfg.FacilityTZ != "Local" {
		loc = must(time.LoadLocation(cfg.FacilityTZ))
	}

	if cfg.OTELEnabled {
		shutdown := obs.InitTracer("tennis-pro-server", cfg.OTELEndpoint, cfg.Env)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(ctx)
		}()
	}

	// DB
	gdb := db.Open(cfg.PGDSN)
	resRepo := repository.NewReservationRepo(gdb)
	staffRepo := repository.NewStaffRepo(gdb)
	must(0, resRepo.Migrate())
	must(0, staffRepo.Migrate())

	// Publisher for reservation.* events (optional)
	var pub service.EventPublisher
	if cfg.RabbitURL != "" {
		p := must(mq.NewPublisher(cfg.RabbitURL, cfg.ReservationExchange))
		defer p.Close()
		pub = p
	}

	booking := service.NewBookingSvc(resRepo, pub, loc)
	analytics := service.NewAnalyticsSvc(resRepo, loc)
	staff := service.NewStaffSvc(staffRepo, time.Duration(cfg.JWTExpireHr)*time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	must(0, staff.EnsureDefaults(ctx))
	cancel()

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      transport.Router(booking, analytics, staff),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Println("[server] listening on", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[server] forced shutdown: %v", err)
	}
	log.Println("[server] stopped")
}
