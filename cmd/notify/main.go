package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/Alexander2227/tennis-pro-system/internal/notify"
	"github.com/Alexander2227/tennis-pro-system/pkg/mq"
	"github.com/Alexander2227/tennis-pro-system/pkg/obs"
)

type Cfg struct {
	RabbitURL           string `envconfig:"RABBIT_URL" required:"true"`
	ReservationExchange string `envconfig:"RESERVATION_EXCHANGE" default:"reservation.exchange"`
	NotifyQueue         string `envconfig:"NOTIFY_QUEUE" default:"notify.reservation.q"`
	OTELEnabled         bool   `envconfig:"OTEL_ENABLED" default:"false"`
	OTELEndpoint        string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"otel-collector:4317"`
	Env                 string `envconfig:"ENV" default:"dev"`
}

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

func main() {
	_ = godotenv.Load()
	var cfg Cfg
	must(0, envconfig.Process("", &cfg))

	if cfg.OTELEnabled {
		shutdown := obs.InitTracer("tennis-pro-notify", cfg.OTELEndpoint, cfg.Env)
		defer func() {
			sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer scancel()
			_ = shutdown(sctx)
		}()
	}

	cons := must(mq.NewConsumer(cfg.RabbitURL, cfg.ReservationExchange, cfg.NotifyQueue, notify.Bindings))
	defer cons.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := notify.NewWorker(cons, notify.NewConsole())
	go func() {
		if err := w.Run(ctx); err != nil {
			log.Fatalf("[notify] worker: %v", err)
		}
	}()
	log.Println("[notify] consuming", notify.Bindings)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	cancel()
	log.Println("[notify] stopped")
}
