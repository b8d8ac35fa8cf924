package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/Alexander2227/tennis-pro-system/pkg/mq"
)

// Keys the worker subscribes to on the reservation exchange.
var Bindings = []string{"reservation.created", "reservation.cancelled", "reservation.checked_in"}

type reservationEvent struct {
	Event string `json:"event"`
	At    string `json:"at"`
	Data  struct {
		Code     string `json:"code"`
		Date     string `json:"date"`
		TimeSlot string `json:"time_slot"`
		Kind     string `json:"kind"`
		Status   string `json:"status"`
		StaffID  string `json:"staff_id"`
	} `json:"data"`
}

type Worker struct {
	cons     *mq.Consumer
	notifier Notifier
}

func NewWorker(cons *mq.Consumer, n Notifier) *Worker {
	return &Worker{cons: cons, notifier: n}
}

// Run consumes reservation events until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	msgs, err := w.cons.Deliveries(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			var evt reservationEvent
			if err := json.Unmarshal(d.Body, &evt); err != nil {
				log.Printf("[notify] unmarshal error key=%s: %v", d.RoutingKey, err)
				_ = d.Nack(false, false)
				continue
			}
			if err := w.notifier.Notify(d.RoutingKey, describe(d.RoutingKey, evt)); err != nil {
				log.Printf("[notify] deliver error key=%s: %v", d.RoutingKey, err)
				_ = d.Nack(false, true)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func describe(key string, evt reservationEvent) string {
	switch key {
	case "reservation.created":
		return fmt.Sprintf("reservation %s booked for %s %s (%s)", evt.Data.Code, evt.Data.Date, evt.Data.TimeSlot, evt.Data.Kind)
	case "reservation.cancelled":
		return fmt.Sprintf("reservation %s for %s %s cancelled", evt.Data.Code, evt.Data.Date, evt.Data.TimeSlot)
	case "reservation.checked_in":
		return fmt.Sprintf("reservation %s checked in as %s", evt.Data.Code, evt.Data.Status)
	default:
		return fmt.Sprintf("reservation %s: %s", evt.Data.Code, key)
	}
}
