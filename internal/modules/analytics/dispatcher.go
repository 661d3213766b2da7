package analytics

import (
	"context"
	"log"
	"time"

	"agendamentos/internal/domain"
)

type Repository interface {
	Insert(ctx context.Context, e *domain.AnalyticsEvent) error
	ListRecent(ctx context.Context, limit int) ([]domain.AnalyticsEvent, error)
}

type Broadcaster interface {
	Broadcast(e domain.AnalyticsEvent)
}

// Dispatcher decouples event writes from the request path. Publish never
// blocks: a full buffer drops the event, and insert failures are logged and
// swallowed so telemetry can never fail a booking.
type Dispatcher struct {
	repo   Repository
	hub    Broadcaster
	events chan domain.AnalyticsEvent
	done   chan struct{}
}

func NewDispatcher(repo Repository, hub Broadcaster, buffer int) *Dispatcher {
	d := &Dispatcher{
		repo:   repo,
		hub:    hub,
		events: make(chan domain.AnalyticsEvent, buffer),
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) Publish(e domain.AnalyticsEvent) {
	select {
	case d.events <- e:
	default:
		log.Printf("analytics: buffer full, dropping event type=%s", e.EventType)
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for e := range d.events {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.repo.Insert(ctx, &e); err != nil {
			log.Printf("analytics: insert failed type=%s err=%v", e.EventType, err)
		} else if d.hub != nil {
			d.hub.Broadcast(e)
		}
		cancel()
	}
}

// Close drains buffered events and waits for the worker to finish.
func (d *Dispatcher) Close() {
	close(d.events)
	<-d.done
}
