package services

import (
	"context"
	"log"
	"time"

	"campuseats/internal/domain"
	rabbit "campuseats/internal/infra/rabbitmq"
	"campuseats/internal/repository"
)

const (
	// progressInterval must stay well under the shortest auto-rule
	// threshold (15s) so transitions land close to their deadline.
	progressInterval = 5 * time.Second
	expireInterval   = 5 * time.Minute
)

// Sweeper advances order statuses on a timer: the fast tick walks the
// auto-rule table, the slow tick force-completes anything stuck past
// the staleness bound. Every write is conditional on the status the
// sweep read, so concurrent sweeps (or a racing vendor update) cannot
// double-notify or undo a more advanced state.
type Sweeper struct {
	orders        repository.OrderRepository
	notifications repository.NotificationRepository
	publisher     rabbit.PublisherInterface

	now              func() time.Time
	progressInterval time.Duration
	expireInterval   time.Duration
}

func NewSweeper(
	orders repository.OrderRepository,
	notifications repository.NotificationRepository,
	publisher rabbit.PublisherInterface,
) *Sweeper {
	return &Sweeper{
		orders:           orders,
		notifications:    notifications,
		publisher:        publisher,
		now:              time.Now,
		progressInterval: progressInterval,
		expireInterval:   expireInterval,
	}
}

// Run blocks until the context is cancelled. Both ticks fire once
// immediately, then on their intervals. A failed tick is logged and
// skipped; it never stops the loop.
func (s *Sweeper) Run(ctx context.Context) error {
	log.Printf("order sweeper started: progress every %v, expire every %v", s.progressInterval, s.expireInterval)

	s.ProgressTick(ctx)
	s.ExpireTick(ctx)

	progress := time.NewTicker(s.progressInterval)
	defer progress.Stop()
	expire := time.NewTicker(s.expireInterval)
	defer expire.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("order sweeper stopped: %v", ctx.Err())
			return ctx.Err()
		case <-progress.C:
			s.ProgressTick(ctx)
		case <-expire.C:
			s.ExpireTick(ctx)
		}
	}
}

// ProgressTick applies every auto rule once. Each rule's query
// re-checks current status, so re-running a tick over already
// transitioned orders is a no-op.
func (s *Sweeper) ProgressTick(ctx context.Context) {
	now := s.now()

	for _, rule := range domain.AutoRules {
		cutoff := now.Add(-rule.After)

		due, err := s.orders.FindDue(rule, cutoff)
		if err != nil {
			log.Printf("sweep: finding %s orders failed: %v", rule.From, err)
			continue
		}

		for i := range due {
			order := &due[i]

			matched, err := s.orders.UpdateStatusIf(order.ID, rule.From, rule.To, now)
			if err != nil {
				log.Printf("sweep: advancing order %s failed: %v", order.OrderNumber, err)
				continue
			}
			if !matched {
				// Lost the race to a vendor update or another sweep.
				continue
			}

			log.Printf("auto-progressed order %s: %s -> %s", order.OrderNumber, rule.From, rule.To)

			if rule.Notification != "" {
				if notif, ok := domain.StatusNotification(order, rule.To); ok {
					if err := s.notifications.Create(notif); err != nil {
						log.Printf("sweep: notification for order %s failed: %v", order.OrderNumber, err)
					}
				}
			}

			s.publishStatusChanged(ctx, order, rule.From, rule.To, now)
		}
	}
}

// ExpireTick force-completes every non-terminal order older than the
// staleness bound in one bulk write. The path is an abnormal timeout,
// so it emits no notifications and no events.
func (s *Sweeper) ExpireTick(ctx context.Context) {
	cutoff := s.now().Add(-domain.ForceCompleteAge)

	n, err := s.orders.ForceCompleteOlderThan(cutoff)
	if err != nil {
		log.Printf("sweep: force-complete failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("force-completed %d stale orders", n)
	}
}

func (s *Sweeper) publishStatusChanged(ctx context.Context, order *domain.Order, from, to domain.OrderStatus, at time.Time) {
	evt := domain.OrderStatusChangedEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		VendorID:    order.VendorID,
		From:        from,
		To:          to,
		ChangedAt:   at,
	}

	if err := s.publisher.Publish(ctx, "order.status_changed", evt); err != nil {
		log.Printf("sweep: failed to publish status change for %s: %v", order.OrderNumber, err)
	}
}
