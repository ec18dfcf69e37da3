package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ebarbosa87/pixmart/internal/client"
	"github.com/ebarbosa87/pixmart/internal/logger"
	"github.com/ebarbosa87/pixmart/internal/services"
	"github.com/sony/gobreaker"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "payment-gateway",
		Timeout: 30 * time.Second, // probe again after 30s
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// a missing payment is an answer from the gateway, not an outage
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, client.ErrPaymentNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker '%s': %s -> %s", name, from, to)
		},
	})
}

// PaymentWorker - background reconciliation of pending orders whose gateway
// webhook never arrived
type PaymentWorker struct {
	Payments     services.PaymentsService
	Breaker      *gobreaker.CircuitBreaker
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	BatchSize    int
	PollInterval time.Duration
}

// NewPaymentWorker - worker creation
func NewPaymentWorker(payments services.PaymentsService) *PaymentWorker {
	return &PaymentWorker{
		Payments:     payments,
		Breaker:      InitCircuitBreaker(),
		QuitChan:     make(chan struct{}),
		BatchSize:    10,
		PollInterval: 30 * time.Second,
	}
}

// Start - runs the worker in the background
func (w *PaymentWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - shuts the worker down cleanly
func (w *PaymentWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

func (w *PaymentWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("PaymentWorker signal stop")
			return
		case <-ticker.C:
			w.ProcessBatch(ctx)
		}
	}
}

// ProcessBatch - reconciles a batch of stale pending orders
func (w *PaymentWorker) ProcessBatch(ctx context.Context) {
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn("%s unavailable. Waiting...", w.Breaker.Name())
		return
	}

	orders, err := w.Payments.GetStaleOrders(ctx, w.BatchSize)
	if err != nil {
		logger.Error("error get orders for reconciliation", err)
		return
	}

	for _, order := range orders {
		_, err := w.Breaker.Execute(func() (interface{}, error) {
			return nil, w.Payments.ReconcileOrder(ctx, order)
		})

		if err != nil {
			logger.Error("Error order reconciliation", err)
		}
	}
}
