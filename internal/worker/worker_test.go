package worker

import (
	"testing"

	"github.com/ebarbosa87/pixmart/internal/client"
	"github.com/ebarbosa87/pixmart/internal/config"
	"github.com/ebarbosa87/pixmart/internal/logger"
	"github.com/sony/gobreaker"
)

func TestCircuitBreaker_NotFoundStaysClosed(t *testing.T) {
	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	breaker := InitCircuitBreaker()
	for i := 0; i < 10; i++ {
		_, _ = breaker.Execute(func() (interface{}, error) {
			return nil, client.ErrPaymentNotFound
		})
	}

	if breaker.State() != gobreaker.StateClosed {
		t.Errorf("Expected the breaker to stay closed on not-found answers, got: '%v'", breaker.State())
	}
}

func TestCircuitBreaker_TripsOnOutage(t *testing.T) {
	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	breaker := InitCircuitBreaker()
	for i := 0; i < 5; i++ {
		_, _ = breaker.Execute(func() (interface{}, error) {
			return nil, client.ErrGatewayUnavailable
		})
	}

	if breaker.State() != gobreaker.StateOpen {
		t.Errorf("Expected the breaker to open after consecutive outages, got: '%v'", breaker.State())
	}
}
