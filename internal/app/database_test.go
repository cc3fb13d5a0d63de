//go:build !integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/food-order-service/config"
	"github.com/guttosm/food-order-service/internal/circuitbreaker"
)

func TestInitializeDatabase_Disabled(t *testing.T) {
	components := InitializeDatabase(config.DatabaseConfig{Enabled: false})
	assert.Nil(t, components)
	assert.NoError(t, components.Close(context.Background()), "Close is nil-safe")
}

func TestNewCircuitBreaker(t *testing.T) {
	cfg := config.DatabaseConfig{
		CircuitBreakerFailureThreshold: 2,
		CircuitBreakerSuccessThreshold: 1,
		CircuitBreakerTimeout:          time.Minute,
	}

	cb := newCircuitBreaker(cfg, "mongodb-menu-items")
	assert.Equal(t, "mongodb-menu-items", cb.Name())
	assert.Equal(t, circuitbreaker.StateClosed, cb.State())

	for i := 0; i < 2; i++ {
		_ = cb.Execute(context.Background(), func() error { return assert.AnError })
	}
	assert.True(t, cb.IsOpen())
}
