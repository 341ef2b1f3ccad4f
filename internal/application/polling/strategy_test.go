package polling

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestFixedIntervalStrategy(t *testing.T) {
	s := NewFixedIntervalStrategy(30 * time.Second)

	assert.Equal(t, 30*time.Second, s.NextInterval(true))
	assert.Equal(t, 30*time.Second, s.NextInterval(false))
	s.Reset()
	assert.Equal(t, 30*time.Second, s.NextInterval(false))
}

func TestExponentialBackoffStrategy_GrowsOnFailure(t *testing.T) {
	logger, _ := test.NewNullLogger()
	s := NewExponentialBackoffStrategy(10*time.Second, 5*time.Minute, 2.0, logger)

	assert.Equal(t, 10*time.Second, s.NextInterval(false))
	assert.Equal(t, 20*time.Second, s.NextInterval(false))
	assert.Equal(t, 40*time.Second, s.NextInterval(false))
	assert.Equal(t, 80*time.Second, s.NextInterval(false))
}

func TestExponentialBackoffStrategy_CappedAtMaxInterval(t *testing.T) {
	logger, _ := test.NewNullLogger()
	s := NewExponentialBackoffStrategy(1*time.Minute, 5*time.Minute, 2.0, logger)

	for i := 0; i < 10; i++ {
		interval := s.NextInterval(false)
		assert.LessOrEqual(t, interval, 5*time.Minute)
	}
	assert.Equal(t, 5*time.Minute, s.NextInterval(false))
}

func TestExponentialBackoffStrategy_SuccessResets(t *testing.T) {
	logger, _ := test.NewNullLogger()
	s := NewExponentialBackoffStrategy(10*time.Second, 5*time.Minute, 2.0, logger)

	s.NextInterval(false)
	s.NextInterval(false)
	assert.Equal(t, 10*time.Second, s.NextInterval(true))
	// the sequence starts over after a success
	assert.Equal(t, 10*time.Second, s.NextInterval(false))
}

func TestExponentialBackoffStrategy_MultiplierFloor(t *testing.T) {
	logger, _ := test.NewNullLogger()
	s := NewExponentialBackoffStrategy(10*time.Second, 5*time.Minute, 0.5, logger)

	// a multiplier at or below 1 falls back to doubling
	s.NextInterval(false)
	assert.Equal(t, 20*time.Second, s.NextInterval(false))
}

func TestPollingController_RunsUntilCancelled(t *testing.T) {
	logger, _ := test.NewNullLogger()
	controller := NewPollingController(NewFixedIntervalStrategy(5*time.Millisecond), logger)

	var cycles int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- controller.Start(ctx, func(context.Context) error {
			atomic.AddInt32(&cycles, 1)
			return nil
		})
	}()

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&cycles) >= 3
	}, 2*time.Second, time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
