package lotto

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPerformanceMonitor(t *testing.T) {
	t.Run("records_batches", func(t *testing.T) {
		pm := NewPerformanceMonitor()
		pm.RecordBatch(true, 5, 10*time.Millisecond)
		pm.RecordBatch(true, 5, 30*time.Millisecond)
		pm.RecordBatch(false, 0, 20*time.Millisecond)

		m := pm.GetMetrics()
		assert.Equal(t, int64(3), m.TotalBatches)
		assert.Equal(t, int64(2), m.SuccessfulBatches)
		assert.Equal(t, int64(1), m.FailedBatches)
		assert.Equal(t, int64(10), m.SetsGenerated)
		assert.Equal(t, 20*time.Millisecond, m.GetAverageBatchTime())
		assert.InDelta(t, 66.67, m.GetSuccessRate(), 0.01)
	})

	t.Run("records_fortune_and_validation", func(t *testing.T) {
		pm := NewPerformanceMonitor()
		pm.RecordFortune(true)
		pm.RecordFortune(false)
		pm.RecordFortune(true)
		pm.RecordFortune(true)
		pm.RecordValidationFailure()

		m := pm.GetMetrics()
		assert.Equal(t, int64(4), m.FortuneAnalyses)
		assert.Equal(t, int64(1), m.FortuneFailures)
		assert.Equal(t, int64(1), m.ValidationFailures)
		assert.InDelta(t, 25.0, m.GetFortuneFailureRate(), 1e-9)
	})

	t.Run("disabled_records_nothing", func(t *testing.T) {
		pm := NewPerformanceMonitor()
		pm.Disable()
		assert.False(t, pm.IsEnabled())

		pm.RecordBatch(true, 5, time.Millisecond)
		pm.RecordFortune(false)
		pm.RecordValidationFailure()
		assert.Zero(t, pm.GetMetrics().TotalBatches)
		assert.Zero(t, pm.GetMetrics().FortuneAnalyses)
		assert.Zero(t, pm.GetMetrics().ValidationFailures)

		pm.Enable()
		pm.RecordBatch(true, 5, time.Millisecond)
		assert.Equal(t, int64(1), pm.GetMetrics().TotalBatches)
	})

	t.Run("reset", func(t *testing.T) {
		pm := NewPerformanceMonitor()
		pm.RecordBatch(true, 5, time.Millisecond)
		pm.ResetMetrics()

		m := pm.GetMetrics()
		assert.Zero(t, m.TotalBatches)
		assert.Zero(t, m.SetsGenerated)
		assert.Zero(t, m.GetSuccessRate())
		assert.Zero(t, m.GetFortuneFailureRate())
		assert.NotZero(t, m.StartTime)
	})

	t.Run("concurrent_recording", func(t *testing.T) {
		pm := NewPerformanceMonitor()
		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 100 {
					pm.RecordBatch(true, 5, time.Microsecond)
				}
			}()
		}
		wg.Wait()

		m := pm.GetMetrics()
		assert.Equal(t, int64(1000), m.TotalBatches)
		assert.Equal(t, int64(5000), m.SetsGenerated)
	})
}
