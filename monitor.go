package lotto

import (
	"sync"
	"sync/atomic"
	"time"
)

// PerformanceMetrics 性能指标收集器
type PerformanceMetrics struct {
	// 推荐操作统计
	TotalBatches      int64 `json:"total_batches"`      // 总推荐次数
	SuccessfulBatches int64 `json:"successful_batches"` // 成功推荐次数
	FailedBatches     int64 `json:"failed_batches"`     // 失败推荐次数
	SetsGenerated     int64 `json:"sets_generated"`     // 生成的号码组数

	// 运势分析统计
	FortuneAnalyses int64 `json:"fortune_analyses"` // 运势分析次数
	FortuneFailures int64 `json:"fortune_failures"` // 运势分析失败次数

	// 输入校验统计
	ValidationFailures int64 `json:"validation_failures"` // 输入校验失败次数

	// 性能统计
	AverageBatchTime int64 `json:"average_batch_time"` // 平均推荐时间(纳秒)
	TotalBatchTime   int64 `json:"total_batch_time"`   // 总推荐时间(纳秒)

	// 时间戳
	StartTime      int64 `json:"start_time"`       // 开始时间
	LastUpdateTime int64 `json:"last_update_time"` // 最后更新时间
}

// GetSuccessRate 获取成功率
func (pm *PerformanceMetrics) GetSuccessRate() float64 {
	total := atomic.LoadInt64(&pm.TotalBatches)
	if total == 0 {
		return 0.0
	}
	successful := atomic.LoadInt64(&pm.SuccessfulBatches)
	return float64(successful) / float64(total) * 100.0
}

// GetFortuneFailureRate 获取运势分析失败率
func (pm *PerformanceMetrics) GetFortuneFailureRate() float64 {
	total := atomic.LoadInt64(&pm.FortuneAnalyses)
	if total == 0 {
		return 0.0
	}
	failures := atomic.LoadInt64(&pm.FortuneFailures)
	return float64(failures) / float64(total) * 100.0
}

// GetAverageBatchTime 获取平均推荐时间
func (pm *PerformanceMetrics) GetAverageBatchTime() time.Duration {
	return time.Duration(atomic.LoadInt64(&pm.AverageBatchTime))
}

// Reset 重置性能指标
func (pm *PerformanceMetrics) Reset() {
	atomic.StoreInt64(&pm.TotalBatches, 0)
	atomic.StoreInt64(&pm.SuccessfulBatches, 0)
	atomic.StoreInt64(&pm.FailedBatches, 0)
	atomic.StoreInt64(&pm.SetsGenerated, 0)
	atomic.StoreInt64(&pm.FortuneAnalyses, 0)
	atomic.StoreInt64(&pm.FortuneFailures, 0)
	atomic.StoreInt64(&pm.ValidationFailures, 0)
	atomic.StoreInt64(&pm.AverageBatchTime, 0)
	atomic.StoreInt64(&pm.TotalBatchTime, 0)
	atomic.StoreInt64(&pm.StartTime, time.Now().UnixNano())
	atomic.StoreInt64(&pm.LastUpdateTime, time.Now().UnixNano())
}

// ================================================================================

// PerformanceMonitor 性能监控器
type PerformanceMonitor struct {
	metrics *PerformanceMetrics
	mu      sync.RWMutex
	enabled bool
}

// NewPerformanceMonitor 创建新的性能监控器
func NewPerformanceMonitor() *PerformanceMonitor {
	pm := &PerformanceMonitor{
		metrics: &PerformanceMetrics{},
		enabled: true,
	}
	pm.metrics.Reset()
	return pm
}

// Enable 启用性能监控
func (pm *PerformanceMonitor) Enable() {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.enabled = true
}

// Disable 禁用性能监控
func (pm *PerformanceMonitor) Disable() {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.enabled = false
}

// IsEnabled 检查是否启用了性能监控
func (pm *PerformanceMonitor) IsEnabled() bool {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	return pm.enabled
}

// RecordBatch 记录推荐操作
func (pm *PerformanceMonitor) RecordBatch(success bool, sets int, duration time.Duration) {
	if !pm.IsEnabled() {
		return
	}

	atomic.AddInt64(&pm.metrics.TotalBatches, 1)
	atomic.AddInt64(&pm.metrics.TotalBatchTime, int64(duration))
	atomic.AddInt64(&pm.metrics.SetsGenerated, int64(sets))

	if success {
		atomic.AddInt64(&pm.metrics.SuccessfulBatches, 1)
	} else {
		atomic.AddInt64(&pm.metrics.FailedBatches, 1)
	}

	// 更新平均推荐时间
	total := atomic.LoadInt64(&pm.metrics.TotalBatches)
	totalTime := atomic.LoadInt64(&pm.metrics.TotalBatchTime)
	atomic.StoreInt64(&pm.metrics.AverageBatchTime, totalTime/total)

	atomic.StoreInt64(&pm.metrics.LastUpdateTime, time.Now().UnixNano())
}

// RecordFortune 记录运势分析
func (pm *PerformanceMonitor) RecordFortune(success bool) {
	if !pm.IsEnabled() {
		return
	}

	atomic.AddInt64(&pm.metrics.FortuneAnalyses, 1)
	if !success {
		atomic.AddInt64(&pm.metrics.FortuneFailures, 1)
	}
	atomic.StoreInt64(&pm.metrics.LastUpdateTime, time.Now().UnixNano())
}

// RecordValidationFailure 记录输入校验失败
func (pm *PerformanceMonitor) RecordValidationFailure() {
	if !pm.IsEnabled() {
		return
	}

	atomic.AddInt64(&pm.metrics.ValidationFailures, 1)
	atomic.StoreInt64(&pm.metrics.LastUpdateTime, time.Now().UnixNano())
}

// GetMetrics 获取性能指标的副本
func (pm *PerformanceMonitor) GetMetrics() PerformanceMetrics {
	return PerformanceMetrics{
		TotalBatches:       atomic.LoadInt64(&pm.metrics.TotalBatches),
		SuccessfulBatches:  atomic.LoadInt64(&pm.metrics.SuccessfulBatches),
		FailedBatches:      atomic.LoadInt64(&pm.metrics.FailedBatches),
		SetsGenerated:      atomic.LoadInt64(&pm.metrics.SetsGenerated),
		FortuneAnalyses:    atomic.LoadInt64(&pm.metrics.FortuneAnalyses),
		FortuneFailures:    atomic.LoadInt64(&pm.metrics.FortuneFailures),
		ValidationFailures: atomic.LoadInt64(&pm.metrics.ValidationFailures),
		AverageBatchTime:   atomic.LoadInt64(&pm.metrics.AverageBatchTime),
		TotalBatchTime:     atomic.LoadInt64(&pm.metrics.TotalBatchTime),
		StartTime:          atomic.LoadInt64(&pm.metrics.StartTime),
		LastUpdateTime:     atomic.LoadInt64(&pm.metrics.LastUpdateTime),
	}
}

// ResetMetrics 重置性能指标
func (pm *PerformanceMonitor) ResetMetrics() { pm.metrics.Reset() }
