package lotto

import (
	"context"
	"errors"
	"sync"
	"time"
)

// LottoEngine produces recommendation batches for the three modes
type LottoEngine struct {
	configManager *ConfigManager
	generator     RandomGenerator
	mapper        *FortuneMapper
	converter     *CircuitBreakerConverter
	logger        Logger
	mu            sync.RWMutex // 保护配置、随机源和运势分析器的并发访问

	performanceMonitor *PerformanceMonitor
}

var _ Recommender = (*LottoEngine)(nil)

// NewLottoEngine creates a new engine with the default configuration
func NewLottoEngine() *LottoEngine {
	return NewLottoEngineWithConfigAndLogger(NewDefaultConfigManager(), NewDefaultLogger(false))
}

// NewLottoEngineWithConfig creates a new engine with custom configuration
func NewLottoEngineWithConfig(cm *ConfigManager) *LottoEngine {
	return NewLottoEngineWithConfigAndLogger(cm, NewDefaultLogger(false))
}

// NewLottoEngineWithLogger creates a new engine with custom logger
func NewLottoEngineWithLogger(logger Logger) *LottoEngine {
	return NewLottoEngineWithConfigAndLogger(NewDefaultConfigManager(), logger)
}

// NewLottoEngineWithConfigAndLogger creates a new engine with custom configuration and logger
func NewLottoEngineWithConfigAndLogger(cm *ConfigManager, logger Logger) *LottoEngine {
	if cm == nil || cm.GetConfig() == nil {
		cm = NewDefaultConfigManager()
	}
	if logger == nil {
		logger = NewSilentLogger()
	}

	config := cm.GetConfig()
	converter := NewCircuitBreakerConverter(NewSexagenaryConverter(), config.CircuitBreaker, logger)

	return &LottoEngine{
		configManager: cm,
		generator:     NewRandomGeneratorFromConfig(config.Generator),
		mapper:        NewFortuneMapper(converter, config.Fortune, logger),
		converter:     converter,
		logger:        logger,

		performanceMonitor: NewPerformanceMonitor(),
	}
}

// GetConfig returns the current engine configuration
func (e *LottoEngine) GetConfig() *Config {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.configManager.GetConfig()
}

// UpdateConfig updates the engine configuration at runtime
func (e *LottoEngine) UpdateConfig(newConfig *Config) error {
	logger := e.GetLogger()
	logger.Debug("UpdateConfig called")

	if newConfig == nil {
		logger.Error("UpdateConfig failed: nil configuration")
		return ErrInvalidParameters
	}

	if err := newConfig.Validate(); err != nil {
		logger.Error("UpdateConfig validation failed: %v", err)
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.configManager.mu.Lock()
	e.configManager.config = newConfig
	e.configManager.mu.Unlock()

	e.converter = NewCircuitBreakerConverter(e.converter.converter, newConfig.CircuitBreaker, e.logger)
	e.mapper = e.rebuildMapper(e.converter, newConfig.Fortune)

	logger.Info(
		"Configuration updated successfully: SetSize=%d, BatchSize=%d, Variant=%s, Language=%s",
		newConfig.Generator.SetSize,
		newConfig.Generator.BatchSize,
		newConfig.Fortune.Variant,
		newConfig.Fortune.Language)
	return nil
}

// SetRandomGenerator replaces the random source used for set generation
func (e *LottoEngine) SetRandomGenerator(generator RandomGenerator) {
	if generator == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.generator = generator
}

// SetConverter replaces the lunar-calendar collaborator; it is wrapped in the configured circuit breaker
func (e *LottoEngine) SetConverter(converter LunarConverter) {
	if converter == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	config := e.configManager.GetConfig()
	e.converter = NewCircuitBreakerConverter(converter, config.CircuitBreaker, e.logger)
	e.mapper = e.rebuildMapper(e.converter, config.Fortune)
}

// SetClock replaces the clock used to resolve today's reference date
func (e *LottoEngine) SetClock(now func() time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.mapper.SetClock(now)
}

// rebuildMapper keeps the current clock when the mapper is recreated
func (e *LottoEngine) rebuildMapper(converter LunarConverter, config *FortuneConfig) *FortuneMapper {
	mapper := NewFortuneMapper(converter, config, e.logger)
	if e.mapper != nil {
		mapper.SetClock(e.mapper.now)
	}
	return mapper
}

// SetLogger updates the logger at runtime
func (e *LottoEngine) SetLogger(logger Logger) {
	if logger == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if logger == e.logger {
		return
	}
	e.logger.Info("Logger updated")
	e.logger = logger

	// 熔断器和运势分析器持有日志记录器，需要一并重建
	config := e.configManager.GetConfig()
	e.converter = NewCircuitBreakerConverter(e.converter.converter, config.CircuitBreaker, logger)
	e.mapper = e.rebuildMapper(e.converter, config.Fortune)

	e.logger.Info("New logger activated")
}

// GetLogger returns the current logger
func (e *LottoEngine) GetLogger() Logger {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.logger
}

// FortuneMapper returns the mapper used in fortune mode
func (e *LottoEngine) FortuneMapper() *FortuneMapper {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.mapper
}

// CircuitBreakerState returns the state of the converter circuit breaker
func (e *LottoEngine) CircuitBreakerState() string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.converter.State()
}

// GenerateSet produces one set of the configured size containing every fixed number
func (e *LottoEngine) GenerateSet(fixed []int) (LottoSet, error) {
	e.mu.RLock()
	generator := e.generator
	logger := e.logger
	size := e.configManager.GetConfig().Generator.SetSize
	e.mu.RUnlock()

	set, err := GenerateSet(generator, fixed, size)
	if err != nil {
		logger.Error("GenerateSet failed: fixed=%v, error=%v", fixed, err)
		return nil, err
	}

	logger.Debug("GenerateSet successful: fixed=%v, set=%v", fixed, set)
	return set, nil
}

// GenerateBatch produces BatchSize independent sets sharing the same fixed numbers
func (e *LottoEngine) GenerateBatch(ctx context.Context, fixed []int) ([]LottoSet, error) {
	count := e.GetConfig().Generator.BatchSize
	return e.generateSets(ctx, count, func() []int { return fixed })
}

// generateSets calls GenerateSet count times; fixedFor supplies the fixed numbers of each call
func (e *LottoEngine) generateSets(ctx context.Context, count int, fixedFor func() []int) ([]LottoSet, error) {
	sets := make([]LottoSet, 0, count)
	for range count {
		// Check context cancellation
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		set, err := e.GenerateSet(fixedFor())
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// Recommend validates the request and produces a batch for its mode
func (e *LottoEngine) Recommend(ctx context.Context, req *Request) (*Batch, error) {
	startTime := time.Now()
	logger := e.GetLogger()

	if req == nil {
		logger.Error("Recommend failed: nil request")
		return nil, ErrInvalidParameters
	}
	logger.Debug("Recommend called with mode=%s", req.Mode)

	var (
		batch *Batch
		err   error
	)
	switch req.Mode {
	case ModeRandom:
		batch, err = e.recommendRandom(ctx)
	case ModeFortune:
		batch, err = e.recommendFortune(ctx, req)
	case ModeManual:
		batch, err = e.recommendManual(ctx, req)
	default:
		err = ErrInvalidMode
	}

	duration := time.Since(startTime)
	if err != nil {
		if isValidationError(err) {
			e.performanceMonitor.RecordValidationFailure()
		}
		e.performanceMonitor.RecordBatch(false, 0, duration)
		logger.Error("Recommend failed: mode=%s, error=%v", req.Mode, err)
		return nil, err
	}

	batch.Mode = req.Mode
	batch.GeneratedAt = time.Now()
	e.performanceMonitor.RecordBatch(true, len(batch.Sets), duration)
	logger.Info("Recommend successful: mode=%s, sets=%d", req.Mode, len(batch.Sets))
	return batch, nil
}

func (e *LottoEngine) recommendRandom(ctx context.Context) (*Batch, error) {
	sets, err := e.GenerateBatch(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &Batch{Sets: sets}, nil
}

func (e *LottoEngine) recommendFortune(ctx context.Context, req *Request) (*Batch, error) {
	if req.Name == "" || req.BirthDate == "" {
		return nil, ErrMissingProfile
	}
	if !isDigits(req.BirthDate, DateLength) {
		return nil, ErrInvalidBirthDate.WithDetails(req.BirthDate)
	}

	result := e.FortuneMapper().LuckyNumbersFromBirth(req.BirthDate, req.ReferenceDate)
	e.performanceMonitor.RecordFortune(result.OK())
	if !result.OK() {
		return nil, ErrFortuneAnalysisFailed.
			WithDetails(result.Message).
			WithMetadata("reason", result.Reason.String())
	}

	e.mu.RLock()
	generator := e.generator
	e.mu.RUnlock()

	lucky := result.LuckyNumbers
	var pickErr error
	sets, err := e.generateSets(ctx, e.GetConfig().Generator.BatchSize, func() []int {
		idx, err := generator.GenerateInRange(0, len(lucky)-1)
		if err != nil {
			pickErr = err
			idx = 0
		}
		return []int{lucky[idx]}
	})
	if pickErr != nil {
		return nil, pickErr
	}
	if err != nil {
		return nil, err
	}

	return &Batch{
		Sets:    sets,
		Fortune: &result,
		Message: result.Message,
	}, nil
}

func (e *LottoEngine) recommendManual(ctx context.Context, req *Request) (*Batch, error) {
	fixed, err := ParseFixedNumbers(req.FixedInput, e.GetConfig().Generator.MaxFixed)
	if err != nil {
		return nil, err
	}

	sets, err := e.GenerateBatch(ctx, fixed)
	if err != nil {
		return nil, err
	}
	return &Batch{Sets: sets, Fixed: fixed}, nil
}

// isValidationError reports whether err is a caller-side input error
func isValidationError(err error) bool {
	for _, target := range []error{
		ErrInvalidFixedCount,
		ErrDuplicateFixedNumber,
		ErrFixedNumberOutOfRange,
		ErrMissingProfile,
		ErrInvalidBirthDate,
		ErrInvalidMode,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// PerformanceMetrics returns a snapshot of the engine metrics
func (e *LottoEngine) PerformanceMetrics() PerformanceMetrics {
	return e.performanceMonitor.GetMetrics()
}

// ResetPerformanceMetrics resets the engine metrics
func (e *LottoEngine) ResetPerformanceMetrics() {
	e.performanceMonitor.ResetMetrics()
}

// EnablePerformanceMonitoring enables metric collection
func (e *LottoEngine) EnablePerformanceMonitoring() {
	e.performanceMonitor.Enable()
}

// DisablePerformanceMonitoring disables metric collection
func (e *LottoEngine) DisablePerformanceMonitoring() {
	e.performanceMonitor.Disable()
}
