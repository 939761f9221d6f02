package lotto

import (
	"errors"

	"github.com/sony/gobreaker"
)

// CircuitBreakerConverter 带熔断器的农历转换器
type CircuitBreakerConverter struct {
	converter LunarConverter

	breaker *gobreaker.CircuitBreaker
	logger  Logger
	config  *CircuitBreakerConfig
}

// NewCircuitBreakerConverter 创建带熔断器的农历转换器
func NewCircuitBreakerConverter(converter LunarConverter, config *CircuitBreakerConfig, logger Logger) *CircuitBreakerConverter {
	if config == nil {
		config = DefaultCircuitBreakerConfig()
	}

	c := &CircuitBreakerConverter{
		converter: converter,
		logger:    logger,
		config:    config,
	}
	if !config.Enabled {
		// 如果熔断器未启用，返回一个透传的包装器
		return c
	}

	c.breaker = gobreaker.NewCircuitBreaker(c.settings())
	return c
}

func (c *CircuitBreakerConverter) settings() gobreaker.Settings {
	config := c.config
	return gobreaker.Settings{
		Name:        config.Name,
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 当请求数达到最小要求且失败率超过阈值时触发熔断
			return counts.Requests >= config.MinRequests &&
				float64(counts.TotalFailures)/float64(counts.Requests) >= config.FailureRatio
		},
		// 日期本身不受支持属于输入问题，不计入失败
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrUnsupportedDate)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if config.OnStateChange && c.logger != nil {
				c.logger.Info("Circuit breaker '%s' state changed from %s to %s", name, from, to)
			}
		},
	}
}

// ToLunar 使用熔断器执行转换
func (c *CircuitBreakerConverter) ToLunar(year, month, day int) (*GanjiTriple, error) {
	if c.breaker == nil {
		// 熔断器未启用，直接执行
		return c.converter.ToLunar(year, month, day)
	}

	result, err := c.breaker.Execute(func() (any, error) {
		return c.converter.ToLunar(year, month, day)
	})
	if err != nil {
		// 检查是否是熔断器错误
		if errors.Is(err, gobreaker.ErrOpenState) {
			return nil, ErrCircuitBreakerOpen.WithDetails("circuit breaker is open, conversions are being rejected").WithCause(err)
		}
		if errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, ErrCircuitBreakerOpen.WithDetails("too many requests, circuit breaker is half-open").WithCause(err)
		}
		return nil, err
	}

	triple, _ := result.(*GanjiTriple)
	return triple, nil
}

// State 获取熔断器状态
func (c *CircuitBreakerConverter) State() string {
	if c.breaker == nil {
		return "disabled"
	}

	switch c.breaker.State() {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Counts 获取熔断器统计信息
func (c *CircuitBreakerConverter) Counts() gobreaker.Counts {
	if c.breaker == nil {
		return gobreaker.Counts{}
	}

	return c.breaker.Counts()
}

// Reset 重置熔断器 (gobreaker 没有 Reset 方法，重新创建实例)
func (c *CircuitBreakerConverter) Reset() {
	if c.breaker == nil {
		return
	}

	c.breaker = gobreaker.NewCircuitBreaker(c.settings())
	if c.logger != nil {
		c.logger.Info("Circuit breaker '%s' has been reset (recreated)", c.config.Name)
	}
}
