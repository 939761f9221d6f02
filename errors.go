package lotto

import (
	"errors"
	"fmt"
	"maps"
	"runtime"
	"time"
)

// ErrorCode 错误代码类型
type ErrorCode string

// 错误代码常量
const (
	// 系统级错误 (1000-1999)
	ErrCodeSystem        ErrorCode = "LOTTO_1000"
	ErrCodeConfigInvalid ErrorCode = "LOTTO_1001"
	ErrCodeRandomSource  ErrorCode = "LOTTO_1002"

	// 输入校验错误 (2000-2999)
	ErrCodeInvalidParameters     ErrorCode = "LOTTO_2000"
	ErrCodeInvalidSetSize        ErrorCode = "LOTTO_2001"
	ErrCodeInvalidBatchSize      ErrorCode = "LOTTO_2002"
	ErrCodeInvalidFixedNumbers   ErrorCode = "LOTTO_2003"
	ErrCodeInvalidFixedCount     ErrorCode = "LOTTO_2004"
	ErrCodeDuplicateFixedNumber  ErrorCode = "LOTTO_2005"
	ErrCodeFixedNumberOutOfRange ErrorCode = "LOTTO_2006"
	ErrCodeMissingProfile        ErrorCode = "LOTTO_2007"
	ErrCodeInvalidBirthDate      ErrorCode = "LOTTO_2008"
	ErrCodeInvalidMode           ErrorCode = "LOTTO_2009"
	ErrCodeInvalidWeight         ErrorCode = "LOTTO_2010"
	ErrCodeInvalidYearRange      ErrorCode = "LOTTO_2011"
	ErrCodeInvalidVariant        ErrorCode = "LOTTO_2012"

	// 运势分析错误 (3000-3999)
	ErrCodeInvalidDateFormat     ErrorCode = "LOTTO_3000"
	ErrCodeUnsupportedYear       ErrorCode = "LOTTO_3001"
	ErrCodeGanjiUnavailable      ErrorCode = "LOTTO_3002"
	ErrCodeUnsupportedDate       ErrorCode = "LOTTO_3003"
	ErrCodeFortuneAnalysisFailed ErrorCode = "LOTTO_3004"

	// 熔断相关错误 (5000-5999)
	ErrCodeCircuitBreakerOpen ErrorCode = "LOTTO_5000"
)

// ErrorSeverity 错误严重程度
type ErrorSeverity string

const (
	SeverityCritical ErrorSeverity = "critical"
	SeverityHigh     ErrorSeverity = "high"
	SeverityMedium   ErrorSeverity = "medium"
	SeverityLow      ErrorSeverity = "low"
	SeverityInfo     ErrorSeverity = "info"
)

// LotteryError 增强的错误类型
type LotteryError struct {
	Code       ErrorCode      `json:"code"`
	Message    string         `json:"message"`
	Details    string         `json:"details,omitempty"`
	Severity   ErrorSeverity  `json:"severity"`
	Timestamp  time.Time      `json:"timestamp"`
	Operation  string         `json:"operation,omitempty"`
	StackTrace string         `json:"stack_trace,omitempty"`
	Cause      error          `json:"-"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// Error 实现 error 接口
func (e *LotteryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 实现 errors.Unwrap 接口
func (e *LotteryError) Unwrap() error {
	return e.Cause
}

// Is 实现 errors.Is 接口, 按错误代码比较
func (e *LotteryError) Is(target error) bool {
	if t, ok := target.(*LotteryError); ok {
		return e.Code == t.Code
	}
	return false
}

// clone 复制错误, 预定义的错误实例不会被 With* 修改
func (e *LotteryError) clone() *LotteryError {
	c := *e
	c.Timestamp = time.Now()
	if e.Metadata != nil {
		c.Metadata = maps.Clone(e.Metadata)
	}
	return &c
}

// WithCause 添加原因错误
func (e *LotteryError) WithCause(cause error) *LotteryError {
	c := e.clone()
	c.Cause = cause
	return c
}

// WithDetails 添加详细信息
func (e *LotteryError) WithDetails(details string) *LotteryError {
	c := e.clone()
	c.Details = details
	return c
}

// WithOperation 添加操作信息
func (e *LotteryError) WithOperation(operation string) *LotteryError {
	c := e.clone()
	c.Operation = operation
	return c
}

// WithMetadata 添加元数据
func (e *LotteryError) WithMetadata(key string, value any) *LotteryError {
	c := e.clone()
	if c.Metadata == nil {
		c.Metadata = make(map[string]any)
	}
	c.Metadata[key] = value
	return c
}

// WithStackTrace 添加堆栈跟踪
func (e *LotteryError) WithStackTrace() *LotteryError {
	c := e.clone()
	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)
	c.StackTrace = string(buf[:n])
	return c
}

// NewError 创建新的错误
func NewError(code ErrorCode, message string) *LotteryError {
	return &LotteryError{
		Code:      code,
		Message:   message,
		Severity:  SeverityMedium,
		Timestamp: time.Now(),
	}
}

// NewCriticalError 创建严重错误
func NewCriticalError(code ErrorCode, message string) *LotteryError {
	return &LotteryError{
		Code:      code,
		Message:   message,
		Severity:  SeverityCritical,
		Timestamp: time.Now(),
	}
}

// NewLowError 创建低严重程度的错误, 用于用户输入问题
func NewLowError(code ErrorCode, message string) *LotteryError {
	return &LotteryError{
		Code:      code,
		Message:   message,
		Severity:  SeverityLow,
		Timestamp: time.Now(),
	}
}

// 预定义的错误实例
var (
	// 系统级错误
	ErrSystemError   = NewCriticalError(ErrCodeSystem, "system error occurred")
	ErrConfigInvalid = NewCriticalError(ErrCodeConfigInvalid, "configuration is invalid")
	ErrRandomSource  = NewError(ErrCodeRandomSource, "random source failed")

	// 输入校验错误
	ErrInvalidParameters     = NewError(ErrCodeInvalidParameters, "invalid parameters provided")
	ErrInvalidSetSize        = NewError(ErrCodeInvalidSetSize, "invalid set size: must be between 1 and 45")
	ErrInvalidBatchSize      = NewError(ErrCodeInvalidBatchSize, "invalid batch size: must be between 1 and 20")
	ErrInvalidFixedNumbers   = NewError(ErrCodeInvalidFixedNumbers, "invalid fixed numbers: must be distinct, in range and fewer than the set size")
	ErrInvalidFixedCount     = NewLowError(ErrCodeInvalidFixedCount, "enter between 1 and 5 numbers to include")
	ErrDuplicateFixedNumber  = NewLowError(ErrCodeDuplicateFixedNumber, "duplicate numbers are not allowed")
	ErrFixedNumberOutOfRange = NewLowError(ErrCodeFixedNumberOutOfRange, "only numbers between 1 and 45 are allowed")
	ErrMissingProfile        = NewLowError(ErrCodeMissingProfile, "enter both your name and date of birth")
	ErrInvalidBirthDate      = NewLowError(ErrCodeInvalidBirthDate, "enter your date of birth as 8 digits (YYYYMMDD)")
	ErrInvalidMode           = NewError(ErrCodeInvalidMode, "unknown recommendation mode")
	ErrInvalidWeight         = NewError(ErrCodeInvalidWeight, "invalid fortune weight: must not be negative")
	ErrInvalidYearRange      = NewError(ErrCodeInvalidYearRange, "invalid year range: must lie within 1891 and 2049")
	ErrInvalidVariant        = NewError(ErrCodeInvalidVariant, "invalid fortune variant: must be basic or date_aware")

	// 运势分析错误
	ErrInvalidDateFormat     = NewLowError(ErrCodeInvalidDateFormat, "enter a date of birth in the YYYYMMDD format")
	ErrUnsupportedYear       = NewLowError(ErrCodeUnsupportedYear, "only dates of birth between 1891 and 2049 are supported")
	ErrGanjiUnavailable      = NewError(ErrCodeGanjiUnavailable, "unable to compute the pillars, please check the date")
	ErrUnsupportedDate       = NewLowError(ErrCodeUnsupportedDate, "unsupported date, please try another date")
	ErrFortuneAnalysisFailed = NewError(ErrCodeFortuneAnalysisFailed, "fortune analysis failed, please check your date of birth")

	// 熔断相关错误
	ErrCircuitBreakerOpen = NewError(ErrCodeCircuitBreakerOpen, "circuit breaker is open")
)

// AsLotteryError 将任意错误转换为 LotteryError, 普通错误包装为系统错误
func AsLotteryError(err error) *LotteryError {
	if err == nil {
		return nil
	}

	var lotteryErr *LotteryError
	if errors.As(err, &lotteryErr) {
		return lotteryErr
	}
	return ErrSystemError.WithDetails(err.Error()).WithCause(err)
}
