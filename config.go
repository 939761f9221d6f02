package lotto

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config 配置结构
type Config struct {
	// 号码生成配置
	Generator *GeneratorConfig `mapstructure:"generator"`

	// 运势分析配置
	Fortune *FortuneConfig `mapstructure:"fortune"`

	// 熔断器配置
	CircuitBreaker *CircuitBreakerConfig `mapstructure:"circuit_breaker"`

	// 日志配置
	Log *LogConfig `mapstructure:"log"`
}

// Validate 验证配置
func (c *Config) Validate() error {
	if c.Generator == nil || c.Fortune == nil || c.CircuitBreaker == nil || c.Log == nil {
		return ErrConfigInvalid.WithDetails("missing configuration section")
	}
	if err := c.Generator.Validate(); err != nil {
		return err
	}
	return c.Fortune.Validate()
}

// GeneratorConfig 号码生成配置
type GeneratorConfig struct {
	SetSize      int    `mapstructure:"set_size"`
	BatchSize    int    `mapstructure:"batch_size"`
	MaxFixed     int    `mapstructure:"max_fixed"`
	SecureRandom bool   `mapstructure:"secure_random"`
	Seed         uint64 `mapstructure:"seed"`
}

// DefaultGeneratorConfig 返回默认号码生成配置
func DefaultGeneratorConfig() *GeneratorConfig {
	return &GeneratorConfig{
		SetSize:      DefaultSetSize,
		BatchSize:    DefaultBatchSize,
		MaxFixed:     DefaultMaxFixed,
		SecureRandom: true,
	}
}

// Validate 验证号码生成配置
func (g *GeneratorConfig) Validate() error {
	if g.SetSize < 1 || g.SetSize > PoolMax {
		return ErrInvalidSetSize
	}
	if g.BatchSize < 1 || g.BatchSize > MaxBatchSize {
		return ErrInvalidBatchSize
	}
	if g.MaxFixed < 1 || g.MaxFixed >= g.SetSize {
		return ErrInvalidParameters.WithDetails("max_fixed must be between 1 and set_size-1")
	}
	return nil
}

// FortuneConfig 运势分析配置
type FortuneConfig struct {
	Variant         FortuneVariant `mapstructure:"variant"`
	BirthWeight     float64        `mapstructure:"birth_weight"`
	ReferenceWeight float64        `mapstructure:"reference_weight"`
	CycleBonus      float64        `mapstructure:"cycle_bonus"`
	MinYear         int            `mapstructure:"min_year"`
	MaxYear         int            `mapstructure:"max_year"`
	Timezone        string         `mapstructure:"timezone"`
	Language        string         `mapstructure:"language"`
}

// DefaultFortuneConfig 返回默认运势分析配置
func DefaultFortuneConfig() *FortuneConfig {
	return &FortuneConfig{
		Variant:         VariantDateAware,
		BirthWeight:     DefaultBirthWeight,
		ReferenceWeight: DefaultReferenceWeight,
		CycleBonus:      DefaultCycleBonus,
		MinYear:         MinSupportedYear,
		MaxYear:         MaxSupportedYear,
		Timezone:        DefaultTimezone,
		Language:        DefaultLanguage,
	}
}

// Validate 验证运势分析配置
func (f *FortuneConfig) Validate() error {
	if f.Variant != VariantBasic && f.Variant != VariantDateAware {
		return ErrInvalidVariant
	}
	if f.BirthWeight < 0 || f.ReferenceWeight < 0 || f.CycleBonus < 0 {
		return ErrInvalidWeight
	}
	if f.MinYear < MinSupportedYear || f.MaxYear > MaxSupportedYear || f.MinYear > f.MaxYear {
		return ErrInvalidYearRange
	}
	return nil
}

// CircuitBreakerConfig 熔断器配置
type CircuitBreakerConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	Name          string        `mapstructure:"name"`
	MaxRequests   uint32        `mapstructure:"max_requests"`
	Interval      time.Duration `mapstructure:"interval"`
	Timeout       time.Duration `mapstructure:"timeout"`
	FailureRatio  float64       `mapstructure:"failure_ratio"`
	MinRequests   uint32        `mapstructure:"min_requests"`
	OnStateChange bool          `mapstructure:"on_state_change"`
}

// DefaultCircuitBreakerConfig 返回默认熔断器配置
func DefaultCircuitBreakerConfig() *CircuitBreakerConfig {
	return &CircuitBreakerConfig{
		Enabled:       true,
		Name:          DefaultCircuitBreakerName,
		MaxRequests:   DefaultCircuitBreakerMaxRequests,
		Interval:      DefaultCircuitBreakerInterval,
		Timeout:       DefaultCircuitBreakerTimeout,
		FailureRatio:  DefaultCircuitBreakerFailureRatio,
		MinRequests:   DefaultCircuitBreakerMinRequests,
		OnStateChange: DefaultCircuitBreakerOnStateChange,
	}
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultLogConfig 返回默认日志配置
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		Level:  DefaultLogLevel,
		Format: DefaultLogFormat,
	}
}

// DefaultConfig 返回完整的默认配置
func DefaultConfig() *Config {
	return &Config{
		Generator:      DefaultGeneratorConfig(),
		Fortune:        DefaultFortuneConfig(),
		CircuitBreaker: DefaultCircuitBreakerConfig(),
		Log:            DefaultLogConfig(),
	}
}

// ConfigManager 配置管理器
type ConfigManager struct {
	viper  *viper.Viper
	mu     sync.RWMutex
	config *Config
}

// NewConfigManager 创建配置管理器
func NewConfigManager() *ConfigManager {
	v := viper.New()

	// 设置配置文件名和路径
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/lotto")
	v.AddConfigPath("$HOME/.lotto")

	// 设置环境变量前缀
	v.SetEnvPrefix("LOTTO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cm := &ConfigManager{viper: v}
	cm.setDefaults()
	return cm
}

// NewDefaultConfigManager 创建使用默认配置的配置管理器, 不读取文件
func NewDefaultConfigManager() *ConfigManager {
	cm := NewConfigManager()
	cm.config = DefaultConfig()
	return cm
}

// NewConfigManagerFromConfig 从已有配置创建配置管理器
func NewConfigManagerFromConfig(config *Config) (*ConfigManager, error) {
	if config == nil {
		return nil, ErrConfigInvalid.WithDetails("config cannot be nil")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cm := NewConfigManager()
	cm.config = config
	return cm, nil
}

// SetConfigFile 指定配置文件路径, 替代默认搜索路径
func (cm *ConfigManager) SetConfigFile(path string) {
	cm.viper.SetConfigFile(path)
}

// LoadConfig 加载配置
func (cm *ConfigManager) LoadConfig() (*Config, error) {
	// 读取配置文件
	if err := cm.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// 配置文件不存在时使用默认配置
	}

	config, err := cm.unmarshal()
	if err != nil {
		return nil, err
	}

	cm.mu.Lock()
	cm.config = config
	cm.mu.Unlock()
	return config, nil
}

func (cm *ConfigManager) unmarshal() (*Config, error) {
	config := &Config{}
	if err := cm.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 验证配置
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return config, nil
}

// setDefaults 设置默认配置值
func (cm *ConfigManager) setDefaults() {
	// 号码生成默认配置
	cm.viper.SetDefault("generator.set_size", DefaultSetSize)
	cm.viper.SetDefault("generator.batch_size", DefaultBatchSize)
	cm.viper.SetDefault("generator.max_fixed", DefaultMaxFixed)
	cm.viper.SetDefault("generator.secure_random", true)
	cm.viper.SetDefault("generator.seed", 0)

	// 运势分析默认配置
	cm.viper.SetDefault("fortune.variant", string(VariantDateAware))
	cm.viper.SetDefault("fortune.birth_weight", DefaultBirthWeight)
	cm.viper.SetDefault("fortune.reference_weight", DefaultReferenceWeight)
	cm.viper.SetDefault("fortune.cycle_bonus", DefaultCycleBonus)
	cm.viper.SetDefault("fortune.min_year", MinSupportedYear)
	cm.viper.SetDefault("fortune.max_year", MaxSupportedYear)
	cm.viper.SetDefault("fortune.timezone", DefaultTimezone)
	cm.viper.SetDefault("fortune.language", DefaultLanguage)

	// 熔断器默认配置
	cm.viper.SetDefault("circuit_breaker.enabled", true)
	cm.viper.SetDefault("circuit_breaker.name", DefaultCircuitBreakerName)
	cm.viper.SetDefault("circuit_breaker.max_requests", DefaultCircuitBreakerMaxRequests)
	cm.viper.SetDefault("circuit_breaker.interval", "60s")
	cm.viper.SetDefault("circuit_breaker.timeout", "30s")
	cm.viper.SetDefault("circuit_breaker.failure_ratio", DefaultCircuitBreakerFailureRatio)
	cm.viper.SetDefault("circuit_breaker.min_requests", DefaultCircuitBreakerMinRequests)
	cm.viper.SetDefault("circuit_breaker.on_state_change", DefaultCircuitBreakerOnStateChange)

	// 日志默认配置
	cm.viper.SetDefault("log.level", DefaultLogLevel)
	cm.viper.SetDefault("log.format", DefaultLogFormat)
}

// Set 覆盖单个配置项 (例如命令行参数), 需重新 LoadConfig 生效
func (cm *ConfigManager) Set(key string, value any) {
	cm.viper.Set(key, value)
}

// WatchConfig 监听配置变化
func (cm *ConfigManager) WatchConfig(callback func(*Config)) {
	cm.viper.OnConfigChange(func(e fsnotify.Event) {
		config, err := cm.unmarshal()
		if err != nil {
			// 无效配置不替换当前配置
			return
		}

		cm.mu.Lock()
		cm.config = config
		cm.mu.Unlock()
		if callback != nil {
			callback(config)
		}
	})
	cm.viper.WatchConfig()
}

// GetConfig 获取当前配置
func (cm *ConfigManager) GetConfig() *Config {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	return cm.config
}

// ReloadConfig 重新加载配置
func (cm *ConfigManager) ReloadConfig() (*Config, error) { return cm.LoadConfig() }
