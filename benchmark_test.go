package lotto

import (
	"context"
	"testing"
	"time"
)

// BenchmarkGenerateSet 单组号码生成性能基准测试
func BenchmarkGenerateSet(b *testing.B) {
	b.Run("安全随机源", func(b *testing.B) {
		rng := NewSecureRandomGenerator()
		for b.Loop() {
			if _, err := GenerateSet(rng, nil, DefaultSetSize); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("种子随机源", func(b *testing.B) {
		rng := NewSeededRandomGenerator(42)
		for b.Loop() {
			if _, err := GenerateSet(rng, nil, DefaultSetSize); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("固定号码", func(b *testing.B) {
		rng := NewSeededRandomGenerator(42)
		fixed := []int{3, 17, 29, 41}
		for b.Loop() {
			if _, err := GenerateSet(rng, fixed, DefaultSetSize); err != nil {
				b.Fatal(err)
			}
		}
	})
}

// BenchmarkRecommend 推荐三种模式的性能基准测试
func BenchmarkRecommend(b *testing.B) {
	engine := NewLottoEngineWithLogger(NewSilentLogger())
	engine.SetRandomGenerator(NewSeededRandomGenerator(42))
	engine.SetClock(func() time.Time { return time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC) })
	ctx := context.Background()

	requests := map[string]*Request{
		"随机": {Mode: ModeRandom},
		"运势": {Mode: ModeFortune, Name: "Kim", BirthDate: "19900101"},
		"手动": {Mode: ModeManual, FixedInput: "7, 15, 23"},
	}

	for name, req := range requests {
		b.Run(name, func(b *testing.B) {
			for b.Loop() {
				if _, err := engine.Recommend(ctx, req); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkAnalyze 运势分析性能基准测试
func BenchmarkAnalyze(b *testing.B) {
	b.Run("基础", func(b *testing.B) {
		config := DefaultFortuneConfig()
		config.Variant = VariantBasic
		mapper := NewFortuneMapper(nil, config, nil)
		for b.Loop() {
			if _, err := mapper.Analyze("19900101"); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("结合日期", func(b *testing.B) {
		mapper := NewFortuneMapper(nil, nil, nil)
		for b.Loop() {
			if _, err := mapper.Analyze("19900101", "20261014"); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("带熔断器", func(b *testing.B) {
		converter := NewCircuitBreakerConverter(NewSexagenaryConverter(), DefaultCircuitBreakerConfig(), nil)
		mapper := NewFortuneMapper(converter, nil, nil)
		for b.Loop() {
			if _, err := mapper.Analyze("19900101", "20261014"); err != nil {
				b.Fatal(err)
			}
		}
	})
}

// BenchmarkParseFixedNumbers 手动输入解析性能基准测试
func BenchmarkParseFixedNumbers(b *testing.B) {
	for b.Loop() {
		if _, err := ParseFixedNumbers(" 7, 15 ,23,41, 45 ", DefaultMaxFixed); err != nil {
			b.Fatal(err)
		}
	}
}
