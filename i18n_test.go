package lotto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementName(t *testing.T) {
	en := NewPrinter("en")
	ko := NewPrinter("ko")

	tests := []struct {
		element Element
		en, ko  string
	}{
		{Wood, "wood", "목"},
		{Fire, "fire", "화"},
		{Earth, "earth", "토"},
		{Metal, "metal", "금"},
		{Water, "water", "수"},
	}

	for _, tt := range tests {
		t.Run(string(tt.element), func(t *testing.T) {
			assert.Equal(t, tt.en, ElementName(en, tt.element))
			assert.Equal(t, tt.ko, ElementName(ko, tt.element))
		})
	}
}

func TestNewPrinter_Fallback(t *testing.T) {
	for _, lang := range []string{"", "xx-invalid-!", "fr", "en-US"} {
		assert.Equal(t, "wood", ElementName(NewPrinter(lang), Wood), "lang %q", lang)
	}
	assert.Equal(t, "목", ElementName(NewPrinter("ko-KR"), Wood))
}

func TestUserMessage(t *testing.T) {
	en := NewPrinter("en")
	ko := NewPrinter("ko")

	assert.Empty(t, UserMessage(en, nil))

	t.Run("registered_codes", func(t *testing.T) {
		assert.Equal(t, "duplicate numbers are not allowed", UserMessage(en, ErrDuplicateFixedNumber.WithDetails("7")))
		assert.Equal(t, "중복된 번호를 입력할 수 없습니다.", UserMessage(ko, ErrDuplicateFixedNumber))
		assert.Equal(t, "포함할 번호는 1개에서 5개까지 입력해야 합니다.", UserMessage(ko, ErrInvalidFixedCount))
		assert.Equal(t, "1부터 45 사이의 숫자만 입력해주세요.", UserMessage(ko, ErrFixedNumberOutOfRange))
		assert.Equal(t, "이름과 생년월일을 모두 입력해주세요.", UserMessage(ko, ErrMissingProfile))
		assert.Equal(t, "사주 분석에 실패했습니다. 생년월일을 다시 확인해주세요.", UserMessage(ko, ErrFortuneAnalysisFailed))
	})

	t.Run("every_user_facing_error_has_korean_text", func(t *testing.T) {
		for _, err := range userFacingErrors {
			assert.NotEqual(t, string(err.Code), UserMessage(ko, err), "code %s", err.Code)
			assert.NotEqual(t, err.Message, UserMessage(ko, err), "code %s", err.Code)
		}
	})

	t.Run("unregistered_code_prints_error", func(t *testing.T) {
		err := ErrInvalidSetSize.WithDetails("7")
		assert.Equal(t, err.Error(), UserMessage(en, err))
	})

	t.Run("plain_error", func(t *testing.T) {
		assert.Equal(t, "boom", UserMessage(en, errors.New("boom")))
	})
}

func TestFormatDate(t *testing.T) {
	en := NewPrinter("en")
	ko := NewPrinter("ko")

	tests := []struct {
		year, month, day int
		en, ko           string
	}{
		{2026, 10, 14, "2026-10-14", "2026년 10월 14일"},
		{1999, 1, 5, "1999-01-05", "1999년 1월 5일"},
		{1891, 2, 4, "1891-02-04", "1891년 2월 4일"},
		{2049, 12, 31, "2049-12-31", "2049년 12월 31일"},
	}

	for _, tt := range tests {
		t.Run(tt.en, func(t *testing.T) {
			assert.Equal(t, tt.en, FormatDate(en, tt.year, tt.month, tt.day))
			assert.Equal(t, tt.ko, FormatDate(ko, tt.year, tt.month, tt.day))
		})
	}
}

func TestSetLabel(t *testing.T) {
	assert.Equal(t, "Set 1", SetLabel(NewPrinter("en"), 0))
	assert.Equal(t, "세트 5", SetLabel(NewPrinter("ko"), 4))
}
