package lotto

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Korean

	// Elements
	message.SetString(lang, "element.wood", "목")
	message.SetString(lang, "element.fire", "화")
	message.SetString(lang, "element.earth", "토")
	message.SetString(lang, "element.metal", "금")
	message.SetString(lang, "element.water", "수")

	// Fortune analysis
	message.SetString(lang, "fortune.result", "사주 분석 결과, 당신의 가장 강한 기운은 [%s] 입니다. 행운의 숫자는 [%s] 입니다.")
	message.SetString(lang, "fortune.reference", " (%s 기운 반영)")
	message.SetString(lang, "fortune.leap_month", " (태어난 달은 윤달입니다.)")
	message.SetString(lang, "fortune.reference_unavailable", "오늘 날짜의 사주 정보를 계산할 수 없습니다.")
	message.SetString(lang, "fortune.unexpected", "사주 분석 중 오류가 발생했습니다: %s")
	message.SetString(lang, "date.layout", "2006년 1월 2일")

	// Rendering
	message.SetString(lang, "set.label", "세트 %d")

	// Errors
	message.SetString(lang, string(ErrCodeInvalidFixedCount), "포함할 번호는 1개에서 5개까지 입력해야 합니다.")
	message.SetString(lang, string(ErrCodeDuplicateFixedNumber), "중복된 번호를 입력할 수 없습니다.")
	message.SetString(lang, string(ErrCodeFixedNumberOutOfRange), "1부터 45 사이의 숫자만 입력해주세요.")
	message.SetString(lang, string(ErrCodeMissingProfile), "이름과 생년월일을 모두 입력해주세요.")
	message.SetString(lang, string(ErrCodeInvalidBirthDate), "생년월일은 8자리 숫자(YYYYMMDD)로 입력해주세요.")
	message.SetString(lang, string(ErrCodeInvalidMode), "알 수 없는 추천 방식입니다.")
	message.SetString(lang, string(ErrCodeInvalidDateFormat), "올바른 형식의 생년월일(YYYYMMDD)을 입력해주세요.")
	message.SetString(lang, string(ErrCodeUnsupportedYear), "1891년부터 2049년 사이의 생년월일만 지원합니다.")
	message.SetString(lang, string(ErrCodeGanjiUnavailable), "사주 정보를 계산할 수 없습니다. 날짜를 확인해주세요.")
	message.SetString(lang, string(ErrCodeUnsupportedDate), "지원하지 않는 날짜입니다. 다른 날짜를 시도해주세요.")
	message.SetString(lang, string(ErrCodeFortuneAnalysisFailed), "사주 분석에 실패했습니다. 생년월일을 다시 확인해주세요.")
	message.SetString(lang, string(ErrCodeCircuitBreakerOpen), "일시적으로 사주 분석을 사용할 수 없습니다.")
}
