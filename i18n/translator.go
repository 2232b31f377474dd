package i18n

import "fmt"

// Translator retrieves localized messages for issue kinds. data provides the
// issue's structured payload (for example, "min" or "expected") so messages
// can embed the violated constraint.
type Translator interface {
	Message(kind string, data map[string]any) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(kind string, data map[string]any) string {
	if t.lang == "ja" {
		return japanese(kind, data)
	}
	return english(kind, data)
}

func english(kind string, data map[string]any) string {
	switch kind {
	case "invalid_type":
		if e, ok := data["expected"]; ok {
			if g, ok := data["got"]; ok {
				return fmt.Sprintf("invalid type: expected %v, got %v", e, g)
			}
			return fmt.Sprintf("invalid type: expected %v", e)
		}
		return "invalid type"
	case "too_small":
		switch {
		case has(data, "expected"):
			return fmt.Sprintf("expected %v elements, got %v", data["expected"], data["got"])
		case has(data, "min"):
			return fmt.Sprintf("value is below minimum %v", data["min"])
		case has(data, "gt"):
			return fmt.Sprintf("value must be greater than %v", data["gt"])
		case has(data, "length"):
			return fmt.Sprintf("expected length %v", data["length"])
		}
		return "value is too small"
	case "too_big":
		switch {
		case has(data, "expected"):
			return fmt.Sprintf("expected %v elements, got %v", data["expected"], data["got"])
		case has(data, "max"):
			return fmt.Sprintf("value is above maximum %v", data["max"])
		case has(data, "lt"):
			return fmt.Sprintf("value must be less than %v", data["lt"])
		case has(data, "length"):
			return fmt.Sprintf("expected length %v", data["length"])
		}
		return "value is too big"
	case "not_multiple_of":
		if has(data, "multiple_of") {
			return fmt.Sprintf("expected a multiple of %v", data["multiple_of"])
		}
		return "not a multiple"
	case "invalid_string":
		switch data["validation"] {
		case "pattern":
			return "string does not match pattern"
		case "utf8":
			return "string is not well-formed UTF-8"
		case "uuid":
			return "string is not a valid UUID"
		}
		return "invalid string"
	case "invalid_literal":
		if has(data, "expected") {
			return fmt.Sprintf("invalid literal: expected %v, got %v", data["expected"], data["got"])
		}
		return "invalid literal"
	case "invalid_union":
		return "no union alternative matched"
	case "unrecognized_keys":
		if has(data, "keys") {
			return fmt.Sprintf("unrecognized keys: %v", data["keys"])
		}
		return "unrecognized keys"
	case "not_unique":
		if has(data, "key") {
			return fmt.Sprintf("duplicate value for key %v", data["key"])
		}
		return "duplicate value"
	case "parse_error":
		if has(data, "error") {
			return fmt.Sprintf("cannot decode input: %v", data["error"])
		}
		return "parse error"
	}
	return kind
}

func japanese(kind string, data map[string]any) string {
	switch kind {
	case "invalid_type":
		return "型が不正です"
	case "too_small":
		return "小さすぎます"
	case "too_big":
		return "大きすぎます"
	case "not_multiple_of":
		return "倍数ではありません"
	case "invalid_string":
		return "文字列が不正です"
	case "invalid_literal":
		return "リテラルが一致しません"
	case "invalid_union":
		return "どの候補にも一致しません"
	case "unrecognized_keys":
		return "未知のキーです"
	case "not_unique":
		return "値が重複しています"
	case "parse_error":
		return "解析エラー"
	}
	return kind
}

func has(data map[string]any, key string) bool {
	_, ok := data[key]
	return ok
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// T renders the message for kind using the current Translator.
func T(kind string, data map[string]any) string {
	return currentTranslator.Message(kind, data)
}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}
