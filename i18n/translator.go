package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "key" or "requires").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "schema_definition":
			return "スキーマ定義が不正です"
		case "unknown_key":
			return "未知のキーです"
		case "missing_dependency":
			return "依存キーが不足しています"
		case "missing_required_key":
			return "必須キーが不足しています"
		case "key_validation":
			return "値の検証に失敗しました"
		case "key_merge":
			return "マージに失敗しました"
		case "arity":
			return "レコード数が不足しています"
		case "invalid_type":
			return "型が不正です"
		}
	default: // "en"
		switch code {
		case "schema_definition":
			return "invalid schema definition"
		case "unknown_key":
			return "unknown key"
		case "missing_dependency":
			return "missing dependency"
		case "missing_required_key":
			return "required key missing"
		case "key_validation":
			return "value validation failed"
		case "key_merge":
			return "merge failed"
		case "arity":
			return "too few records"
		case "invalid_type":
			return "invalid type"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

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

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
