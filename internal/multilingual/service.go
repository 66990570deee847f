package multilingual

import (
	"sort"
	"strings"
)

// GetFruitName returns the fruit name in the given language, falling
// back to English and finally to the class name itself.
func GetFruitName(fruitClass, language string) string {
	translations, ok := fruitTranslations[fruitClass]
	if !ok {
		return fruitClass
	}
	if name, ok := translations[language]; ok {
		return name
	}
	if name, ok := translations["en"]; ok {
		return name
	}
	return fruitClass
}

// GetUIText returns localized UI text for a key, with the same fallback
// chain as GetFruitName.
func GetUIText(key, language string) string {
	translations, ok := uiTranslations[key]
	if !ok {
		return key
	}
	if text, ok := translations[language]; ok {
		return text
	}
	if text, ok := translations["en"]; ok {
		return text
	}
	return key
}

// SupportedLanguages returns language code to display name.
func SupportedLanguages() map[string]string {
	out := make(map[string]string, len(supportedLanguages))
	for code, name := range supportedLanguages {
		out[code] = name
	}
	return out
}

// IsSupported reports whether a language code is known.
func IsSupported(language string) bool {
	_, ok := supportedLanguages[language]
	return ok
}

// TranslationKeys lists the UI text keys, sorted.
func TranslationKeys() []string {
	keys := make([]string, 0, len(uiTranslations))
	for k := range uiTranslations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TranslatedFields holds the localized companions attached to a
// classification result.
type TranslatedFields struct {
	FruitName string `json:"fruit_name"`
	Ripeness  string `json:"ripeness,omitempty"`
	Quality   string `json:"quality,omitempty"`
	SizeGrade string `json:"size_grade,omitempty"`
}

// TranslateResult localizes the display fields of one classification.
// Lookup keys are lowercased so "Ripe" and "ripe" resolve the same.
func TranslateResult(fruitClass, ripeness, qualityStatus, sizeGrade, language string) TranslatedFields {
	fields := TranslatedFields{
		FruitName: GetFruitName(fruitClass, language),
	}
	if ripeness != "" {
		fields.Ripeness = GetUIText(strings.ToLower(ripeness), language)
	}
	if qualityStatus != "" {
		fields.Quality = GetUIText(strings.ToLower(qualityStatus), language)
	}
	if sizeGrade != "" {
		fields.SizeGrade = GetUIText(strings.ToLower(sizeGrade), language)
	}
	return fields
}
