package models

import "strings"

// languageNames maps the supported summary language tags to the names
// used when instructing the model.
var languageNames = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"ja": "Japanese",
	"ko": "Korean",
	"zh": "Chinese",
}

const DefaultLanguage = "en"

// ParseLanguage normalizes a user-supplied language tag, falling back to
// English for anything outside the supported set.
func ParseLanguage(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if _, ok := languageNames[tag]; ok {
		return tag
	}
	return DefaultLanguage
}

// LanguageName returns the display name for a supported language tag.
func LanguageName(tag string) string {
	if name, ok := languageNames[ParseLanguage(tag)]; ok {
		return name
	}
	return languageNames[DefaultLanguage]
}

// SupportedLanguages lists the tags accepted by ParseLanguage.
func SupportedLanguages() []string {
	tags := make([]string, 0, len(languageNames))
	for tag := range languageNames {
		tags = append(tags, tag)
	}
	return tags
}
