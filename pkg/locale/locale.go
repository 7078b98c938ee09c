// Package locale holds the fixed Amharic and English name tables for
// Ethiopian months and weekdays.
package locale

import (
	"fmt"
	"strings"

	"github.com/iwvelando/zemenbar/pkg/constants"
	"golang.org/x/text/language"
)

// Language selects a name table.
type Language int

const (
	// Amharic names, written in Ethiopic script.
	Amharic Language = iota
	// English transliterations.
	English
)

var supported = []language.Tag{language.Amharic, language.English}

var matcher = language.NewMatcher(supported)

// ParseLanguage resolves a BCP 47 tag such as "am", "am-ET" or "en-US".
func ParseLanguage(tag string) (Language, error) {
	t, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return Amharic, fmt.Errorf("invalid language %q: %w", tag, err)
	}
	_, idx, confidence := matcher.Match(t)
	if confidence == language.No {
		return Amharic, fmt.Errorf("unsupported language %q, expected %s or %s",
			tag, constants.LanguageAmharic, constants.LanguageEnglish)
	}
	return Language(idx), nil
}

// Tag returns the BCP 47 tag of the language.
func (l Language) Tag() language.Tag {
	if l == English {
		return language.English
	}
	return language.Amharic
}

func (l Language) String() string {
	if l == English {
		return constants.LanguageEnglish
	}
	return constants.LanguageAmharic
}

var monthNames = map[Language][13]string{
	Amharic: {"መስከረም", "ጥቅምት", "ኅዳር", "ታኅሣሥ", "ጥር", "የካቲት", "መጋቢት", "ሚያዝያ", "ግንቦት", "ሰኔ", "ሐምሌ", "ነሐሴ", "ጳጉሜ"},
	English: {"Meskerem", "Tikimt", "Hidar", "Tahsas", "Tir", "Yekatit", "Megabit", "Miazia", "Ginbot", "Sene", "Hamle", "Nehase", "Pagume"},
}

var weekdayNames = map[Language][7]string{
	Amharic: {"እሁድ", "ሰኞ", "ማክሰኞ", "ረቡዕ", "ሐሙስ", "ዓርብ", "ቅዳሜ"},
	English: {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
}

// MonthName returns the name of month 1..13, or "Unknown".
func MonthName(month int, lang Language) string {
	names, ok := monthNames[lang]
	if !ok || month < 1 || month > len(names) {
		return constants.UnknownName
	}
	return names[month-1]
}

// WeekdayName returns the name of weekday 0..6 (0 is Sunday), or "Unknown".
func WeekdayName(weekday int, lang Language) string {
	names, ok := weekdayNames[lang]
	if !ok || weekday < 0 || weekday >= len(names) {
		return constants.UnknownName
	}
	return names[weekday]
}

// EraSuffix is the Amete Mihret era abbreviation.
func EraSuffix(lang Language) string {
	if lang == English {
		return "E.C."
	}
	return "ዓ.ም"
}
