package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownLanguage = errors.New("unknown language")

type Language string

const (
	LangEN Language = "en"
	LangES Language = "es"
	LangPT Language = "pt"
)

// CanonicalLanguage is the language whose genre spelling keys the recommendation table.
const CanonicalLanguage = LangPT

var languageNames = map[Language]string{
	LangEN: "English",
	LangES: "Español",
	LangPT: "Português",
}

// Languages returns the supported languages in menu order.
func Languages() []Language {
	return []Language{LangEN, LangES, LangPT}
}

func ParseLanguage(code string) (Language, error) {
	lang := Language(strings.ToLower(strings.TrimSpace(code)))
	if _, ok := languageNames[lang]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}
	return lang, nil
}

func (l Language) Valid() bool {
	_, ok := languageNames[l]
	return ok
}

func (l Language) DisplayName() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return string(l)
}

func (l Language) String() string {
	return string(l)
}
