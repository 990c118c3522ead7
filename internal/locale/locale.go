// Package locale holds the translated strings and genre menus of the bot.
package locale

import (
	"errors"
	"fmt"

	"github.com/DanRulev/moviebot.git/internal/models"
)

var ErrUnknownKey = errors.New("unknown message key")

type Key string

const (
	KeyTitle                 Key = "title"
	KeyDescription           Key = "description"
	KeyChooseGenre           Key = "choose_genre"
	KeyPlayAudio             Key = "play_audio"
	KeyGetRecommendations    Key = "get_recommendations"
	KeyLoadingModel          Key = "loading_model"
	KeyRecommendationSuccess Key = "recommendation_success"
	KeyNoRecommendations     Key = "no_recommendations"
	KeyFooter                Key = "footer"
	KeyChooseLanguage        Key = "choose_language"
	KeyChangeLanguage        Key = "change_language"
	KeyModelLoadFailed       Key = "model_load_failed"
	KeyAudioFailed           Key = "audio_failed"
	KeySessionExpired        Key = "session_expired"
	KeyRecommendationFailed  Key = "recommendation_failed"
	KeyHelp                  Key = "help"
)

// FallbackLanguage is used for messages when the requested language is not supported.
const FallbackLanguage = models.LangEN

// Keys returns every message key the bot renders.
func Keys() []Key {
	return []Key{
		KeyTitle,
		KeyDescription,
		KeyChooseGenre,
		KeyPlayAudio,
		KeyGetRecommendations,
		KeyLoadingModel,
		KeyRecommendationSuccess,
		KeyNoRecommendations,
		KeyFooter,
		KeyChooseLanguage,
		KeyChangeLanguage,
		KeyModelLoadFailed,
		KeyAudioFailed,
		KeySessionExpired,
		KeyRecommendationFailed,
		KeyHelp,
	}
}

// Table is immutable after New.
type Table struct {
	messages map[Key]map[models.Language]string
	genres   map[models.Language][]string
}

// New builds the table from the built-in strings and checks that every key and
// every genre menu exists for every supported language.
func New() (*Table, error) {
	return newTable(messages, genres)
}

func newTable(msgs map[Key]map[models.Language]string, menus map[models.Language][]string) (*Table, error) {
	for _, key := range Keys() {
		entry, ok := msgs[key]
		if !ok {
			return nil, fmt.Errorf("locale: key %q is not defined", key)
		}
		for _, lang := range models.Languages() {
			if entry[lang] == "" {
				return nil, fmt.Errorf("locale: key %q has no %q translation", key, lang)
			}
		}
	}

	size := -1
	for _, lang := range models.Languages() {
		labels, ok := menus[lang]
		if !ok || len(labels) == 0 {
			return nil, fmt.Errorf("locale: no genres for %q", lang)
		}
		if size >= 0 && len(labels) != size {
			return nil, fmt.Errorf("locale: genre menu for %q has %d labels, want %d", lang, len(labels), size)
		}
		size = len(labels)
	}

	return &Table{messages: msgs, genres: menus}, nil
}

// Text returns the string for key in lang.
func (t *Table) Text(key Key, lang models.Language) (string, error) {
	entry, ok := t.messages[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	text, ok := entry[lang]
	if !ok {
		return "", fmt.Errorf("%w: %q for %q", ErrUnknownKey, key, lang)
	}
	return text, nil
}

// Message is Text for handlers: unsupported languages fall back to English and
// an unknown key renders as itself.
func (t *Table) Message(key Key, lang models.Language) string {
	if !lang.Valid() {
		lang = FallbackLanguage
	}
	text, err := t.Text(key, lang)
	if err != nil {
		return string(key)
	}
	return text
}

// Genres returns the genre labels offered in lang, in menu order.
func (t *Table) Genres(lang models.Language) []string {
	labels := t.genres[lang]
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}
