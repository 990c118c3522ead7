package client

import (
	"context"
	"fmt"

	"github.com/DanRulev/moviebot.git/internal/models"
	"github.com/Duckduckgot/gtts"
	"github.com/Duckduckgot/gtts/voices"
)

type TransientStore interface {
	Dir() string
	NewName() string
}

var speechVoices = map[models.Language]string{
	models.LangEN: voices.English,
	models.LangES: voices.Spanish,
	models.LangPT: voices.Portuguese,
}

// SpeechAPI writes Google Translate text-to-speech mp3 files into a transient store.
type SpeechAPI struct {
	store TransientStore
}

func NewSpeechAPI(store TransientStore) *SpeechAPI {
	return &SpeechAPI{store: store}
}

// Synthesize blocks until the mp3 for text is written and returns its path.
func (s *SpeechAPI) Synthesize(ctx context.Context, text string, lang models.Language) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	voice, ok := speechVoices[lang]
	if !ok {
		return "", fmt.Errorf("%w: no voice for %q", models.ErrUnknownLanguage, lang)
	}

	speech := gtts.Speech{Folder: s.store.Dir(), Language: voice}
	path, err := speech.CreateSpeechFile(text, s.store.NewName())
	if err != nil {
		return "", fmt.Errorf("failed to synthesize speech: %w", err)
	}

	return path, nil
}
