package service

import (
	"context"
	"errors"

	"github.com/DanRulev/moviebot.git/internal/models"
	"github.com/DanRulev/moviebot.git/internal/repository"
	"go.uber.org/zap"
)

type LanguageRI interface {
	SetLanguage(ctx context.Context, chatID int64, lang models.Language) error
	Language(ctx context.Context, chatID int64) (models.ChatLanguage, error)
}

type PreferenceS struct {
	repo LanguageRI
	log  *zap.Logger
}

func NewPreferenceService(repo LanguageRI, log *zap.Logger) *PreferenceS {
	return &PreferenceS{
		repo: repo,
		log:  log,
	}
}

func (p *PreferenceS) SaveLanguage(ctx context.Context, chatID int64, lang models.Language) error {
	if !lang.Valid() {
		return models.ErrUnknownLanguage
	}
	return p.repo.SetLanguage(ctx, chatID, lang)
}

// PreferredLanguage returns the stored language of a chat. ok is false when the
// chat never picked one or the stored value is no longer supported.
func (p *PreferenceS) PreferredLanguage(ctx context.Context, chatID int64) (models.Language, bool, error) {
	chat, err := p.repo.Language(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", false, nil
		}
		p.log.Warn("failed to get chat language", zap.Int64("chat_id", chatID), zap.Error(err))
		return "", false, err
	}

	if !chat.Language.Valid() {
		p.log.Warn("stored chat language is not supported", zap.Int64("chat_id", chatID), zap.String("language", chat.Language.String()))
		return "", false, nil
	}

	return chat.Language, true, nil
}
