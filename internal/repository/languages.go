package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DanRulev/moviebot.git/internal/models"
)

type LanguagesR struct {
	db QueryI
}

func NewLanguagesRepository(db QueryI) *LanguagesR {
	return &LanguagesR{db: db}
}

func (l *LanguagesR) SetLanguage(ctx context.Context, chatID int64, lang models.Language) error {
	query := `INSERT INTO chat_languages (chat_id, language, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (chat_id)
		DO UPDATE SET
			language = EXCLUDED.language,
			updated_at = NOW()
		`
	_, err := l.db.ExecContext(ctx, query, chatID, string(lang))
	if err != nil {
		return fmt.Errorf("failed to save language for chat %d: %w", chatID, err)
	}

	return nil
}

func (l *LanguagesR) Language(ctx context.Context, chatID int64) (models.ChatLanguage, error) {
	query := `
	SELECT chat_id, language, updated_at
		FROM chat_languages
		WHERE chat_id = $1
	`

	var chat models.ChatLanguage
	err := l.db.GetContext(ctx, &chat, query, chatID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ChatLanguage{}, fmt.Errorf("chat %d: %w", chatID, ErrNotFound)
		}
		return models.ChatLanguage{}, fmt.Errorf("database error: %w", err)
	}

	return chat, nil
}
