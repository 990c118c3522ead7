package models

import "time"

type ChatLanguage struct {
	ChatID    int64     `db:"chat_id"`
	Language  Language  `db:"language"`
	UpdatedAt time.Time `db:"updated_at"`
}
