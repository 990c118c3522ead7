package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	CallbackLanguagePrefix = "lang_"
	CallbackGenrePrefix    = "genre_"
	CallbackRecommend      = "recommend"
	CallbackChangeLanguage = "change_language"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.movie.start(message.Chat.ID)
	case "language":
		t.movie.sendLanguageMenu(message.Chat.ID)
	case "help":
		t.movie.sendHelp(message.Chat.ID)
	default:
		t.movie.sendHelp(message.Chat.ID)
	}
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.Chat == nil {
		t.log.Warn("message without chat", zap.Int("message_id", message.MessageID))
		return
	}
	t.movie.sendHelp(message.Chat.ID)
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		t.log.Warn("failed to answer callback", zap.Error(err))
	}

	if query.Message == nil {
		t.log.Warn("callback without message", zap.String("callback_id", query.ID))
		return
	}

	data := query.Data
	chatID := query.Message.Chat.ID

	switch {
	case strings.HasPrefix(data, CallbackLanguagePrefix):
		t.movie.selectLanguage(chatID, strings.TrimPrefix(data, CallbackLanguagePrefix))

	case strings.HasPrefix(data, CallbackGenrePrefix):
		t.movie.selectGenre(chatID, strings.TrimPrefix(data, CallbackGenrePrefix))

	case data == CallbackRecommend:
		t.movie.recommend(chatID)

	case data == CallbackChangeLanguage:
		t.movie.sendLanguageMenu(chatID)

	default:
		t.log.Warn("unknown callback data", zap.String("data", data), zap.Int64("chat_id", chatID))
	}
}
