package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DanRulev/moviebot.git/internal/locale"
	"github.com/DanRulev/moviebot.git/internal/models"
	"github.com/DanRulev/moviebot.git/internal/service"
	"github.com/DanRulev/moviebot.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// MovieT drives one chat through language, genre, narration and recommendations.
type MovieT struct {
	bot         BotSender
	cache       *cache.Cache
	service     ServiceI
	texts       TextsI
	timeout     time.Duration
	defaultLang models.Language
	log         *zap.Logger
}

type Options struct {
	Timeout time.Duration
	// DefaultLanguage is used for chats that have not picked a language yet.
	DefaultLanguage models.Language
}

func NewMovieTAPI(bot BotSender, cache *cache.Cache, service ServiceI, texts TextsI, opts Options, log *zap.Logger) *MovieT {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if !opts.DefaultLanguage.Valid() {
		opts.DefaultLanguage = locale.FallbackLanguage
	}
	return &MovieT{
		bot:         bot,
		cache:       cache,
		service:     service,
		texts:       texts,
		timeout:     opts.Timeout,
		defaultLang: opts.DefaultLanguage,
		log:         log,
	}
}

func (t *MovieT) start(chatID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	lang, ok, err := t.service.PreferredLanguage(ctx, chatID)
	if err != nil {
		t.log.Warn("failed to load chat language", zap.Int64("chat_id", chatID), zap.Error(err))
	}
	if !ok {
		t.sendLanguageMenu(chatID)
		return
	}

	t.openSession(ctx, chatID, lang)
}

func (t *MovieT) selectLanguage(chatID int64, code string) {
	lang, err := models.ParseLanguage(code)
	if err != nil {
		t.log.Warn("unsupported language in callback", zap.Int64("chat_id", chatID), zap.String("code", code))
		t.sendLanguageMenu(chatID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	if err := t.service.SaveLanguage(ctx, chatID, lang); err != nil {
		t.log.Warn("failed to save chat language", zap.Int64("chat_id", chatID), zap.Error(err))
	}

	t.openSession(ctx, chatID, lang)
}

// openSession checks the model artifacts, then shows the intro and the genre menu in lang.
func (t *MovieT) openSession(ctx context.Context, chatID int64, lang models.Language) {
	if _, err := t.service.EnsureModels(ctx); err != nil {
		t.log.Error("models unavailable", zap.Int64("chat_id", chatID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, t.texts.Message(locale.KeyModelLoadFailed, lang)))
		return
	}

	session, exists := t.cache.GetSession(chatID)
	if !exists {
		session = models.NewSession(chatID)
	}
	session = t.service.SelectLanguage(session, lang)
	t.cache.SetSession(session)

	intro := fmt.Sprintf("*%s*\n\n%s", t.texts.Message(locale.KeyTitle, lang), t.texts.Message(locale.KeyDescription, lang))
	msg := tgbotapi.NewMessage(chatID, intro)
	msg.ParseMode = "markdown"
	sendMessage(t.bot, t.log, msg)

	t.sendGenreMenu(session)
}

func (t *MovieT) selectGenre(chatID int64, data string) {
	session, ok := t.restoreSession(chatID)
	if !ok {
		return
	}

	labels := t.texts.Genres(session.LabelLanguage)
	idx, err := strconv.Atoi(data)
	if err != nil || idx < 0 || idx >= len(labels) {
		t.log.Warn("invalid genre callback", zap.Int64("chat_id", chatID), zap.String("data", data))
		t.sendGenreMenu(session)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	session, err = t.service.SelectGenre(ctx, session, labels[idx])
	t.cache.SetSession(session)

	lang := session.Language
	keyboard := t.recommendKeyboard(lang)

	if err != nil {
		if !errors.Is(err, service.ErrAudioSynthesis) {
			t.log.Error("failed to select genre", zap.Int64("chat_id", chatID), zap.Error(err))
			t.expire(chatID, lang)
			return
		}
		msg := tgbotapi.NewMessage(chatID, t.texts.Message(locale.KeyAudioFailed, lang))
		msg.ReplyMarkup = &keyboard
		sendMessage(t.bot, t.log, msg)
		return
	}

	audio := tgbotapi.NewAudio(chatID, tgbotapi.FilePath(session.PendingAudio))
	audio.Caption = fmt.Sprintf("%s %s", t.texts.Message(locale.KeyPlayAudio, lang), session.GenreLabel)
	audio.ReplyMarkup = &keyboard
	sendMessage(t.bot, t.log, audio)
}

func (t *MovieT) recommend(chatID int64) {
	session, ok := t.restoreSession(chatID)
	if !ok {
		return
	}
	lang := session.Language

	session, rec, err := t.service.Recommend(session)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoGenre):
			t.sendGenreMenu(session)
		case errors.Is(err, service.ErrNoLanguage):
			t.expire(chatID, lang)
		default:
			t.log.Error("failed to recommend", zap.Int64("chat_id", chatID), zap.Error(err))
			sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, t.texts.Message(locale.KeyRecommendationFailed, lang)))
		}
		return
	}

	sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, t.texts.Message(locale.KeyLoadingModel, lang)))

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	if _, err := t.service.EnsureModels(ctx); err != nil {
		t.log.Error("models unavailable", zap.Int64("chat_id", chatID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, t.texts.Message(locale.KeyModelLoadFailed, lang)))
		t.cache.SetSession(t.service.Finish(session))
		return
	}

	var text string
	if rec.Empty() {
		text = t.texts.Message(locale.KeyNoRecommendations, lang)
	} else {
		text = formatRecommendations(t.texts.Message(locale.KeyRecommendationSuccess, lang), rec.Titles)
	}
	sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, text))

	session = t.service.Finish(session)
	t.cache.SetSession(session)

	footer := tgbotapi.NewMessage(chatID, "_"+t.texts.Message(locale.KeyFooter, lang)+"_")
	footer.ParseMode = "markdown"
	keyboard := t.genreKeyboard(session)
	footer.ReplyMarkup = &keyboard
	sendMessage(t.bot, t.log, footer)
}

// restoreSession returns the chat's session. After a restart the session is
// rebuilt from the stored language; without one the chat is sent back to the
// language menu.
func (t *MovieT) restoreSession(chatID int64) (models.Session, bool) {
	if session, ok := t.cache.GetSession(chatID); ok && session.HasLanguage() {
		return session, true
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	lang, ok, err := t.service.PreferredLanguage(ctx, chatID)
	if err != nil {
		t.log.Warn("failed to load chat language", zap.Int64("chat_id", chatID), zap.Error(err))
	}
	if !ok {
		t.expire(chatID, t.defaultLang)
		return models.Session{}, false
	}

	session := t.service.SelectLanguage(models.NewSession(chatID), lang)
	t.cache.SetSession(session)
	return session, true
}

func (t *MovieT) expire(chatID int64, lang models.Language) {
	t.cache.DeleteSession(chatID)
	sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, t.texts.Message(locale.KeySessionExpired, lang)))
	t.sendLanguageMenu(chatID)
}

func (t *MovieT) sendLanguageMenu(chatID int64) {
	lang := t.defaultLang
	if session, ok := t.cache.GetSession(chatID); ok && session.HasLanguage() {
		lang = session.Language
	}

	row := make([]tgbotapi.InlineKeyboardButton, 0, len(models.Languages()))
	for _, l := range models.Languages() {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(l.DisplayName(), CallbackLanguagePrefix+l.String()))
	}
	keyboard := tgbotapi.NewInlineKeyboardMarkup(row)

	msg := tgbotapi.NewMessage(chatID, t.texts.Message(locale.KeyChooseLanguage, lang))
	msg.ReplyMarkup = &keyboard
	sendMessage(t.bot, t.log, msg)
}

func (t *MovieT) sendGenreMenu(session models.Session) {
	keyboard := t.genreKeyboard(session)
	msg := tgbotapi.NewMessage(session.ChatID, t.texts.Message(locale.KeyChooseGenre, session.Language))
	msg.ReplyMarkup = &keyboard
	sendMessage(t.bot, t.log, msg)
}

func (t *MovieT) sendHelp(chatID int64) {
	lang := t.defaultLang
	if session, ok := t.cache.GetSession(chatID); ok && session.HasLanguage() {
		lang = session.Language
	}
	sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, t.texts.Message(locale.KeyHelp, lang)))
}

// genreKeyboard lays the genre labels out two per row, followed by the change language button.
func (t *MovieT) genreKeyboard(session models.Session) tgbotapi.InlineKeyboardMarkup {
	labels := t.texts.Genres(session.LabelLanguage)

	var rows [][]tgbotapi.InlineKeyboardButton
	for i := 0; i < len(labels); i += 2 {
		row := []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(labels[i], CallbackGenrePrefix+strconv.Itoa(i)),
		}
		if i+1 < len(labels) {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(labels[i+1], CallbackGenrePrefix+strconv.Itoa(i+1)))
		}
		rows = append(rows, row)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(t.texts.Message(locale.KeyChangeLanguage, session.Language), CallbackChangeLanguage),
	))

	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func (t *MovieT) recommendKeyboard(lang models.Language) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎬 "+t.texts.Message(locale.KeyGetRecommendations, lang), CallbackRecommend),
		),
	)
}

// finishAll removes the pending narration of every open session.
func (t *MovieT) finishAll() {
	for _, session := range t.cache.Sessions() {
		t.cache.SetSession(t.service.Finish(session))
	}
}

func formatRecommendations(header string, titles []string) string {
	var b strings.Builder
	b.WriteString(header)
	for _, title := range titles {
		b.WriteString("\n🎥 ")
		b.WriteString(title)
	}
	return b.String()
}
