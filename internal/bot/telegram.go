package bot

import (
	"context"

	"github.com/DanRulev/moviebot.git/internal/locale"
	"github.com/DanRulev/moviebot.git/internal/models"
	"github.com/DanRulev/moviebot.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type ModelSI interface {
	EnsureModels(ctx context.Context) ([]models.Artifact, error)
}

type SessionSI interface {
	SelectLanguage(session models.Session, lang models.Language) models.Session
	SelectGenre(ctx context.Context, session models.Session, label string) (models.Session, error)
	Recommend(session models.Session) (models.Session, models.Recommendation, error)
	Finish(session models.Session) models.Session
}

type PreferenceSI interface {
	SaveLanguage(ctx context.Context, chatID int64, lang models.Language) error
	PreferredLanguage(ctx context.Context, chatID int64) (models.Language, bool, error)
}

type ServiceI interface {
	ModelSI
	SessionSI
	PreferenceSI
}

type TextsI interface {
	Message(key locale.Key, lang models.Language) string
	Genres(lang models.Language) []string
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramAPI struct {
	bot   *tgbotapi.BotAPI
	movie *MovieT
	log   *zap.Logger
}

func NewTelegramAPI(botToken, env string, service ServiceI, texts TextsI, cache *cache.Cache, opts Options, log *zap.Logger) (*TelegramAPI, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	if env == "development" {
		bot.Debug = true
	} else {
		bot.Debug = false
	}

	log.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

	return &TelegramAPI{
		bot:   bot,
		movie: NewMovieTAPI(bot, cache, service, texts, opts, log),
		log:   log,
	}, nil
}

// Start consumes updates until Stop is called.
func (t *TelegramAPI) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message != nil {
			if update.Message.IsCommand() {
				t.handleCommand(update.Message)
			} else {
				t.handleMessage(update.Message)
			}
			continue
		}

		if update.CallbackQuery != nil {
			t.handleCallbackQuery(update.CallbackQuery)
		}
	}
}

// Stop ends the update loop and removes the narration files of open sessions.
func (t *TelegramAPI) Stop() {
	t.bot.StopReceivingUpdates()
	t.movie.finishAll()
}

func sendMessage(bot BotSender, log *zap.Logger, msg tgbotapi.Chattable) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Error("failed to send message", zap.Error(err))
		return
	}
	if sentMsg.Chat != nil {
		log.Debug("sent message", zap.Int64("chat_id", sentMsg.Chat.ID))
	}
}
