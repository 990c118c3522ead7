package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DanRulev/moviebot.git/internal/metrics"
	"github.com/DanRulev/moviebot.git/internal/models"
	"go.uber.org/zap"
)

var (
	ErrNoLanguage     = errors.New("no language selected")
	ErrNoGenre        = errors.New("no genre selected")
	ErrAudioSynthesis = errors.New("audio synthesis failed")
)

// NarrationText is always Portuguese, whatever the chat language.
func NarrationText(label string) string {
	return "Você escolheu o gênero " + label
}

// SessionS moves a chat session through idle, selected and recommending.
// It never stores sessions itself: every step takes and returns the value.
type SessionS struct {
	speech          SpeechAPII
	catalog         CatalogI
	store           TransientI
	localizedGenres bool
	log             *zap.Logger
}

func NewSessionService(speech SpeechAPII, catalog CatalogI, store TransientI, localizedGenres bool, log *zap.Logger) *SessionS {
	return &SessionS{
		speech:          speech,
		catalog:         catalog,
		store:           store,
		localizedGenres: localizedGenres,
		log:             log,
	}
}

// LabelLanguage is the language genre labels are displayed in for a chat in lang.
func (s *SessionS) LabelLanguage(lang models.Language) models.Language {
	if s.localizedGenres {
		return lang
	}
	return models.CanonicalLanguage
}

func (s *SessionS) SelectLanguage(session models.Session, lang models.Language) models.Session {
	session = s.Cleanup(session)
	session.Language = lang
	session.LabelLanguage = s.LabelLanguage(lang)
	session.GenreLabel = ""
	session.State = models.StateIdle
	return session
}

// SelectGenre records label and narrates it. The previous narration file is
// removed before the new one is written. On ErrAudioSynthesis the returned
// session still has the genre selected.
func (s *SessionS) SelectGenre(ctx context.Context, session models.Session, label string) (models.Session, error) {
	if !session.HasLanguage() {
		return session, ErrNoLanguage
	}

	session = s.Cleanup(session)
	session.GenreLabel = label
	session.LabelLanguage = s.LabelLanguage(session.Language)
	session.State = models.StateSelected

	start := time.Now()
	path, err := s.speech.Synthesize(ctx, NarrationText(label), session.Language)
	metrics.NarrationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.NarrationsTotal.WithLabelValues(session.Language.String(), "error").Inc()
		s.log.Warn("failed to synthesize narration", zap.Int64("chat_id", session.ChatID), zap.String("genre", label), zap.Error(err))
		return session, fmt.Errorf("%w: %w", ErrAudioSynthesis, err)
	}

	metrics.NarrationsTotal.WithLabelValues(session.Language.String(), "ok").Inc()
	session.PendingAudio = path

	return session, nil
}

func (s *SessionS) Recommend(session models.Session) (models.Session, models.Recommendation, error) {
	if !session.HasLanguage() {
		return session, models.Recommendation{}, ErrNoLanguage
	}
	if session.GenreLabel == "" || session.State == models.StateIdle {
		return session, models.Recommendation{}, ErrNoGenre
	}

	session.State = models.StateRecommending

	genre := s.catalog.Normalize(session.LabelLanguage, session.GenreLabel)
	rec := models.Recommendation{
		Genre:  genre,
		Titles: s.catalog.Recommend(genre),
	}

	result := "found"
	if rec.Empty() {
		result = "empty"
		s.log.Info("no recommendations", zap.Int64("chat_id", session.ChatID), zap.String("label", session.GenreLabel), zap.String("label_language", session.LabelLanguage.String()))
	}
	metrics.RecommendationsTotal.WithLabelValues(session.Language.String(), result).Inc()

	return session, rec, nil
}

// Finish ends the render pass: the narration file is removed and the session
// returns to idle.
func (s *SessionS) Finish(session models.Session) models.Session {
	session = s.Cleanup(session)
	session.GenreLabel = ""
	session.State = models.StateIdle
	return session
}

// Cleanup removes the pending narration file. Failures are logged and ignored.
func (s *SessionS) Cleanup(session models.Session) models.Session {
	if session.PendingAudio == "" {
		return session
	}

	if err := s.store.Remove(session.PendingAudio); err != nil {
		metrics.TransientCleanupsTotal.WithLabelValues("error").Inc()
		s.log.Warn("failed to remove narration file", zap.String("path", session.PendingAudio), zap.Error(err))
	} else {
		metrics.TransientCleanupsTotal.WithLabelValues("removed").Inc()
	}

	session.PendingAudio = ""
	return session
}
