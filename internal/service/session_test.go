package service

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/DanRulev/moviebot.git/internal/catalog"
	"github.com/DanRulev/moviebot.git/internal/locale"
	"github.com/DanRulev/moviebot.git/internal/models"
	mock_service "github.com/DanRulev/moviebot.git/internal/service/mock"
	"github.com/DanRulev/moviebot.git/internal/storage/transient"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	table, err := locale.New()
	require.NoError(t, err)

	c, err := catalog.New(table)
	require.NoError(t, err)

	return c
}

// writeNarration stands in for the synthesizer: it writes a small file into store.
func writeNarration(store *transient.Store) func(ctx context.Context, text string, lang models.Language) (string, error) {
	return func(ctx context.Context, text string, lang models.Language) (string, error) {
		path := store.Path(store.NewName())
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return "", err
		}
		return path, nil
	}
}

func newSessionServiceMock(t *testing.T, ctrl *gomock.Controller, localized bool, setupMock func(*mock_service.MockAPII, *transient.Store)) (*SessionS, *transient.Store) {
	store, err := transient.New(t.TempDir())
	require.NoError(t, err)

	api := mock_service.NewMockAPII(ctrl)
	if setupMock != nil {
		setupMock(api, store)
	}

	return NewSessionService(api, newCatalog(t), store, localized, zap.NewNop()), store
}

func TestNarrationText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Você escolheu o gênero Acción", NarrationText("Acción"))
	assert.Equal(t, "Você escolheu o gênero Comedy", NarrationText("Comedy"))
}

func TestSessionS_SelectLanguage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, store := newSessionServiceMock(t, ctrl, true, nil)

	path := store.Path(store.NewName())
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	session := models.Session{
		ChatID:       1,
		Language:     models.LangEN,
		GenreLabel:   "Comedy",
		State:        models.StateSelected,
		PendingAudio: path,
	}

	session = s.SelectLanguage(session, models.LangES)

	assert.Equal(t, models.LangES, session.Language)
	assert.Equal(t, models.LangES, session.LabelLanguage)
	assert.Empty(t, session.GenreLabel)
	assert.Empty(t, session.PendingAudio)
	assert.Equal(t, models.StateIdle, session.State)
	assert.NoFileExists(t, path)
}

func TestSessionS_SelectGenre(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		session    models.Session
		label      string
		f          func(*mock_service.MockAPII, *transient.Store)
		wantErr    error
		assertFunc func(t *testing.T, session models.Session)
	}{
		{
			name:    "success",
			session: models.Session{ChatID: 1, Language: models.LangES},
			label:   "Acción",
			f: func(ma *mock_service.MockAPII, store *transient.Store) {
				ma.EXPECT().Synthesize(gomock.Any(), "Você escolheu o gênero Acción", models.LangES).DoAndReturn(writeNarration(store))
			},
			assertFunc: func(t *testing.T, session models.Session) {
				assert.Equal(t, "Acción", session.GenreLabel)
				assert.Equal(t, models.LangES, session.LabelLanguage)
				assert.Equal(t, models.StateSelected, session.State)
				assert.FileExists(t, session.PendingAudio)
			},
		},
		{
			name:    "error: no language",
			session: models.NewSession(1),
			label:   "Comedy",
			wantErr: ErrNoLanguage,
			assertFunc: func(t *testing.T, session models.Session) {
				assert.Empty(t, session.GenreLabel)
				assert.Equal(t, models.StateIdle, session.State)
			},
		},
		{
			name:    "error: synthesis failed keeps genre",
			session: models.Session{ChatID: 1, Language: models.LangPT},
			label:   "Ação",
			f: func(ma *mock_service.MockAPII, store *transient.Store) {
				ma.EXPECT().Synthesize(gomock.Any(), gomock.Any(), models.LangPT).Return("", errors.New("tts unavailable"))
			},
			wantErr: ErrAudioSynthesis,
			assertFunc: func(t *testing.T, session models.Session) {
				assert.Equal(t, "Ação", session.GenreLabel)
				assert.Equal(t, models.StateSelected, session.State)
				assert.Empty(t, session.PendingAudio)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, _ := newSessionServiceMock(t, ctrl, true, tt.f)

			session, err := s.SelectGenre(context.Background(), tt.session, tt.label)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			if tt.assertFunc != nil {
				tt.assertFunc(t, session)
			}
		})
	}
}

func TestSessionS_SelectGenre_LeavesOneNarration(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, store := newSessionServiceMock(t, ctrl, true, func(ma *mock_service.MockAPII, store *transient.Store) {
		ma.EXPECT().Synthesize(gomock.Any(), gomock.Any(), models.LangEN).DoAndReturn(writeNarration(store)).Times(2)
	})

	session := s.SelectLanguage(models.NewSession(7), models.LangEN)

	session, err := s.SelectGenre(context.Background(), session, "Comedy")
	require.NoError(t, err)
	first := session.PendingAudio

	session, err = s.SelectGenre(context.Background(), session, "Horror")
	require.NoError(t, err)

	files, err := store.Files()
	require.NoError(t, err)
	assert.Equal(t, []string{session.PendingAudio}, files)
	assert.NotEqual(t, first, session.PendingAudio)
	assert.NoFileExists(t, first)

	session = s.Finish(session)
	files, err = store.Files()
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestSessionS_Recommend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		localized  bool
		session    models.Session
		wantErr    error
		wantGenre  models.CanonicalGenre
		wantTitles []string
	}{
		{
			name:       "pt Ação",
			localized:  true,
			session:    models.Session{Language: models.LangPT, LabelLanguage: models.LangPT, GenreLabel: "Ação", State: models.StateSelected},
			wantGenre:  models.GenreAction,
			wantTitles: []string{"Fast & Furious", "John Wick", "Mad Max"},
		},
		{
			name:       "es Acción",
			localized:  true,
			session:    models.Session{Language: models.LangES, LabelLanguage: models.LangES, GenreLabel: "Acción", State: models.StateSelected},
			wantGenre:  models.GenreAction,
			wantTitles: []string{"Fast & Furious", "John Wick", "Mad Max"},
		},
		{
			name:       "en Documentary",
			localized:  true,
			session:    models.Session{Language: models.LangEN, LabelLanguage: models.LangEN, GenreLabel: "Documentary", State: models.StateSelected},
			wantGenre:  models.GenreDocumentary,
			wantTitles: []string{"The Social Dilemma", "Planet Earth", "13th"},
		},
		{
			name:       "canonical labels in an en chat",
			localized:  false,
			session:    models.Session{Language: models.LangEN, LabelLanguage: models.LangPT, GenreLabel: "Mistério", State: models.StateSelected},
			wantGenre:  models.GenreMystery,
			wantTitles: []string{"Knives Out", "Sherlock Holmes", "The Prestige"},
		},
		{
			name:      "unknown label",
			localized: true,
			session:   models.Session{Language: models.LangEN, LabelLanguage: models.LangEN, GenreLabel: "Western", State: models.StateSelected},
		},
		{
			name:      "label in another language",
			localized: true,
			session:   models.Session{Language: models.LangEN, LabelLanguage: models.LangEN, GenreLabel: "Comédia", State: models.StateSelected},
		},
		{
			name:    "error: no language",
			session: models.Session{GenreLabel: "Comedy", State: models.StateSelected},
			wantErr: ErrNoLanguage,
		},
		{
			name:    "error: no genre",
			session: models.Session{Language: models.LangEN, LabelLanguage: models.LangEN, State: models.StateIdle},
			wantErr: ErrNoGenre,
		},
		{
			name:    "error: finished session",
			session: models.Session{Language: models.LangEN, LabelLanguage: models.LangEN, GenreLabel: "Comedy", State: models.StateIdle},
			wantErr: ErrNoGenre,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, _ := newSessionServiceMock(t, ctrl, tt.localized, nil)

			session, rec, err := s.Recommend(tt.session)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, rec.Empty())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, models.StateRecommending, session.State)
			assert.Equal(t, tt.wantGenre, rec.Genre)
			if tt.wantTitles == nil {
				assert.True(t, rec.Empty())
			} else {
				assert.Equal(t, tt.wantTitles, rec.Titles)
			}
		})
	}
}

func TestSessionS_Recommend_Deterministic(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _ := newSessionServiceMock(t, ctrl, true, nil)
	session := models.Session{Language: models.LangES, LabelLanguage: models.LangES, GenreLabel: "Misterio", State: models.StateSelected}

	_, first, err := s.Recommend(session)
	require.NoError(t, err)

	first.Titles[0] = "changed"

	_, second, err := s.Recommend(session)
	require.NoError(t, err)
	assert.Equal(t, []string{"Knives Out", "Sherlock Holmes", "The Prestige"}, second.Titles)
}

func TestSessionS_LabelLanguage(t *testing.T) {
	t.Parallel()

	localized := NewSessionService(nil, nil, nil, true, zap.NewNop())
	canonical := NewSessionService(nil, nil, nil, false, zap.NewNop())

	for _, lang := range models.Languages() {
		assert.Equal(t, lang, localized.LabelLanguage(lang))
		assert.Equal(t, models.LangPT, canonical.LabelLanguage(lang))
	}
}

func TestSessionS_Cleanup(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, store := newSessionServiceMock(t, ctrl, true, nil)

	t.Run("missing file is ignored", func(t *testing.T) {
		session := s.Cleanup(models.Session{PendingAudio: store.Path("gone")})
		assert.Empty(t, session.PendingAudio)
	})

	t.Run("nothing pending", func(t *testing.T) {
		session := s.Cleanup(models.Session{GenreLabel: "Comedy"})
		assert.Equal(t, "Comedy", session.GenreLabel)
	})
}
