package service

import (
	"context"
	"io"

	"github.com/DanRulev/moviebot.git/internal/models"
	"go.uber.org/zap"
)

type HubAPII interface {
	Download(ctx context.Context, repoID, filename string) (io.ReadCloser, error)
}

type SpeechAPII interface {
	Synthesize(ctx context.Context, text string, lang models.Language) (string, error)
}

type APII interface {
	HubAPII
	SpeechAPII
}

type RepositoryI interface {
	LanguageRI
}

type CatalogI interface {
	Normalize(lang models.Language, label string) models.CanonicalGenre
	Recommend(genre models.CanonicalGenre) []string
}

type TransientI interface {
	Remove(path string) error
}

type Options struct {
	Artifacts       []models.ArtifactRef
	ModelCacheDir   string
	LocalizedGenres bool
}

type Service struct {
	*ModelS
	*SessionS
	*PreferenceS
}

func InitServices(api APII, repo RepositoryI, catalog CatalogI, store TransientI, opts Options, log *zap.Logger) *Service {
	return &Service{
		ModelS:      NewModelService(api, opts.Artifacts, opts.ModelCacheDir, log),
		SessionS:    NewSessionService(api, catalog, store, opts.LocalizedGenres, log),
		PreferenceS: NewPreferenceService(repo, log),
	}
}
