package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/DanRulev/moviebot.git/internal/metrics"
	"github.com/DanRulev/moviebot.git/internal/models"
	"github.com/DanRulev/moviebot.git/internal/storage/cache"
	"go.uber.org/zap"
)

var (
	ErrModelLoad            = errors.New("model load failed")
	ErrUnrecognizedArtifact = errors.New("unrecognized artifact format")
)

// artifactFormats are the leading bytes of the containers joblib writes.
var artifactFormats = []struct {
	name  string
	magic []byte
}{
	{"pickle", []byte{0x80}},
	{"zlib", []byte{0x78}},
	{"gzip", []byte{0x1f, 0x8b}},
	{"bz2", []byte("BZh")},
	{"xz", []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}},
	{"lzma", []byte{0x5d, 0x00, 0x00}},
}

// ModelS makes the vectorizer and similarity artifacts available. They gate the
// bot: if any of them cannot be loaded, no genre menu is offered. Their content
// is never read by the recommendation lookup.
type ModelS struct {
	hub      HubAPII
	refs     []models.ArtifactRef
	cacheDir string
	cache    *cache.Artifacts
	log      *zap.Logger
}

func NewModelService(api HubAPII, refs []models.ArtifactRef, cacheDir string, log *zap.Logger) *ModelS {
	m := &ModelS{
		hub:      api,
		refs:     refs,
		cacheDir: cacheDir,
		log:      log,
	}
	m.cache = cache.NewArtifacts(m.loadArtifact)
	return m
}

// EnsureModels loads every configured artifact, reusing the ones already loaded.
func (m *ModelS) EnsureModels(ctx context.Context) ([]models.Artifact, error) {
	loaded := make([]models.Artifact, 0, len(m.refs))
	for _, ref := range m.refs {
		artifact, err := m.cache.Get(ctx, ref)
		if err != nil {
			m.log.Error("failed to load model artifact", zap.String("artifact", ref.ID), zap.String("repo_id", ref.RepoID), zap.Error(err))
			return nil, fmt.Errorf("%w: %s: %w", ErrModelLoad, ref.Filename, err)
		}
		loaded = append(loaded, artifact)
	}
	return loaded, nil
}

// ModelsReady reports whether every artifact is already in memory.
func (m *ModelS) ModelsReady() bool {
	for _, ref := range m.refs {
		if _, ok := m.cache.Peek(ref.ID); !ok {
			return false
		}
	}
	return true
}

// ReloadModel forgets the artifact with id and removes its cached file, so the
// next EnsureModels downloads it again.
func (m *ModelS) ReloadModel(id string) error {
	for _, ref := range m.refs {
		if ref.ID != id {
			continue
		}
		m.cache.Invalidate(id)
		if err := os.Remove(m.artifactPath(ref)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		m.log.Info("model artifact invalidated", zap.String("artifact", id))
		return nil
	}
	return fmt.Errorf("unknown artifact %q", id)
}

func (m *ModelS) loadArtifact(ctx context.Context, ref models.ArtifactRef) (models.Artifact, error) {
	path := m.artifactPath(ref)

	source := "disk"
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		source = "hub"
		if err := m.download(ctx, ref, path); err != nil {
			metrics.ArtifactLoadsTotal.WithLabelValues(ref.ID, source, "error").Inc()
			return models.Artifact{}, err
		}
	}

	artifact, err := inspectArtifact(path)
	if err != nil {
		metrics.ArtifactLoadsTotal.WithLabelValues(ref.ID, source, "error").Inc()
		if source == "disk" {
			// a corrupt cached copy is dropped so the next attempt downloads it
			_ = os.Remove(path)
		}
		return models.Artifact{}, err
	}
	artifact.Ref = ref
	artifact.LoadedAt = time.Now()

	metrics.ArtifactLoadsTotal.WithLabelValues(ref.ID, source, "ok").Inc()
	m.log.Info("model artifact loaded",
		zap.String("artifact", ref.ID),
		zap.String("source", source),
		zap.String("format", artifact.Format),
		zap.Int64("size", artifact.Size),
		zap.String("sha256", artifact.SHA256),
	)

	return artifact, nil
}

func (m *ModelS) download(ctx context.Context, ref models.ArtifactRef, path string) error {
	body, err := m.hub.Download(ctx, ref.RepoID, ref.Filename)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", ref.Filename, err)
	}
	defer body.Close()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".download-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", ref.Filename, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

func (m *ModelS) artifactPath(ref models.ArtifactRef) string {
	repo := strings.ReplaceAll(ref.RepoID, "/", "--")
	return filepath.Join(m.cacheDir, repo, filepath.Base(ref.Filename))
}

func inspectArtifact(path string) (models.Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Artifact{}, err
	}
	defer f.Close()

	header := make([]byte, 8)
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		if errors.Is(err, io.EOF) {
			return models.Artifact{}, fmt.Errorf("%w: %s is empty", ErrUnrecognizedArtifact, filepath.Base(path))
		}
		return models.Artifact{}, err
	}

	format := detectFormat(header[:n])
	if format == "" {
		return models.Artifact{}, fmt.Errorf("%w: %s", ErrUnrecognizedArtifact, filepath.Base(path))
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return models.Artifact{}, err
	}
	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		return models.Artifact{}, err
	}

	return models.Artifact{
		Path:   path,
		Size:   size,
		SHA256: hex.EncodeToString(h.Sum(nil)),
		Format: format,
	}, nil
}

func detectFormat(header []byte) string {
	for _, f := range artifactFormats {
		if bytes.HasPrefix(header, f.magic) {
			return f.name
		}
	}
	return ""
}
