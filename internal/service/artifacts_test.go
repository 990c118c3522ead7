package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/DanRulev/moviebot.git/internal/models"
	mock_service "github.com/DanRulev/moviebot.git/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testRefs = []models.ArtifactRef{
	{ID: "vectorizer", RepoID: "RitaViegas/vectorizer.pkl", Filename: "vectorizer.pkl"},
	{ID: "similarity", RepoID: "RitaViegas/similarity.pkl", Filename: "similarity.pkl"},
}

var pickleBody = []byte{0x80, 0x04, 0x95, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, '.'}

func body(b []byte) io.ReadCloser {
	return io.NopCloser(bytes.NewReader(b))
}

func newModelServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockAPII)) *ModelS {
	api := mock_service.NewMockAPII(ctrl)
	if setupMock != nil {
		setupMock(api)
	}

	return NewModelService(api, testRefs, t.TempDir(), zap.NewNop())
}

func TestModelS_EnsureModels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		f          func(*mock_service.MockAPII)
		wantErr    error
		assertFunc func(t *testing.T, m *ModelS, artifacts []models.Artifact)
	}{
		{
			name: "success",
			f: func(ma *mock_service.MockAPII) {
				ma.EXPECT().Download(gomock.Any(), "RitaViegas/vectorizer.pkl", "vectorizer.pkl").Return(body(pickleBody), nil)
				ma.EXPECT().Download(gomock.Any(), "RitaViegas/similarity.pkl", "similarity.pkl").Return(body([]byte{0x78, 0x9c, 0x01}), nil)
			},
			assertFunc: func(t *testing.T, m *ModelS, artifacts []models.Artifact) {
				require.Len(t, artifacts, 2)
				assert.Equal(t, "vectorizer", artifacts[0].Ref.ID)
				assert.Equal(t, "pickle", artifacts[0].Format)
				assert.Equal(t, int64(len(pickleBody)), artifacts[0].Size)
				assert.Len(t, artifacts[0].SHA256, 64)
				assert.FileExists(t, artifacts[0].Path)
				assert.Equal(t, "zlib", artifacts[1].Format)
				assert.True(t, m.ModelsReady())
			},
		},
		{
			name: "error: download failed",
			f: func(ma *mock_service.MockAPII) {
				ma.EXPECT().Download(gomock.Any(), "RitaViegas/vectorizer.pkl", "vectorizer.pkl").Return(nil, errors.New("connection refused"))
			},
			wantErr: ErrModelLoad,
			assertFunc: func(t *testing.T, m *ModelS, artifacts []models.Artifact) {
				assert.False(t, m.ModelsReady())
			},
		},
		{
			name: "error: second artifact unrecognized",
			f: func(ma *mock_service.MockAPII) {
				ma.EXPECT().Download(gomock.Any(), "RitaViegas/vectorizer.pkl", "vectorizer.pkl").Return(body(pickleBody), nil)
				ma.EXPECT().Download(gomock.Any(), "RitaViegas/similarity.pkl", "similarity.pkl").Return(body([]byte("<!DOCTYPE html>")), nil)
			},
			wantErr: ErrUnrecognizedArtifact,
			assertFunc: func(t *testing.T, m *ModelS, artifacts []models.Artifact) {
				assert.False(t, m.ModelsReady())
				_, ok := m.cache.Peek("vectorizer")
				assert.True(t, ok)
			},
		},
		{
			name: "error: empty artifact",
			f: func(ma *mock_service.MockAPII) {
				ma.EXPECT().Download(gomock.Any(), "RitaViegas/vectorizer.pkl", "vectorizer.pkl").Return(body(nil), nil)
			},
			wantErr: ErrUnrecognizedArtifact,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newModelServiceMock(t, ctrl, tt.f)

			artifacts, err := m.EnsureModels(context.Background())
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrModelLoad)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, artifacts)
			} else {
				require.NoError(t, err)
			}

			if tt.assertFunc != nil {
				tt.assertFunc(t, m, artifacts)
			}
		})
	}
}

func TestModelS_EnsureModels_Memoized(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newModelServiceMock(t, ctrl, func(ma *mock_service.MockAPII) {
		ma.EXPECT().Download(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, repoID, filename string) (io.ReadCloser, error) {
				return body(pickleBody), nil
			}).Times(2)
	})

	first, err := m.EnsureModels(context.Background())
	require.NoError(t, err)

	second, err := m.EnsureModels(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestModelS_EnsureModels_FailureNotCached(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newModelServiceMock(t, ctrl, func(ma *mock_service.MockAPII) {
		gomock.InOrder(
			ma.EXPECT().Download(gomock.Any(), "RitaViegas/vectorizer.pkl", "vectorizer.pkl").Return(nil, errors.New("timeout")),
			ma.EXPECT().Download(gomock.Any(), "RitaViegas/vectorizer.pkl", "vectorizer.pkl").Return(body(pickleBody), nil),
		)
		ma.EXPECT().Download(gomock.Any(), "RitaViegas/similarity.pkl", "similarity.pkl").Return(body(pickleBody), nil)
	})

	_, err := m.EnsureModels(context.Background())
	require.ErrorIs(t, err, ErrModelLoad)

	artifacts, err := m.EnsureModels(context.Background())
	require.NoError(t, err)
	assert.Len(t, artifacts, 2)
}

func TestModelS_EnsureModels_FromDisk(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newModelServiceMock(t, ctrl, nil)

	for _, ref := range testRefs {
		path := m.artifactPath(ref)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, pickleBody, 0o644))
	}

	artifacts, err := m.EnsureModels(context.Background())
	require.NoError(t, err)
	require.Len(t, artifacts, 2)
	assert.Equal(t, m.artifactPath(testRefs[1]), artifacts[1].Path)
}

func TestModelS_EnsureModels_CorruptDiskCopy(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newModelServiceMock(t, ctrl, nil)
	path := m.artifactPath(testRefs[0])
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("not a model"), 0o644))

	_, err := m.EnsureModels(context.Background())
	require.ErrorIs(t, err, ErrUnrecognizedArtifact)
	assert.NoFileExists(t, path)
}

func TestModelS_ReloadModel(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newModelServiceMock(t, ctrl, func(ma *mock_service.MockAPII) {
		ma.EXPECT().Download(gomock.Any(), "RitaViegas/vectorizer.pkl", "vectorizer.pkl").DoAndReturn(
			func(ctx context.Context, repoID, filename string) (io.ReadCloser, error) {
				return body(pickleBody), nil
			}).Times(2)
		ma.EXPECT().Download(gomock.Any(), "RitaViegas/similarity.pkl", "similarity.pkl").Return(body(pickleBody), nil)
	})

	_, err := m.EnsureModels(context.Background())
	require.NoError(t, err)

	require.NoError(t, m.ReloadModel("vectorizer"))
	assert.False(t, m.ModelsReady())
	assert.NoFileExists(t, m.artifactPath(testRefs[0]))

	_, err = m.EnsureModels(context.Background())
	require.NoError(t, err)
	assert.True(t, m.ModelsReady())

	assert.Error(t, m.ReloadModel("unknown"))
}

func TestModelS_artifactPath(t *testing.T) {
	t.Parallel()

	m := &ModelS{cacheDir: "/models"}
	got := m.artifactPath(models.ArtifactRef{ID: "similarity", RepoID: "RitaViegas/similarity.pkl", Filename: "similarity.pkl"})
	assert.Equal(t, filepath.Join("/models", "RitaViegas--similarity.pkl", "similarity.pkl"), got)
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header []byte
		want   string
	}{
		{name: "pickle", header: []byte{0x80, 0x04}, want: "pickle"},
		{name: "zlib", header: []byte{0x78, 0x9c}, want: "zlib"},
		{name: "gzip", header: []byte{0x1f, 0x8b, 0x08}, want: "gzip"},
		{name: "bz2", header: []byte("BZh91AY"), want: "bz2"},
		{name: "xz", header: []byte{0xfd, '7', 'z', 'X', 'Z', 0x00, 0x00}, want: "xz"},
		{name: "lzma", header: []byte{0x5d, 0x00, 0x00, 0x80}, want: "lzma"},
		{name: "html error page", header: []byte("<html>"), want: ""},
		{name: "empty", header: nil, want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, detectFormat(tt.header))
		})
	}
}
