package cache

import (
	"context"
	"sync"

	"github.com/DanRulev/moviebot.git/internal/models"
	"golang.org/x/sync/singleflight"
)

type LoadFunc func(ctx context.Context, ref models.ArtifactRef) (models.Artifact, error)

// Artifacts memoizes loaded model artifacts per process, keyed by artifact id.
// Concurrent loads of the same id share one call. Failed loads are not stored,
// so the next Get tries again.
type Artifacts struct {
	mu     sync.RWMutex
	loaded map[string]models.Artifact
	group  singleflight.Group
	load   LoadFunc
}

func NewArtifacts(load LoadFunc) *Artifacts {
	return &Artifacts{
		loaded: make(map[string]models.Artifact),
		load:   load,
	}
}

func (a *Artifacts) Get(ctx context.Context, ref models.ArtifactRef) (models.Artifact, error) {
	if artifact, ok := a.Peek(ref.ID); ok {
		return artifact, nil
	}

	v, err, _ := a.group.Do(ref.ID, func() (interface{}, error) {
		if artifact, ok := a.Peek(ref.ID); ok {
			return artifact, nil
		}

		artifact, err := a.load(ctx, ref)
		if err != nil {
			return models.Artifact{}, err
		}

		a.mu.Lock()
		a.loaded[ref.ID] = artifact
		a.mu.Unlock()

		return artifact, nil
	})
	if err != nil {
		return models.Artifact{}, err
	}

	return v.(models.Artifact), nil
}

func (a *Artifacts) Peek(id string) (models.Artifact, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	artifact, ok := a.loaded[id]
	return artifact, ok
}

// Invalidate drops id so that the next Get reloads it.
func (a *Artifacts) Invalidate(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.loaded, id)
	a.group.Forget(id)
}

func (a *Artifacts) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.loaded)
}
