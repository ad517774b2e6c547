package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/alexanderramin/chronolog/internal/domain"
	"github.com/alexanderramin/chronolog/internal/storage"
)

// ActivityMutator transforms the full registry inside one atomic
// read-modify-write cycle.
type ActivityMutator func(activities []domain.Activity) ([]domain.Activity, error)

// ActivityRepo persists the activity registry as one JSON document.
type ActivityRepo interface {
	Load(ctx context.Context) ([]domain.Activity, error)
	Mutate(ctx context.Context, fn ActivityMutator) error
	Replace(ctx context.Context, activities []domain.Activity) error
}

// StoreActivityRepo implements ActivityRepo over a storage.Store.
type StoreActivityRepo struct {
	store storage.Store

	mu     sync.Mutex
	cache  []domain.Activity
	cached bool
}

// NewStoreActivityRepo creates an activity repo over the given store.
func NewStoreActivityRepo(store storage.Store) *StoreActivityRepo {
	return &StoreActivityRepo{store: store}
}

func (r *StoreActivityRepo) Load(ctx context.Context) ([]domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached {
		return copyActivities(r.cache), nil
	}

	data, found, err := r.store.Get(ctx, storage.KeyActivities)
	if err != nil {
		return nil, fmt.Errorf("loading activities: %w", err)
	}
	if !found {
		r.cache, r.cached = nil, true
		return nil, nil
	}

	activities, err := decodeActivities(data)
	if err != nil {
		return nil, err
	}
	r.cache, r.cached = activities, true
	return copyActivities(activities), nil
}

func (r *StoreActivityRepo) Mutate(ctx context.Context, fn ActivityMutator) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.store.Update(ctx, storage.KeyActivities, func(old []byte, found bool) ([]byte, error) {
		var activities []domain.Activity
		if found {
			var err error
			activities, err = decodeActivities(old)
			if err != nil {
				return nil, err
			}
		}
		next, err := fn(activities)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(next)
		if err != nil {
			return nil, fmt.Errorf("encoding activities: %w", err)
		}
		r.cache, r.cached = next, true
		return data, nil
	})
	if err != nil {
		r.cached = false
		return err
	}
	return nil
}

func (r *StoreActivityRepo) Replace(ctx context.Context, activities []domain.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(activities)
	if err != nil {
		return fmt.Errorf("encoding activities: %w", err)
	}
	if err := r.store.Set(ctx, storage.KeyActivities, data); err != nil {
		r.cached = false
		return err
	}
	r.cache, r.cached = copyActivities(activities), true
	return nil
}

func decodeActivities(data []byte) ([]domain.Activity, error) {
	var activities []domain.Activity
	if err := json.Unmarshal(data, &activities); err != nil {
		return nil, fmt.Errorf("decoding activities: %w (%v)", ErrCorrupt, err)
	}
	return activities, nil
}

func copyActivities(activities []domain.Activity) []domain.Activity {
	if activities == nil {
		return nil
	}
	out := make([]domain.Activity, len(activities))
	copy(out, activities)
	return out
}
