package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/chronolog/internal/storage"
)

// ReflectionRepo persists weekly reflection notes as one JSON object
// mapping Monday date keys to free text.
type ReflectionRepo interface {
	Load(ctx context.Context) (map[string]string, error)
	Set(ctx context.Context, weekKey, text string) error
	Replace(ctx context.Context, reflections map[string]string) error
}

// StoreReflectionRepo implements ReflectionRepo over a storage.Store.
// Reflections are read rarely; no snapshot cache.
type StoreReflectionRepo struct {
	store storage.Store
}

// NewStoreReflectionRepo creates a reflection repo over the given store.
func NewStoreReflectionRepo(store storage.Store) *StoreReflectionRepo {
	return &StoreReflectionRepo{store: store}
}

func (r *StoreReflectionRepo) Load(ctx context.Context) (map[string]string, error) {
	data, found, err := r.store.Get(ctx, storage.KeyReflections)
	if err != nil {
		return nil, fmt.Errorf("loading reflections: %w", err)
	}
	if !found {
		return map[string]string{}, nil
	}
	return decodeReflections(data)
}

func (r *StoreReflectionRepo) Set(ctx context.Context, weekKey, text string) error {
	return r.store.Update(ctx, storage.KeyReflections, func(old []byte, found bool) ([]byte, error) {
		reflections := map[string]string{}
		if found {
			var err error
			reflections, err = decodeReflections(old)
			if err != nil {
				return nil, err
			}
		}
		reflections[weekKey] = text
		data, err := json.Marshal(reflections)
		if err != nil {
			return nil, fmt.Errorf("encoding reflections: %w", err)
		}
		return data, nil
	})
}

func (r *StoreReflectionRepo) Replace(ctx context.Context, reflections map[string]string) error {
	data, err := json.Marshal(reflections)
	if err != nil {
		return fmt.Errorf("encoding reflections: %w", err)
	}
	return r.store.Set(ctx, storage.KeyReflections, data)
}

func decodeReflections(data []byte) (map[string]string, error) {
	var reflections map[string]string
	if err := json.Unmarshal(data, &reflections); err != nil {
		return nil, fmt.Errorf("decoding reflections: %w (%v)", ErrCorrupt, err)
	}
	if reflections == nil {
		reflections = map[string]string{}
	}
	return reflections, nil
}
