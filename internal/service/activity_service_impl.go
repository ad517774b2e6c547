package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/chronolog/internal/domain"
	"github.com/alexanderramin/chronolog/internal/repository"
	"go.uber.org/zap"
)

type activityService struct {
	activities repository.ActivityRepo
	log        *zap.Logger
	now        func() time.Time
}

// NewActivityService creates the registry service. A nil logger disables
// logging.
func NewActivityService(activities repository.ActivityRepo, log *zap.Logger) ActivityService {
	if log == nil {
		log = zap.NewNop()
	}
	return &activityService{activities: activities, log: log, now: time.Now}
}

func (s *activityService) Add(ctx context.Context, name string) (*domain.Activity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrEmptyName
	}

	var created domain.Activity
	err := s.activities.Mutate(ctx, func(activities []domain.Activity) ([]domain.Activity, error) {
		created = domain.Activity{
			ID:        nextActivityID(activities, s.now()),
			Name:      name,
			CreatedAt: s.now().UnixMilli(),
		}
		return append(activities, created), nil
	})
	if err != nil {
		s.log.Warn("adding activity failed", zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("adding activity: %w", err)
	}
	return &created, nil
}

func (s *activityService) Rename(ctx context.Context, id, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return domain.ErrEmptyName
	}

	err := s.activities.Mutate(ctx, func(activities []domain.Activity) ([]domain.Activity, error) {
		for i := range activities {
			if activities[i].ID == id {
				activities[i].Name = newName
				return activities, nil
			}
		}
		return nil, fmt.Errorf("activity %s: %w", id, repository.ErrNotFound)
	})
	if err != nil {
		s.log.Warn("renaming activity failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// Delete removes the activity only; entries referencing its id are left
// untouched and resolve to the deleted placeholder at read time.
func (s *activityService) Delete(ctx context.Context, id string) error {
	err := s.activities.Mutate(ctx, func(activities []domain.Activity) ([]domain.Activity, error) {
		for i := range activities {
			if activities[i].ID == id {
				return append(activities[:i], activities[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("activity %s: %w", id, repository.ErrNotFound)
	})
	if err != nil {
		s.log.Warn("deleting activity failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *activityService) Get(ctx context.Context, id string) (*domain.Activity, error) {
	activities, err := s.activities.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range activities {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, fmt.Errorf("activity %s: %w", id, repository.ErrNotFound)
}

func (s *activityService) List(ctx context.Context) ([]domain.Activity, error) {
	return s.activities.Load(ctx)
}

// nextActivityID keeps the time-derived id scheme of the original data:
// epoch milliseconds as a decimal string, bumped past any collision with
// an existing id.
func nextActivityID(activities []domain.Activity, now time.Time) string {
	ms := now.UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if !hasActivityID(activities, id) {
			return id
		}
		ms++
	}
}

func hasActivityID(activities []domain.Activity, id string) bool {
	for _, a := range activities {
		if a.ID == id {
			return true
		}
	}
	return false
}
