package service

import (
	"context"
	"time"

	"github.com/alexanderramin/chronolog/internal/repository"
	"github.com/alexanderramin/chronolog/internal/summary"
)

type reflectionService struct {
	reflections repository.ReflectionRepo
}

// NewReflectionService creates the weekly-reflection service. Week keys
// are normalized to the local Monday of the given time.
func NewReflectionService(reflections repository.ReflectionRepo) ReflectionService {
	return &reflectionService{reflections: reflections}
}

func (s *reflectionService) Reflection(ctx context.Context, weekStart time.Time) (string, error) {
	all, err := s.reflections.Load(ctx)
	if err != nil {
		return "", err
	}
	return all[summary.DateKey(summary.WeekStart(weekStart))], nil
}

func (s *reflectionService) SetReflection(ctx context.Context, weekStart time.Time, text string) error {
	return s.reflections.Set(ctx, summary.DateKey(summary.WeekStart(weekStart)), text)
}
