package memory

import (
	"context"

	"showroom/internal/model"
	"showroom/internal/repository"
)

type settingsRepo struct{ s *Store }

func NewSettingsRepository(s *Store) repository.SettingsRepository { return &settingsRepo{s: s} }

func (r *settingsRepo) Get(_ context.Context) (*model.Settings, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	s := r.s.settings
	return &s, nil
}

func (r *settingsRepo) Save(_ context.Context, s *model.Settings) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	s.ID = 1
	r.s.settings = *s
	return nil
}
