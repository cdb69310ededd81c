package user

import (
	"context"
	"errors"
	"time"
)

// ErrUnknownRole is returned when a role id is not part of the static catalog.
var ErrUnknownRole = errors.New("unknown role_id")

// RoleCatalog reports whether a role id exists in the static catalog.
type RoleCatalog interface {
	HasRole(id string) bool
}

// ProfileUseCase describes per-user learning state operations.
type ProfileUseCase interface {
	Get(ctx context.Context, email string) (Record, error)
	SaveRole(ctx context.Context, email, roleID string) (SaveResult, error)
	UpdateProgress(ctx context.Context, email string, progress int) (int, error)
	History(ctx context.Context, email string) ([]HistoryEntry, error)
}

// SaveResult reports the outcome of a role save.
type SaveResult struct {
	SavedRoles []string
	Already    bool
}

type profileService struct {
	repo  Repository
	roles RoleCatalog
}

// NewProfileService returns default implementation of ProfileUseCase.
func NewProfileService(repo Repository, roles RoleCatalog) ProfileUseCase {
	return &profileService{repo: repo, roles: roles}
}

func (s *profileService) Get(ctx context.Context, email string) (Record, error) {
	return s.repo.GetByEmail(ctx, email)
}

// SaveRole prepends roleID to the user's saved roles. Re-saving an already
// saved role is a no-op: no mutation, no history entry.
func (s *profileService) SaveRole(ctx context.Context, email, roleID string) (SaveResult, error) {
	if !s.roles.HasRole(roleID) {
		return SaveResult{}, ErrUnknownRole
	}
	var res SaveResult
	_, err := s.repo.Update(ctx, email, func(rec *Record) error {
		for _, id := range rec.SavedRoles {
			if id == roleID {
				res = SaveResult{SavedRoles: rec.SavedRoles, Already: true}
				return nil
			}
		}
		rec.SavedRoles = append([]string{roleID}, rec.SavedRoles...)
		rec.History = append(rec.History, ActionTag(time.Now().Unix(), "saved:"+roleID))
		res = SaveResult{SavedRoles: rec.SavedRoles}
		return nil
	})
	if err != nil {
		return SaveResult{}, err
	}
	return res, nil
}

// UpdateProgress clamps progress to [0,100], stores it and always appends a
// history snapshot, even when the value did not change.
func (s *profileService) UpdateProgress(ctx context.Context, email string, progress int) (int, error) {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	_, err := s.repo.Update(ctx, email, func(rec *Record) error {
		rec.Progress = progress
		rec.History = append(rec.History, Snapshot(time.Now().Unix(), progress))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return progress, nil
}

func (s *profileService) History(ctx context.Context, email string) ([]HistoryEntry, error) {
	rec, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if rec.History == nil {
		return []HistoryEntry{}, nil
	}
	return rec.History, nil
}
