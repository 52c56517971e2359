package service

import (
	"context"

	"assessment-service/internal/models"
	"assessment-service/internal/repository"
)

// Preferences is the immutable snapshot of the two persisted display
// toggles. Each toggle produces a new snapshot plus a store write; nothing
// here is ambient mutable state.
type Preferences struct {
	DarkMode bool `json:"darkMode"`
	Arabic   bool `json:"isArabic"`
}

func (p Preferences) Language() string {
	if p.Arabic {
		return models.LanguageArabic
	}
	return models.LanguageEnglish
}

func (p Preferences) Theme() string {
	if p.DarkMode {
		return models.ThemeDark
	}
	return models.ThemeLight
}

type PreferenceService struct {
	Store PreferenceStore
}

func NewPreferenceService(store PreferenceStore) *PreferenceService {
	return &PreferenceService{Store: store}
}

// Snapshot reads both flags. Missing keys default to false (English, light).
func (s *PreferenceService) Snapshot(ctx context.Context) (Preferences, error) {
	dark, err := s.Store.GetBool(ctx, repository.PrefKeyDarkMode)
	if err != nil {
		return Preferences{}, err
	}
	arabic, err := s.Store.GetBool(ctx, repository.PrefKeyArabic)
	if err != nil {
		return Preferences{}, err
	}
	return Preferences{DarkMode: dark, Arabic: arabic}, nil
}

func (s *PreferenceService) SetDarkMode(ctx context.Context, enabled bool) (Preferences, error) {
	if err := s.Store.SetBool(ctx, repository.PrefKeyDarkMode, enabled); err != nil {
		return Preferences{}, err
	}
	return s.Snapshot(ctx)
}

func (s *PreferenceService) SetArabic(ctx context.Context, enabled bool) (Preferences, error) {
	if err := s.Store.SetBool(ctx, repository.PrefKeyArabic, enabled); err != nil {
		return Preferences{}, err
	}
	return s.Snapshot(ctx)
}
