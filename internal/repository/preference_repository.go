package repository

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// Preference keys are fixed names shared with the web client's storage.
const (
	PrefKeyDarkMode = "darkMode"
	PrefKeyArabic   = "isArabic"
)

// PreferenceRepository persists the two cross-session display toggles in
// Redis. Missing keys read as false.
type PreferenceRepository struct {
	client *redis.Client
}

func NewPreferenceRepository(client *redis.Client) *PreferenceRepository {
	return &PreferenceRepository{client: client}
}

func (r *PreferenceRepository) GetBool(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return false, nil
	}
	return parsed, nil
}

func (r *PreferenceRepository) SetBool(ctx context.Context, key string, value bool) error {
	return r.client.Set(ctx, key, strconv.FormatBool(value), 0).Err()
}
