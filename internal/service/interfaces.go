package service

import (
	"context"

	"assessment-service/internal/models"
)

// Storage and collaborator contracts, satisfied by the repository, transport,
// geo and event packages. Kept as interfaces so service tests can mock them.

type SessionStore interface {
	Create(ctx context.Context, session *models.AssessmentSession) error
	FindByID(ctx context.Context, id string) (*models.AssessmentSession, error)
	Save(ctx context.Context, session *models.AssessmentSession) error
}

type ResultStore interface {
	Create(ctx context.Context, result *models.StoredResult) error
	FindBySession(ctx context.Context, sessionID string) (*models.StoredResult, error)
}

type ResultsTransport interface {
	Submit(ctx context.Context, record *models.SubmissionRecord) (int64, error)
}

type LocationResolver interface {
	Reverse(ctx context.Context, latitude, longitude float64) *models.Location
}

type EventSink interface {
	Publish(eventType string, payload any) error
}

type PreferenceStore interface {
	GetBool(ctx context.Context, key string) (bool, error)
	SetBool(ctx context.Context, key string, value bool) error
}
