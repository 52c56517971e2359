package service

import (
	"context"
	"fmt"
	"time"

	"assessment-service/internal/event"
	"assessment-service/internal/flow"
	"assessment-service/internal/models"

	"github.com/google/uuid"
)

// SessionService owns session lifecycle and navigation. The state machine
// does the rule-keeping; this layer adds persistence, timestamps and events.
type SessionService struct {
	Store   SessionStore
	Machine *flow.Machine
	Events  EventSink
}

func NewSessionService(store SessionStore, machine *flow.Machine, events EventSink) *SessionService {
	return &SessionService{Store: store, Machine: machine, Events: events}
}

// CreateSession opens a new session in the consent phase. Language and
// theme default to the persisted preference snapshot the caller passes in.
func (s *SessionService) CreateSession(ctx context.Context, language, theme string) (*models.AssessmentSession, error) {
	now := time.Now()
	session := &models.AssessmentSession{
		SessionToken: uuid.NewString(),
		Phase:        models.PhaseAwaitingConsent,
		Language:     language,
		Theme:        theme,
		Answers:      make(models.AnswerSet),
		Submission:   models.SubmissionIdle,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

func (s *SessionService) GetSession(ctx context.Context, id string) (*models.AssessmentSession, error) {
	return s.Store.FindByID(ctx, id)
}

// AcceptConsent starts the session clock and moves to the welcome screen.
func (s *SessionService) AcceptConsent(ctx context.Context, id string) (*models.AssessmentSession, error) {
	session, err := s.Store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Machine.AcceptConsent(session); err != nil {
		return nil, err
	}
	session.StartTime = time.Now()
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	if s.Events != nil {
		_ = s.Events.Publish(event.SessionStarted, map[string]any{
			"session_id": session.ID,
			"language":   session.Language,
		})
	}
	return session, nil
}

// ConsentDeclinedMessage is what the rendering layer shows when the user
// refuses the privacy terms. The session stays where it is.
func ConsentDeclinedMessage(language string) string {
	if language == models.LanguageArabic {
		return "عذراً، يجب الموافقة على سياسة الخصوصية للمتابعة."
	}
	return "Sorry, you must accept the privacy policy to continue."
}

// Begin leaves the welcome screen for the first question.
func (s *SessionService) Begin(ctx context.Context, id, userName string) (*models.AssessmentSession, error) {
	session, err := s.Store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Machine.Begin(session, userName); err != nil {
		return nil, err
	}
	if session.StartTime.IsZero() {
		session.StartTime = time.Now()
	}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// RecordAnswer writes one answer into the session's answer set.
func (s *SessionService) RecordAnswer(ctx context.Context, id, questionID string, answer models.Answer) (*models.AssessmentSession, error) {
	session, err := s.Store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Machine.Record(session, questionID, answer); err != nil {
		return nil, err
	}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Advance validates the current question and moves forward; at the end of
// the catalog the session enters the submitting phase and the caller hands
// off to the submission coordinator. Validation failures come back as
// *flow.ValidationError with the session untouched.
func (s *SessionService) Advance(ctx context.Context, id string) (*models.AssessmentSession, error) {
	session, err := s.Store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Machine.Advance(session); err != nil {
		return session, err
	}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) Retreat(ctx context.Context, id string) (*models.AssessmentSession, error) {
	session, err := s.Store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Machine.Retreat(session); err != nil {
		return session, err
	}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Restart wipes the answer set and any prior submission outcome, returning
// the session to the welcome screen with a fresh clock.
func (s *SessionService) Restart(ctx context.Context, id string) (*models.AssessmentSession, error) {
	session, err := s.Store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Machine.Restart(session)
	session.StartTime = time.Now()
	session.EndTime = time.Time{}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// CurrentQuestion exposes the active question localized to the session
// language, for the rendering layer. Nil outside the answering phase.
func (s *SessionService) CurrentQuestion(session *models.AssessmentSession) *models.LocalizedQuestion {
	q := s.Machine.Current(session)
	if q == nil {
		return nil
	}
	localized := q.Localize(session.Language)
	return &localized
}

func (s *SessionService) save(ctx context.Context, session *models.AssessmentSession) error {
	session.UpdatedAt = time.Now()
	if err := s.Store.Save(ctx, session); err != nil {
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}
	return nil
}
