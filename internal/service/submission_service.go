package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"assessment-service/internal/catalog"
	"assessment-service/internal/event"
	"assessment-service/internal/feedback"
	"assessment-service/internal/models"
	"assessment-service/internal/scoring"
)

// ErrSubmissionInFlight guards against a second submission while one is
// pending. The guard is session state, not a lock: the pending status is
// persisted before the upstream call goes out.
var ErrSubmissionInFlight = errors.New("a submission is already in progress for this session")

// ErrNotReadyToSubmit is returned when the session has not answered its way
// to the end of the catalog.
var ErrNotReadyToSubmit = errors.New("session has not reached the end of the questionnaire")

// SubmissionService is the coordinator: it assembles the final record from
// a completed session, relays it upstream, and tracks the
// idle -> pending -> success|error status. There is no automatic retry; a
// failed submission requires a full session restart.
type SubmissionService struct {
	Sessions  SessionStore
	Results   ResultStore
	Transport ResultsTransport
	Geo       LocationResolver
	Events    EventSink
}

func NewSubmissionService(sessions SessionStore, results ResultStore, transport ResultsTransport, geo LocationResolver, events EventSink) *SubmissionService {
	return &SubmissionService{
		Sessions:  sessions,
		Results:   results,
		Transport: transport,
		Geo:       geo,
		Events:    events,
	}
}

// SubmitInput carries the request-scoped context the record needs beyond
// the session itself.
type SubmitInput struct {
	SessionID string
	Device    models.DeviceInfo
	Latitude  *float64
	Longitude *float64
	Timezone  string
}

// Outcome is what the rendering layer shows after a submission attempt:
// the locally computed score and feedback are present whether or not the
// upstream call succeeded.
type Outcome struct {
	SessionID    string                 `json:"session_id"`
	Score        models.ScoreResult     `json:"score"`
	Feedback     models.FeedbackBundle  `json:"feedback"`
	Status       models.SubmissionStatus `json:"status"`
	AssessmentID int64                  `json:"assessment_id,omitempty"`
	Error        string                 `json:"error,omitempty"`
}

// Submit runs one submission attempt end to end. Transport failure is not
// an error return: it resolves the attempt to the error status inside the
// outcome, with score and feedback still populated.
func (s *SubmissionService) Submit(ctx context.Context, input SubmitInput) (*Outcome, error) {
	session, err := s.Sessions.FindByID(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if session.Submission == models.SubmissionPending {
		return nil, ErrSubmissionInFlight
	}
	if session.Phase != models.PhaseSubmitting {
		return nil, ErrNotReadyToSubmit
	}

	session.Submission = models.SubmissionPending
	session.EndTime = time.Now()
	session.UpdatedAt = session.EndTime
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("mark submission pending: %w", err)
	}

	score := scoring.Evaluate(session.Answers)
	bundle := feedback.Derive(session.Answers, score.BMI, session.Language)
	record := s.buildRecord(ctx, session, score, input)

	assessmentID, submitErr := s.Transport.Submit(ctx, record)

	session.Phase = models.PhaseResultsShown
	if submitErr != nil {
		session.Submission = models.SubmissionError
		session.SubmissionError = submitErr.Error()
		log.Printf("Submission failed for session %s: %v", session.ID, submitErr)
	} else {
		session.Submission = models.SubmissionSuccess
		session.SubmissionError = ""
		session.AssessmentID = assessmentID
	}
	session.UpdatedAt = time.Now()
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("record submission outcome: %w", err)
	}

	stored := &models.StoredResult{
		SessionID:    session.ID,
		AssessmentID: session.AssessmentID,
		Record:       *record,
		Feedback:     bundle,
		Status:       session.Submission,
		Error:        session.SubmissionError,
		CreatedAt:    time.Now(),
	}
	if err := s.Results.Create(ctx, stored); err != nil {
		log.Printf("Failed to store local result for session %s: %v", session.ID, err)
	}

	s.publishOutcome(session, score)

	return &Outcome{
		SessionID:    session.ID,
		Score:        score,
		Feedback:     bundle,
		Status:       session.Submission,
		AssessmentID: session.AssessmentID,
		Error:        session.SubmissionError,
	}, nil
}

// Result recomputes the outcome for a session whose submission already
// resolved. Score and feedback are derived on demand from the answer set.
func (s *SubmissionService) Result(ctx context.Context, sessionID string) (*Outcome, error) {
	session, err := s.Sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Phase != models.PhaseResultsShown {
		return nil, fmt.Errorf("no result available: session is in phase %s", session.Phase)
	}

	score := scoring.Evaluate(session.Answers)
	return &Outcome{
		SessionID:    session.ID,
		Score:        score,
		Feedback:     feedback.Derive(session.Answers, score.BMI, session.Language),
		Status:       session.Submission,
		AssessmentID: session.AssessmentID,
		Error:        session.SubmissionError,
	}, nil
}

// buildRecord assembles the immutable submission payload. Answers recorded
// in Arabic are translated to canonical English first; location lookup
// failure silently degrades to whatever detail is available.
func (s *SubmissionService) buildRecord(ctx context.Context, session *models.AssessmentSession, score models.ScoreResult, input SubmitInput) *models.SubmissionRecord {
	answers := session.Answers
	if session.Language == models.LanguageArabic {
		answers = catalog.TranslateToEnglish(answers)
	}

	var location *models.Location
	if input.Latitude != nil && input.Longitude != nil && s.Geo != nil {
		location = s.Geo.Reverse(ctx, *input.Latitude, *input.Longitude)
	}

	var userName *string
	if session.UserName != "" {
		name := session.UserName
		userName = &name
	}

	timezone := input.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	return &models.SubmissionRecord{
		UserName:   userName,
		DeviceInfo: input.Device,
		Location:   location,
		TimeInfo: models.TimeInfo{
			StartTime:       session.StartTime,
			EndTime:         session.EndTime,
			DurationSeconds: int64(session.EndTime.Sub(session.StartTime).Seconds()),
			Timezone:        timezone,
		},
		TestInfo: models.TestInfo{
			Language: session.Language,
			Theme:    session.Theme,
			Score:    score.Score,
			BMI:      score.BMI,
		},
		Answers: answers,
	}
}

func (s *SubmissionService) publishOutcome(session *models.AssessmentSession, score models.ScoreResult) {
	if s.Events == nil {
		return
	}
	if session.Submission == models.SubmissionSuccess {
		_ = s.Events.Publish(event.AssessmentCompleted, map[string]any{
			"session_id":    session.ID,
			"assessment_id": session.AssessmentID,
			"score":         score.Score,
			"bmi":           score.BMI,
		})
		return
	}
	_ = s.Events.Publish(event.AssessmentFailed, map[string]any{
		"session_id": session.ID,
		"error":      session.SubmissionError,
	})
}
