// Package flow implements the questionnaire navigation state machine:
// AwaitingConsent -> Welcome -> Answering(i) -> Submitting -> ResultsShown.
// It mutates session state handed to it but performs no I/O itself;
// timestamps and persistence belong to the service layer.
package flow

import (
	"fmt"

	"assessment-service/internal/models"
)

// ValidationError reports why Advance refused to move past the current
// question. It blocks navigation locally and is never sent upstream.
type ValidationError struct {
	QuestionID string
	Reason     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("question %s: %s", e.QuestionID, e.Reason)
}

const (
	ReasonRequired     = "an answer is required"
	ReasonInvalidValue = "value is outside the accepted range"
)

// PhaseError reports an operation attempted in the wrong session phase.
type PhaseError struct {
	Op    string
	Phase models.Phase
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("cannot %s in phase %s", e.Op, e.Phase)
}

// Machine drives one session through the fixed question catalog.
type Machine struct {
	questions []models.Question
	byID      map[string]*models.Question
}

func NewMachine(questions []models.Question) *Machine {
	byID := make(map[string]*models.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}
	return &Machine{questions: questions, byID: byID}
}

// Len reports how many questions the machine walks through.
func (m *Machine) Len() int {
	return len(m.questions)
}

// Current returns the question at the session's index, or nil when the
// session is not in the answering phase.
func (m *Machine) Current(s *models.AssessmentSession) *models.Question {
	if s.Phase != models.PhaseAnswering {
		return nil
	}
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(m.questions) {
		return nil
	}
	return &m.questions[s.CurrentIndex]
}

// AcceptConsent moves a fresh session to the welcome screen.
func (m *Machine) AcceptConsent(s *models.AssessmentSession) error {
	if s.Phase != models.PhaseAwaitingConsent {
		return &PhaseError{Op: "accept consent", Phase: s.Phase}
	}
	s.Phase = models.PhaseWelcome
	return nil
}

// Begin starts the questionnaire at the first question.
func (m *Machine) Begin(s *models.AssessmentSession, userName string) error {
	if s.Phase != models.PhaseWelcome {
		return &PhaseError{Op: "begin", Phase: s.Phase}
	}
	s.UserName = userName
	s.Phase = models.PhaseAnswering
	s.CurrentIndex = 0
	return nil
}

// Record stores an answer for a question of the catalog. Answers may be
// rewritten freely; validation happens on Advance, not here.
func (m *Machine) Record(s *models.AssessmentSession, questionID string, answer models.Answer) error {
	if s.Phase != models.PhaseAnswering {
		return &PhaseError{Op: "record answer", Phase: s.Phase}
	}
	if m.byID[questionID] == nil {
		return fmt.Errorf("unknown question ID %q", questionID)
	}
	if s.Answers == nil {
		s.Answers = make(models.AnswerSet)
	}
	s.Answers[questionID] = answer
	return nil
}

// Advance validates the current question and moves forward. Validation
// order is fixed: required-ness first, then the custom numeric validator;
// the first failing check is the one reported. On the last question the
// session transitions to Submitting and the submission coordinator takes
// over.
func (m *Machine) Advance(s *models.AssessmentSession) error {
	if s.Phase != models.PhaseAnswering {
		return &PhaseError{Op: "advance", Phase: s.Phase}
	}
	q := m.Current(s)
	if q == nil {
		return fmt.Errorf("session index %d out of catalog range", s.CurrentIndex)
	}

	answer, answered := s.Answers[q.ID]
	if q.Required && (!answered || answer.IsEmpty()) {
		return &ValidationError{QuestionID: q.ID, Reason: ReasonRequired}
	}
	if q.Validate != nil && answered && answer.Kind == models.AnswerKindNumber {
		if !q.Validate(answer.Number) {
			return &ValidationError{QuestionID: q.ID, Reason: ReasonInvalidValue}
		}
	}

	if s.CurrentIndex < len(m.questions)-1 {
		s.CurrentIndex++
	} else {
		s.Phase = models.PhaseSubmitting
	}
	return nil
}

// Retreat steps back one question. A no-op at index 0. Stored answers are
// kept and nothing is re-validated.
func (m *Machine) Retreat(s *models.AssessmentSession) error {
	if s.Phase != models.PhaseAnswering {
		return &PhaseError{Op: "retreat", Phase: s.Phase}
	}
	if s.CurrentIndex > 0 {
		s.CurrentIndex--
	}
	return nil
}

// Restart wipes the session back to the welcome screen: answer set cleared,
// index reset, any previous submission outcome discarded.
func (m *Machine) Restart(s *models.AssessmentSession) {
	s.Answers = make(models.AnswerSet)
	s.CurrentIndex = 0
	s.Phase = models.PhaseWelcome
	s.UserName = ""
	s.Submission = models.SubmissionIdle
	s.SubmissionError = ""
	s.AssessmentID = 0
}
