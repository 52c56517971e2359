package models

import "time"

const (
	LanguageEnglish = "en"
	LanguageArabic  = "ar"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

type Phase string

const (
	PhaseAwaitingConsent Phase = "awaiting_consent"
	PhaseWelcome         Phase = "welcome"
	PhaseAnswering       Phase = "answering"
	PhaseSubmitting      Phase = "submitting"
	PhaseResultsShown    Phase = "results_shown"
)

type SubmissionStatus string

const (
	SubmissionIdle    SubmissionStatus = "idle"
	SubmissionPending SubmissionStatus = "pending"
	SubmissionSuccess SubmissionStatus = "success"
	SubmissionError   SubmissionStatus = "error"
)

// AssessmentSession is the per-user state of one walk through the
// questionnaire. Each session owns its answer set exclusively.
type AssessmentSession struct {
	ID              string           `bson:"_id,omitempty" json:"id"`
	SessionToken    string           `bson:"session_token" json:"session_token"`
	Phase           Phase            `bson:"phase" json:"phase"`
	CurrentIndex    int              `bson:"current_index" json:"current_index"`
	Language        string           `bson:"language" json:"language"`
	Theme           string           `bson:"theme" json:"theme"`
	UserName        string           `bson:"user_name,omitempty" json:"user_name,omitempty"`
	Answers         AnswerSet        `bson:"answers" json:"answers"`
	StartTime       time.Time        `bson:"start_time,omitempty" json:"start_time,omitempty"`
	EndTime         time.Time        `bson:"end_time,omitempty" json:"end_time,omitempty"`
	Submission      SubmissionStatus `bson:"submission_status" json:"submission_status"`
	SubmissionError string           `bson:"submission_error,omitempty" json:"submission_error,omitempty"`
	AssessmentID    int64            `bson:"assessment_id,omitempty" json:"assessment_id,omitempty"`
	CreatedAt       time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time        `bson:"updated_at" json:"updated_at"`
}
